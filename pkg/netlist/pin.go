// Copyright Mint Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package netlist

import (
	"fmt"
	"strings"

	"github.com/rrathi/mint-go/pkg/util"
)

// Pin records a direct binding between a module-instance and a net: "inst I
// has port P that connects to net N" (spec §3, §4.D). Mirrors mint/min.py's
// Pin.
type Pin struct {
	Dir      Dir
	modinst  *ModInstScalar
	net      Net
	name     util.Option[string]
	template string
	// intfinst labels which interface-instance this pin originated from,
	// once expanded from an IntfPin (empty for a directly-bound pin); used
	// by the emitter to group wire declarations (mint/max.py's
	// wires_by_intf).
	intfinst string
}

// NewPin constructs a direct pin. name is the explicit port-name template
// set by the `/` operator, if any; otherwise the net's own name is used.
func NewPin(dir Dir, modinst *ModInstScalar, net Net, name util.Option[string]) *Pin {
	return &Pin{Dir: dir, modinst: modinst, net: net, name: name, template: "{name}"}
}

// ModInst returns the module-instance this pin belongs to.
func (p *Pin) ModInst() *ModInstScalar { return p.modinst }

// Net returns the net this pin connects to.
func (p *Pin) Net() Net { return p.net }

// IntfInst returns the combined interface-instance label this pin was
// expanded from (empty for a pin bound directly, not via an interface),
// used by the emitter to group wire declarations (mint/max.py's
// wires_by_intf).
func (p *Pin) IntfInst() string { return p.intfinst }

// SetTemplate overrides the default "{name}" print template.
func (p *Pin) SetTemplate(tpl string) { p.template = tpl }

// Name returns this pin's port name: the explicit override if set, else the
// net's own name. A Const or Concat net with no explicit override fails
// with ConnectionErr (spec §3 invariant, §4.D, boundary scenario S5).
func (p *Pin) Name() (string, error) {
	if p.name.HasValue() {
		return p.name.Unwrap(), nil
	}

	named, ok := p.net.(Named)
	if !ok {
		return "", newError(ConnectionErr, "port name not specified for '%s' and '%s'", p.modinst.Name(), p.net.FormattedRepr())
	}

	return named.Name(), nil
}

// Fname returns this pin's fully templated port name.
func (p *Pin) Fname() (string, error) {
	name, err := p.Name()
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(p.template, "{name}", name), nil
}

// ============================================================================
// IntfPin
// ============================================================================

// Modport selects which port-facing sub-instance of an interface's body a
// binding targets, either by its declaration position or by name (spec
// GLOSSARY "Modport").
type Modport struct {
	byPos bool
	pos   int
	name  string
}

// ModportByPos selects a modport by its position in the interface's
// port_at_pos list (0 is the first formal parameter of its model).
func ModportByPos(pos int) Modport { return Modport{byPos: true, pos: pos} }

// ModportByName selects a modport by name.
func ModportByName(name string) Modport { return Modport{name: name} }

// IntfPin is a deferred, filtered, templated view onto an interface's pins
// (spec §3, §4.D). It is expanded on demand by GetPins.
type IntfPin struct {
	modinst   *ModInstScalar
	intfinst  *IntfInstScalar
	modport   Modport
	dirFilter Dir
	template  util.Option[string]
}

// NewIntfPin constructs a deferred interface-pin binding.
func NewIntfPin(modinst *ModInstScalar, intfinst *IntfInstScalar, modport Modport, dirFilter Dir, template util.Option[string]) *IntfPin {
	return &IntfPin{modinst: modinst, intfinst: intfinst, modport: modport, dirFilter: dirFilter, template: template}
}

// effectiveTemplate returns the explicit override if set, else the
// position-sensitive default (scalar vs vector port template).
func (ip *IntfPin) effectiveTemplate() string {
	if ip.template.HasValue() {
		return ip.template.Unwrap()
	}

	if ip.modinst.Index().IsEmpty() {
		return Default.ScalarPortTemplate
	}

	return Default.VectorPortTemplate
}

func substituteIntf(tmpl, i, k, I, n string) string { //nolint:revive
	r := strings.NewReplacer("{i}", i, "{k}", k, "{I}", I, "{n}", n)
	return r.Replace(tmpl)
}

// GetPins resolves the bound modport, recursively expands its pins, filters
// by direction, and rewrites each surviving pin's (and its net's, if a Wire)
// template with the `{i}`/`{k}`/`{I}`/`{n}` substitution described in spec
// §4.D. Mirrors mint/min.py's IntfPin.get_pins, including its in-place
// mutation of the underlying Pin/Wire templates.
func (ip *IntfPin) GetPins() ([]*Pin, error) {
	iface := ip.intfinst.Container()

	var modportName string

	if ip.modport.byPos {
		portAtPos := iface.PortAtPos()
		if ip.modport.pos < 0 || ip.modport.pos >= len(portAtPos) {
			return nil, newError(IndexErr, "modport position %d out of range for interface '%s'", ip.modport.pos, iface.Name())
		}

		modportName = portAtPos[ip.modport.pos]
	} else {
		modportName = ip.modport.name
	}

	modportInst, ok := iface.ModuleInstanceByName(modportName)
	if !ok {
		return nil, newError(ConnectionErr, "modport '%s' not found on interface '%s'", modportName, iface.Name())
	}

	subPins, err := modportInst.GetPins()
	if err != nil {
		return nil, err
	}

	i := ip.intfinst.Name()
	k := ip.intfinst.formattedReprFmt("", "{index}")
	bigI := ip.intfinst.formattedReprFmt("{name}", "{name}{index}")
	netTemplate := ip.intfinst.Template().UnwrapOr(Default.NetTemplate)

	var pins []*Pin

	for _, pin := range subPins {
		if !ip.dirFilter.Matches(pin.Dir) {
			continue
		}

		pin.template = substituteIntf(ip.effectiveTemplate(), i, k, bigI, "{name}")

		if w, ok := pin.net.(*Wire); ok {
			w.template = substituteIntf(netTemplate, i, k, bigI, "{name}")
		}

		pin.intfinst = bigI
		pins = append(pins, pin)
	}

	return pins, nil
}

// formattedReprFmt renders this scalar with caller-supplied scalar/vector
// formats (used for the `{k}`/`{I}` substitution keys above).
func (b *instBase) formattedReprFmt(fmt0, fmt1 string) string {
	if b.index.IsEmpty() {
		return strings.ReplaceAll(fmt0, "{name}", b.name)
	}

	idx := fmt.Sprintf("%d", b.index.Unwrap())
	r := strings.NewReplacer("{name}", b.name, "{index}", idx)

	return r.Replace(fmt1)
}
