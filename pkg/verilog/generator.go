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
package verilog

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/rrathi/mint-go/pkg/netlist"
)

// Options configures optional emitter features, all no-ops (hence
// idempotent) when left at their zero value (spec §4.H).
type Options struct {
	// OutType, if non-empty ("logic" or "reg"), is printed before each
	// output port declaration instead of bare whitespace. Wire declarations
	// do not use it.
	OutType string
	// Autos enables AUTOINOUT/AUTOOUTPUT/AUTOINPUT/AUTOWIRE/AUTOINST
	// comment placeholders.
	Autos bool
}

// Generator emits Verilog for an elaborated module container, mirroring
// mint/max.py's VerilogGenerator.
type Generator struct {
	top  *netlist.Container
	opts Options
}

// NewGenerator constructs a Generator for an already-elaborated top module.
func NewGenerator(top *netlist.Container, opts Options) *Generator {
	return &Generator{top: top, opts: opts}
}

var portBitRangeFormat = netlist.WireFormat{Fmt0: "", Fmt1: "[{msb}:{lsb}]", Fmt2: "[{msb}:{lsb}]"}

var wireBitRangeFormat = netlist.WireFormat{Fmt0: "", Fmt1: "", Fmt2: "[{index}]"}

func ljust(s string, n int) string {
	if len(s) >= n {
		return s
	}

	return s + strings.Repeat(" ", n-len(s))
}

func rjust(s string, n int) string {
	if len(s) >= n {
		return s
	}

	return strings.Repeat(" ", n-len(s)) + s
}

// GenerateModule emits the complete module definition: header, ports,
// wires, and submodule instantiations, in that order. Emission adds nothing
// to the IR, but expanding interface pins (IntfPin.GetPins) rewrites the
// name templates of the pins and wires it reaches, in place.
func (g *Generator) GenerateModule(w io.Writer) error {
	l := newLayout(w)

	portInst, err := g.top.PortInstance()
	if err != nil {
		return err
	}

	pins, err := portInst.GetPins()
	if err != nil {
		return err
	}

	portPins := dedupByNetFname(pins)

	log.WithField("module", g.top.Name()).WithField("ports", len(portPins)).Debug("generating verilog module")

	if err := g.generateHeader(l, portPins); err != nil {
		return err
	}

	if err := g.generateWires(l, portInst, portPins); err != nil {
		return err
	}

	if err := g.generateInstances(l, portInst); err != nil {
		return err
	}

	l.emitln("endmodule")

	return l.err
}

func dedupByNetFname(pins []*netlist.Pin) []*netlist.Pin {
	seen := map[string]bool{}

	var out []*netlist.Pin

	for _, pin := range pins {
		named, ok := pin.Net().(netlist.Named)
		if !ok {
			continue
		}

		fname := named.Fname()
		if seen[fname] {
			continue
		}

		seen[fname] = true

		out = append(out, pin)
	}

	return out
}

func (g *Generator) generateHeader(l *layout, portPins []*netlist.Pin) error {
	l.emit("module")
	l.emit(g.top.Name())
	l.emitln("(")

	if g.opts.Autos {
		l.emitln("  /*AUTOINOUT*/")
		l.emitln("  /*AUTOOUTPUT*/")
		l.emitln("  /*AUTOINPUT*/")
	}

	if err := g.generatePorts(l, portPins); err != nil {
		return err
	}

	l.emitln(");")
	l.nextLine()

	if g.opts.Autos {
		l.emitln("/*AUTOWIRE*/")
	}

	return nil
}

func (g *Generator) generatePorts(l *layout, portPins []*netlist.Pin) error {
	if len(portPins) == 0 {
		return nil
	}

	l.emit(" ")

	if err := g.generatePort(l, portPins[0]); err != nil {
		return err
	}

	for _, pin := range portPins[1:] {
		l.emit(",")

		if err := g.generatePort(l, pin); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) generatePort(l *layout, pin *netlist.Pin) error {
	wire, ok := pin.Net().(*netlist.Wire)
	if !ok {
		return fmt.Errorf("port net %q is not a wire, cannot declare as a module port", pin.Net().FormattedRepr())
	}

	dir := pin.Dir.Invert()
	l.emit(ljust(dir.String(), 6))

	if dir == netlist.DirOutput && g.opts.OutType != "" {
		l.emit(ljust(g.opts.OutType, 5))
	} else {
		l.emit(strings.Repeat(" ", 5))
	}

	index := wire.Parent().FormattedReprFmt(portBitRangeFormat)
	l.advanceTo(16)
	l.emitSep(rjust(index, 6), "")
	l.advanceTo(24)
	l.emitSep(wire.Fname(), "")

	if desc, ok := wire.Desc(); ok {
		l.desc(desc, 48)
	} else {
		l.nextLine()
	}

	return nil
}

func (g *Generator) generateWires(l *layout, portInst *netlist.ModInstScalar, portPins []*netlist.Pin) error {
	portFnames := map[string]bool{}

	for _, pin := range portPins {
		if named, ok := pin.Net().(netlist.Named); ok {
			portFnames[named.Fname()] = true
		}
	}

	var groupOrder []string

	grouped := map[string][]*netlist.Wire{}

	seen := map[string]bool{}

	for _, inst := range g.top.ModuleInstances() {
		if inst == portInst {
			continue
		}

		pins, err := inst.GetPins()
		if err != nil {
			return err
		}

		for _, pin := range pins {
			var wires []*netlist.Wire

			switch n := pin.Net().(type) {
			case *netlist.Const:
				continue
			case *netlist.Concat:
				wires = n.Wires()
			case *netlist.Wire:
				wires = []*netlist.Wire{n}
			default:
				continue
			}

			for _, wire := range wires {
				if portFnames[wire.Fname()] {
					continue
				}

				if seen[wire.Fname()] {
					continue
				}

				seen[wire.Fname()] = true

				if _, ok := grouped[pin.IntfInst()]; !ok {
					groupOrder = append(groupOrder, pin.IntfInst())
				}

				grouped[pin.IntfInst()] = append(grouped[pin.IntfInst()], wire)
			}
		}
	}

	for _, key := range groupOrder {
		for _, wire := range grouped[key] {
			g.generateWire(l, wire)
		}
	}

	return nil
}

func (g *Generator) generateWire(l *layout, wire *netlist.Wire) {
	l.emit(ljust("wire", 10))

	index := wire.Parent().FormattedReprFmt(wireBitRangeFormat)
	l.advanceTo(16)
	l.emitSep(rjust(index, 6), "")
	l.advanceTo(24)
	l.emitSep(wire.Fname(), "")
	l.emitSep(";", "")

	if desc, ok := wire.Desc(); ok {
		l.desc(desc, 48)
	} else {
		l.nextLine()
	}
}

func (g *Generator) generateInstances(l *layout, portInst *netlist.ModInstScalar) error {
	for _, inst := range g.top.ModuleInstances() {
		if inst == portInst {
			continue
		}

		if err := g.generateInstance(l, inst); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) generateInstance(l *layout, inst *netlist.ModInstScalar) error {
	l.nextLine()
	l.emit(inst.Container().Name())
	l.emit(inst.VerilogName())

	pins, err := inst.GetPins()
	if err != nil {
		return err
	}

	if len(pins) == 0 {
		l.emitln("();")
		return nil
	}

	l.emit("(")
	l.nextLine()
	l.indent()

	if err := g.generatePortmap(l, pins[0]); err != nil {
		return err
	}

	for _, pin := range pins[1:] {
		l.emitlnSep(",", "")

		if err := g.generatePortmap(l, pin); err != nil {
			return err
		}
	}

	l.nextLine()

	if g.opts.Autos {
		l.emitln("/*AUTOINST*/")
	}

	l.emitlnSep(");", "")
	l.dedent()

	return nil
}

func (g *Generator) generatePortmap(l *layout, pin *netlist.Pin) error {
	fname, err := pin.Fname()
	if err != nil {
		return err
	}

	l.emit(".")
	l.emitSep(ljust(fname, 24), "")
	l.emitSep("(", "")
	l.emitSep(ljust(pin.Net().FormattedRepr(), 24), "")
	l.emitSep(")", "")

	return nil
}

// GenerateSubmoduleStub emits a stand-alone module declaration (ports only,
// empty body) for a single child instance, walking its pins with
// *non-inverted* direction — this is the submodule's own definition, not a
// view from its parent's boundary (spec §4.H, last paragraph).
func GenerateSubmoduleStub(w io.Writer, inst *netlist.ModInstScalar, opts Options) error {
	l := newLayout(w)

	l.emit("module")
	l.emit(inst.Container().Name())
	l.emitln("(")

	pins, err := inst.GetPins()
	if err != nil {
		return err
	}

	if len(pins) > 0 {
		l.emit(" ")

		if err := generateSubmodulePort(l, pins[0], opts); err != nil {
			return err
		}

		for _, pin := range pins[1:] {
			l.emit(",")

			if err := generateSubmodulePort(l, pin, opts); err != nil {
				return err
			}
		}
	}

	l.emitln(");")
	l.emitln("endmodule")

	return l.err
}

func generateSubmodulePort(l *layout, pin *netlist.Pin, opts Options) error {
	named, ok := pin.Net().(netlist.Named)
	if !ok {
		return fmt.Errorf("port net %q is not named, cannot declare as a submodule port", pin.Net().FormattedRepr())
	}

	l.emit(ljust(pin.Dir.String(), 6))

	if pin.Dir == netlist.DirOutput && opts.OutType != "" {
		l.emit(ljust(opts.OutType, 5))
	} else {
		l.emit(strings.Repeat(" ", 5))
	}

	var index string
	if size := pin.Net().Len(); size > 1 {
		index = fmt.Sprintf("[%d:0]", size-1)
	}

	l.advanceTo(16)
	l.emitSep(rjust(index, 6), "")
	l.advanceTo(24)
	l.emitSep(named.Fname(), "")

	if wire, ok := pin.Net().(*netlist.Wire); ok {
		if desc, ok := wire.Desc(); ok {
			l.desc(desc, 48)
			return nil
		}
	}

	l.nextLine()

	return nil
}
