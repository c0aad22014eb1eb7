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

	"github.com/rrathi/mint-go/pkg/util"
)

// instBase holds the fields shared by every scalar instance, module or
// interface, mirroring mint/min.py's InstScalar.
type instBase struct {
	name string
	// index is set when this scalar is an element of a vector.
	index util.Option[int]
	// template is set by the `/` operator and consumed by the next binding.
	template util.Option[string]
	// model names which model builder to invoke on Make.
	model string
	// isport marks the synthetic "module ports" pseudo-instance.
	isport bool
}

// Name returns this instance's base name.
func (b *instBase) Name() string { return b.name }

// SetName assigns this instance's base name (used when a container names an
// anonymous child by the local it was bound to).
func (b *instBase) SetName(name string) { b.name = name }

// Index returns the position of this scalar within its enclosing vector, if
// any.
func (b *instBase) Index() util.Option[int] { return b.index }

// Template returns the pending template set by the `/` operator, if any.
func (b *instBase) Template() util.Option[string] { return b.template }

// SetTemplate stashes a pending template, to be consumed by the next binding
// operation.
func (b *instBase) SetTemplate(tpl string) { b.template = util.Some(tpl) }

// ClearTemplate consumes (clears) the pending template.
func (b *instBase) ClearTemplate() { b.template = util.None[string]() }

// IsPort reports whether this is the synthetic "module ports" instance.
func (b *instBase) IsPort() bool { return b.isport }

// MarkPort flags this instance as the synthetic module-ports pseudo-child.
func (b *instBase) MarkPort() { b.isport = true }

// FormattedRepr renders "name" for a bare scalar or "name[index]" for an
// element of a vector (spec §4.B).
func (b *instBase) FormattedRepr() string {
	if b.index.IsEmpty() {
		return b.name
	}

	return fmt.Sprintf("%s[%d]", b.name, b.index.Unwrap())
}

// ============================================================================
// Module instances
// ============================================================================

// ModInstScalar is a single instance of a Module class, possibly an element
// of a ModInstList. Mirrors mint/min.py's ModInstScalar.
type ModInstScalar struct {
	instBase
	// container is the (already-constructed, not-yet-elaborated) Module
	// body this instance refers to.
	container *Container
	// pins/intfpins are held through a pointer-to-slice so that a
	// templatized shallow copy (see Templatize) shares the very same
	// backing list with the original — the intentional aliasing spec §5
	// documents ("a binding created via a templatized copy mutates the
	// original scalars' pins/intfpins lists").
	pins     *[]*Pin
	intfpins *[]*IntfPin
}

// NewModInstScalar constructs a module instance bound to the given
// container body.
func NewModInstScalar(container *Container, name string) *ModInstScalar {
	pins := []*Pin{}
	intfpins := []*IntfPin{}

	return &ModInstScalar{
		instBase:  instBase{name: name, index: util.None[int](), template: util.None[string]()},
		container: container,
		pins:      &pins,
		intfpins:  &intfpins,
	}
}

// Container returns the module body this instance refers to.
func (m *ModInstScalar) Container() *Container { return m.container }

// Templatize returns a shallow copy of this instance carrying the given
// template string, per the `/` operator (spec §4.B, §5).
func (m *ModInstScalar) Templatize(tpl string) *ModInstScalar {
	cp := *m
	cp.template = util.Some(tpl)

	return &cp
}

// AddPin appends a direct pin to this instance's pin list (shared with any
// templatized copies).
func (m *ModInstScalar) AddPin(p *Pin) {
	*m.pins = append(*m.pins, p)
}

// AddIntfPin appends a deferred interface-pin binding to this instance.
func (m *ModInstScalar) AddIntfPin(p *IntfPin) {
	*m.intfpins = append(*m.intfpins, p)
}

// VerilogName renders this instance's name the way the emitter needs for a
// Verilog instance identifier: "name" for a scalar, "nameINDEX" for a vector
// element — no brackets, since Verilog identifiers can't contain them
// (unlike instBase.FormattedRepr's "name[index]", used for diagnostics).
func (m *ModInstScalar) VerilogName() string {
	return m.formattedReprFmt("{name}", "{name}{index}")
}

// GetPins returns all of this instance's pins: the expansion of every
// pending IntfPin followed by its direct Pins, matching iteration order in
// mint/min.py's ModInstScalar.get_pins.
func (m *ModInstScalar) GetPins() ([]*Pin, error) {
	var pins []*Pin

	for _, ip := range *m.intfpins {
		expanded, err := ip.GetPins()
		if err != nil {
			return nil, err
		}

		pins = append(pins, expanded...)
	}

	pins = append(pins, (*m.pins)...)

	return pins, nil
}

// Make elaborates this instance: a non-empty model replaces the recorded
// one (an empty model keeps the previously recorded one), and the container
// is built with the recorded model.
func (m *ModInstScalar) Make(model string) error {
	if model != "" {
		m.model = model
	}

	return m.container.Make(m.model)
}

// ModInstList is an ordered, named vector of module-instance scalars sharing
// a base name and model (spec §3 "Vector instance (InstList)").
type ModInstList struct {
	scalars  []*ModInstScalar
	name     string
	template util.Option[string]
	model    string
	isport   bool
}

// NewModInstList constructs a vector from freshly-built scalars, assigning
// each one's index in order.
func NewModInstList(scalars []*ModInstScalar, name string) *ModInstList {
	for i, s := range scalars {
		s.index = util.Some(i)
		s.name = name
	}

	return &ModInstList{scalars: scalars, name: name, template: util.None[string]()}
}

// Name returns the list's shared base name.
func (l *ModInstList) Name() string { return l.name }

// SetName assigns the list's base name, propagating to every scalar (spec
// §3 invariant: "all scalars of an InstList carry the same base name").
func (l *ModInstList) SetName(name string) {
	l.name = name
	for _, s := range l.scalars {
		s.name = name
	}
}

// Template returns the pending template set by the `/` operator, if any.
func (l *ModInstList) Template() util.Option[string] { return l.template }

// SetTemplate stashes a pending template for the whole vector.
func (l *ModInstList) SetTemplate(tpl string) { l.template = util.Some(tpl) }

// ClearTemplate consumes (clears) the pending template.
func (l *ModInstList) ClearTemplate() { l.template = util.None[string]() }

// IsPort reports whether this list is the synthetic "module ports" instance
// (never true in practice — ports are always synthesized as scalars).
func (l *ModInstList) IsPort() bool { return l.isport }

// Len returns the number of scalars in this vector.
func (l *ModInstList) Len() int { return len(l.scalars) }

// Scalars returns the underlying scalar instances, in order.
func (l *ModInstList) Scalars() []*ModInstScalar { return l.scalars }

// At returns the scalar at position i, Verilog-index-style ([k]).
func (l *ModInstList) At(i int) (*ModInstScalar, error) {
	if i < 0 || i >= len(l.scalars) {
		return nil, newError(IndexErr, "inst index %d out of range", i)
	}

	return l.scalars[i], nil
}

// Slice implements `V[msb:lsb]`-style sub-ranging, returning a shallow view
// (a fresh list sharing the same underlying scalars).
func (l *ModInstList) Slice(msb int, msbSet bool, lsb int, lsbSet bool) (*ModInstList, error) {
	n := len(l.scalars)
	if !msbSet {
		msb = n - 1
	}

	if !lsbSet {
		lsb = 0
	}

	if msb < 0 || msb >= n || lsb < 0 || lsb >= n {
		return nil, newError(IndexErr, "inst index out of range")
	}

	if msb < lsb {
		return nil, newError(IndexErr, "msb %d less than lsb %d", msb, lsb)
	}

	cp := *l
	cp.scalars = l.scalars[lsb : msb+1]

	return &cp, nil
}

// Templatize returns a copy of this list whose scalars are each freshly
// templatized (spec §4.B: "templatized copies of InstList propagate the
// template to all scalar copies").
func (l *ModInstList) Templatize(tpl string) *ModInstList {
	scalars := make([]*ModInstScalar, len(l.scalars))
	for i, s := range l.scalars {
		scalars[i] = s.Templatize(tpl)
	}

	cp := *l
	cp.scalars = scalars
	cp.template = util.Some(tpl)

	return &cp
}

// Make elaborates every scalar of this vector, inheriting the list's model
// if none was set.
func (l *ModInstList) Make(model string) error {
	if model != "" {
		l.model = model
	}

	for _, s := range l.scalars {
		if err := s.Make(l.model); err != nil {
			return err
		}
	}

	return nil
}

// ============================================================================
// Interface instances
// ============================================================================

// IntfInstScalar is a single instance of an Interface class, possibly an
// element of an IntfInstList.
type IntfInstScalar struct {
	instBase
	container *Container
}

// NewIntfInstScalar constructs an interface instance bound to the given
// container body.
func NewIntfInstScalar(container *Container, name string) *IntfInstScalar {
	return &IntfInstScalar{
		instBase:  instBase{name: name, index: util.None[int](), template: util.None[string]()},
		container: container,
	}
}

// Container returns the interface body this instance refers to.
func (i *IntfInstScalar) Container() *Container { return i.container }

// Templatize sets (in place) the template on this scalar and returns it;
// unlike ModInstScalar, mint/min.py's IntfInstScalar.templatize mutates
// rather than copies, since an interface-instance carries no per-binding
// pin list of its own to alias.
func (i *IntfInstScalar) Templatize(tpl string) *IntfInstScalar {
	i.template = util.Some(tpl)
	return i
}

// Make elaborates this instance: a non-empty model replaces the recorded
// one (an empty model keeps the previously recorded one), and the container
// is built with the recorded model.
func (i *IntfInstScalar) Make(model string) error {
	if model != "" {
		i.model = model
	}

	return i.container.Make(i.model)
}

// IntfInstList is an ordered, named vector of interface-instance scalars.
type IntfInstList struct {
	scalars []*IntfInstScalar
	name    string
}

// NewIntfInstList constructs a vector from freshly-built scalars, assigning
// each one's index in order.
func NewIntfInstList(scalars []*IntfInstScalar, name string) *IntfInstList {
	for i, s := range scalars {
		s.index = util.Some(i)
		s.name = name
	}

	return &IntfInstList{scalars: scalars, name: name}
}

// Name returns the list's shared base name.
func (l *IntfInstList) Name() string { return l.name }

// SetName assigns the list's base name, propagating to every scalar.
func (l *IntfInstList) SetName(name string) {
	l.name = name
	for _, s := range l.scalars {
		s.name = name
	}
}

// Len returns the number of scalars in this vector.
func (l *IntfInstList) Len() int { return len(l.scalars) }

// Scalars returns the underlying scalar instances, in order.
func (l *IntfInstList) Scalars() []*IntfInstScalar { return l.scalars }

// At returns the scalar at position i.
func (l *IntfInstList) At(i int) (*IntfInstScalar, error) {
	if i < 0 || i >= len(l.scalars) {
		return nil, newError(IndexErr, "inst index %d out of range", i)
	}

	return l.scalars[i], nil
}

// Templatize propagates a template to every scalar in this list in place.
func (l *IntfInstList) Templatize(tpl string) *IntfInstList {
	for _, s := range l.scalars {
		s.template = util.Some(tpl)
	}

	return l
}

// Make elaborates every scalar of this vector.
func (l *IntfInstList) Make(model string) error {
	for _, s := range l.scalars {
		if err := s.Make(model); err != nil {
			return err
		}
	}

	return nil
}
