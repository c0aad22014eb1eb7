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

// Package netlist implements the elaboration engine's intermediate
// representation: nets (wires, constants, concatenations), instances
// (modules and interfaces, scalar and vector), the registry, the pin model,
// and the module/interface container with its recursive make/elaborate
// walk.
package netlist

import (
	"fmt"
	"math"
	"strings"
)

// Net is the common interface satisfied by every wireable thing: a Wire, a
// Const, or a Concat of nets (spec §3 "Net (sum type, variants)").
type Net interface {
	// Len returns the bit width of this net.
	Len() int
	// FormattedRepr renders this net using its default format (bare name
	// for scalars, name[index] / name[msb:lsb] for vectors, {a, b} for
	// concatenations, W'hX / W'bX / W'dX for constants).
	FormattedRepr() string
}

// Named is implemented by nets which carry an explicit name (only Wire
// does). A Pin whose net doesn't implement Named must supply an explicit
// port-name template; binding such a pin succeeds, but its Pin.Name (and so
// emission) fails with ConnectionErr (spec §3 invariant, §7 ConnectionErr).
type Named interface {
	Name() string
	// Fname returns the net's fully templated name.
	Fname() string
}

// ============================================================================
// Wire
// ============================================================================

// Wire is a named (or anonymous-until-named) signal, scalar or vector. A
// vector wire carries an explicit, ordered tuple of indices rather than just
// a width, so that slicing a slice still reports the original bit positions
// (spec §3, §8 property 1).
type Wire struct {
	name string
	// nil => scalar; otherwise the ordered index tuple.
	indices []int
	// parent is the root wire of a slice chain; parent == self at the root.
	parent *Wire
	// template substitutes {name} at print time; defaults to "{name}".
	template string
	// desc is an optional human description, rendered as a `// ...` comment
	// by the emitter (supplemented feature: InterfaceFromTable descriptions).
	desc string
}

// NewWire constructs a scalar, unnamed, root wire.
func NewWire() *Wire {
	w := &Wire{template: "{name}"}
	w.parent = w

	return w
}

// NewNamedWire constructs a scalar, named, root wire.
func NewNamedWire(name string) *Wire {
	w := NewWire()
	w.name = name

	return w
}

// NewVectorWire constructs a named (or anonymous) vector wire of the given
// size, with indices 0..size-1.
func NewVectorWire(name string, size uint) *Wire {
	indices := make([]int, size)
	for i := range indices {
		indices[i] = i
	}

	w := NewWire()
	w.name = name
	w.indices = indices

	return w
}

// NewIndexedWire constructs a named (or anonymous) vector wire with an
// explicit, caller-supplied index tuple (e.g. for `wire[iterable]`).
func NewIndexedWire(name string, indices []int) *Wire {
	w := NewWire()
	w.name = name
	w.indices = append([]int(nil), indices...)

	return w
}

// sliceWire builds a wire which is a view (by index) onto an existing
// parent, used by Index/Slice below. It carries no name of its own — its
// Name() falls through to the parent's.
func sliceWire(indices []int, parent *Wire) *Wire {
	return &Wire{indices: indices, parent: parent, template: "{name}"}
}

// Name returns this wire's own name if set, else its parent's (spec §4.A:
// "The full printed name derives from the wire's own name if set, otherwise
// from its parent's name").
func (w *Wire) Name() string {
	if w.name != "" {
		return w.name
	}

	if w.parent != nil && w.parent != w {
		return w.parent.Name()
	}

	return ""
}

// SetName assigns this wire's base name; used by Container when naming an
// anonymous local bound by the model builder (spec §4.E).
func (w *Wire) SetName(name string) {
	w.name = name
}

// SetTemplate overrides the default "{name}" print template.
func (w *Wire) SetTemplate(template string) {
	w.template = template
}

// SetDesc attaches a description, printed as a trailing comment by the
// emitter.
func (w *Wire) SetDesc(desc string) {
	w.desc = desc
}

// Desc returns this wire's description, and whether one was set.
func (w *Wire) Desc() (string, bool) {
	return w.desc, w.desc != ""
}

// Parent returns the root wire of this wire's slice chain (itself, if this
// wire is a root).
func (w *Wire) Parent() *Wire {
	return w.parent
}

// IsScalar reports whether this wire is a bare scalar (no index tuple).
func (w *Wire) IsScalar() bool {
	return w.indices == nil
}

// Indices returns the underlying index tuple, or nil for a scalar.
func (w *Wire) Indices() []int {
	return w.indices
}

// Fname returns this wire's fully templated name.
func (w *Wire) Fname() string {
	return strings.ReplaceAll(w.template, "{name}", w.Name())
}

// Len returns 1 for a scalar, else the number of indices (spec §8 property 1).
func (w *Wire) Len() int {
	if w.indices == nil {
		return 1
	}

	return len(w.indices)
}

// Index implements Verilog-style single-bit indexing: `w[k]`. Scalar wires
// are never indexable.
func (w *Wire) Index(k int) (*Wire, error) {
	if w.indices == nil {
		return nil, newError(IndexErr, "scalar wire is not indexable")
	}

	if k < 0 || k >= len(w.indices) {
		return nil, newError(IndexErr, "wire index %d out of range", k)
	}

	return sliceWire([]int{w.indices[k]}, w.parent), nil
}

// Slice implements Verilog-style range indexing `w[msb:lsb]`. msbSet/lsbSet
// indicate whether the caller supplied an explicit bound; an unset msb
// defaults to the highest valid index, an unset lsb to the lowest. Per spec
// §4.A, msb >= lsb is required, and the result preserves the original index
// values (so a slice-of-a-slice still prints correct bit ranges).
func (w *Wire) Slice(msb int, msbSet bool, lsb int, lsbSet bool) (*Wire, error) {
	if w.indices == nil {
		return nil, newError(IndexErr, "scalar wire is not indexable")
	}

	n := len(w.indices)
	if !msbSet {
		msb = n - 1
	}

	if !lsbSet {
		lsb = 0
	}

	if msb < 0 || msb >= n || lsb < 0 || lsb >= n {
		return nil, newError(IndexErr, "wire index out of range")
	}

	if msb < lsb {
		return nil, newError(IndexErr, "msb %d less than lsb %d", msb, lsb)
	}

	indices := append([]int(nil), w.indices[lsb:msb+1]...)

	return sliceWire(indices, w.parent), nil
}

// Replicate implements `w * n`: n independent clones, each its own parent
// (i.e. a fresh root, not a slice of w) — spec §8 property 2.
func (w *Wire) Replicate(n uint) []*Wire {
	clones := make([]*Wire, n)

	for i := range clones {
		clone := &Wire{
			name:     w.name,
			indices:  append([]int(nil), w.indices...),
			template: w.template,
			desc:     w.desc,
		}
		clone.parent = clone
		clones[i] = clone
	}

	return clones
}

// WireFormat bundles the three printing templates used by FormattedReprFmt:
// Fmt0 for scalars, Fmt1 for 1-bit vectors, Fmt2 for multi-bit vectors.
// Substitution keys available: name, index, msb, lsb.
type WireFormat struct {
	Fmt0, Fmt1, Fmt2 string
}

// DefaultWireFormat is the format used by FormattedRepr.
var DefaultWireFormat = WireFormat{
	Fmt0: "{name}",
	Fmt1: "{name}[{index}]",
	Fmt2: "{name}[{index}]",
}

func substitute(tmpl string, name, index, msb, lsb string) string {
	r := strings.NewReplacer(
		"{name}", name,
		"{index}", index,
		"{msb}", msb,
		"{lsb}", lsb,
	)

	return r.Replace(tmpl)
}

// FormattedReprFmt renders this wire using a caller-supplied WireFormat;
// used by the emitter to print bit-range declarations (e.g. "[7:0]") as a
// distinct rendering from the default "name[7:0]" form.
func (w *Wire) FormattedReprFmt(f WireFormat) string {
	name := w.Fname()

	if w.indices == nil {
		return substitute(f.Fmt0, name, "", "", "")
	}

	if len(w.indices) == 1 {
		idx := fmt.Sprintf("%d", w.indices[0])
		return substitute(f.Fmt1, name, idx, idx, idx)
	}

	lsb := w.indices[0]
	msb := w.indices[len(w.indices)-1]
	index := fmt.Sprintf("%d:%d", msb, lsb)

	return substitute(f.Fmt2, name, index, fmt.Sprintf("%d", msb), fmt.Sprintf("%d", lsb))
}

// FormattedRepr renders this wire with the default format.
func (w *Wire) FormattedRepr() string {
	return w.FormattedReprFmt(DefaultWireFormat)
}

// ============================================================================
// Const
// ============================================================================

// Radix selects how a Const prints: binary, hex, or decimal.
type Radix uint8

// Radix values, mirroring min.py's Const fmt='bin'|'hex'|'dec'.
const (
	RadixHex Radix = iota
	RadixBinary
	RadixDecimal
)

// Const is a fixed-width unsigned constant. Go has no arbitrary-precision
// integer primitive worth reaching for here (the teacher's gnark-crypto
// field arithmetic has no host in this spec — see DESIGN.md), so constants
// are capped at 64 bits, a size no realistic port or bus width in this
// spec's worked examples exceeds.
type Const struct {
	size  uint
	val   uint64
	radix Radix
}

// NewConst constructs a constant, validating 0 <= val < 2^size (spec §3
// invariant; §7 ValueErr).
func NewConst(size uint, val uint64, radix Radix) (*Const, error) {
	if size > 64 {
		return nil, newError(ValueErr, "constant width %d exceeds supported maximum of 64", size)
	}

	if size < 64 && val >= uint64(1)<<size {
		return nil, newError(ValueErr, "constant value %d out of range for width %d", val, size)
	}

	return &Const{size: size, val: val, radix: radix}, nil
}

// Len returns this constant's bit width.
func (c *Const) Len() int {
	return int(c.size)
}

// FormattedRepr renders e.g. "8'hff", "4'b1010", "8'd255".
func (c *Const) FormattedRepr() string {
	switch c.radix {
	case RadixBinary:
		return fmt.Sprintf("%d'b%0*b", c.size, c.size, c.val)
	case RadixDecimal:
		return fmt.Sprintf("%d'd%d", c.size, c.val)
	default:
		width := int(math.Ceil(float64(c.size) / 4))
		return fmt.Sprintf("%d'h%0*x", c.size, width, c.val)
	}
}

// ============================================================================
// Concat
// ============================================================================

// Concat is an ordered sequence of nets concatenated together; its width is
// the sum of its children's.
type Concat struct {
	nets []Net
}

// NewConcat constructs a concatenation of the given nets, ordered
// most-significant-first as written.
func NewConcat(nets ...Net) *Concat {
	return &Concat{nets: nets}
}

// Len returns the sum of the widths of this concatenation's children.
func (c *Concat) Len() int {
	total := 0
	for _, n := range c.nets {
		total += n.Len()
	}

	return total
}

// FormattedRepr renders "{n0, n1, ...}".
func (c *Concat) FormattedRepr() string {
	parts := make([]string, len(c.nets))
	for i, n := range c.nets {
		parts[i] = n.FormattedRepr()
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Wires returns the filtered view of this concatenation's Wire children
// (spec §3: "exposes a filtered view of only its Wire children"), used by
// the emitter when exploding a Concat pin into constituent wire
// declarations.
func (c *Concat) Wires() []*Wire {
	var wires []*Wire

	for _, n := range c.nets {
		if w, ok := n.(*Wire); ok {
			wires = append(wires, w)
		}
	}

	return wires
}
