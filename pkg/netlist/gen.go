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

// InstGen instantiates module or interface instances by class name,
// mirroring mint/max.py's InstGen — whose Python original overloads
// `__getattr__`/`__getitem__` so that `instance.Foo` and `instance[2].Bar`
// read as attribute access. Go has neither dynamic attribute access nor
// subscript overloading, so the stashed-subscript protocol becomes two
// explicit calls: Scalar("Foo") and Vector(2, "Bar").
type InstGen struct {
	kind     ClassKind
	registry *Registry
}

// NewModuleGen constructs a generator of module-instances resolved against
// the given registry (mint/miny.py's package-level `instance`).
func NewModuleGen(registry *Registry) *InstGen {
	return &InstGen{kind: ModuleClassKind, registry: registry}
}

// NewInterfaceGen constructs a generator of interface-instances resolved
// against the given registry (mint/miny.py's package-level `interface`).
func NewInterfaceGen(registry *Registry) *InstGen {
	return &InstGen{kind: InterfaceClassKind, registry: registry}
}

// Scalar instantiates a single scalar of the named class, auto-creating an
// unregistered synthetic class if name isn't registered (spec §4.C).
func (g *InstGen) Scalar(name string) (any, error) {
	class, err := g.registry.GetOrCreate(name, g.kind)
	if err != nil {
		return nil, err
	}

	body := NewContainer("", class)

	if g.kind == InterfaceClassKind {
		return NewIntfInstScalar(body, ""), nil
	}

	return NewModInstScalar(body, ""), nil
}

// Vector instantiates n independent scalars of the named class, bundled as
// a vector instance (mint/max.py's `instance[n].Foo`).
func (g *InstGen) Vector(n uint, name string) (any, error) {
	class, err := g.registry.GetOrCreate(name, g.kind)
	if err != nil {
		return nil, err
	}

	if g.kind == InterfaceClassKind {
		scalars := make([]*IntfInstScalar, n)
		for i := range scalars {
			scalars[i] = NewIntfInstScalar(NewContainer("", class), "")
		}

		return NewIntfInstList(scalars, ""), nil
	}

	scalars := make([]*ModInstScalar, n)
	for i := range scalars {
		scalars[i] = NewModInstScalar(NewContainer("", class), "")
	}

	return NewModInstList(scalars, ""), nil
}

// WireGen instantiates wires, mirroring mint/max.py's WireGen — whose
// Python original overloads `__call__`/`__getitem__` so `wire()`,
// `wire[8](name)`, and `wire[msb:0]` all read naturally. Here, Scalar/Sized
// are the explicit analogues; a width of 0 degenerates to a scalar wire,
// matching the original's `key < 1 => scalar` collapse.
type WireGen struct{}

// Scalar constructs a scalar wire, optionally named.
func (WireGen) Scalar(name string) *Wire {
	if name == "" {
		return NewWire()
	}

	return NewNamedWire(name)
}

// Sized constructs a vector wire of the given width (size < 1 collapses to
// a scalar, mirroring WireGen.__getitem__'s `key < 1` rule), optionally
// named.
func (WireGen) Sized(size int, name string) *Wire {
	if size < 1 {
		return WireGen{}.Scalar(name)
	}

	return NewVectorWire(name, uint(size))
}

// MSB constructs a vector wire spanning indices [0, msb], inclusive
// (mint/max.py's `wire[msb:0]`, where only an lsb of 0 is supported).
func (WireGen) MSB(msb int, name string) *Wire {
	indices := make([]int, msb+1)
	for i := range indices {
		indices[i] = i
	}

	return NewIndexedWire(name, indices)
}

// Indices constructs a vector wire with an explicit, caller-supplied index
// tuple (mint/max.py's `wire[iterable]`).
func (WireGen) Indices(indices []int, name string) *Wire {
	return NewIndexedWire(name, indices)
}
