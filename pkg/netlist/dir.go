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

// Dir identifies the direction of a pin, as seen from the module-instance
// side of the binding (i.e. before the emitter's boundary inversion, §4.H).
type Dir uint8

const (
	// DirInput indicates the module-instance receives this net.
	DirInput Dir = iota
	// DirOutput indicates the module-instance drives this net.
	DirOutput
	// DirInout indicates a bidirectional connection.
	DirInout
	// DirAny matches any of the above; only ever used as a filter, never as
	// a pin's own recorded direction.
	DirAny
)

// String renders a direction the way it appears in emitted Verilog port
// declarations.
func (d Dir) String() string {
	switch d {
	case DirInput:
		return "input"
	case DirOutput:
		return "output"
	case DirInout:
		return "inout"
	case DirAny:
		return "_any_dir_"
	default:
		return "?"
	}
}

// Invert flips input/output; inout (and any) pass through unchanged. This
// implements the emitter's module-boundary inversion rule (§4.H): a net the
// body receives is wired, from inside, as an output of its driver but an
// input of the module looking in from outside.
func (d Dir) Invert() Dir {
	switch d {
	case DirInput:
		return DirOutput
	case DirOutput:
		return DirInput
	default:
		return d
	}
}

// Matches reports whether a concrete pin direction satisfies this direction
// used as a filter (DirAny matches everything; otherwise exact match).
func (d Dir) Matches(pin Dir) bool {
	return d == DirAny || d == pin
}

// Default holds the naming templates and filters used when the DSL caller
// hasn't supplied an explicit template of their own, mirroring min.py's
// Default class.
var Default = struct {
	PortDir            Dir
	ScalarPortTemplate string
	VectorPortTemplate string
	NetTemplate        string
}{
	PortDir:            DirAny,
	ScalarPortTemplate: "{I}_{n}",
	VectorPortTemplate: "{i}_{n}",
	NetTemplate:        "{I}_{n}",
}
