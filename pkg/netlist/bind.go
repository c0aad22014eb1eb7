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

// Op identifies one of the connection operators (spec §4.F). Go has no
// operator overloading, so where mint/min.py overloads `>`/`<`/`<>`/`==` on
// its instance classes, this module exposes one explicit entry point, Connect,
// parameterized by Op — model builders write Connect(a, w, OpGT) where the
// Python original would write `a > w`.
type Op uint8

const (
	// OpGT is `>`.
	OpGT Op = iota
	// OpLT is `<`.
	OpLT
	// OpIO is `<>`.
	OpIO
	// OpEQ is `==`, valid only between a module-instance and an
	// interface-instance.
	OpEQ
)

// dirForSide returns the net/filter direction an operator implies for the
// module-instance side of a binding, given whether the module-instance is
// the left or right operand. `>`/`<` invert depending on which side the
// module-instance is on (spec §4.F: "N > M ... mirror with direction
// inverted on M's side"); `<>` and `==` are symmetric.
func dirForSide(op Op, modinstIsLeft bool) Dir {
	switch op {
	case OpGT:
		if modinstIsLeft {
			return DirOutput
		}

		return DirInput
	case OpLT:
		if modinstIsLeft {
			return DirInput
		}

		return DirOutput
	case OpIO:
		return DirInout
	default: // OpEQ
		return DirAny
	}
}

// Connect applies one connection operator between two operands, exactly one
// of which must be a module-instance (scalar or vector); the other may be a
// net or an interface-instance (scalar or vector), per spec §4.F's semantics
// table. It mirrors whichever of mint/min.py's ModInstBase/Net/IntfInstBase
// `_handle_cmp_ops` applies to the given pair.
func Connect(lhs, rhs any, op Op) error {
	if isModInst(lhs) {
		return connectModFirst(lhs, rhs, op)
	}

	if isModInst(rhs) {
		return connectModSecond(lhs, rhs, op)
	}

	return newError(TypeErr, "unsupported operand type(s): neither %T nor %T is a module-instance", lhs, rhs)
}

func isModInst(v any) bool {
	switch v.(type) {
	case *ModInstScalar, *ModInstList:
		return true
	default:
		return false
	}
}

func isIntfInst(v any) bool {
	switch v.(type) {
	case *IntfInstScalar, *IntfInstList:
		return true
	default:
		return false
	}
}

// connectModFirst handles `M op rhs` (M is the left operand).
func connectModFirst(m, rhs any, op Op) error {
	if net, ok := rhs.(Net); ok {
		if op == OpEQ {
			return newError(TypeErr, "unsupported operand type(s) for ==: module-instance and net")
		}

		return bindNet(m, net, dirForSide(op, true))
	}

	if isIntfInst(rhs) {
		return bindIntf(m, rhs, ModportByPos(0), dirForSide(op, true))
	}

	return newError(TypeErr, "unsupported operand type(s): module-instance and %T", rhs)
}

// connectModSecond handles `lhs op M` (M is the right operand).
func connectModSecond(lhs, m any, op Op) error {
	if net, ok := lhs.(Net); ok {
		if op == OpEQ {
			return newError(TypeErr, "unsupported operand type(s) for ==: net and module-instance")
		}

		return bindNet(m, net, dirForSide(op, false))
	}

	if isIntfInst(lhs) {
		return bindIntf(m, lhs, ModportByPos(1), dirForSide(op, false))
	}

	return newError(TypeErr, "unsupported operand type(s): %T and module-instance", lhs)
}

// bindNet binds a net to a module-instance (scalar or vector), creating one
// Pin per scalar. The pin's explicit name is the instance's (or, for a
// vector, the list's) pending template, mirroring mint/min.py's
// ModInstScalar.bind_net / ModInstList.bind_net.
func bindNet(target any, net Net, dir Dir) error {
	switch m := target.(type) {
	case *ModInstScalar:
		m.AddPin(NewPin(dir, m, net, m.Template()))
		return nil
	case *ModInstList:
		for _, s := range m.Scalars() {
			s.AddPin(NewPin(dir, s, net, m.Template()))
		}

		return nil
	default:
		return newError(TypeErr, "bind target is not a module-instance")
	}
}

// bindIntf binds an interface-instance (scalar or vector) to a
// module-instance (scalar or vector), implementing spec §4.F's
// scalar/vector broadcast and zip rules, mirroring
// ModInstScalar.bind_intf / ModInstList.bind_intf.
func bindIntf(target, intf any, modport Modport, dirFilter Dir) error {
	switch m := target.(type) {
	case *ModInstScalar:
		switch iv := intf.(type) {
		case *IntfInstScalar:
			m.AddIntfPin(NewIntfPin(m, iv, modport, dirFilter, m.Template()))
			return nil
		case *IntfInstList:
			for _, is := range iv.Scalars() {
				m.AddIntfPin(NewIntfPin(m, is, modport, dirFilter, m.Template()))
			}

			return nil
		default:
			return newError(TypeErr, "bind target is not an interface-instance")
		}
	case *ModInstList:
		switch iv := intf.(type) {
		case *IntfInstScalar:
			for _, ms := range m.Scalars() {
				ms.AddIntfPin(NewIntfPin(ms, iv, modport, dirFilter, m.Template()))
			}

			return nil
		case *IntfInstList:
			if m.Len() != iv.Len() {
				return newError(ConnectionErr, "vector sizes differ: %d and %d", m.Len(), iv.Len())
			}

			scalars, intfs := m.Scalars(), iv.Scalars()
			for i, ms := range scalars {
				ms.AddIntfPin(NewIntfPin(ms, intfs[i], modport, dirFilter, m.Template()))
			}

			return nil
		default:
			return newError(TypeErr, "bind target is not an interface-instance")
		}
	default:
		return newError(TypeErr, "bind target is not a module-instance")
	}
}

// templatizeAny dispatches the generic `/` operator across every
// templatizable operand type, since Go cannot overload on the static type of
// the left operand the way mint/min.py's InstBase.__div__ does.
func templatizeAny(v any, tpl string) (any, error) {
	switch x := v.(type) {
	case *ModInstScalar:
		return x.Templatize(tpl), nil
	case *ModInstList:
		return x.Templatize(tpl), nil
	case *IntfInstScalar:
		return x.Templatize(tpl), nil
	case *IntfInstList:
		return x.Templatize(tpl), nil
	case *Wire:
		cp := *x
		cp.template = tpl
		return &cp, nil
	default:
		return nil, newError(TypeErr, "unsupported operand type(s) for /: %T and string", v)
	}
}

// Templatize implements the `/` operator (`obj/"tpl"`) on any instance or
// wire, returning a new, templatized value to use in a single binding
// expression. Mirrors mint/min.py's InstBase.__div__ (and, for wires, the
// equivalent ad hoc handling in WireGen-produced values).
func Templatize(v any, tpl string) (any, error) {
	return templatizeAny(v, tpl)
}
