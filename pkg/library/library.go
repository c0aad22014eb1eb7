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

// Package library provides a small set of ready-made interface classes
// (demo.py's clk_if, a_if, ab_if, tab_if), grounded on a single table-driven
// builder rather than demo.py's two near-identical
// InterfaceFromString/InterfaceFromTable base classes, which differed only
// in whether each signal carried a description.
package library

import "github.com/rrathi/mint-go/pkg/netlist"

// Signal describes one signal of a two-port ("a" talks to "b") interface:
// its direction as seen flowing from a to b, its name, its width (0
// collapses to a scalar wire), and an optional human description rendered
// as a comment by the Verilog emitter.
type Signal struct {
	Op    netlist.Op
	Name  string
	Width int
	Desc  string
}

// wireSignal implements `a > w > b` / `a < w < b` / `a <> w <> b`: a single
// wire bound to both interface ports with the same operator, matching
// demo.py's InterfaceFromString/InterfaceFromTable rtl bodies.
func wireSignal(a, b *netlist.ModInstScalar, w *netlist.Wire, op netlist.Op) error {
	if err := netlist.Connect(a, w, op); err != nil {
		return err
	}

	return netlist.Connect(w, b, op)
}

// FromTable builds a two-port ("a", "b") interface model from a signal
// table, the Go-native replacement for demo.py's InterfaceFromString /
// InterfaceFromTable parsing a signals string at class-definition time.
func FromTable(signals []Signal) netlist.ModelFunc {
	return func(c *netlist.Container, ports map[string]*netlist.ModInstScalar) error {
		a, b := ports["a"], ports["b"]

		var wg netlist.WireGen

		for _, sig := range signals {
			w := wg.Sized(sig.Width, sig.Name)
			if sig.Desc != "" {
				w.SetDesc(sig.Desc)
			}

			if err := wireSignal(a, b, w, sig.Op); err != nil {
				return err
			}

			if err := c.Add(sig.Name, w); err != nil {
				return err
			}
		}

		return nil
	}
}

func twoPortInterface(name string, signals []Signal) *netlist.Class {
	return netlist.NewClass(name, netlist.InterfaceClassKind, map[string]netlist.ModelDef{
		"rtl": {Fn: FromTable(signals), Ports: []string{"a", "b"}},
	})
}

// ClkIF mirrors demo.py's clk_if: an unconditioned clock/reset pair flowing
// from a to b. clk/reset are built with Width: 0 (wire(), not wire[1]()), so
// they collapse to scalar wires, not 1-bit vectors.
func ClkIF() *netlist.Class {
	return twoPortInterface("clk_if", []Signal{
		{Op: netlist.OpGT, Name: "clk", Width: 0},
		{Op: netlist.OpGT, Name: "reset", Width: 0},
	})
}

// AIF mirrors demo.py's a_if: a 2-bit command flowing out, a 2-bit response
// flowing back.
func AIF() *netlist.Class {
	return twoPortInterface("a_if", []Signal{
		{Op: netlist.OpGT, Name: "cmd", Width: 2},
		{Op: netlist.OpLT, Name: "resp", Width: 2},
	})
}

// ABIF mirrors demo.py's ab_if: an address/data bus with a scalar write
// strobe (wen width 0, collapsing to a scalar wire per WireGen's rule).
func ABIF() *netlist.Class {
	return twoPortInterface("ab_if", []Signal{
		{Op: netlist.OpGT, Name: "address", Width: 8},
		{Op: netlist.OpIO, Name: "data", Width: 8},
		{Op: netlist.OpGT, Name: "ren", Width: 1},
		{Op: netlist.OpGT, Name: "wen", Width: 0},
	})
}

// TabIF mirrors demo.py's tab_if: the same request/response/command shape
// as a_if's sibling, but sourced from a description table whose per-signal
// descriptions the emitter prints as trailing comments.
func TabIF() *netlist.Class {
	return twoPortInterface("tab_if", []Signal{
		{Op: netlist.OpGT, Name: "req", Width: 1, Desc: "request"},
		{Op: netlist.OpLT, Name: "resp", Width: 1, Desc: "response"},
		{Op: netlist.OpGT, Name: "cmd", Width: 2, Desc: "command:\n00: foo\n01: bar\n10: do\n11: dat"},
	})
}

// Register installs every class in this library into r under its
// conventional name, failing if any name is already registered.
func Register(r *netlist.Registry) error {
	for _, class := range []*netlist.Class{ClkIF(), AIF(), ABIF(), TabIF()} {
		if err := r.Register(class); err != nil {
			return err
		}
	}

	return nil
}
