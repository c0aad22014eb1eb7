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

// Package demo builds the worked example used throughout this module's
// tests: a top module wired to a scalar submodule, a two-wide vector
// submodule, a broadcast clock/reset interface, a pair of data interfaces
// exercising every connection operator, and a small hand-wired signal
// chain. Grounded on demo.py's Demo/clk_if/a_if/ab_if family.
package demo

import (
	"github.com/rrathi/mint-go/pkg/library"
	"github.com/rrathi/mint-go/pkg/netlist"
)

// registry is this package's own registry, independent of
// netlist.DefaultRegistry() — each self-contained design keeps its own
// (spec §5's concurrency caveat: "implementations MAY make generators
// context-local").
var registry = netlist.NewRegistry() //nolint:gochecknoglobals

func init() {
	if err := library.Register(registry); err != nil {
		panic(err)
	}

	if err := registry.Register(netlist.NewClass("Demo", netlist.ModuleClassKind, map[string]netlist.ModelDef{
		"rtl": {Fn: rtl, Ports: []string{"io"}},
	})); err != nil {
		panic(err)
	}
}

// Registry returns this package's registry, for callers that want to build
// their own top-level container against the same classes (e.g. a CLI
// entry point).
func Registry() *netlist.Registry {
	return registry
}

// New constructs a fresh, un-elaborated Demo module container.
func New() (*netlist.Container, error) {
	class, err := registry.Get("Demo", netlist.ModuleClassKind)
	if err != nil {
		return nil, err
	}

	return netlist.NewContainer("Demo", class), nil
}

func rtl(c *netlist.Container, ports map[string]*netlist.ModInstScalar) error {
	io := ports["io"]

	modules := netlist.NewModuleGen(registry)
	interfaces := netlist.NewInterfaceGen(registry)
	var wg netlist.WireGen

	aAny, err := modules.Scalar("A")
	if err != nil {
		return err
	}

	a, _ := aAny.(*netlist.ModInstScalar)

	bAny, err := modules.Vector(2, "B")
	if err != nil {
		return err
	}

	b, _ := bAny.(*netlist.ModInstList)

	clkAny, err := interfaces.Scalar("clk_if")
	if err != nil {
		return err
	}

	clk, _ := clkAny.(*netlist.IntfInstScalar)

	// io == CLK_IF/'{n}' == a
	clkTpl := clk.Templatize("{n}")
	if err := netlist.Connect(io, clkTpl, netlist.OpEQ); err != nil {
		return err
	}

	if err := netlist.Connect(clkTpl, a, netlist.OpEQ); err != nil {
		return err
	}

	// io == CLK_IF/'{n}' == b
	clkTpl = clk.Templatize("{n}")
	if err := netlist.Connect(io, clkTpl, netlist.OpEQ); err != nil {
		return err
	}

	if err := netlist.Connect(clkTpl, b, netlist.OpEQ); err != nil {
		return err
	}

	aIFAny, err := interfaces.Scalar("a_if")
	if err != nil {
		return err
	}

	aIF, _ := aIFAny.(*netlist.IntfInstScalar)

	abIFAny, err := interfaces.Vector(2, "ab_if")
	if err != nil {
		return err
	}

	abIF, _ := abIFAny.(*netlist.IntfInstList)

	// io == A_IF == a == AB_IF == b
	if err := netlist.Connect(io, aIF, netlist.OpEQ); err != nil {
		return err
	}

	if err := netlist.Connect(aIF, a, netlist.OpEQ); err != nil {
		return err
	}

	if err := netlist.Connect(a, abIF, netlist.OpEQ); err != nil {
		return err
	}

	if err := netlist.Connect(abIF, b, netlist.OpEQ); err != nil {
		return err
	}

	// si, so = wire() * 2
	clones := wg.Scalar("").Replicate(2)
	si, so := clones[0], clones[1]

	// smid = wire[2]()
	smid := wg.Sized(2, "")

	smid0, err := smid.Index(0)
	if err != nil {
		return err
	}

	smid1, err := smid.Index(1)
	if err != nil {
		return err
	}

	// io > si > a > smid[0]
	if err := netlist.Connect(io, si, netlist.OpGT); err != nil {
		return err
	}

	if err := netlist.Connect(si, a, netlist.OpGT); err != nil {
		return err
	}

	if err := netlist.Connect(a, smid0, netlist.OpGT); err != nil {
		return err
	}

	b0, err := b.At(0)
	if err != nil {
		return err
	}

	b1, err := b.At(1)
	if err != nil {
		return err
	}

	// smid[0] > b[0]/'si'
	if err := netlist.Connect(smid0, b0.Templatize("si"), netlist.OpGT); err != nil {
		return err
	}

	// b[0]/'so' > smid[1]
	if err := netlist.Connect(b0.Templatize("so"), smid1, netlist.OpGT); err != nil {
		return err
	}

	// smid[1] > b[1]/'si'
	if err := netlist.Connect(smid1, b1.Templatize("si"), netlist.OpGT); err != nil {
		return err
	}

	// b[1]/'so' > so > io
	if err := netlist.Connect(b1.Templatize("so"), so, netlist.OpGT); err != nil {
		return err
	}

	if err := netlist.Connect(so, io, netlist.OpGT); err != nil {
		return err
	}

	type named struct {
		name string
		obj  any
	}

	for _, n := range []named{
		{"a", a}, {"b", b}, {"CLK_IF", clk}, {"A_IF", aIF}, {"AB_IF", abIF},
		{"si", si}, {"so", so}, {"smid", smid},
	} {
		if err := c.Add(n.name, n.obj); err != nil {
			return err
		}
	}

	return nil
}
