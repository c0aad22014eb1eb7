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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeafModule(name string) *ModInstScalar {
	class := NewClass(name, ModuleClassKind, nil)
	return NewModInstScalar(NewContainer(name, class), name)
}

func TestModInstScalarTemplatizeSharesPinList(t *testing.T) {
	m := newLeafModule("A")

	net := NewNamedWire("clk")
	m.AddPin(NewPin(DirInput, m, net, m.Template()))

	cp := m.Templatize("{n}_x")

	require.True(t, cp.Template().HasValue())
	assert.Equal(t, "{n}_x", cp.Template().Unwrap())
	assert.True(t, m.Template().IsEmpty())

	// Adding a pin through the templatized copy must be visible on the
	// original scalar too, since Templatize is documented as a shallow copy
	// sharing the same underlying pins slice.
	cp.AddPin(NewPin(DirOutput, cp, net, cp.Template()))

	origPins, err := m.GetPins()
	require.NoError(t, err)
	assert.Len(t, origPins, 2)
}

func TestModInstScalarVerilogNameHasNoBrackets(t *testing.T) {
	scalars := []*ModInstScalar{newLeafModule("B"), newLeafModule("B")}
	list := NewModInstList(scalars, "b")

	assert.Equal(t, "b0", scalars[0].VerilogName())
	assert.Equal(t, "b[0]", scalars[0].FormattedRepr())
	assert.Equal(t, "b1", scalars[1].VerilogName())
	_ = list
}

func TestModInstListAtOutOfRange(t *testing.T) {
	list := NewModInstList([]*ModInstScalar{newLeafModule("A"), newLeafModule("A")}, "a")

	_, err := list.At(2)
	require.Error(t, err)
	assert.True(t, IsKind(err, IndexErr))
}

func TestModInstListSliceIsAShallowView(t *testing.T) {
	scalars := []*ModInstScalar{newLeafModule("A"), newLeafModule("A"), newLeafModule("A")}
	list := NewModInstList(scalars, "a")

	sub, err := list.Slice(2, true, 1, true)
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Len())
	assert.Same(t, scalars[1], sub.Scalars()[0])
	assert.Same(t, scalars[2], sub.Scalars()[1])
}

func TestIntfInstScalarTemplatizeMutatesInPlace(t *testing.T) {
	class := NewClass("clk_if", InterfaceClassKind, nil)
	i := NewIntfInstScalar(NewContainer("clk_if", class), "CLK_IF")

	ret := i.Templatize("{n}")

	assert.Same(t, i, ret)
	require.True(t, i.Template().HasValue())
	assert.Equal(t, "{n}", i.Template().Unwrap())
}

func TestModInstListMakeBuildsEveryScalar(t *testing.T) {
	called := 0
	class := NewClass("A", ModuleClassKind, map[string]ModelDef{
		"rtl": {Fn: func(c *Container, ports map[string]*ModInstScalar) error {
			called++
			return nil
		}},
	})

	scalars := []*ModInstScalar{
		NewModInstScalar(NewContainer("", class), ""),
		NewModInstScalar(NewContainer("", class), ""),
	}
	list := NewModInstList(scalars, "a")

	require.NoError(t, list.Make("rtl"))
	assert.Equal(t, 2, called)
}
