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

func newModScalar(className string) *ModInstScalar {
	class := NewClass(className, ModuleClassKind, nil)
	return NewModInstScalar(NewContainer(className, class), className)
}

func newIntfScalar(className string, ports []string, modelFn ModelFunc) *IntfInstScalar {
	class := NewClass(className, InterfaceClassKind, map[string]ModelDef{
		"rtl": {Fn: modelFn, Ports: ports},
	})

	return NewIntfInstScalar(NewContainer(className, class), className)
}

func TestConnectModuleGreaterThanNetBindsOutput(t *testing.T) {
	m := newModScalar("A")
	w := NewNamedWire("clk")

	require.NoError(t, Connect(m, w, OpGT))

	pins, err := m.GetPins()
	require.NoError(t, err)
	require.Len(t, pins, 1)
	assert.Equal(t, DirOutput, pins[0].Dir)
}

func TestConnectNetGreaterThanModuleBindsInput(t *testing.T) {
	m := newModScalar("A")
	w := NewNamedWire("clk")

	require.NoError(t, Connect(w, m, OpGT))

	pins, err := m.GetPins()
	require.NoError(t, err)
	require.Len(t, pins, 1)
	assert.Equal(t, DirInput, pins[0].Dir)
}

func TestConnectInoutIgnoresSide(t *testing.T) {
	m := newModScalar("A")
	w := NewNamedWire("data")

	require.NoError(t, Connect(m, w, OpIO))

	pins, err := m.GetPins()
	require.NoError(t, err)
	require.Len(t, pins, 1)
	assert.Equal(t, DirInout, pins[0].Dir)
}

func TestConnectEqualityRejectsNet(t *testing.T) {
	m := newModScalar("A")
	w := NewNamedWire("clk")

	err := Connect(m, w, OpEQ)
	require.Error(t, err)
	assert.True(t, IsKind(err, TypeErr))
}

func TestConnectRejectsTwoNonModuleOperands(t *testing.T) {
	a := NewNamedWire("a")
	b := NewNamedWire("b")

	err := Connect(a, b, OpGT)
	require.Error(t, err)
	assert.True(t, IsKind(err, TypeErr))
}

func TestConnectModuleEqualsInterfaceUsesModportZero(t *testing.T) {
	var gotDir Dir

	iface := newIntfScalar("clk_if", []string{"a", "b"}, func(c *Container, ports map[string]*ModInstScalar) error {
		w := NewNamedWire("clk")
		if err := Connect(ports["a"], w, OpGT); err != nil {
			return err
		}

		return Connect(w, ports["b"], OpGT)
	})

	require.NoError(t, iface.Make("rtl"))

	m := newModScalar("A")

	require.NoError(t, Connect(m, iface, OpEQ))

	pins, err := m.GetPins()
	require.NoError(t, err)
	require.Len(t, pins, 1)
	gotDir = pins[0].Dir
	assert.Equal(t, DirOutput, gotDir)
}

func TestConnectInterfaceEqualsModuleUsesModportOne(t *testing.T) {
	iface := newIntfScalar("clk_if", []string{"a", "b"}, func(c *Container, ports map[string]*ModInstScalar) error {
		w := NewNamedWire("clk")
		if err := Connect(ports["a"], w, OpGT); err != nil {
			return err
		}

		return Connect(w, ports["b"], OpGT)
	})

	require.NoError(t, iface.Make("rtl"))

	m := newModScalar("A")

	require.NoError(t, Connect(iface, m, OpEQ))

	pins, err := m.GetPins()
	require.NoError(t, err)
	require.Len(t, pins, 1)
	// b's pin is bound as an input (w > b), and modport 1 selects b.
	assert.Equal(t, DirInput, pins[0].Dir)
}

func TestBindIntfVectorLengthMismatch(t *testing.T) {
	modelFn := func(c *Container, ports map[string]*ModInstScalar) error {
		w := NewNamedWire("clk")
		return Connect(ports["a"], w, OpGT)
	}

	class := NewClass("clk_if", InterfaceClassKind, map[string]ModelDef{"rtl": {Fn: modelFn, Ports: []string{"a"}}})

	intfScalars := []*IntfInstScalar{
		NewIntfInstScalar(NewContainer("", class), ""),
		NewIntfInstScalar(NewContainer("", class), ""),
	}
	intfList := NewIntfInstList(intfScalars, "CLK")

	modScalars := []*ModInstScalar{newModScalar("A"), newModScalar("A"), newModScalar("A")}
	modList := NewModInstList(modScalars, "a")

	err := Connect(modList, intfList, OpEQ)
	require.Error(t, err)
	assert.True(t, IsKind(err, ConnectionErr))
}

func TestTemplatizeWireReturnsNamedCopy(t *testing.T) {
	w := NewNamedWire("foo")

	cp, err := Templatize(w, "{name}_n")
	require.NoError(t, err)

	wire, ok := cp.(*Wire)
	require.True(t, ok)
	assert.Equal(t, "foo_n", wire.Fname())
	// The original is untouched (templatizing a Wire is a copy).
	assert.Equal(t, "foo", w.Fname())
}

func TestTemplatizeRejectsUnsupportedType(t *testing.T) {
	_, err := Templatize(42, "{n}")
	require.Error(t, err)
	assert.True(t, IsKind(err, TypeErr))
}
