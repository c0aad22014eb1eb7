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

func TestContainerMakeMissingModelFails(t *testing.T) {
	class := NewClass("Leaf", ModuleClassKind, nil)
	c := NewContainer("leaf", class)

	err := c.Make("rtl")
	require.Error(t, err)
	assert.True(t, IsKind(err, ModelNotExistErr))
}

func TestContainerMakeSynthesizesPortProxies(t *testing.T) {
	class := NewClass("Top", ModuleClassKind, map[string]ModelDef{
		"rtl": {Fn: func(c *Container, ports map[string]*ModInstScalar) error {
			assert.Len(t, ports, 1)
			assert.NotNil(t, ports["io"])
			assert.True(t, ports["io"].IsPort())

			return nil
		}, Ports: []string{"io"}},
	})

	c := NewContainer("top", class)
	require.NoError(t, c.Make("rtl"))
	assert.Equal(t, []string{"io"}, c.PortAtPos())

	port, err := c.PortInstance()
	require.NoError(t, err)
	assert.Equal(t, "io", port.Name())
}

func TestContainerPortInstanceFailsWithoutExactlyOnePort(t *testing.T) {
	class := NewClass("Odd", ModuleClassKind, nil)
	c := NewContainer("odd", class)

	_, err := c.PortInstance()
	require.Error(t, err)
	assert.True(t, IsKind(err, ValueErr))
}

func TestContainerAddRejectsUnnamedWire(t *testing.T) {
	class := NewClass("Top", ModuleClassKind, nil)
	c := NewContainer("top", class)

	err := c.Add("", NewWire())
	require.Error(t, err)
	assert.True(t, IsKind(err, ValueErr))
}

func TestContainerAddRejectsUnsupportedType(t *testing.T) {
	class := NewClass("Top", ModuleClassKind, nil)
	c := NewContainer("top", class)

	err := c.Add("x", 42)
	require.Error(t, err)
	assert.True(t, IsKind(err, ValueErr))
}

func TestContainerModuleInstancesFlattenVectorsInOrder(t *testing.T) {
	class := NewClass("Top", ModuleClassKind, nil)
	c := NewContainer("top", class)

	a := newLeafModule("A")
	require.NoError(t, c.Add("a", a))

	bScalars := []*ModInstScalar{newLeafModule("B"), newLeafModule("B")}
	b := NewModInstList(bScalars, "b")
	require.NoError(t, c.Add("b", b))

	insts := c.ModuleInstances()
	require.Len(t, insts, 3)
	assert.Same(t, a, insts[0])
	assert.Same(t, bScalars[0], insts[1])
	assert.Same(t, bScalars[1], insts[2])
}

func TestContainerModuleInstanceByName(t *testing.T) {
	class := NewClass("Top", ModuleClassKind, nil)
	c := NewContainer("top", class)

	// An anonymous instance takes the name it is added under.
	a := NewModInstScalar(NewContainer("A", NewClass("A", ModuleClassKind, nil)), "")
	require.NoError(t, c.Add("a", a))

	got, ok := c.ModuleInstanceByName("a")
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = c.ModuleInstanceByName("missing")
	assert.False(t, ok)
}
