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

	"github.com/rrathi/mint-go/pkg/util"
)

// TestPinNameFailsForUnnamedConst is boundary scenario S5: a pin bound
// straight to a Const, with no explicit `/"tpl"` override, has no name to
// fall back to (Const implements Net but not Named) and must fail with
// ConnectionErr.
func TestPinNameFailsForUnnamedConst(t *testing.T) {
	m := newModScalar("A")

	c, err := NewConst(4, 0xF, RadixHex)
	require.NoError(t, err)

	pin := NewPin(DirInput, m, c, util.None[string]())

	_, err = pin.Name()
	require.Error(t, err)
	assert.True(t, IsKind(err, ConnectionErr))
}

func TestPinNameUsesExplicitTemplateOverConstNet(t *testing.T) {
	m := newModScalar("A")

	c, err := NewConst(4, 0xF, RadixHex)
	require.NoError(t, err)

	pin := NewPin(DirInput, m, c, util.Some("ctrl"))

	name, err := pin.Name()
	require.NoError(t, err)
	assert.Equal(t, "ctrl", name)
}

func TestIntfPinModportOutOfRangeFails(t *testing.T) {
	class := NewClass("clk_if", InterfaceClassKind, map[string]ModelDef{
		"rtl": {Fn: func(c *Container, ports map[string]*ModInstScalar) error { return nil }, Ports: []string{"a"}},
	})

	iface := NewIntfInstScalar(NewContainer("clk_if", class), "CLK")
	require.NoError(t, iface.Make("rtl"))

	ip := NewIntfPin(newModScalar("A"), iface, ModportByPos(5), DirAny, util.None[string]())

	_, err := ip.GetPins()
	require.Error(t, err)
	assert.True(t, IsKind(err, IndexErr))
}
