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
package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrathi/mint-go/pkg/netlist"
)

func TestRegisterInstallsAllFourClasses(t *testing.T) {
	r := netlist.NewRegistry()
	require.NoError(t, Register(r))

	for _, name := range []string{"clk_if", "a_if", "ab_if", "tab_if"} {
		_, err := r.Get(name, netlist.InterfaceClassKind)
		assert.NoError(t, err, "expected %q to be registered", name)
	}
}

func TestRegisterRejectsDoubleRegistration(t *testing.T) {
	r := netlist.NewRegistry()
	require.NoError(t, Register(r))

	err := Register(r)
	require.Error(t, err)
	assert.True(t, netlist.IsKind(err, netlist.RegistrationErr))
}

func TestClkIFBindsClkAndResetAcrossBothPorts(t *testing.T) {
	class := ClkIF()

	body := netlist.NewContainer("clk_if", class)
	require.NoError(t, body.Make("rtl"))

	a, ok := body.ModuleInstanceByName("a")
	require.True(t, ok)

	aPins, err := a.GetPins()
	require.NoError(t, err)
	require.Len(t, aPins, 2)

	b, ok := body.ModuleInstanceByName("b")
	require.True(t, ok)

	bPins, err := b.GetPins()
	require.NoError(t, err)
	require.Len(t, bPins, 2)

	// a drives both signals out (Output); b receives them (Input).
	for _, p := range aPins {
		assert.Equal(t, netlist.DirOutput, p.Dir)
	}

	for _, p := range bPins {
		assert.Equal(t, netlist.DirInput, p.Dir)
	}

	// clk/reset are scalar wires (demo.py's wire(), not wire[1]()), so
	// neither pin name nor net carries a bit index.
	for _, p := range aPins {
		name, err := p.Name()
		require.NoError(t, err)
		assert.Contains(t, []string{"clk", "reset"}, name)

		wire, ok := p.Net().(*netlist.Wire)
		require.True(t, ok)
		assert.True(t, wire.IsScalar())
	}
}

func TestABIFWenCollapsesToScalarWire(t *testing.T) {
	class := ABIF()

	body := netlist.NewContainer("ab_if", class)
	require.NoError(t, body.Make("rtl"))

	a, ok := body.ModuleInstanceByName("a")
	require.True(t, ok)

	pins, err := a.GetPins()
	require.NoError(t, err)

	var wenSeen bool

	for _, p := range pins {
		name, err := p.Name()
		require.NoError(t, err)

		if name == "wen" {
			wenSeen = true

			wire, ok := p.Net().(*netlist.Wire)
			require.True(t, ok)
			assert.True(t, wire.IsScalar())
		}
	}

	assert.True(t, wenSeen, "expected a wen pin")
}

// TestABIFAddressDataDirections is boundary scenario S6: `>  address 8`
// binds as a plain directional wire (input on the receiving side), `<>
// data 8` binds bidirectionally, and `> wen 0` collapses to a scalar (the
// sibling case to the wen assertion above).
func TestABIFAddressDataDirections(t *testing.T) {
	class := ABIF()

	body := netlist.NewContainer("ab_if", class)
	require.NoError(t, body.Make("rtl"))

	b, ok := body.ModuleInstanceByName("b")
	require.True(t, ok)

	pins, err := b.GetPins()
	require.NoError(t, err)

	dirs := map[string]netlist.Dir{}
	widths := map[string]int{}

	for _, p := range pins {
		name, err := p.Name()
		require.NoError(t, err)

		dirs[name] = p.Dir
		widths[name] = p.Net().Len()
	}

	assert.Equal(t, netlist.DirInput, dirs["address"])
	assert.Equal(t, 8, widths["address"])
	assert.Equal(t, netlist.DirInout, dirs["data"])
	assert.Equal(t, 8, widths["data"])
}

func TestTabIFDescriptionsPropagateToWires(t *testing.T) {
	class := TabIF()

	body := netlist.NewContainer("tab_if", class)
	require.NoError(t, body.Make("rtl"))

	a, ok := body.ModuleInstanceByName("a")
	require.True(t, ok)

	pins, err := a.GetPins()
	require.NoError(t, err)

	found := false

	for _, p := range pins {
		name, err := p.Name()
		require.NoError(t, err)

		if name != "req" {
			continue
		}

		wire, ok := p.Net().(*netlist.Wire)
		require.True(t, ok)

		desc, ok := wire.Desc()
		require.True(t, ok)
		assert.Equal(t, "request", desc)
		found = true
	}

	assert.True(t, found, "expected a req pin")
}
