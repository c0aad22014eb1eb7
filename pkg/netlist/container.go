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
	log "github.com/sirupsen/logrus"

	"github.com/rrathi/mint-go/pkg/util"
)

// Container is the body of a Module or Interface instance: the ordered set
// of child module-instances and interface-instances it has bound, and the
// ordered list of its own formal ports. Mirrors mint/min.py's MintObject
// (and its Module/Interface subclasses, which add no behaviour of their
// own — so this one type serves both, distinguished by Class.Kind).
type Container struct {
	name  string
	class *Class

	// moduleInstances and interfaceInstances are kept as first-added-order
	// slices of name/child pairs rather than maps, since Go maps don't
	// preserve insertion order and both the Verilog emitter and the
	// model-builder's declared locals depend on it (spec §4.E "Flattening
	// iteration").
	moduleInstances    []util.Pair[string, any] // any is *ModInstScalar | *ModInstList
	interfaceInstances []util.Pair[string, any] // any is *IntfInstScalar | *IntfInstList

	// portAtPos names this container's formal ports, in declaration order
	// (populated by Make from the invoked model's declared parameter
	// names).
	portAtPos []string
}

// NewContainer constructs an (empty, un-elaborated) container for the given
// class. If name is empty, it defaults to the class's name, mirroring
// mint/min.py's MintObject.__init__ defaulting self._name to
// self.__class__.__name__.
func NewContainer(name string, class *Class) *Container {
	if name == "" {
		name = class.Name
	}

	return &Container{name: name, class: class}
}

// Name returns this container's name.
func (c *Container) Name() string { return c.name }

// Class returns the class this container was built from.
func (c *Container) Class() *Class { return c.class }

// PortAtPos returns the ordered list of this container's formal port names,
// populated once Make has run.
func (c *Container) PortAtPos() []string { return c.portAtPos }

// Add names and registers a child, mirroring mint/min.py's MintObject.add
// combined with the `model` descriptor's local-variable naming scan (spec
// §4.E): a Wire is only validated to have a name (inheriting `name` if it
// had none); a module/interface instance (scalar or vector) is likewise
// named only if it had none, and recorded as a child under its resulting
// name. Go has no equivalent of scanning a function's
// local bindings, so model builders call Add explicitly for every object
// they want named — the direct analogue of "the container scans local
// bindings by the name they're assigned to".
func (c *Container) Add(name string, obj any) error {
	switch v := obj.(type) {
	case *Wire:
		if v.Name() == "" {
			v.SetName(name)
		}

		if v.Name() == "" {
			return newError(ValueErr, "object has no name")
		}
	case *ModInstScalar:
		if v.Name() == "" {
			v.SetName(name)
		}

		c.addModuleInstance(v.Name(), v)
	case *ModInstList:
		if v.Name() == "" {
			v.SetName(name)
		}

		c.addModuleInstance(v.Name(), v)
	case *IntfInstScalar:
		if v.Name() == "" {
			v.SetName(name)
		}

		c.addInterfaceInstance(v.Name(), v)
	case *IntfInstList:
		if v.Name() == "" {
			v.SetName(name)
		}

		c.addInterfaceInstance(v.Name(), v)
	default:
		return newError(ValueErr, "cannot add object of unsupported type to container")
	}

	return nil
}

func addChild(children []util.Pair[string, any], name string, v any) []util.Pair[string, any] {
	for i := range children {
		if children[i].Left == name {
			children[i].Right = v
			return children
		}
	}

	return append(children, util.NewPair[string, any](name, v))
}

func (c *Container) addModuleInstance(name string, v any) {
	c.moduleInstances = addChild(c.moduleInstances, name, v)
}

func (c *Container) addInterfaceInstance(name string, v any) {
	c.interfaceInstances = addChild(c.interfaceInstances, name, v)
}

// ModuleInstances returns every module-instance child, with vector children
// expanded into their scalars, in first-added order (spec §4.E "Flattening
// iteration").
func (c *Container) ModuleInstances() []*ModInstScalar {
	var out []*ModInstScalar

	for _, entry := range c.moduleInstances {
		switch v := entry.Right.(type) {
		case *ModInstScalar:
			out = append(out, v)
		case *ModInstList:
			out = append(out, v.Scalars()...)
		}
	}

	return out
}

// InterfaceInstances returns every interface-instance child, with vector
// children expanded into their scalars, in first-added order.
func (c *Container) InterfaceInstances() []*IntfInstScalar {
	var out []*IntfInstScalar

	for _, entry := range c.interfaceInstances {
		switch v := entry.Right.(type) {
		case *IntfInstScalar:
			out = append(out, v)
		case *IntfInstList:
			out = append(out, v.Scalars()...)
		}
	}

	return out
}

// ModuleInstanceByName looks up an (unflattened) module-instance child
// directly by name — used when resolving a modport, which always refers to
// one specific scalar port-proxy.
func (c *Container) ModuleInstanceByName(name string) (*ModInstScalar, bool) {
	for _, entry := range c.moduleInstances {
		if entry.Left == name {
			v, ok := entry.Right.(*ModInstScalar)
			return v, ok
		}
	}

	return nil, false
}

// PortInstance returns this container's unique "module ports" pseudo-child,
// required by the Verilog emitter (spec §3 invariant: "The container
// designated isport is unique per module and appears exactly once in the
// flattened child list").
func (c *Container) PortInstance() (*ModInstScalar, error) {
	var found *ModInstScalar

	count := 0

	for _, inst := range c.ModuleInstances() {
		if inst.IsPort() {
			found = inst
			count++
		}
	}

	if count != 1 {
		return nil, newError(ValueErr, "container '%s' has %d port pseudo-instances, expected exactly 1", c.name, count)
	}

	return found, nil
}

// Make invokes the named model builder on this container, synthesizing one
// port pseudo-instance per declared port name first (spec §4.G steps 2-4).
// Calling Make again (e.g. because the same class participates under
// different model names across a design) simply re-runs the builder from
// scratch; since the builder is a deterministic function of its port
// proxies, this is idempotent in effect.
func (c *Container) Make(model string) error {
	def, ok := c.class.Model(model)
	if !ok {
		return newError(ModelNotExistErr, "'%s' of '%s'", model, c.name)
	}

	log.WithField("container", c.name).WithField("model", model).Debug("elaborating model")

	c.portAtPos = append([]string(nil), def.Ports...)
	ports := make(map[string]*ModInstScalar, len(def.Ports))

	for _, name := range def.Ports {
		portClass := NewClass("_port_", ModuleClassKind, nil)
		portBody := NewContainer("_port_", portClass)
		inst := NewModInstScalar(portBody, name)
		inst.MarkPort()
		ports[name] = inst
		c.addModuleInstance(name, inst)
	}

	return def.Fn(c, ports)
}
