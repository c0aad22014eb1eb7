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

import "sync"

// ClassKind distinguishes the two families a Class (and hence an Instance)
// can belong to.
type ClassKind uint8

const (
	// ModuleClassKind identifies a Module class.
	ModuleClassKind ClassKind = iota
	// InterfaceClassKind identifies an Interface class.
	InterfaceClassKind
)

func (k ClassKind) String() string {
	if k == InterfaceClassKind {
		return "interface"
	}

	return "module"
}

// ModelFunc is a model builder: given the container it is constructing the
// body of and the port-proxy instances keyed by formal parameter name, it
// populates the container by calling Container.Add. This is the Go-native
// replacement for mint/miny.py's `model` descriptor, which invoked a Python
// method and scanned its `return locals()` dict for unnamed children: here
// the builder names children explicitly via Add, since Go has no analogue
// of scanning a function's local variable bindings.
type ModelFunc func(c *Container, ports map[string]*ModInstScalar) error

// ModelDef pairs a model builder with the formal port names it expects,
// replacing the reflection mint/miny.py's `model` descriptor performs via
// inspect.getargspec on the wrapped Python method (Go has no equivalent way
// to recover a func's declared parameter names at runtime).
type ModelDef struct {
	Fn    ModelFunc
	Ports []string
}

// Class is a registered (or auto-created) Module or Interface definition: a
// name, a kind, and the set of named model builders available on it.
// Mirrors the role played by a Python class registered via
// mint/miny.py's RegisterMeta/register.
type Class struct {
	Name   string
	Kind   ClassKind
	models map[string]ModelDef
}

// NewClass constructs a class with the given models. Passing a nil or empty
// map is valid — such a class participates only as a leaf (§4.G: "if M is
// not defined on a given child, the child is left un-elaborated").
func NewClass(name string, kind ClassKind, models map[string]ModelDef) *Class {
	if models == nil {
		models = map[string]ModelDef{}
	}

	return &Class{Name: name, Kind: kind, models: models}
}

// Model looks up a named model builder on this class.
func (c *Class) Model(name string) (ModelDef, bool) {
	def, ok := c.models[name]
	return def, ok
}

// Registry is a process-wide mapping from name to (class, kind), mirroring
// mint/max.py's Registry. Unlike the Python original (a bare class-level
// dict), this is an explicit, instantiable type: the DSL surface may keep
// one shared default instance for convenience, but nothing requires it (spec
// §5: "Implementations MAY make generators context-local").
type Registry struct {
	mu      sync.Mutex
	entries map[string]*Class
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]*Class{}}
}

// Register inserts a class under its own name. Re-registering any name —
// regardless of whether the kind matches — fails, mirroring mint/max.py's
// Registry.register.
func (r *Registry) Register(class *Class) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[class.Name]; exists {
		return newError(RegistrationErr, "'%s' is already registered", class.Name)
	}

	r.entries[class.Name] = class

	return nil
}

// Get looks up a registered class by name, failing if absent or if it was
// registered under a different kind.
func (r *Registry) Get(name string, kind ClassKind) (*Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	class, ok := r.entries[name]
	if !ok {
		return nil, newError(RegistrationErr, "'%s' is not registered", name)
	}

	if class.Kind != kind {
		return nil, newError(RegistrationErr, "'%s' is already registered as a different kind ('%s')", name, class.Kind)
	}

	return class, nil
}

// GetOrCreate returns the registered class for name if present (subject to
// the same kind check as Get); otherwise it fabricates a fresh, unregistered
// synthetic class of the requested kind and returns it — a later explicit
// Register of that name still succeeds, since the synthetic class was never
// stored (spec §4.C, §9 "Runtime synthesis of a class by name").
func (r *Registry) GetOrCreate(name string, kind ClassKind) (*Class, error) {
	r.mu.Lock()
	class, ok := r.entries[name]
	r.mu.Unlock()

	if !ok {
		return NewClass(name, kind, nil), nil
	}

	if class.Kind != kind {
		return nil, newError(RegistrationErr, "'%s' is already registered as a different kind ('%s')", name, class.Kind)
	}

	return class, nil
}

// defaultRegistry is a shared registry for callers that do not need an
// isolated one. pkg/library registers into whichever Registry it is given,
// and internal/demo builds its own. Callers that need independent
// elaborations in the same process should construct their own Registry
// instead (spec §5's concurrency caveat).
var defaultRegistry = NewRegistry() //nolint:gochecknoglobals

// DefaultRegistry returns the shared process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
