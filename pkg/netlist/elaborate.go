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

import log "github.com/sirupsen/logrus"

// Elaborate builds the top container for model, then tells every direct
// child to build the same model, mirroring mint/miny.py's
// Module.generate_verilog / verilog() driver loop (spec §4.G):
//
//   - The top container's model MUST exist; a missing model is fatal.
//   - Each direct module-instance child is told to Make(model); a child
//     whose class doesn't define that model is left as an un-elaborated
//     leaf (its ModelDoesNotExist error is swallowed).
//   - Each direct interface-instance child is told to Make(model)
//     unconditionally — every interface is expected to define every model
//     its containing design uses, so a missing one is fatal — and then,
//     one level further, so is every interface-instance nested inside that
//     interface's own body (interfaces-within-interfaces).
//
// This elaborates exactly two levels below top (one for modules, two for
// interfaces), matching the original tool's own depth — a design with
// module-instance grandchildren elaborates those by constructing and
// elaborating them as their own top-level containers, not through a single
// automatic deep walk.
func Elaborate(top *Container, model string) error {
	if err := top.Make(model); err != nil {
		return err
	}

	log.WithField("module", top.Name()).WithField("model", model).Debug("elaborating top module")

	for _, inst := range top.ModuleInstances() {
		if err := inst.Make(model); err != nil {
			if IsKind(err, ModelNotExistErr) {
				log.WithField("instance", inst.Name()).WithField("model", model).Debug("model not defined, leaving as leaf")
				continue
			}

			return err
		}
	}

	for _, inst := range top.InterfaceInstances() {
		if err := inst.Make(model); err != nil {
			return err
		}

		for _, nested := range inst.Container().InterfaceInstances() {
			if err := nested.Make(model); err != nil {
				return err
			}
		}
	}

	return nil
}
