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
package main

import (
	"fmt"
	"os"

	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rrathi/mint-go/internal/demo"
	"github.com/rrathi/mint-go/pkg/netlist"
	"github.com/rrathi/mint-go/pkg/verilog"
)

var generateCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "generate [flags]",
	Short: "elaborate the demo module and emit Verilog.",
	Long:  "Elaborate the worked Demo module and emit its top-level Verilog definition.",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		model := GetString(cmd, "model")
		output := GetString(cmd, "output")

		top, err := demo.New()
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}

		log.WithField("model", model).Debug("elaborating")

		if err := netlist.Elaborate(top, model); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}

		if GetFlag(cmd, "dump-ir") {
			if err := dumpIR(os.Stdout, top); err != nil {
				fmt.Println(err.Error())
				os.Exit(1)
			}
		}

		opts := verilog.Options{
			OutType: GetString(cmd, "out-type"),
			Autos:   GetFlag(cmd, "autos") || autosFitTerminal(),
		}

		var w *os.File

		if output == "" || output == "-" {
			w = os.Stdout
		} else {
			f, err := os.Create(output)
			if err != nil {
				fmt.Println(err.Error())
				os.Exit(1)
			}
			defer f.Close()

			w = f
		}

		g := verilog.NewGenerator(top, opts)
		if err := g.GenerateModule(w); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	},
}

// autosFitTerminal decides whether AUTOWIRE/AUTOINST placeholders (wide
// comment columns) are worth emitting by default, based on whether stdout
// is a sufficiently wide terminal. Grounded on pkg/util/termio/terminal.go's
// term.GetSize use; unlike that file this is a one-shot width probe, not an
// interactive raw-mode session.
func autosFitTerminal() bool {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return false
	}

	w, _, err := term.GetSize(fd)

	return err == nil && w >= 100
}

type irPin struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`
}

type irInstance struct {
	Name  string  `json:"name"`
	Class string  `json:"class"`
	Pins  []irPin `json:"pins"`
}

type irModule struct {
	Name      string       `json:"name"`
	Instances []irInstance `json:"instances"`
}

// dumpIR writes a flattened summary of the elaborated container's direct
// module instances and their bound pins, for inspecting the IR without
// rendering Verilog.
func dumpIR(w *os.File, top *netlist.Container) error {
	mod := irModule{Name: top.Name()}

	for _, inst := range top.ModuleInstances() {
		entry := irInstance{Name: inst.VerilogName(), Class: inst.Container().Class().Name}

		pins, err := inst.GetPins()
		if err != nil {
			return err
		}

		for _, p := range pins {
			name, err := p.Name()
			if err != nil {
				return err
			}

			entry.Pins = append(entry.Pins, irPin{Name: name, Dir: p.Dir.String()})
		}

		mod.Instances = append(mod.Instances, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(mod)
}

func init() {
	generateCmd.Flags().StringP("model", "m", "rtl", "model to elaborate")
	generateCmd.Flags().StringP("output", "o", "-", "output file (\"-\" for stdout)")
	generateCmd.Flags().String("out-type", "", "type keyword (e.g. \"logic\") printed before output declarations")
	generateCmd.Flags().Bool("autos", false, "force AUTOWIRE/AUTOINST placeholders regardless of terminal width")
	generateCmd.Flags().Bool("dump-ir", false, "dump the elaborated instance/pin IR as JSON before emitting Verilog")
	rootCmd.AddCommand(generateCmd)
}
