// Copyright Consensys Software Inc.
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
package cmd

import (
	"fmt"

	"github.com/consensys/go-isavm/pkg/arch"
	"github.com/consensys/go-isavm/pkg/vm/graph"
	"github.com/consensys/go-isavm/pkg/vm/word"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] circuit.txt [wire ...]",
	Short: "Evaluate the wires of a circuit.",
	Long: `Compile a circuit of logic gates, where each line defines the signal on
one wire, and report the signals on the given wires (or on all wires if none
are given).`,
	Run: func(cmd *cobra.Command, args []string) {
		runWordAgnosticCmd(cmd, args, evalCmds)
	},
}

// Available instances
var evalCmds = []WordAgnosticCmd{
	{word.INT64, runEvalCmd[word.Int]},
	{word.UINT16, runEvalCmd[word.Uint16]},
	{word.BIG, runEvalCmd[word.Big]},
}

func runEvalCmd[W word.Integer[W]](cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println(cmd.UsageString())
		exit(1)
	}
	//
	var (
		eval      = graph.New[W]()
		overrides = ParseAssignments[W](GetStringArray(cmd, "override"))
		wires     = args[1:]
	)
	// Compile circuit, or print errors
	if errs := eval.CompileFile(arch.Circuit[W](), ReadSourceFile(args[0])); len(errs) > 0 {
		exitWithSyntaxErrors(errs)
	}
	//
	for name, value := range overrides {
		eval.Override(name, value)
	}
	//
	if len(wires) == 0 {
		wires = eval.Names()
	}
	//
	for _, wire := range wires {
		value, err := eval.Resolve(wire)
		//
		if err != nil {
			log.Error(err)
			exit(4)
		}
		//
		fmt.Printf("%s = %s\n", wire, value.String())
	}
}

func init() {
	evalCmd.Flags().StringArrayP("override", "o", nil, "override the signal on a wire (e.g. b=956)")
	rootCmd.AddCommand(evalCmd)
}
