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
	"slices"
	"strings"

	"github.com/consensys/go-isavm/pkg/arch"
	"github.com/consensys/go-isavm/pkg/util"
	"github.com/consensys/go-isavm/pkg/vm/machine"
	"github.com/consensys/go-isavm/pkg/vm/word"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program.txt",
	Short: "Execute a program on a register machine.",
	Long: `Compile a program for a given instruction set, and execute it until the
machine halts (or the step limit is reached).  Non-zero registers are reported
on completion, along with any values output by the machine.`,
	Run: func(cmd *cobra.Command, args []string) {
		runWordAgnosticCmd(cmd, args, runCmds)
	},
}

// Available instances
var runCmds = []WordAgnosticCmd{
	{word.INT64, runRunCmd(integerSets[word.Int]())},
	{word.UINT16, runRunCmd(integerSets[word.Uint16]())},
	{word.BIG, runRunCmd(integerSets[word.Big]())},
	{word.BLS12_377, runRunCmd(wordSets[word.Field]())},
}

// Instruction sets available for a given kind of word.
type instructionSets[W any] map[string]func() *machine.Set[W]

// Instruction sets requiring only the arithmetic of a word.
func wordSets[W word.Word[W]]() instructionSets[W] {
	return instructionSets[W]{
		"assembunny": arch.Assembunny[W],
	}
}

// Instruction sets requiring integer words.
func integerSets[W word.Integer[W]]() instructionSets[W] {
	sets := wordSets[W]()
	sets["tlock"] = arch.TuringLock[W]
	//
	return sets
}

func runRunCmd[W word.Word[W]](sets instructionSets[W]) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			exit(1)
		}
		//
		var (
			isaName  = GetString(cmd, "isa")
			maxSteps = GetUint(cmd, "max-steps")
			inits    = ParseAssignments[W](GetStringArray(cmd, "set"))
			regs     = arch.Registers[W]()
			port     = machine.NewQueue[W]()
			cpu      = machine.New[W](regs).WithPort(port)
		)
		//
		set, ok := sets[isaName]
		//
		if !ok {
			fmt.Printf("instruction set \"%s\" unavailable for word %s\n", isaName, GetString(cmd, "word"))
			exit(2)
		}
		// Configure tracing
		if GetFlag(cmd, "trace") {
			log.SetLevel(log.TraceLevel)
			cpu.WithPipeline(machine.NewTraced(machine.Sequential{}))
		}
		// Initialise registers
		for name, value := range inits {
			if _, err := regs.Address(name); err != nil {
				fmt.Println(err)
				exit(2)
			}
			//
			regs.Set(name, value)
		}
		// Compile program, or print errors
		stats := util.NewPerfStats()
		//
		if errs := cpu.CompileFile(set(), ReadSourceFile(args[0])); len(errs) > 0 {
			exitWithSyntaxErrors(errs)
		}
		//
		stats.Log("compiling program")
		// Execute program
		var (
			nsteps uint
			err    error
		)
		//
		stats = util.NewPerfStats()
		//
		if maxSteps > 0 {
			nsteps, err = cpu.Execute(maxSteps)
		} else {
			nsteps, err = cpu.ExecuteAll()
		}
		//
		if err != nil {
			log.Error(err)
			exit(4)
		}
		//
		stats.Log(fmt.Sprintf("executing %d steps", nsteps))
		//
		printMachineState(cpu, regs, port, nsteps)
	}
}

func printMachineState[W word.Word[W]](cpu *machine.Cpu[W], regs *arch.RegisterFile[W], port *machine.Queue[W],
	nsteps uint) {
	//
	if cpu.Halted() {
		fmt.Printf("halted after %d steps (pc=%d)\n", nsteps, cpu.PC())
	} else {
		fmt.Printf("stopped after %d steps (pc=%d)\n", nsteps, cpu.PC())
	}
	//
	for _, name := range registerNames() {
		if val := regs.Get(name); !val.IsZero() {
			fmt.Printf("%s = %s\n", name, val.String())
		}
	}
	//
	if port.Len() > 0 {
		var outputs []string
		//
		for _, v := range port.Items() {
			outputs = append(outputs, v.String())
		}
		//
		fmt.Printf("out: %s\n", strings.Join(outputs, ", "))
	}
}

// Names of all registers in a register file, in address order.
func registerNames() []string {
	var names []string
	//
	for _, r := range slices.Concat([]rune("abcdefghijklmnopqrstuvwxyz"), []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
		[]rune("0123456789")) {
		names = append(names, string(r))
	}
	//
	return names
}

func init() {
	runCmd.Flags().StringP("isa", "i", "assembunny", "instruction set (assembunny or tlock)")
	runCmd.Flags().StringArrayP("set", "s", nil, "initialise a register (e.g. a=7)")
	runCmd.Flags().Uint("max-steps", 0, "limit the number of steps executed (0 for unlimited)")
	runCmd.Flags().Bool("trace", false, "log every step of execution")
	rootCmd.AddCommand(runCmd)
}
