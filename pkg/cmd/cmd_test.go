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
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-isavm/pkg/arch"
	"github.com/consensys/go-isavm/pkg/vm/word"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	values := ParseAssignments[word.Int]([]string{"a=7", "c=-1", "b=+3"})
	//
	assert.Equal(t, map[string]word.Int{"a": 7, "b": 3, "c": -1}, values)
}

func TestRegisterNames(t *testing.T) {
	var (
		names = registerNames()
		regs  = arch.Registers[word.Int]()
	)
	//
	require.Len(t, names, len(regs.Contents()))
	//
	for i, name := range names {
		address, err := regs.Address(name)
		require.NoError(t, err)
		assert.Equal(t, uint(i), address)
	}
}

func TestDispatchTables(t *testing.T) {
	for _, c := range runCmds {
		assert.NotNil(t, word.GetConfig(c.Word.Name))
	}
	// Circuits need integer words
	for _, c := range evalCmds {
		assert.True(t, c.Word.Integer, c.Word.Name)
	}
	//
	assert.Contains(t, integerSets[word.Int](), "tlock")
	assert.NotContains(t, wordSets[word.Field](), "tlock")
}

var countdown = `cpy a b
dec a
jnz a -1
out b
`

func TestRunCmd_Set(t *testing.T) {
	program := writeFile(t, "countdown.asm", countdown)
	//
	for _, w := range []string{"int64", "uint16", "big", "bls12_377"} {
		out, code := runCommand(t, "run", "--word", w, "--set", "a=3", program)
		//
		assert.Equal(t, 0, code, w)
		assert.Equal(t, "halted after 8 steps (pc=4)\nb = 3\nout: 3\n", out, w)
	}
}

func TestRunCmd_MaxSteps(t *testing.T) {
	program := writeFile(t, "countdown.asm", countdown)
	out, code := runCommand(t, "run", "-s", "a=3", "--max-steps", "4", program)
	//
	assert.Equal(t, 0, code)
	assert.Equal(t, "stopped after 4 steps (pc=2)\na = 1\nb = 3\n", out)
}

func TestRunCmd_SyntaxError(t *testing.T) {
	program := writeFile(t, "broken.asm", "cpy 1 a\nfoo b\n")
	out, code := runCommand(t, "run", program)
	//
	assert.Equal(t, 4, code)
	assert.Equal(t, program+":2:1-4 unknown instruction \"foo\"\n\nfoo b\n^^^\n", out)
}

func TestRunCmd_UnknownIsa(t *testing.T) {
	program := writeFile(t, "countdown.asm", countdown)
	out, code := runCommand(t, "run", "--word", "bls12_377", "--isa", "tlock", program)
	//
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "instruction set \"tlock\" unavailable")
}

func TestEvalCmd_Override(t *testing.T) {
	circuit := writeFile(t, "circuit.txt", "123 -> x\n456 -> y\nx AND y -> d\nNOT x -> h\n")
	//
	out, code := runCommand(t, "eval", "--word", "uint16", circuit, "d", "h")
	assert.Equal(t, 0, code)
	assert.Equal(t, "d = 72\nh = 65412\n", out)
	//
	out, code = runCommand(t, "eval", "-o", "x=8", circuit, "d", "y")
	assert.Equal(t, 0, code)
	assert.Equal(t, "d = 8\ny = 456\n", out)
}

func TestEvalCmd_Cycle(t *testing.T) {
	circuit := writeFile(t, "cycle.txt", "y -> x\nx -> y\n")
	out, code := runCommand(t, "eval", circuit, "x")
	//
	assert.Equal(t, 4, code)
	assert.Empty(t, out)
}

// ==================================================================
// Framework
// ==================================================================

// Code with which a command exited.
type exitCode int

func writeFile(t *testing.T, name string, contents string) string {
	t.Helper()
	//
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	//
	return path
}

// Run the root command with a given set of arguments, returning whatever was
// printed along with the exit code.
func runCommand(t *testing.T, args ...string) (string, int) {
	t.Helper()
	// Flag values persist between executions
	resetFlags(rootCmd.PersistentFlags())
	resetFlags(rootCmd.Flags())
	//
	for _, c := range rootCmd.Commands() {
		resetFlags(c.Flags())
	}
	//
	reader, writer, err := os.Pipe()
	require.NoError(t, err)
	//
	var (
		stdout = os.Stdout
		halt   = exit
		code   = 0
	)
	//
	os.Stdout = writer
	exit = func(c int) { panic(exitCode(c)) }
	//
	func() {
		defer func() {
			os.Stdout = stdout
			exit = halt
			//
			if r := recover(); r != nil {
				c, ok := r.(exitCode)
				if !ok {
					panic(r)
				}
				//
				code = int(c)
			}
		}()
		//
		rootCmd.SetArgs(args)
		require.NoError(t, rootCmd.Execute())
	}()
	//
	require.NoError(t, writer.Close())
	out, err := io.ReadAll(reader)
	require.NoError(t, err)
	//
	return string(out), code
}

func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if v, ok := f.Value.(pflag.SliceValue); ok {
			_ = v.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		//
		f.Changed = false
	})
}
