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
	"runtime/debug"

	"github.com/consensys/go-isavm/pkg/util"
	"github.com/consensys/go-isavm/pkg/vm/word"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "isavm",
	Short: "A toolbox for small instruction set machines.",
	Long:  "A toolbox for compiling and executing programs over small instruction set machines.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("isavm ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	stats := util.NewPerfStats()
	//
	atexit.Register(func() {
		stats.Log("isavm")
	})
	//
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	//
	atexit.Exit(0)
}

// WordAgnosticCmd represents a command to be executed for a given kind of
// machine word.
type WordAgnosticCmd struct {
	Word     word.Config
	Function func(*cobra.Command, []string)
}

// Run a word agnostic top-level command.
func runWordAgnosticCmd(cmd *cobra.Command, args []string, cmds []WordAgnosticCmd) {
	var (
		wordName = GetString(cmd, "word")
		// Word configuration
		config = word.GetConfig(wordName)
	)
	// Sanity check
	if config == nil {
		fmt.Printf("unknown word \"%s\"\n", wordName)
		exit(3)
	}
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	// Find command to dispatch
	for _, c := range cmds {
		if c.Word == *config {
			// Match
			c.Function(cmd, args)
			// Done
			return
		}
	}
	//
	fmt.Printf("word %s unsupported for command '%s'\n", wordName, cmd.Name())
	exit(2)
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("word", "w", word.INT64.Name, "machine word to use throughout")
}
