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
	"os"
	"strings"

	"github.com/consensys/go-isavm/pkg/util/source"
	"github.com/consensys/go-isavm/pkg/vm/word"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"golang.org/x/term"
)

// Terminates the process with a given code, after running any registered exit
// handlers.
var exit = atexit.Exit

// ANSI escapes used to highlight syntax errors.
const (
	HIGHLIGHT = "\033[31m"
	RESET     = "\033[0m"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		exit(2)
	}

	return r
}

// GetStringArray gets an expected string array flag, or exits if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		exit(2)
	}

	return r
}

// ReadSourceFile reads a given program file, or exits if an error arises.
func ReadSourceFile(filename string) *source.File {
	files, err := source.ReadFiles(filename)
	//
	if err != nil {
		fmt.Println(errors.Wrapf(err, "reading program %s", filename))
		exit(3)
	}
	//
	log.Debugf("read %d bytes from %s", len(files[0].Contents()), filename)
	//
	return &files[0]
}

// ParseAssignments parses a set of assignments of the form "name=value", or
// exits if an error arises.
func ParseAssignments[W word.Word[W]](assignments []string) map[string]W {
	var values = make(map[string]W)
	//
	for _, a := range assignments {
		name, text, ok := strings.Cut(a, "=")
		//
		if !ok || name == "" {
			fmt.Printf("malformed assignment \"%s\" (expected name=value)\n", a)
			exit(2)
		}
		//
		value, err := word.Parse[W](text)
		//
		if err != nil {
			fmt.Println(errors.Wrapf(err, "assignment to %s", name))
			exit(2)
		}
		//
		values[name] = value
	}
	//
	return values
}

// Report a set of syntax errors and exit.
func exitWithSyntaxErrors(errs []source.SyntaxError) {
	for i := range errs {
		printSyntaxError(&errs[i])
	}
	//
	exit(4)
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(HIGHLIGHT + strings.Repeat("^", length) + RESET)
	} else {
		fmt.Println(strings.Repeat("^", length))
	}
}
