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
package isa

import "github.com/consensys/go-isavm/pkg/util/source"

// Program is a sequence of parsed instructions, along with the instruction set
// against which they were parsed (and which determines the action of each).
type Program[W any, A any] struct {
	set  *Set[W, A]
	file *source.File
	code []*Instruction[W]
}

// Len returns the number of instructions in this program.
func (p *Program[W, A]) Len() int {
	return len(p.code)
}

// At returns the instruction at a given position.
func (p *Program[W, A]) At(pc int) *Instruction[W] {
	return p.code[pc]
}

// Code returns the instructions making up this program.
func (p *Program[W, A]) Code() []*Instruction[W] {
	return p.code
}

// Action returns the action to execute for a given instruction.
func (p *Program[W, A]) Action(insn *Instruction[W]) A {
	return p.set.Action(insn)
}

// Set returns the instruction set against which this program was parsed.
func (p *Program[W, A]) Set() *Set[W, A] {
	return p.set
}

// File returns the source file from which this program was parsed.
func (p *Program[W, A]) File() *source.File {
	return p.file
}
