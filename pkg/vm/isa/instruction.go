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

import (
	"github.com/consensys/go-isavm/pkg/util/source"
	"github.com/consensys/go-isavm/pkg/vm/operand"
)

// Instruction is a single line of a program, parsed against an instruction set
// and with all of its operands bound.  Instructions are immutable once parsed.
type Instruction[W any] struct {
	// Identifies the opcode (and hence the action) of this instruction.
	opcode uint
	// Bound operands, in the order of the operand tags of the format.
	operands []operand.Operand[W]
	// Name of the value defined by this instruction (if applicable).
	result string
	// Span of the instruction within the enclosing source file.
	span source.Span
	// Original text of the instruction.
	text string
}

// NewInstruction constructs a new instruction.  This is primarily useful for
// constructing instructions by hand (e.g. for testing).
func NewInstruction[W any](opcode uint, result string, text string, operands ...operand.Operand[W]) *Instruction[W] {
	return &Instruction[W]{opcode, operands, result, source.NewSpan(0, len(text)), text}
}

// Opcode returns the opcode identifier of this instruction.
func (p *Instruction[W]) Opcode() uint {
	return p.opcode
}

// NumOperands returns the number of operands of this instruction.
func (p *Instruction[W]) NumOperands() uint {
	return uint(len(p.operands))
}

// Operand returns the ith operand of this instruction.
func (p *Instruction[W]) Operand(i uint) operand.Operand[W] {
	return p.operands[i]
}

// Operands returns the operands of this instruction.
func (p *Instruction[W]) Operands() []operand.Operand[W] {
	return p.operands
}

// Read the current value of the ith operand.
func (p *Instruction[W]) Read(i uint) W {
	return p.operands[i].Read()
}

// Write a value to the ith operand.  This panics if the operand is not
// writable.
func (p *Instruction[W]) Write(i uint, value W) {
	p.operands[i].Write(value)
}

// Result returns the name of the value defined by this instruction, or the
// empty string if there is none.
func (p *Instruction[W]) Result() string {
	return p.result
}

// Span returns the span of this instruction within its source file.
func (p *Instruction[W]) Span() source.Span {
	return p.span
}

func (p *Instruction[W]) String() string {
	return p.text
}
