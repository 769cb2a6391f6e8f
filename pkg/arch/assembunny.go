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
package arch

import (
	"github.com/consensys/go-isavm/pkg/vm/isa"
	"github.com/consensys/go-isavm/pkg/vm/machine"
	"github.com/consensys/go-isavm/pkg/vm/operand"
	"github.com/consensys/go-isavm/pkg/vm/word"
)

// Assembunny constructs the instruction set of a small register machine
// consisting of five instructions:
//
//	cpy x y   copies x (a register or constant) into register y.
//	inc x     increments register x.
//	dec x     decrements register x.
//	jnz x y   jumps y instructions (relative) when x is not zero.
//	out x     sends x through the machine's port.
func Assembunny[W word.Word[W]]() *machine.Set[W] {
	return isa.NewBuilder[W, machine.Action[W]](word.Parse[W], operand.LooksNumeric).
		MustAdd("cpy rd r", cpy[W]).
		MustAdd("inc r", inc[W]).
		MustAdd("dec r", dec[W]).
		MustAdd("jnz rd rd", jnz[W]).
		MustAdd("out rd", out[W]).
		Build()
}

func cpy[W word.Word[W]](_ *machine.Cpu[W], insn *isa.Instruction[W]) error {
	insn.Write(1, insn.Read(0))
	return nil
}

func inc[W word.Word[W]](_ *machine.Cpu[W], insn *isa.Instruction[W]) error {
	insn.Write(0, insn.Read(0).Add(word.One[W]()))
	return nil
}

func dec[W word.Word[W]](_ *machine.Cpu[W], insn *isa.Instruction[W]) error {
	insn.Write(0, insn.Read(0).Sub(word.One[W]()))
	return nil
}

func jnz[W word.Word[W]](cpu *machine.Cpu[W], insn *isa.Instruction[W]) error {
	if !insn.Read(0).IsZero() {
		cpu.JumpRelative(int(insn.Read(1).Int64()))
	}
	//
	return nil
}

func out[W word.Word[W]](cpu *machine.Cpu[W], insn *isa.Instruction[W]) error {
	cpu.Port().Send(insn.Read(0))
	return nil
}
