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

// TuringLock constructs the instruction set of a two register machine whose
// jump offsets are signed constants, and whose operands are separated by
// commas (e.g. "jio a, +19").
func TuringLock[W word.Integer[W]]() *machine.Set[W] {
	return isa.NewBuilder[W, machine.Action[W]](word.Parse[W], operand.LooksNumeric).
		MustAdd("hlf r", func(_ *machine.Cpu[W], insn *isa.Instruction[W]) error {
			insn.Write(0, insn.Read(0).Rsh(1))
			return nil
		}).
		MustAdd("tpl r", func(_ *machine.Cpu[W], insn *isa.Instruction[W]) error {
			insn.Write(0, insn.Read(0).Mul(word.FromInt64[W](3)))
			return nil
		}).
		MustAdd("inc r", inc[W]).
		MustAdd("jmp d", func(cpu *machine.Cpu[W], insn *isa.Instruction[W]) error {
			cpu.JumpRelative(int(insn.Read(0).Int64()))
			return nil
		}).
		MustAdd("jie r, d", func(cpu *machine.Cpu[W], insn *isa.Instruction[W]) error {
			if insn.Read(0).And(word.One[W]()).IsZero() {
				cpu.JumpRelative(int(insn.Read(1).Int64()))
			}
			//
			return nil
		}).
		MustAdd("jio r, d", func(cpu *machine.Cpu[W], insn *isa.Instruction[W]) error {
			if insn.Read(0).Cmp(word.One[W]()) == 0 {
				cpu.JumpRelative(int(insn.Read(1).Int64()))
			}
			//
			return nil
		}).
		Build()
}
