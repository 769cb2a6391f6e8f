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
package machine

import (
	"errors"

	"github.com/consensys/go-isavm/pkg/vm/isa"
	"github.com/consensys/go-isavm/pkg/vm/memory"
	"github.com/consensys/go-isavm/pkg/vm/operand"
	"github.com/consensys/go-isavm/pkg/vm/word"
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Cpu", func() {
	var (
		regs *memory.Array[word.Int, memory.LetterDecoder]
		cpu  *Cpu[word.Int]
		set  *Set[word.Int]
	)

	BeforeEach(func() {
		regs = memory.NewArray[word.Int]("registers", memory.LetterDecoder{})
		cpu = New[word.Int](regs)
		set = testInstructionSet()
	})

	compile := func(lines ...string) {
		errs := cpu.Compile(set, lines)
		Expect(errs).To(BeEmpty())
	}

	Context("Termination", func() {
		It("should not halt an infinite loop", func() {
			compile("cpy 2 a", "jnz a -1")
			//
			n, err := cpu.Execute(10000)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(uint(10000)))
			Expect(cpu.Running()).To(BeTrue())
			Expect(cpu.Steps()).To(Equal(uint(10000)))
		})

		It("should halt off the end", func() {
			compile("inc a")
			//
			n, err := cpu.ExecuteAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(uint(1)))
			Expect(cpu.Halted()).To(BeTrue())
			Expect(cpu.PC()).To(Equal(1))
			Expect(regs.Get("a")).To(Equal(word.Int(1)))
		})

		It("should halt off the start", func() {
			compile("inc a", "jnz 1 -5", "inc a")
			//
			n, err := cpu.ExecuteAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(uint(2)))
			Expect(cpu.PC()).To(Equal(-4))
			Expect(regs.Get("a")).To(Equal(word.Int(1)))
		})

		It("should halt explicitly", func() {
			compile("inc a", "hlt", "inc a")
			//
			n, err := cpu.ExecuteAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(uint(2)))
			Expect(cpu.Halted()).To(BeTrue())
			Expect(regs.Get("a")).To(Equal(word.Int(1)))
			// Further steps have no effect
			Expect(cpu.Step()).To(Succeed())
			Expect(cpu.Steps()).To(Equal(uint(2)))
		})

		It("should not run without a program", func() {
			Expect(cpu.Halted()).To(BeTrue())
			n, err := cpu.ExecuteAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
		})

		It("should execute across chunks", func() {
			compile("cpy 3000 a", "dec a", "jnz a -1")
			//
			n, err := cpu.ExecuteAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(uint(6001)))
			Expect(regs.Get("a")).To(BeZero())
		})
	})

	Context("Jumps", func() {
		It("should skip over a taken branch", func() {
			compile("cpy 0 a", "jnz a 2", "inc a", "inc a")
			//
			_, err := cpu.ExecuteAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(regs.Get("a")).To(Equal(word.Int(2)))
		})

		It("should branch forwards", func() {
			compile("cpy 1 a", "jnz a 2", "inc a", "inc a")
			//
			_, err := cpu.ExecuteAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(regs.Get("a")).To(Equal(word.Int(2)))
		})

		It("should jump absolutely", func() {
			compile("jmp 3", "inc a", "inc a", "inc b")
			//
			_, err := cpu.ExecuteAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(regs.Get("a")).To(BeZero())
			Expect(regs.Get("b")).To(Equal(word.Int(1)))
		})

		It("should trace transitions", func() {
			cpu.WithPipeline(NewTraced(Sequential{}))
			compile("cpy 0 a", "jnz a 2", "inc a", "inc a")
			//
			_, err := cpu.ExecuteAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(regs.Get("a")).To(Equal(word.Int(2)))
		})
	})

	Context("Failures", func() {
		It("should report compilation errors", func() {
			errs := cpu.Compile(set, []string{"inc a", "mul a b"})
			Expect(errs).To(HaveLen(1))
			Expect(cpu.Program()).To(BeNil())
		})

		It("should wrap action errors", func() {
			compile("inc a", "fail")
			//
			n, err := cpu.ExecuteAll()
			Expect(n).To(Equal(uint(1)))
			Expect(err).To(MatchError(ContainSubstring("pc 1 (fail)")))
			Expect(errors.Is(err, errFail)).To(BeTrue())
			Expect(cpu.PC()).To(Equal(1))
		})

		It("should panic writing a constant", func() {
			compile("bad 1")
			//
			Expect(func() { _, _ = cpu.ExecuteAll() }).To(Panic())
		})
	})

	Context("Ports", func() {
		var mockCtrl *gomock.Controller

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
		})

		AfterEach(func() {
			mockCtrl.Finish()
		})

		It("should send values in order", func() {
			port := NewMockPort(mockCtrl)
			cpu.WithPort(port)
			compile("cpy 7 a", "out a", "out 3")
			//
			gomock.InOrder(
				port.EXPECT().Send(word.Int(7)),
				port.EXPECT().Send(word.Int(3)),
			)
			//
			_, err := cpu.ExecuteAll()
			Expect(err).NotTo(HaveOccurred())
		})

		It("should receive values", func() {
			port := NewMockPort(mockCtrl)
			cpu.WithPort(port)
			compile("in a", "in b")
			//
			gomock.InOrder(
				port.EXPECT().Receive().Return(word.Int(5), true),
				port.EXPECT().Receive().Return(word.Int(0), false),
			)
			//
			_, err := cpu.ExecuteAll()
			Expect(err).To(MatchError(ContainSubstring("port empty")))
			Expect(regs.Get("a")).To(Equal(word.Int(5)))
		})

		It("should queue values by default", func() {
			compile("out 1", "out 2", "in c")
			//
			_, err := cpu.ExecuteAll()
			Expect(err).NotTo(HaveOccurred())
			//
			queue := cpu.Port().(*Queue[word.Int])
			Expect(queue.Items()).To(Equal([]word.Int{2}))
			Expect(regs.Get("c")).To(Equal(word.Int(1)))
		})
	})
})

var errFail = errors.New("failure")

func testInstructionSet() *Set[word.Int] {
	return isa.NewBuilder[word.Int, Action[word.Int]](word.Parse[word.Int], operand.LooksNumeric).
		MustAdd("cpy rd r", func(_ *Cpu[word.Int], insn *isa.Instruction[word.Int]) error {
			insn.Write(1, insn.Read(0))
			return nil
		}).
		MustAdd("inc r", func(_ *Cpu[word.Int], insn *isa.Instruction[word.Int]) error {
			insn.Write(0, insn.Read(0)+1)
			return nil
		}).
		MustAdd("dec r", func(_ *Cpu[word.Int], insn *isa.Instruction[word.Int]) error {
			insn.Write(0, insn.Read(0)-1)
			return nil
		}).
		MustAdd("jnz rd rd", func(cpu *Cpu[word.Int], insn *isa.Instruction[word.Int]) error {
			if insn.Read(0) != 0 {
				cpu.JumpRelative(int(insn.Read(1)))
			}
			return nil
		}).
		MustAdd("jmp d", func(cpu *Cpu[word.Int], insn *isa.Instruction[word.Int]) error {
			cpu.JumpAbsolute(int(insn.Read(0)))
			return nil
		}).
		MustAdd("out rd", func(cpu *Cpu[word.Int], insn *isa.Instruction[word.Int]) error {
			cpu.Port().Send(insn.Read(0))
			return nil
		}).
		MustAdd("in r", func(cpu *Cpu[word.Int], insn *isa.Instruction[word.Int]) error {
			if v, ok := cpu.Port().Receive(); ok {
				insn.Write(0, v)
				return nil
			}
			return errors.New("port empty")
		}).
		MustAdd("hlt", func(cpu *Cpu[word.Int], _ *isa.Instruction[word.Int]) error {
			cpu.Halt()
			return nil
		}).
		MustAdd("bad d", func(_ *Cpu[word.Int], insn *isa.Instruction[word.Int]) error {
			insn.Write(0, 0)
			return nil
		}).
		MustAdd("fail", func(_ *Cpu[word.Int], _ *isa.Instruction[word.Int]) error {
			return errFail
		}).
		Build()
}
