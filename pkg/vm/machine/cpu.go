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
	"fmt"

	"github.com/consensys/go-isavm/pkg/util/source"
	"github.com/consensys/go-isavm/pkg/vm/isa"
	"github.com/consensys/go-isavm/pkg/vm/memory"
	"github.com/consensys/go-isavm/pkg/vm/operand"
	log "github.com/sirupsen/logrus"
)

// CHUNK_SIZE determines the number of steps executed in one go by ExecuteAll.
const CHUNK_SIZE = 1024

// Action executes a single instruction within the context of a given machine.
// An action may reposition the machine (e.g. via JumpRelative) or halt it.
// This may produce an error, in which case execution is aborted.
type Action[W any] func(cpu *Cpu[W], insn *isa.Instruction[W]) error

// Builder is an instruction set builder whose actions execute sequentially.
type Builder[W any] = isa.Builder[W, Action[W]]

// Set is an instruction set whose actions execute sequentially.
type Set[W any] = isa.Set[W, Action[W]]

// Program is a program whose actions execute sequentially.
type Program[W any] = isa.Program[W, Action[W]]

// Cpu is a sequential machine which executes a program over a given store of
// registers, one instruction at a time, using a program counter.  The machine
// is running whilst the program counter lies within the program, and halts the
// moment it leaves it (or an instruction explicitly halts it).
type Cpu[W any] struct {
	store    memory.Store[W]
	pipeline Pipeline
	port     Port[W]
	program  *Program[W]
	pc       int
	steps    uint
	halted   bool
}

// New constructs a machine over a given store of registers, using a
// sequential pipeline and an in-memory queue for its port.
func New[W any](store memory.Store[W]) *Cpu[W] {
	return &Cpu[W]{
		store:    store,
		pipeline: Sequential{},
		port:     NewQueue[W](),
	}
}

// WithPipeline updates the pipeline used by this machine.
func (p *Cpu[W]) WithPipeline(pipeline Pipeline) *Cpu[W] {
	p.pipeline = pipeline
	return p
}

// WithPort updates the port through which this machine communicates.
func (p *Cpu[W]) WithPort(port Port[W]) *Cpu[W] {
	p.port = port
	return p
}

// Load a given program into this machine, and reset execution to its start.
// Register contents are unaffected.
func (p *Cpu[W]) Load(program *Program[W]) *Cpu[W] {
	p.program = program
	p.pc = 0
	p.steps = 0
	p.halted = false
	//
	log.Debugf("loaded program of %d instructions", program.Len())
	//
	return p
}

// Compile a given sequence of lines against a given instruction set, binding
// registers to this machine, and load the result.  Any syntax errors are
// returned, in which case the machine is unchanged.
func (p *Cpu[W]) Compile(set *Set[W], lines []string) []source.SyntaxError {
	program, errs := set.ParseAll(p, lines)
	//
	if len(errs) == 0 {
		p.Load(program)
	}
	//
	return errs
}

// CompileFile compiles a given source file against a given instruction set, as
// for Compile.
func (p *Cpu[W]) CompileFile(set *Set[W], file *source.File) []source.SyntaxError {
	program, errs := set.ParseFile(p, file)
	//
	if len(errs) == 0 {
		p.Load(program)
	}
	//
	return errs
}

// BindRegister implementation for the operand.Registers interface.
func (p *Cpu[W]) BindRegister(name string) (operand.Operand[W], error) {
	address, err := p.store.Address(name)
	//
	if err != nil {
		return nil, err
	}
	//
	return operand.NewRegister(name, address, memory.Memory[W](p.store)), nil
}

// PC returns the current value of the program counter.
func (p *Cpu[W]) PC() int {
	return p.pc
}

// Steps returns the number of instructions executed since the program was
// loaded.
func (p *Cpu[W]) Steps() uint {
	return p.steps
}

// Halted determines whether this machine has halted.
func (p *Cpu[W]) Halted() bool {
	return p.halted || p.program == nil || p.pc < 0 || p.pc >= p.program.Len()
}

// Running determines whether this machine has not yet halted.
func (p *Cpu[W]) Running() bool {
	return !p.Halted()
}

// Memory returns the register store of this machine.
func (p *Cpu[W]) Memory() memory.Store[W] {
	return p.store
}

// Port returns the port through which this machine communicates.
func (p *Cpu[W]) Port() Port[W] {
	return p.port
}

// Program returns the program loaded into this machine (if any).
func (p *Cpu[W]) Program() *Program[W] {
	return p.program
}

// JumpRelative repositions the machine such that, after the current instruction
// completes, execution continues offset instructions from it.
func (p *Cpu[W]) JumpRelative(offset int) {
	p.pc = p.pipeline.Branch(p.pc, offset)
}

// JumpAbsolute repositions the machine such that, after the current instruction
// completes, execution continues at the given target.
func (p *Cpu[W]) JumpAbsolute(target int) {
	p.pc = p.pipeline.Goto(target)
}

// Halt this machine, such that no further instructions are executed.
func (p *Cpu[W]) Halt() {
	p.halted = true
}

// Step executes exactly one instruction, unless the machine has halted.
func (p *Cpu[W]) Step() error {
	if p.Halted() {
		return nil
	}
	//
	var (
		pc     = p.pc
		insn   = p.program.At(pc)
		action = p.program.Action(insn)
	)
	//
	if err := action(p, insn); err != nil {
		return fmt.Errorf("pc %d (%s): %w", pc, insn.String(), err)
	}
	//
	p.pc = p.pipeline.Advance(p.pc)
	p.steps++
	//
	if p.Halted() {
		log.Debugf("halted at pc %d after %d steps", p.pc, p.steps)
	}
	//
	return nil
}

// Execute this machine for (at most) the given number of steps, returning the
// actual number of steps executed and an error (if execution failed).  Fewer
// steps are executed only when the machine halts (or fails).
func (p *Cpu[W]) Execute(n uint) (uint, error) {
	var nsteps uint
	//
	for ; nsteps < n && p.Running(); nsteps++ {
		if err := p.Step(); err != nil {
			return nsteps, err
		}
	}
	//
	return nsteps, nil
}

// ExecuteAll executes this machine until it halts, returning the number of
// steps executed and/or any error arising.  A program which never halts is
// executed forever.
func (p *Cpu[W]) ExecuteAll() (uint, error) {
	var nsteps uint
	//
	for {
		// Execute upto CHUNK_SIZE steps
		m, err := p.Execute(CHUNK_SIZE)
		// update the tally
		nsteps += m
		// check for termination
		if err != nil || m < CHUNK_SIZE {
			return nsteps, err
		}
	}
}
