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
package graph

import (
	"fmt"
	"maps"
	"slices"

	"github.com/consensys/go-isavm/pkg/util/collection/stack"
	"github.com/consensys/go-isavm/pkg/util/source"
	"github.com/consensys/go-isavm/pkg/vm/isa"
	"github.com/consensys/go-isavm/pkg/vm/operand"
	log "github.com/sirupsen/logrus"
)

// Action computes the value defined by a given instruction.  Reading an operand
// of the instruction which refers to another name resolves that name first.
type Action[W any] func(insn *isa.Instruction[W]) (W, error)

// Builder is an instruction set builder whose actions define named values.
type Builder[W any] = isa.Builder[W, Action[W]]

// Set is an instruction set whose actions define named values.
type Set[W any] = isa.Set[W, Action[W]]

// Program is a set of definitions of named values.
type Program[W any] = isa.Program[W, Action[W]]

// Evaluator resolves named values on demand.  Each name is defined by exactly
// one instruction of a loaded program, whose register operands refer to other
// names.  Resolving a name resolves its dependencies first, and every resolved
// value is memoised.  Hence, the definition of each name is evaluated at most
// once, irrespective of how many other definitions depend upon it.
type Evaluator[W any] struct {
	program     *Program[W]
	definitions map[string]*isa.Instruction[W]
	overrides   map[string]W
	cache       map[string]W
	// Names currently being resolved, outermost first.
	path *stack.Stack[string]
}

// New constructs an evaluator without any definitions.
func New[W any]() *Evaluator[W] {
	return &Evaluator[W]{
		definitions: make(map[string]*isa.Instruction[W]),
		overrides:   make(map[string]W),
		cache:       make(map[string]W),
		path:        stack.NewStack[string](),
	}
}

// BindRegister implementation for the operand.Registers interface.  Every
// name is accepted, and is bound to a reference which resolves the name when
// read.  Names without a definition are reported only when resolved.
func (p *Evaluator[W]) BindRegister(name string) (operand.Operand[W], error) {
	return &reference[W]{name, p}, nil
}

// Compile a given sequence of lines against a given instruction set, binding
// names to this evaluator, and load the result.  Any syntax errors are
// returned, in which case the evaluator is unchanged.
func (p *Evaluator[W]) Compile(set *Set[W], lines []string) []source.SyntaxError {
	program, errs := set.ParseAll(p, lines)
	//
	if len(errs) > 0 {
		return errs
	}
	//
	return p.Load(program)
}

// CompileFile compiles a given source file against a given instruction set, as
// for Compile.
func (p *Evaluator[W]) CompileFile(set *Set[W], file *source.File) []source.SyntaxError {
	program, errs := set.ParseFile(p, file)
	//
	if len(errs) > 0 {
		return errs
	}
	//
	return p.Load(program)
}

// Load the definitions of a given program into this evaluator, replacing any
// previous definitions and clearing all memoised values and overrides.  Every
// instruction must define a name, and no name can be defined more than once.
func (p *Evaluator[W]) Load(program *Program[W]) []source.SyntaxError {
	var (
		definitions = make(map[string]*isa.Instruction[W])
		errors      []source.SyntaxError
		file        = program.File()
	)
	//
	for _, insn := range program.Code() {
		name := insn.Result()
		//
		if name == "" {
			errors = append(errors, *file.SyntaxError(insn.Span(), "instruction defines no value"))
		} else if _, ok := definitions[name]; ok {
			errors = append(errors, *file.SyntaxError(insn.Span(), fmt.Sprintf("duplicate definition of \"%s\"", name)))
		} else {
			definitions[name] = insn
		}
	}
	//
	if len(errors) > 0 {
		return errors
	}
	//
	p.program = program
	p.definitions = definitions
	p.overrides = make(map[string]W)
	p.Reset()
	//
	log.Debugf("loaded %d definitions", len(definitions))
	//
	return nil
}

// Names returns the defined names of this evaluator, in sorted order.
func (p *Evaluator[W]) Names() []string {
	return slices.Sorted(maps.Keys(p.definitions))
}

// Override the value of a given name, irrespective of its definition (if it
// has one).  All memoised values are discarded, since they may depend upon it.
func (p *Evaluator[W]) Override(name string, value W) {
	p.overrides[name] = value
	p.Reset()
}

// Reset discards all memoised values, such that subsequent resolutions are
// recomputed.  Overrides are retained.
func (p *Evaluator[W]) Reset() {
	clear(p.cache)
	p.path.Clear()
}

// Resolve the value of a given name, resolving (and memoising) its
// dependencies as necessary.  An error is returned if the name (or one of its
// dependencies) has no definition, depends upon itself, or if the action
// defining it fails.
func (p *Evaluator[W]) Resolve(name string) (value W, err error) {
	defer func() {
		if r := recover(); r != nil {
			// Discard partial resolution
			p.path.Clear()
			//
			f, ok := r.(failure)
			// Misuse is not an evaluation failure
			if !ok {
				panic(r)
			}
			//
			err = f.err
		}
	}()
	//
	return p.resolve(name), nil
}

// Resolve a name, or panic with a failure.
func (p *Evaluator[W]) resolve(name string) W {
	if value, ok := p.overrides[name]; ok {
		return value
	} else if value, ok := p.cache[name]; ok {
		return value
	}
	//
	insn, ok := p.definitions[name]
	//
	if !ok {
		panic(failure{&UnknownError{name}})
	} else if slices.Contains(p.path.Items(), name) {
		panic(failure{&CycleError{append(p.path.Items(), name)}})
	}
	//
	p.path.Push(name)
	//
	value, err := p.program.Action(insn)(insn)
	//
	if err != nil {
		panic(failure{fmt.Errorf("%s (%s): %w", name, insn.String(), err)})
	}
	//
	p.path.Pop()
	p.cache[name] = value
	//
	log.Tracef("resolved %s = %v", name, value)
	//
	return value
}

// A reference to a named value, which is resolved when read.
type reference[W any] struct {
	name      string
	evaluator *Evaluator[W]
}

func (p *reference[W]) Read() W {
	return p.evaluator.resolve(p.name)
}

func (p *reference[W]) Write(W) {
	panic(fmt.Sprintf("cannot write to reference %s", p.name))
}

func (p *reference[W]) Writable() bool {
	return false
}

func (p *reference[W]) String() string {
	return p.name
}
