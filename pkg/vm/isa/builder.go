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
	"fmt"
	"maps"
	"slices"

	"github.com/consensys/go-isavm/pkg/util/source"
	"github.com/consensys/go-isavm/pkg/vm/operand"
	log "github.com/sirupsen/logrus"
)

// Opcode associates a format with an action, and a unique identifier.
type Opcode[A any] struct {
	id     uint
	format Format
	action A
}

// Id returns the unique identifier of this opcode.
func (p *Opcode[A]) Id() uint {
	return p.id
}

// Mnemonic returns the mnemonic of this opcode.
func (p *Opcode[A]) Mnemonic() string {
	return p.format.Mnemonic()
}

// Format returns the format of this opcode.
func (p *Opcode[A]) Format() *Format {
	return &p.format
}

// Action returns the action associated with this opcode.
func (p *Opcode[A]) Action() A {
	return p.action
}

// Identifies a mnemonic occurring at a given token position.
type mnemonicKey struct {
	position uint
	mnemonic string
}

// Builder is responsible for compiling a set of formats, each paired with an
// action, into an instruction set.  The word type W determines the operands of
// parsed instructions, whilst the action type A is chosen by the execution
// engine (e.g. a sequential machine or a lazy evaluator).  Immediate operands
// are parsed using the given parser, whilst the given classifier determines
// whether an operand which may be either a register or an immediate is an
// immediate.
type Builder[W any, A any] struct {
	binders   binders[W]
	opcodes   []Opcode[A]
	index     map[mnemonicKey]uint
	positions []uint
}

// NewBuilder constructs an empty builder using a given parser for immediate
// operands and a given classifier for resolving operands which may be either
// registers or immediates.
func NewBuilder[W any, A any](parser operand.Parser[W], classifier operand.Classifier) *Builder[W, A] {
	return &Builder[W, A]{
		binders: binders[W]{
			register:  operand.RegisterBinder[W]{},
			immediate: operand.NewImmediateBinder(parser),
			either:    operand.NewEitherBinder(classifier, parser),
		},
		index: make(map[mnemonicKey]uint),
	}
}

// Add a new opcode to this builder with a given format and action.  The opcode
// is assigned the next available identifier.  An error is returned if the
// format is malformed, or its mnemonic is already in use at the same position.
func (p *Builder[W, A]) Add(format string, action A) error {
	f, err := ParseFormat(format)
	//
	if err != nil {
		return err
	}
	//
	key := mnemonicKey{f.Position(), f.Mnemonic()}
	//
	if _, ok := p.index[key]; ok {
		return formatError(format, fmt.Sprintf("duplicate instruction \"%s\"", f.Mnemonic()))
	}
	//
	id := uint(len(p.opcodes))
	p.opcodes = append(p.opcodes, Opcode[A]{id, f, action})
	p.index[key] = id
	// Record position (if not seen before)
	if !slices.Contains(p.positions, f.Position()) {
		p.positions = append(p.positions, f.Position())
	}
	//
	return nil
}

// MustAdd adds a new opcode to this builder, as for Add, but panics if the
// format cannot be added.  This is intended for statically defined instruction
// sets, where such an error is a programming error.
func (p *Builder[W, A]) MustAdd(format string, action A) *Builder[W, A] {
	if err := p.Add(format, action); err != nil {
		panic(err.Error())
	}
	//
	return p
}

// Build the instruction set described by this builder.  The resulting set is
// unaffected by subsequent additions to the builder.
func (p *Builder[W, A]) Build() *Set[W, A] {
	log.Debugf("compiled instruction set with %d opcodes", len(p.opcodes))
	//
	return &Set[W, A]{
		binders:   p.binders,
		opcodes:   slices.Clone(p.opcodes),
		index:     maps.Clone(p.index),
		positions: slices.Clone(p.positions),
	}
}

// BuildAndParseAll builds the instruction set described by this builder, and
// parses a given program against it.
func (p *Builder[W, A]) BuildAndParseAll(regs operand.Registers[W], lines []string) (*Program[W, A],
	[]source.SyntaxError) {
	//
	return p.Build().ParseAll(regs, lines)
}

// The binding strategy used for each kind of operand.
type binders[W any] struct {
	register  operand.Binder[W]
	immediate operand.Binder[W]
	either    operand.Binder[W]
}

func (p *binders[W]) get(kind Kind) operand.Binder[W] {
	switch kind {
	case REGISTER:
		return p.register
	case IMMEDIATE:
		return p.immediate
	case EITHER:
		return p.either
	default:
		panic(fmt.Sprintf("no binder for %s elements", kind.String()))
	}
}
