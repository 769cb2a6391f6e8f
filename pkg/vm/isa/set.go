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
	"strings"

	"github.com/consensys/go-isavm/pkg/util/source"
	"github.com/consensys/go-isavm/pkg/vm/operand"
	log "github.com/sirupsen/logrus"
)

// DEFAULT_FILENAME is used when parsing programs supplied in memory.
const DEFAULT_FILENAME = "<program>"

// Set is a compiled instruction set, consisting of an opcode table and the
// means to parse program text against it.
type Set[W any, A any] struct {
	binders   binders[W]
	opcodes   []Opcode[A]
	index     map[mnemonicKey]uint
	positions []uint
}

// NumOpcodes returns the number of opcodes in this instruction set.
func (p *Set[W, A]) NumOpcodes() uint {
	return uint(len(p.opcodes))
}

// Opcode returns the opcode with a given identifier.
func (p *Set[W, A]) Opcode(id uint) *Opcode[A] {
	return &p.opcodes[id]
}

// Opcodes returns all opcodes of this instruction set, ordered by identifier.
func (p *Set[W, A]) Opcodes() []Opcode[A] {
	return p.opcodes
}

// Lookup the identifier of the opcode with a given mnemonic.  Where the same
// mnemonic occurs at different positions, the first registered is returned.
func (p *Set[W, A]) Lookup(mnemonic string) (uint, bool) {
	for _, pos := range p.positions {
		if id, ok := p.index[mnemonicKey{pos, mnemonic}]; ok {
			return id, true
		}
	}
	//
	return 0, false
}

// Action returns the action to execute for a given instruction.
func (p *Set[W, A]) Action(insn *Instruction[W]) A {
	return p.opcodes[insn.opcode].action
}

// Parse a single instruction, binding its registers with a given set of
// registers.
func (p *Set[W, A]) Parse(regs operand.Registers[W], line string) (*Instruction[W], error) {
	var (
		file  = source.NewSourceFileFromLines(DEFAULT_FILENAME, line)
		lines = file.Lines()
	)
	//
	if len(lines) != 1 || isBlank(lines[0]) {
		return nil, file.SyntaxError(source.NewSpan(0, len(file.Contents())), "expected exactly one instruction")
	}
	//
	insn, err := p.parseLine(regs, file, lines[0])
	// Avoid returning a typed nil
	if err != nil {
		return nil, err
	}
	//
	return insn, nil
}

// ParseAll parses a given sequence of lines into a program.  All syntax errors
// encountered are returned.
func (p *Set[W, A]) ParseAll(regs operand.Registers[W], lines []string) (*Program[W, A], []source.SyntaxError) {
	return p.ParseFile(regs, source.NewSourceFileFromLines(DEFAULT_FILENAME, lines...))
}

// ParseFile parses a given source file into a program, where each non-blank
// line holds exactly one instruction.  Blank lines are ignored and do not
// occupy a position in the program.  All syntax errors encountered are
// returned.
func (p *Set[W, A]) ParseFile(regs operand.Registers[W], file *source.File) (*Program[W, A],
	[]source.SyntaxError) {
	var (
		code   []*Instruction[W]
		errors []source.SyntaxError
	)
	//
	for _, line := range file.Lines() {
		if isBlank(line) {
			continue
		}
		//
		if insn, err := p.parseLine(regs, file, line); err != nil {
			errors = append(errors, *err)
		} else {
			code = append(code, insn)
		}
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	log.Debugf("parsed %d instructions from %s", len(code), file.Filename())
	//
	return &Program[W, A]{p, file, code}, nil
}

// Parse a single line of a given file into an instruction.
func (p *Set[W, A]) parseLine(regs operand.Registers[W], file *source.File, line source.Line) (*Instruction[W],
	*source.SyntaxError) {
	var (
		words, spans = split(line.Runes())
		operands     []operand.Operand[W]
		result       string
	)
	// Translate spans into the enclosing file
	for i := range spans {
		spans[i] = spans[i].Shift(line.Start())
	}
	//
	opcode, ok := p.locate(words)
	//
	if !ok {
		return nil, file.SyntaxError(spans[0], fmt.Sprintf("unknown instruction \"%s\"", words[0]))
	}
	//
	format := &opcode.format
	mnemonic := format.Mnemonic()
	//
	if uint(len(words)) != format.Len() {
		msg := fmt.Sprintf("instruction \"%s\" expects %d tokens (found %d)", mnemonic, format.Len(), len(words))
		return nil, file.SyntaxError(line.Span(), msg)
	}
	//
	for i, e := range format.elements {
		switch e.Kind {
		case OPCODE, IGNORED:
			continue
		case LITERAL:
			if words[i] != e.Text {
				msg := fmt.Sprintf("instruction \"%s\" expects \"%s\" (found \"%s\")", mnemonic, e.Text, words[i])
				return nil, file.SyntaxError(spans[i], msg)
			}
		case RESULT:
			result = words[i]
		default:
			op, err := p.binders.get(e.Kind).Bind(words[i], regs)
			//
			if err != nil {
				msg := fmt.Sprintf("instruction \"%s\": %s", mnemonic, err.Error())
				return nil, file.SyntaxError(spans[i], msg)
			}
			//
			operands = append(operands, op)
		}
	}
	//
	text := strings.TrimSpace(line.String())
	//
	return &Instruction[W]{opcode.id, operands, result, line.Span(), text}, nil
}

// Locate the opcode of an instruction with the given words.  Each position at
// which some mnemonic occurs is considered in the order of registration, and
// the first position holding a matching mnemonic wins.
func (p *Set[W, A]) locate(words []string) (*Opcode[A], bool) {
	for _, pos := range p.positions {
		if pos >= uint(len(words)) {
			continue
		} else if id, ok := p.index[mnemonicKey{pos, words[pos]}]; ok {
			return &p.opcodes[id], true
		}
	}
	//
	return nil, false
}

func isBlank(line source.Line) bool {
	return len(tokenize(line.Runes())) == 0
}
