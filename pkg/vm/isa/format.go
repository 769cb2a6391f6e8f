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
)

// Kind identifies the role played by a given element of a format.
type Kind uint8

const (
	// LITERAL is fixed text which must be matched verbatim.
	LITERAL Kind = iota
	// OPCODE is the mnemonic which identifies an instruction.
	OPCODE
	// REGISTER is an operand which must bind to a register ("r").
	REGISTER
	// IMMEDIATE is an operand which must bind to a constant ("d").
	IMMEDIATE
	// EITHER is an operand which binds either to a register or to a constant,
	// depending upon the shape of the token ("rd" or "dr").
	EITHER
	// IGNORED is a token which must be present, but is discarded ("_").
	IGNORED
	// RESULT is the name of the value defined by an instruction ("()").
	RESULT
)

func (k Kind) String() string {
	switch k {
	case LITERAL:
		return "literal"
	case OPCODE:
		return "opcode"
	case REGISTER:
		return "r"
	case IMMEDIATE:
		return "d"
	case EITHER:
		return "rd"
	case IGNORED:
		return "_"
	case RESULT:
		return "()"
	default:
		return "unknown"
	}
}

// IsOperand determines whether elements of this kind are bound to operands.
func (k Kind) IsOperand() bool {
	return k == REGISTER || k == IMMEDIATE || k == EITHER
}

// Element is a single token of a format, along with its role.
type Element struct {
	Kind Kind
	// Text of a literal or opcode element (empty otherwise).
	Text string
}

// Format describes the shape of an instruction as a sequence of elements,
// exactly one of which is the opcode (i.e. mnemonic).  For example, the format
// "cpy rd r" describes instructions with the mnemonic "cpy" followed by a
// register-or-immediate operand and a register operand.  Where the mnemonic is
// not the first token, its position is marked by enclosing it in braces, as in
// "r {AND} r -> ()".
type Format struct {
	text     string
	elements []Element
	opcode   uint
}

// ParseFormat parses a given format string.  This fails if the format is
// empty, contains a malformed or unknown operand tag, has more than one opcode
// marker or result slot, or has no literal mnemonic.
func ParseFormat(text string) (Format, error) {
	var (
		words, _ = split([]rune(text))
		elements = make([]Element, len(words))
		opcode   = -1
		result   = -1
	)
	//
	if len(words) == 0 {
		return Format{}, formatError(text, "empty format")
	}
	//
	for i, w := range words {
		e, err := parseElement(w)
		//
		if err != nil {
			return Format{}, formatError(text, err.Error())
		}
		//
		switch {
		case e.Kind == OPCODE && opcode >= 0:
			return Format{}, formatError(text, "multiple opcode markers")
		case e.Kind == OPCODE:
			opcode = i
		case e.Kind == RESULT && result >= 0:
			return Format{}, formatError(text, "multiple result slots")
		case e.Kind == RESULT:
			result = i
		}
		//
		elements[i] = e
	}
	// Without an explicit marker, the mnemonic is the first token.
	if opcode < 0 {
		if elements[0].Kind != LITERAL {
			return Format{}, formatError(text, fmt.Sprintf("missing mnemonic (found \"%s\")", words[0]))
		}
		//
		opcode = 0
		elements[0].Kind = OPCODE
	}
	//
	return Format{text, elements, uint(opcode)}, nil
}

// Mnemonic returns the mnemonic of this format.
func (p *Format) Mnemonic() string {
	return p.elements[p.opcode].Text
}

// Position returns the index of the mnemonic amongst the tokens of this format.
func (p *Format) Position() uint {
	return p.opcode
}

// Len returns the number of tokens which an instruction matching this format
// must have.
func (p *Format) Len() uint {
	return uint(len(p.elements))
}

// Elements returns the elements making up this format.
func (p *Format) Elements() []Element {
	return p.elements
}

// Operands returns the operand tags of this format, in order.
func (p *Format) Operands() []Kind {
	var kinds []Kind
	//
	for _, e := range p.elements {
		if e.Kind.IsOperand() {
			kinds = append(kinds, e.Kind)
		}
	}
	//
	return kinds
}

// HasResult determines whether instructions of this format name the value they
// define.
func (p *Format) HasResult() bool {
	for _, e := range p.elements {
		if e.Kind == RESULT {
			return true
		}
	}
	//
	return false
}

func (p *Format) String() string {
	return p.text
}

func parseElement(word string) (Element, error) {
	switch word {
	case "r":
		return Element{REGISTER, ""}, nil
	case "d":
		return Element{IMMEDIATE, ""}, nil
	case "rd", "dr":
		return Element{EITHER, ""}, nil
	case "_":
		return Element{IGNORED, ""}, nil
	case "()":
		return Element{RESULT, ""}, nil
	}
	//
	switch {
	case strings.HasPrefix(word, "{"):
		inner, ok := strings.CutSuffix(word[1:], "}")
		//
		if !ok || inner == "" || strings.ContainsAny(inner, "{}()") {
			return Element{}, fmt.Errorf("malformed opcode marker \"%s\"", word)
		}
		//
		return Element{OPCODE, inner}, nil
	case strings.ContainsAny(word, "{}()"):
		return Element{}, fmt.Errorf("unknown operand tag \"%s\"", word)
	default:
		return Element{LITERAL, word}, nil
	}
}
