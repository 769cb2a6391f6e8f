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
package lex

import (
	"slices"
	"testing"

	"github.com/consensys/go-isavm/pkg/util/source"
)

func TestLexer_00(t *testing.T) {
	var tokens = []Token{
		{END_OF, source.NewSpan(0, 0)},
	}

	checkLexer(t, "", 0, tokens...)
}

func TestLexer_01(t *testing.T) {
	var tokens = []Token{
		{WORD, source.NewSpan(0, 3)},
		{END_OF, source.NewSpan(3, 3)},
	}

	checkLexer(t, "inc", 0, tokens...)
}

func TestLexer_02(t *testing.T) {
	var tokens = []Token{
		{WORD, source.NewSpan(0, 3)},
		{SEPARATOR, source.NewSpan(3, 4)},
		{WORD, source.NewSpan(4, 5)},
		{END_OF, source.NewSpan(5, 5)},
	}

	checkLexer(t, "inc a", 0, tokens...)
}

func TestLexer_03(t *testing.T) {
	var tokens = []Token{
		{WORD, source.NewSpan(0, 3)},
		{SEPARATOR, source.NewSpan(3, 4)},
		{WORD, source.NewSpan(4, 5)},
		{SEPARATOR, source.NewSpan(5, 7)},
		{WORD, source.NewSpan(7, 9)},
		{END_OF, source.NewSpan(9, 9)},
	}

	checkLexer(t, "jie a, +4", 0, tokens...)
}

func TestLexer_04(t *testing.T) {
	var tokens = []Token{
		{SEPARATOR, source.NewSpan(0, 2)},
		{WORD, source.NewSpan(2, 6)},
		{SEPARATOR, source.NewSpan(6, 7)},
		{END_OF, source.NewSpan(7, 7)},
	}

	checkLexer(t, " \t{OR}\t", 0, tokens...)
}

func TestLexer_05(t *testing.T) {
	var tokens = []Token{
		{WORD, source.NewSpan(0, 1)},
	}
	// Newlines are not matched by any rule
	checkLexer(t, "a\nb", 2, tokens...)
}

func TestLexer_Collect(t *testing.T) {
	var (
		items  = []rune("cpy 41, a")
		lexer  = NewLexer(items, rules...)
		tokens = lexer.Collect(SEPARATOR, END_OF)
	)
	//
	expected := []Token{
		{WORD, source.NewSpan(0, 3)},
		{WORD, source.NewSpan(4, 6)},
		{WORD, source.NewSpan(8, 9)},
	}
	//
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	}
}

func TestLexerSequence(t *testing.T) {
	rule := Sequence(
		Unit('a'),
		Unit('b'),
		Unit('c'),
	)
	//
	if n := rule([]rune("abcd")); n != 3 {
		t.Errorf("expected 3 characters matched, got %d", n)
	}
	//
	if n := rule([]rune("abd")); n != 0 {
		t.Errorf("expected no match, got %d", n)
	}
	//
	if n := rule([]rune("ab")); n != 0 {
		t.Errorf("expected no match on truncated input, got %d", n)
	}
}

func TestLexerWithin(t *testing.T) {
	digits := Many(Within('0', '9'))
	//
	if n := digits([]rune("2017x")); n != 4 {
		t.Errorf("expected 4 digits matched, got %d", n)
	}
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const SEPARATOR uint = 1
const WORD uint = 2

// Rule for describing separators
var separator Scanner[rune] = Many(Or(Unit(' '), Unit('\t'), Unit(',')))

// Rule for describing words
var word Scanner[rune] = Many(NoneOf(' ', '\t', ',', '\n'))

// lexing rules
var rules []LexRule[rune] = []LexRule[rune]{
	Rule(separator, SEPARATOR),
	Rule(word, WORD),
	Rule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	// Construct text lexer
	lexer := NewLexer[rune](items, rules...)
	// Apply lexer
	tokens := lexer.Collect()
	// Keep scanning
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	} else if lexer.Remaining() != remainder {
		n := len(items) - int(lexer.Remaining())
		t.Errorf("unmatched items: %v", items[n:])
	}
}
