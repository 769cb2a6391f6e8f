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
	"github.com/consensys/go-isavm/pkg/util/source/lex"
)

// END_OF signals "end of line"
const END_OF uint = 0

// SEPARATOR signals whitespace and/or commas between tokens.
const SEPARATOR uint = 1

// WORD signals any other run of characters.
const WORD uint = 2

// Rule for describing separators.  Commas are treated as whitespace, such that
// "jie a, +4" and "jie a +4" are equivalent.
var separator lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r'), lex.Unit(',')))

// Rule for describing words.
var wordRule lex.Scanner[rune] = lex.Many(lex.NoneOf(' ', '\t', '\r', ',', '\n'))

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(separator, SEPARATOR),
	lex.Rule(wordRule, WORD),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Tokenize a single line of text (either a format or an instruction) into its
// words.  The same rules apply to both, which ensures token positions recorded
// for a format correspond with those of the instructions it matches.
func tokenize(line []rune) []lex.Token {
	return lex.NewLexer(line, rules...).Collect(SEPARATOR, END_OF)
}

// Extract the text of a given token.
func textOf(line []rune, token lex.Token) string {
	return string(line[token.Span.Start():token.Span.End()])
}

// Split a line into the text of its words, along with their spans.
func split(line []rune) ([]string, []source.Span) {
	var (
		tokens = tokenize(line)
		words  = make([]string, len(tokens))
		spans  = make([]source.Span, len(tokens))
	)
	//
	for i, t := range tokens {
		words[i] = textOf(line, t)
		spans[i] = t.Span
	}
	//
	return words, spans
}
