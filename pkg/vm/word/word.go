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
package word

import (
	"fmt"
)

// Word abstracts the data type (a.k.a the "machine word") used for holding
// values within a machine.  The framework itself never inspects words; they
// are only manipulated by the actions of a given instruction set.  Abstracting
// this concept allows one instruction set to be executed over fixed-width
// words, arbitrary precision integers or field elements without duplicating
// its definition.
//
// Following the convention for field elements, all operations are pure and
// return a new word, rather than modifying the receiver.  As such, the zero
// value of a word type must represent 0.
type Word[W any] interface {
	fmt.Stringer
	// Add x+y
	Add(y W) W
	// Sub x-y
	Sub(y W) W
	// Mul x*y
	Mul(y W) W
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y W) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Int64 returns this word as a signed 64bit integer.  This is used when a
	// word determines a control-flow offset (e.g. a relative jump), or a shift
	// amount.  Words which cannot be represented are truncated.
	Int64() int64
	// SetInt64 constructs a word from a given signed integer.
	SetInt64(int64) W
	// SetString constructs a word from a given (optionally signed) decimal
	// token.
	SetString(string) (W, error)
}

// Integer is a word which, additionally, supports integer division and bitwise
// operations.  Field elements are not integers in this sense.
type Integer[W any] interface {
	Word[W]
	// Div computes x / y, truncated towards zero.
	Div(y W) W
	// Mod computes the remainder of x / y, with the sign of x.
	Mod(y W) W
	// And computes x & y
	And(y W) W
	// Or computes x | y
	Or(y W) W
	// Xor computes x ^ y
	Xor(y W) W
	// Not computes the bitwise complement of x.
	Not() W
	// Lsh computes x << n
	Lsh(n uint) W
	// Rsh computes x >> n
	Rsh(n uint) W
}

// Parse constructs a word from a given textual token.  This is the parse
// function typically given to an instruction set builder for binding immediate
// operands.
func Parse[W Word[W]](token string) (W, error) {
	var w W
	//
	return w.SetString(token)
}

// Zero constructs a word representing 0
func Zero[W Word[W]]() W {
	var w W
	//
	return w
}

// One constructs a word representing 1
func One[W Word[W]]() W {
	var w W
	//
	return w.SetInt64(1)
}

// FromInt64 constructs a word from a given signed integer.
func FromInt64[W Word[W]](val int64) W {
	var w W
	//
	return w.SetInt64(val)
}

func invalidWord(token string, kind string) error {
	return fmt.Errorf("invalid %s \"%s\"", kind, token)
}
