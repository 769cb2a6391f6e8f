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
	"math"
	"strconv"
	"strings"
)

// Uint16 is an unsigned 16bit word with wrapping arithmetic.  This matches the
// signals of small combinational circuits, where (for example) the complement
// of 123 is 65412.  When converted to an int64 the word is read as a two's
// complement value, such that jump offsets of -1 (i.e. 65535) go backwards.
type Uint16 uint16

// Add implementation for Word interface.
func (x Uint16) Add(y Uint16) Uint16 {
	return x + y
}

// Sub implementation for Word interface.
func (x Uint16) Sub(y Uint16) Uint16 {
	return x - y
}

// Mul implementation for Word interface.
func (x Uint16) Mul(y Uint16) Uint16 {
	return x * y
}

// Cmp implementation for Word interface.
func (x Uint16) Cmp(y Uint16) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// IsZero implementation for Word interface.
func (x Uint16) IsZero() bool {
	return x == 0
}

// Int64 implementation for Word interface.  Words at or above 32768 are
// negative.
func (x Uint16) Int64() int64 {
	return int64(int16(x))
}

// SetInt64 implementation for Word interface.  Negative values wrap around.
func (x Uint16) SetInt64(val int64) Uint16 {
	return Uint16(val)
}

// SetString implementation for Word interface.  Values between -32768 and
// 65535 are accepted, with negative values wrapping around as for SetInt64.
func (x Uint16) SetString(token string) (Uint16, error) {
	val, err := strconv.ParseInt(strings.TrimPrefix(token, "+"), 10, 32)
	if err != nil || val < math.MinInt16 || val > math.MaxUint16 {
		return 0, invalidWord(token, "uint16")
	}
	//
	return Uint16(val), nil
}

// Div implementation for Integer interface.
func (x Uint16) Div(y Uint16) Uint16 {
	return x / y
}

// Mod implementation for Integer interface.
func (x Uint16) Mod(y Uint16) Uint16 {
	return x % y
}

// And implementation for Integer interface.
func (x Uint16) And(y Uint16) Uint16 {
	return x & y
}

// Or implementation for Integer interface.
func (x Uint16) Or(y Uint16) Uint16 {
	return x | y
}

// Xor implementation for Integer interface.
func (x Uint16) Xor(y Uint16) Uint16 {
	return x ^ y
}

// Not implementation for Integer interface.
func (x Uint16) Not() Uint16 {
	return ^x
}

// Lsh implementation for Integer interface.
func (x Uint16) Lsh(n uint) Uint16 {
	return x << n
}

// Rsh implementation for Integer interface.
func (x Uint16) Rsh(n uint) Uint16 {
	return x >> n
}

func (x Uint16) String() string {
	return strconv.FormatUint(uint64(x), 10)
}
