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

import "strconv"

// Int is a signed 64bit word with wrapping arithmetic.
type Int int64

// Add implementation for Word interface.
func (x Int) Add(y Int) Int {
	return x + y
}

// Sub implementation for Word interface.
func (x Int) Sub(y Int) Int {
	return x - y
}

// Mul implementation for Word interface.
func (x Int) Mul(y Int) Int {
	return x * y
}

// Cmp implementation for Word interface.
func (x Int) Cmp(y Int) int {
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
func (x Int) IsZero() bool {
	return x == 0
}

// Int64 implementation for Word interface.
func (x Int) Int64() int64 {
	return int64(x)
}

// SetInt64 implementation for Word interface.
func (x Int) SetInt64(val int64) Int {
	return Int(val)
}

// SetString implementation for Word interface.
func (x Int) SetString(token string) (Int, error) {
	val, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, invalidWord(token, "int64")
	}
	//
	return Int(val), nil
}

// Div implementation for Integer interface.
func (x Int) Div(y Int) Int {
	return x / y
}

// Mod implementation for Integer interface.
func (x Int) Mod(y Int) Int {
	return x % y
}

// And implementation for Integer interface.
func (x Int) And(y Int) Int {
	return x & y
}

// Or implementation for Integer interface.
func (x Int) Or(y Int) Int {
	return x | y
}

// Xor implementation for Integer interface.
func (x Int) Xor(y Int) Int {
	return x ^ y
}

// Not implementation for Integer interface.
func (x Int) Not() Int {
	return ^x
}

// Lsh implementation for Integer interface.
func (x Int) Lsh(n uint) Int {
	return x << n
}

// Rsh implementation for Integer interface.
func (x Int) Rsh(n uint) Int {
	return x >> n
}

func (x Int) String() string {
	return strconv.FormatInt(int64(x), 10)
}
