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
	"math/big"
)

// Big is an arbitrary precision integer word.  The underlying big.Int is never
// modified once a word is constructed and, hence, can be safely shared between
// copies.  The zero value represents 0.
type Big struct {
	val *big.Int
}

// NewBig constructs a word from a given big integer.  The given integer is
// copied.
func NewBig(val *big.Int) Big {
	return Big{new(big.Int).Set(val)}
}

// BigInt returns (a copy of) the underlying big integer.
func (x Big) BigInt() *big.Int {
	return new(big.Int).Set(x.get())
}

// Add implementation for Word interface.
func (x Big) Add(y Big) Big {
	return Big{new(big.Int).Add(x.get(), y.get())}
}

// Sub implementation for Word interface.
func (x Big) Sub(y Big) Big {
	return Big{new(big.Int).Sub(x.get(), y.get())}
}

// Mul implementation for Word interface.
func (x Big) Mul(y Big) Big {
	return Big{new(big.Int).Mul(x.get(), y.get())}
}

// Cmp implementation for Word interface.
func (x Big) Cmp(y Big) int {
	return x.get().Cmp(y.get())
}

// IsZero implementation for Word interface.
func (x Big) IsZero() bool {
	return x.get().Sign() == 0
}

// Int64 implementation for Word interface.
func (x Big) Int64() int64 {
	return x.get().Int64()
}

// SetInt64 implementation for Word interface.
func (x Big) SetInt64(val int64) Big {
	return Big{big.NewInt(val)}
}

// SetString implementation for Word interface.
func (x Big) SetString(token string) (Big, error) {
	val, ok := new(big.Int).SetString(token, 10)
	if !ok {
		return Big{}, invalidWord(token, "integer")
	}
	//
	return Big{val}, nil
}

// Div implementation for Integer interface.
func (x Big) Div(y Big) Big {
	return Big{new(big.Int).Quo(x.get(), y.get())}
}

// Mod implementation for Integer interface.
func (x Big) Mod(y Big) Big {
	return Big{new(big.Int).Rem(x.get(), y.get())}
}

// And implementation for Integer interface.
func (x Big) And(y Big) Big {
	return Big{new(big.Int).And(x.get(), y.get())}
}

// Or implementation for Integer interface.
func (x Big) Or(y Big) Big {
	return Big{new(big.Int).Or(x.get(), y.get())}
}

// Xor implementation for Integer interface.
func (x Big) Xor(y Big) Big {
	return Big{new(big.Int).Xor(x.get(), y.get())}
}

// Not implementation for Integer interface.
func (x Big) Not() Big {
	return Big{new(big.Int).Not(x.get())}
}

// Lsh implementation for Integer interface.
func (x Big) Lsh(n uint) Big {
	return Big{new(big.Int).Lsh(x.get(), n)}
}

// Rsh implementation for Integer interface.
func (x Big) Rsh(n uint) Big {
	return Big{new(big.Int).Rsh(x.get(), n)}
}

func (x Big) String() string {
	return x.get().String()
}

var zero big.Int

func (x Big) get() *big.Int {
	if x.val == nil {
		return &zero
	}
	//
	return x.val
}
