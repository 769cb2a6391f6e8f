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
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Field is a word representing an element of the BLS12-377 scalar field.  All
// arithmetic is performed modulo the field order, hence negative values are
// represented by their additive inverse.
type Field struct {
	val fr.Element
}

// NewField constructs a word from a given field element.
func NewField(val fr.Element) Field {
	return Field{val}
}

// Element returns the underlying field element.
func (x Field) Element() fr.Element {
	return x.val
}

// Add implementation for Word interface.
func (x Field) Add(y Field) Field {
	var r fr.Element
	//
	r.Add(&x.val, &y.val)
	//
	return Field{r}
}

// Sub implementation for Word interface.
func (x Field) Sub(y Field) Field {
	var r fr.Element
	//
	r.Sub(&x.val, &y.val)
	//
	return Field{r}
}

// Mul implementation for Word interface.
func (x Field) Mul(y Field) Field {
	var r fr.Element
	//
	r.Mul(&x.val, &y.val)
	//
	return Field{r}
}

// Cmp implementation for Word interface.  Elements are compared by their
// canonical (i.e. non-negative) integer representation.
func (x Field) Cmp(y Field) int {
	return x.val.Cmp(&y.val)
}

// IsZero implementation for Word interface.
func (x Field) IsZero() bool {
	return x.val.IsZero()
}

// Int64 implementation for Word interface.  Elements whose additive inverse
// is small are treated as negative, such that SetInt64(-n).Int64() == -n.
func (x Field) Int64() int64 {
	if x.val.IsUint64() {
		return int64(x.val.Uint64())
	}
	//
	var neg fr.Element
	//
	neg.Neg(&x.val)
	//
	return -int64(neg.Uint64())
}

// SetInt64 implementation for Word interface.
func (x Field) SetInt64(val int64) Field {
	var r fr.Element
	//
	r.SetInt64(val)
	//
	return Field{r}
}

// SetString implementation for Word interface.
func (x Field) SetString(token string) (Field, error) {
	var r fr.Element
	//
	if _, err := r.SetString(token); err != nil {
		return Field{}, invalidWord(token, "field element")
	}
	//
	return Field{r}, nil
}

func (x Field) String() string {
	return x.val.String()
}
