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
package memory

import (
	"fmt"
	"strconv"
)

// AddressDecoder translates a textual key (e.g. a register name) into an
// address within a flat memory.  Every decoder covers a fixed range of
// addresses [0, Size), and distinct keys accepted by a decoder never alias
// unless the decoder explicitly ignores part of a key.
type AddressDecoder interface {
	// Decode maps a given key to the address it identifies, or returns an error
	// if the key is not valid for this decoder.
	Decode(key string) (uint, error)
	// Size returns the number of addressable locations.
	Size() uint
}

// IndexDecoder addresses locations by a decimal index (e.g. "0", "17").
type IndexDecoder struct {
	size uint
}

// NewIndexDecoder constructs a decoder for a memory with a given number of
// locations.
func NewIndexDecoder(size uint) IndexDecoder {
	return IndexDecoder{size}
}

// Decode implementation for AddressDecoder interface.
func (p IndexDecoder) Decode(key string) (uint, error) {
	index, err := strconv.ParseUint(key, 10, 64)
	//
	if err != nil {
		return 0, fmt.Errorf("invalid index \"%s\"", key)
	} else if index >= uint64(p.size) {
		return 0, fmt.Errorf("index %d out-of-bounds (size %d)", index, p.size)
	}
	//
	return uint(index), nil
}

// Size implementation for AddressDecoder interface.
func (p IndexDecoder) Size() uint {
	return p.size
}

// Number of letters in the english alphabet.
const letters = 26

// Number of decimal digits.
const digits = 10

// LetterDecoder addresses locations using a single character.  Lower-case
// letters, upper-case letters and digits are mapped onto disjoint contiguous
// ranges, such that "a".."z" occupy addresses 0..25, "A".."Z" occupy addresses
// 26..51 and "0".."9" occupy addresses 52..61.
type LetterDecoder struct{}

// Decode implementation for AddressDecoder interface.
func (p LetterDecoder) Decode(key string) (uint, error) {
	if len(key) != 1 {
		return 0, fmt.Errorf("invalid register \"%s\" (expected single letter)", key)
	}
	//
	return decodeLetter(key)
}

// Size implementation for AddressDecoder interface.
func (p LetterDecoder) Size() uint {
	return 2*letters + digits
}

// NameDecoder addresses locations using short names, where only the first
// character of a name is significant.  For example, "a" and "acc" identify the
// same location.  The first character is mapped as for a LetterDecoder.
type NameDecoder struct{}

// Decode implementation for AddressDecoder interface.
func (p NameDecoder) Decode(key string) (uint, error) {
	if len(key) == 0 {
		return 0, fmt.Errorf("empty register name")
	}
	//
	return decodeLetter(key)
}

// Size implementation for AddressDecoder interface.
func (p NameDecoder) Size() uint {
	return 2*letters + digits
}

func decodeLetter(key string) (uint, error) {
	var c = key[0]
	//
	switch {
	case 'a' <= c && c <= 'z':
		return uint(c - 'a'), nil
	case 'A' <= c && c <= 'Z':
		return letters + uint(c-'A'), nil
	case '0' <= c && c <= '9':
		return 2*letters + uint(c-'0'), nil
	default:
		return 0, fmt.Errorf("invalid register \"%s\"", key)
	}
}
