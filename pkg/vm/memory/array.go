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
)

// Array is a flat-slice implementation of Store backed by a []W.  Keys are
// translated into addresses by delegating to a D (an AddressDecoder), which
// also determines the (fixed) number of locations.
//
// The type parameter W is the word type (e.g. an int64, a field element or
// big.Int), and D is the AddressDecoder strategy that encodes the layout of
// registers within the flat slice.
type Array[W any, D AddressDecoder] struct {
	name    string
	decoder D
	data    []W
}

// NewArray constructs an Array with the given name and decoder.  The optional
// init values are used as the initial contents of the backing slice, with all
// remaining locations holding zero.
func NewArray[W any, D AddressDecoder](name string, decoder D, init ...W) *Array[W, D] {
	var data = make([]W, decoder.Size())
	//
	if len(init) > len(data) {
		panic(fmt.Sprintf("memory %s initialised beyond its size (%d)", name, len(data)))
	}
	//
	copy(data, init)
	//
	return &Array[W, D]{name, decoder, data}
}

// Name implementation for Memory interface.
func (p *Array[W, D]) Name() string {
	return p.name
}

// Read implementation for Memory interface.
func (p *Array[W, D]) Read(address uint) W {
	p.check(address)
	//
	return p.data[address]
}

// Write implementation for Memory interface.
func (p *Array[W, D]) Write(address uint, value W) {
	p.check(address)
	//
	p.data[address] = value
}

// Contents implementation for Memory interface.
func (p *Array[W, D]) Contents() []W {
	return p.data
}

// Address implementation for Store interface.
func (p *Array[W, D]) Address(key string) (uint, error) {
	return p.decoder.Decode(key)
}

// Get reads the location identified by a given key.  This panics if the key is
// malformed.
func (p *Array[W, D]) Get(key string) W {
	return p.Read(p.mustAddress(key))
}

// Set writes a given value to the location identified by a given key.  This
// panics if the key is malformed.
func (p *Array[W, D]) Set(key string, value W) {
	p.Write(p.mustAddress(key), value)
}

// Reset every location of this memory back to zero.
func (p *Array[W, D]) Reset() {
	clear(p.data)
}

func (p *Array[W, D]) mustAddress(key string) uint {
	address, err := p.decoder.Decode(key)
	if err != nil {
		panic(fmt.Sprintf("memory %s: %s", p.name, err.Error()))
	}
	//
	return address
}

func (p *Array[W, D]) check(address uint) {
	if address >= uint(len(p.data)) {
		panic(fmt.Sprintf("memory %s: address %d out-of-bounds (size %d)", p.name, address, len(p.data)))
	}
}
