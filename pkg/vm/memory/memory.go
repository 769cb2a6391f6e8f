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

// Memory represents (in many ways) the simplest form of memory which can be
// read or written without restrictions.  Initially, all locations can be
// considered to hold zero.  Thus, reading a location which has not yet been
// written will return zero; otherwise, it will return the last value written.
// Reading or writing an address outside of the memory is a fatal error (i.e.
// causes a panic).
type Memory[W any] interface {
	// Name returns the name of this memory
	Name() string
	// Read the word at a given address.
	Read(address uint) W
	// Write a given word to a given address, overwriting the previous value
	// stored at that address.
	Write(address uint, value W)
	// Return the contents of this memory as a sequence of words.
	Contents() []W
}

// Store is a memory whose locations can, additionally, be identified by a
// textual key (e.g. a register name).  The mapping from keys to addresses is
// deterministic and collision free.
type Store[W any] interface {
	Memory[W]
	// Address translates a given key into the address it identifies, or
	// returns an error if the key is malformed.
	Address(key string) (uint, error)
}
