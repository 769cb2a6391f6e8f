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

// INT64 corresponds to signed 64bit words.
var INT64 = Config{"int64", 64, true}

// UINT16 corresponds to unsigned 16bit words.
var UINT16 = Config{"uint16", 16, true}

// BIG corresponds to arbitrary precision integers.
var BIG = Config{"big", 0, true}

// BLS12_377 corresponds to elements of the BLS12-377 scalar field.
var BLS12_377 = Config{"bls12_377", 253, false}

// WORD_CONFIGS determines the set of supported words.
var WORD_CONFIGS = []Config{
	INT64,
	UINT16,
	BIG,
	BLS12_377,
}

// Config identifies a given kind of machine word, such that commands can be
// dispatched to an instantiation for that word.
type Config struct {
	// Name suitable for identifying the config.  This is only really used for
	// improving error reporting, etc.
	Name string
	// Number of bits in a word, or 0 if unbounded.
	BitWidth uint
	// Integer indicates whether or not the word supports integer division and
	// bitwise operations.
	Integer bool
}

// GetConfig returns the word configuration corresponding with the given
// name, or nil no such config exists.
func GetConfig(name string) *Config {
	for i := range WORD_CONFIGS {
		if WORD_CONFIGS[i].Name == name {
			return &WORD_CONFIGS[i]
		}
	}
	//
	return nil
}
