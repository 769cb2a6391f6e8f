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
package arch

import "github.com/consensys/go-isavm/pkg/vm/memory"

// RegisterFile is a store of registers addressed by single characters.
type RegisterFile[W any] = memory.Array[W, memory.LetterDecoder]

// Registers constructs a register file suitable for the sequential machines of
// this package, where registers are named by a single letter or digit.
func Registers[W any](init ...W) *RegisterFile[W] {
	return memory.NewArray[W]("registers", memory.LetterDecoder{}, init...)
}
