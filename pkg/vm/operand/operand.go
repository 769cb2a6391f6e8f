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
package operand

import (
	"fmt"

	"github.com/consensys/go-isavm/pkg/vm/memory"
)

// Operand is a bound accessor for a single instruction operand.  Operands are
// created once, when an instruction is parsed, and are thereafter immutable.
// That is, an operand bound to a register will always read (and write) that
// register, whilst an operand bound to a constant always reads that constant.
type Operand[W any] interface {
	fmt.Stringer
	// Read the current value of this operand.
	Read() W
	// Write a given value to this operand.  This panics if the operand is not
	// writable.
	Write(W)
	// Writable determines whether or not this operand can be written.
	Writable() bool
}

// Register is an operand bound to a given location of a memory (typically the
// register file of a machine).  Reads and writes go directly to the memory and,
// hence, all bindings to the same register observe the same value.
type Register[W any] struct {
	name    string
	address uint
	memory  memory.Memory[W]
}

// NewRegister constructs a register operand with a given name, bound to a
// given address of a given memory.
func NewRegister[W any](name string, address uint, mem memory.Memory[W]) *Register[W] {
	return &Register[W]{name, address, mem}
}

// Address returns the address of the memory location to which this register
// is bound.
func (p *Register[W]) Address() uint {
	return p.address
}

// Read implementation for Operand interface.
func (p *Register[W]) Read() W {
	return p.memory.Read(p.address)
}

// Write implementation for Operand interface.
func (p *Register[W]) Write(value W) {
	p.memory.Write(p.address, value)
}

// Writable implementation for Operand interface.
func (p *Register[W]) Writable() bool {
	return true
}

func (p *Register[W]) String() string {
	return p.name
}

// Constant is a read-only operand holding a fixed value (e.g. an immediate).
type Constant[W any] struct {
	text  string
	value W
}

// NewConstant constructs a constant operand with a given value, parsed from
// the given text.
func NewConstant[W any](text string, value W) *Constant[W] {
	return &Constant[W]{text, value}
}

// Read implementation for Operand interface.
func (p *Constant[W]) Read() W {
	return p.value
}

// Write implementation for Operand interface.
func (p *Constant[W]) Write(W) {
	panic(fmt.Sprintf("cannot write to constant %s", p.text))
}

// Writable implementation for Operand interface.
func (p *Constant[W]) Writable() bool {
	return false
}

func (p *Constant[W]) String() string {
	return p.text
}
