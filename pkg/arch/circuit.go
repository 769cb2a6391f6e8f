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

import (
	"fmt"

	"github.com/consensys/go-isavm/pkg/vm/graph"
	"github.com/consensys/go-isavm/pkg/vm/isa"
	"github.com/consensys/go-isavm/pkg/vm/operand"
	"github.com/consensys/go-isavm/pkg/vm/word"
)

// Circuit constructs the instruction set of a circuit of bitwise logic gates,
// where each instruction defines the signal on a named wire.  For example,
// "x AND y -> d" defines wire d as the bitwise and of wires x and y, whilst
// "123 -> x" assigns a fixed signal to wire x.
func Circuit[W word.Integer[W]]() *graph.Set[W] {
	return isa.NewBuilder[W, graph.Action[W]](word.Parse[W], operand.LooksNumeric).
		MustAdd("rd {->} ()", func(insn *isa.Instruction[W]) (W, error) {
			return insn.Read(0), nil
		}).
		MustAdd("{NOT} rd -> ()", func(insn *isa.Instruction[W]) (W, error) {
			return insn.Read(0).Not(), nil
		}).
		MustAdd("rd {AND} rd -> ()", gate(func(x, y W) W { return x.And(y) })).
		MustAdd("rd {OR} rd -> ()", gate(func(x, y W) W { return x.Or(y) })).
		MustAdd("rd {LSHIFT} rd -> ()", shift(func(x W, n uint) W { return x.Lsh(n) })).
		MustAdd("rd {RSHIFT} rd -> ()", shift(func(x W, n uint) W { return x.Rsh(n) })).
		Build()
}

func gate[W any](fn func(W, W) W) graph.Action[W] {
	return func(insn *isa.Instruction[W]) (W, error) {
		return fn(insn.Read(0), insn.Read(1)), nil
	}
}

func shift[W word.Integer[W]](fn func(W, uint) W) graph.Action[W] {
	return func(insn *isa.Instruction[W]) (W, error) {
		var (
			lhs = insn.Read(0)
			rhs = insn.Read(1)
		)
		//
		if rhs.Int64() < 0 {
			return lhs, fmt.Errorf("negative shift %s", rhs.String())
		}
		//
		return fn(lhs, uint(rhs.Int64())), nil
	}
}
