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
package machine

import log "github.com/sirupsen/logrus"

// Pipeline determines how the program counter moves between instructions.
// Every instruction is followed by exactly one Advance, and a jump is realised
// by positioning the counter one before its destination.  Thus, jumping and
// falling through to the next instruction share the same increment.
type Pipeline interface {
	// Advance returns the program counter following the given one.
	Advance(pc int) int
	// Branch returns the program counter which, once advanced, lands offset
	// instructions from the given one.
	Branch(pc int, offset int) int
	// Goto returns the program counter which, once advanced, lands at the
	// given target.
	Goto(target int) int
}

// Sequential is the default pipeline, where instructions execute one after the
// other.
type Sequential struct{}

// Advance implementation for Pipeline interface.
func (p Sequential) Advance(pc int) int {
	return pc + 1
}

// Branch implementation for Pipeline interface.
func (p Sequential) Branch(pc int, offset int) int {
	return pc + offset - 1
}

// Goto implementation for Pipeline interface.
func (p Sequential) Goto(target int) int {
	return target - 1
}

// Traced decorates a pipeline by logging every transition at trace level.
type Traced struct {
	pipeline Pipeline
}

// NewTraced constructs a pipeline which logs the transitions of a given
// pipeline.
func NewTraced(pipeline Pipeline) Traced {
	return Traced{pipeline}
}

// Advance implementation for Pipeline interface.
func (p Traced) Advance(pc int) int {
	next := p.pipeline.Advance(pc)
	log.Tracef("pc %d => %d", pc, next)
	//
	return next
}

// Branch implementation for Pipeline interface.
func (p Traced) Branch(pc int, offset int) int {
	next := p.pipeline.Branch(pc, offset)
	log.Tracef("branch %+d from pc %d", offset, pc)
	//
	return next
}

// Goto implementation for Pipeline interface.
func (p Traced) Goto(target int) int {
	next := p.pipeline.Goto(target)
	log.Tracef("goto %d", target)
	//
	return next
}
