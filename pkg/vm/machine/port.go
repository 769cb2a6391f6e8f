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

// Port is the means by which a machine communicates with the outside world.
// Instructions send values through a port, or receive them from it.  There is
// no synchronisation between machines sharing a port; any coordination is the
// responsibility of the caller.
type Port[W any] interface {
	// Send a value through this port.
	Send(value W)
	// Receive the next value from this port, or return false if none is
	// available.
	Receive() (W, bool)
}

// Queue is an in-memory port where values are received in the order they were
// sent.
type Queue[W any] struct {
	items []W
}

// NewQueue constructs an empty queue.
func NewQueue[W any](items ...W) *Queue[W] {
	return &Queue[W]{items}
}

// Send implementation for Port interface.
func (p *Queue[W]) Send(value W) {
	p.items = append(p.items, value)
}

// Receive implementation for Port interface.
func (p *Queue[W]) Receive() (W, bool) {
	var empty W
	//
	if len(p.items) == 0 {
		return empty, false
	}
	//
	item := p.items[0]
	p.items = p.items[1:]
	//
	return item, true
}

// Len returns the number of values waiting in this queue.
func (p *Queue[W]) Len() int {
	return len(p.items)
}

// Items returns the values waiting in this queue, in the order they would be
// received.
func (p *Queue[W]) Items() []W {
	return p.items
}
