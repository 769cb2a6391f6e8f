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
package graph

import (
	"fmt"
	"strings"
)

// CycleError is reported when the definition of a name depends upon itself.
type CycleError struct {
	// Path of names being resolved, starting and ending with the same name.
	Path []string
}

// Error implementation for the error interface.
func (p *CycleError) Error() string {
	return fmt.Sprintf("cyclic definition (%s)", strings.Join(p.Path, " -> "))
}

// UnknownError is reported when a name without a definition is resolved.
type UnknownError struct {
	// Name being resolved
	Name string
}

// Error implementation for the error interface.
func (p *UnknownError) Error() string {
	return fmt.Sprintf("unknown name \"%s\"", p.Name)
}

// Raised (via panic) to unwind a resolution in progress.  This is necessary
// because operands are resolved on demand whilst an action is reading them.
type failure struct {
	err error
}
