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
package isa

import "fmt"

// FormatError is reported when a format cannot be registered with a builder,
// for example because it is malformed or its mnemonic is already in use.
type FormatError struct {
	// Format being registered
	Format string
	// Message describing the problem
	Message string
}

// Error implementation for the error interface.
func (p *FormatError) Error() string {
	return fmt.Sprintf("invalid format \"%s\": %s", p.Format, p.Message)
}

func formatError(format string, msg string) *FormatError {
	return &FormatError{format, msg}
}
