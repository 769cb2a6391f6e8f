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

	"github.com/consensys/go-isavm/pkg/util/source/lex"
)

// Registers is implemented by anything which owns the storage to which
// register operands are bound, such as the register file of a machine.  Binding
// happens once per operand, when an instruction is parsed.
type Registers[W any] interface {
	// BindRegister binds a given register name to an operand, or returns an
	// error if the name does not identify a register.
	BindRegister(name string) (Operand[W], error)
}

// Parser constructs a word from a given textual token.
type Parser[W any] func(token string) (W, error)

// Classifier determines whether a given raw token denotes an immediate value
// (true) or a register (false).
type Classifier func(token string) bool

// Binder is a strategy for turning a raw operand token into a bound operand.
type Binder[W any] interface {
	// Bind a given token using a given set of registers.
	Bind(token string, regs Registers[W]) (Operand[W], error)
}

// RegisterBinder binds every token to a register.
type RegisterBinder[W any] struct{}

// Bind implementation for Binder interface.
func (p RegisterBinder[W]) Bind(token string, regs Registers[W]) (Operand[W], error) {
	reg, err := regs.BindRegister(token)
	//
	if err != nil {
		return nil, &BindError{token, err}
	}
	//
	return reg, nil
}

// ImmediateBinder binds every token to a constant, using a given parser.
type ImmediateBinder[W any] struct {
	parser Parser[W]
}

// NewImmediateBinder constructs a binder for immediate operands.
func NewImmediateBinder[W any](parser Parser[W]) ImmediateBinder[W] {
	return ImmediateBinder[W]{parser}
}

// Bind implementation for Binder interface.
func (p ImmediateBinder[W]) Bind(token string, _ Registers[W]) (Operand[W], error) {
	value, err := p.parser(token)
	//
	if err != nil {
		return nil, &BindError{token, err}
	}
	//
	return NewConstant(token, value), nil
}

// EitherBinder binds a token either to a register or to a constant.  The
// decision is made by classifying the raw token, not its value.  Hence, it is
// fixed for each occurrence of an operand.
type EitherBinder[W any] struct {
	classifier Classifier
	immediate  ImmediateBinder[W]
}

// NewEitherBinder constructs a binder which uses a given classifier to choose
// between a register and an immediate for each token.
func NewEitherBinder[W any](classifier Classifier, parser Parser[W]) EitherBinder[W] {
	return EitherBinder[W]{classifier, NewImmediateBinder(parser)}
}

// Bind implementation for Binder interface.
func (p EitherBinder[W]) Bind(token string, regs Registers[W]) (Operand[W], error) {
	if p.classifier(token) {
		return p.immediate.Bind(token, regs)
	}
	//
	return RegisterBinder[W]{}.Bind(token, regs)
}

// LooksNumeric is the default classifier.  A token is considered numeric if
// it begins with a decimal digit, or with a sign followed by a decimal digit.
func LooksNumeric(token string) bool {
	return numeric([]rune(token)) > 0
}

// Rule for the start of a numeric token, which is a digit optionally preceded
// by a sign.
var numeric lex.Scanner[rune] = lex.Or(
	lex.Within('0', '9'),
	lex.Sequence(lex.Or(lex.Unit('-'), lex.Unit('+')), lex.Within('0', '9')))

// BindError reports a failure to bind a given operand token.
type BindError struct {
	// Token being bound
	Token string
	// Underlying cause
	Cause error
}

// Error implementation for the error interface.
func (p *BindError) Error() string {
	return fmt.Sprintf("invalid operand \"%s\" (%s)", p.Token, p.Cause.Error())
}

// Unwrap returns the underlying cause of this error.
func (p *BindError) Unwrap() error {
	return p.Cause
}
