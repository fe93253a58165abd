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
package expr

import (
	"errors"
	"fmt"

	"github.com/consensys/go-symcalc/pkg/util/source"
)

// ErrFrozen is returned when attempting to register a constant or function
// with an environment which has been frozen (such as the default
// environment).
var ErrFrozen = errors.New("environment is frozen")

// InputError signals malformed input text: empty expressions, unbalanced
// brackets, adjacent operators, unrecognised characters, and so on.  It
// retains the span of the offending text so that it can be highlighted.
type InputError struct {
	*source.SyntaxError
}

// Unwrap provides access to the underlying syntax error.
func (p *InputError) Unwrap() error {
	return p.SyntaxError
}

// DomainError signals that an operator was applied to a value outside of its
// domain, such as the factorial of a negative number.  Unlike input errors,
// these can only be detected during evaluation.
type DomainError struct {
	Operator string
	Operand  float64
}

func (p *DomainError) Error() string {
	return fmt.Sprintf("operator %s undefined for %v (expected integer in [0, inf))", p.Operator, p.Operand)
}

func inputError(srcfile *source.File, span source.Span, msg string) *InputError {
	return &InputError{srcfile.SyntaxError(span, msg)}
}

// inputErrorFor reports an error covering the entirety of some standalone
// text, such as a substitution value or constant name.
func inputErrorFor(text string, msg string) *InputError {
	srcfile := source.NewSourceText(text)
	return inputError(srcfile, source.NewSpan(0, len(srcfile.Contents())), msg)
}
