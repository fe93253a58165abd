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
package identity

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/consensys/go-symcalc/pkg/expr"
	"github.com/consensys/go-symcalc/pkg/util/math"
)

// ErrDivisionByZero is returned when a division by zero arises during
// evaluation within the field.
var ErrDivisionByZero = errors.New("division by zero")

// ErrUnsupported is returned for expressions which have no exact meaning in
// the field, such as function applications or factorials.
var ErrUnsupported = errors.New("unsupported in field")

// ErrNoTrials is returned when an equivalence check is asked to evaluate at
// no points at all.
var ErrNoTrials = errors.New("number of trials must be positive")

// Eval evaluates an expression exactly within the scalar field of the
// BLS12-377 curve, under a given assignment of variables.  Division is
// multiplication by the inverse, whilst exponents must be non-negative
// integers which can be evaluated without reference to any variable.
func Eval(env *expr.Environment, n *expr.Node, assignment map[string]fr.Element) (fr.Element, error) {
	var result fr.Element
	//
	base, err := eval(env, n, assignment)
	if err != nil {
		return result, err
	}
	//
	switch x := n.Exponent().(type) {
	case expr.LiteralExponent:
		if x.Value < 0 {
			return result, fmt.Errorf("negative exponent %d: %w", x.Value, ErrUnsupported)
		}
		//
		return *result.Exp(base, big.NewInt(x.Value)), nil
	case expr.ExprExponent:
		k, err := exponent(env, x.Expr)
		if err != nil {
			return result, err
		}
		//
		return *result.Exp(base, k), nil
	}
	//
	return base, nil
}

// eval evaluates a node ignoring its exponent.
func eval(env *expr.Environment, n *expr.Node, assignment map[string]fr.Element) (fr.Element, error) {
	var result fr.Element
	//
	switch n.Kind() {
	case expr.CONSTANT:
		return *result.SetInt64(n.Value()), nil
	case expr.VARIABLE:
		if v, ok := assignment[n.Symbol()]; ok {
			return v, nil
		}
		//
		return result, fmt.Errorf("unassigned variable %s: %w", n.Symbol(), ErrUnsupported)
	case expr.NEGATION:
		v, err := Eval(env, n.Child(0), assignment)
		return *result.Neg(&v), err
	case expr.FUNCTION:
		return result, fmt.Errorf("function %s: %w", n.Symbol(), ErrUnsupported)
	}
	//
	if n.Symbol() == "!" {
		return result, fmt.Errorf("factorial: %w", ErrUnsupported)
	} else if n.Symbol() == "^" {
		base, err := Eval(env, n.Child(0), assignment)
		if err != nil {
			return result, err
		}
		//
		k, err := exponent(env, n.Child(1))
		if err != nil {
			return result, err
		}
		//
		return *result.Exp(base, k), nil
	}
	//
	lhs, err := Eval(env, n.Child(0), assignment)
	if err != nil {
		return result, err
	}
	//
	rhs, err := Eval(env, n.Child(1), assignment)
	if err != nil {
		return result, err
	}
	//
	switch n.Symbol() {
	case "+":
		result.Add(&lhs, &rhs)
	case "-":
		result.Sub(&lhs, &rhs)
	case "*":
		result.Mul(&lhs, &rhs)
	case "/":
		if rhs.IsZero() {
			return result, ErrDivisionByZero
		}
		//
		result.Div(&lhs, &rhs)
	default:
		return result, fmt.Errorf("operator %s: %w", n.Symbol(), ErrUnsupported)
	}
	//
	return result, nil
}

// exponent determines the value of an exponent, which must be a non-negative
// integer independent of any variable.
func exponent(env *expr.Environment, n *expr.Node) (*big.Int, error) {
	v, err := env.Value(n, nil)
	if err != nil {
		return nil, err
	}
	//
	k, ok := math.AsInt64(v)
	//
	if !ok || k < 0 {
		return nil, fmt.Errorf("exponent %s is not a non-negative integer: %w", n, ErrUnsupported)
	}
	//
	return big.NewInt(k), nil
}
