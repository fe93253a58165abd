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
	"fmt"
	"math"
)

// Value computes the numeric value of a node under a given binding of
// variables.  Variables which are neither bound nor named constants, and
// functions which are not registered, evaluate to NaN (i.e. unknown).  An
// error is returned only when an operator is applied outside of its domain.
func (e *Environment) Value(n *Node, binding Binding) (float64, error) {
	v, err := e.value(n, binding)
	if err != nil {
		return math.NaN(), err
	}
	//
	switch x := n.Exponent().(type) {
	case LiteralExponent:
		return math.Pow(v, float64(x.Value)), nil
	case ExprExponent:
		p, err := e.Value(x.Expr, binding)
		if err != nil {
			return math.NaN(), err
		}
		//
		return math.Pow(v, p), nil
	}
	//
	return v, nil
}

// value computes the value of a node, ignoring its exponent.
func (e *Environment) value(n *Node, binding Binding) (float64, error) {
	var scope = Scope{e, binding}
	//
	switch n.kind {
	case CONSTANT:
		return float64(n.value), nil
	case VARIABLE:
		if v, ok := scope.Lookup(n.symbol); ok {
			return v, nil
		}
		//
		return math.NaN(), nil
	case NEGATION:
		v, err := e.Value(n.children[0], binding)
		return -v, err
	case FUNCTION:
		if fn, ok := e.Function(n.symbol); ok {
			return fn(scope, n.children[0])
		}
		//
		return math.NaN(), nil
	case OPERATOR:
		op, ok := LookupOperator(n.symbol)
		if !ok {
			return math.NaN(), fmt.Errorf("unknown operator %s", n.symbol)
		}
		//
		operands := make([]float64, len(n.children))
		//
		for i, child := range n.children {
			v, err := e.Value(child, binding)
			if err != nil {
				return math.NaN(), err
			}
			//
			operands[i] = v
		}
		//
		return op.apply(operands)
	}
	//
	return math.NaN(), fmt.Errorf("unknown node kind %s", n.kind)
}
