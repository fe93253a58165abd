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
	log "github.com/sirupsen/logrus"

	umath "github.com/consensys/go-symcalc/pkg/util/math"
)

// Simplify rewrites a tree in place, bottom up.  Any node whose value is known
// and integral is collapsed into a constant; double negations are removed;
// additive and multiplicative identities are eliminated; and fractions of
// integer constants are reduced to lowest terms.  Non-integral values are
// never collapsed, hence "1/3" remains a fraction.
func (e *Environment) Simplify(n *Node) {
	for _, child := range n.children {
		e.Simplify(child)
	}
	//
	e.simplifyExponent(n)
	// Collapse known integer values
	if n.kind != CONSTANT || n.HasExponent() {
		v, err := e.Value(n, nil)
		//
		if err != nil {
			log.Debugf("cannot simplify %s: %s", n, err)
		} else if iv, ok := umath.AsInt64(v); ok {
			n.setInteger(iv)
			return
		}
	}
	// Identities do not hold for nodes raised to some power, since the
	// exponent would be lost.
	if n.HasExponent() {
		return
	}
	//
	switch n.kind {
	case NEGATION:
		simplifyNegation(n)
	case OPERATOR:
		simplifyOperator(n)
	}
}

func (e *Environment) simplifyExponent(n *Node) {
	switch x := n.Exponent().(type) {
	case ExprExponent:
		e.Simplify(x.Expr)
		//
		if x.Expr.kind == CONSTANT && !x.Expr.HasExponent() {
			n.SetExponent(LiteralExponent{x.Expr.value})
		}
	case LiteralExponent:
		n.SetExponent(x)
	}
}

func simplifyNegation(n *Node) {
	child := n.children[0]
	//
	switch {
	case child.kind == NEGATION && !child.HasExponent():
		// --a => a
		n.adopt(child.children[0])
	case isIntegerFraction(child):
		// -(a/b) => (-a)/b
		num, den := child.children[0].value, child.children[1].value
		n.adopt(NewFraction(-num, den))
	}
}

func simplifyOperator(n *Node) {
	var lhs, rhs = n.children[0], n.children[len(n.children)-1]
	//
	switch n.symbol {
	case "+":
		if rhs.IsInteger(0) {
			n.adopt(lhs)
		} else if lhs.IsInteger(0) {
			n.adopt(rhs)
		}
	case "-":
		if rhs.IsInteger(0) {
			n.adopt(lhs)
		} else if lhs.IsInteger(0) {
			n.adopt(negated(rhs))
		}
	case "*":
		if isUnit(lhs) {
			n.adopt(withSign(rhs, lhs.value))
		} else if isUnit(rhs) {
			n.adopt(withSign(lhs, rhs.value))
		}
	case "/":
		if isUnit(rhs) {
			n.adopt(withSign(lhs, rhs.value))
		} else if isIntegerFraction(n) && rhs.value != 0 {
			num, den := umath.Reduce(lhs.value, rhs.value)
			lhs.value, rhs.value = num, den
		}
	}
}

// isUnit checks whether a node is a bare constant 1 or -1.
func isUnit(n *Node) bool {
	return n.IsInteger(1) || n.IsInteger(-1)
}

// isIntegerFraction checks whether a node is the division of two bare integer
// constants.
func isIntegerFraction(n *Node) bool {
	if !n.IsFraction() || n.HasExponent() {
		return false
	}
	//
	num, den := n.children[0], n.children[1]
	//
	return num.kind == CONSTANT && !num.HasExponent() && den.kind == CONSTANT && !den.HasExponent()
}

func withSign(n *Node, sign int64) *Node {
	if sign < 0 {
		return negated(n)
	}
	//
	return n
}

// negated returns the negation of a node, removing a double negation where
// possible.  The given node is reused, rather than copied.
func negated(n *Node) *Node {
	switch {
	case n.kind == NEGATION && !n.HasExponent():
		return n.children[0]
	case n.kind == CONSTANT && !n.HasExponent():
		return NewInteger(-n.value)
	case isIntegerFraction(n):
		return NewFraction(-n.children[0].value, n.children[1].value)
	}
	//
	return NewNegation(n)
}
