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

// Add returns the (simplified) sum of two nodes, neither of which is
// modified.  Where either is a fraction, the result is a single fraction over
// the product of their denominators.
func (e *Environment) Add(lhs *Node, rhs *Node) *Node {
	return e.combine("+", lhs, rhs)
}

// Subtract returns the (simplified) difference of two nodes, neither of which
// is modified.
func (e *Environment) Subtract(lhs *Node, rhs *Node) *Node {
	return e.combine("-", lhs, rhs)
}

// Multiply returns the (simplified) product of two nodes, neither of which is
// modified.
func (e *Environment) Multiply(lhs *Node, rhs *Node) *Node {
	return e.combine("*", lhs, rhs)
}

// Divide returns the (simplified) quotient of two nodes, neither of which is
// modified.
func (e *Environment) Divide(lhs *Node, rhs *Node) *Node {
	return e.combine("/", lhs, rhs)
}

// Pow raises a node to a given power, returning the simplified result.  An
// existing exponent is multiplied by the given power, such that (x^2)^3
// becomes x^6.  Neither argument is modified.
func (e *Environment) Pow(n *Node, power *Node) *Node {
	var result = n.Clone()
	//
	switch x := n.Exponent().(type) {
	case NoExponent:
		result.exponent = ExprExponent{power.Clone()}
	case LiteralExponent:
		result.exponent = ExprExponent{e.Multiply(NewInteger(x.Value), power)}
	case ExprExponent:
		result.exponent = ExprExponent{e.Multiply(x.Expr, power)}
	}
	//
	e.Simplify(result)
	//
	return result
}

// Negate returns the (simplified) negation of a node, which is not modified.
func (e *Environment) Negate(n *Node) *Node {
	var result *Node
	//
	if n.kind == NEGATION && !n.HasExponent() {
		result = n.children[0].Clone()
	} else {
		result = NewNegation(n.Clone())
	}
	//
	e.Simplify(result)
	//
	return result
}

// AddHere replaces a node with its sum with another.
func (e *Environment) AddHere(n *Node, other *Node) {
	n.adopt(e.Add(n, other))
}

// SubtractHere replaces a node with its difference with another.
func (e *Environment) SubtractHere(n *Node, other *Node) {
	n.adopt(e.Subtract(n, other))
}

// MultiplyHere replaces a node with its product with another.
func (e *Environment) MultiplyHere(n *Node, other *Node) {
	n.adopt(e.Multiply(n, other))
}

// DivideHere replaces a node with its quotient with another.
func (e *Environment) DivideHere(n *Node, other *Node) {
	n.adopt(e.Divide(n, other))
}

// PowHere raises a node to a given power in place.
func (e *Environment) PowHere(n *Node, power *Node) {
	n.adopt(e.Pow(n, power))
}

// NegateHere negates a node in place.
func (e *Environment) NegateHere(n *Node) {
	n.adopt(e.Negate(n))
}

func (e *Environment) combine(op string, lhs *Node, rhs *Node) *Node {
	var result *Node
	//
	if !hasFractionParts(lhs) && !hasFractionParts(rhs) {
		result = NewOperator(op, lhs.Clone(), rhs.Clone())
	} else {
		var (
			ln, ld = fractionParts(lhs)
			rn, rd = fractionParts(rhs)
			num    *Node
			den    *Node
		)
		//
		switch op {
		case "+", "-":
			// a/b + c/d = (ad + cb) / bd
			num = e.combine(op, e.Multiply(ln, rd), e.Multiply(rn, ld))
			den = e.Multiply(ld, rd)
		case "*":
			// a/b * c/d = ac / bd
			num = e.Multiply(ln, rn)
			den = e.Multiply(ld, rd)
		default:
			// (a/b) / (c/d) = ad / bc
			num = e.Multiply(ln, rd)
			den = e.Multiply(ld, rn)
		}
		//
		result = NewOperator("/", num, den)
	}
	//
	e.Simplify(result)
	//
	return result
}

// isOpenFraction checks whether a node is a fraction whose numerator and
// denominator can be separated.  A fraction raised to some power is opaque.
func isOpenFraction(n *Node) bool {
	return n.IsFraction() && !n.HasExponent()
}

// isNegatedFraction checks whether a node is the negation of an open
// fraction, such as -(x/2).
func isNegatedFraction(n *Node) bool {
	return n.kind == NEGATION && !n.HasExponent() && isOpenFraction(n.children[0])
}

func hasFractionParts(n *Node) bool {
	return isOpenFraction(n) || isNegatedFraction(n)
}

// fractionParts returns the numerator and denominator of a node, where a
// non-fraction is treated as being over 1.  A negated fraction contributes a
// negated numerator.
func fractionParts(n *Node) (*Node, *Node) {
	switch {
	case isOpenFraction(n):
		return n.children[0], n.children[1]
	case isNegatedFraction(n):
		frac := n.children[0]
		return NewNegation(frac.children[0]), frac.children[1]
	}
	//
	return n, NewInteger(1)
}
