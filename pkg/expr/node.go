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
	"slices"
)

// Kind identifies what a node represents.
type Kind uint8

// OPERATOR represents the application of an operator (e.g. "+" or "!") to its
// operands.
const OPERATOR Kind = 0

// CONSTANT represents an integer constant.
const CONSTANT Kind = 1

// FUNCTION represents the application of a named function (e.g. "sin") to a
// single argument.
const FUNCTION Kind = 2

// VARIABLE represents a named variable, or a named constant (e.g. "pi").
const VARIABLE Kind = 3

// NEGATION represents the (unary) negation of its only child.
const NEGATION Kind = 4

func (k Kind) String() string {
	switch k {
	case OPERATOR:
		return "Operator"
	case CONSTANT:
		return "Constant"
	case FUNCTION:
		return "Function"
	case VARIABLE:
		return "Variable"
	case NEGATION:
		return "Negation"
	}
	//
	return "Unknown"
}

// Exponent represents the power to which the value of a node is raised.  This
// is either no exponent at all (equivalently, 1), an integer literal, or an
// arbitrary sub-expression.
type Exponent interface {
	isExponent()
}

// NoExponent indicates a node is not raised to any power.
type NoExponent struct{}

// LiteralExponent indicates a node is raised to an integer power.
type LiteralExponent struct {
	Value int64
}

// ExprExponent indicates a node is raised to the power of some expression.
type ExprExponent struct {
	Expr *Node
}

func (NoExponent) isExponent()      {}
func (LiteralExponent) isExponent() {}
func (ExprExponent) isExponent()    {}

// Node is a single node in an expression tree.  The interpretation of a node
// depends upon its kind: operators and functions carry a symbol and their
// operands as children; constants carry an integer value; variables carry a
// name; negations carry their operand.  Non-integer constants are represented
// as fractions (i.e. a division of two integer constants).
//
// A node exclusively owns its children: no child is ever shared between two
// parents, and cloning always produces a deep copy.
type Node struct {
	kind Kind
	// Operator, function or variable name.
	symbol string
	// Value of a constant.
	value int64
	// Operands (if applicable).
	children []*Node
	// Power to which this node is raised (nil is equivalent to NoExponent).
	exponent Exponent
}

// NewInteger constructs a constant node with a given value.
func NewInteger(value int64) *Node {
	return &Node{kind: CONSTANT, value: value}
}

// NewFraction constructs a division of two integer constants.  No attempt is
// made to reduce the fraction.
func NewFraction(num int64, den int64) *Node {
	return NewOperator("/", NewInteger(num), NewInteger(den))
}

// NewVariable constructs a node referring to a named variable (or constant).
func NewVariable(name string) *Node {
	return &Node{kind: VARIABLE, symbol: name}
}

// NewFunction constructs the application of a named function to an argument.
// The function need not be registered in any environment, though it will
// evaluate to an unknown value where it is not.
func NewFunction(name string, arg *Node) *Node {
	return &Node{kind: FUNCTION, symbol: name, children: []*Node{arg}}
}

// NewNegation constructs the negation of a given node.
func NewNegation(arg *Node) *Node {
	return &Node{kind: NEGATION, children: []*Node{arg}}
}

// NewOperator constructs the application of an operator to its operands.  This
// panics if the operator is unknown, or the number of operands does not match
// its arity.
func NewOperator(symbol string, operands ...*Node) *Node {
	op, ok := LookupOperator(symbol)
	//
	if !ok {
		panic("unknown operator " + symbol)
	} else if uint(len(operands)) != op.Arity {
		panic("incorrect number of operands for " + symbol)
	}
	//
	return &Node{kind: OPERATOR, symbol: symbol, children: operands}
}

// Kind returns the kind of this node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Symbol returns the operator, function or variable name of this node.  For
// constants and negations this is empty.
func (n *Node) Symbol() string {
	return n.symbol
}

// Value returns the value of a constant node.  For all other kinds this is
// zero.
func (n *Node) Value() int64 {
	return n.value
}

// Children returns the operands of this node.  The returned slice should not
// be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the ith operand of this node.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Exponent returns the power to which this node is raised.
func (n *Node) Exponent() Exponent {
	if n.exponent == nil {
		return NoExponent{}
	}
	//
	return n.exponent
}

// HasExponent checks whether this node is raised to some power.
func (n *Node) HasExponent() bool {
	_, none := n.Exponent().(NoExponent)
	return !none
}

// SetExponent sets the power to which this node is raised, replacing any
// existing exponent.  An expression exponent is cloned.
func (n *Node) SetExponent(exponent Exponent) {
	switch e := exponent.(type) {
	case ExprExponent:
		n.exponent = ExprExponent{e.Expr.Clone()}
	case LiteralExponent:
		if e.Value == 1 {
			n.exponent = NoExponent{}
		} else {
			n.exponent = e
		}
	default:
		n.exponent = NoExponent{}
	}
}

// IsFraction checks whether this node is a division.  Fractions are treated
// specially throughout the arithmetic routines.
func (n *Node) IsFraction() bool {
	return n.kind == OPERATOR && n.symbol == "/"
}

// IsInteger checks whether this node is a bare integer constant (i.e. without
// an exponent) with the given value.
func (n *Node) IsInteger(value int64) bool {
	return n.kind == CONSTANT && !n.HasExponent() && n.value == value
}

// Clone returns a deep copy of this node.
func (n *Node) Clone() *Node {
	clone := &Node{kind: n.kind, symbol: n.symbol, value: n.value, exponent: n.exponent}
	//
	if len(n.children) > 0 {
		clone.children = make([]*Node, len(n.children))
		//
		for i, child := range n.children {
			clone.children[i] = child.Clone()
		}
	}
	//
	if e, ok := n.exponent.(ExprExponent); ok {
		clone.exponent = ExprExponent{e.Expr.Clone()}
	}
	//
	return clone
}

// Update replaces the contents of this node wholesale (kind, symbol, value,
// children and exponent) with a copy of another node.
func (n *Node) Update(other *Node) {
	n.adopt(other.Clone())
}

// Equal checks whether two trees are structurally identical.
func (n *Node) Equal(other *Node) bool {
	if n.kind != other.kind || n.symbol != other.symbol || n.value != other.value {
		return false
	} else if !equalExponents(n.Exponent(), other.Exponent()) {
		return false
	}
	//
	return slices.EqualFunc(n.children, other.children, (*Node).Equal)
}

// adopt takes over the contents of another node, which must not be used
// afterwards.
func (n *Node) adopt(other *Node) {
	*n = *other
}

// setInteger turns this node into a bare integer constant.
func (n *Node) setInteger(value int64) {
	*n = Node{kind: CONSTANT, value: value}
}

func equalExponents(lhs Exponent, rhs Exponent) bool {
	switch l := lhs.(type) {
	case NoExponent:
		_, ok := rhs.(NoExponent)
		return ok
	case LiteralExponent:
		r, ok := rhs.(LiteralExponent)
		return ok && l.Value == r.Value
	case ExprExponent:
		r, ok := rhs.(ExprExponent)
		return ok && l.Expr.Equal(r.Expr)
	}
	//
	return false
}
