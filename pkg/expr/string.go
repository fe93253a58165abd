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
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// String renders a tree as text which, when parsed, produces a tree with the
// same value.  Brackets are only introduced where necessary.
func (n *Node) String() string {
	var s string
	//
	switch n.kind {
	case CONSTANT:
		s = strconv.FormatInt(n.value, 10)
	case VARIABLE:
		s = n.symbol
	case FUNCTION:
		s = fmt.Sprintf("%s(%s)", n.symbol, n.children[0])
	case NEGATION:
		child := n.children[0]
		//
		if child.kind == OPERATOR || child.kind == NEGATION || child.HasExponent() || strings.HasPrefix(child.String(), "-") {
			s = fmt.Sprintf("-(%s)", child)
		} else {
			s = "-" + child.String()
		}
	case OPERATOR:
		op, _ := LookupOperator(n.symbol)
		//
		if op.Postfix {
			s = printChild(op, 0, n.children[0]) + op.Symbol
		} else {
			s = printChild(op, 0, n.children[0]) + op.Symbol + printChild(op, 1, n.children[1])
		}
	}
	//
	switch x := n.Exponent().(type) {
	case LiteralExponent:
		return fmt.Sprintf("%s^%s", bracketUnless(s, isAtomic(n)), strconv.FormatInt(x.Value, 10))
	case ExprExponent:
		return fmt.Sprintf("%s^%s", bracketUnless(s, isAtomic(n)), bracketUnless(x.Expr.String(), isAtomic(x.Expr) && !x.Expr.HasExponent()))
	}
	//
	return s
}

// printChild renders the ith operand of a given operator, bracketing it where
// it would otherwise be parsed differently.
func printChild(parent *Operator, index int, child *Node) string {
	var pow, _ = LookupOperator("^")
	//
	switch {
	case child.HasExponent():
		// Rendered as "x^e", which would otherwise absorb a trailing exponent
		// or factorial.
		return bracketUnless(child.String(), index != 0 || parent.Priority < pow.Priority)
	case child.kind != OPERATOR:
		s := child.String()
		// "-2^2" would be misread as a negated power
		return bracketUnless(s, index != 0 || parent.Priority < pow.Priority || !strings.HasPrefix(s, "-"))
	}
	//
	op, _ := LookupOperator(child.symbol)
	// Division is always bracketed for clarity
	if op.Priority < parent.Priority || op.Symbol == "/" {
		return bracketUnless(child.String(), false)
	}
	// Operators of equal priority group to the right when parsed.
	return bracketUnless(child.String(), index != 0 || op.Priority != parent.Priority)
}

// isAtomic checks whether a node (ignoring its exponent) can be raised to a
// power without brackets.
func isAtomic(n *Node) bool {
	switch n.kind {
	case CONSTANT:
		return n.value >= 0
	case VARIABLE, FUNCTION:
		return true
	}
	//
	return false
}

func bracketUnless(s string, cond bool) string {
	if cond {
		return s
	}
	//
	return "(" + s + ")"
}

// Describe produces a diagnostic rendering of a tree, showing the kind and
// value of each node along with its children.
func (e *Environment) Describe(n *Node, binding Binding) string {
	var builder strings.Builder
	//
	e.describe(&builder, n, binding, 0)
	//
	return builder.String()
}

func (e *Environment) describe(builder *strings.Builder, n *Node, binding Binding, indent int) {
	var (
		prefix = strings.Repeat("  ", indent)
		label  = n.Label()
	)
	//
	v, err := e.Value(n, binding)
	//
	if err != nil {
		fmt.Fprintf(builder, "%s%s: %s --- Value: %s\n", prefix, label, n.kind, err)
	} else {
		fmt.Fprintf(builder, "%s%s: %s --- Value: %v\n", prefix, label, n.kind, v)
	}
	//
	if n.HasExponent() {
		fmt.Fprintf(builder, "%s  Exponent: %s\n", prefix, exponentString(n.Exponent()))
	}
	//
	if len(n.children) > 0 {
		children := lo.Map(n.children, func(c *Node, _ int) string { return c.String() })
		fmt.Fprintf(builder, "%s  Children: [%s]\n", prefix, strings.Join(children, ", "))
		//
		for _, child := range n.children {
			e.describe(builder, child, binding, indent+1)
		}
	}
}

// Label returns a short textual label for this node, ignoring its children
// and exponent.
func (n *Node) Label() string {
	switch n.kind {
	case CONSTANT:
		return strconv.FormatInt(n.value, 10)
	case NEGATION:
		return "-"
	}
	//
	return n.symbol
}

func exponentString(exponent Exponent) string {
	switch x := exponent.(type) {
	case LiteralExponent:
		return strconv.FormatInt(x.Value, 10)
	case ExprExponent:
		return x.Expr.String()
	}
	//
	return "1"
}
