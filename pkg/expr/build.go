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
	"github.com/consensys/go-symcalc/pkg/util/source"
)

// Parse a given piece of text into an expression tree, without simplifying
// it.  Function names are not checked against the environment, so that
// functions can be registered after parsing.  Likewise, the set of operators
// is fixed and shared by all environments.
func (e *Environment) Parse(text string) (*Node, error) {
	var srcfile = source.NewSourceText(text)
	//
	tokens, err := format(srcfile)
	if err != nil {
		return nil, err
	}
	//
	pieces, err := split(srcfile, tokens)
	if err != nil {
		return nil, err
	}
	//
	builder := &treeBuilder{srcfile}
	//
	return builder.build(pieces)
}

// Evaluate parses a given piece of text and simplifies the resulting tree.
func (e *Environment) Evaluate(text string) (*Node, error) {
	n, err := e.Parse(text)
	if err != nil {
		return nil, err
	}
	//
	e.Simplify(n)
	//
	return n, nil
}

// Parse a given piece of text using the default environment.
func Parse(text string) (*Node, error) {
	return Default().Parse(text)
}

// Evaluate a given piece of text using the default environment.
func Evaluate(text string) (*Node, error) {
	return Default().Evaluate(text)
}

// treeBuilder constructs a tree from the pieces of a formatted token stream.
type treeBuilder struct {
	srcfile *source.File
}

func (p *treeBuilder) build(pieces []piece) (*Node, error) {
	var (
		node   *Node
		err    error
		negate = false
	)
	// Leading minuses followed by exactly one piece are negations
	if k := leadingMinuses(pieces); k > 0 && k+1 == len(pieces) {
		negate = k%2 == 1
		pieces = pieces[k:]
	}
	//
	if len(pieces) == 1 {
		node, err = p.buildPiece(pieces[0])
	} else {
		node, err = p.buildOperator(pieces)
	}
	//
	if err != nil {
		return nil, err
	} else if negate {
		return NewNegation(node), nil
	}
	//
	return node, nil
}

func (p *treeBuilder) buildPiece(item piece) (*Node, error) {
	switch item.kind {
	case groupPiece:
		return p.buildTokens(item)
	case callPiece:
		arg, err := p.buildTokens(item)
		if err != nil {
			return nil, err
		}
		//
		name := p.srcfile.Text(item.token.Span)
		// Square roots are just fractional powers
		if name == "sqrt" {
			return NewOperator("^", arg, NewFraction(1, 2)), nil
		}
		//
		return NewFunction(name, arg), nil
	case identifierPiece:
		return NewVariable(p.srcfile.Text(item.token.Span)), nil
	case numberPiece:
		n, err := rationalize(p.srcfile.Text(item.token.Span))
		if err != nil {
			return nil, inputError(p.srcfile, item.span, err.Error())
		}
		//
		return n, nil
	}
	//
	return nil, inputError(p.srcfile, item.span, "missing operand")
}

// buildTokens constructs the tree for the tokens enclosed by a group or call.
func (p *treeBuilder) buildTokens(item piece) (*Node, error) {
	if len(item.inner) == 0 {
		return nil, inputError(p.srcfile, item.span, "empty brackets")
	}
	//
	pieces, err := split(p.srcfile, item.inner)
	if err != nil {
		return nil, err
	}
	//
	return p.build(pieces)
}

// buildOperator splits a sequence of (two or more) pieces around its loosest
// binding operator.  Amongst operators of equal priority, the leftmost is
// chosen and, hence, operators group to the right (e.g. "1-2-3" is read as
// "1-(2-3)").  Chained postfix operators are the exception, with the rightmost
// being chosen (e.g. "3!!" is read as "(3!)!").
func (p *treeBuilder) buildOperator(pieces []piece) (*Node, error) {
	var (
		index = -1
		best  *Operator
	)
	//
	if pieces[0].kind == operatorPiece && pieces[0].token.Kind != SUB {
		return nil, inputError(p.srcfile, pieces[0].span, "missing left-hand side of operator")
	}
	//
	for i := 1; i < len(pieces); i++ {
		op := p.operatorOf(pieces[i])
		// Operators immediately following a (non-postfix) operator are unary
		if op == nil || (p.operatorOf(pieces[i-1]) != nil && !p.operatorOf(pieces[i-1]).Postfix) {
			continue
		} else if best == nil || op.Priority < best.Priority || (op.Postfix && op.Priority == best.Priority) {
			index, best = i, op
		}
	}
	//
	switch {
	case best == nil:
		return nil, inputError(p.srcfile, spanOf(pieces), "missing operator")
	case best.Postfix && index+1 != len(pieces):
		return nil, inputError(p.srcfile, spanOf(pieces[index+1:]), "unexpected input after "+best.Symbol)
	case !best.Postfix && index+1 == len(pieces):
		return nil, inputError(p.srcfile, pieces[index].span, "missing right-hand side of operator")
	}
	//
	lhs, err := p.build(pieces[:index])
	if err != nil {
		return nil, err
	} else if best.Postfix {
		return NewOperator(best.Symbol, lhs), nil
	}
	//
	rhs, err := p.build(pieces[index+1:])
	if err != nil {
		return nil, err
	}
	//
	return NewOperator(best.Symbol, lhs, rhs), nil
}

// operatorOf returns the operator for a given piece, or nil if it is not an
// operator.
func (p *treeBuilder) operatorOf(item piece) *Operator {
	if item.kind != operatorPiece {
		return nil
	}
	//
	op, _ := LookupOperator(symbols[item.token.Kind])
	//
	return op
}

func leadingMinuses(pieces []piece) int {
	for i, item := range pieces {
		if item.kind != operatorPiece || item.token.Kind != SUB {
			return i
		}
	}
	//
	return len(pieces)
}
