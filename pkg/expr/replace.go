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
	"strings"

	"github.com/consensys/go-symcalc/pkg/util/source"
)

// Replace substitutes variables throughout a tree (including within exponents)
// in place.  Each replacement is either another variable name (e.g. "y"), or
// a possibly negative decimal number (e.g. "-1.5").  Any exponent on a
// replaced variable is retained.
func (n *Node) Replace(replacements map[string]string) error {
	var nodes = make(map[string]*Node, len(replacements))
	// Check all replacements up front, so nothing is changed on error.
	for name, text := range replacements {
		r, err := replacement(text)
		if err != nil {
			return err
		}
		//
		nodes[name] = r
	}
	//
	n.replace(nodes)
	//
	return nil
}

func (n *Node) replace(replacements map[string]*Node) {
	for _, child := range n.children {
		child.replace(replacements)
	}
	//
	if x, ok := n.Exponent().(ExprExponent); ok {
		x.Expr.replace(replacements)
	}
	//
	if r, ok := replacements[n.symbol]; ok && n.kind == VARIABLE {
		exponent := n.exponent
		n.adopt(r.Clone())
		n.exponent = exponent
	}
}

// replacement parses the text of a single replacement.
func replacement(text string) (*Node, error) {
	var (
		srcfile = source.NewSourceText(strings.TrimSpace(text))
		negate  = false
	)
	//
	tokens, err := tokenize(srcfile)
	if err != nil {
		return nil, err
	}
	// Drop END_OF
	tokens = tokens[:len(tokens)-1]
	//
	if len(tokens) == 2 && tokens[0].Kind == SUB && tokens[1].Kind == NUMBER {
		negate, tokens = true, tokens[1:]
	}
	//
	if len(tokens) != 1 || (tokens[0].Kind != IDENTIFIER && tokens[0].Kind != NUMBER) {
		return nil, inputErrorFor(text, "replacement must be a variable or number")
	}
	//
	content := srcfile.Text(tokens[0].Span)
	//
	if tokens[0].Kind == IDENTIFIER {
		return NewVariable(content), nil
	}
	//
	r, err := rationalize(content)
	if err != nil {
		return nil, inputErrorFor(text, err.Error())
	} else if negate {
		return NewNegation(r), nil
	}
	//
	return r, nil
}
