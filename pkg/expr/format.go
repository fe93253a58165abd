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
	"strings"

	"github.com/consensys/go-symcalc/pkg/util/source"
	"github.com/consensys/go-symcalc/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// NUMBER signals a decimal number
const NUMBER uint = 4

// IDENTIFIER signals a variable, constant or function name.
const IDENTIFIER uint = 5

// ADD represents addition
const ADD uint = 6

// SUB represents subtraction (or negation)
const SUB uint = 7

// MUL represents multiplication
const MUL uint = 8

// DIV represents division
const DIV uint = 9

// POW represents exponentiation
const POW uint = 10

// FACT represents factorial
const FACT uint = 11

// BINOPS captures the set of binary operators
var BINOPS = []uint{ADD, SUB, MUL, DIV, POW}

// OPERATORS captures the set of all operators
var OPERATORS = []uint{ADD, SUB, MUL, DIV, POW, FACT}

var symbols = map[uint]string{
	ADD:    "+",
	SUB:    "-",
	MUL:    "*",
	DIV:    "/",
	POW:    "^",
	FACT:   "!",
	LBRACE: "(",
	RBRACE: ")",
}

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.OneOf(' ', '\t', '\r', '\n'))

var digits lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

// Rule for describing numbers, which may have a fractional part.
var number lex.Scanner[rune] = lex.Or(
	lex.Sequence(digits, lex.Unit('.'), digits),
	digits,
	lex.Sequence(lex.Unit('.'), digits))

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.Prefixed(identifierStart, identifierRest)

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('+'), ADD),
	lex.Rule(lex.Unit('-'), SUB),
	lex.Rule(lex.Unit('*'), MUL),
	lex.Rule(lex.Unit('/'), DIV),
	lex.Rule(lex.Unit('^'), POW),
	lex.Rule(lex.Unit('!'), FACT),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Format checks a given piece of text is well-formed, and returns its
// canonical form.  Whitespace separating two operands is read as an implicit
// multiplication, and all other whitespace is dropped.  For example, "2 x + 1"
// is formatted as "2*x+1".
func Format(text string) (string, error) {
	var (
		builder strings.Builder
		srcfile = source.NewSourceText(text)
	)
	//
	tokens, err := format(srcfile)
	if err != nil {
		return "", err
	}
	//
	for _, t := range tokens {
		builder.WriteString(tokenText(srcfile, t))
	}
	//
	return builder.String(), nil
}

// tokenize splits a given source file into tokens, including whitespace and a
// terminating END_OF token.
func tokenize(srcfile *source.File) ([]lex.Token, error) {
	var (
		lexer  = lex.NewLexer[rune](srcfile.Contents(), rules...)
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start := int(lexer.Index())
		// Highlight just the offending character
		return nil, inputError(srcfile, source.NewSpan(start, start+1), "unknown text encountered")
	}
	//
	return tokens, nil
}

// format tokenizes a given source file, checks its tokens are in a sensible
// order, and inserts implicit multiplications.  The resulting stream contains
// neither whitespace nor the terminating END_OF token.
func format(srcfile *source.File) ([]lex.Token, error) {
	var (
		formatted []lex.Token
		// Last non-whitespace token seen (if any)
		last *lex.Token
		// Whitespace immediately before the current token (if any)
		space *lex.Token
	)
	//
	tokens, err := tokenize(srcfile)
	if err != nil {
		return nil, err
	}
	//
	for i := range tokens {
		token := tokens[i]
		//
		switch {
		case token.Kind == WHITESPACE:
			space = &tokens[i]
			continue
		case token.Kind == END_OF:
			if last == nil {
				return nil, inputError(srcfile, source.NewSpan(0, len(srcfile.Contents())), "empty expression")
			} else if slices.Contains(BINOPS, last.Kind) {
				return nil, inputError(srcfile, last.Span, "missing right-hand side of operator")
			}
			//
			return formatted, nil
		}
		// Check token can follow the last token
		if err := checkAdjacent(srcfile, last, token); err != nil {
			return nil, err
		} else if space != nil && last != nil && isOperandEnd(last.Kind) && isOperandStart(token.Kind) {
			formatted = append(formatted, lex.Token{Kind: MUL, Span: space.Span})
		}
		//
		formatted = append(formatted, token)
		last, space = &tokens[i], nil
	}
	// Unreachable, since the lexer always produces END_OF
	return formatted, nil
}

func checkAdjacent(srcfile *source.File, last *lex.Token, token lex.Token) error {
	var unary = token.Kind == SUB
	//
	switch {
	case last == nil:
		if slices.Contains(OPERATORS, token.Kind) && !unary {
			return inputError(srcfile, token.Span, "expression cannot start with an operator")
		}
	case last.Kind == LBRACE && token.Kind == RBRACE:
		return inputError(srcfile, last.Span.Join(token.Span), "empty brackets")
	case last.Kind == LBRACE:
		if slices.Contains(OPERATORS, token.Kind) && !unary {
			return inputError(srcfile, token.Span, "operator cannot follow '('")
		}
	case slices.Contains(BINOPS, last.Kind):
		if token.Kind == RBRACE {
			return inputError(srcfile, last.Span, "operator cannot precede ')'")
		} else if slices.Contains(OPERATORS, token.Kind) && !unary {
			return inputError(srcfile, last.Span.Join(token.Span), "adjacent operators")
		}
	}
	//
	return nil
}

// isOperandEnd determines whether a token of the given kind can end an
// operand.
func isOperandEnd(kind uint) bool {
	return kind == NUMBER || kind == IDENTIFIER || kind == RBRACE || kind == FACT
}

// isOperandStart determines whether a token of the given kind can start an
// operand.
func isOperandStart(kind uint) bool {
	return kind == NUMBER || kind == IDENTIFIER || kind == LBRACE
}

func tokenText(srcfile *source.File, token lex.Token) string {
	if s, ok := symbols[token.Kind]; ok {
		return s
	}
	//
	return srcfile.Text(token.Span)
}
