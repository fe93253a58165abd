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
package lex

import (
	"testing"

	"github.com/consensys/go-symcalc/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

func Test_Lexer_00(t *testing.T) {
	checkLexer(t, "", 0, Token{END_OF, source.NewSpan(0, 0)})
}

func Test_Lexer_01(t *testing.T) {
	checkLexer(t, "(", 0,
		Token{LBRACE, source.NewSpan(0, 1)},
		Token{END_OF, source.NewSpan(1, 1)})
}

func Test_Lexer_02(t *testing.T) {
	checkLexer(t, "( )", 0,
		Token{LBRACE, source.NewSpan(0, 1)},
		Token{WSPACE, source.NewSpan(1, 2)},
		Token{RBRACE, source.NewSpan(2, 3)},
		Token{END_OF, source.NewSpan(3, 3)})
}

func Test_Lexer_03(t *testing.T) {
	checkLexer(t, "123", 0,
		Token{NUMBER, source.NewSpan(0, 3)},
		Token{END_OF, source.NewSpan(3, 3)})
}

func Test_Lexer_04(t *testing.T) {
	checkLexer(t, "1.25", 0,
		Token{NUMBER, source.NewSpan(0, 4)},
		Token{END_OF, source.NewSpan(4, 4)})
}

func Test_Lexer_05(t *testing.T) {
	checkLexer(t, ".5", 0,
		Token{NUMBER, source.NewSpan(0, 2)},
		Token{END_OF, source.NewSpan(2, 2)})
}

func Test_Lexer_06(t *testing.T) {
	// A trailing decimal point is not part of a number.
	checkLexer(t, "1.", 1,
		Token{NUMBER, source.NewSpan(0, 1)})
}

func Test_Lexer_07(t *testing.T) {
	checkLexer(t, "x1_y", 0,
		Token{IDENT, source.NewSpan(0, 4)},
		Token{END_OF, source.NewSpan(4, 4)})
}

func Test_Lexer_08(t *testing.T) {
	checkLexer(t, "(90)x", 0,
		Token{LBRACE, source.NewSpan(0, 1)},
		Token{NUMBER, source.NewSpan(1, 3)},
		Token{RBRACE, source.NewSpan(3, 4)},
		Token{IDENT, source.NewSpan(4, 5)},
		Token{END_OF, source.NewSpan(5, 5)})
}

func Test_Lexer_09(t *testing.T) {
	checkLexer(t, "1 ? 2", 3,
		Token{NUMBER, source.NewSpan(0, 1)},
		Token{WSPACE, source.NewSpan(1, 2)})
}

func Test_Scanner_01(t *testing.T) {
	rule := Sequence(Unit('a'), Unit('b'), Unit('c'))
	assert.Equal(t, uint(0), rule([]rune("acc")))
	assert.Equal(t, uint(0), rule([]rune("ab")))
	assert.Equal(t, uint(3), rule([]rune("abcd")))
}

func Test_Scanner_02(t *testing.T) {
	rule := Prefixed(Unit('a'), Many(Unit('b')))
	assert.Equal(t, uint(1), rule([]rune("ac")))
	assert.Equal(t, uint(3), rule([]rune("abbc")))
	assert.Equal(t, uint(0), rule([]rune("bb")))
}

func Test_Scanner_03(t *testing.T) {
	rule := OneOf('+', '-')
	assert.Equal(t, uint(1), rule([]rune("-1")))
	assert.Equal(t, uint(0), rule([]rune("*1")))
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const LBRACE uint = 2
const RBRACE uint = 3
const NUMBER uint = 4
const IDENT uint = 5

var digits = Many(Within('0', '9'))

var number = Or(
	Sequence(digits, Unit('.'), digits),
	digits,
	Sequence(Unit('.'), digits))

var ident = Prefixed(Or(Within('a', 'z'), Within('A', 'Z')),
	Many(Or(Unit('_'), Within('0', '9'), Within('a', 'z'), Within('A', 'Z'))))

var rules = []LexRule[rune]{
	Rule(Unit('('), LBRACE),
	Rule(Unit(')'), RBRACE),
	Rule(Many(Unit(' ')), WSPACE),
	Rule(number, NUMBER),
	Rule(ident, IDENT),
	Rule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	t.Helper()
	//
	lexer := NewLexer([]rune(input), rules...)
	tokens := lexer.Collect()
	//
	assert.Equal(t, expected, tokens)
	assert.Equal(t, remainder, lexer.Remaining(), "unmatched input")
}
