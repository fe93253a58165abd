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

import "github.com/consensys/go-symcalc/pkg/util/source"

// Token associates a tag with the range of characters it was scanned from.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule associates a scanner with the tag given to whatever it matches.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a lexing rule which tags characters matched by a scanner.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer splits an input sequence into tokens.  Rules are tried in the order
// given, and the first rule to match wins.  Lexing stops at the first point
// where no rule matches, leaving the remainder unconsumed.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
	// Token scanned but not yet returned (if any).
	next *Token
}

// NewLexer constructs a lexer for a given input and set of rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules, nil}
}

// Index returns the position of the lexer within its input.
func (p *Lexer[T]) Index() uint {
	return uint(min(p.index, len(p.items)))
}

// Remaining returns the number of input items not yet consumed.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// HasNext determines whether another token can be scanned.
func (p *Lexer[T]) HasNext() bool {
	if p.next == nil {
		p.next = p.scan()
	}
	//
	return p.next != nil
}

// Next returns the next token and advances past it.  This should only be
// called after HasNext has returned true.
func (p *Lexer[T]) Next() Token {
	if !p.HasNext() {
		panic("no token available")
	}
	//
	token := *p.next
	p.next = nil
	//
	if p.index == len(p.items) {
		// Step past the end-of-input token, so it is only produced once.
		p.index++
	} else {
		p.index = token.Span.End()
	}
	//
	return token
}

// Collect scans all remaining tokens.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

func (p *Lexer[T]) scan() *Token {
	if p.index > len(p.items) {
		return nil
	}
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			//
			return &Token{r.tag, source.NewSpan(p.index, end)}
		}
	}
	//
	return nil
}
