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
	"github.com/consensys/go-symcalc/pkg/util/source/lex"
)

type pieceKind uint8

const (
	operatorPiece pieceKind = iota
	numberPiece
	identifierPiece
	// Function name immediately followed by a bracketed argument
	callPiece
	// Bracketed sub-expression
	groupPiece
)

// piece is a top-level unit of a formatted token stream: an operator, a
// number, an identifier, a function call or a bracketed group.  Calls and
// groups retain the (unsplit) tokens between their brackets.
type piece struct {
	kind pieceKind
	// Operator, number or identifier token.  For a call, this is the function
	// name.
	token lex.Token
	// Tokens enclosed by brackets (calls and groups only)
	inner []lex.Token
	// Span of the entire piece
	span source.Span
}

// split a formatted token stream into its top-level pieces.  Brackets must
// be balanced.
func split(srcfile *source.File, tokens []lex.Token) ([]piece, error) {
	var pieces []piece
	//
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		//
		switch token.Kind {
		case LBRACE:
			j, err := matchBrace(srcfile, tokens, i)
			if err != nil {
				return nil, err
			}
			//
			pieces = append(pieces, piece{groupPiece, token, tokens[i+1 : j], token.Span.Join(tokens[j].Span)})
			i = j
		case RBRACE:
			return nil, inputError(srcfile, token.Span, "unmatched ')'")
		case NUMBER:
			pieces = append(pieces, piece{numberPiece, token, nil, token.Span})
		case IDENTIFIER:
			if i+1 < len(tokens) && tokens[i+1].Kind == LBRACE {
				j, err := matchBrace(srcfile, tokens, i+1)
				if err != nil {
					return nil, err
				}
				//
				pieces = append(pieces, piece{callPiece, token, tokens[i+2 : j], token.Span.Join(tokens[j].Span)})
				i = j
			} else {
				pieces = append(pieces, piece{identifierPiece, token, nil, token.Span})
			}
		default:
			pieces = append(pieces, piece{operatorPiece, token, nil, token.Span})
		}
	}
	//
	return pieces, nil
}

// matchBrace returns the index of the right brace matching the left brace at
// a given index.
func matchBrace(srcfile *source.File, tokens []lex.Token, index int) (int, error) {
	var depth = 0
	//
	for i := index; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case LBRACE:
			depth++
		case RBRACE:
			depth--
			//
			if depth == 0 {
				return i, nil
			}
		}
	}
	//
	return 0, inputError(srcfile, tokens[index].Span, "unclosed '('")
}

// spanOf returns the span covering a non-empty sequence of pieces.
func spanOf(pieces []piece) source.Span {
	return pieces[0].span.Join(pieces[len(pieces)-1].span)
}
