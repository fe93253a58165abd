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
package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Span_01(t *testing.T) {
	span := NewSpan(2, 5)
	assert.Equal(t, 3, span.Length())
	assert.True(t, span.Contains(2))
	assert.False(t, span.Contains(5))
	assert.Equal(t, NewSpan(1, 5), span.Join(NewSpan(1, 3)))
}

func Test_Span_02(t *testing.T) {
	assert.Panics(t, func() { NewSpan(3, 2) })
}

func Test_File_01(t *testing.T) {
	file := NewSourceText("1+(2*3")
	assert.Equal(t, "(2*3", file.Text(NewSpan(2, 6)))
	// Out of bounds spans are clamped.
	assert.Equal(t, "", file.Text(NewSpan(6, 7)))
}

func Test_File_02(t *testing.T) {
	file := NewSourceFile("rows.txt", []byte("1 2\n3 x+\n5 6"))
	line := file.EnclosingLine(NewSpan(6, 7))
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "3 x+", line.String())
	assert.Equal(t, 4, line.Start())
}

func Test_SyntaxError_01(t *testing.T) {
	file := NewSourceText("1 + * 2")
	err := file.SyntaxError(NewSpan(4, 5), "operators cannot be adjacent")
	assert.Equal(t, "4:5:operators cannot be adjacent", err.Error())
	assert.Equal(t, "1 + * 2\n    ^", err.Highlight())
}

func Test_SyntaxError_02(t *testing.T) {
	// End-of-input errors still receive a caret.
	file := NewSourceText("(1+2")
	err := file.SyntaxError(NewSpan(4, 4), "unclosed bracket")
	assert.Equal(t, "(1+2\n    ^", err.Highlight())
}
