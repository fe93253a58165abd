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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Format_01(t *testing.T) {
	checkFormat(t, "1+2", "1+2")
}

func Test_Format_02(t *testing.T) {
	checkFormat(t, " ( 1 + 2 ) * 3 ", "(1+2)*3")
}

func Test_Format_03(t *testing.T) {
	checkFormat(t, "2 x + 1", "2*x+1")
}

func Test_Format_04(t *testing.T) {
	checkFormat(t, "3! 2", "3!*2")
}

func Test_Format_05(t *testing.T) {
	checkFormat(t, "(x) (y)", "(x)*(y)")
}

func Test_Format_06(t *testing.T) {
	checkFormat(t, "1 - -2", "1--2")
}

func Test_Format_07(t *testing.T) {
	checkFormat(t, "sin(0.5)\t^ 2", "sin(0.5)^2")
}

func Test_Format_Invalid_01(t *testing.T) {
	checkFormatError(t, "", 0, 0)
}

func Test_Format_Invalid_02(t *testing.T) {
	checkFormatError(t, "   ", 0, 3)
}

func Test_Format_Invalid_03(t *testing.T) {
	checkFormatError(t, "()", 0, 2)
}

func Test_Format_Invalid_04(t *testing.T) {
	checkFormatError(t, "1+*2", 1, 3)
}

func Test_Format_Invalid_05(t *testing.T) {
	checkFormatError(t, "(*2)", 1, 2)
}

func Test_Format_Invalid_06(t *testing.T) {
	checkFormatError(t, "(2+)", 2, 3)
}

func Test_Format_Invalid_07(t *testing.T) {
	checkFormatError(t, "2+", 1, 2)
}

func Test_Format_Invalid_08(t *testing.T) {
	checkFormatError(t, "1 $ 2", 2, 3)
}

func Test_Format_Invalid_09(t *testing.T) {
	checkFormatError(t, "*2", 0, 1)
}

func Test_Format_Invalid_10(t *testing.T) {
	checkFormatError(t, "2^!", 1, 3)
}

// ============================================================================
// Helpers
// ============================================================================

func checkFormat(t *testing.T, input string, expected string) {
	actual, err := Format(input)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func checkFormatError(t *testing.T, input string, start int, end int) {
	var ierr *InputError
	//
	_, err := Format(input)
	require.Error(t, err)
	require.True(t, errors.As(err, &ierr), "expected input error, got %v", err)
	assert.Equal(t, start, ierr.Span().Start())
	assert.Equal(t, end, ierr.Span().End())
}
