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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_String_01(t *testing.T) {
	n := NewOperator("-", NewVariable("a"), NewOperator("-", NewVariable("b"), NewVariable("c")))
	assert.Equal(t, "a-b-c", n.String())
	//
	n = NewOperator("-", NewOperator("-", NewVariable("a"), NewVariable("b")), NewVariable("c"))
	assert.Equal(t, "(a-b)-c", n.String())
}

func Test_String_02(t *testing.T) {
	n := NewOperator("+", NewVariable("a"), NewFraction(1, 2))
	assert.Equal(t, "a+(1/2)", n.String())
	//
	n = NewOperator("*", NewOperator("+", NewVariable("a"), NewVariable("b")), NewVariable("c"))
	assert.Equal(t, "(a+b)*c", n.String())
}

func Test_String_03(t *testing.T) {
	assert.Equal(t, "-(-2)", NewNegation(NewInteger(-2)).String())
	assert.Equal(t, "-(a+b)", NewNegation(NewOperator("+", NewVariable("a"), NewVariable("b"))).String())
	assert.Equal(t, "-sin(x)", NewNegation(NewFunction("sin", NewVariable("x"))).String())
	assert.Equal(t, "(-1)!", NewOperator("!", NewInteger(-1)).String())
}

func Test_String_04(t *testing.T) {
	x := NewVariable("x")
	x.SetExponent(LiteralExponent{2})
	// x^2 is itself raised to a power
	assert.Equal(t, "(x^2)^3", NewOperator("^", x, NewInteger(3)).String())
	assert.Equal(t, "3^x^2", NewOperator("^", NewInteger(3), x).String())
	assert.Equal(t, "(x^2)!", NewOperator("!", x).String())
	assert.Equal(t, "-(x^2)", NewNegation(x).String())
}

func Test_Describe_01(t *testing.T) {
	n, err := Parse("1+2")
	require.NoError(t, err)
	//
	s := Default().Describe(n, nil)
	assert.True(t, strings.HasPrefix(s, "+: Operator --- Value: 3\n"), s)
	assert.Contains(t, s, "Children: [1, 2]")
	assert.Contains(t, s, "  2: Constant --- Value: 2")
}

func Test_Describe_02(t *testing.T) {
	n, err := Parse("(-1)!")
	require.NoError(t, err)
	//
	s := Default().Describe(n, nil)
	assert.Contains(t, s, "!: Operator --- Value: operator !")
	assert.Contains(t, s, "-: Negation --- Value: -1")
}

func Test_Replace_01(t *testing.T) {
	n, err := Parse("x^2+y")
	require.NoError(t, err)
	//
	require.NoError(t, n.Replace(map[string]string{"x": "-2", "y": "z"}))
	assert.Equal(t, "(-2)^2+z", n.String())
	//
	v, err := Default().Value(n, Binding{"z": 1})
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func Test_Replace_02(t *testing.T) {
	n := NewVariable("x")
	n.SetExponent(ExprExponent{NewVariable("y")})
	//
	require.NoError(t, n.Replace(map[string]string{"x": "0.5", "y": "2"}))
	assert.Equal(t, "(1/2)^2", n.String())
	Default().Simplify(n)
	assert.Equal(t, "(1/2)^2", n.String())
	assert.Equal(t, 0.25, value(t, n))
}

func Test_Replace_03(t *testing.T) {
	var ierr *InputError
	//
	n, err := Parse("x+y")
	require.NoError(t, err)
	//
	err = n.Replace(map[string]string{"x": "1", "y": "1+2"})
	assert.True(t, errors.As(err, &ierr))
	// Nothing was replaced
	assert.Equal(t, "x+y", n.String())
	//
	assert.Error(t, n.Replace(map[string]string{"x": ""}))
	assert.Error(t, n.Replace(map[string]string{"x": "--1"}))
}
