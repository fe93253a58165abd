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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Arith_01(t *testing.T) {
	checkArith(t, Default().Add, NewFraction(1, 3), NewFraction(1, 6), "1/2")
}

func Test_Arith_02(t *testing.T) {
	checkArith(t, Default().Subtract, NewFraction(1, 2), NewFraction(1, 3), "1/6")
}

func Test_Arith_03(t *testing.T) {
	checkArith(t, Default().Multiply, NewFraction(2, 3), NewFraction(3, 4), "1/2")
}

func Test_Arith_04(t *testing.T) {
	checkArith(t, Default().Divide, NewFraction(1, 2), NewFraction(1, 4), "2")
}

func Test_Arith_05(t *testing.T) {
	checkArith(t, Default().Add, NewInteger(2), NewInteger(3), "5")
	checkArith(t, Default().Multiply, NewInteger(2), NewInteger(-3), "-6")
	checkArith(t, Default().Divide, NewInteger(6), NewInteger(4), "3/2")
}

func Test_Arith_06(t *testing.T) {
	checkArith(t, Default().Add, NewVariable("x"), NewFraction(1, 2), "(x*2+1)/2")
	checkArith(t, Default().Multiply, NewVariable("x"), NewInteger(1), "x")
	checkArith(t, Default().Multiply, NewVariable("x"), NewInteger(-1), "-x")
	checkArith(t, Default().Subtract, NewInteger(0), NewVariable("x"), "-x")
}

func Test_Arith_Negated_01(t *testing.T) {
	env := Default()
	x2 := NewOperator("/", NewVariable("x"), NewInteger(2))
	//
	checkArith(t, env.Add, env.Negate(x2), NewFraction(1, 3), "(-x*3+2)/6")
	checkArith(t, env.Multiply, env.Negate(x2), NewFraction(2, 3), "(-x*2)/6")
	// Operands are not modified
	assert.Equal(t, "x/2", x2.String())
}

func Test_Arith_07(t *testing.T) {
	// Fraction arithmetic agrees with floating point arithmetic.
	var (
		env       = Default()
		fractions = []*Node{NewFraction(1, 3), NewFraction(-2, 7), NewFraction(5, 4), NewInteger(2)}
		ops       = []func(*Node, *Node) *Node{env.Add, env.Subtract, env.Multiply, env.Divide}
		fns       = []func(float64, float64) float64{
			func(l, r float64) float64 { return l + r },
			func(l, r float64) float64 { return l - r },
			func(l, r float64) float64 { return l * r },
			func(l, r float64) float64 { return l / r },
		}
	)
	//
	for i, op := range ops {
		for _, lhs := range fractions {
			for _, rhs := range fractions {
				l, r := value(t, lhs), value(t, rhs)
				assert.InDelta(t, fns[i](l, r), value(t, op(lhs, rhs)), 1e-9)
			}
		}
	}
}

func Test_Arith_08(t *testing.T) {
	// Arguments are never modified
	var (
		lhs = NewFraction(1, 3)
		rhs = NewVariable("x")
	)
	//
	Default().Add(lhs, rhs)
	Default().Pow(lhs, rhs)
	Default().Negate(lhs)
	assert.Equal(t, "1/3", lhs.String())
	assert.Equal(t, "x", rhs.String())
}

func Test_Arith_Pow_01(t *testing.T) {
	env := Default()
	x2 := env.Pow(NewVariable("x"), NewInteger(2))
	//
	assert.Equal(t, "x^2", x2.String())
	assert.Equal(t, LiteralExponent{2}, x2.Exponent())
	assert.Equal(t, "x^6", env.Pow(x2, NewInteger(3)).String())
}

func Test_Arith_Pow_02(t *testing.T) {
	env := Default()
	//
	assert.Equal(t, "8", env.Pow(NewInteger(2), NewInteger(3)).String())
	assert.Equal(t, "x", env.Pow(NewVariable("x"), NewInteger(1)).String())
	assert.Equal(t, "x^(1/2)", env.Pow(NewVariable("x"), NewFraction(1, 2)).String())
	assert.Equal(t, "(-2)^y", env.Pow(NewInteger(-2), NewVariable("y")).String())
	assert.Equal(t, "(x+1)^y", env.Pow(NewOperator("+", NewVariable("x"), NewInteger(1)), NewVariable("y")).String())
}

func Test_Arith_Pow_03(t *testing.T) {
	env := Default()
	// Negation is applied before the exponent
	n := env.Pow(NewNegation(NewVariable("x")), NewInteger(2))
	assert.Equal(t, "(-x)^2", n.String())
	//
	v, err := env.Value(n, Binding{"x": 3})
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
}

func Test_Arith_Negate_01(t *testing.T) {
	env := Default()
	x := NewVariable("x")
	//
	assert.Equal(t, "-x", env.Negate(x).String())
	assert.Equal(t, "x", env.Negate(env.Negate(x)).String())
	assert.Equal(t, "-3", env.Negate(NewInteger(3)).String())
	assert.Equal(t, "-1/2", env.Negate(NewFraction(1, 2)).String())
}

func Test_Arith_Negate_02(t *testing.T) {
	// a + (-(-b)) == a + b
	var (
		env = Default()
		a   = NewVariable("a")
		b   = NewOperator("*", NewVariable("b"), NewInteger(2))
	)
	//
	assert.True(t, env.Add(a, env.Negate(env.Negate(b))).Equal(env.Add(a, b)))
}

func Test_Arith_Here_01(t *testing.T) {
	env := Default()
	n := NewInteger(1)
	//
	env.AddHere(n, NewInteger(2))
	assert.Equal(t, "3", n.String())
	env.MultiplyHere(n, NewVariable("x"))
	assert.Equal(t, "3*x", n.String())
	env.SubtractHere(n, NewInteger(0))
	assert.Equal(t, "3*x", n.String())
	env.DivideHere(n, NewInteger(2))
	assert.Equal(t, "(3*x)/2", n.String())
	env.NegateHere(n)
	assert.Equal(t, "-((3*x)/2)", n.String())
	env.PowHere(n, NewInteger(2))
	assert.Equal(t, "(-((3*x)/2))^2", n.String())
}

func Test_Arith_Clone_01(t *testing.T) {
	a, err := Parse("x+1")
	require.NoError(t, err)
	//
	b := a.Clone()
	Default().AddHere(b, NewInteger(1))
	//
	assert.Equal(t, "x+1", a.String())
	assert.Equal(t, "(x+1)+1", b.String())
}

func Test_Arith_Update_01(t *testing.T) {
	n := NewVariable("x")
	other := NewOperator("+", NewVariable("y"), NewInteger(1))
	//
	n.Update(other)
	Default().AddHere(other, NewInteger(1))
	assert.Equal(t, "y+1", n.String())
}

// ============================================================================
// Helpers
// ============================================================================

func checkArith(t *testing.T, op func(*Node, *Node) *Node, lhs *Node, rhs *Node, expected string) {
	assert.Equal(t, expected, op(lhs, rhs).String())
}

func value(t *testing.T, n *Node) float64 {
	v, err := Default().Value(n, nil)
	require.NoError(t, err)
	//
	return v
}
