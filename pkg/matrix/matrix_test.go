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
package matrix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-symcalc/pkg/expr"
)

var (
	matrix2x2 = [][]string{
		{"3", "2"},
		{"1", "1"},
	}
	matrix3x3 = [][]string{
		{"-2", "2", "-3"},
		{"-1", "1", "3"},
		{"2", "0", "-1"},
	}
	matrix4x4 = [][]string{
		{"3", "2", "0", "1"},
		{"4", "0", "1", "2"},
		{"3", "0", "2", "1"},
		{"9", "2", "3", "1"},
	}
)

func Test_Matrix_01(t *testing.T) {
	checkDeterminant(t, build(t, matrix2x2), "1")
	checkDeterminant(t, build(t, matrix3x3), "18")
	checkDeterminant(t, build(t, matrix4x4), "24")
}

func Test_Matrix_02(t *testing.T) {
	m := build(t, matrix4x4)
	checkDeterminant(t, m.Transpose(), "24")
}

func Test_Matrix_03(t *testing.T) {
	checkInverseDeterminant(t, build(t, matrix2x2), "1")
	checkInverseDeterminant(t, build(t, matrix3x3), "1/18")
	checkInverseDeterminant(t, build(t, matrix4x4), "1/24")
}

func Test_Matrix_04(t *testing.T) {
	m := build(t, matrix4x4)
	inv, err := m.Inverse()
	require.NoError(t, err)
	//
	product, err := m.Multiply(inv)
	require.NoError(t, err)
	checkDeterminant(t, product, "1")
	//
	square, err := m.Multiply(m)
	require.NoError(t, err)
	checkDeterminant(t, square, "576")
}

func Test_Matrix_05(t *testing.T) {
	m := build(t, matrix2x2)
	assert.Equal(t, "3\t2\n1\t1", m.String())
	//
	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.Equal(t, "1\t-2\n-1\t3", inv.String())
}

func Test_Matrix_06(t *testing.T) {
	m := build(t, [][]string{{"a", "b"}, {"c", "d"}})
	checkDeterminant(t, m, "a*d-b*c")
}

func Test_Matrix_07(t *testing.T) {
	m, err := Parse(expr.Default(), "x+1; 2\n\n3; 4\n")
	require.NoError(t, err)
	//
	det, err := m.Determinant()
	require.NoError(t, err)
	//
	v, err := expr.Default().Value(det, expr.Binding{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func Test_Matrix_08(t *testing.T) {
	m, err := Parse(expr.Default(), "1 2 3\n4 5 6")
	require.NoError(t, err)
	//
	mt := m.Transpose()
	assert.Equal(t, uint(3), mt.Rows())
	assert.Equal(t, uint(2), mt.Cols())
	assert.True(t, mt.Get(2, 1).Equal(m.Get(1, 2)))
	//
	values, err := mt.Values(nil)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, values)
}

func Test_Matrix_09(t *testing.T) {
	m := build(t, [][]string{{"1", "2"}, {"3", "4"}})
	require.NoError(t, m.Pivot(0, 0))
	assert.Equal(t, "1\t2\n0\t-2", m.String())
	assert.True(t, errors.Is(m.Pivot(2, 0), ErrDimension))
}

func Test_Matrix_10(t *testing.T) {
	m := build(t, [][]string{{"1", "2"}, {"3", "4"}})
	sum, err := m.Add(m)
	require.NoError(t, err)
	assert.Equal(t, "2\t4\n6\t8", sum.String())
	//
	clone := m.Clone()
	clone.Set(0, 0, expr.NewVariable("x"))
	assert.Equal(t, "1\t2\n3\t4", m.String())
}

func Test_Matrix_Invalid_01(t *testing.T) {
	m := build(t, [][]string{{"1", "2", "3"}, {"4", "5", "6"}})
	//
	_, err := m.Determinant()
	assert.True(t, errors.Is(err, ErrNotSquare))
	_, err = m.Inverse()
	assert.True(t, errors.Is(err, ErrNotSquare))
	_, err = m.Multiply(m)
	assert.True(t, errors.Is(err, ErrDimension))
	_, err = m.Add(m.Transpose())
	assert.True(t, errors.Is(err, ErrDimension))
}

func Test_Matrix_Invalid_02(t *testing.T) {
	m := build(t, [][]string{{"1", "2"}, {"2", "4"}})
	_, err := m.Inverse()
	assert.True(t, errors.Is(err, ErrSingular))
}

func Test_Matrix_Invalid_03(t *testing.T) {
	_, err := FromRows(expr.Default(), [][]string{{"1", "2"}, {"3"}})
	assert.True(t, errors.Is(err, ErrDimension))
	//
	_, err = Parse(expr.Default(), "1 +")
	assert.Error(t, err)
	//
	_, err = Parse(expr.Default(), "")
	assert.True(t, errors.Is(err, ErrDimension))
}

// ============================================================================
// Helpers
// ============================================================================

func build(t *testing.T, rows [][]string) *Matrix {
	m, err := FromRows(expr.Default(), rows)
	require.NoError(t, err)
	//
	return m
}

func checkDeterminant(t *testing.T, m *Matrix, expected string) {
	det, err := m.Determinant()
	require.NoError(t, err)
	assert.Equal(t, expected, det.String())
}

func checkInverseDeterminant(t *testing.T, m *Matrix, expected string) {
	inv, err := m.Inverse()
	require.NoError(t, err)
	checkDeterminant(t, inv, expected)
}
