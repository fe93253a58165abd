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
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/consensys/go-symcalc/pkg/expr"
)

// ErrDimension is returned when the dimensions of one or more matrices are not
// suitable for a given operation.
var ErrDimension = errors.New("mismatched matrix dimensions")

// ErrNotSquare is returned for operations which require a square matrix.
var ErrNotSquare = errors.New("matrix is not square")

// ErrSingular is returned when inverting a matrix whose determinant is zero.
var ErrSingular = errors.New("matrix is singular")

// Matrix is a two-dimensional arrangement of expression trees.  All arithmetic
// is performed (and simplified) within a given environment, such that a
// matrix of numbers yields exact results.
type Matrix struct {
	env  *expr.Environment
	rows [][]*expr.Node
}

// New constructs a matrix of the given dimensions, filled with zeros.
func New(env *expr.Environment, rows uint, cols uint) *Matrix {
	if rows == 0 || cols == 0 {
		panic("matrix must have at least one row and column")
	}
	//
	m := make([][]*expr.Node, rows)
	//
	for i := range m {
		m[i] = make([]*expr.Node, cols)
		//
		for j := range m[i] {
			m[i][j] = expr.NewInteger(0)
		}
	}
	//
	return &Matrix{env, m}
}

// FromNodes constructs a matrix from a (rectangular) array of nodes, each of
// which is copied.
func FromNodes(env *expr.Environment, rows [][]*expr.Node) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty matrix: %w", ErrDimension)
	}
	//
	m := make([][]*expr.Node, len(rows))
	//
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has %d columns (expected %d): %w", i+1, len(row), len(rows[0]), ErrDimension)
		}
		//
		m[i] = lo.Map(row, func(n *expr.Node, _ int) *expr.Node { return n.Clone() })
	}
	//
	return &Matrix{env, m}, nil
}

// FromRows constructs a matrix from a (rectangular) array of expressions, each
// of which is parsed and simplified.
func FromRows(env *expr.Environment, rows [][]string) (*Matrix, error) {
	nodes := make([][]*expr.Node, len(rows))
	//
	for i, row := range rows {
		nodes[i] = make([]*expr.Node, len(row))
		//
		for j, text := range row {
			n, err := env.Evaluate(text)
			if err != nil {
				return nil, err
			}
			//
			nodes[i][j] = n
		}
	}
	//
	return FromNodes(env, nodes)
}

// Parse a matrix given as text, with one row per line.  Within a row, elements
// are separated by ';' where present, and by whitespace otherwise.  Blank lines
// are ignored.
func Parse(env *expr.Environment, text string) (*Matrix, error) {
	var rows [][]string
	//
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		} else if strings.Contains(line, ";") {
			rows = append(rows, strings.Split(line, ";"))
		} else {
			rows = append(rows, strings.Fields(line))
		}
	}
	//
	return FromRows(env, rows)
}

// Rows returns the number of rows in this matrix.
func (m *Matrix) Rows() uint {
	return uint(len(m.rows))
}

// Cols returns the number of columns in this matrix.
func (m *Matrix) Cols() uint {
	return uint(len(m.rows[0]))
}

// IsSquare checks whether this matrix has as many rows as columns.
func (m *Matrix) IsSquare() bool {
	return m.Rows() == m.Cols()
}

// Get returns the element at a given row and column.  This should not be
// modified.
func (m *Matrix) Get(row uint, col uint) *expr.Node {
	return m.rows[row][col]
}

// Set the element at a given row and column to (a copy of) a given node.
func (m *Matrix) Set(row uint, col uint, n *expr.Node) {
	m.rows[row][col] = n.Clone()
}

// Clone returns a deep copy of this matrix.
func (m *Matrix) Clone() *Matrix {
	clone, _ := FromNodes(m.env, m.rows)
	return clone
}

// Transpose returns the transpose of this matrix.
func (m *Matrix) Transpose() *Matrix {
	t := New(m.env, m.Cols(), m.Rows())
	//
	for i := range t.rows {
		for j := range t.rows[i] {
			t.rows[i][j] = m.rows[j][i].Clone()
		}
	}
	//
	return t
}

// Determinant computes the determinant of this matrix by cofactor expansion
// along the first row.
func (m *Matrix) Determinant() (*expr.Node, error) {
	if !m.IsSquare() {
		return nil, ErrNotSquare
	}
	//
	return determinant(m.env, m.rows), nil
}

// Adjugate computes the adjugate (i.e. transpose of the cofactor matrix) of
// this matrix.
func (m *Matrix) Adjugate() (*Matrix, error) {
	if !m.IsSquare() {
		return nil, ErrNotSquare
	}
	//
	adj := New(m.env, m.Rows(), m.Cols())
	//
	if m.Rows() == 1 {
		adj.rows[0][0] = expr.NewInteger(1)
		return adj, nil
	}
	//
	for i := range adj.rows {
		for j := range adj.rows[i] {
			cofactor := determinant(m.env, minor(m.rows, uint(j), uint(i)))
			//
			if (i+j)%2 == 1 {
				cofactor = m.env.Negate(cofactor)
			}
			//
			adj.rows[i][j] = cofactor
		}
	}
	//
	return adj, nil
}

// Inverse computes the inverse of this matrix, as its adjugate divided by its
// determinant.  An error is returned if the determinant is known to be zero.
func (m *Matrix) Inverse() (*Matrix, error) {
	adj, err := m.Adjugate()
	if err != nil {
		return nil, err
	}
	//
	det := determinant(m.env, m.rows)
	//
	if det.IsInteger(0) {
		return nil, ErrSingular
	}
	//
	for _, row := range adj.rows {
		for _, element := range row {
			m.env.DivideHere(element, det)
		}
	}
	//
	return adj, nil
}

// Add returns the (elementwise) sum of this matrix and another of the same
// dimensions.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return nil, ErrDimension
	}
	//
	result := New(m.env, m.Rows(), m.Cols())
	//
	for i := range result.rows {
		for j := range result.rows[i] {
			result.rows[i][j] = m.env.Add(m.rows[i][j], other.rows[i][j])
		}
	}
	//
	return result, nil
}

// Multiply returns the product of this matrix and another, whose number of rows
// must match the number of columns of this matrix.
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, ErrDimension
	}
	//
	result := New(m.env, m.Rows(), other.Cols())
	//
	for i := range result.rows {
		for j := range result.rows[i] {
			for k := range m.rows[i] {
				m.env.AddHere(result.rows[i][j], m.env.Multiply(m.rows[i][k], other.rows[k][j]))
			}
		}
	}
	//
	return result, nil
}

// Pivot eliminates a given column from every row except the pivot row, by
// subtracting the appropriate multiple of the pivot row.  The pivot row is
// assumed to be normalised (i.e. its element in the given column is 1).
func (m *Matrix) Pivot(col uint, row uint) error {
	if row >= m.Rows() || col >= m.Cols() {
		return ErrDimension
	}
	//
	for i := range m.rows {
		if uint(i) == row {
			continue
		}
		//
		factor := m.rows[i][col].Clone()
		//
		for j := range m.rows[i] {
			m.env.SubtractHere(m.rows[i][j], m.env.Multiply(m.rows[row][j], factor))
		}
	}
	//
	return nil
}

// Values evaluates every element of this matrix under a given binding.
func (m *Matrix) Values(binding expr.Binding) ([][]float64, error) {
	values := make([][]float64, len(m.rows))
	//
	for i, row := range m.rows {
		values[i] = make([]float64, len(row))
		//
		for j, element := range row {
			v, err := m.env.Value(element, binding)
			if err != nil {
				return nil, fmt.Errorf("element (%d,%d): %w", i+1, j+1, err)
			}
			//
			values[i][j] = v
		}
	}
	//
	return values, nil
}

// String renders this matrix with one row per line, and elements separated by
// tabs.
func (m *Matrix) String() string {
	lines := lo.Map(m.rows, func(row []*expr.Node, _ int) string {
		return strings.Join(lo.Map(row, func(n *expr.Node, _ int) string { return n.String() }), "\t")
	})
	//
	return strings.Join(lines, "\n")
}

// determinant of a square array of nodes.
func determinant(env *expr.Environment, m [][]*expr.Node) *expr.Node {
	switch len(m) {
	case 1:
		return m[0][0].Clone()
	case 2:
		return env.Subtract(env.Multiply(m[0][0], m[1][1]), env.Multiply(m[0][1], m[1][0]))
	}
	//
	det := expr.NewInteger(0)
	//
	for i, element := range m[0] {
		term := env.Multiply(element, determinant(env, minor(m, 0, uint(i))))
		//
		if i%2 == 0 {
			env.AddHere(det, term)
		} else {
			env.SubtractHere(det, term)
		}
	}
	//
	return det
}

// minor returns the given array without a given row and column.
func minor(m [][]*expr.Node, row uint, col uint) [][]*expr.Node {
	var result [][]*expr.Node
	//
	for i, r := range m {
		if uint(i) != row {
			result = append(result, append(append([]*expr.Node{}, r[:col]...), r[col+1:]...))
		}
	}
	//
	return result
}
