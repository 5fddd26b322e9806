//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf128

import (
	"fmt"
)

// Matrix implements a row-major matrix of field elements.
type Matrix struct {
	Rows int
	Cols int
	Data []Element
}

// NewMatrix creates a new zero matrix with the given shape.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]Element, rows*cols),
	}
}

func (m Matrix) String() string {
	return fmt.Sprintf("Matrix(%d,%d)", m.Rows, m.Cols)
}

// Shape returns the matrix dimensions.
func (m Matrix) Shape() (int, int) {
	return m.Rows, m.Cols
}

// At returns the element at row i and column j.
func (m Matrix) At(i, j int) Element {
	return m.Data[i*m.Cols+j]
}

// Set sets the element at row i and column j.
func (m Matrix) Set(i, j int, e Element) {
	m.Data[i*m.Cols+j] = e
}

// Row returns row i. The returned slice shares storage with the
// matrix.
func (m Matrix) Row(i int) []Element {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// Column returns a copy of column j.
func (m Matrix) Column(j int) []Element {
	col := make([]Element, m.Rows)
	for i := 0; i < m.Rows; i++ {
		col[i] = m.Data[i*m.Cols+j]
	}
	return col
}

// Transpose returns the transpose of the matrix.
func (m Matrix) Transpose() Matrix {
	t := NewMatrix(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			t.Data[j*t.Cols+i] = m.Data[i*m.Cols+j]
		}
	}
	return t
}

// Slice returns a view of the first rows rows of the matrix. The
// view shares storage with the matrix.
func (m Matrix) Slice(rows int) Matrix {
	if rows < 0 || rows > m.Rows {
		panic(fmt.Sprintf("gf128: slice %d rows of %s", rows, m))
	}
	return Matrix{
		Rows: rows,
		Cols: m.Cols,
		Data: m.Data[:rows*m.Cols],
	}
}

// Equal tests if the matrices are equal.
func (m Matrix) Equal(o Matrix) bool {
	if m.Rows != o.Rows || m.Cols != o.Cols {
		return false
	}
	for i := range m.Data {
		if !m.Data[i].Equal(o.Data[i]) {
			return false
		}
	}
	return true
}
