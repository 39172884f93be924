package shape

import "gonum.org/v1/gonum/floats"

// Size is the edge length of every shape grid.
const Size = 20

// Cells is the number of cells in a grid.
const Cells = Size * Size

// Matrix is a row-major Size×Size grid. It is a value type: assigning or
// passing a Matrix copies all of its cells.
type Matrix [Cells]float64

// Zeros returns an all-zero matrix.
func Zeros() Matrix {
	return Matrix{}
}

// At returns the cell at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m[i*Size+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m[i*Size+j] = v
}

// Add returns the element-wise sum m+o.
func (m Matrix) Add(o Matrix) Matrix {
	floats.Add(m[:], o[:])
	return m
}

// Sub returns the element-wise difference m-o.
func (m Matrix) Sub(o Matrix) Matrix {
	floats.Sub(m[:], o[:])
	return m
}

// Dot returns the Frobenius inner product of m and o.
func (m *Matrix) Dot(o *Matrix) float64 {
	return floats.Dot(m[:], o[:])
}

// Sum returns the sum of all cells.
func (m *Matrix) Sum() float64 {
	return floats.Sum(m[:])
}

// Count returns the number of cells equal to v.
func (m *Matrix) Count(v float64) int {
	n := 0
	for _, c := range m {
		if c == v {
			n++
		}
	}
	return n
}
