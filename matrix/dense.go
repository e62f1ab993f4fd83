// Package matrix: Dense is a concrete, row-major implementation of the
// Matrix interface, storing costs in a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of costs.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int    // number of rows and columns
	data []Cost // flat backing storage, length == r*c
}

var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix with every entry set to NoEdge.
// A 0×0 matrix is valid and models an empty location set.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]Cost, rows*cols)}, nil
}

// NewSquare is shorthand for NewDense(n, n).
func NewSquare(n int) (*Dense, error) {
	return NewDense(n, n)
}

// FromRows builds a Dense matrix from a rectangular slice of rows.
// Every row must have the same length as the first one.
func FromRows(rows [][]Cost) (*Dense, error) {
	var nc int
	if len(rows) > 0 {
		nc = len(rows[0])
	}
	m, err := NewDense(len(rows), nc)
	if err != nil {
		return nil, err
	}
	var i int
	for i = range rows {
		if len(rows[i]) != nc {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(rows[i]), nc, ErrNonSquare)
		}
		copy(m.data[i*nc:(i+1)*nc], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (Cost, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v Cost) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// SetSymmetric assigns v at both (i, j) and (j, i).
func (m *Dense) SetSymmetric(i, j int, v Cost) error {
	if err := m.Set(i, j, v); err != nil {
		return err
	}

	return m.Set(j, i, v)
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	copyData := make([]Cost, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			sb.WriteString(strconv.FormatUint(uint64(m.data[i*m.c+j]), 10))
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
