// Package matrix implements exact, allocation-fresh matrix algebra for
// the solver: determinant by Laplace expansion, cofactor and adjugate
// matrices, and inversion via the adjugate formula. Every operation is
// a pure function of its inputs; no method mutates its receiver.
package matrix

import "math"

// SingularEps is the fixed tolerance applied to float64 determinants
// when deciding singularity. Determinants of exact-integer matrices
// come out exact, so only genuinely borderline inputs are affected.
const SingularEps = 1e-12

// Matrix is a rectangular grid of float64 entries. Construct one with
// New; the zero value is an empty 0x0 matrix.
type Matrix struct {
	rows [][]float64
}

// New validates rectangularity eagerly and copies the input, so the
// caller keeps no aliased reference into the matrix.
func New(rows [][]float64) (Matrix, error) {
	if len(rows) > 0 {
		width := len(rows[0])
		for _, row := range rows[1:] {
			if len(row) != width {
				return Matrix{}, &DimensionError{
					Reason: "All rows must have the same length.",
					Dims:   [][2]int{{len(rows), width}, {len(rows), len(row)}},
				}
			}
		}
	}
	return Matrix{rows: copyRows(rows)}, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1
	}
	return Matrix{rows: rows}
}

func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}

// Entries returns a copy of the matrix's entries as rows of columns.
func (m Matrix) Entries() [][]float64 {
	return copyRows(m.rows)
}

func (m Matrix) Rows() int {
	return len(m.rows)
}

func (m Matrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}

// At returns the entry at row r, column c.
func (m Matrix) At(r, c int) float64 {
	return m.rows[r][c]
}

// IsSquare reports whether the matrix has as many rows as columns.
func (m Matrix) IsSquare() bool {
	return m.Rows() == m.Cols()
}

func (m Matrix) requireSquare(operation string) error {
	if !m.IsSquare() {
		return &DimensionError{
			Reason: operation + " requires a square matrix.",
			Dims:   [][2]int{{m.Rows(), m.Cols()}},
		}
	}
	return nil
}

func (m Matrix) requireSameShape(other Matrix, operation string) error {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return &DimensionError{
			Reason: operation + " requires matrices of the same dimensions.",
			Dims:   [][2]int{{m.Rows(), m.Cols()}, {other.Rows(), other.Cols()}},
		}
	}
	return nil
}

// Determinant computes the determinant by Laplace expansion along the
// first row. This is the defining algorithm and costs O(n!) for an n x n
// matrix; fine for the small matrices this solver targets.
func (m Matrix) Determinant() (float64, error) {
	if err := m.requireSquare("Determinant"); err != nil {
		return 0, err
	}
	if m.Rows() == 0 {
		return 1, nil
	}
	return determinant(m.rows), nil
}

func determinant(rows [][]float64) float64 {
	n := len(rows)
	if n == 1 {
		return rows[0][0]
	}

	det := 0.0
	sign := 1.0
	for j := 0; j < n; j++ {
		det += sign * rows[0][j] * determinant(minor(rows, 0, j))
		sign = -sign
	}
	return det
}

// minor removes row r and column c.
func minor(rows [][]float64, r, c int) [][]float64 {
	out := make([][]float64, 0, len(rows)-1)
	for i, row := range rows {
		if i == r {
			continue
		}
		reduced := make([]float64, 0, len(row)-1)
		reduced = append(reduced, row[:c]...)
		reduced = append(reduced, row[c+1:]...)
		out = append(out, reduced)
	}
	return out
}

// Minor returns the submatrix with row r and column c removed.
func (m Matrix) Minor(r, c int) (Matrix, error) {
	if err := m.requireSquare("Minor"); err != nil {
		return Matrix{}, err
	}
	return Matrix{rows: minor(m.rows, r, c)}, nil
}

// Cofactor returns the matrix of signed minor determinants: entry (i,j)
// is (-1)^(i+j) times the determinant of the (i,j) minor.
func (m Matrix) Cofactor() (Matrix, error) {
	if err := m.requireSquare("Cofactor"); err != nil {
		return Matrix{}, err
	}

	n := m.Rows()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			sign := 1.0
			if (i+j)%2 == 1 {
				sign = -1.0
			}
			if n == 1 {
				rows[i][j] = sign
			} else {
				rows[i][j] = sign * determinant(minor(m.rows, i, j))
			}
		}
	}
	return Matrix{rows: rows}, nil
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Matrix) Adjugate() (Matrix, error) {
	cof, err := m.Cofactor()
	if err != nil {
		return Matrix{}, err
	}
	return cof.Transpose(), nil
}

// Inverse returns adjugate(m) / determinant(m). A determinant within
// SingularEps of zero fails with ErrSingular.
func (m Matrix) Inverse() (Matrix, error) {
	det, err := m.Determinant()
	if err != nil {
		return Matrix{}, err
	}
	if math.Abs(det) <= SingularEps {
		return Matrix{}, ErrSingular
	}

	adj, err := m.Adjugate()
	if err != nil {
		return Matrix{}, err
	}
	return adj.Scale(1 / det), nil
}

// Transpose returns the matrix flipped over its diagonal.
func (m Matrix) Transpose() Matrix {
	rows := make([][]float64, m.Cols())
	for j := range rows {
		rows[j] = make([]float64, m.Rows())
		for i := 0; i < m.Rows(); i++ {
			rows[j][i] = m.rows[i][j]
		}
	}
	return Matrix{rows: rows}
}

// Scale multiplies every entry by k.
func (m Matrix) Scale(k float64) Matrix {
	rows := copyRows(m.rows)
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] *= k
		}
	}
	return Matrix{rows: rows}
}

// Add returns the entrywise sum of m and other.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if err := m.requireSameShape(other, "Addition"); err != nil {
		return Matrix{}, err
	}
	rows := copyRows(m.rows)
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] += other.rows[i][j]
		}
	}
	return Matrix{rows: rows}, nil
}

// Subtract returns the entrywise difference of m and other.
func (m Matrix) Subtract(other Matrix) (Matrix, error) {
	if err := m.requireSameShape(other, "Subtraction"); err != nil {
		return Matrix{}, err
	}
	rows := copyRows(m.rows)
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] -= other.rows[i][j]
		}
	}
	return Matrix{rows: rows}, nil
}

// Multiply returns the standard matrix product m x other.
func (m Matrix) Multiply(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return Matrix{}, &DimensionError{
			Reason: "Multiplication requires the left matrix to have as many columns as the right has rows.",
			Dims:   [][2]int{{m.Rows(), m.Cols()}, {other.Rows(), other.Cols()}},
		}
	}

	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = make([]float64, other.Cols())
		for j := 0; j < other.Cols(); j++ {
			sum := 0.0
			for k := 0; k < m.Cols(); k++ {
				sum += m.rows[i][k] * other.rows[k][j]
			}
			rows[i][j] = sum
		}
	}
	return Matrix{rows: rows}, nil
}

// Equal reports whether both matrices have the same shape and all
// entries agree within tol.
func (m Matrix) Equal(other Matrix, tol float64) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for i := range m.rows {
		for j := range m.rows[i] {
			if math.Abs(m.rows[i][j]-other.rows[i][j]) > tol {
				return false
			}
		}
	}
	return true
}
