package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSingular is returned when inverting a matrix whose determinant is
// zero (within SingularEps).
var ErrSingular = errors.New("Cannot invert matrix with a determinant of 0 (singular matrix).")

// DimensionError reports a shape constraint violation: a ragged input,
// a non-square matrix where square is required, or mismatched operands.
type DimensionError struct {
	Reason string
	Dims   [][2]int
}

func (e *DimensionError) Error() string {
	dims := make([]string, len(e.Dims))
	for i, d := range e.Dims {
		dims[i] = fmt.Sprintf("%d x %d", d[0], d[1])
	}
	return fmt.Sprintf("%s Got %s instead.", e.Reason, strings.Join(dims, " and "))
}
