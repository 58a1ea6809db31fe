package stats

import "fmt"

// EmptyDataError is returned by every accessor that needs at least one
// data point.
type EmptyDataError struct{}

func (e *EmptyDataError) Error() string {
	return "Cannot process empty data."
}

// InsufficientDataError is returned when a statistic needs more data
// points than the sample holds.
type InsufficientDataError struct {
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("Expected at least %d data points.", e.Need)
}

// SlicingError is returned when a quantile request asks for more slices
// than the sample can support.
type SlicingError struct {
	Slices int
	Size   int
}

func (e *SlicingError) Error() string {
	return fmt.Sprintf("Cannot perform %d slices with %d elements.", e.Slices, e.Size)
}
