// Package stats provides descriptive statistics over float64 samples:
// central tendency, spread, the nine classic sample quantile
// estimators, and Tukey outlier fences.
package stats

import (
	"errors"
	"math"
	"sort"
)

// Kind distinguishes population statistics from sample statistics.
type Kind int

const (
	Population Kind = iota
	Sample
)

// Data wraps an immutable sample. The constructor copies its input, so
// the caller may keep mutating the original slice.
type Data struct {
	values []float64
}

func New(values []float64) Data {
	copied := make([]float64, len(values))
	copy(copied, values)
	return Data{values: copied}
}

func (d Data) Len() int {
	return len(d.values)
}

// Values returns a copy of the sample.
func (d Data) Values() []float64 {
	copied := make([]float64, len(d.values))
	copy(copied, d.values)
	return copied
}

func (d Data) sorted() []float64 {
	s := d.Values()
	sort.Float64s(s)
	return s
}

func (d Data) requireNotEmpty() error {
	if len(d.values) == 0 {
		return &EmptyDataError{}
	}
	return nil
}

// Mean returns the arithmetic mean of the sample.
func (d Data) Mean() (float64, error) {
	if err := d.requireNotEmpty(); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range d.values {
		sum += v
	}
	return sum / float64(len(d.values)), nil
}

// Median returns the middle observation, averaging the two middle
// observations for even-sized samples.
func (d Data) Median() (float64, error) {
	if err := d.requireNotEmpty(); err != nil {
		return 0, err
	}
	s := d.sorted()
	n := len(s)
	if n%2 == 1 {
		return s[n/2], nil
	}
	return (s[n/2-1] + s[n/2]) / 2, nil
}

// MedianLow returns the smaller of the two middle observations.
func (d Data) MedianLow() (float64, error) {
	if err := d.requireNotEmpty(); err != nil {
		return 0, err
	}
	s := d.sorted()
	n := len(s)
	if n%2 == 1 {
		return s[n/2], nil
	}
	return s[n/2-1], nil
}

// MedianHigh returns the larger of the two middle observations.
func (d Data) MedianHigh() (float64, error) {
	if err := d.requireNotEmpty(); err != nil {
		return 0, err
	}
	s := d.sorted()
	return s[len(s)/2], nil
}

// Mode returns the most frequent observation; on a tie, the one that
// appears first in the sample.
func (d Data) Mode() (float64, error) {
	if err := d.requireNotEmpty(); err != nil {
		return 0, err
	}
	modes := d.Modes()
	return modes[0], nil
}

// Modes returns every observation that reaches the maximum frequency,
// in order of first appearance. An empty sample has no modes.
func (d Data) Modes() []float64 {
	counts := map[float64]int{}
	order := []float64{}
	best := 0
	for _, v := range d.values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
		if counts[v] > best {
			best = counts[v]
		}
	}

	modes := []float64{}
	for _, v := range order {
		if counts[v] == best {
			modes = append(modes, v)
		}
	}
	return modes
}

// Range returns the difference between the largest and smallest
// observations.
func (d Data) Range() (float64, error) {
	if err := d.requireNotEmpty(); err != nil {
		return 0, err
	}
	s := d.sorted()
	return s[len(s)-1] - s[0], nil
}

// Quantiles divides the sample into equally sized intervals and returns
// the slices-1 cut points. Four slices give quartiles, ten give
// deciles, two give the median.
func (d Data) Quantiles(slices int, method Method) ([]float64, error) {
	if err := d.requireNotEmpty(); err != nil {
		return nil, err
	}
	if slices <= 1 {
		return nil, errors.New("Cannot slice fewer than 2 times.")
	}
	if slices >= len(d.values)+2 {
		return nil, &SlicingError{Slices: slices, Size: len(d.values)}
	}

	s := d.sorted()
	res := make([]float64, 0, slices-1)
	for i := 1; i < slices; i++ {
		res = append(res, quantile(s, float64(i)/float64(slices), method))
	}
	return res, nil
}

// Variance returns the average squared deviation from the mean, divided
// by n for Population and n-1 for Sample.
func (d Data) Variance(kind Kind) (float64, error) {
	if len(d.values) < 2 {
		return 0, &InsufficientDataError{Need: 2}
	}
	mean, err := d.Mean()
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, v := range d.values {
		diff := v - mean
		sum += diff * diff
	}
	if kind == Sample {
		return sum / float64(len(d.values)-1), nil
	}
	return sum / float64(len(d.values)), nil
}

// StandardDeviation is the square root of Variance.
func (d Data) StandardDeviation(kind Kind) (float64, error) {
	variance, err := d.Variance(kind)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// MeanAbsoluteDeviation returns the average absolute difference between
// the observations and the mean.
func (d Data) MeanAbsoluteDeviation() (float64, error) {
	mean, err := d.Mean()
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range d.values {
		sum += math.Abs(v - mean)
	}
	return sum / float64(len(d.values)), nil
}

// Quartiles returns Q1, Q2, and Q3 as medians of the sorted halves: Q1
// is the median of the lower half, Q2 the median of the whole sample,
// Q3 the median of the upper half.
func (d Data) Quartiles() (float64, float64, float64, error) {
	n := len(d.values)
	if n < 3 {
		return 0, 0, 0, &InsufficientDataError{Need: 3}
	}

	s := d.sorted()
	lower := s[:n/2]
	upper := s[(n+1)/2:]

	q1, err := New(lower).Median()
	if err != nil {
		return 0, 0, 0, err
	}
	q2, err := d.Median()
	if err != nil {
		return 0, 0, 0, err
	}
	q3, err := New(upper).Median()
	if err != nil {
		return 0, 0, 0, err
	}
	return q1, q2, q3, nil
}

// QuartileMean returns the midpoint of Q1 and Q3.
func (d Data) QuartileMean() (float64, error) {
	q1, _, q3, err := d.Quartiles()
	if err != nil {
		return 0, err
	}
	return (q1 + q3) / 2, nil
}

// QuartileDeviation returns the semi-interquartile range.
func (d Data) QuartileDeviation() (float64, error) {
	q1, _, q3, err := d.Quartiles()
	if err != nil {
		return 0, err
	}
	return (q3 - q1) / 2, nil
}

// InterquartileRange returns Q3 - Q1, the spread of the middle half of
// the sample.
func (d Data) InterquartileRange() (float64, error) {
	q1, _, q3, err := d.Quartiles()
	if err != nil {
		return 0, err
	}
	return q3 - q1, nil
}

// AverageOfThree returns the weighted quartile average (Q1+2*Q2+Q3)/4.
func (d Data) AverageOfThree() (float64, error) {
	q1, q2, q3, err := d.Quartiles()
	if err != nil {
		return 0, err
	}
	return (q1 + 2*q2 + q3) / 4, nil
}

// TukeyFences returns the observations outside Q1-1.5*IQR and
// Q3+1.5*IQR.
func (d Data) TukeyFences() ([]float64, error) {
	q1, _, q3, err := d.Quartiles()
	if err != nil {
		return nil, err
	}
	iqr := q3 - q1
	lowerBound := q1 - 1.5*iqr
	upperBound := q3 + 1.5*iqr

	outliers := []float64{}
	for _, v := range d.values {
		if v < lowerBound || v > upperBound {
			outliers = append(outliers, v)
		}
	}
	return outliers, nil
}
