package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	d := New([]float64{1, 2, 3, 4})
	mean, err := d.Mean()
	require.NoError(t, err)
	require.Equal(t, 2.5, mean)
}

func TestMeanEmpty(t *testing.T) {
	_, err := New(nil).Mean()
	var emptyErr *EmptyDataError
	require.ErrorAs(t, err, &emptyErr)
}

func TestMedianOdd(t *testing.T) {
	d := New([]float64{5, 1, 3})
	median, err := d.Median()
	require.NoError(t, err)
	require.Equal(t, 3.0, median)
}

func TestMedianEven(t *testing.T) {
	d := New([]float64{4, 1, 3, 2})
	median, err := d.Median()
	require.NoError(t, err)
	require.Equal(t, 2.5, median)

	low, err := d.MedianLow()
	require.NoError(t, err)
	require.Equal(t, 2.0, low)

	high, err := d.MedianHigh()
	require.NoError(t, err)
	require.Equal(t, 3.0, high)
}

func TestMode(t *testing.T) {
	d := New([]float64{1, 2, 2, 3, 3})
	mode, err := d.Mode()
	require.NoError(t, err)
	require.Equal(t, 2.0, mode, "ties go to the first appearing value")

	require.Equal(t, []float64{2, 3}, d.Modes())
	require.Empty(t, New(nil).Modes())
}

func TestRange(t *testing.T) {
	d := New([]float64{7, 1, 4})
	r, err := d.Range()
	require.NoError(t, err)
	require.Equal(t, 6.0, r)
}

func TestQuantilesDefaultMethod(t *testing.T) {
	d := New([]float64{1, 2, 3, 4, 5, 6, 7})
	quartiles, err := d.Quantiles(4, DefaultMethod)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, quartiles)
}

func TestQuantilesR7(t *testing.T) {
	d := New([]float64{1, 2, 3, 4, 5, 6, 7})
	quartiles, err := d.Quantiles(4, MethodR7)
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, 4, 5.5}, quartiles)
}

func TestQuantilesR1(t *testing.T) {
	d := New([]float64{1, 2, 3, 4, 5, 6, 7})
	quartiles, err := d.Quantiles(4, MethodR1)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 5}, quartiles)
}

func TestQuantilesMedianSlice(t *testing.T) {
	d := New([]float64{1, 2, 3, 4, 5})
	median, err := d.Quantiles(2, DefaultMethod)
	require.NoError(t, err)
	require.Equal(t, []float64{3}, median)
}

func TestQuantilesTooFewSlices(t *testing.T) {
	_, err := New([]float64{1, 2, 3}).Quantiles(1, DefaultMethod)
	require.Error(t, err)
}

func TestQuantilesTooManySlices(t *testing.T) {
	_, err := New([]float64{1, 2, 3}).Quantiles(5, DefaultMethod)
	var slicingErr *SlicingError
	require.ErrorAs(t, err, &slicingErr)
	require.Equal(t, 5, slicingErr.Slices)
	require.Equal(t, 3, slicingErr.Size)
}

func TestVariance(t *testing.T) {
	d := New([]float64{1, 2, 3, 4})

	population, err := d.Variance(Population)
	require.NoError(t, err)
	require.InDelta(t, 1.25, population, 1e-12)

	sample, err := d.Variance(Sample)
	require.NoError(t, err)
	require.InDelta(t, 5.0/3.0, sample, 1e-12)
}

func TestVarianceInsufficientData(t *testing.T) {
	_, err := New([]float64{1}).Variance(Population)
	var insufficientErr *InsufficientDataError
	require.ErrorAs(t, err, &insufficientErr)
	require.Equal(t, 2, insufficientErr.Need)
}

func TestStandardDeviation(t *testing.T) {
	d := New([]float64{1, 2, 3, 4})
	stdev, err := d.StandardDeviation(Population)
	require.NoError(t, err)
	require.InDelta(t, 1.118033988749895, stdev, 1e-12)
}

func TestMeanAbsoluteDeviation(t *testing.T) {
	d := New([]float64{1, 2, 3, 4})
	mad, err := d.MeanAbsoluteDeviation()
	require.NoError(t, err)
	require.Equal(t, 1.0, mad)
}

func TestMeanAbsoluteDeviationEmpty(t *testing.T) {
	_, err := New(nil).MeanAbsoluteDeviation()
	var emptyErr *EmptyDataError
	require.ErrorAs(t, err, &emptyErr)
}

func TestQuartilesOdd(t *testing.T) {
	d := New([]float64{7, 1, 3, 5, 2, 6, 4})
	q1, q2, q3, err := d.Quartiles()
	require.NoError(t, err)
	require.Equal(t, 2.0, q1)
	require.Equal(t, 4.0, q2)
	require.Equal(t, 6.0, q3)
}

func TestQuartilesEven(t *testing.T) {
	d := New([]float64{1, 2, 3, 4})
	q1, q2, q3, err := d.Quartiles()
	require.NoError(t, err)
	require.Equal(t, 1.5, q1)
	require.Equal(t, 2.5, q2)
	require.Equal(t, 3.5, q3)
}

func TestQuartilesInsufficientData(t *testing.T) {
	_, _, _, err := New([]float64{1, 2}).Quartiles()
	var insufficientErr *InsufficientDataError
	require.ErrorAs(t, err, &insufficientErr)
}

func TestQuartileDerivedStats(t *testing.T) {
	d := New([]float64{1, 2, 3, 4, 5, 6, 7})

	iqr, err := d.InterquartileRange()
	require.NoError(t, err)
	require.Equal(t, 4.0, iqr)

	deviation, err := d.QuartileDeviation()
	require.NoError(t, err)
	require.Equal(t, 2.0, deviation)

	mean, err := d.QuartileMean()
	require.NoError(t, err)
	require.Equal(t, 4.0, mean)

	avg, err := d.AverageOfThree()
	require.NoError(t, err)
	require.Equal(t, 4.0, avg)
}

func TestTukeyFences(t *testing.T) {
	d := New([]float64{1, 2, 3, 4, 5, 6, 100})
	outliers, err := d.TukeyFences()
	require.NoError(t, err)
	require.Equal(t, []float64{100}, outliers)
}

func TestTukeyFencesNoOutliers(t *testing.T) {
	d := New([]float64{1, 2, 3, 4, 5})
	outliers, err := d.TukeyFences()
	require.NoError(t, err)
	require.Empty(t, outliers)
}

func TestDataIsCopied(t *testing.T) {
	values := []float64{1, 2, 3}
	d := New(values)
	values[0] = 99

	mean, err := d.Mean()
	require.NoError(t, err)
	require.Equal(t, 2.0, mean)
}
