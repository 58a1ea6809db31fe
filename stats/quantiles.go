package stats

import "math"

// Method selects one of the nine sample quantile estimators from
// Hyndman & Fan. See
// https://en.wikipedia.org/wiki/Quantile#Estimating_quantiles_from_a_sample
type Method int

const (
	MethodR1 Method = iota + 1
	MethodR2
	MethodR3
	MethodR4
	MethodR5
	MethodR6
	MethodR7
	MethodR8
	MethodR9
)

// DefaultMethod is R-6, linear interpolation of expectations for the
// uniform distribution.
const DefaultMethod = MethodR6

// quantile computes one quantile of a sorted sample for p in (0, 1).
func quantile(sorted []float64, p float64, method Method) float64 {
	n := float64(len(sorted))

	switch method {
	case MethodR1:
		// Inverse of the empirical distribution function.
		return at(sorted, int(p*n)-1)
	case MethodR2:
		// Empirical CDF with averaging at discontinuities.
		pos := p * n
		upper := int(pos)
		lower := upper - 1
		if pos == math.Trunc(pos) {
			return at(sorted, lower)
		}
		return (at(sorted, lower) + at(sorted, upper)) / 2
	case MethodR3:
		// Nearest observation, ties to even.
		return at(sorted, int(math.RoundToEven(p*n))-1)
	case MethodR4:
		// Linear interpolation of the inverse empirical CDF.
		return interpolate(sorted, p*n)
	case MethodR5:
		// Piecewise linear function.
		return interpolate(sorted, p*n+0.5)
	case MethodR7:
		// Default method in many statistical packages.
		return interpolate(sorted, (n-1)*p+1)
	case MethodR8:
		// Linear interpolation of approximate medians.
		return interpolate(sorted, (n+1.0/3.0)*p+1.0/3.0)
	case MethodR9:
		// Quantiles unbiased for normal distributions.
		return interpolate(sorted, (n+0.25)*p+0.375)
	default:
		// R-6: linear interpolation of expectations for the uniform
		// distribution on [0, 1].
		return interpolate(sorted, (n+1)*p)
	}
}

// interpolate reads the value at a fractional one-based position,
// interpolating linearly between the neighboring observations.
func interpolate(sorted []float64, pos float64) float64 {
	upper := int(pos)
	lower := upper - 1
	frac := pos - float64(upper)
	if frac == 0 {
		return at(sorted, lower)
	}
	return at(sorted, lower) + frac*(at(sorted, upper)-at(sorted, lower))
}

// at clamps the index to the sample bounds so boundary quantiles of
// tiny samples read the extreme observations.
func at(sorted []float64, i int) float64 {
	if i < 0 {
		i = 0
	}
	if i >= len(sorted) {
		i = len(sorted) - 1
	}
	return sorted[i]
}
