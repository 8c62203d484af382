// Package summary reduces trial collections to their summary
// statistics: empirical quantiles, mean, sample standard deviation, and
// the standard error of the mean.
//
// All functions are pure; inputs are never mutated (quantiles sort a
// copy). The sample standard deviation uses the unbiased n-1 estimator
// and is therefore undefined for collections of fewer than two values.
package summary

import (
	"math"
	"sort"
)

// Summary holds the one-pass description of a trial collection.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// Quantile returns the empirical quantile of values at probability p in
// the open interval (0, 1), using linear interpolation between the two
// nearest order statistics.
func Quantile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyCollection
	}
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return 0, ErrInvalidProbability
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	h := p * float64(len(sorted)-1)
	lower := int(math.Floor(h))
	upper := int(math.Ceil(h))
	if lower == upper {
		return sorted[lower], nil
	}
	frac := h - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac, nil
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyCollection
	}

	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values)), nil
}

// StdDev returns the sample standard deviation of values using the
// unbiased n-1 denominator.
func StdDev(values []float64) (float64, error) {
	switch len(values) {
	case 0:
		return 0, ErrEmptyCollection
	case 1:
		return 0, ErrTooFewValues
	}

	// A constant collection reports exactly zero spread.
	constant := true
	for _, v := range values[1:] {
		if v != values[0] {
			constant = false
			break
		}
	}
	if constant {
		return 0, nil
	}

	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}

	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1)), nil
}

// StdErr returns the analytic standard error of the mean: the sample
// standard deviation divided by the square root of the sample size.
func StdErr(values []float64) (float64, error) {
	sd, err := StdDev(values)
	if err != nil {
		return 0, err
	}
	return sd / math.Sqrt(float64(len(values))), nil
}

// Describe computes the full Summary of a collection. Like StdDev it
// requires at least two values.
func Describe(values []float64) (Summary, error) {
	sd, err := StdDev(values)
	if err != nil {
		return Summary{}, err
	}
	mean, err := Mean(values)
	if err != nil {
		return Summary{}, err
	}
	median, err := Quantile(values, 0.5)
	if err != nil {
		return Summary{}, err
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return Summary{
		Count:  len(values),
		Mean:   mean,
		StdDev: sd,
		Min:    min,
		Max:    max,
		Median: median,
	}, nil
}
