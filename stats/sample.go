// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// A Sample is a collection of numeric observations. NaN values mark
// missing observations.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is already sorted in ascending
	// order. A sorted sample must not contain NaNs.
	Sorted bool
}

// Sum returns the sum of the sample.
func (s Sample) Sum() float64 {
	sum := 0.0
	for _, x := range s.Xs {
		sum += x
	}
	return sum
}

// Mean returns the arithmetic mean of the sample.
//
// Missing values propagate: if any value is NaN the mean is NaN. The
// mean of an empty sample is also NaN.
func (s Sample) Mean() float64 {
	return s.Sum() / float64(len(s.Xs))
}

// Variance returns the population variance of the sample: the sum of
// squared deviations from the mean divided by n, not n-1. Missing
// values propagate NaN, as does an empty sample.
func (s Sample) Variance() float64 {
	mean := s.Mean()
	ss := 0.0
	for _, x := range s.Xs {
		d := x - mean
		ss += d * d
	}
	return ss / float64(len(s.Xs))
}

// StdDev returns the population standard deviation of the sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the smallest value in the sample, or NaN if the sample
// is empty or contains a missing value.
func (s Sample) Min() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if s.Sorted {
		return s.Xs[0]
	}
	min := s.Xs[0]
	for _, x := range s.Xs[1:] {
		min = math.Min(min, x)
	}
	return min
}

// Max returns the largest value in the sample, or NaN if the sample
// is empty or contains a missing value.
func (s Sample) Max() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if s.Sorted {
		return s.Xs[len(s.Xs)-1]
	}
	max := s.Xs[0]
	for _, x := range s.Xs[1:] {
		max = math.Max(max, x)
	}
	return max
}

// Quantile returns the q'th quantile of the sample using the R-7
// (linear interpolation between order statistics) estimator: with the
// n non-missing values sorted ascending, the quantile sits at
// position (n-1)*q and is interpolated between the two surrounding
// values. q is clamped to [0, 1].
//
// Missing values are dropped before the order statistics are taken.
// An empty or all-missing sample yields 0. Unless the sample is
// already marked Sorted, sorting happens on a copy; the caller's data
// is never reordered.
func (s Sample) Quantile(q float64) float64 {
	xs := s.Xs
	if !s.Sorted {
		xs = dropNaN(xs)
		sort.Float64s(xs)
	}
	n := len(xs)
	if n == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	} else if q > 1 {
		q = 1
	}
	pos := float64(n-1) * q
	base := int(math.Floor(pos))
	rest := pos - float64(base)
	if base+1 < n {
		return xs[base] + rest*(xs[base+1]-xs[base])
	}
	return xs[base]
}

// Median returns the 50th percentile of the sample. It is exactly
// Quantile(0.5).
func (s Sample) Median() float64 {
	return s.Quantile(0.5)
}

// Bounds returns the smallest and largest values in the sample.
func (s Sample) Bounds() (min, max float64) {
	return s.Min(), s.Max()
}

// Copy returns a copy of the sample that shares no state with s.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Sort sorts the sample in place in ascending order and returns it.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		sort.Float64s(s.Xs)
		s.Sorted = true
	}
	return s
}

// dropNaN returns a fresh slice holding the non-NaN values of xs. It
// copies even when nothing is dropped, so the result is always safe
// to sort or mutate.
func dropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// Mean returns the arithmetic mean of xs. See Sample.Mean.
func Mean(xs []float64) float64 {
	return Sample{Xs: xs}.Mean()
}

// Variance returns the population variance of xs. See Sample.Variance.
func Variance(xs []float64) float64 {
	return Sample{Xs: xs}.Variance()
}

// Quantile returns the q'th R-7 quantile of xs. See Sample.Quantile.
func Quantile(xs []float64, q float64) float64 {
	return Sample{Xs: xs}.Quantile(q)
}

// Median returns the median of xs. See Sample.Median.
func Median(xs []float64) float64 {
	return Sample{Xs: xs}.Median()
}
