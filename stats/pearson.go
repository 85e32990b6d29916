// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A PearsonResult is the result of a Pearson product-moment
// correlation test.
type PearsonResult struct {
	// N is the number of valid pairs the correlation was computed
	// over.
	N int

	// R is the sample correlation coefficient, in [-1, 1].
	R float64

	// T is the statistic used to test R for significance. It
	// follows a t-distribution with N-2 degrees of freedom under
	// the null hypothesis of no correlation.
	T float64

	// P is the two-tailed p-value of the test.
	P float64
}

// PearsonCorrelation computes the Pearson correlation coefficient of
// the paired samples x and y along with its two-tailed significance.
//
// The samples must have the same length or the test fails with
// ErrMismatchedSamples. Pairs where either side is missing (NaN) are
// dropped, keeping the remaining indices aligned; more than 10 valid
// pairs must remain or the test fails with ErrSampleSize. If either
// side is constant the coefficient is the indeterminate 0/0 and R, T
// and P are NaN; callers must check for this.
func PearsonCorrelation(x, y []float64) (*PearsonResult, error) {
	if len(x) != len(y) {
		return nil, ErrMismatchedSamples
	}

	var sx, sy, sxx, syy, sxy float64
	n := 0
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		n++
		sx += x[i]
		sy += y[i]
		sxx += x[i] * x[i]
		syy += y[i] * y[i]
		sxy += x[i] * y[i]
	}
	if n <= 10 {
		return nil, ErrSampleSize
	}

	fn := float64(n)
	r := (fn*sxy - sx*sy) / math.Sqrt((fn*sxx-sx*sx)*(fn*syy-sy*sy))
	t := r * math.Sqrt((fn-2)/(1-r*r))
	p := TDist{V: fn - 2}.TwoTailP(t)

	return &PearsonResult{N: n, R: r, T: t, P: p}, nil
}
