// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A TTestResult is the result of a Welch's t-test.
type TTestResult struct {
	// N1 and N2 are the numbers of valid observations in the two
	// samples after missing values were dropped.
	N1, N2 int

	// T is the Welch t statistic. Its sign follows the sign of
	// mean(x) - mean(y).
	T float64

	// DoF is the Welch-Satterthwaite effective degrees of freedom.
	DoF float64

	// P is the two-tailed p-value of the test.
	P float64
}

// WelchTTest performs a Welch's t-test of the null hypothesis that
// two samples come from populations with equal means. Unlike the
// classic two-sample t-test it does not assume equal variances.
//
// Missing values (NaNs) are dropped from both samples; each sample
// must retain at least 3 values or the test fails with ErrSampleSize.
// Variances are population variances (divisor n, see Variance). If
// both samples have zero variance the statistic is the indeterminate
// 0/0 and T, DoF and P are NaN; callers must check for this.
//
// The p-value carries the accuracy of the TDist approximation.
func WelchTTest(x, y []float64) (*TTestResult, error) {
	x, y = dropNaN(x), dropNaN(y)
	nx, ny := len(x), len(y)
	if nx < 3 || ny < 3 {
		return nil, ErrSampleSize
	}

	vx, vy := Variance(x), Variance(y)
	se2 := vx/float64(nx) + vy/float64(ny)
	t := (Mean(x) - Mean(y)) / math.Sqrt(se2)
	dof := satterthwaite(vx, vy, nx, ny)
	p := TDist{V: dof}.TwoTailP(t)

	return &TTestResult{N1: nx, N2: ny, T: t, DoF: dof, P: p}, nil
}

// DegreesOfFreedom returns the Welch-Satterthwaite effective degrees
// of freedom for the pair of samples x and y, after dropping missing
// values. This is the df WelchTTest uses for its t distribution.
func DegreesOfFreedom(x, y []float64) float64 {
	x, y = dropNaN(x), dropNaN(y)
	return satterthwaite(Variance(x), Variance(y), len(x), len(y))
}

func satterthwaite(vx, vy float64, nx, ny int) float64 {
	fx, fy := float64(nx), float64(ny)
	num := vx/fx + vy/fy
	num *= num
	den := vx*vx/(fx*fx*(fx-1)) + vy*vy/(fy*fy*(fy-1))
	return num / den
}
