// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A TDist is a Student's t-distribution with V degrees of freedom.
//
// Tail probabilities use the normalizing transform of Abramowitz &
// Stegun formula 26.7.8 combined with the 26.2.19 polynomial normal
// tail. The absolute error is about 1e-2 at V=5, 2e-3 at V=10 and
// shrinks rapidly from there; this is an approximation, not the exact
// incomplete-beta result.
//
// The transform's normal-equivalent deviate saturates at
// (1-1/(4V))*sqrt(2V) as t grows, so for finite t the reported
// p-value never falls below normTwoTail of that bound (about 9e-4 at
// V=6, 6e-10 at V=20). Callers comparing p against very small
// significance thresholds must account for this floor.
type TDist struct {
	// V is the degrees of freedom. V > 0.
	V float64
}

// PDF returns the value of the probability density function at x.
func (d TDist) PDF(x float64) float64 {
	lg1, _ := math.Lgamma((d.V + 1) / 2)
	lg2, _ := math.Lgamma(d.V / 2)
	return math.Exp(lg1-lg2) / math.Sqrt(d.V*math.Pi) *
		math.Pow(1+x*x/d.V, -(d.V+1)/2)
}

// TwoTailP returns the two-tailed probability of a t statistic at
// least as extreme as t: Pr[|T| >= |t|]. TwoTailP(0) is exactly 1.
func (d TDist) TwoTailP(t float64) float64 {
	if math.IsInf(t, 0) {
		return 0
	}
	t = math.Abs(t)
	// 26.7.8 maps t to an equivalent standard normal deviate. The
	// Hypot form of the denominator sqrt(1 + t²/2V) keeps huge t
	// from overflowing.
	x := t * (1 - 1/(4*d.V)) / math.Hypot(1, t/math.Sqrt(2*d.V))
	return normTwoTail(x)
}

// CDF returns the value of the cumulative distribution function at x.
func (d TDist) CDF(x float64) float64 {
	p := d.TwoTailP(x) / 2
	if x >= 0 {
		return 1 - p
	}
	return p
}

func (d TDist) Bounds() (float64, float64) {
	return -4, 4
}
