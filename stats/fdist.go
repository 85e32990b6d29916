// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// An FDist is an F-distribution with V1 numerator and V2 denominator
// degrees of freedom.
//
// Tail probabilities use the normalizing transform of Abramowitz &
// Stegun formula 26.6.13 (the Paulson approximation) combined with
// the 26.2.19 polynomial normal tail. The absolute error stays below
// about 1e-2 for V1 >= 1 and V2 > 4 and improves with both; this is
// an approximation, not the exact incomplete-beta result. Zero or
// negative degrees of freedom make the transform divide by zero and
// the result is NaN, which the caller must check for.
type FDist struct {
	// V1 and V2 are the numerator and denominator degrees of
	// freedom. V1 > 0 and V2 > 4 for the documented accuracy.
	V1, V2 float64
}

// PDF returns the value of the probability density function at x.
func (d FDist) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Exp((d.V1*math.Log(d.V1*x)+d.V2*math.Log(d.V2)-
		(d.V1+d.V2)*math.Log(d.V1*x+d.V2))/2 -
		math.Log(x) - lbeta(d.V1/2, d.V2/2))
}

// UpperTailP returns the probability of an F statistic at least as
// large as f: Pr[F >= f].
func (d FDist) UpperTailP(f float64) float64 {
	if math.IsInf(f, 1) {
		return 0
	}
	// 26.6.13 maps f to an equivalent standard normal deviate.
	a, b := 2/(9*d.V1), 2/(9*d.V2)
	fc := math.Cbrt(f)
	z := ((1-b)*fc - (1 - a)) / math.Sqrt(b*fc*fc+a)
	return normUpperTail(z)
}

// CDF returns the value of the cumulative distribution function at x.
func (d FDist) CDF(x float64) float64 {
	return 1 - d.UpperTailP(x)
}

func (d FDist) Bounds() (float64, float64) {
	if d.V2 > 2 {
		// Four times the mean of the distribution.
		return 0, 4 * d.V2 / (d.V2 - 2)
	}
	return 0, 8
}

func lbeta(a, b float64) float64 {
	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	lab, _ := math.Lgamma(a + b)
	return la + lb - lab
}
