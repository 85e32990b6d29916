// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution.
var StdNormal = NormalDist{0, 1}

// PDF returns the value of the probability density function at x.
func (d NormalDist) PDF(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	return math.Exp(-z*z/2) / (d.Sigma * math.Sqrt(2*math.Pi))
}

// CDF returns the value of the cumulative distribution function at x.
func (d NormalDist) CDF(x float64) float64 {
	return 0.5 * math.Erfc(-(x-d.Mu)/(d.Sigma*math.Sqrt2))
}

func (d NormalDist) Bounds() (float64, float64) {
	return d.Mu - 4*d.Sigma, d.Mu + 4*d.Sigma
}
