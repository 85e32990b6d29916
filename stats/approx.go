// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Coefficients of the rational-polynomial normal tail approximation
// from Abramowitz & Stegun, Handbook of Mathematical Functions,
// formula 26.2.19.
const (
	asA1 = 0.049867347
	asA2 = 0.0211410061
	asA3 = 0.0032776263
	asA4 = 0.0000380036
	asA5 = 0.0000488906
	asA6 = 0.000005383
)

// normTwoTail approximates the two-sided standard normal tail
// probability 2*(1 - Φ(x)) for x >= 0 as
//
//	(1 + a1 x + a2 x² + ... + a6 x⁶)⁻¹⁶
//
// 26.2.19 states 1 - Φ(x) ≈ ½(1 + a1 x + ... + a6 x⁶)⁻¹⁶; the leading
// 2 and the ½ cancel. The absolute error is below 3e-7.
func normTwoTail(x float64) float64 {
	p := 1 + x*(asA1+x*(asA2+x*(asA3+x*(asA4+x*(asA5+x*asA6)))))
	p = p * p
	p = p * p
	p = p * p
	p = p * p // p is now the polynomial to the 16th power
	return 1 / p
}

// normUpperTail approximates 1 - Φ(z) for any z.
func normUpperTail(z float64) float64 {
	if z >= 0 {
		return normTwoTail(z) / 2
	}
	return 1 - normTwoTail(-z)/2
}
