// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements classical inferential statistics over
// samples of numeric observations: descriptive summaries, Welch's
// t-test, one-way ANOVA, and Pearson correlation with significance.
//
// The package is written to back a data-exploration frontend: raw
// observations may be numbers, numeric strings, or missing, and the
// coercion layer (IsNumber, Numeric, CountNull) normalizes them before
// arithmetic. Missing values are represented as NaN in float64 space
// and propagate through Mean, Variance, Min and Max; the inferential
// tests filter them out explicitly.
//
// The t and F distributions use the rational-polynomial approximations
// of Abramowitz & Stegun (formulas 26.2.19, 26.6.13 and 26.7.8), not
// exact incomplete-beta computation. P-values are accurate to roughly
// 1e-3 for moderate degrees of freedom.
package stats // import "github.com/exploredata/statkit/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
