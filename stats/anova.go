// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// An ANOVAResult is the result of a one-way analysis of variance.
type ANOVAResult struct {
	// Groups is the number of groups m that contributed valid
	// observations, and N the total number of valid observations
	// across them.
	Groups, N int

	// SSE and SST are the within-group (error) and between-group
	// (treatment) sums of squares.
	SSE, SST float64

	// MSE and MST are the corresponding mean squares, SSE/(N-m)
	// and SST/(m-1).
	MSE, MST float64

	// F is the test statistic MST/MSE. Under the null hypothesis
	// that all group means are equal it follows an F-distribution
	// with m-1 and N-m degrees of freedom.
	F float64

	// P is the upper-tail p-value of F.
	P float64
}

// OneWayANOVA tests the null hypothesis that the means of two or more
// groups of observations are all equal.
//
// Missing values (NaNs) are dropped within each group, and groups
// left with no valid observations are ignored. At least two groups
// must remain and the valid observations must outnumber the groups,
// or the test fails with ErrSampleSize. The between-group sum of
// squares is taken about the unweighted mean of the group means. If
// every group is internally constant the statistic degenerates to
// MST/0 and F and P are Inf/0 or NaN; callers must check for this.
//
// The p-value carries the accuracy of the FDist approximation, which
// needs N-m > 4 to hold its documented error bound.
func OneWayANOVA(groups [][]float64) (*ANOVAResult, error) {
	clean := make([][]float64, 0, len(groups))
	n := 0
	for _, g := range groups {
		g = dropNaN(g)
		if len(g) == 0 {
			continue
		}
		clean = append(clean, g)
		n += len(g)
	}
	m := len(clean)
	if m < 2 || n <= m {
		return nil, ErrSampleSize
	}

	means := make([]float64, m)
	grand := 0.0
	for i, g := range clean {
		means[i] = Mean(g)
		grand += means[i]
	}
	grand /= float64(m)

	sse := sumSquaredErrors(clean, means)
	sst := sumSquaredTreatment(clean, means, grand)
	mse := sse / float64(n-m)
	mst := sst / float64(m-1)
	f := fStatistic(mst, mse)
	p := FDist{V1: float64(m - 1), V2: float64(n - m)}.UpperTailP(f)

	return &ANOVAResult{
		Groups: m, N: n,
		SSE: sse, SST: sst,
		MSE: mse, MST: mst,
		F: f, P: p,
	}, nil
}

// sumSquaredErrors returns the within-group sum of squares: squared
// deviations of each observation from its own group mean.
func sumSquaredErrors(groups [][]float64, means []float64) float64 {
	sse := 0.0
	for i, g := range groups {
		for _, x := range g {
			d := x - means[i]
			sse += d * d
		}
	}
	return sse
}

// sumSquaredTreatment returns the between-group sum of squares:
// squared deviations of the group means from the grand mean, weighted
// by group size.
func sumSquaredTreatment(groups [][]float64, means []float64, grand float64) float64 {
	sst := 0.0
	for i, g := range groups {
		d := means[i] - grand
		sst += float64(len(g)) * d * d
	}
	return sst
}

// fStatistic returns the ratio of the treatment and error mean
// squares.
func fStatistic(mst, mse float64) float64 {
	return mst / mse
}
