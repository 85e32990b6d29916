// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "errors"

var (
	// ErrSampleSize is returned by a hypothesis test when a sample
	// retains too few valid observations for the test to run.
	ErrSampleSize = errors.New("sample is too small")

	// ErrMismatchedSamples is returned by a paired test when the
	// two samples differ in length.
	ErrMismatchedSamples = errors.New("samples have different lengths")
)
