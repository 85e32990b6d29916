// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for arg, want := range vals {
		if got := f(arg); !aeq(want, got) {
			t.Errorf("want %s(%v) = %v, got %v", name, arg, want, got)
		}
	}
}
