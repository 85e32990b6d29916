// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestIsNumber(t *testing.T) {
	cases := []struct {
		v    any
		want bool
	}{
		{nil, true},
		{true, true},
		{false, true},
		{3, true},
		{int64(-7), true},
		{uint8(255), true},
		{3.5, true},
		{float32(1.5), true},
		{"3.5", true},
		{"-2e3", true},
		{"null", false},
		{"", false},
		{"abc", false},
		{[]int{1}, false},
		{map[string]int{}, false},
	}
	for _, c := range cases {
		if got := IsNumber(c.v); got != c.want {
			t.Errorf("IsNumber(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestNumeric(t *testing.T) {
	got := Numeric([]any{1, 2.5, "3", "-4e1", true, false, nil, "null", "x"})
	want := []float64{1, 2.5, 3, -40, 1, 0, nan, nan, nan}
	if len(got) != len(want) {
		t.Fatalf("want %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] && !(math.IsNaN(want[i]) && math.IsNaN(got[i])) {
			t.Errorf("Numeric[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCountNull(t *testing.T) {
	if got := CountNull([]any{1, nil, 3, "null"}); got != 2 {
		t.Errorf("want 2, got %d", got)
	}
	if got := CountNull([]any{1, 2, "3"}); got != 0 {
		t.Errorf("want 0, got %d", got)
	}
	// "null" counts even though it is not nil, and vice versa.
	if got := CountNull([]any{"null", "null", nil}); got != 3 {
		t.Errorf("want 3, got %d", got)
	}
	if got := CountNull(nil); got != 0 {
		t.Errorf("want 0, got %d", got)
	}
}
