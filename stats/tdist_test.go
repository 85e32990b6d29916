// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestTDistTwoTailP(t *testing.T) {
	d := TDist{V: 10}
	testFunc(t, "TwoTailP", d.TwoTailP, map[float64]float64{
		0:        1,
		1:        0.3413495037871924,
		-1:       0.3413495037871924,
		2.228139: 0.05183996014972241,
	})

	if got := (TDist{V: 5}).TwoTailP(2); !aeq(0.10831929116487325, got) {
		t.Errorf("want 0.10831929116487325, got %v", got)
	}
	if got := (TDist{V: 30}).TwoTailP(2.042); !aeq(0.050220125532353076, got) {
		t.Errorf("want 0.050220125532353076, got %v", got)
	}
	if got := (TDist{V: 10}).TwoTailP(inf); got != 0 {
		t.Errorf("want 0 at t=+Inf, got %v", got)
	}
	if got := (TDist{V: 10}).TwoTailP(math.Inf(-1)); got != 0 {
		t.Errorf("want 0 at t=-Inf, got %v", got)
	}
}

// TestTDistTwoTailPFloor pins down the saturation of the 26.7.8
// transform: for finite t the reported p approaches, and never falls
// below, normTwoTail of the bounded normal-equivalent deviate.
func TestTDistTwoTailPFloor(t *testing.T) {
	for _, v := range []float64{6, 20} {
		d := TDist{V: v}
		floor := normTwoTail((1 - 1/(4*v)) * math.Sqrt(2*v))
		if got := d.TwoTailP(1e12); !aeq(floor, got) {
			t.Errorf("v=%v: want %v at t=1e12, got %v", v, floor, got)
		}
		for _, tt := range []float64{1, 5, 50, 1000} {
			if got := d.TwoTailP(tt); got < floor {
				t.Errorf("v=%v t=%v: p %v below floor %v", v, tt, got, floor)
			}
		}
	}
	if got := (TDist{V: 6}).TwoTailP(1e9); !aeq(0.000901015089406936, got) {
		t.Errorf("want 0.000901015089406936, got %v", got)
	}
}

func TestTDistCDF(t *testing.T) {
	d := TDist{V: 12}
	if got := d.CDF(0); !aeq(0.5, got) {
		t.Errorf("want 0.5, got %v", got)
	}
	for _, x := range []float64{0.3, 1, 2.5} {
		if got := d.CDF(x) + d.CDF(-x); !aeq(1, got) {
			t.Errorf("CDF(%v)+CDF(-%v) = %v, want 1", x, x, got)
		}
	}
}

// TestTDistApprox bounds the error of the Abramowitz & Stegun
// approximation against the exact t distribution.
func TestTDistApprox(t *testing.T) {
	tols := map[float64]float64{
		5:    0.011,
		10:   0.005,
		30:   0.002,
		100:  0.001,
		1000: 0.0005,
	}
	for v, tol := range tols {
		exact := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: v}
		d := TDist{V: v}
		for _, x := range []float64{0, 0.25, 0.5, 1, 1.5, 2, 2.5, 3, 4, 5} {
			want := 2 * exact.Survival(x)
			if got := d.TwoTailP(x); math.Abs(want-got) > tol {
				t.Errorf("v=%v t=%v: want %v ± %v, got %v", v, x, want, tol, got)
			}
		}
	}
}

func TestTDistPDF(t *testing.T) {
	for _, v := range []float64{3, 10, 50} {
		exact := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: v}
		d := TDist{V: v}
		for _, x := range []float64{-2, 0, 0.7, 3} {
			if want, got := exact.Prob(x), d.PDF(x); !aeq(want, got) {
				t.Errorf("v=%v x=%v: want %v, got %v", v, x, want, got)
			}
		}
	}
}
