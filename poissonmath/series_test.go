// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poissonmath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"golang.org/x/poissonviz/poissonfmt"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestMovingAverage(t *testing.T) {
	check := func(xs []float64, w int, want []float64) {
		t.Helper()
		got, err := MovingAverage(xs, w)
		if err != nil {
			t.Errorf("MovingAverage(%v, %d): %v", xs, w, err)
			return
		}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("MovingAverage(%v, %d) mismatch (-want +got):\n%s", xs, w, diff)
		}
	}
	xs := []float64{1, 2, 3, 4, 5}
	check(xs, 3, []float64{2, 3, 4})
	check(xs, 1, xs)
	check(xs, 5, []float64{Mean(xs)})
	check([]float64{0.5, -0.5, 2, 2}, 2, []float64{0, 0.75, 2})

	got, _ := MovingAverage(xs, 1)
	got[0] = 100
	if xs[0] != 1 {
		t.Errorf("window 1 result aliases input")
	}

	for _, w := range []int{0, -1, 6} {
		if _, err := MovingAverage(xs, w); err == nil {
			t.Errorf("window %d: got success, want error", w)
		}
	}
	if _, err := MovingAverage(nil, 1); err == nil {
		t.Errorf("empty series: got success, want error")
	}
}

func TestMeanRows(t *testing.T) {
	s := &poissonfmt.Sample{DType: poissonfmt.Float64, Floats: []float64{
		// Layer 0: 2 processes x 3 samples.
		1, 2, 3,
		3, 4, 5,
		// Layer 1.
		10, 10, 10,
		20, 0, 40,
	}}
	a, err := poissonfmt.Reshape(s, 2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{2, 3, 4}, MeanRows(a.Row(0))); diff != "" {
		t.Errorf("layer 0 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{15, 5, 25}, MeanRows(a.Row(1))); diff != "" {
		t.Errorf("layer 1 (-want +got):\n%s", diff)
	}
	// The input is not modified.
	if s.Floats[0] != 1 || s.Floats[3] != 3 {
		t.Errorf("MeanRows modified its input: %v", s.Floats)
	}
}

func TestCumSum(t *testing.T) {
	got := CumSum([]float64{1, 2, 3, 0.5})
	if diff := cmp.Diff([]float64{1, 3, 6, 6.5}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if len(CumSum(nil)) != 0 {
		t.Errorf("CumSum(nil) not empty")
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(1.90, 1.99, 10)
	if len(got) != 10 {
		t.Fatalf("got %d values, want 10", len(got))
	}
	if math.Abs(got[0]-1.90) > 1e-12 || math.Abs(got[9]-1.99) > 1e-12 {
		t.Errorf("got endpoints %v, %v", got[0], got[9])
	}
}

func TestNearest(t *testing.T) {
	check := func(xs []float64, v float64, want int) {
		t.Helper()
		if got := Nearest(xs, v); got != want {
			t.Errorf("Nearest(%v, %v) = %d, want %d", xs, v, got, want)
		}
	}
	omegas := Linspace(1.90, 1.99, 10)
	check(omegas, 1.99, 9)
	check(omegas, 1.90, 0)
	check(omegas, 1.951, 5)
	check([]float64{1, 3}, 2, 0)
	check(nil, 1, -1)
}

func TestRatioStride(t *testing.T) {
	r, err := Ratio([]float64{4, 9}, []float64{2, 3})
	if err != nil || !cmp.Equal(r, []float64{2, 3}) {
		t.Errorf("Ratio = %v, %v", r, err)
	}
	if _, err := Ratio([]float64{1}, nil); err == nil {
		t.Errorf("Ratio of mismatched lengths: got success")
	}

	xs := []float64{0, 1, 2, 3, 4, 5, 6}
	if got := Stride(xs, 3); !cmp.Equal(got, []float64{0, 3, 6}) {
		t.Errorf("Stride(3) = %v", got)
	}
	if got := Stride(xs, 0); !cmp.Equal(got, xs) {
		t.Errorf("Stride(0) = %v", got)
	}
}

func TestLinearFit(t *testing.T) {
	xs := Linspace(0, 10, 11)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2.5e-3 + 4e-4*x
	}
	l, err := LinearFit(xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(l.Intercept-2.5e-3) > 1e-9 || math.Abs(l.Slope-4e-4) > 1e-9 {
		t.Errorf("got %+v, want intercept 2.5e-3 slope 4e-4", l)
	}
	if math.Abs(l.At(5)-(2.5e-3+2e-3)) > 1e-9 {
		t.Errorf("At(5) = %v", l.At(5))
	}

	if _, err := LinearFit([]float64{1}, []float64{1}); err == nil {
		t.Errorf("fit of one point: got success")
	}
	if _, err := LinearFit([]float64{1, 2}, []float64{1}); err == nil {
		t.Errorf("fit of mismatched lengths: got success")
	}
}
