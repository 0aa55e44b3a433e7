// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poissonmath provides the small statistics used to turn
// solver dumps into report series: means over processes, moving
// averages, cumulative sums, and linear fits.
package poissonmath

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/gonum/floats"

	"golang.org/x/poissonviz/poissonfmt"
)

// MovingAverage returns the simple moving average of xs over windows
// of the given size. Only full windows produce output, so the result
// has len(xs)-window+1 points.
//
// window must be in [1, len(xs)].
func MovingAverage(xs []float64, window int) ([]float64, error) {
	if window < 1 || window > len(xs) {
		return nil, fmt.Errorf("moving average window %d out of range [1,%d]", window, len(xs))
	}
	out := make([]float64, len(xs)-window+1)
	if window == 1 {
		copy(out, xs)
		return out, nil
	}
	// Sum each window anew to avoid accumulated rounding drift.
	for i := range out {
		var sum float64
		for _, x := range xs[i : i+window] {
			sum += x
		}
		out[i] = sum / float64(window)
	}
	return out, nil
}

// Mean returns the arithmetic mean of xs, or NaN if xs is empty.
func Mean(xs []float64) float64 {
	return stats.Mean(xs)
}

// MeanRows averages a two-dimensional array over its leading
// dimension. For a (processes, samples) array this is the per-sample
// mean across processes.
func MeanRows(a *poissonfmt.Array) []float64 {
	if a.NDim() != 2 {
		panic(fmt.Sprintf("MeanRows of %d-dimensional array", a.NDim()))
	}
	rows, cols := a.Shape[0], a.Shape[1]
	out := make([]float64, cols)
	for i := 0; i < rows; i++ {
		floats.Add(out, a.Row(i).Floats())
	}
	floats.Scale(1/float64(rows), out)
	return out
}

// CumSum returns the running totals of xs.
func CumSum(xs []float64) []float64 {
	return floats.CumSum(make([]float64, len(xs)), xs)
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	return vec.Linspace(lo, hi, n)
}

// Nearest returns the index of the value in xs closest to v. Ties
// resolve to the lowest index. Nearest returns -1 if xs is empty.
func Nearest(xs []float64, v float64) int {
	if len(xs) == 0 {
		return -1
	}
	dist := make([]float64, len(xs))
	for i, x := range xs {
		dist[i] = math.Abs(x - v)
	}
	return slice.ArgMin(dist)
}

// Ratio returns num[i]/den[i] for each i.
func Ratio(num, den []float64) ([]float64, error) {
	if len(num) != len(den) {
		return nil, fmt.Errorf("ratio of series of lengths %d and %d", len(num), len(den))
	}
	out := make([]float64, len(num))
	floats.DivTo(out, num, den)
	return out, nil
}

// Stride returns every step'th element of xs, starting with the first.
func Stride(xs []float64, step int) []float64 {
	if step < 1 {
		step = 1
	}
	out := make([]float64, 0, (len(xs)+step-1)/step)
	for i := 0; i < len(xs); i += step {
		out = append(out, xs[i])
	}
	return out
}

// A Line is a fitted straight line y = Intercept + Slope*x.
type Line struct {
	Intercept float64
	Slope     float64
}

// At evaluates l at x.
func (l Line) At(x float64) float64 {
	return l.Intercept + l.Slope*x
}

// LinearFit returns the least squares line through (xs[i], ys[i]).
func LinearFit(xs, ys []float64) (Line, error) {
	if len(xs) != len(ys) {
		return Line{}, fmt.Errorf("fit of %d x values to %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return Line{}, fmt.Errorf("fit needs at least 2 points, have %d", len(xs))
	}
	res := fit.PolynomialRegression(xs, ys, nil, 1)
	return Line{Intercept: res.Coefficients[0], Slope: res.Coefficients[1]}, nil
}
