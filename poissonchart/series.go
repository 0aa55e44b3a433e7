// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poissonchart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"golang.org/x/poissonviz/poissonfmt"
)

// XYs pairs xs and ys into plotter points.
func XYs(xs, ys []float64) (plotter.XYs, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%d x values for %d y values", len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	return pts, nil
}

// Indexes returns 0, 1, ..., n-1 as float64s, for series plotted
// against their sample index.
func Indexes(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// Color returns the i'th color of the default cycle.
func Color(i int) color.Color {
	return plotutil.Color(i)
}

// Glyph returns the i'th marker shape of the default cycle.
func Glyph(i int) draw.GlyphDrawer {
	return plotutil.Shape(i)
}

// AddLine adds a solid line through (xs, ys) to p in color c. If
// label is non-empty, the line gets a legend entry.
func (s Style) AddLine(p *plot.Plot, label string, xs, ys []float64, c color.Color) (*plotter.Line, error) {
	pts, err := XYs(xs, ys)
	if err != nil {
		return nil, err
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle = s.LineStyle(c)
	p.Add(l)
	if label != "" {
		p.Legend.Add(label, l)
	}
	return l, nil
}

// AddPoints adds unconnected markers at (xs, ys) to p.
func (s Style) AddPoints(p *plot.Plot, label string, xs, ys []float64, c color.Color, shape draw.GlyphDrawer) (*plotter.Scatter, error) {
	pts, err := XYs(xs, ys)
	if err != nil {
		return nil, err
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = c
	sc.GlyphStyle.Shape = shape
	sc.GlyphStyle.Radius = s.GlyphSize
	p.Add(sc)
	if label != "" {
		p.Legend.Add(label, sc)
	}
	return sc, nil
}

// AddFunction adds a dashed line of f over p's current X range.
func (s Style) AddFunction(p *plot.Plot, f func(float64) float64, c color.Color) *plotter.Function {
	fn := plotter.NewFunction(f)
	fn.LineStyle = s.LineStyle(c)
	fn.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(fn)
	return fn
}

// Annotate writes txt at the data coordinates (x, y) of p.
func (s Style) Annotate(p *plot.Plot, x, y float64, txt string) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{txt},
	})
	if err != nil {
		return err
	}
	for i := range l.TextStyle {
		s.font(&l.TextStyle[i].Font, 0.8)
	}
	p.Add(l)
	return nil
}

// A Grid is a two-dimensional field of values with coordinates for
// its columns and rows. It implements plotter.GridXYZ.
type Grid struct {
	Values [][]float64 // Values[r][c]
	Xs     []float64   // Coordinate of each column
	Ys     []float64   // Coordinate of each row
}

// GridOf builds a Grid from a two-dimensional array. Rows of a become
// rows of the grid. If xs or ys is nil, the columns or rows are
// spaced evenly over [0, 1].
func GridOf(a *poissonfmt.Array, xs, ys []float64) (*Grid, error) {
	if a.NDim() != 2 {
		return nil, fmt.Errorf("grid of %d-dimensional array", a.NDim())
	}
	rows := make([][]float64, a.Shape[0])
	for r := range rows {
		rows[r] = append([]float64(nil), a.Row(r).Floats()...)
	}
	return NewGrid(rows, xs, ys)
}

// NewGrid builds a Grid from rows of values. Every row must have the
// same length. Nil xs or ys default to even spacing over [0, 1].
func NewGrid(rows [][]float64, xs, ys []float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("grid row %d has %d values, want %d", i, len(r), cols)
		}
	}
	if xs == nil {
		xs = unitSpace(cols)
	}
	if ys == nil {
		ys = unitSpace(len(rows))
	}
	if len(xs) != cols || len(ys) != len(rows) {
		return nil, fmt.Errorf("grid of %dx%d values has %d x and %d y coordinates", len(rows), cols, len(xs), len(ys))
	}
	return &Grid{Values: rows, Xs: xs, Ys: ys}, nil
}

func unitSpace(n int) []float64 {
	if n == 1 {
		return []float64{0}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

func (g *Grid) Dims() (c, r int)   { return len(g.Xs), len(g.Ys) }
func (g *Grid) Z(c, r int) float64 { return g.Values[r][c] }
func (g *Grid) X(c int) float64    { return g.Xs[c] }
func (g *Grid) Y(r int) float64    { return g.Ys[r] }

func (g *Grid) minMax() (lo, hi float64) {
	lo, hi = g.Values[0][0], g.Values[0][0]
	for _, row := range g.Values {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// SurfacePalette returns the sequential palette used for surfaces.
func SurfacePalette() palette.Palette {
	pal, err := brewer.GetPalette(brewer.TypeSequential, "YlGnBu", 9)
	if err != nil {
		// The palette name and size are fixed.
		panic(err)
	}
	return pal
}

// AddSurface adds g to p as a heat map, the flat rendering of a
// solution surface.
func (s Style) AddSurface(p *plot.Plot, g *Grid) *plotter.HeatMap {
	hm := plotter.NewHeatMap(g, SurfacePalette())
	if lo, hi := g.minMax(); lo == hi {
		// A constant field still needs a non-empty color range.
		hm.Min, hm.Max = lo-0.5, hi+0.5
	}
	p.Add(hm)
	return hm
}
