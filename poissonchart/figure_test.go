// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poissonchart

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"

	"golang.org/x/poissonviz/poissonfmt"
)

func smallStyle() Style {
	s := DefaultStyle()
	s.Width, s.Height = 4*vg.Inch, 3*vg.Inch
	s.DPI = 50
	return s
}

func TestFigureSave(t *testing.T) {
	s := smallStyle()
	f := NewFigure(s, 2, 2)
	f.Title = "Moving average of bandwidth"
	if r, c := f.Dims(); r != 2 || c != 2 {
		t.Fatalf("Dims() = %d, %d", r, c)
	}
	xs := []float64{0, 1, 2, 3}
	if _, err := s.AddLine(f.Panel(0, 0), "2x2", xs, []float64{1, 2, 1, 2}, Color(0)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddPoints(f.Index(1), "4x1", xs, []float64{3, 1, 4, 1}, Color(1), Glyph(1)); err != nil {
		t.Fatal(err)
	}
	s.AddFunction(f.Index(1), func(x float64) float64 { return x }, Color(1))
	if err := s.Annotate(f.Index(1), 1.5, 2, "α: 1\nβ: 2"); err != nil {
		t.Fatal(err)
	}
	g, err := NewGrid([][]float64{{0, 1, 2}, {1, 2, 3}}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.AddSurface(f.Panel(1, 0), g)
	f.Remove(1, 1)

	path := filepath.Join(t.TempDir(), "figures", "out.png")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}
	r, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	cfg, err := png.DecodeConfig(r)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 200 || cfg.Height != 150 {
		t.Errorf("got %dx%d image, want 200x150", cfg.Width, cfg.Height)
	}
}

func TestFigureSize(t *testing.T) {
	f := NewFigure(smallStyle(), 1, 3)
	f.Width = 6 * vg.Inch
	path := filepath.Join(t.TempDir(), "wide.png")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}
	r, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	cfg, err := png.DecodeConfig(r)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 300 || cfg.Height != 150 {
		t.Errorf("got %dx%d image, want 300x150", cfg.Width, cfg.Height)
	}
}

func TestXYsMismatch(t *testing.T) {
	if _, err := XYs([]float64{1}, nil); err == nil {
		t.Errorf("got success, want error")
	}
	s := smallStyle()
	if _, err := s.AddLine(s.NewPlot("x"), "", []float64{1, 2}, []float64{1}, Color(0)); err == nil {
		t.Errorf("AddLine: got success, want error")
	}
}

func TestGrid(t *testing.T) {
	arr, err := poissonfmt.Reshape(&poissonfmt.Sample{
		DType: poissonfmt.Int,
		Ints:  []int64{1, 2, 3, 4, 5, 6},
	}, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	g, err := GridOf(arr, []float64{10, 20, 30}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c, r := g.Dims(); c != 3 || r != 2 {
		t.Errorf("Dims() = %d, %d, want 3, 2", c, r)
	}
	if g.Z(2, 1) != 6 || g.X(1) != 20 || g.Y(1) != 1 {
		t.Errorf("Z(2,1)=%v X(1)=%v Y(1)=%v", g.Z(2, 1), g.X(1), g.Y(1))
	}
	if lo, hi := g.minMax(); lo != 1 || hi != 6 {
		t.Errorf("minMax() = %v, %v", lo, hi)
	}

	if _, err := NewGrid([][]float64{{1, 2}, {3}}, nil, nil); err == nil {
		t.Errorf("ragged grid: got success")
	}
	if _, err := NewGrid([][]float64{{1, 2}}, []float64{1}, nil); err == nil {
		t.Errorf("short coordinates: got success")
	}
	if _, err := NewGrid(nil, nil, nil); err == nil {
		t.Errorf("empty grid: got success")
	}
}

func TestSITicks(t *testing.T) {
	var labels []string
	for _, tk := range (SITicks{}).Ticks(0, 3e9) {
		if tk.Label != "" {
			labels = append(labels, tk.Label)
		}
	}
	if len(labels) < 2 {
		t.Fatalf("got %d labeled ticks, want at least 2", len(labels))
	}
	prefix := labels[len(labels)-1][len(labels[len(labels)-1])-1:]
	if prefix != "M" && prefix != "G" {
		t.Errorf("last label %q has no SI prefix", labels[len(labels)-1])
	}
	for _, l := range labels[1:] {
		if !strings.HasSuffix(l, prefix) {
			t.Errorf("label %q does not share prefix %q", l, prefix)
		}
	}
}
