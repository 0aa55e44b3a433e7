// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"golang.org/x/poissonviz/poissonchart"
	"golang.org/x/poissonviz/poissonfmt"
	"golang.org/x/poissonviz/poissonmath"
)

// A Bandwidth is the communication cost of one run, averaged over
// processes. Overhead and Bytes are indexed by iteration.
type Bandwidth struct {
	Meta     *poissonfmt.Meta
	Overhead []float64 // Communication time per iteration
	Bytes    []float64 // Bytes exchanged per iteration
	Smoothed []float64 // Moving average of Bytes/Overhead in GB/s
	Window   int
}

// LoadLatency reads the latency dumps in dir, in name order. Each
// dump has shape (2, processes, iterations): layer 0 is overhead and
// layer 1 bytes. The bandwidth is smoothed over windows of frac times
// the iteration count, and at least 1.
func LoadLatency(dir string, frac float64) ([]*Bandwidth, error) {
	entries, err := poissonfmt.Glob(dir, poissonfmt.DefaultPattern)
	if err != nil {
		return nil, err
	}
	var out []*Bandwidth
	for _, e := range entries {
		procs := e.Meta.Procs()
		if procs == 0 {
			return nil, fmt.Errorf("%s: no process count", e.Path)
		}
		s, err := e.Load(poissonfmt.Float64)
		if err != nil {
			return nil, err
		}
		n := s.Len() / (2 * procs)
		a, err := poissonfmt.Reshape(s, 2, procs, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Path, err)
		}
		bw := &Bandwidth{
			Meta:     e.Meta,
			Overhead: poissonmath.MeanRows(a.Row(0)),
			Bytes:    poissonmath.MeanRows(a.Row(1)),
		}
		rate, err := poissonmath.Ratio(bw.Bytes, bw.Overhead)
		if err != nil {
			return nil, err
		}
		bw.Window = int(math.Floor(float64(n)*frac + 1e-9))
		if bw.Window < 1 {
			bw.Window = 1
		}
		if bw.Smoothed, err = poissonmath.MovingAverage(rate, bw.Window); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Path, err)
		}
		for i := range bw.Smoothed {
			bw.Smoothed[i] *= 1e-9
		}
		out = append(out, bw)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no latency dumps in %s", dir)
	}
	return out, nil
}

// LatencyAnalysis plots the smoothed bandwidth of each run, one panel
// per configured grid size with a shared bandwidth axis.
func (r *Report) LatencyAnalysis() error {
	dir, err := r.Layout.inputDir(r.Layout.Latency)
	if err != nil {
		return err
	}
	ps := r.params()
	bws, err := LoadLatency(dir, ps.LatencyWindow)
	if err != nil {
		return err
	}
	grids := ps.LatencyGrids
	if len(grids) == 0 {
		return fmt.Errorf("no grid sizes to plot")
	}

	names := make([]string, len(bws))
	for i, bw := range bws {
		names[i] = seriesLabel(bw.Meta)
	}
	names = nub(names)

	cols := 2
	if len(grids) < cols {
		cols = len(grids)
	}
	rows := (len(grids) + cols - 1) / cols
	fig := poissonchart.NewFigure(r.Style, rows, cols)
	fig.Title = "Moving average of bandwidth"
	for i, gs := range grids {
		fig.Index(i).Title.Text = gs.String()
	}
	for i := len(grids); i < rows*cols; i++ {
		fig.Remove(i/cols, i%cols)
	}
	first := fig.Index(0)
	first.X.Label.Text = "Iterations"
	first.Y.Label.Text = "Bandwidth (GB/s)"

	var all []float64
	seen := make(legend)
	for _, bw := range bws {
		panel := -1
		for i, gs := range grids {
			if gs == bw.Meta.GridSize {
				panel = i
			}
		}
		if panel < 0 {
			continue
		}
		p := fig.Index(panel)
		k := indexOf(names, seriesLabel(bw.Meta))
		label := seen.label(names[k])
		xs := poissonchart.Indexes(len(bw.Smoothed))
		if _, err := r.Style.AddLine(p, label, xs, bw.Smoothed, poissonchart.Color(k)); err != nil {
			return err
		}
		all = append(all, bw.Smoothed...)
	}

	if len(all) > 0 {
		lo, hi := stats.Bounds(all)
		for i := range grids {
			p := fig.Index(i)
			p.Y.Min, p.Y.Max = lo, hi
		}
	}
	return r.save(fig, "latency_analysis.png", fig.Title)
}
