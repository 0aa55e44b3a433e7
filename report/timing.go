// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"sort"

	"golang.org/x/poissonviz/poissonchart"
	"golang.org/x/poissonviz/poissonfmt"
	"golang.org/x/poissonviz/poissonmath"
	"golang.org/x/poissonviz/poissonunit"
)

// A Trace is the cumulative wall time of one run over its first
// iterations, with a straight line fitted to it.
type Trace struct {
	Meta  *poissonfmt.Meta
	Iters []float64 // 1, 2, ..., len(Times)
	Times []float64 // Cumulative time, ascending
	Fit   poissonmath.Line
}

// LoadTimingTraces reads the per-iteration timing dumps in dir, in
// name order, keeping at most the first n times of each.
func LoadTimingTraces(dir string, n int) ([]*Trace, error) {
	entries, err := poissonfmt.Glob(dir, poissonfmt.DefaultPattern)
	if err != nil {
		return nil, err
	}
	var out []*Trace
	for _, e := range entries {
		s, err := e.Load(poissonfmt.Float64)
		if err != nil {
			return nil, err
		}
		times := s.Floats
		if len(times) > n {
			times = times[:n]
		}
		times = poissonmath.CumSum(times)
		sort.Float64s(times)
		iters := make([]float64, len(times))
		for i := range iters {
			iters[i] = float64(i + 1)
		}
		fit, err := poissonmath.LinearFit(iters, times)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Path, err)
		}
		out = append(out, &Trace{Meta: e.Meta, Iters: iters, Times: times, Fit: fit})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no timing dumps in %s", dir)
	}
	return out, nil
}

// gridSizes returns the distinct grid sizes of metas, ascending.
func gridSizes(metas []*poissonfmt.Meta) []poissonfmt.Dims {
	seen := make(map[poissonfmt.Dims]bool)
	var out []poissonfmt.Dims
	for _, m := range metas {
		if !seen[m.GridSize] {
			seen[m.GridSize] = true
			out = append(out, m.GridSize)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rows != out[j].Rows {
			return out[i].Rows < out[j].Rows
		}
		return out[i].Cols < out[j].Cols
	})
	return out
}

// TimeVsIters plots cumulative time against iterations with a fitted
// line per run, one panel per grid size.
func (r *Report) TimeVsIters() error {
	dir, err := r.Layout.inputDir(r.Layout.TimeIters)
	if err != nil {
		return err
	}
	ps := r.params()
	traces, err := LoadTimingTraces(dir, ps.TraceLength)
	if err != nil {
		return err
	}

	metas := make([]*poissonfmt.Meta, len(traces))
	names := make([]string, len(traces))
	for i, tr := range traces {
		metas[i] = tr.Meta
		names[i] = seriesLabel(tr.Meta)
	}
	sizes := gridSizes(metas)
	names = nub(names)

	cols := 2
	if len(sizes) < cols {
		cols = len(sizes)
	}
	rows := (len(sizes) + cols - 1) / cols
	fig := poissonchart.NewFigure(r.Style, rows, cols)
	for i, gs := range sizes {
		fig.Index(i).Title.Text = gs.String()
	}
	for i := len(sizes); i < rows*cols; i++ {
		fig.Remove(i/cols, i%cols)
	}

	seen := make(legend)
	for _, tr := range traces {
		panel := 0
		for i, gs := range sizes {
			if gs == tr.Meta.GridSize {
				panel = i
			}
		}
		p := fig.Index(panel)
		k := indexOf(names, seriesLabel(tr.Meta))
		c := poissonchart.Color(k)

		label := seen.label(names[k])
		xs := poissonmath.Stride(tr.Iters, ps.TraceStride)
		ys := poissonmath.Stride(tr.Times, ps.TraceStride)
		if _, err := r.Style.AddPoints(p, label, xs, ys, c, poissonchart.Glyph(k)); err != nil {
			return err
		}
		r.Style.AddFunction(p, tr.Fit.At, c)

		mid := len(tr.Iters) / 2
		note := poissonunit.FormatFit(tr.Fit.Intercept, tr.Fit.Slope)
		if err := r.Style.Annotate(p, tr.Iters[mid], tr.Times[mid], note); err != nil {
			return err
		}
	}
	return r.save(fig, "timeviters.png", "Cumulative time vs iterations with linear fits")
}

// A Residual is the residual error trace of one run.
type Residual struct {
	Meta   *poissonfmt.Meta
	Values []float64
}

// LoadResiduals reads the residual traces in dir for grid size gs, in
// name order. The first skip+1 values of each trace are dropped as
// warm-up; a trace no longer than that is returned empty.
func LoadResiduals(dir string, gs poissonfmt.Dims, skip int) ([]Residual, error) {
	entries, err := poissonfmt.Glob(dir, poissonfmt.DefaultPattern)
	if err != nil {
		return nil, err
	}
	var out []Residual
	for _, e := range entries {
		if e.Meta.GridSize != gs {
			continue
		}
		s, err := e.Load(poissonfmt.Float64)
		if err != nil {
			return nil, err
		}
		var vals []float64
		if len(s.Floats) > skip+1 {
			vals = s.Floats[skip+1:]
		}
		out = append(out, Residual{e.Meta, vals})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no %s residual dumps in %s", gs, dir)
	}
	return out, nil
}

// ResidualError plots the residual error traces of the configured
// grid size, one line per processor arrangement.
func (r *Report) ResidualError() error {
	dir, err := r.Layout.inputDir(r.Layout.Errors)
	if err != nil {
		return err
	}
	ps := r.params()
	res, err := LoadResiduals(dir, ps.ErrorGrid, ps.ErrorSkip)
	if err != nil {
		return err
	}

	fig := poissonchart.NewFigure(r.Style, 1, 1)
	p := fig.Panel(0, 0)
	p.Title.Text = fmt.Sprintf("Residual error for %s grid", ps.ErrorGrid)
	p.Y.Tick.Marker = poissonchart.SITicks{}
	for i, rs := range res {
		if len(rs.Values) == 0 {
			continue
		}
		xs := poissonchart.Indexes(len(rs.Values))
		if _, err := r.Style.AddLine(p, seriesLabel(rs.Meta), xs, rs.Values, poissonchart.Color(i)); err != nil {
			return err
		}
	}
	name := fmt.Sprintf("error_%s.png", ps.ErrorGrid)
	return r.save(fig, name, p.Title.Text)
}
