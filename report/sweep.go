// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"

	"gonum.org/v1/plot/vg"

	"golang.org/x/poissonviz/poissonchart"
	"golang.org/x/poissonviz/poissonfmt"
	"golang.org/x/poissonviz/poissonmath"
)

// A Sweep is one run over a range of sweep sizes. Every series is
// indexed by sweep size.
type Sweep struct {
	Meta  *poissonfmt.Meta
	Sizes []float64 // Sweep size
	Iters []float64 // Iterations to convergence
	Times []float64 // Runtime
	PerIt []float64 // Times[i] / Iters[i]
}

// LoadSweeps reads the sweep experiments in dir. Dumps are paired by
// their metadata, so each run needs exactly one iters, times, and
// sweeps dump of equal length.
func LoadSweeps(dir string) ([]*Sweep, error) {
	entries, err := poissonfmt.Glob(dir, poissonfmt.DefaultPattern)
	if err != nil {
		return nil, err
	}
	runs, err := groupRuns(entries)
	if err != nil {
		return nil, err
	}
	var out []*Sweep
	for _, g := range runs {
		sw, err := loadSweep(g)
		if err != nil {
			return nil, err
		}
		out = append(out, sw)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sweep dumps in %s", dir)
	}
	return out, nil
}

func loadSweep(g *run) (*Sweep, error) {
	load := func(c poissonfmt.Category, dt poissonfmt.DType) ([]float64, error) {
		e, err := g.need(c)
		if err != nil {
			return nil, err
		}
		s, err := e.Load(dt)
		if err != nil {
			return nil, err
		}
		return s.Float64s(), nil
	}
	sw := &Sweep{Meta: g.meta}
	var err error
	if sw.Iters, err = load(poissonfmt.Iters, poissonfmt.Int); err != nil {
		return nil, err
	}
	if sw.Times, err = load(poissonfmt.Times, poissonfmt.Float64); err != nil {
		return nil, err
	}
	if sw.Sizes, err = load(poissonfmt.Sweeps, poissonfmt.Int); err != nil {
		return nil, err
	}
	if len(sw.Sizes) != len(sw.Iters) || len(sw.Sizes) != len(sw.Times) {
		return nil, fmt.Errorf("run %s has %d sweep sizes, %d iteration counts, and %d times",
			g.key, len(sw.Sizes), len(sw.Iters), len(sw.Times))
	}
	if sw.PerIt, err = poissonmath.Ratio(sw.Times, sw.Iters); err != nil {
		return nil, err
	}
	return sw, nil
}

// SweepAnalysis plots iterations, time per iteration, and runtime
// against sweep size.
func (r *Report) SweepAnalysis() error {
	dir, err := r.Layout.inputDir(r.Layout.Sweeps)
	if err != nil {
		return err
	}
	sweeps, err := LoadSweeps(dir)
	if err != nil {
		return err
	}

	fig := poissonchart.NewFigure(r.Style, 1, 3)
	fig.Width, fig.Height = 12*vg.Inch, 4*vg.Inch
	ip, tp, rp := fig.Panel(0, 0), fig.Panel(0, 1), fig.Panel(0, 2)
	ip.X.Label.Text = "sweep size"
	ip.Y.Label.Text = "iterations"
	tp.Y.Label.Text = "time per iteration"
	rp.Y.Label.Text = "runtime"
	tp.Y.Tick.Marker = poissonchart.SITicks{}
	for i, sw := range sweeps {
		c := poissonchart.Color(i)
		if _, err := r.Style.AddLine(ip, seriesLabel(sw.Meta), sw.Sizes, sw.Iters, c); err != nil {
			return err
		}
		if _, err := r.Style.AddLine(tp, "", sw.Sizes, sw.PerIt, c); err != nil {
			return err
		}
		if _, err := r.Style.AddLine(rp, "", sw.Sizes, sw.Times, c); err != nil {
			return err
		}
	}
	return r.save(fig, "sweep_analysis.png", "Iterations and time vs sweep size")
}
