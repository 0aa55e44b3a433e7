// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/poissonviz/poissonchart"
	"golang.org/x/poissonviz/poissonfmt"
	"golang.org/x/poissonviz/poissonmath"
)

// An OmegaRun is one relaxation-factor sweep at a fixed grid size.
// Every series is indexed by omega.
type OmegaRun struct {
	Meta    *poissonfmt.Meta
	Omegas  []float64
	Iters   []float64 // Iterations to convergence
	Times   []float64 // Mean wall time over processes
	CPUUtil []float64 // Mean CPU utilization over processes
}

// LoadOmegaSweep reads the sweeps in dir run on processor grid procg,
// ordered by grid size.
//
// Each run needs a times dump of shape (2, processes, omegas), layer
// 0 holding times and layer 1 CPU utilization, and an iters dump with
// one count per omega. If the run has no omegas dump, the omegas
// span [lo, hi] evenly.
func LoadOmegaSweep(dir string, procg poissonfmt.Dims, lo, hi float64) ([]*OmegaRun, error) {
	entries, err := poissonfmt.Glob(dir, poissonfmt.DefaultPattern)
	if err != nil {
		return nil, err
	}
	var match []*poissonfmt.Entry
	for _, e := range entries {
		if e.Meta.ProcGrid == procg {
			match = append(match, e)
		}
	}
	runs, err := groupRuns(match)
	if err != nil {
		return nil, err
	}
	sortByGridSize(runs)

	var out []*OmegaRun
	for _, g := range runs {
		or, err := loadOmegaRun(g, lo, hi)
		if err != nil {
			return nil, err
		}
		out = append(out, or)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no %s runs in %s", procg, dir)
	}
	return out, nil
}

func loadOmegaRun(g *run, lo, hi float64) (*OmegaRun, error) {
	te, err := g.need(poissonfmt.Times)
	if err != nil {
		return nil, err
	}
	ie, err := g.need(poissonfmt.Iters)
	if err != nil {
		return nil, err
	}

	procs := g.meta.Procs()
	if procs == 0 {
		return nil, fmt.Errorf("run %s has no process count", g.key)
	}
	ts, err := te.Load(poissonfmt.Float64)
	if err != nil {
		return nil, err
	}
	n := ts.Len() / (2 * procs)
	bench, err := poissonfmt.Reshape(ts, 2, procs, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", te.Path, err)
	}
	or := &OmegaRun{
		Meta:    g.meta,
		Times:   poissonmath.MeanRows(bench.Row(0)),
		CPUUtil: poissonmath.MeanRows(bench.Row(1)),
	}

	is, err := ie.Load(poissonfmt.Int)
	if err != nil {
		return nil, err
	}
	if is.Len() != n {
		return nil, fmt.Errorf("%s: %d iteration counts for %d omegas", ie.Path, is.Len(), n)
	}
	or.Iters = is.Float64s()

	if oe := g.get(poissonfmt.Omegas); oe != nil {
		ws, err := oe.Load(poissonfmt.Float64)
		if err != nil {
			return nil, err
		}
		if ws.Len() != n {
			return nil, fmt.Errorf("%s: %d omegas for %d timings", oe.Path, ws.Len(), n)
		}
		or.Omegas = ws.Floats
	} else {
		or.Omegas = poissonmath.Linspace(lo, hi, n)
	}
	return or, nil
}

// omegaGrids returns the iteration and time fields of runs as grids
// over grid size (columns) and omega (rows). Every run must share the
// omegas of the first, which are sorted ascending.
func omegaGrids(runs []*OmegaRun) (iters, times *poissonchart.Grid, err error) {
	omegas := runs[0].Omegas
	order := make([]int, len(omegas))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return omegas[order[i]] < omegas[order[j]] })

	ys := make([]float64, len(order))
	for i, k := range order {
		ys[i] = omegas[k]
	}
	xs := make([]float64, len(runs))
	iv := make([][]float64, len(order))
	tv := make([][]float64, len(order))
	for i := range order {
		iv[i] = make([]float64, len(runs))
		tv[i] = make([]float64, len(runs))
	}
	for c, or := range runs {
		if len(or.Omegas) != len(omegas) {
			return nil, nil, fmt.Errorf("run %s has %d omegas, want %d", or.Meta.Series(), len(or.Omegas), len(omegas))
		}
		for k, w := range or.Omegas {
			if w != omegas[k] {
				return nil, nil, fmt.Errorf("run %s has omegas %v, want %v", or.Meta.Series(), or.Omegas, omegas)
			}
		}
		xs[c] = float64(or.Meta.GridSize.Rows)
		for row, k := range order {
			iv[row][c] = or.Iters[k]
			tv[row][c] = or.Times[k]
		}
	}
	if iters, err = poissonchart.NewGrid(iv, xs, ys); err != nil {
		return nil, nil, err
	}
	if times, err = poissonchart.NewGrid(tv, xs, ys); err != nil {
		return nil, nil, err
	}
	return iters, times, nil
}

// OptimalOmega renders the iteration and time surfaces over grid size
// and omega for each configured processor grid.
func (r *Report) OptimalOmega() error {
	dir, err := r.Layout.inputDir(r.Layout.Timings)
	if err != nil {
		return err
	}
	ps := r.params()
	for _, procg := range ps.OmegaGrids {
		runs, err := LoadOmegaSweep(dir, procg, ps.OmegaLow, ps.OmegaHigh)
		if err != nil {
			return err
		}
		iters, times, err := omegaGrids(runs)
		if err != nil {
			return err
		}

		fig := poissonchart.NewFigure(r.Style, 1, 2)
		ip, tp := fig.Panel(0, 0), fig.Panel(0, 1)
		ip.Title.Text = "iterations"
		ip.X.Label.Text = "grid size"
		ip.Y.Label.Text = "ω"
		r.Style.AddSurface(ip, iters)
		tp.Title.Text = "times"
		r.Style.AddSurface(tp, times)

		name := "optimal_omega_" + strings.ReplaceAll(procg.String(), "x", "") + ".png"
		if err := r.save(fig, name, fmt.Sprintf("Iterations and time over grid size and ω (%s)", procg)); err != nil {
			return err
		}
	}
	return nil
}

// An IterPoint is the iteration count of one run at a chosen omega.
type IterPoint struct {
	Label    string // Processor arrangement
	GridSize int
	Omega    float64 // Omega nearest the requested one
	Iters    float64
}

// LoadOptimalIters reads every run in dir and returns its iteration
// count at the omega nearest omega, in name order. Runs without an
// iters dump are skipped. A run with iters but no omegas is an error.
func LoadOptimalIters(dir string, omega float64) ([]IterPoint, error) {
	entries, err := poissonfmt.Glob(dir, poissonfmt.DefaultPattern)
	if err != nil {
		return nil, err
	}
	runs, err := groupRuns(entries)
	if err != nil {
		return nil, err
	}
	var out []IterPoint
	for _, g := range runs {
		ie := g.get(poissonfmt.Iters)
		if ie == nil {
			continue
		}
		oe, err := g.need(poissonfmt.Omegas)
		if err != nil {
			return nil, err
		}
		is, err := ie.Load(poissonfmt.Int)
		if err != nil {
			return nil, err
		}
		ws, err := oe.Load(poissonfmt.Float64)
		if err != nil {
			return nil, err
		}
		if is.Len() != ws.Len() {
			return nil, fmt.Errorf("%s: %d iteration counts for %d omegas", ie.Path, is.Len(), ws.Len())
		}
		k := poissonmath.Nearest(ws.Floats, omega)
		if k < 0 {
			return nil, fmt.Errorf("%s: no omegas", oe.Path)
		}
		out = append(out, IterPoint{
			Label:    seriesLabel(g.meta),
			GridSize: g.meta.GridSize.Rows,
			Omega:    ws.Floats[k],
			Iters:    float64(is.Ints[k]),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no iteration dumps in %s", dir)
	}
	return out, nil
}

// IterationsVsGridSize plots the iteration count at the optimal omega
// against grid size, one marker series per processor arrangement.
func (r *Report) IterationsVsGridSize() error {
	dir, err := r.Layout.inputDir(r.Layout.Timings)
	if err != nil {
		return err
	}
	omega := r.params().OptimalOmega
	pts, err := LoadOptimalIters(dir, omega)
	if err != nil {
		return err
	}

	var names []string
	for _, pt := range pts {
		names = append(names, pt.Label)
	}
	names = nub(names)

	fig := poissonchart.NewFigure(r.Style, 1, 1)
	p := fig.Panel(0, 0)
	p.Title.Text = fmt.Sprintf("ω = %g", omega)
	p.X.Label.Text = "Grid size"
	p.Y.Label.Text = "Iterations"
	for i, name := range names {
		var xs, ys []float64
		for _, pt := range pts {
			if pt.Label == name {
				xs = append(xs, float64(pt.GridSize))
				ys = append(ys, pt.Iters)
			}
		}
		if _, err := r.Style.AddPoints(p, name, xs, ys, poissonchart.Color(i), poissonchart.Glyph(i)); err != nil {
			return err
		}
	}
	name := fmt.Sprintf("ppoison_iterations_vs_gridsize_w=%g.png", omega)
	return r.save(fig, name, fmt.Sprintf("Iterations vs grid size at ω = %g", omega))
}
