// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report builds the figures of the parallel Poisson solver
// report from the experiment dumps.
//
// Each figure has a load step, which reads and reshapes dumps into
// plain series, and a render step, which lays those series out with
// poissonchart. Any error aborts the whole run: a dump that cannot be
// read or reshaped means the experiment that wrote it needs fixing.
package report

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/poissonviz/poissonchart"
	"golang.org/x/poissonviz/poissonfmt"
)

// A Layout locates the experiment folders and the figure folder.
// Folder names are relative to Root.
type Layout struct {
	Root string

	Solutions string // Solution grids, one per processor grid
	Timings   string // Per-omega times, iterations, and omega values
	TimeIters string // Per-iteration timing traces
	Errors    string // Residual error traces
	Sweeps    string // Sweep size experiments
	Latency   string // Communication overhead and byte counts

	Figures string // Output folder
}

// DefaultLayout is the folder tree the experiments write.
var DefaultLayout = Layout{
	Root:      ".",
	Solutions: "assignment_1/output",
	Timings:   "assignment_1/ppoisson_times",
	TimeIters: "assignment_1/timeviters",
	Errors:    "assignment_1/error_analysis",
	Sweeps:    "assignment_1/sweep_analysis",
	Latency:   "assignment_1/latency_analysis",
	Figures:   "report/figures",
}

// Path returns rel joined to the layout root.
func (l Layout) Path(rel string) string {
	return filepath.Join(l.Root, rel)
}

// inputDir returns the path of an input folder, which must exist.
func (l Layout) inputDir(rel string) (string, error) {
	dir := l.Path(rel)
	st, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("input folder: %w", err)
	}
	if !st.IsDir() {
		return "", fmt.Errorf("input folder %s is not a directory", dir)
	}
	return dir, nil
}

// A Figure is one image written by a report.
type Figure struct {
	Name  string // File name within the figure folder
	Title string // Human-readable description
	Path  string // Full path of the written file
}

// A Report renders figures from a Layout.
type Report struct {
	Layout Layout
	Style  poissonchart.Style

	// Log receives progress messages. If nil, they are discarded.
	Log *log.Logger

	// Params are the analysis constants. The zero value is replaced
	// by DefaultParams.
	Params *Params

	figures []Figure
}

// Params are the constants the analyses depend on.
type Params struct {
	// SurfaceColumns is the number of panels per row in the
	// solution surface figure.
	SurfaceColumns int

	// OmegaGrids are the processor grids with an optimal omega
	// figure each.
	OmegaGrids []poissonfmt.Dims

	// OmegaLow and OmegaHigh span the omega axis when a run has
	// no omegas dump.
	OmegaLow, OmegaHigh float64

	// OptimalOmega selects the iteration count plotted against
	// grid size.
	OptimalOmega float64

	// TraceLength is the number of leading per-iteration times
	// used from each timing trace, and TraceStride the spacing
	// of plotted markers.
	TraceLength int
	TraceStride int

	// ErrorGrid is the grid size of the residual error figure,
	// and ErrorSkip the number of leading warm-up samples dropped
	// from each residual trace.
	ErrorGrid poissonfmt.Dims
	ErrorSkip int

	// LatencyGrids are the grid sizes shown in the bandwidth
	// figure, one panel each.
	LatencyGrids []poissonfmt.Dims
	// LatencyWindow is the moving average window as a fraction
	// of the trace length.
	LatencyWindow float64
}

// DefaultParams are the constants of the published report.
var DefaultParams = Params{
	SurfaceColumns: 2,
	OmegaGrids:     []poissonfmt.Dims{{Rows: 2, Cols: 2}, {Rows: 4, Cols: 1}},
	OmegaLow:       1.90,
	OmegaHigh:      1.99,
	OptimalOmega:   1.99,
	TraceLength:    400,
	TraceStride:    50,
	ErrorGrid:      poissonfmt.Dims{Rows: 800, Cols: 800},
	ErrorSkip:      4300,
	LatencyGrids: []poissonfmt.Dims{
		{Rows: 100, Cols: 100}, {Rows: 200, Cols: 200},
		{Rows: 400, Cols: 400}, {Rows: 800, Cols: 800},
	},
	LatencyWindow: 0.1,
}

// New returns a Report over layout using the default style and
// parameters.
func New(layout Layout, logger *log.Logger) *Report {
	return &Report{Layout: layout, Style: poissonchart.DefaultStyle(), Log: logger}
}

func (r *Report) params() *Params {
	if r.Params == nil {
		return &DefaultParams
	}
	return r.Params
}

func (r *Report) logf(format string, args ...interface{}) {
	if r.Log == nil {
		r.Log = log.New(io.Discard, "", 0)
	}
	r.Log.Printf(format, args...)
}

// save writes f to the figure folder under name.
func (r *Report) save(f *poissonchart.Figure, name, title string) error {
	path := filepath.Join(r.Layout.Path(r.Layout.Figures), name)
	if err := f.Save(path); err != nil {
		return err
	}
	r.figures = append(r.figures, Figure{Name: name, Title: title, Path: path})
	return nil
}

// A pass renders one or more figures.
type pass struct {
	desc string
	run  func(r *Report) error
}

var passes = []pass{
	{"surface plot of the ppoisson solutions", (*Report).Surface},
	{"optimal omega surfaces", (*Report).OptimalOmega},
	{"iterations vs grid size at the optimal omega", (*Report).IterationsVsGridSize},
	{"time vs iterations", (*Report).TimeVsIters},
	{"residual error", (*Report).ResidualError},
	{"sweep analysis", (*Report).SweepAnalysis},
	{"latency analysis", (*Report).LatencyAnalysis},
}

// Run renders every figure in order, writes the index page, and
// returns the figures written. It stops at the first error.
func (r *Report) Run() ([]Figure, error) {
	r.figures = nil
	for _, p := range passes {
		r.logf("making %s", p.desc)
		n := len(r.figures)
		if err := p.run(r); err != nil {
			return r.figures, fmt.Errorf("%s: %w", p.desc, err)
		}
		for _, f := range r.figures[n:] {
			r.logf("wrote %s", f.Path)
		}
	}
	index, err := r.WriteIndex()
	if err != nil {
		return r.figures, err
	}
	r.logf("wrote %s", index)
	return r.figures, nil
}

// Figures returns the figures written so far.
func (r *Report) Figures() []Figure {
	return r.figures
}

// seriesLabel names the processor arrangement of a dump for legends
// and titles.
func seriesLabel(m *poissonfmt.Meta) string {
	switch {
	case !m.ProcGrid.IsZero():
		return m.ProcGrid.String()
	case m.NProc != 0:
		return fmt.Sprintf("nproc=%d", m.NProc)
	}
	return m.Header
}
