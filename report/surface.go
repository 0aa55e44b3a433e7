// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"

	"golang.org/x/poissonviz/poissonchart"
	"golang.org/x/poissonviz/poissonfmt"
)

// A Solution is one solved potential field.
type Solution struct {
	Meta *poissonfmt.Meta
	Phi  *poissonfmt.Array // Shape (gs rows, gs cols)
}

// LoadSolutions reads every solution dump in dir, in name order. Each
// dump must carry a "gs" key giving its shape.
func LoadSolutions(dir string) ([]Solution, error) {
	entries, err := poissonfmt.Glob(dir, poissonfmt.DefaultPattern)
	if err != nil {
		return nil, err
	}
	var out []Solution
	for _, e := range entries {
		gs := e.Meta.GridSize
		if gs.IsZero() {
			return nil, fmt.Errorf("%s: no grid size", e.Path)
		}
		phi, err := e.LoadGrid(poissonfmt.Float64, gs.Rows, gs.Cols)
		if err != nil {
			return nil, err
		}
		out = append(out, Solution{e.Meta, phi})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no solution dumps in %s", dir)
	}
	return out, nil
}

// Surface renders every solution as a panel of poisson_surface.png.
func (r *Report) Surface() error {
	dir, err := r.Layout.inputDir(r.Layout.Solutions)
	if err != nil {
		return err
	}
	sols, err := LoadSolutions(dir)
	if err != nil {
		return err
	}

	cols := r.params().SurfaceColumns
	if cols < 1 || cols > len(sols) {
		cols = len(sols)
	}
	rows := (len(sols) + cols - 1) / cols
	fig := poissonchart.NewFigure(r.Style, rows, cols)
	for i, sol := range sols {
		g, err := poissonchart.GridOf(sol.Phi, nil, nil)
		if err != nil {
			return err
		}
		p := fig.Index(i)
		p.Title.Text = seriesLabel(sol.Meta)
		if i == 0 {
			p.X.Label.Text = "X"
			p.Y.Label.Text = "Y"
		}
		r.Style.AddSurface(p, g)
	}
	for i := len(sols); i < rows*cols; i++ {
		fig.Remove(i/cols, i%cols)
	}
	return r.save(fig, "poisson_surface.png", "Solution φ of each processor grid")
}
