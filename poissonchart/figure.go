// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poissonchart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// A Figure is a grid of plot panels saved as a single image.
type Figure struct {
	Style Style

	// Title, if non-empty, is drawn above all panels.
	Title string

	// Width and Height override the style's figure size when
	// non-zero.
	Width, Height vg.Length

	rows, cols int
	panels     [][]*plot.Plot
}

// NewFigure returns a figure of rows x cols panels, each a new plot
// with s applied.
func NewFigure(s Style, rows, cols int) *Figure {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("bad figure layout %dx%d", rows, cols))
	}
	f := &Figure{Style: s, rows: rows, cols: cols}
	f.panels = make([][]*plot.Plot, rows)
	for r := range f.panels {
		f.panels[r] = make([]*plot.Plot, cols)
		for c := range f.panels[r] {
			f.panels[r][c] = s.NewPlot("")
		}
	}
	return f
}

// Dims returns the panel layout of f.
func (f *Figure) Dims() (rows, cols int) { return f.rows, f.cols }

// Panel returns the plot at row r, column c.
func (f *Figure) Panel(r, c int) *plot.Plot {
	return f.panels[r][c]
}

// Index returns the i'th panel in row-major order.
func (f *Figure) Index(i int) *plot.Plot {
	return f.panels[i/f.cols][i%f.cols]
}

// Remove drops the panel at row r, column c so its tile stays empty.
func (f *Figure) Remove(r, c int) {
	f.panels[r][c] = nil
}

func (f *Figure) size() (w, h vg.Length) {
	w, h = f.Style.Width, f.Style.Height
	if f.Width != 0 {
		w = f.Width
	}
	if f.Height != 0 {
		h = f.Height
	}
	return w, h
}

// Draw renders f onto dc.
func (f *Figure) Draw(dc draw.Canvas) {
	if f.Title != "" {
		sty := text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, f.Style.FontSize),
			Handler: plot.DefaultTextHandler,
			XAlign:  draw.XCenter,
			YAlign:  draw.YTop,
		}
		if f.Style.FontVariant != "" {
			sty.Font.Variant = font.Variant(f.Style.FontVariant)
		}
		pad := vg.Millimeter
		dc.FillText(sty, vg.Point{X: dc.Center().X, Y: dc.Max.Y - pad}, f.Title)
		dc = draw.Crop(dc, 0, 0, 0, -(sty.Height(f.Title) + 2*pad))
	}
	tiles := draw.Tiles{
		Rows:      f.rows,
		Cols:      f.cols,
		PadX:      4 * vg.Millimeter,
		PadY:      4 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  2 * vg.Millimeter,
	}
	canvases := plot.Align(f.panels, tiles, dc)
	for r := range f.panels {
		for c, p := range f.panels[r] {
			if p != nil {
				p.Draw(canvases[r][c])
			}
		}
	}
}

// Save writes f to path as a PNG image, creating the directory if
// needed.
func (f *Figure) Save(path string) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o777); err != nil {
			return err
		}
	}
	w, h := f.size()
	bg := f.Style.Background
	if bg == nil {
		bg = color.White
	}
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(f.Style.DPI), vgimg.UseBackgroundColor(bg))
	f.Draw(draw.New(img))

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(out); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
