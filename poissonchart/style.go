// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poissonchart composes report figures with gonum/plot.
//
// Nothing in this package mutates package-level plotting state. All
// appearance settings travel in a Style value that is applied to
// each plot as it is created.
package poissonchart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style configures the appearance of figures.
type Style struct {
	FontSize    vg.Length
	FontVariant string // Font variant such as "Serif" or "Sans"

	LineWidth  vg.Length // Width of data lines
	AxisWidth  vg.Length // Width of axis and tick lines
	TickLength vg.Length // Length of major ticks
	GlyphSize  vg.Length // Radius of point markers

	// Width and Height are the default figure size. DPI is the
	// resolution of saved images.
	Width, Height vg.Length
	DPI           int

	Background color.Color
	// GridColor, if non-nil, draws grid lines behind the data.
	GridColor color.Color

	LegendTop, LegendLeft bool
}

// DefaultStyle returns the style used by the report: 15pt serif text,
// 1.5pt lines, a light grid, and 8x6 inch figures saved at 300 dpi.
func DefaultStyle() Style {
	return Style{
		FontSize:    vg.Points(15),
		FontVariant: "Serif",
		LineWidth:   vg.Points(1.5),
		AxisWidth:   vg.Points(1.5),
		TickLength:  vg.Points(5),
		GlyphSize:   vg.Points(3),
		Width:       8 * vg.Inch,
		Height:      6 * vg.Inch,
		DPI:         300,
		Background:  color.White,
		GridColor:   color.Gray{0xd8},
		LegendTop:   true,
	}
}

func (s Style) font(f *font.Font, scale float64) {
	f.Size = s.FontSize * vg.Length(scale)
	if s.FontVariant != "" {
		f.Variant = font.Variant(s.FontVariant)
	}
}

// Apply styles p according to s.
func (s Style) Apply(p *plot.Plot) {
	s.font(&p.Title.TextStyle.Font, 1)
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		s.font(&ax.Label.TextStyle.Font, 1)
		s.font(&ax.Tick.Label.Font, 0.8)
		ax.LineStyle.Width = s.AxisWidth
		ax.Tick.LineStyle.Width = s.AxisWidth
		ax.Tick.Length = s.TickLength
	}
	s.font(&p.Legend.TextStyle.Font, 0.8)
	p.Legend.Top = s.LegendTop
	p.Legend.Left = s.LegendLeft
	p.BackgroundColor = s.Background

	if s.GridColor != nil {
		grid := plotter.NewGrid()
		grid.Vertical.Color = s.GridColor
		grid.Horizontal.Color = s.GridColor
		p.Add(grid)
	}
}

// LineStyle returns a data line style of the given color.
func (s Style) LineStyle(c color.Color) draw.LineStyle {
	return draw.LineStyle{Color: c, Width: s.LineWidth}
}

// NewPlot returns a new plot with s applied.
func (s Style) NewPlot(title string) *plot.Plot {
	p := plot.New()
	s.Apply(p)
	p.Title.Text = title
	return p
}
