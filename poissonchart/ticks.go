// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poissonchart

import (
	"gonum.org/v1/plot"

	"golang.org/x/poissonviz/poissonunit"
)

// SITicks places ticks like plot.DefaultTicks and labels the major
// ones with a shared SI prefix.
type SITicks struct{}

var _ plot.Ticker = SITicks{}

func (SITicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	var major []float64
	for _, t := range ticks {
		if t.Label != "" {
			major = append(major, t.Value)
		}
	}
	s := poissonunit.CommonScale(major)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = s.Format(ticks[i].Value)
		}
	}
	return ticks
}
