// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/generic/slice"

	"golang.org/x/poissonviz/poissonfmt"
)

// A run is the set of dumps written by one experiment run: entries
// whose metadata differs only in category.
type run struct {
	key     string
	meta    *poissonfmt.Meta // Metadata of the first entry
	entries map[poissonfmt.Category]*poissonfmt.Entry
}

func (g *run) get(c poissonfmt.Category) *poissonfmt.Entry {
	return g.entries[c]
}

// need returns the entry of category c, or an error naming the run.
func (g *run) need(c poissonfmt.Category) (*poissonfmt.Entry, error) {
	e := g.entries[c]
	if e == nil {
		return nil, fmt.Errorf("run %s has no %s dump", g.key, c)
	}
	return e, nil
}

// groupRuns groups entries into runs, in order of each run's first
// entry. Dumps of unknown or other categories are skipped. Two dumps
// of the same category in one run is an error.
func groupRuns(entries []*poissonfmt.Entry) ([]*run, error) {
	var out []*run
	byKey := make(map[string]*run)
	for _, e := range entries {
		if c := e.Meta.Category; c == poissonfmt.Unknown || c == poissonfmt.Other {
			continue
		}
		key := e.Meta.Series()
		g := byKey[key]
		if g == nil {
			g = &run{key: key, meta: e.Meta, entries: make(map[poissonfmt.Category]*poissonfmt.Entry)}
			byKey[key] = g
			out = append(out, g)
		}
		if prev := g.entries[e.Meta.Category]; prev != nil {
			return nil, fmt.Errorf("%s and %s are both %s dumps of run %s", prev.Name, e.Name, e.Meta.Category, key)
		}
		g.entries[e.Meta.Category] = e
	}
	return out, nil
}

// sortByGridSize orders runs by grid size, keeping the listing order
// for equal sizes.
func sortByGridSize(runs []*run) {
	sort.SliceStable(runs, func(i, j int) bool {
		a, b := runs[i].meta.GridSize, runs[j].meta.GridSize
		if a.Rows != b.Rows {
			return a.Rows < b.Rows
		}
		return a.Cols < b.Cols
	})
}

// nub returns the distinct strings of ss in order of first
// appearance.
func nub(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	return slice.Nub(ss).([]string)
}

// indexOf returns the position of s in list, or -1.
func indexOf(list []string, s string) int {
	return slice.Index(list, s)
}

// A legend tracks which series already have a legend entry in a
// multi-panel figure.
type legend map[string]bool

// label returns name the first time it is called with name, and ""
// after that.
func (l legend) label(name string) string {
	if l[name] {
		return ""
	}
	l[name] = true
	return name
}
