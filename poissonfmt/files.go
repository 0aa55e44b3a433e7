// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poissonfmt

import (
	"fmt"
	"path/filepath"
	"sort"
)

// DefaultPattern matches the dumps written by the solver.
const DefaultPattern = "*.dat"

// An Entry is one dump discovered by Files.
type Entry struct {
	Path string // Path of the file, including Dir
	Name string // Base name of the file
	Meta *Meta
}

// Load reads the entry's dump as dt values.
func (e *Entry) Load(dt DType) (*Sample, error) {
	return Load(e.Path, dt)
}

// LoadGrid reads the entry's dump and reshapes it.
func (e *Entry) LoadGrid(dt DType, shape ...int) (*Array, error) {
	return LoadGrid(e.Path, dt, shape...)
}

// A Files iterates over the dumps in a directory.
//
// Entries are produced in lexicographic order of path, and each
// entry's metadata is decoded before the entry is returned. The first
// error, either from listing the directory or from decoding a file
// name, stops iteration. There is no skip-and-continue: a malformed
// name means the experiment that produced it needs fixing.
type Files struct {
	// Dir is the directory to read.
	Dir string

	// Pattern is a filepath.Match pattern selecting files in Dir.
	// If empty, DefaultPattern is used.
	Pattern string

	// paths is the sequence of remaining paths, or nil if this
	// Files has not started yet.
	paths []string

	entry *Entry
	err   error
}

// init does first-use initialization of f.
func (f *Files) init() {
	f.paths = []string{}
	pat := f.Pattern
	if pat == "" {
		pat = DefaultPattern
	}
	paths, err := filepath.Glob(filepath.Join(f.Dir, pat))
	if err != nil {
		f.err = fmt.Errorf("listing %s: %w", f.Dir, err)
		return
	}
	// Glob already sorts, but that is not part of its contract.
	sort.Strings(paths)
	f.paths = paths
}

// Scan advances to the next entry and reports whether there is one.
// The caller should use Entry to get it. When Scan returns false, the
// caller should check Err.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.paths == nil {
		f.init()
		if f.err != nil {
			return false
		}
	}
	if len(f.paths) == 0 {
		f.entry = nil
		return false
	}
	path := f.paths[0]
	f.paths = f.paths[1:]

	name := filepath.Base(path)
	meta, err := ParseMeta(name)
	if err != nil {
		f.err = fmt.Errorf("%s: %w", path, err)
		f.entry = nil
		return false
	}
	f.entry = &Entry{Path: path, Name: name, Meta: meta}
	return true
}

// Entry returns the entry that was just read by Scan.
func (f *Files) Entry() *Entry {
	return f.entry
}

// Err returns the error that stopped Scan, if any. If Scan stopped
// because it reached the end of the directory, Err returns nil.
func (f *Files) Err() error {
	return f.err
}

// Glob returns every entry in dir matching pattern, in lexicographic
// order. It stops at the first error.
func Glob(dir, pattern string) ([]*Entry, error) {
	f := &Files{Dir: dir, Pattern: pattern}
	var out []*Entry
	for f.Scan() {
		out = append(out, f.Entry())
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
