// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poissonfmt reads the raw output files written by the
// parallel Poisson solver experiments.
//
// Each experiment writes headerless binary dumps of float64 or
// native int values. Everything a consumer needs to know about a
// dump, such as the processor grid, the grid size, and what kind of
// measurement it holds, is encoded in its file name as a sequence of
// underscore-separated tokens:
//
//	<header>_<key1>=<value1>_<key2>=<value2>..._<category>.<extension>
//
// For example, "ppoisson_procg=2x2_gs=400x400_times.dat".
//
// ParseName decodes a file name into a free-form Record, and
// ParseMeta further decodes the well-known keys into a Meta. Load and
// Reshape turn the file contents into a Sample and then an Array
// whose shape is derived from the Meta. Files iterates over a
// directory of dumps in a fixed order.
package poissonfmt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// A Record is the set of key/value pairs decoded from a file name.
//
// Tokens of the form key=value are stored under key. A token of the
// form category.extension stores category under "type". Any other
// token is stored under "header". Later tokens overwrite earlier
// ones with the same key.
type Record map[string]string

// Well-known Record keys.
const (
	KeyHeader   = "header"
	KeyType     = "type"
	KeyProcGrid = "procg"
	KeyGridSize = "gs"
	KeyNProc    = "nproc"
)

// String returns the record in "key=value" form with keys sorted.
func (r Record) String() string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(r[k])
	}
	b.WriteByte('}')
	return b.String()
}

// A NameError reports a file name that does not follow the
// header/key=value/category.extension grammar.
type NameError struct {
	Name  string // The full file name
	Token string // The offending token
	Msg   string
}

func (e *NameError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("malformed file name %q: %s", e.Name, e.Msg)
	}
	return fmt.Sprintf("malformed file name %q: token %q: %s", e.Name, e.Token, e.Msg)
}

// ParseName decodes the metadata encoded in a file name. name must
// not contain a directory component.
//
// A token that contains "=" is always treated as a key/value pair,
// even if it also contains ".", so values such as "wl=1.90" are kept
// intact. Tokens that are empty, that contain more than one "=" or
// that have an empty key, and non key/value tokens with more than one
// "." are reported as a *NameError.
func ParseName(name string) (Record, error) {
	if name == "" {
		return nil, &NameError{Name: name, Msg: "empty name"}
	}
	rec := make(Record)
	for _, tok := range strings.Split(name, "_") {
		bad := func(msg string) error {
			return &NameError{Name: name, Token: tok, Msg: msg}
		}
		if tok == "" {
			return nil, bad("empty token")
		}
		if i := strings.IndexByte(tok, '='); i >= 0 {
			key, val := tok[:i], tok[i+1:]
			if key == "" {
				return nil, bad("empty key")
			}
			if strings.IndexByte(val, '=') >= 0 {
				return nil, bad("more than one '='")
			}
			rec[key] = val
		} else if i := strings.IndexByte(tok, '.'); i >= 0 {
			if strings.IndexByte(tok[i+1:], '.') >= 0 {
				return nil, bad("more than one '.'")
			}
			// The extension itself is discarded.
			rec[KeyType] = tok[:i]
		} else {
			rec[KeyHeader] = tok
		}
	}
	return rec, nil
}

// Dims is a two-dimensional extent, written "RxC" in file names.
type Dims struct {
	Rows, Cols int
}

// ParseDims parses an "RxC" string such as "2x2" or "800x800".
func ParseDims(s string) (Dims, error) {
	r, c, ok := strings.Cut(s, "x")
	if !ok {
		return Dims{}, fmt.Errorf("dimensions %q: want RxC", s)
	}
	rows, err := strconv.Atoi(r)
	if err != nil || rows <= 0 {
		return Dims{}, fmt.Errorf("dimensions %q: bad row count", s)
	}
	cols, err := strconv.Atoi(c)
	if err != nil || cols <= 0 {
		return Dims{}, fmt.Errorf("dimensions %q: bad column count", s)
	}
	return Dims{rows, cols}, nil
}

// N returns the number of cells, Rows*Cols.
func (d Dims) N() int { return d.Rows * d.Cols }

// IsZero reports whether d is the zero Dims, which is how a Meta
// reports an absent key.
func (d Dims) IsZero() bool { return d == Dims{} }

func (d Dims) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%dx%d", d.Rows, d.Cols)
}

// A Category is the kind of measurement held by a dump, taken from
// its "type" key.
type Category int

const (
	// Unknown means the name had no category token.
	Unknown Category = iota
	Times
	Iters
	Sweeps
	Omegas
	// Other is a category token not in the list above.
	Other
)

var categoryNames = map[string]Category{
	"times":  Times,
	"iters":  Iters,
	"sweeps": Sweeps,
	"omegas": Omegas,
}

// ParseCategory maps a "type" value to a Category. Values outside the
// known set map to Other, and "" maps to Unknown.
func ParseCategory(s string) Category {
	if s == "" {
		return Unknown
	}
	if c, ok := categoryNames[s]; ok {
		return c
	}
	return Other
}

func (c Category) String() string {
	switch c {
	case Unknown:
		return "unknown"
	case Times:
		return "times"
	case Iters:
		return "iters"
	case Sweeps:
		return "sweeps"
	case Omegas:
		return "omegas"
	case Other:
		return "other"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// A Meta is the typed form of a file name's metadata.
//
// Absent keys leave the corresponding field at its zero value.
type Meta struct {
	Header   string
	ProcGrid Dims // "procg"
	GridSize Dims // "gs"
	NProc    int  // "nproc"
	Category Category

	// Type is the raw "type" value, kept for categories
	// outside the known set.
	Type string

	// Fields holds every decoded token, including keys this
	// package does not interpret.
	Fields Record
}

// ParseMeta decodes name with ParseName and then interprets the
// "procg", "gs", "nproc", and "type" keys.
func ParseMeta(name string) (*Meta, error) {
	rec, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	m := &Meta{
		Header:   rec[KeyHeader],
		Type:     rec[KeyType],
		Category: ParseCategory(rec[KeyType]),
		Fields:   rec,
	}
	dims := func(key string, dst *Dims) error {
		v, ok := rec[key]
		if !ok {
			return nil
		}
		d, err := ParseDims(v)
		if err != nil {
			return &NameError{Name: name, Token: key + "=" + v, Msg: err.Error()}
		}
		*dst = d
		return nil
	}
	if err := dims(KeyProcGrid, &m.ProcGrid); err != nil {
		return nil, err
	}
	if err := dims(KeyGridSize, &m.GridSize); err != nil {
		return nil, err
	}
	if v, ok := rec[KeyNProc]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, &NameError{Name: name, Token: KeyNProc + "=" + v, Msg: "bad process count"}
		}
		m.NProc = n
	}
	return m, nil
}

// Procs returns the number of processes that produced the dump: the
// size of the processor grid if known, otherwise the "nproc" value.
// It returns 0 if neither key is present.
func (m *Meta) Procs() int {
	if !m.ProcGrid.IsZero() {
		return m.ProcGrid.N()
	}
	return m.NProc
}

// Get returns the raw value of key.
func (m *Meta) Get(key string) string {
	return m.Fields[key]
}

// Series returns the metadata that identifies the experiment a dump
// belongs to: every field except "type", in "key=value" form with
// keys sorted. Dumps of different categories from the same run share
// a Series.
func (m *Meta) Series() string {
	rec := make(Record, len(m.Fields))
	for k, v := range m.Fields {
		if k != KeyType {
			rec[k] = v
		}
	}
	return rec.String()
}
