// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poissonfmt

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// A DType is the element type of a raw dump.
type DType int

const (
	// Float64 is an IEEE-754 double.
	Float64 DType = iota
	// Int is the platform's native int, which the solver
	// writes as 8 bytes.
	Int
)

// Size returns the size in bytes of one element.
func (dt DType) Size() int {
	switch dt {
	case Float64, Int:
		return 8
	}
	panic(fmt.Sprintf("bad DType %v", dt))
}

func (dt DType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Int:
		return "int"
	}
	return fmt.Sprintf("DType(%d)", int(dt))
}

// A Sample is the decoded contents of a raw dump: a flat sequence of
// values with no embedded length or type. Exactly one of Floats or
// Ints is set, according to DType.
type Sample struct {
	DType  DType
	Floats []float64
	Ints   []int64
}

// Len returns the number of elements in s.
func (s *Sample) Len() int {
	if s.DType == Int {
		return len(s.Ints)
	}
	return len(s.Floats)
}

// Float64s returns the values of s as float64s. For a Float64 sample
// this is s.Floats itself; for an Int sample it is a converted copy.
func (s *Sample) Float64s() []float64 {
	if s.DType != Int {
		return s.Floats
	}
	out := make([]float64, len(s.Ints))
	for i, v := range s.Ints {
		out[i] = float64(v)
	}
	return out
}

// A FormatError reports a dump whose size is not a whole number of
// elements.
type FormatError struct {
	Path     string
	Size     int
	ElemSize int
}

func (e *FormatError) Error() string {
	path := e.Path
	if path == "" {
		path = "<data>"
	}
	return fmt.Sprintf("%s: %d bytes is not a multiple of the %d byte element size", path, e.Size, e.ElemSize)
}

// Decode reinterprets data as a contiguous sequence of dt values in
// native byte order.
func Decode(data []byte, dt DType) (*Sample, error) {
	size := dt.Size()
	if len(data)%size != 0 {
		return nil, &FormatError{Size: len(data), ElemSize: size}
	}
	n := len(data) / size
	s := &Sample{DType: dt}
	order := binary.NativeEndian
	switch dt {
	case Float64:
		s.Floats = make([]float64, n)
		for i := range s.Floats {
			s.Floats[i] = math.Float64frombits(order.Uint64(data[i*size:]))
		}
	case Int:
		s.Ints = make([]int64, n)
		for i := range s.Ints {
			s.Ints[i] = int64(order.Uint64(data[i*size:]))
		}
	}
	return s, nil
}

// Encode is the inverse of Decode. It is used to write test fixtures
// in the same layout the solver produces.
func (s *Sample) Encode() []byte {
	size := s.DType.Size()
	out := make([]byte, s.Len()*size)
	order := binary.NativeEndian
	switch s.DType {
	case Float64:
		for i, v := range s.Floats {
			order.PutUint64(out[i*size:], math.Float64bits(v))
		}
	case Int:
		for i, v := range s.Ints {
			order.PutUint64(out[i*size:], uint64(v))
		}
	}
	return out
}

// Load reads the whole file at path and decodes it as dt values.
//
// An unreadable file yields the underlying *os.PathError. A file
// whose size is not a multiple of the element size yields a
// *FormatError.
func Load(path string, dt DType) (*Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(data, dt)
	if fe, ok := err.(*FormatError); ok {
		fe.Path = path
		return nil, fe
	}
	return s, nil
}
