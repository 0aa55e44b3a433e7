// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poissonfmt

import (
	"errors"
	"fmt"
	"math"
)

// ErrShapeMismatch is matched by every *ShapeMismatchError.
var ErrShapeMismatch = errors.New("shape mismatch")

// A ShapeMismatchError reports a Sample whose element count differs
// from the product of the requested shape.
type ShapeMismatchError struct {
	Path  string // May be empty
	Shape []int
	Want  int // Product of Shape, or -1 if it is not a positive int
	Got   int // Elements in the sample
}

func (e *ShapeMismatchError) Error() string {
	msg := fmt.Sprintf("cannot reshape %d elements to %v (%d elements)", e.Got, e.Shape, e.Want)
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// An Array is a Sample viewed as a multi-dimensional array in
// row-major order. Arrays share storage with the Sample they were
// made from.
type Array struct {
	// Shape is the extent of each dimension. It must not be
	// modified.
	Shape []int

	s       *Sample
	off     int
	strides []int
	n       int
}

// Reshape views s as an array of the given shape in row-major order.
// The product of shape must equal s.Len() exactly. There is no
// padding or truncation: any difference, including a non-positive
// dimension or a product that overflows int, is reported as a
// *ShapeMismatchError.
func Reshape(s *Sample, shape ...int) (*Array, error) {
	want := 1
	for _, d := range shape {
		if d <= 0 || want > math.MaxInt/d {
			want = -1
			break
		}
		want *= d
	}
	if len(shape) == 0 || want != s.Len() {
		return nil, &ShapeMismatchError{Shape: append([]int(nil), shape...), Want: want, Got: s.Len()}
	}
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return &Array{Shape: append([]int(nil), shape...), s: s, strides: strides, n: want}, nil
}

// LoadGrid loads the dump at path and reshapes it. Errors name path.
func LoadGrid(path string, dt DType, shape ...int) (*Array, error) {
	s, err := Load(path, dt)
	if err != nil {
		return nil, err
	}
	a, err := Reshape(s, shape...)
	if err != nil {
		err.(*ShapeMismatchError).Path = path
		return nil, err
	}
	return a, nil
}

// DType returns the element type of a.
func (a *Array) DType() DType { return a.s.DType }

// Len returns the total number of elements in a.
func (a *Array) Len() int { return a.n }

// NDim returns the number of dimensions of a.
func (a *Array) NDim() int { return len(a.Shape) }

func (a *Array) index(idx []int) int {
	if len(idx) != len(a.Shape) {
		panic(fmt.Sprintf("%d indexes for %d-dimensional array", len(idx), len(a.Shape)))
	}
	pos := a.off
	for i, x := range idx {
		if x < 0 || x >= a.Shape[i] {
			panic(fmt.Sprintf("index %d out of range [0,%d) in dimension %d", x, a.Shape[i], i))
		}
		pos += x * a.strides[i]
	}
	return pos
}

// At returns the element at idx as a float64.
func (a *Array) At(idx ...int) float64 {
	pos := a.index(idx)
	if a.s.DType == Int {
		return float64(a.s.Ints[pos])
	}
	return a.s.Floats[pos]
}

// Row returns the sub-array at index i of the leading dimension. For
// example, Row(0) of a (2, 4, 10) array is a (4, 10) array. The
// result shares storage with a. Row panics on a one-dimensional
// array.
func (a *Array) Row(i int) *Array {
	if len(a.Shape) < 2 {
		panic("Row of one-dimensional array")
	}
	if i < 0 || i >= a.Shape[0] {
		panic(fmt.Sprintf("row %d out of range [0,%d)", i, a.Shape[0]))
	}
	return &Array{
		Shape:   a.Shape[1:],
		s:       a.s,
		off:     a.off + i*a.strides[0],
		strides: a.strides[1:],
		n:       a.n / a.Shape[0],
	}
}

// Floats returns the elements of a in row-major order. For a Float64
// array the result aliases the underlying sample; for an Int array
// it is a converted copy.
func (a *Array) Floats() []float64 {
	if a.s.DType == Int {
		out := make([]float64, a.n)
		for i, v := range a.s.Ints[a.off : a.off+a.n] {
			out[i] = float64(v)
		}
		return out
	}
	return a.s.Floats[a.off : a.off+a.n : a.off+a.n]
}

// Ints returns the elements of an Int array in row-major order. The
// result aliases the underlying sample. Ints panics on a Float64
// array.
func (a *Array) Ints() []int64 {
	if a.s.DType != Int {
		panic("Ints of " + a.s.DType.String() + " array")
	}
	return a.s.Ints[a.off : a.off+a.n : a.off+a.n]
}
