// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poissonunit

import (
	"math"
	"testing"
)

func TestSci(t *testing.T) {
	check := func(v float64, prec int, want string) {
		t.Helper()
		if got := Sci(v, prec); got != want {
			t.Errorf("Sci(%v, %d) = %q, want %q", v, prec, got, want)
		}
	}
	check(0.00123, 2, "1.23×10^-3")
	check(4.5, 1, "4.5")
	check(12345, 2, "1.23×10^4")
	check(-2.5e-11, 1, "-2.5×10^-11")
	check(1e100, 2, "1.00×10^100")
	check(0, 2, "0.00")
	check(math.Inf(1), 2, "+Inf")
}

func TestScale(t *testing.T) {
	check := func(v float64, want string) {
		t.Helper()
		if got := Scale(v); got != want {
			t.Errorf("Scale(%v) = %q, want %q", v, got, want)
		}
	}
	check(0, "0.000")
	check(1, "1.000")
	check(9.9996, "10.00")
	check(123456789, "123.5M")
	check(2.5e9, "2.500G")
	check(0.5, "500.0m")
	check(999.9996, "1.000k")
	check(-1500, "-1.500k")
}

func TestCommonScale(t *testing.T) {
	s := CommonScale([]float64{1e3, 2.5e6, 0})
	if s.Prefix != "k" || s.Prec != 3 {
		t.Errorf("got %+v, want k prefix with 3 digits", s)
	}
	if got := s.Format(2.5e6); got != "2500.000k" {
		t.Errorf("Format(2.5e6) = %q", got)
	}
	if s := CommonScale([]float64{math.NaN(), math.Inf(1)}); s.Factor != 1 {
		t.Errorf("got %+v for non-finite values", s)
	}
}

func TestFormatFit(t *testing.T) {
	if got, want := FormatFit(2.5e-3, 4e-4), "α: 2.50×10^-3\nβ: 4.00×10^-4"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
