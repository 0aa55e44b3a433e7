// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poissonunit formats measured values for figure labels and
// annotations.
package poissonunit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sci formats v in scientific notation with prec digits after the
// decimal point, as "m×10^e". The exponent keeps its sign only when
// negative and drops leading zeros; an exponent of zero yields just
// the mantissa. For example, Sci(0.00123, 2) is "1.23×10^-3" and
// Sci(4.5, 1) is "4.5".
func Sci(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', prec, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := ""
	if exp[0] == '-' {
		sign = "-"
	}
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		return mant
	}
	return mant + "×10^" + sign + exp
}

// A Scaler represents a scaling factor for a number and its SI
// prefix.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // SI prefix ("k", "M", "µ", etc)
}

// Format formats val at the scale of s and appends the prefix.
// For example, Scaler{1, 1e9, "G"}.Format(2.5e9) is "2.5G".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

var siPrefixes = []struct {
	exp    int
	prefix string
}{
	{12, "T"}, {9, "G"}, {6, "M"}, {3, "k"}, {0, ""}, {-3, "m"}, {-6, "µ"}, {-9, "n"},
}

// CommonScale returns a Scaler that shows at least three significant
// digits for every value in vals. The scale is chosen by the non-zero
// value closest to zero.
func CommonScale(vals []float64) Scaler {
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && !math.IsInf(v, 0) && !math.IsNaN(v) && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, ""}
	}
	for _, p := range siPrefixes {
		factor := math.Pow(10, float64(p.exp))
		// Compare against the printed form so the threshold
		// matches how the value will round.
		scaled, _ := strconv.ParseFloat(strconv.FormatFloat(min/factor, 'f', 3, 64), 64)
		switch {
		case scaled >= 100:
			return Scaler{1, factor, p.prefix}
		case scaled >= 10:
			return Scaler{2, factor, p.prefix}
		case scaled >= 1:
			return Scaler{3, factor, p.prefix}
		}
	}
	// Smaller than the smallest prefix: add digits.
	last := siPrefixes[len(siPrefixes)-1]
	factor := math.Pow(10, float64(last.exp))
	prec := 3 - int(math.Floor(math.Log10(min/factor)))
	if prec > 10 {
		prec = 10
	}
	return Scaler{prec, factor, last.prefix}
}

// Scale formats val with at least three significant digits and an SI
// prefix.
func Scale(val float64) string {
	return CommonScale([]float64{val}).Format(val)
}

// FormatFit renders the intercept and slope of a fitted line the way
// the timing figures annotate them.
func FormatFit(intercept, slope float64) string {
	return fmt.Sprintf("α: %s\nβ: %s", Sci(intercept, 2), Sci(slope, 2))
}
