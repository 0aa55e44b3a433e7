// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poissonfmt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseName(t *testing.T) {
	check := func(name string, want Record) {
		t.Helper()
		got, err := ParseName(name)
		if err != nil {
			t.Errorf("%s: unexpected error %s", name, err)
			return
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
		}
		// Parsing is deterministic.
		again, _ := ParseName(name)
		if !cmp.Equal(got, again) {
			t.Errorf("%s: second parse %v differs from first %v", name, again, got)
		}
	}

	check("ppoisson_procg=4x1_gs=800x800_times.dat", Record{
		"header": "ppoisson", "procg": "4x1", "gs": "800x800", "type": "times",
	})
	check("ppoisson_procg=2x2_gs=400x400_type.dat", Record{
		"header": "ppoisson", "procg": "2x2", "gs": "400x400", "type": "type",
	})
	// Key order is irrelevant.
	check("ppoisson_gs=800x800_procg=4x1_times.dat", Record{
		"header": "ppoisson", "procg": "4x1", "gs": "800x800", "type": "times",
	})
	// "=" takes precedence over ".".
	check("ppoisson2_gs=100x100_nproc=4_wl=1.90_wh=1.99_nomega=10_iters.dat", Record{
		"header": "ppoisson2", "gs": "100x100", "nproc": "4",
		"wl": "1.90", "wh": "1.99", "nomega": "10", "type": "iters",
	})
	check("ppoisson2_gs=100x100_omega=1.95.dat", Record{
		"header": "ppoisson2", "gs": "100x100", "omega": "1.95.dat",
	})
	// Last write wins.
	check("a_b_gs=1x1_gs=2x2_x.dat", Record{
		"header": "b", "gs": "2x2", "type": "x",
	})
	check("lonely", Record{"header": "lonely"})
	check("k=", Record{"k": ""})
}

func TestParseNameErrors(t *testing.T) {
	check := func(name, token string) {
		t.Helper()
		_, err := ParseName(name)
		var ne *NameError
		if !errors.As(err, &ne) {
			t.Errorf("%s: got error %v, want *NameError", name, err)
			return
		}
		if ne.Token != token {
			t.Errorf("%s: got token %q, want %q", name, ne.Token, token)
		}
	}
	check("", "")
	check("a__b.dat", "")
	check("a_k=v=w_b.dat", "k=v=w")
	check("a_=v_b.dat", "=v")
	check("a_times.tar.gz", "times.tar.gz")
}

func TestParseMeta(t *testing.T) {
	m, err := ParseMeta("ppoisson_procg=4x1_gs=800x400_times.dat")
	if err != nil {
		t.Fatal(err)
	}
	if m.Header != "ppoisson" {
		t.Errorf("got header %q, want ppoisson", m.Header)
	}
	if want := (Dims{4, 1}); m.ProcGrid != want {
		t.Errorf("got procg %v, want %v", m.ProcGrid, want)
	}
	if want := (Dims{800, 400}); m.GridSize != want {
		t.Errorf("got gs %v, want %v", m.GridSize, want)
	}
	if m.Category != Times {
		t.Errorf("got category %v, want times", m.Category)
	}
	if m.Procs() != 4 {
		t.Errorf("got %d procs, want 4", m.Procs())
	}
	if got, want := m.Series(), "{gs=800x400 header=ppoisson procg=4x1}"; got != want {
		t.Errorf("got series %s, want %s", got, want)
	}

	m, err = ParseMeta("ppoisson2_gs=100x100_nproc=9_sweeps.dat")
	if err != nil {
		t.Fatal(err)
	}
	if !m.ProcGrid.IsZero() || m.ProcGrid.String() != "" {
		t.Errorf("got procg %v, want absent", m.ProcGrid)
	}
	if m.Procs() != 9 || m.Category != Sweeps {
		t.Errorf("got procs=%d category=%v, want 9, sweeps", m.Procs(), m.Category)
	}

	m, err = ParseMeta("run_output.bin")
	if err != nil {
		t.Fatal(err)
	}
	if m.Category != Other || m.Type != "output" {
		t.Errorf("got category %v type %q, want other, output", m.Category, m.Type)
	}
	m, _ = ParseMeta("run")
	if m.Category != Unknown || m.Procs() != 0 {
		t.Errorf("got category %v procs %d, want unknown, 0", m.Category, m.Procs())
	}

	for _, bad := range []string{
		"p_procg=2_times.dat",
		"p_gs=0x4_times.dat",
		"p_gs=axb_times.dat",
		"p_nproc=-1_times.dat",
	} {
		if _, err := ParseMeta(bad); err == nil {
			t.Errorf("%s: got success, want error", bad)
		}
	}
}

func TestParseDims(t *testing.T) {
	check := func(s string, want Dims, ok bool) {
		t.Helper()
		got, err := ParseDims(s)
		if ok != (err == nil) {
			t.Errorf("%s: got error %v, want ok=%v", s, err, ok)
			return
		}
		if got != want {
			t.Errorf("%s: got %v, want %v", s, got, want)
		}
		if ok && got.String() != s {
			t.Errorf("%s: String() = %s", s, got.String())
		}
	}
	check("2x2", Dims{2, 2}, true)
	check("800x100", Dims{800, 100}, true)
	check("2x2x2", Dims{}, false)
	check("2", Dims{}, false)
	check("x2", Dims{}, false)
	check("2x0", Dims{}, false)
}

func TestCategoryString(t *testing.T) {
	for _, s := range []string{"times", "iters", "sweeps", "omegas"} {
		if got := ParseCategory(s).String(); got != s {
			t.Errorf("ParseCategory(%q).String() = %q", s, got)
		}
	}
	if got := Category(42).String(); got != "Category(42)" {
		t.Errorf("got %q", got)
	}
}
