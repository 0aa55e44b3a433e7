// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"flag"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUsage(t *testing.T) {
	check := func(wantErr error, args ...string) {
		t.Helper()
		var stderr bytes.Buffer
		err := poissonreport(&stderr, args)
		if !errors.Is(err, wantErr) {
			t.Errorf("poissonreport %s: got %v, want %v", strings.Join(args, " "), err, wantErr)
		}
		if !strings.Contains(stderr.String(), "usage: poissonreport") {
			t.Errorf("poissonreport %s: no usage message in %q", strings.Join(args, " "), stderr.String())
		}
	}
	check(errUsage, "a", "b")
	check(errUsage, "-bogus")
	check(flag.ErrHelp, "-h")
}

func TestMissingRoot(t *testing.T) {
	opened := false
	openViewer = func(string) error {
		opened = true
		return nil
	}
	defer func() { openViewer = startViewer }()

	var stderr bytes.Buffer
	err := poissonreport(&stderr, []string{"-show", t.TempDir()})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v, want missing folder error", err)
	}
	if opened {
		t.Errorf("viewer opened after a failed report")
	}
	if !strings.Contains(stderr.String(), "poissonreport: making surface plot") {
		t.Errorf("no progress logged:\n%s", stderr.String())
	}
}

func TestViewerCommand(t *testing.T) {
	check := func(goos string, want ...string) {
		t.Helper()
		name, args := viewerCommand(goos, "fig/index.html")
		if diff := cmp.Diff(want, append([]string{name}, args...)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", goos, diff)
		}
	}
	check("linux", "xdg-open", "fig/index.html")
	check("freebsd", "xdg-open", "fig/index.html")
	check("darwin", "open", "fig/index.html")
	check("windows", "cmd", "/c", "start", "", "fig/index.html")
}
