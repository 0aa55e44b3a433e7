// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Poissonreport renders the figures of the parallel Poisson solver
// report from the dumps its experiments write.
//
// Usage:
//
//	poissonreport [-show] [root]
//
// Poissonreport reads the experiment folders under root (default ".")
//
//	assignment_1/output            solution grids
//	assignment_1/ppoisson_times    per-omega times, iterations, and omegas
//	assignment_1/timeviters        per-iteration timing traces
//	assignment_1/error_analysis    residual error traces
//	assignment_1/sweep_analysis    sweep size experiments
//	assignment_1/latency_analysis  communication overhead and byte counts
//
// and writes PNG figures and an index.html listing them to
// root/report/figures. Every dump is a headerless array of float64 or
// native int values whose shape and meaning are encoded in its file
// name, as in
//
//	ppoisson_procg=2x2_gs=400x400_times.dat
//
// The -show flag opens the index page in the system viewer once all
// figures are written.
//
// A missing folder or a dump that cannot be read or reshaped stops
// the report with a message naming the figure and the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/poissonviz/report"
)

var exit = os.Exit // replaced during testing

var errUsage = errors.New("usage error")

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "usage: poissonreport [-show] [root]\n")
	fmt.Fprintf(w, "options:\n")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func main() {
	log.SetPrefix("poissonreport: ")
	log.SetFlags(0)
	err := poissonreport(os.Stderr, os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		exit(0)
	case errors.Is(err, errUsage):
		exit(2)
	default:
		log.Fatal(err)
	}
}

// poissonreport runs the report for args, logging progress to wErr.
func poissonreport(wErr io.Writer, args []string) error {
	fs := flag.NewFlagSet("poissonreport", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	show := fs.Bool("show", false, "open the figures in the system viewer after writing them")
	if err := fs.Parse(args); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(wErr, "poissonreport: %v\n", err)
			err = errUsage
		}
		usage(wErr, fs)
		return err
	}
	if fs.NArg() > 1 {
		usage(wErr, fs)
		return errUsage
	}

	layout := report.DefaultLayout
	if fs.NArg() == 1 {
		layout.Root = fs.Arg(0)
	}
	r := report.New(layout, log.New(wErr, "poissonreport: ", 0))
	if _, err := r.Run(); err != nil {
		return err
	}
	if *show {
		return openViewer(filepath.Join(layout.Path(layout.Figures), "index.html"))
	}
	return nil
}
