// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command clesviz translates a standardized mean-difference effect
// size (Cohen's d or Hedges' g) into common language effect size
// statistics and charts.
//
// clesviz takes a single effect size and renders one of two SVG
// charts grounding the statistics in the two normal distributions
// being compared: an "overlap" chart shading the probability mass
// the distributions share, or a "superiority" chart shading the
// portion of that mass at or below the control mean. With -table,
// clesviz instead prints the five statistics and a short narrative
// interpretation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"

	"github.com/aclements/go-cles/cles"
	"github.com/aclements/go-cles/clesplot"
	"github.com/aclements/go-cles/distgeom"
	"github.com/aclements/go-gg/gg"
	"github.com/kballard/go-shellquote"
)

func main() {
	log.SetPrefix("clesviz: ")
	log.SetFlags(0)

	var (
		flagSD    = flag.Float64("sd", 1, "standard deviation of both distributions")
		flagN     = flag.Int("n", 20000, "sample densities at `points` grid points")
		flagChart = flag.String("chart", "overlap", "render chart `type`: overlap or superiority")
		flagOut   = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable = flag.Bool("table", false, "print statistics and interpretation instead of a chart")
		flagView  = flag.String("view", "", "run `command` on the output file after writing it")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] effect-size\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	d, err := strconv.ParseFloat(flag.Arg(0), 64)
	if err != nil {
		log.Fatalf("bad effect size %q: %v", flag.Arg(0), err)
	}

	m, err := cles.Translate(d)
	if err != nil {
		log.Fatal(err)
	}

	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if *flagTable {
		printReport(f, d, m, *flagSD, *flagN)
		return
	}

	curves, err := distgeom.BuildCurves(d, *flagSD, *flagN)
	if err != nil {
		log.Fatal(err)
	}
	var plot *gg.Plot
	switch *flagChart {
	case "overlap":
		plot = clesplot.Overlap(curves)
	case "superiority":
		region := distgeom.SuperiorityRegion(curves.Overlap, 0)
		plot = clesplot.Superiority(curves, region)
	default:
		log.Fatalf("unknown chart type %q", *flagChart)
	}
	plot.Add(gg.Title(fmt.Sprintf("d = %g", d)))
	if err := plot.WriteSVG(f, 500, 350); err != nil {
		log.Fatal(err)
	}

	if *flagView != "" {
		if *flagOut == "" {
			log.Fatal("-view requires -o")
		}
		f.Close()
		view(*flagView, *flagOut)
	}
}

// view runs the user's viewer command on path.
func view(command, path string) {
	args, err := shellquote.Split(command)
	if err != nil {
		log.Fatalf("bad -view command: %v", err)
	}
	if len(args) == 0 {
		log.Fatal("empty -view command")
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		log.Fatal(err)
	}
}
