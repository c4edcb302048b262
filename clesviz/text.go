// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-cles/cles"
	"github.com/aclements/go-cles/distgeom"
	"github.com/aclements/go-gg/table"
)

func pct(x float64) string {
	p := 100 * x
	if p >= 9.5 {
		return fmt.Sprintf("%.0f%%", p)
	} else if p > 0.95 {
		return fmt.Sprintf("%.1f%%", p)
	} else {
		return fmt.Sprintf("%.2f%%", p)
	}
}

// printReport prints the metric table for effect size d followed by
// a narrative interpretation of each metric.
func printReport(w io.Writer, d float64, m cles.Metrics, sd float64, n int) {
	var names []string
	var values []float64
	m.Each(func(name string, value float64) {
		names = append(names, name)
		values = append(values, value)
	})
	tab := new(table.Builder).Add("metric", names).Add("value", values).Done()
	table.Fprint(w, tab, "%s", "%.4f")

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s chance that a value drawn from the treatment group exceeds one drawn from the control group\n", pct(m.ProbSuperiority))
	fmt.Fprintf(w, "%s of the two distributions' probability mass overlaps\n", pct(m.Overlap))
	fmt.Fprintf(w, "%s of the combined mass lies in non-overlapping tails (U1)\n", pct(m.U1))
	fmt.Fprintf(w, "%s of the treatment group exceeds the same proportion of the control group (U2)\n", pct(m.U2))
	fmt.Fprintf(w, "%s of the treatment group lies above the control mean (U3)\n", pct(m.U3))
	if d < 0 {
		fmt.Fprintf(w, "the effect size is negative, so \"treatment\" above is the lower-scoring group\n")
	}

	// Cross-check the closed forms against the geometry.
	if curves, err := distgeom.BuildCurves(d, sd, n); err == nil {
		fmt.Fprintf(w, "geometric check: area under the overlap envelope is %.4f (closed form %.4f)\n",
			curves.Overlap.Integral(), m.Overlap)
	}
}
