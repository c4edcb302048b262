// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cles converts standardized mean-difference effect sizes
// (Cohen's d or Hedges' g) into common language effect size
// statistics.
//
// A standardized mean difference states the separation between a
// control and a treatment group in pooled standard deviation units,
// which is hard to interpret directly. The common language statistics
// restate the same separation as probabilities and proportions. All
// of them depend only on the magnitude of the effect size; direction
// is a narrative concern left to the caller.
package cles

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Metrics is the set of common language statistics derived from a
// single effect size. Every field lies in [0, 1] for finite input.
type Metrics struct {
	// ProbSuperiority is the probability that a value drawn at
	// random from the treatment distribution exceeds a value
	// drawn independently from the control distribution.
	ProbSuperiority float64

	// Overlap is the overlapping coefficient: the proportion of
	// probability mass shared by the two distributions, equal to
	// the area under the pointwise minimum of their densities.
	Overlap float64

	// U1 is Cohen's U1, the proportion of the combined
	// distributions' mass that lies in the non-overlapping tails.
	U1 float64

	// U2 is Cohen's U2, the proportion of the treatment
	// distribution that exceeds the same proportion of the
	// control distribution.
	U2 float64

	// U3 is Cohen's U3, the proportion of the treatment
	// distribution that lies above the control mean.
	U3 float64
}

// Each calls f for each metric in presentation order with the
// metric's canonical name and value.
func (m Metrics) Each(f func(name string, value float64)) {
	f("probability of superiority", m.ProbSuperiority)
	f("overlap", m.Overlap)
	f("u1", m.U1)
	f("u2", m.U2)
	f("u3", m.U3)
}

// An InvalidInputError reports an argument that violates one of the
// package's contracts.
type InvalidInputError struct {
	Arg    string
	Value  float64
	Detail string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Arg, e.Value, e.Detail)
}

// Translate computes the common language statistics for effect size
// d. The sign of d is discarded: every metric describes the
// magnitude of the separation between the two distributions.
//
// Translate returns an *InvalidInputError if d is NaN or infinite.
func Translate(d float64) (Metrics, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return Metrics{}, &InvalidInputError{"effect size", d, "must be finite"}
	}
	d = math.Abs(d)
	// Φ(d/2) ≥ 1/2 for d ≥ 0, so the U1 quotient is well-defined
	// for every finite d. At d = 0 it is exactly 0/0.5 = 0.
	half := stats.StdNormal.CDF(d / 2)
	return Metrics{
		ProbSuperiority: stats.StdNormal.CDF(d / math.Sqrt2),
		Overlap:         2 * stats.StdNormal.CDF(-d/2),
		U1:              (2*half - 1) / half,
		U2:              half,
		U3:              stats.StdNormal.CDF(d),
	}, nil
}
