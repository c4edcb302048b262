// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distgeom constructs the geometry used to visualize the
// separation between two equal-variance normal distributions: both
// density curves sampled over a shared grid, the pointwise-minimum
// overlap envelope, and the clipped region drawn by superiority
// charts.
//
// Everything here is pure data construction. Rendering the curves
// and regions as charts is the caller's concern.
package distgeom

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// A DensityFunc is a probability distribution that can evaluate its
// density at a point. stats.NormalDist is a DensityFunc.
type DensityFunc interface {
	PDF(x float64) float64
}

// A Curve is a density curve sampled over an ascending, evenly
// spaced grid. Curves produced together share their grid slice, so
// downstream operations never need interpolation.
type Curve struct {
	X []float64 // sample points, ascending
	Y []float64 // density at each sample point
}

// Integral returns the trapezoidal approximation of the area under
// the curve. For an overlap envelope this approximates the
// overlapping coefficient of the two underlying distributions.
func (c Curve) Integral() float64 {
	if len(c.X) < 2 {
		return 0
	}
	areas := make([]float64, len(c.X)-1)
	for i := range areas {
		areas[i] = (c.Y[i] + c.Y[i+1]) / 2 * (c.X[i+1] - c.X[i])
	}
	return vec.Sum(areas)
}

// Curves is the result of sampling a control and a treatment
// distribution over one shared grid.
type Curves struct {
	// Control and Treatment are the two density curves. BuildCurves
	// centers the control distribution at 0 and the treatment
	// distribution at the magnitude of the effect size.
	Control, Treatment Curve

	// Overlap is the pointwise minimum of Control and Treatment.
	// Its Y values are not probabilities, but the area under them
	// is the overlapping coefficient.
	Overlap Curve
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

// EvalCurves samples the control and treatment densities at n evenly
// spaced points from lo to hi inclusive and computes their pointwise
// minimum envelope.
//
// EvalCurves is the distribution-family-independent core of
// BuildCurves. Callers with other families (non-normal, unequal
// variance) can evaluate them here directly.
func EvalCurves(control, treatment DensityFunc, lo, hi float64, n int) (Curves, error) {
	if n < 2 {
		return Curves{}, &InvalidInputError{"grid points", float64(n), "need at least two"}
	}
	if !(lo < hi) {
		return Curves{}, &InvalidInputError{"grid bound", lo, fmt.Sprintf("must be below upper bound %v", hi)}
	}
	grid := vec.Linspace(lo, hi, n)
	cy := vec.Map(control.PDF, grid)
	ty := vec.Map(treatment.PDF, grid)
	oy := make([]float64, n)
	for i, y := range cy {
		oy[i] = math.Min(y, ty[i])
	}
	return Curves{
		Control:   Curve{grid, cy},
		Treatment: Curve{grid, ty},
		Overlap:   Curve{grid, oy},
	}, nil
}

// BuildCurves builds the density curves for a standardized effect
// size d between two normal distributions with common standard
// deviation sd. The control distribution is centered at 0 and the
// treatment distribution at |d|. The grid extends three standard
// deviations beyond each mean, which captures essentially all of
// both distributions' mass.
//
// n sets the grid resolution. BuildCurves returns an
// *InvalidInputError if d is not finite, sd is not positive and
// finite, or n < 2.
func BuildCurves(d, sd float64, n int) (Curves, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return Curves{}, &InvalidInputError{"effect size", d, "must be finite"}
	}
	if math.IsNaN(sd) || math.IsInf(sd, 0) || sd <= 0 {
		return Curves{}, &InvalidInputError{"standard deviation", sd, "must be positive and finite"}
	}
	control := stats.NormalDist{Mu: 0, Sigma: sd}
	treatment := stats.NormalDist{Mu: math.Abs(d), Sigma: sd}
	return EvalCurves(control, treatment, control.Mu-3*sd, treatment.Mu+3*sd, n)
}
