// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distgeom

// A Region is a closed polygon in curve coordinates, suitable for
// filled rendering. Its first and last vertices lie on the y=0
// baseline.
type Region struct {
	X, Y []float64
}

// SuperiorityRegion restricts the overlap envelope to x ≤ mean and
// closes the result down to the baseline: the polygon starts at the
// grid's left edge on the baseline, rises to the envelope, follows
// it to the mean, and drops back to the baseline at (mean, 0).
//
// Superiority charts fill this region to show the portion of the
// shared probability mass at or below the control mean. Clipping the
// envelope, rather than a single density, keeps the filled area
// within the pointwise minimum of the two distributions.
func SuperiorityRegion(overlap Curve, mean float64) Region {
	n := 0
	for n < len(overlap.X) && overlap.X[n] <= mean {
		n++
	}
	x := make([]float64, 0, n+2)
	y := make([]float64, 0, n+2)
	if n > 0 {
		x = append(x, overlap.X[0])
		y = append(y, 0)
	}
	x = append(x, overlap.X[:n]...)
	y = append(y, overlap.Y[:n]...)
	x = append(x, mean)
	y = append(y, 0)
	return Region{x, y}
}
