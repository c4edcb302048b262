// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distgeom

import (
	"math"
	"testing"
)

func TestSuperiorityRegion(t *testing.T) {
	for _, d := range []float64{0, 0.25, 0.8, 2} {
		c, err := BuildCurves(d, 1, 500)
		if err != nil {
			t.Fatalf("BuildCurves(%v) failed: %v", d, err)
		}
		r := SuperiorityRegion(c.Overlap, 0)

		if len(r.X) < 3 {
			t.Fatalf("d=%v: region has %d vertices, want at least 3", d, len(r.X))
		}
		if len(r.X) != len(r.Y) {
			t.Fatalf("d=%v: region has %d x values but %d y values", d, len(r.X), len(r.Y))
		}

		// Closed polygon: both ends on the baseline.
		if r.Y[0] != 0 || r.Y[len(r.Y)-1] != 0 {
			t.Errorf("d=%v: region ends at y=%v and y=%v, want both 0", d, r.Y[0], r.Y[len(r.Y)-1])
		}

		// The region never crosses the control mean.
		for i, x := range r.X {
			if x > 0 {
				t.Fatalf("d=%v: region vertex %d at x=%v, want x ≤ 0", d, i, x)
			}
		}

		// The polygon starts with a vertical edge at the grid's
		// left boundary and ends at the mean.
		if r.X[0] != c.Overlap.X[0] || r.X[1] != c.Overlap.X[0] {
			t.Errorf("d=%v: region starts at x=%v,%v, want both %v", d, r.X[0], r.X[1], c.Overlap.X[0])
		}
		if last := r.X[len(r.X)-1]; last != 0 {
			t.Errorf("d=%v: region ends at x=%v, want 0", d, last)
		}

		// Interior vertices trace the envelope.
		for i := 1; i < len(r.X)-1; i++ {
			if r.X[i] != c.Overlap.X[i-1] || r.Y[i] != c.Overlap.Y[i-1] {
				t.Fatalf("d=%v: region vertex %d is (%v, %v), want envelope point (%v, %v)",
					d, i, r.X[i], r.Y[i], c.Overlap.X[i-1], c.Overlap.Y[i-1])
			}
		}
	}
}

func TestSuperiorityRegionArea(t *testing.T) {
	// With identical distributions, the overlap envelope is the
	// full density, so the clipped region holds the mass below
	// the mean: one half.
	c, err := BuildCurves(0, 1, 2001)
	if err != nil {
		t.Fatalf("BuildCurves failed: %v", err)
	}
	r := SuperiorityRegion(c.Overlap, 0)
	got := Curve{r.X, r.Y}.Integral()
	if math.Abs(got-0.5) > 0.005 {
		t.Errorf("region area %v, want ≈0.5", got)
	}
}

func TestSuperiorityRegionOutsideGrid(t *testing.T) {
	c, err := BuildCurves(0.5, 1, 100)
	if err != nil {
		t.Fatalf("BuildCurves failed: %v", err)
	}

	// A mean left of the grid keeps no envelope points; the
	// region degenerates to a single baseline vertex.
	r := SuperiorityRegion(c.Overlap, c.Overlap.X[0]-1)
	if len(r.X) != 1 || r.Y[0] != 0 {
		t.Errorf("region for out-of-grid mean = %+v, want single baseline vertex", r)
	}

	// A mean right of the grid keeps every envelope point.
	r = SuperiorityRegion(c.Overlap, c.Overlap.X[len(c.Overlap.X)-1]+1)
	if len(r.X) != len(c.Overlap.X)+2 {
		t.Errorf("region for all-inclusive mean has %d vertices, want %d", len(r.X), len(c.Overlap.X)+2)
	}
}
