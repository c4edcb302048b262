// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clesplot renders common language effect size geometry as
// gg plots.
//
// Both chart variants overlay the control and treatment density
// curves from package distgeom; they differ in which region they
// shade. The overlap chart shades the probability mass the
// distributions share. The superiority chart shades the portion of
// that mass at or below the control mean.
package clesplot

import (
	"image/color"

	"github.com/aclements/go-cles/distgeom"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

var (
	controlColor   = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
	treatmentColor = color.RGBA{0xff, 0x7f, 0x0e, 0xff}
	regionFill     = color.Gray{192}
)

// Overlap builds the overlap chart: both density curves drawn over
// the shaded overlap envelope.
func Overlap(c distgeom.Curves) *gg.Plot {
	plot := gg.NewPlot(curveTable(c))
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.LayerArea{
		X:     "value",
		Upper: "overlap density",
		Fill:  plot.Const(regionFill),
	})
	addCurves(plot, c)
	return plot
}

// Superiority builds the superiority chart: both density curves
// drawn over the shaded region, which is typically
// distgeom.SuperiorityRegion of c's overlap envelope.
func Superiority(c distgeom.Curves, region distgeom.Region) *gg.Plot {
	plot := gg.NewPlot(regionTable(region))
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.LayerArea{
		X:     "value",
		Upper: "region density",
		Fill:  plot.Const(regionFill),
	})
	plot.SetData(curveTable(c))
	addCurves(plot, c)
	return plot
}

// addCurves layers the two density curves and their mean annotations
// on top of whatever plot already holds. The plot's data must be a
// curveTable.
func addCurves(plot *gg.Plot, c distgeom.Curves) {
	plot.Add(gg.LayerLines{
		X:     "value",
		Y:     "control density",
		Color: plot.Const(controlColor),
	})
	plot.Add(gg.LayerLines{
		X:     "value",
		Y:     "treatment density",
		Color: plot.Const(treatmentColor),
	})

	// Tag each distribution at its peak, which for a normal
	// density is its mean.
	plot.SetData(meanTable(c))
	plot.Add(gg.LayerTags{X: "value", Y: "density", Label: "mean"})

	plot.Add(gg.AxisLabel("x", "value (arbitrary unit)"))
	plot.Add(gg.AxisLabel("y", "Density"))
}

func curveTable(c distgeom.Curves) *table.Table {
	return new(table.Builder).
		Add("value", c.Control.X).
		Add("control density", c.Control.Y).
		Add("treatment density", c.Treatment.Y).
		Add("overlap density", c.Overlap.Y).
		Done()
}

func regionTable(r distgeom.Region) *table.Table {
	return new(table.Builder).
		Add("value", r.X).
		Add("region density", r.Y).
		Done()
}

func meanTable(c distgeom.Curves) *table.Table {
	cx, cy := peak(c.Control)
	tx, ty := peak(c.Treatment)
	return new(table.Builder).
		Add("value", []float64{cx, tx}).
		Add("density", []float64{cy, ty}).
		Add("mean", []string{"control mean", "treatment mean"}).
		Done()
}

// peak returns the grid point with the highest density.
func peak(c distgeom.Curve) (x, y float64) {
	for i, yi := range c.Y {
		if i == 0 || yi > y {
			x, y = c.X[i], yi
		}
	}
	return
}
