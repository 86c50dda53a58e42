/*
 * gridplot.go, part of dftcxx.
 *
 * Copyright 2024 Robert Kalescky
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package gridplot draws diagnostic plots for the integration grid: the
//Becke switching function at increasing smoothing orders, the distribution
//of the mapped radial quadrature points, and the partition weight of an
//atom sampled along a segment. All functions write an image file whose
//format gonum/plot infers from the extension.
package gridplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	dft "github.com/rkalescky/dftcxx"
	"github.com/rkalescky/dftcxx/grid"
	"github.com/rkalescky/dftcxx/quad"
	v3 "github.com/rkalescky/dftcxx/v3"
)

const profileSamples = 201

//Switching plots the switching function s(mu) = (1-f_k(mu))/2 for the
//smoothing orders 1..maxOrder over mu in [-1,1].
func Switching(maxOrder int, fname string) error {
	if maxOrder < 1 {
		return fmt.Errorf("gridplot: smoothing order %d out of range", maxOrder)
	}
	p := plot.New()
	p.Title.Text = "Becke switching function"
	p.X.Label.Text = "mu"
	p.Y.Label.Text = "s(mu)"
	args := make([]interface{}, 0, 2*maxOrder)
	for k := 1; k <= maxOrder; k++ {
		pts := make(plotter.XYs, profileSamples)
		for i := range pts {
			mu := -1 + 2*float64(i)/float64(profileSamples-1)
			pts[i].X = mu
			pts[i].Y = 0.5 * (1 - grid.Fk(k, mu))
		}
		args = append(args, fmt.Sprintf("k=%d", k), pts)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, fname)
}

//RadialPoints plots the mapped radial abscissae of an n-point rule with
//midpoint rm against their weights, on a log weight axis it is the easiest
//way to see whether a tier resolves the core region of an atom.
func RadialPoints(n int, rm float64, fname string) error {
	rad := quad.NewRadial(n, rm)
	pts := make(plotter.XYs, rad.Len())
	for i := range pts {
		pts[i].X = rad.R[i]
		pts[i].Y = rad.W[i]
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Radial quadrature, n=%d rm=%.2f", n, rm)
	p.X.Label.Text = "r (bohr)"
	p.Y.Label.Text = "weight"
	if err := plotutil.AddScatters(p, "points", pts); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, fname)
}

//PartitionProfile plots the Becke partition weight of the given atom
//sampled at n points along the segment from one point to another.
func PartitionProfile(mol *dft.Molecule, atom, n int, from, to *v3.Matrix, fname string) error {
	if n < 2 {
		return fmt.Errorf("gridplot: need at least 2 samples, got %d", n)
	}
	step := v3.Zeros(1)
	step.Sub(to, from)
	step.Scale(1/float64(n-1), step)
	r := v3.Zeros(1)
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		r.Scale(float64(i), step)
		r.Add(r, from)
		pts[i].X = float64(i) / float64(n-1)
		pts[i].Y = grid.PartitionWeight(mol, r, atom)
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Partition weight of atom %d", atom)
	p.X.Label.Text = "fraction of segment"
	p.Y.Label.Text = "P"
	if err := plotutil.AddLines(p, fmt.Sprintf("atom %d", atom), pts); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, fname)
}
