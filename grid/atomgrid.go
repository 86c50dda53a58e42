/*
 * atomgrid.go, part of dftcxx.
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

package grid

import (
	"math"

	dft "github.com/rkalescky/dftcxx"
	v3 "github.com/rkalescky/dftcxx/v3"
	"github.com/rkalescky/dftcxx/quad"
)

//atomicGrid builds the local grid of one atom: the product of the radial
//rule (already carrying the mapping Jacobian and the r^2 volume factor)
//and the angular rule, centered on the atom. The initial weight of each
//point is 4*pi * W_radial * w_angular; the 4*pi belongs to the angular
//rule, whose weights are stored relative to the full solid angle. Every
//point records the atom that generated it.
func atomicGrid(mol *dft.Molecule, atom int, rad *quad.Radial, ang *quad.Angular) []*GridPoint {
	center := mol.Coord(atom)
	cx := center.At(0, 0)
	cy := center.At(0, 1)
	cz := center.At(0, 2)
	points := make([]*GridPoint, 0, rad.Len()*ang.Len())
	for i := range rad.R {
		r := rad.R[i]
		wr := 4 * math.Pi * rad.W[i]
		for j := range ang.W {
			p := NewGridPoint(v3.Vec(cx+r*ang.X[j], cy+r*ang.Y[j], cz+r*ang.Z[j]))
			p.SetWeight(wr * ang.W[j])
			p.setAtom(atom, center)
			points = append(points, p)
		}
	}
	return points
}
