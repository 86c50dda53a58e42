/*
 * point.go, part of dftcxx.
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
	"gonum.org/v1/gonum/mat"

	dft "github.com/rkalescky/dftcxx"
	v3 "github.com/rkalescky/dftcxx/v3"
)

//GridPoint is one quadrature node of the molecular grid: a fixed position,
//an integration weight, and cached per-point quantities (basis-function
//amplitudes and the local electron density). The weight takes into account
//the Jacobian of the radial mapping, the radial and angular quadrature
//weights, and the Becke partition factor.
type GridPoint struct {
	r       *v3.Matrix //position, fixed at construction
	w       float64
	atom    int        //index of the atom this point adheres to
	atomPos *v3.Matrix //non-owning view of that atom's coordinates
	amps    []float64  //amplitude of every basis function at r
	density float64    //current electron density at r
}

//NewGridPoint returns a grid point at position r with zero weight and no
//owning atom yet.
func NewGridPoint(r *v3.Matrix) *GridPoint {
	return &GridPoint{r: r, atom: -1}
}

//SetWeight sets the integration weight of the point.
func (G *GridPoint) SetWeight(w float64) { G.w = w }

//MultiplyWeight multiplies the weight by a factor. The Becke weighting
//engine uses it exactly once per point to apply the partition factor.
func (G *GridPoint) MultiplyWeight(f float64) { G.w *= f }

//setAtom links the point to the atom whose quadrature generated it. pos is
//a row view into the molecule coordinates and is never written through.
func (G *GridPoint) setAtom(i int, pos *v3.Matrix) {
	G.atom = i
	G.atomPos = pos
}

//Position returns the position of the grid point.
func (G *GridPoint) Position() *v3.Matrix { return G.r }

//AtomPosition returns the position of the atom the point is linked to.
func (G *GridPoint) AtomPosition() *v3.Matrix { return G.atomPos }

//Atom returns the index of the atom the point is linked to.
func (G *GridPoint) Atom() int { return G.atom }

//Weight returns the weight of the point in the numerical integration.
func (G *GridPoint) Weight() float64 { return G.w }

//Density returns the electron density at the point.
func (G *GridPoint) Density() float64 { return G.density }

//BasisFuncAmp returns the amplitudes of all basis functions at the point,
//as last computed by SetBasisFuncAmp.
func (G *GridPoint) BasisFuncAmp() []float64 { return G.amps }

//SetBasisFuncAmp evaluates every basis function of the molecule at the
//point and caches the amplitudes.
func (G *GridPoint) SetBasisFuncAmp(mol *dft.Molecule) {
	G.amps = mol.BasisFuncAmp(G.r, G.amps)
}

//SetDensity computes the electron density at the point as the bilinear
//form amp^T * P * amp over the cached amplitudes and the density matrix P.
//A density matrix whose size does not match the basis set is a programming
//error and panics (through gonum's dimension checks).
func (G *GridPoint) SetDensity(P mat.Matrix) {
	v := mat.NewVecDense(len(G.amps), G.amps)
	G.density = mat.Inner(v, P, v)
}

//ScaleDensity multiplies the stored density by a factor. Used to correct
//the quadrature discretization error in the integrated electron count.
func (G *GridPoint) ScaleDensity(f float64) { G.density *= f }
