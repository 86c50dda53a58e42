/*
 * basis.go, part of dftcxx.
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

package dft

import (
	"fmt"
	"math"

	v3 "github.com/rkalescky/dftcxx/v3"
)

//GTO is a primitive Cartesian Gaussian. The contraction coefficient stored
//here is premultiplied by the primitive normalization constant.
type GTO struct {
	alpha float64
	coef  float64
}

//CGF is a contracted Cartesian Gaussian basis function: a fixed linear
//combination of primitives sharing a center and the integer powers (l,m,n)
//of the Cartesian prefactor. The contraction is normalized to unit
//self-overlap on construction, so a density matrix equal to the identity
//describes one electron per basis function.
type CGF struct {
	l, m, n int
	prims   []GTO
	atom    int        //index of the owning atom within its molecule
	center  *v3.Matrix //row view into the molecule coordinates
}

//NewCGF builds a contracted Gaussian with the given Cartesian powers,
//primitive exponents and contraction coefficients. The primitives are
//normalized individually and the contraction is renormalized as a whole.
//The function has no center until it is added to a molecule with AddBasis.
func NewCGF(l, m, n int, alphas, coefs []float64) (*CGF, error) {
	if l < 0 || m < 0 || n < 0 {
		return nil, CError{fmt.Sprintf("Negative Cartesian powers (%d,%d,%d)", l, m, n), []string{"NewCGF"}}
	}
	if len(alphas) == 0 || len(alphas) != len(coefs) {
		return nil, CError{fmt.Sprintf("Got %d exponents and %d coefficients", len(alphas), len(coefs)), []string{"NewCGF"}}
	}
	C := &CGF{l: l, m: m, n: n, atom: -1}
	for i, a := range alphas {
		if a <= 0 {
			return nil, CError{fmt.Sprintf("Non-positive exponent %f", a), []string{"NewCGF"}}
		}
		C.prims = append(C.prims, GTO{a, coefs[i] * primNorm(l, m, n, a)})
	}
	//Renormalize the contraction to unit self-overlap. For two primitives
	//on the same center with joint exponent g the overlap has the closed
	//form (2l-1)!!(2m-1)!!(2n-1)!!/(2g)^(l+m+n) * (pi/g)^(3/2).
	dfs := dfact(2*l-1) * dfact(2*m-1) * dfact(2*n-1)
	L := float64(l + m + n)
	s := 0.0
	for i := range C.prims {
		for j := range C.prims {
			g := C.prims[i].alpha + C.prims[j].alpha
			s += C.prims[i].coef * C.prims[j].coef * dfs / math.Pow(2*g, L) * math.Pow(math.Pi/g, 1.5)
		}
	}
	f := 1 / math.Sqrt(s)
	for i := range C.prims {
		C.prims[i].coef *= f
	}
	return C, nil
}

//primNorm returns the normalization constant of a primitive Cartesian
//Gaussian with powers (l,m,n) and exponent alpha.
func primNorm(l, m, n int, alpha float64) float64 {
	dfs := dfact(2*l-1) * dfact(2*m-1) * dfact(2*n-1)
	L := float64(l + m + n)
	s := dfs / math.Pow(4*alpha, L) * math.Pow(math.Pi/(2*alpha), 1.5)
	return 1 / math.Sqrt(s)
}

//dfact returns the double factorial n!! as a float64, with (-1)!! = 0!! = 1.
func dfact(n int) float64 {
	r := 1.0
	for ; n > 1; n -= 2 {
		r *= float64(n)
	}
	return r
}

//Amp returns the amplitude of the basis function at the point r (the first
//vector of r). It panics if the function has not been added to a molecule.
func (C *CGF) Amp(r *v3.Matrix) float64 {
	if C.center == nil {
		panic(PanicMsg("dft: CGF has no center, add it to a molecule first"))
	}
	dx := r.At(0, 0) - C.center.At(0, 0)
	dy := r.At(0, 1) - C.center.At(0, 1)
	dz := r.At(0, 2) - C.center.At(0, 2)
	rr := dx*dx + dy*dy + dz*dz
	pre := 1.0
	for i := 0; i < C.l; i++ {
		pre *= dx
	}
	for i := 0; i < C.m; i++ {
		pre *= dy
	}
	for i := 0; i < C.n; i++ {
		pre *= dz
	}
	radial := 0.0
	for _, p := range C.prims {
		radial += p.coef * math.Exp(-p.alpha*rr)
	}
	return pre * radial
}

//Atom returns the index of the atom the function is centered on, or -1 if
//the function has not been added to a molecule yet.
func (C *CGF) Atom() int { return C.atom }

//Powers returns the Cartesian powers (l,m,n) of the function.
func (C *CGF) Powers() (int, int, int) { return C.l, C.m, C.n }
