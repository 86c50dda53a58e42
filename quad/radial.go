/*
 * radial.go, part of dftcxx.
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

//Package quad supplies the quadrature tables consumed by the grid package:
//a Gauss-Chebyshev radial rule mapped onto the semi-infinite radial axis,
//Lebedev angular rules on the unit sphere, and real spherical harmonics
//used to certify the angular rules.
package quad

import (
	"math"
)

//GaussChebyshev returns the n nodes and weights of the Gauss-Chebyshev
//quadrature of the second kind on (-1,1): x_i = cos(i*pi/(n+1)),
//w_i = pi/(n+1) * sin^2(i*pi/(n+1)). The rule integrates
//f(x)*sqrt(1-x^2) exactly for polynomial f up to degree 2n-1.
func GaussChebyshev(n int) (x, w []float64) {
	x = make([]float64, n)
	w = make([]float64, n)
	for i := 1; i <= n; i++ {
		t := float64(i) * math.Pi / float64(n+1)
		s := math.Sin(t)
		x[i-1] = math.Cos(t)
		w[i-1] = math.Pi / float64(n+1) * s * s
	}
	return x, w
}

//Radial is a quadrature on (0, inf) for integrals of the form
//int_0^inf F(r) r^2 dr ~= sum_i W[i]*F(R[i]). The weights fold in the
//inverse Chebyshev weight function, the Jacobian of the Becke mapping and
//the spherical r^2 volume factor.
type Radial struct {
	R []float64
	W []float64
}

//NewRadial builds an n-point radial quadrature scaled by the midpoint rm
//(half of the points fall inside r < rm). The Gauss-Chebyshev nodes x on
//(-1,1) are mapped onto r = rm*(1+x)/(1-x) (Becke, 1988), whose Jacobian
//is dr/dx = 2*rm/(1-x)^2.
func NewRadial(n int, rm float64) *Radial {
	if n < 1 || rm <= 0 {
		panic(PanicMsg("quad: radial quadrature needs n >= 1 and rm > 0"))
	}
	x, w := GaussChebyshev(n)
	rad := &Radial{R: make([]float64, n), W: make([]float64, n)}
	for i := range x {
		omx := 1 - x[i]
		r := rm * (1 + x[i]) / omx
		jac := 2 * rm / (omx * omx)
		//w[i] carries the Chebyshev weight function sqrt(1-x^2); divide
		//it out to integrate plain F, then apply the Jacobian and r^2.
		rad.R[i] = r
		rad.W[i] = w[i] / math.Sqrt(1-x[i]*x[i]) * jac * r * r
	}
	return rad
}

//Len returns the number of points of the rule.
func (Q *Radial) Len() int { return len(Q.R) }

//PanicMsg is a message used for panics. It satisfies the error interface.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
