/*
 * sphharm.go, part of dftcxx.
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

package quad

import "math"

//Ylm returns the real spherical harmonic of degree l and order m at the
//polar angle theta and azimuth phi. The functions are orthonormal on the
//unit sphere: int Ylm*Yl'm' dOmega = delta_ll' delta_mm'. For m > 0 the
//azimuthal part is cos(m*phi), for m < 0 it is sin(|m|*phi).
func Ylm(l, m int, theta, phi float64) float64 {
	return prefactorYlm(l, m) * legendreP(l, abs(m), math.Cos(theta)) * azimuthal(m, phi)
}

//YlmCart evaluates Ylm at the point (x,y,z), which need not be normalized
//but must not be the origin.
func YlmCart(l, m int, x, y, z float64) float64 {
	r := math.Sqrt(x*x + y*y + z*z)
	theta := math.Acos(z / r)
	phi := math.Atan2(y, x)
	return Ylm(l, m, theta, phi)
}

func prefactorYlm(l, m int) float64 {
	pre := 1.0 / math.Sqrt(4*math.Pi)
	if m != 0 {
		pre *= math.Sqrt2
	}
	return pre * math.Sqrt(float64(2*l+1)*factorial(l-abs(m))/factorial(l+abs(m)))
}

func azimuthal(m int, phi float64) float64 {
	if m == 0 {
		return 1.0
	}
	if m > 0 {
		return math.Cos(float64(m) * phi)
	}
	return math.Sin(float64(-m) * phi)
}

//legendreP returns the associated Legendre function P_n^m(x) by upward
//recurrence on the degree, starting from the closed form of P_m^m. x must
//lie in [-1,1], else a NaN is returned.
func legendreP(n, m int, x float64) float64 {
	if m > n {
		return 0
	}
	//P_m^m
	pmm := 1.0
	fact := 1.0
	somx2 := math.Sqrt(1 - x*x)
	for k := 0; k < m; k++ {
		pmm *= -fact * somx2
		fact += 2
	}
	if n == m {
		return pmm
	}
	//P_{m+1}^m
	pm1 := x * float64(2*m+1) * pmm
	if n == m+1 {
		return pm1
	}
	//three-term recurrence on the degree
	var p float64
	for j := m + 2; j <= n; j++ {
		p = (float64(2*j-1)*x*pm1 + float64(-j-m+1)*pmm) / float64(j-m)
		pmm = pm1
		pm1 = p
	}
	return p
}

func factorial(n int) float64 {
	r := 1.0
	for i := 2; i <= n; i++ {
		r *= float64(i)
	}
	return r
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
