/*
 * quad_test.go, part of dftcxx.
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

import (
	"fmt"
	"math"
	"testing"
)

func TestGaussChebyshev(Te *testing.T) {
	_, w := GaussChebyshev(32)
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	//The weights integrate sqrt(1-x^2) over (-1,1), which is pi/2.
	if math.Abs(sum-math.Pi/2) > 1e-12 {
		Te.Errorf("Chebyshev weights sum to %.15f, want %.15f", sum, math.Pi/2)
	}
}

func TestRadialGaussian(Te *testing.T) {
	//int_0^inf r^2 exp(-r^2) dr = sqrt(pi)/4
	want := math.Sqrt(math.Pi) / 4
	rad := NewRadial(64, 1.0)
	got := 0.0
	for i, r := range rad.R {
		got += rad.W[i] * math.Exp(-r*r)
	}
	fmt.Println("radial Gaussian moment", got, want)
	if math.Abs(got-want) > 1e-8 {
		Te.Errorf("Got %.12f, want %.12f", got, want)
	}
}

func TestRadialExponential(Te *testing.T) {
	//int_0^inf r^2 exp(-r) dr = 2. Exponential decay is the shape the
	//Becke mapping is designed for.
	rad := NewRadial(64, 1.0)
	got := 0.0
	for i, r := range rad.R {
		got += rad.W[i] * math.Exp(-r)
	}
	fmt.Println("radial exponential moment", got)
	if math.Abs(got-2) > 1e-8 {
		Te.Errorf("Got %.12f, want 2", got)
	}
}

func TestRadialConvergence(Te *testing.T) {
	want := math.Sqrt(math.Pi) / 4
	prev := math.Inf(1)
	for _, n := range []int{8, 16, 32, 64} {
		rad := NewRadial(n, 1.0)
		got := 0.0
		for i, r := range rad.R {
			got += rad.W[i] * math.Exp(-r*r)
		}
		err := math.Abs(got - want)
		fmt.Println("n, err:", n, err)
		if err > prev && err > 1e-12 {
			Te.Errorf("Error grew from %.2e to %.2e at n=%d", prev, err, n)
		}
		prev = err
	}
}

//ruleDegrees maps the point count of each Lebedev rule to the highest
//polynomial degree the rule integrates exactly.
var ruleDegrees = map[int]int{6: 3, 14: 5, 26: 7, 38: 9, 50: 11}

func TestLebedevWeights(Te *testing.T) {
	for n := range ruleDegrees {
		Q, err := Lebedev(n)
		if err != nil {
			Te.Fatal(err)
		}
		if Q.Len() != n {
			Te.Errorf("Rule %d has %d points", n, Q.Len())
		}
		sum := 0.0
		for i := range Q.W {
			sum += Q.W[i]
			rr := Q.X[i]*Q.X[i] + Q.Y[i]*Q.Y[i] + Q.Z[i]*Q.Z[i]
			if math.Abs(rr-1) > 1e-12 {
				Te.Errorf("Rule %d point %d is off the unit sphere: |r|^2=%.15f", n, i, rr)
			}
		}
		if math.Abs(sum-1) > 1e-12 {
			Te.Errorf("Rule %d weights sum to %.15f", n, sum)
		}
	}
	if _, err := Lebedev(40); err == nil {
		Te.Error("Expected an error for a point count with no rule")
	}
}

func TestLebedevHarmonics(Te *testing.T) {
	//Each rule must integrate products of real spherical harmonics to
	//orthonormality as long as the product degree is within the rule's
	//exactness.
	for n, deg := range ruleDegrees {
		Q, _ := Lebedev(n)
		for l1 := 0; l1 <= deg/2; l1++ {
			for m1 := -l1; m1 <= l1; m1++ {
				for l2 := l1; l2+l1 <= deg; l2++ {
					for m2 := -l2; m2 <= l2; m2++ {
						got := 0.0
						for i := range Q.W {
							got += Q.W[i] * YlmCart(l1, m1, Q.X[i], Q.Y[i], Q.Z[i]) *
								YlmCart(l2, m2, Q.X[i], Q.Y[i], Q.Z[i])
						}
						got *= 4 * math.Pi
						want := 0.0
						if l1 == l2 && m1 == m2 {
							want = 1.0
						}
						if math.Abs(got-want) > 1e-10 {
							Te.Errorf("Rule %d: <Y(%d,%d)|Y(%d,%d)> = %.12f, want %.1f",
								n, l1, m1, l2, m2, got, want)
						}
					}
				}
			}
		}
	}
}

func TestYlmValues(Te *testing.T) {
	want := 1 / math.Sqrt(4*math.Pi)
	if math.Abs(Ylm(0, 0, 0.3, 1.2)-want) > 1e-14 {
		Te.Errorf("Y00 should be constant %.12f", want)
	}
	//Y10 is proportional to cos(theta), so it vanishes on the equator.
	if math.Abs(Ylm(1, 0, math.Pi/2, 0.7)) > 1e-14 {
		Te.Error("Y10 should vanish at theta=pi/2")
	}
}
