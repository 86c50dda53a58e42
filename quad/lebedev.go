/*
 * lebedev.go, part of dftcxx.
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
)

//Angular is a quadrature on the unit sphere: int f dOmega ~= 4*pi * sum_i
//W[i]*f(X[i],Y[i],Z[i]). The weights of every rule sum to one.
type Angular struct {
	X, Y, Z []float64
	W       []float64
}

//Len returns the number of points of the rule.
func (Q *Angular) Len() int { return len(Q.W) }

//Lebedev returns the octahedrally symmetric Lebedev rule with n points,
//for n in {6, 14, 26, 38, 50}. The rule with n points integrates spherical
//polynomials exactly up to degree 3, 5, 7, 9 and 11 respectively
//(Lebedev, 1976). Asking for any other n is a configuration error.
//Coefficients from the standard tabulations; weights are relative to 4*pi.
func Lebedev(n int) (*Angular, error) {
	Q := &Angular{}
	switch n {
	case 6:
		Q.a1(1.0 / 6.0)
	case 14:
		Q.a1(1.0 / 15.0)
		Q.a3(3.0 / 40.0)
	case 26:
		Q.a1(1.0 / 21.0)
		Q.a2(4.0 / 105.0)
		Q.a3(9.0 / 280.0)
	case 38:
		Q.a1(1.0 / 105.0)
		Q.a3(9.0 / 280.0)
		Q.c(0.4597008433809831, 1.0/35.0)
	case 50:
		Q.a1(0.0126984126984127)
		Q.a2(0.02257495590828924)
		Q.a3(0.02109375)
		Q.b(0.3015113445777636, 0.02017333553791887)
	default:
		return nil, Error{fmt.Sprintf("no Lebedev rule with %d points", n), []string{"Lebedev"}, true}
	}
	if len(Q.W) != n {
		panic(PanicMsg(fmt.Sprintf("quad: Lebedev rule generated %d points, wanted %d", len(Q.W), n)))
	}
	return Q, nil
}

func (Q *Angular) add(x, y, z, w float64) {
	Q.X = append(Q.X, x)
	Q.Y = append(Q.Y, y)
	Q.Z = append(Q.Z, z)
	Q.W = append(Q.W, w)
}

//a1 adds the 6 octahedron vertices (+-1,0,0) and permutations.
func (Q *Angular) a1(w float64) {
	for _, s := range []float64{1, -1} {
		Q.add(s, 0, 0, w)
		Q.add(0, s, 0, w)
		Q.add(0, 0, s, w)
	}
}

//a2 adds the 12 edge midpoints (+-1,+-1,0)/sqrt(2) and permutations.
func (Q *Angular) a2(w float64) {
	s := 1 / math.Sqrt2
	for _, si := range []float64{1, -1} {
		for _, sj := range []float64{1, -1} {
			Q.add(si*s, sj*s, 0, w)
			Q.add(si*s, 0, sj*s, w)
			Q.add(0, si*s, sj*s, w)
		}
	}
}

//a3 adds the 8 cube vertices (+-1,+-1,+-1)/sqrt(3).
func (Q *Angular) a3(w float64) {
	t := 1 / math.Sqrt(3)
	for _, si := range []float64{1, -1} {
		for _, sj := range []float64{1, -1} {
			for _, sk := range []float64{1, -1} {
				Q.add(si*t, sj*t, sk*t, w)
			}
		}
	}
}

//b adds the 24 points (+-l,+-l,+-m) and permutations, with m fixed by the
//unit-norm condition m = sqrt(1-2l^2).
func (Q *Angular) b(l, w float64) {
	m := math.Sqrt(1 - 2*l*l)
	for _, si := range []float64{1, -1} {
		for _, sj := range []float64{1, -1} {
			for _, sk := range []float64{1, -1} {
				Q.add(si*l, sj*l, sk*m, w)
				Q.add(si*l, sj*m, sk*l, w)
				Q.add(si*m, sj*l, sk*l, w)
			}
		}
	}
}

//c adds the 24 points (+-p,+-q,0) and permutations, with q = sqrt(1-p^2).
func (Q *Angular) c(p, w float64) {
	q := math.Sqrt(1 - p*p)
	for _, si := range []float64{1, -1} {
		for _, sj := range []float64{1, -1} {
			Q.add(si*p, sj*q, 0, w)
			Q.add(si*q, sj*p, 0, w)
			Q.add(si*p, 0, sj*q, w)
			Q.add(si*q, 0, sj*p, w)
			Q.add(0, si*p, sj*q, w)
			Q.add(0, si*q, sj*p, w)
		}
	}
}

//Error is the concrete error type of the package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return err.message }

//Decorate adds the dec string to the decoration slice of strings of the
//error and returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }
