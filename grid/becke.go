/*
 * becke.go, part of dftcxx.
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
	"runtime"
	"sync"

	dft "github.com/rkalescky/dftcxx"
	v3 "github.com/rkalescky/dftcxx/v3"
)

//SmoothingOrder is the number of iterations of the smoothing polynomial in
//the Becke switching function. Three iterations separate the atomic cells
//sharply without introducing weight gradients too steep near the nuclei
//(Becke, 1988).
const SmoothingOrder = 3

//Fk iterates the smoothing polynomial f(mu) = (3*mu - mu^3)/2 k times.
//The polynomial fixes -1, 0 and 1 and flattens around the endpoints, so
//each iteration sharpens the transition at mu = 0 while keeping f(+-1) =
//+-1.
func Fk(k int, mu float64) float64 {
	for i := 0; i < k; i++ {
		mu = 0.5 * mu * (3 - mu*mu)
	}
	return mu
}

//Cutoff is the switching function s(mu) = (1 - Fk(mu))/2: one deep in the
//owning atom's half-space (mu = -1), zero deep in the other atom's
//half-space (mu = 1), and 1/2 on the bisecting surface.
func Cutoff(mu float64) float64 {
	return 0.5 * (1 - Fk(SmoothingOrder, mu))
}

//PartitionWeight returns the Becke partition weight P_owner at the point r
//for the given molecule: the fraction of space at r that belongs to atom
//owner. The weights of all atoms sum to one everywhere. This entry point
//recomputes the internuclear table on every call; it is meant for
//diagnostics and plots, the bulk pass over a grid uses beckeWeights.
func PartitionWeight(mol *dft.Molecule, r *v3.Matrix, owner int) float64 {
	if mol.Len() == 1 {
		return 1 //empty product over the other atoms
	}
	pos := atomPositions(mol)
	invR := invDistances(pos)
	d := make([]float64, len(pos))
	return partition(pos, invR, r.At(0, 0), r.At(0, 1), r.At(0, 2), owner, d)
}

//atomPositions copies the atom coordinates into a flat table so the hot
//loop does not go through the matrix interface.
func atomPositions(mol *dft.Molecule) [][3]float64 {
	pos := make([][3]float64, mol.Len())
	for i := range pos {
		c := mol.Coord(i)
		pos[i] = [3]float64{c.At(0, 0), c.At(0, 1), c.At(0, 2)}
	}
	return pos
}

//invDistances tabulates the inverse internuclear distances. The geometry
//has been validated before, so no pair is degenerate.
func invDistances(pos [][3]float64) [][]float64 {
	n := len(pos)
	invR := make([][]float64, n)
	for i := range invR {
		invR[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := pos[i][0] - pos[j][0]
			dy := pos[i][1] - pos[j][1]
			dz := pos[i][2] - pos[j][2]
			v := 1 / math.Sqrt(dx*dx+dy*dy+dz*dz)
			invR[i][j] = v
			invR[j][i] = v
		}
	}
	return invR
}

//partition computes P_owner at (x,y,z). For every ordered atom pair (i,j)
//the confocal elliptical coordinate mu = (d_i - d_j)/R_ij feeds the
//switching function; the product over j of s(mu_ij) is the unnormalized
//cell function of atom i, and normalizing over all atoms yields a
//partition of unity. d is scratch space of length len(pos).
func partition(pos [][3]float64, invR [][]float64, x, y, z float64, owner int, d []float64) float64 {
	n := len(pos)
	for k := 0; k < n; k++ {
		dx := x - pos[k][0]
		dy := y - pos[k][1]
		dz := z - pos[k][2]
		d[k] = math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	var total, own float64
	for i := 0; i < n; i++ {
		cell := 1.0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			cell *= Cutoff((d[i] - d[j]) * invR[i][j])
		}
		total += cell
		if i == owner {
			own = cell
		}
	}
	return own / total
}

//beckeWeights applies the partition factor of its owning atom to every
//grid point. It requires the complete point set: the factor of any point
//depends on the positions of all atoms. Points are independent, so the
//pass fans out over GOMAXPROCS goroutines, each with its own scratch.
func beckeWeights(mol *dft.Molecule, points []*GridPoint) {
	n := mol.Len()
	if n < 2 {
		return //single-atom cell function is the empty product, P = 1
	}
	pos := atomPositions(mol)
	invR := invDistances(pos)
	maxGoroutines := runtime.GOMAXPROCS(-1)
	if maxGoroutines > len(points) {
		maxGoroutines = 1
	}
	listSize := len(points) / maxGoroutines
	var wg sync.WaitGroup
	for g := 0; g < maxGoroutines; g++ {
		start := g * listSize
		end := start + listSize
		if g == maxGoroutines-1 {
			end = len(points)
		}
		wg.Add(1)
		go func(pts []*GridPoint) {
			defer wg.Done()
			d := make([]float64, n)
			for _, p := range pts {
				f := partition(pos, invR, p.r.At(0, 0), p.r.At(0, 1), p.r.At(0, 2), p.atom, d)
				p.MultiplyWeight(f)
			}
		}(points[start:end])
	}
	wg.Wait()
}
