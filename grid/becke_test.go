/*
 * becke_test.go, part of dftcxx.
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
	"fmt"
	"math"
	"math/rand"
	"testing"

	dft "github.com/rkalescky/dftcxx"
	v3 "github.com/rkalescky/dftcxx/v3"
)

//water-like geometry, no basis needed for partition tests
func threeAtoms(Te *testing.T) *dft.Molecule {
	atoms := []*dft.Atom{
		dft.NewAtom("O1", "O"),
		dft.NewAtom("H1", "H"),
		dft.NewAtom("H2", "H"),
	}
	coords, err := v3.NewMatrix([]float64{
		0.0, 0.0, 0.0,
		0.0, 1.43, 1.11,
		0.0, -1.43, 1.11,
	})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := dft.NewMolecule(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestSmoothingFixedPoints(Te *testing.T) {
	for _, k := range []int{1, SmoothingOrder} {
		if Fk(k, 0) != 0 {
			Te.Errorf("f_%d(0) = %v, want 0", k, Fk(k, 0))
		}
		if Fk(k, 1) != 1 || Fk(k, -1) != -1 {
			Te.Errorf("f_%d does not fix the endpoints: %v %v", k, Fk(k, 1), Fk(k, -1))
		}
	}
	//one iteration of the polynomial itself
	mu := 0.3
	want := 0.5 * (3*mu - mu*mu*mu)
	if math.Abs(Fk(1, mu)-want) > 1e-15 {
		Te.Errorf("f_1(%.1f) = %v, want %v", mu, Fk(1, mu), want)
	}
}

func TestCutoffBounds(Te *testing.T) {
	if Cutoff(0) != 0.5 {
		Te.Errorf("s(0) = %v, want exactly 0.5", Cutoff(0))
	}
	if Cutoff(-1) != 1 || Cutoff(1) != 0 {
		Te.Errorf("s(-1) = %v, s(1) = %v, want 1 and 0", Cutoff(-1), Cutoff(1))
	}
	for mu := -1.0; mu <= 1.0; mu += 0.05 {
		s := Cutoff(mu)
		if s < 0 || s > 1 {
			Te.Errorf("s(%.2f) = %v, outside [0,1]", mu, s)
		}
	}
}

func TestPartitionOfUnity(Te *testing.T) {
	mol := threeAtoms(Te)
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		r := v3.Vec(rng.Float64()*8-4, rng.Float64()*8-4, rng.Float64()*8-4)
		sum := 0.0
		for i := 0; i < mol.Len(); i++ {
			p := PartitionWeight(mol, r, i)
			if p < 0 || p > 1 {
				Te.Fatalf("P_%d = %v outside [0,1] at %v", i, p, r)
			}
			sum += p
		}
		if math.Abs(sum-1) > 1e-10 {
			Te.Errorf("Partition weights sum to %.15f at %v", sum, r)
		}
	}
}

func TestPartitionMidpoint(Te *testing.T) {
	atoms := []*dft.Atom{dft.NewAtom("H1", "H"), dft.NewAtom("H2", "H")}
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 1.4})
	mol, err := dft.NewMolecule(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	mid := v3.Vec(0, 0, 0.7)
	p1 := PartitionWeight(mol, mid, 0)
	p2 := PartitionWeight(mol, mid, 1)
	fmt.Println("midpoint weights", p1, p2)
	//mu is exactly zero at the midpoint by symmetry
	if p1 != 0.5 || p2 != 0.5 {
		Te.Errorf("Midpoint weights are %v and %v, want exactly 0.5", p1, p2)
	}
	//deep inside atom 1's cell its weight must dominate
	if PartitionWeight(mol, v3.Vec(0, 0, 0.01), 0) < 0.999 {
		Te.Error("Partition weight near the nucleus should be ~1")
	}
}

func TestPartitionSingleAtom(Te *testing.T) {
	atoms := []*dft.Atom{dft.NewAtom("He1", "He")}
	coords, _ := v3.NewMatrix([]float64{0, 0, 0})
	mol, err := dft.NewMolecule(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	for _, r := range []*v3.Matrix{v3.Vec(0, 0, 0.1), v3.Vec(5, -3, 2), v3.Vec(100, 0, 0)} {
		if p := PartitionWeight(mol, r, 0); p != 1 {
			Te.Errorf("Single-atom partition weight is %v at %v, want exactly 1", p, r)
		}
	}
}
