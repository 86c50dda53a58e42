/*
 * dftcxx_test.go, part of dftcxx.
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
	"testing"

	"github.com/rkalescky/dftcxx/quad"
	v3 "github.com/rkalescky/dftcxx/v3"
)

func water(Te *testing.T) *Molecule {
	atoms := []*Atom{NewAtom("O1", "O"), NewAtom("H1", "H"), NewAtom("H2", "H")}
	coords, err := v3.NewMatrix([]float64{
		0.0, 0.0, 0.0,
		0.0, 1.43, 1.11,
		0.0, -1.43, 1.11,
	})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestElementData(Te *testing.T) {
	if AtomicNumber("O") != 8 {
		Te.Error("Wrong atomic number for oxygen")
	}
	//hydrogen keeps the full (enlarged) radius, others get half of it in
	//the radial scale
	mol := water(Te)
	if math.Abs(mol.RadialScale(1)-BraggSlaterRadius("H")) > 1e-14 {
		Te.Error("Hydrogen radial scale should be the unhalved Bragg-Slater radius")
	}
	if math.Abs(mol.RadialScale(0)-0.5*BraggSlaterRadius("O")) > 1e-14 {
		Te.Error("Oxygen radial scale should be half the Bragg-Slater radius")
	}
}

func TestElectronCount(Te *testing.T) {
	mol := water(Te)
	if mol.NElectrons() != 10 {
		Te.Errorf("Water has %d electrons, want 10", mol.NElectrons())
	}
	mol.SetCharge(1)
	if mol.NElectrons() != 9 {
		Te.Errorf("The water cation has %d electrons, want 9", mol.NElectrons())
	}
}

func TestCheckGeometry(Te *testing.T) {
	mol := water(Te)
	if err := mol.CheckGeometry(); err != nil {
		Te.Error(err)
	}
	atoms := []*Atom{NewAtom("H1", "H"), NewAtom("H2", "H")}
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 1e-6})
	bad, err := NewMolecule(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	if err := bad.CheckGeometry(); err == nil {
		Te.Error("Expected an error for near-coincident atoms")
	} else {
		fmt.Println("got the expected error:", err)
	}
}

func TestNewMoleculeErrors(Te *testing.T) {
	atoms := []*Atom{NewAtom("H1", "H")}
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 1.4})
	if _, err := NewMolecule(atoms, coords); err == nil {
		Te.Error("Expected an error for mismatched atom and coordinate counts")
	}
	if _, err := NewMolecule(atoms, nil); err == nil {
		Te.Error("Expected an error for nil coordinates")
	}
}

func TestCGFNormalization(Te *testing.T) {
	//the contraction is renormalized, so the squared amplitude of an
	//s function integrated over space must be 1. The function is
	//spherically symmetric: integrate on the radial rule alone.
	mol := water(Te)
	b, err := NewCGF(0, 0, 0, []float64{3.42525091, 0.62391373, 0.16885540},
		[]float64{0.15432897, 0.53532814, 0.44463454})
	if err != nil {
		Te.Fatal(err)
	}
	mol.AddBasis(b, 1)
	center := mol.Coord(1)
	rad := quad.NewRadial(64, 1.0)
	norm := 0.0
	r := v3.Zeros(1)
	for i := range rad.R {
		r.AddVec(center, v3.Vec(rad.R[i], 0, 0))
		a := b.Amp(r)
		norm += 4 * math.Pi * rad.W[i] * a * a
	}
	fmt.Println("numerical self-overlap:", norm)
	if math.Abs(norm-1) > 1e-6 {
		Te.Errorf("Contracted s function has self-overlap %.10f, want 1", norm)
	}
}

func TestCGFErrors(Te *testing.T) {
	if _, err := NewCGF(-1, 0, 0, []float64{1}, []float64{1}); err == nil {
		Te.Error("Expected an error for negative powers")
	}
	if _, err := NewCGF(0, 0, 0, []float64{1, 2}, []float64{1}); err == nil {
		Te.Error("Expected an error for mismatched exponents and coefficients")
	}
	if _, err := NewCGF(0, 0, 0, []float64{-1}, []float64{1}); err == nil {
		Te.Error("Expected an error for a non-positive exponent")
	}
}

func TestBasisFuncAmp(Te *testing.T) {
	mol := water(Te)
	for i := 0; i < mol.Len(); i++ {
		b, err := NewCGF(0, 0, 0, []float64{0.8}, []float64{1})
		if err != nil {
			Te.Fatal(err)
		}
		mol.AddBasis(b, i)
	}
	if mol.NBasis() != 3 {
		Te.Fatalf("Expected 3 basis functions, got %d", mol.NBasis())
	}
	amps := mol.BasisFuncAmp(v3.Vec(0.1, 0.2, 0.3), nil)
	if len(amps) != 3 {
		Te.Fatalf("Got %d amplitudes", len(amps))
	}
	//an s function peaks on its own center
	onO := mol.BasisFuncAmp(mol.Coord(0), nil)
	if onO[0] <= onO[1] || onO[0] <= onO[2] {
		Te.Error("The oxygen-centered function should dominate on the oxygen nucleus")
	}
	//p-type function is odd around its center
	p, err := NewCGF(0, 0, 1, []float64{0.5}, []float64{1})
	if err != nil {
		Te.Fatal(err)
	}
	mol.AddBasis(p, 0)
	up := p.Amp(v3.Vec(0, 0, 0.3))
	down := p.Amp(v3.Vec(0, 0, -0.3))
	if math.Abs(up+down) > 1e-14 {
		Te.Errorf("p_z function is not odd: %v vs %v", up, down)
	}
}
