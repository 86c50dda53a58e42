/*
 * molecule.go, part of dftcxx.
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

	v3 "github.com/rkalescky/dftcxx/v3"
)

//minAtomDist is the smallest internuclear distance (bohr) accepted by
//CheckGeometry. Below it the confocal elliptical coordinate of the Becke
//partition degenerates, so such geometries are rejected before any grid
//is built.
const minAtomDist = 1e-3

//Atom holds the per-atom data that does not depend on the geometry. The
//coordinates live in a matrix owned by the Molecule.
type Atom struct {
	Name   string
	Symbol string
	Z      int
}

//NewAtom returns an atom of the element with the given symbol. It panics
//for elements missing from the data tables.
func NewAtom(name, symbol string) *Atom {
	return &Atom{Name: name, Symbol: symbol, Z: AtomicNumber(symbol)}
}

//Molecule gathers a set of atoms, their coordinates (bohr) and the basis
//set. The coordinate matrix is fixed after construction: the integration
//grid keeps row views into it, so the molecule must outlive any grid built
//from it.
type Molecule struct {
	atoms  []*Atom
	coords *v3.Matrix
	basis  []*CGF
	charge int
}

//NewMolecule builds a molecule from atoms and a matching coordinate matrix.
func NewMolecule(atoms []*Atom, coords *v3.Matrix) (*Molecule, error) {
	if coords == nil {
		return nil, CError{"nil coordinates", []string{"NewMolecule"}}
	}
	if len(atoms) != coords.NVecs() {
		return nil, CError{fmt.Sprintf("Got %d atoms but %d coordinate vectors", len(atoms), coords.NVecs()), []string{"NewMolecule"}}
	}
	for i, at := range atoms {
		if at == nil {
			return nil, CError{fmt.Sprintf("Atom %d is nil", i), []string{"NewMolecule"}}
		}
	}
	return &Molecule{atoms: atoms, coords: coords}, nil
}

//AddBasis appends a basis function to the molecule, centering it on the
//atom with the given index. Out-of-range indices panic.
func (M *Molecule) AddBasis(b *CGF, atom int) {
	if atom < 0 || atom >= len(M.atoms) {
		panic(PanicMsg(fmt.Sprintf("dft: atom index %d out of range", atom)))
	}
	b.atom = atom
	b.center = M.coords.VecView(atom)
	M.basis = append(M.basis, b)
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int { return len(M.atoms) }

//Atom returns the ith atom.
func (M *Molecule) Atom(i int) *Atom { return M.atoms[i] }

//Coord returns a view of the coordinates of the ith atom.
func (M *Molecule) Coord(i int) *v3.Matrix { return M.coords.VecView(i) }

//Coords returns the full coordinate matrix of the molecule.
func (M *Molecule) Coords() *v3.Matrix { return M.coords }

//SetCharge sets the total charge of the molecule.
func (M *Molecule) SetCharge(q int) { M.charge = q }

//Charge returns the total charge of the molecule.
func (M *Molecule) Charge() int { return M.charge }

//NElectrons returns the number of electrons: the sum of the atomic numbers
//minus the total charge.
func (M *Molecule) NElectrons() int {
	n := 0
	for _, at := range M.atoms {
		n += at.Z
	}
	return n - M.charge
}

//NBasis returns the number of basis functions in the molecule.
func (M *Molecule) NBasis() int { return len(M.basis) }

//Basis returns the ith basis function.
func (M *Molecule) Basis(i int) *CGF { return M.basis[i] }

//BasisFuncAmp evaluates every basis function of the molecule at the point r
//and stores the amplitudes in amps, which is allocated if nil. A non-nil
//amps of the wrong length panics, as it means the caller lost track of the
//basis-set size.
func (M *Molecule) BasisFuncAmp(r *v3.Matrix, amps []float64) []float64 {
	if amps == nil {
		amps = make([]float64, len(M.basis))
	}
	if len(amps) != len(M.basis) {
		panic(ErrBasisMismatch)
	}
	for i, b := range M.basis {
		amps[i] = b.Amp(r)
	}
	return amps
}

//RadialScale returns the midpoint (bohr) of the radial quadrature mapping
//for the ith atom: half the Bragg-Slater radius, except for hydrogen where
//the full radius is used (Becke, 1988).
func (M *Molecule) RadialScale(i int) float64 {
	at := M.atoms[i]
	rm := BraggSlaterRadius(at.Symbol)
	if at.Z != 1 {
		rm *= 0.5
	}
	return rm
}

//CheckGeometry rejects molecules with coincident or near-coincident atoms.
//Such geometries make the Becke partition undefined and must be caught
//before grid construction.
func (M *Molecule) CheckGeometry() error {
	for i := 0; i < len(M.atoms); i++ {
		for j := i + 1; j < len(M.atoms); j++ {
			if v3.Dist(M.Coord(i), M.Coord(j)) < minAtomDist {
				return CError{fmt.Sprintf("Atoms %d and %d are closer than %g bohr", i, j, minAtomDist), []string{"CheckGeometry"}}
			}
		}
	}
	return nil
}
