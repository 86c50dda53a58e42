/*
 * grid.go, part of dftcxx.
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
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	dft "github.com/rkalescky/dftcxx"
	"github.com/rkalescky/dftcxx/quad"
)

//MolecularGrid owns the full set of grid points of a molecule. The point
//sequence is fixed in length, membership and order after construction;
//only the per-point weight, amplitude and density fields change afterward.
//The grid holds a non-owning reference to the molecule it was built from,
//so the molecule must outlive it.
type MolecularGrid struct {
	mol    *dft.Molecule
	points []*GridPoint
}

//NewMolecularGrid constructs the integration grid of a molecule at the
//given fineness. The atomic grids are built concurrently (they are
//independent); the Becke weighting pass runs once they all exist, since
//the partition factor of every point depends on every atom position.
func NewMolecularGrid(mol *dft.Molecule, fineness Fineness) (*MolecularGrid, error) {
	if mol == nil {
		return nil, Error{"nil molecule", "", []string{"NewMolecularGrid"}, true}
	}
	nrad, nang, err := fineness.settings()
	if err != nil {
		return nil, errDecorate(err, "NewMolecularGrid")
	}
	if err := mol.CheckGeometry(); err != nil {
		return nil, errDecorate(err, "NewMolecularGrid")
	}
	ang, err := quad.Lebedev(nang)
	if err != nil {
		return nil, errDecorate(err, "NewMolecularGrid")
	}
	sub := make([][]*GridPoint, mol.Len())
	var wg sync.WaitGroup
	for i := 0; i < mol.Len(); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rad := quad.NewRadial(nrad, mol.RadialScale(i))
			sub[i] = atomicGrid(mol, i, rad, ang)
		}(i)
	}
	wg.Wait()
	G := &MolecularGrid{mol: mol}
	for _, s := range sub {
		G.points = append(G.points, s...)
	}
	beckeWeights(mol, G.points)
	return G, nil
}

//NPoints returns the number of grid points.
func (G *MolecularGrid) NPoints() int { return len(G.points) }

//Points returns the grid points. The slice is owned by the grid; callers
//must not add or remove points.
func (G *MolecularGrid) Points() []*GridPoint { return G.points }

//Molecule returns the molecule the grid was built from.
func (G *MolecularGrid) Molecule() *dft.Molecule { return G.mol }

//SetDensity recomputes, for every grid point, the basis-function
//amplitudes and the local electron density from the density matrix P.
//This is the per-iteration entry point of an SCF consumer. Points are
//written independently and P is only read, so the pass is parallel.
func (G *MolecularGrid) SetDensity(P mat.Matrix) {
	r, c := P.Dims()
	if r != G.mol.NBasis() || c != G.mol.NBasis() {
		panic(PanicMsg(fmt.Sprintf("grid: density matrix is %dx%d, basis set has %d functions", r, c, G.mol.NBasis())))
	}
	maxGoroutines := runtime.GOMAXPROCS(-1)
	if maxGoroutines > len(G.points) {
		maxGoroutines = 1
	}
	listSize := len(G.points) / maxGoroutines
	var wg sync.WaitGroup
	for g := 0; g < maxGoroutines; g++ {
		start := g * listSize
		end := start + listSize
		if g == maxGoroutines-1 {
			end = len(G.points)
		}
		wg.Add(1)
		go func(pts []*GridPoint) {
			defer wg.Done()
			for _, p := range pts {
				p.SetBasisFuncAmp(G.mol)
				p.SetDensity(P)
			}
		}(G.points[start:end])
	}
	wg.Wait()
}

//CalculateDensity returns the integral of the electron density over the
//grid: the weighted sum of the local densities, i.e. the number of
//electrons the grid sees. It converges to the true electron count as the
//fineness increases.
func (G *MolecularGrid) CalculateDensity() float64 {
	w := make([]float64, len(G.points))
	d := make([]float64, len(G.points))
	for i, p := range G.points {
		w[i] = p.w
		d[i] = p.density
	}
	return floats.Dot(w, d)
}

//ScaleDensity rescales the stored densities uniformly so that the
//integrated electron count equals nrElec exactly. This compensates the
//quadrature discretization error; it changes no ratios between points.
//Calling it with a zero integrated density panics.
func (G *MolecularGrid) ScaleDensity(nrElec int) {
	total := G.CalculateDensity()
	if total == 0 {
		panic(PanicMsg("grid: cannot rescale a zero integrated density"))
	}
	f := float64(nrElec) / total
	for _, p := range G.points {
		p.ScaleDensity(f)
	}
}

//Weights returns the weights of all grid points as a vector.
func (G *MolecularGrid) Weights() *mat.VecDense {
	w := make([]float64, len(G.points))
	for i, p := range G.points {
		w[i] = p.w
	}
	return mat.NewVecDense(len(w), w)
}

//Densities returns the densities at all grid points as a vector.
func (G *MolecularGrid) Densities() *mat.VecDense {
	d := make([]float64, len(G.points))
	for i, p := range G.points {
		d[i] = p.density
	}
	return mat.NewVecDense(len(d), d)
}

//Amplitudes returns the amplitudes of all basis functions at all grid
//points as a (basis functions x grid points) matrix. Amplitudes are
//computed on demand for points that do not have them cached yet.
func (G *MolecularGrid) Amplitudes() *mat.Dense {
	nb := G.mol.NBasis()
	A := mat.NewDense(nb, len(G.points), nil)
	for j, p := range G.points {
		if p.amps == nil {
			p.SetBasisFuncAmp(G.mol)
		}
		for i := 0; i < nb; i++ {
			A.Set(i, j, p.amps[i])
		}
	}
	return A
}

//Errors

//errorInt is the dft.Error interface, redeclared to keep the dependency
//one-way in the error plumbing.
type errorInt interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

//Error is the concrete error type of the package. filename is the grid
//snapshot file associated to the error, or the empty string if none.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return err.message
	}
	return fmt.Sprintf("grid file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//FileName returns the snapshot file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

//errDecorate asserts that err implements the Error interface of the root
//package and decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(errorInt)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics. It satisfies the error interface,
//but for recoverable conditions use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
