/*
 * gridio.go, part of dftcxx.
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

//gridio.go stores constructed grids on disk. Building an ultrafine grid
//for a large molecule is far more expensive than reading it back, so the
//point set (owning atom, position, weight) can be written once and
//re-linked to the same molecule later. Densities and amplitudes are not
//stored, they are recomputed from the density matrix anyway.

package grid

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	dft "github.com/rkalescky/dftcxx"
	v3 "github.com/rkalescky/dftcxx/v3"
)

const flateLevel int = 9

//zstdReadCloser adds the Close method the zstd decoder lacks.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//newCompressor picks the compressor from the last letter of the filename:
//'z' gzip, 'r' raw flate, anything else zstd.
func newCompressor(name string, f io.Writer) (io.WriteCloser, error) {
	switch name[len(name)-1] {
	case 'z':
		return gzip.NewWriterLevel(f, gzip.BestCompression)
	case 'r':
		return flate.NewWriter(f, flateLevel)
	default:
		return zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
}

func newDecompressor(name string, f io.Reader) (io.ReadCloser, error) {
	switch name[len(name)-1] {
	case 'z':
		return gzip.NewReader(f)
	case 'r':
		return flate.NewReader(f), nil
	default:
		r, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{r}, nil
	}
}

//Write stores the grid in the named file, one record per point. The
//compression format is chosen from the last letter of the filename, as in
//newCompressor.
func (G *MolecularGrid) Write(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	defer f.Close()
	h, err := newCompressor(name, f)
	if err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	w := bufio.NewWriter(h)
	fmt.Fprintf(w, "** %d %d\n", len(G.points), G.mol.Len())
	for _, p := range G.points {
		fmt.Fprintf(w, "%d %.17g %.17g %.17g %.17g\n",
			p.atom, p.r.At(0, 0), p.r.At(0, 1), p.r.At(0, 2), p.w)
	}
	if err := w.Flush(); err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	if err := h.Close(); err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	return nil
}

//ReadGrid reads a grid snapshot written by Write and re-links its points
//to the atoms of mol, which must be the molecule the snapshot was built
//from (the atom count is checked, the coordinates are trusted).
func ReadGrid(name string, mol *dft.Molecule) (*MolecularGrid, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"ReadGrid"}, true}
	}
	defer f.Close()
	h, err := newDecompressor(name, f)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"ReadGrid"}, true}
	}
	defer h.Close()
	scanner := bufio.NewScanner(h)
	if !scanner.Scan() {
		return nil, Error{"empty snapshot", name, []string{"ReadGrid"}, true}
	}
	var npoints, natoms int
	if _, err := fmt.Sscanf(scanner.Text(), "** %d %d", &npoints, &natoms); err != nil {
		return nil, Error{"malformed header: " + scanner.Text(), name, []string{"ReadGrid"}, true}
	}
	if natoms != mol.Len() {
		return nil, Error{fmt.Sprintf("snapshot has %d atoms, molecule has %d", natoms, mol.Len()), name, []string{"ReadGrid"}, true}
	}
	G := &MolecularGrid{mol: mol, points: make([]*GridPoint, 0, npoints)}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var atom int
		var x, y, z, w float64
		if _, err := fmt.Sscanf(line, "%d %g %g %g %g", &atom, &x, &y, &z, &w); err != nil {
			return nil, Error{"malformed record: " + line, name, []string{"ReadGrid"}, true}
		}
		if atom < 0 || atom >= mol.Len() {
			return nil, Error{fmt.Sprintf("record links to atom %d, out of range", atom), name, []string{"ReadGrid"}, true}
		}
		p := NewGridPoint(v3.Vec(x, y, z))
		p.SetWeight(w)
		p.setAtom(atom, mol.Coord(atom))
		G.points = append(G.points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), name, []string{"ReadGrid"}, true}
	}
	if len(G.points) != npoints {
		return nil, Error{fmt.Sprintf("header promises %d points, file has %d", npoints, len(G.points)), name, []string{"ReadGrid"}, true}
	}
	return G, nil
}
