/*
 * doc.go, part of dftcxx.
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

/*Package dft provides the molecule and Gaussian-basis structures used to
evaluate real-space electronic properties on a numerical integration grid.

	**Capabilities**

    Atom and Molecule structures with coordinates kept in a 3-column
	gonum-backed matrix (see the v3 subpackage).

    Contracted Cartesian Gaussian basis functions, normalized analytically,
	with amplitude evaluation at arbitrary points.

    Element data tables (atomic numbers, Bragg-Slater radii) and the radial
	scale used to size atom-centered quadratures.

    Geometry validation (rejection of coincident atoms) before grid
	construction.

The grid subpackage builds Becke-weighted molecular integration grids on top
of these structures; quad supplies the radial and angular quadrature tables;
gridplot draws diagnostic plots.

All coordinates and radii handed to the grid machinery are in bohr. The
element tables store the literature values in Angstrom and the accessors
convert.
*/
package dft
