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

/*Package grid builds Becke-weighted molecular integration grids.

For evaluating non-local properties of a molecular system, a numerical
integration has to be performed over a set of grid points. Each atom gets a
product grid of a radial Gauss-Chebyshev rule (mapped onto the semi-infinite
radial axis) and an angular Lebedev rule, scaled by the atom's Bragg-Slater
radius. The atomic grids overlap, so every point's weight is corrected by a
fuzzy partition of space among the atoms, following:

	A multicenter numerical integration scheme for polyatomic molecules
	A. D. Becke
	The Journal of Chemical Physics 88, 2547 (1988)
	http://dx.doi.org/10.1063/1.454033

Integration of any local property then reduces to summing weight*f(point)
over the whole grid. The grid keeps row views into the molecule coordinate
matrix, so the molecule must outlive the grid.
*/
package grid
