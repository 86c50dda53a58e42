/*
 * conversion.go, part of dftcxx.
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

//This provides useful conversion factors and other constants

//Conversions
const (
	A2Bohr = 1.889725989
	Bohr2A = 1 / 1.889725989
	H2eV   = 27.211386 //Hartree to electronvolt
	EV2H   = 1 / 27.211386
)
