/*
 * fineness.go, part of dftcxx.
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

import "fmt"

//Fineness selects the resolution tier of the integration grid. It is the
//only tunable of the package: each tier fixes the radial point count and
//the Lebedev rule used for every atom.
type Fineness int

const (
	Coarse Fineness = iota
	Medium
	Fine
	Ultrafine
)

//finenessTable fixes the quadrature sizes per tier. The radial counts
//double per tier; the angular rules are the Lebedev rules available in the
//quad package, in increasing exactness.
var finenessTable = [...]struct{ radial, angular int }{
	Coarse:    {16, 14},
	Medium:    {32, 26},
	Fine:      {64, 38},
	Ultrafine: {128, 50},
}

func (f Fineness) String() string {
	switch f {
	case Coarse:
		return "coarse"
	case Medium:
		return "medium"
	case Fine:
		return "fine"
	case Ultrafine:
		return "ultrafine"
	}
	return fmt.Sprintf("Fineness(%d)", int(f))
}

//settings returns the radial point count and the Lebedev rule size for the
//tier. An out-of-range tier is a configuration error.
func (f Fineness) settings() (radial, angular int, err error) {
	if f < Coarse || f > Ultrafine {
		return 0, 0, Error{fmt.Sprintf("no such fineness tier: %d", int(f)), "", []string{"settings"}, true}
	}
	t := finenessTable[f]
	return t.radial, t.angular, nil
}
