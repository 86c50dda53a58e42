/*
 * errors.go, part of dftcxx.
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

/**Note: Several functions here panic instead of returning errors. This is
 * because they are "fundamental" functions: if something goes wrong there,
 * the program is way-most likely wrong and should crash. Most panics are
 * related to dimensional mismatches between a molecule's basis set and the
 * data handed to it.**/

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows to add and retrieve info from the
//error as it is passed up the call stack. If passed an empty string, it
//should just return the current decoration, not add the empty string.
type Error interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

//CError (Concrete Error) is the concrete error type of the root package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the
//error and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical reports whether the error is critical. Errors in this package
//always are: they signal unusable geometries or basis sets.
func (err CError) Critical() bool { return true }

//PanicMsg is a message used for panics. It satisfies the error interface,
//but for recoverable conditions use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilMolecule    = PanicMsg("dft: nil molecule")
	ErrNilAtom        = PanicMsg("dft: nil atom")
	ErrUnknownElement = PanicMsg("dft: element not in the data tables")
	ErrBasisMismatch  = PanicMsg("dft: slice length does not match the basis-set size")
)
