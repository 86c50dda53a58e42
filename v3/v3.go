/*
 * v3.go, part of dftcxx.
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

//Package v3 handles sets of vectors in 3D space. Within the package it is
//understood that a "vector" is a row vector, i.e. the cartesian coordinates
//of a point in 3D space. The main container embeds a gonum Dense matrix with
//3 columns, so every gonum facility remains available on it.
package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Matrix is a set of vectors in 3D space, implemented as a gonum Dense
//matrix with 3 columns.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a 3-column gonum Dense into a Matrix. It panics if
//A does not have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(not3xXMatrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//Vec returns a single-vector Matrix with the given components.
func Vec(x, y, z float64) *Matrix {
	return &Matrix{mat.NewDense(1, 3, []float64{x, y, z})}
}

//METHODS

//VecView returns a view of the ith vector of the matrix in the receiver.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(not3xXMatrix)
	}
	return r
}

//Add puts in the receiver the sum A+B. All three matrices must have the
//same dimensions.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Sub puts in the receiver the difference A-B. All three matrices must have
//the same dimensions.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Scale puts in the receiver the matrix A scaled by i.
func (F *Matrix) Scale(i float64, A *Matrix) {
	F.Dense.Scale(i, A.Dense)
}

//AddVec adds the single vector vec to every vector of A, putting the result
//in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, _ := A.Dims()
	rr, _ := vec.Dims()
	fr, _ := F.Dims()
	if rr != 1 || ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		f := F.VecView(i)
		f.Add(A.VecView(i), vec)
	}
}

//Dot returns the dot product between the first vectors of F and B.
func (F *Matrix) Dot(B *Matrix) float64 {
	return F.At(0, 0)*B.At(0, 0) + F.At(0, 1)*B.At(0, 1) + F.At(0, 2)*B.At(0, 2)
}

//Cross puts in the receiver (a single-vector Matrix) the cross product of
//the first vectors of A and B.
func (F *Matrix) Cross(A, B *Matrix) {
	F.Set(0, 0, A.At(0, 1)*B.At(0, 2)-A.At(0, 2)*B.At(0, 1))
	F.Set(0, 1, A.At(0, 2)*B.At(0, 0)-A.At(0, 0)*B.At(0, 2))
	F.Set(0, 2, A.At(0, 0)*B.At(0, 1)-A.At(0, 1)*B.At(0, 0))
}

//Norm returns the Euclidean norm of the first vector of F.
func (F *Matrix) Norm() float64 {
	return math.Sqrt(F.Dot(F))
}

//Unit puts in the receiver the first vector of A scaled to unit norm.
//It panics if A is a zero vector.
func (F *Matrix) Unit(A *Matrix) {
	n := A.Norm()
	if n <= appzero {
		panic(PanicMsg("v3: attempted to normalize a zero vector"))
	}
	F.Scale(1/n, A)
}

//Dist returns the Euclidean distance between the first vectors of A and B.
func Dist(A, B *Matrix) float64 {
	dx := A.At(0, 0) - B.At(0, 0)
	dy := A.At(0, 1) - B.At(0, 1)
	dz := A.At(0, 2) - B.At(0, 2)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

//Errors

//Error is the concrete error type of the package. It implements the
//dft.Error interface without importing it (to avoid a circular import).
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the
//error, and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics. It does satisfy the error interface,
//but for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	not3xXMatrix = PanicMsg("v3: Matrix must have 3 columns")
	ErrShape     = PanicMsg("v3: Dimension mismatch")
)
