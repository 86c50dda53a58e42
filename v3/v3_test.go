/*
 * v3_test.go, part of dftcxx.
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

package v3

import (
	"fmt"
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("Expected 2 vectors, got %d", A.NVecs())
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("Expected an error for a slice of length 4")
	}
	fmt.Println("NewMatrix", A)
}

func TestVecView(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	view := A.VecView(1)
	view.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("VecView is not a view of the original matrix")
	}
}

func TestGeometry(Te *testing.T) {
	a := Vec(1, 0, 0)
	b := Vec(0, 1, 0)
	if math.Abs(a.Dot(b)) > appzero {
		Te.Error("Orthogonal vectors should have zero dot product")
	}
	c := Zeros(1)
	c.Cross(a, b)
	if math.Abs(c.At(0, 2)-1) > appzero {
		Te.Errorf("x cross y should be z, got %v", c)
	}
	d := Vec(3, 4, 0)
	if math.Abs(d.Norm()-5) > appzero {
		Te.Errorf("Expected norm 5, got %f", d.Norm())
	}
	u := Zeros(1)
	u.Unit(d)
	if math.Abs(u.Norm()-1) > appzero {
		Te.Error("Unit vector should have norm 1")
	}
	if math.Abs(Dist(a, b)-math.Sqrt2) > appzero {
		Te.Errorf("Expected distance sqrt(2), got %f", Dist(a, b))
	}
}

func TestAddVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	B := Zeros(2)
	B.AddVec(A, Vec(0, 0, 1))
	if B.At(0, 2) != 2 || B.At(1, 2) != 3 {
		Te.Errorf("AddVec gave the wrong result: %v", B)
	}
	fmt.Println("AddVec", B)
}
