// Copyright 2026 kdist Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kernels

import (
	"math"
	"testing"
)

func almostEqual(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("got %v, want %v (tol %v)", got, want, tol)
	}
}

func TestL2SqF64Serial(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	almostEqual(t, l2sqF64Serial(a, b), 27, 1e-9)
}

func TestCosZeroNorm(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{1, 2, 3}
	almostEqual(t, cosF64Serial(a, b), 1, 1e-9)
}

func TestCosOrthogonal(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{0, 1}
	almostEqual(t, cosF64Serial(a, b), 1, 1e-6)
}

func TestCosIdentical(t *testing.T) {
	a := []float64{3, 4}
	almostEqual(t, cosF64Serial(a, a), 0, 1e-6)
}

func TestDotI8DistinctFromCosI8(t *testing.T) {
	a := []int8{1, 2, 3}
	b := []int8{4, 5, 6}
	dot := dotI8Serial(a, b)
	cos := cosI8Serial(a, b)
	if dot == cos {
		t.Fatalf("dot_i8 and cos_i8 unexpectedly equal: %v", dot)
	}
	almostEqual(t, dot, 32, 1e-9)
}

func TestVectorTierAgreesWithSerial(t *testing.T) {
	a := make([]float64, 37)
	b := make([]float64, 37)
	for i := range a {
		a[i] = float64(i) * 0.5
		b[i] = float64(37-i) * 0.25
	}
	almostEqual(t, dotF64Vector(a, b), dotF64Serial(a, b), 1e-9)
	almostEqual(t, l2sqF64Vector(a, b), l2sqF64Serial(a, b), 1e-9)
	almostEqual(t, cosF64Vector(a, b), cosF64Serial(a, b), 1e-9)
}

func TestF16RoundTripThroughKernel(t *testing.T) {
	a := []uint16{0x3C00, 0x4000} // 1.0, 2.0
	b := []uint16{0x4000, 0x3C00} // 2.0, 1.0
	almostEqual(t, dotF16Serial(a, b), 4, 1e-3)
}

func TestSingleElementBoundary(t *testing.T) {
	a := []float64{5}
	b := []float64{7}
	almostEqual(t, dotF64Serial(a, b), 35, 1e-9)
	almostEqual(t, dotF64Vector(a, b), 35, 1e-9)
}
