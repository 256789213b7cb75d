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

func TestKLIdentity(t *testing.T) {
	a := []float64{0.2, 0.3, 0.5}
	almostEqual(t, klF64(a, a), 0, 1e-9)
}

func TestKLHalves(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{0.5, 0.5}
	almostEqual(t, klF64(a, b), math.Log(2), 1e-9)
}

func TestKLZeroLeftContributesZero(t *testing.T) {
	if got := klTermF64(0, 0.7); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestKLZeroRightNonzeroLeftIsInf(t *testing.T) {
	got := klTermF64(0.4, 0)
	if !math.IsInf(got, 1) {
		t.Fatalf("got %v, want +Inf", got)
	}
}

func TestJSSymmetric(t *testing.T) {
	a := []float64{0.9, 0.1}
	b := []float64{0.2, 0.8}
	almostEqual(t, jsF64(a, b), jsF64(b, a), 1e-9)
}

func TestJSIdenticalIsZero(t *testing.T) {
	a := []float64{0.4, 0.6}
	almostEqual(t, jsF64(a, a), 0, 1e-9)
}

func TestProbVectorAgreesWithSerial(t *testing.T) {
	a := []float64{0.1, 0.2, 0.05, 0.15, 0.5}
	b := []float64{0.3, 0.1, 0.2, 0.2, 0.2}
	almostEqual(t, klF64Vector(a, b), klF64(a, b), 1e-9)
	almostEqual(t, jsF64Vector(a, b), jsF64(a, b), 1e-9)
}
