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

import "testing"

func TestVDotConjugatesFirstOperand(t *testing.T) {
	a := []float64{1, 2, 3, 4} // 1+2i, 3+4i
	b := []float64{5, 6, 7, 8} // 5+6i, 7+8i
	re, im := vdotComplexF64(a, b)
	almostEqual(t, re, 70, 1e-9)
	almostEqual(t, im, 8, 1e-9)
}

func TestDotComplexUnconjugated(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{3, 4}
	re, im := dotComplexF64(a, b)
	// (1+2i)(3+4i) = 3 + 4i + 6i + 8i^2 = -5 + 10i
	almostEqual(t, re, -5, 1e-9)
	almostEqual(t, im, 10, 1e-9)
}

func TestComplexF32MatchesF64(t *testing.T) {
	a64 := []float64{1, 2, 3, 4}
	b64 := []float64{5, 6, 7, 8}
	a32 := []float32{1, 2, 3, 4}
	b32 := []float32{5, 6, 7, 8}

	re64, im64 := vdotComplexF64(a64, b64)
	re32, im32 := vdotComplexF32(a32, b32)
	almostEqual(t, re32, re64, 1e-6)
	almostEqual(t, im32, im64, 1e-6)
}
