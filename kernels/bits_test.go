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

func TestHammingByteExample(t *testing.T) {
	a := []byte{0b11110000}
	b := []byte{0b00001111}
	if got := hammingBits(a, b); got != 8 {
		t.Fatalf("got %v, want 8", got)
	}
}

func TestJaccardDisjoint(t *testing.T) {
	a := []byte{0b11110000}
	b := []byte{0b00001111}
	almostEqual(t, jaccardBits(a, b), 1.0, 1e-9)
}

func TestJaccardBothEmpty(t *testing.T) {
	a := []byte{0, 0}
	b := []byte{0, 0}
	almostEqual(t, jaccardBits(a, b), 0.0, 1e-9)
}

func TestJaccardIdentical(t *testing.T) {
	a := []byte{0b10101010, 0b11001100}
	almostEqual(t, jaccardBits(a, a), 0.0, 1e-9)
}

func TestBitsVectorAgreesWithSerial(t *testing.T) {
	a := []byte{0xFF, 0x0F, 0xA3, 0x00, 0x55, 0x81, 0x3C, 0x99, 0x01}
	b := []byte{0x0F, 0xFF, 0x5C, 0x00, 0xAA, 0x7E, 0xC3, 0x66, 0xFE}
	almostEqual(t, hammingBitsVector(a, b), hammingBits(a, b), 1e-9)
	almostEqual(t, jaccardBitsVector(a, b), jaccardBits(a, b), 1e-9)
}
