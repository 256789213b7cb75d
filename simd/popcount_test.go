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

package simd

import "testing"

func TestPopcountByte(t *testing.T) {
	tests := []struct {
		b    byte
		want int
	}{
		{0b00000000, 0},
		{0b11111111, 8},
		{0b11110000, 4},
		{0b10101010, 4},
	}
	for _, tt := range tests {
		if got := PopcountByte(tt.b); got != tt.want {
			t.Errorf("PopcountByte(%08b) = %d, want %d", tt.b, got, tt.want)
		}
	}
}

func TestPopcountBytes(t *testing.T) {
	buf := []byte{0b11110000, 0b00001111, 0b10101010}
	if got, want := PopcountBytes(buf), 4+4+4; got != want {
		t.Errorf("PopcountBytes = %d, want %d", got, want)
	}
}

func TestPopcount64MatchesPerByteSum(t *testing.T) {
	var w uint64 = 0x0F0FF00012345678
	want := 0
	for i := 0; i < 8; i++ {
		want += PopcountByte(byte(w >> (8 * i)))
	}
	if got := Popcount64(w); got != want {
		t.Errorf("Popcount64(%x) = %d, want %d", w, got, want)
	}
}

func TestPopcount64Zero(t *testing.T) {
	if got := Popcount64(0); got != 0 {
		t.Errorf("Popcount64(0) = %d, want 0", got)
	}
}
