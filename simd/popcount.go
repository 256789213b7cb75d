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

import "math/bits"

// PopcountByte returns the number of set bits in a single b8 word.
func PopcountByte(b byte) int {
	return bits.OnesCount8(b)
}

// Popcount64 returns the number of set bits in a 64-bit word. The
// vectorized bit kernels reinterpret 8-byte chunks as uint64 and call
// this once per chunk instead of calling PopcountByte eight times;
// without a hardware POPCNT/VCNT SIMD op, that is the available
// vectorization.
func Popcount64(w uint64) int {
	return bits.OnesCount64(w)
}

// PopcountBytes sums PopcountByte over every byte of buf. The serial
// hamming/jaccard kernels do not call it: they apply PopcountByte to the
// xor/and/or of each byte pair directly.
func PopcountBytes(buf []byte) int {
	n := 0
	for _, b := range buf {
		n += bits.OnesCount8(b)
	}
	return n
}
