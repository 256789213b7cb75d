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
	"unsafe"

	"github.com/kdist/kdist/simd"
)

// Bit-packed kernels over B8. n here is a byte count, not an element
// count: every byte carries 8 packed bits and hamming/jaccard compare
// bitsets rather than individual scalars.

func hammingBits(a, b []byte) float64 {
	count := 0
	for i := range a {
		count += simd.PopcountByte(a[i] ^ b[i])
	}
	return float64(count)
}

// jaccardBits computes 1 - |a∩b|/|a∪b|, returning 0 when both sets are
// empty (the union popcount is zero) rather than dividing by zero.
func jaccardBits(a, b []byte) float64 {
	inter, union := 0, 0
	for i := range a {
		inter += simd.PopcountByte(a[i] & b[i])
		union += simd.PopcountByte(a[i] | b[i])
	}
	if union == 0 {
		return 0
	}
	return 1 - float64(inter)/float64(union)
}

func wrapBits(fn func(a, b []byte) float64) KernelFunc {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = fn(byteSlice(a, n), byteSlice(b, n))
	}
}
