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
	"encoding/binary"

	"github.com/kdist/kdist/simd"
)

// hammingBitsVector/jaccardBitsVector fold the xor/and/or directly into
// an 8-byte-word popcount loop instead of materializing an intermediate
// byte slice: kernels never allocate, so the combine step and the
// popcount step share one pass over a and b.

func hammingBitsVector(a, b []byte) float64 {
	n := len(a)
	count := 0
	i := 0
	for ; i+8 <= n; i += 8 {
		wa := binary.LittleEndian.Uint64(a[i : i+8])
		wb := binary.LittleEndian.Uint64(b[i : i+8])
		count += simd.Popcount64(wa ^ wb)
	}
	for ; i < n; i++ {
		count += simd.PopcountByte(a[i] ^ b[i])
	}
	return float64(count)
}

func jaccardBitsVector(a, b []byte) float64 {
	n := len(a)
	inter, union := 0, 0
	i := 0
	for ; i+8 <= n; i += 8 {
		wa := binary.LittleEndian.Uint64(a[i : i+8])
		wb := binary.LittleEndian.Uint64(b[i : i+8])
		inter += simd.Popcount64(wa & wb)
		union += simd.Popcount64(wa | wb)
	}
	for ; i < n; i++ {
		inter += simd.PopcountByte(a[i] & b[i])
		union += simd.PopcountByte(a[i] | b[i])
	}
	if union == 0 {
		return 0
	}
	return 1 - float64(inter)/float64(union)
}
