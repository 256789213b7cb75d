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

import "unsafe"

// KernelFunc is the ABI-level kernel pointer: it reads n elements of the
// caller-declared dtype from a and b and writes the result through out.
// Real-valued metrics write one float64 at out[0]; complex metrics
// (dot/vdot over *c dtypes) write the real part at out[0] and the
// imaginary part at out[1].
//
// n is an element count, not a byte count, except for Hamming/Jaccard
// over B8 where it is a byte count. Kernels never allocate and never
// return an error: every fault is a caller-contract violation that the
// dispatch/batch layer is responsible for having ruled out already.
type KernelFunc func(a, b unsafe.Pointer, n uintptr, out *float64)

// writeComplex stores (re, im) through a KernelFunc's out pointer.
func writeComplex(out *float64, re, im float64) {
	*out = re
	imPtr := (*float64)(unsafe.Add(unsafe.Pointer(out), unsafe.Sizeof(float64(0))))
	*imPtr = im
}

// f64Slice/f32Slice/i8Slice/byteSlice reinterpret a raw kernel input as a
// typed Go slice of length n without copying. Kernel bodies operate on
// these slices; unsafe is confined to the KernelFunc boundary here and
// to batch.Matrix's row addressing.
func f64Slice(p unsafe.Pointer, n uintptr) []float64 {
	return unsafe.Slice((*float64)(p), n)
}

func f32Slice(p unsafe.Pointer, n uintptr) []float32 {
	return unsafe.Slice((*float32)(p), n)
}

func f16Slice(p unsafe.Pointer, n uintptr) []uint16 {
	return unsafe.Slice((*uint16)(p), n)
}

func i8Slice(p unsafe.Pointer, n uintptr) []int8 {
	return unsafe.Slice((*int8)(p), n)
}

func byteSlice(p unsafe.Pointer, n uintptr) []byte {
	return unsafe.Slice((*byte)(p), n)
}
