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

// Complex kernels for dot and vdot over the *c dtypes. A complex vector
// of logical length n is 2n interleaved scalars: element i's real part
// is at index 2i, its imaginary part at 2i+1. Every wrapper below takes
// the logical n and multiplies by two internally, so the public
// KernelFunc contract never exposes the factor of two to callers.
//
// dotComplex computes the unconjugated product a*b:
//
//	re = Σ(ar·br - ai·bi), im = Σ(ar·bi + ai·br)
//
// vdotComplex is the conjugated product, computed with this sign pattern:
//
//	re = Σ(ar·br + ai·bi), im = Σ(ai·br - ar·bi)
//
// As complex arithmetic this equals a·conj(b), the complex conjugate of
// conj(a)·b. See DESIGN.md for why this sign pattern was chosen.

func dotComplexF64(a, b []float64) (re, im float64) {
	for i := 0; i+1 < len(a) && i+1 < len(b); i += 2 {
		ar, ai := a[i], a[i+1]
		br, bi := b[i], b[i+1]
		re += ar*br - ai*bi
		im += ar*bi + ai*br
	}
	return re, im
}

func vdotComplexF64(a, b []float64) (re, im float64) {
	for i := 0; i+1 < len(a) && i+1 < len(b); i += 2 {
		ar, ai := a[i], a[i+1]
		br, bi := b[i], b[i+1]
		re += ar*br + ai*bi
		im += ai*br - ar*bi
	}
	return re, im
}

func dotComplexF32(a, b []float32) (re, im float64) {
	for i := 0; i+1 < len(a) && i+1 < len(b); i += 2 {
		ar, ai := float64(a[i]), float64(a[i+1])
		br, bi := float64(b[i]), float64(b[i+1])
		re += ar*br - ai*bi
		im += ar*bi + ai*br
	}
	return re, im
}

func vdotComplexF32(a, b []float32) (re, im float64) {
	for i := 0; i+1 < len(a) && i+1 < len(b); i += 2 {
		ar, ai := float64(a[i]), float64(a[i+1])
		br, bi := float64(b[i]), float64(b[i+1])
		re += ar*br + ai*bi
		im += ai*br - ar*bi
	}
	return re, im
}

func dotComplexF16(a, b []uint16) (re, im float64) {
	var accRe, accIm float32
	for i := 0; i+1 < len(a) && i+1 < len(b); i += 2 {
		ar, ai := simd.Float16(a[i]).ToFloat32(), simd.Float16(a[i+1]).ToFloat32()
		br, bi := simd.Float16(b[i]).ToFloat32(), simd.Float16(b[i+1]).ToFloat32()
		accRe += ar*br - ai*bi
		accIm += ar*bi + ai*br
	}
	return float64(accRe), float64(accIm)
}

func vdotComplexF16(a, b []uint16) (re, im float64) {
	var accRe, accIm float32
	for i := 0; i+1 < len(a) && i+1 < len(b); i += 2 {
		ar, ai := simd.Float16(a[i]).ToFloat32(), simd.Float16(a[i+1]).ToFloat32()
		br, bi := simd.Float16(b[i]).ToFloat32(), simd.Float16(b[i+1]).ToFloat32()
		accRe += ar*br + ai*bi
		accIm += ai*br - ar*bi
	}
	return float64(accRe), float64(accIm)
}

func wrapComplexF64(fn func(a, b []float64) (re, im float64)) KernelFunc {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		re, im := fn(f64Slice(a, n*2), f64Slice(b, n*2))
		writeComplex(out, re, im)
	}
}

func wrapComplexF32(fn func(a, b []float32) (re, im float64)) KernelFunc {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		re, im := fn(f32Slice(a, n*2), f32Slice(b, n*2))
		writeComplex(out, re, im)
	}
}

func wrapComplexF16(fn func(a, b []uint16) (re, im float64)) KernelFunc {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		re, im := fn(f16Slice(a, n*2), f16Slice(b, n*2))
		writeComplex(out, re, im)
	}
}
