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
	"unsafe"

	"github.com/kdist/kdist/simd"
)

// This file holds the serial tier: one accumulator, a single scalar loop,
// no tail handling since there is no vector width to fall short of. It is
// also the correctness baseline every vectorized tier is checked against.

func dotF64Serial(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func dotF32Serial(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// dotF16Serial accumulates into float32: half-precision inputs always
// widen to single precision before arithmetic to keep summation error
// bounded over long vectors.
func dotF16Serial(a, b []uint16) float64 {
	var sum float32
	for i := range a {
		av := simd.Float16(a[i]).ToFloat32()
		bv := simd.Float16(b[i]).ToFloat32()
		sum += av * bv
	}
	return float64(sum)
}

// dotI8Serial accumulates into int32, keeping i8 dot product a true
// integer sum rather than an alias of cos_i8's normalized form.
func dotI8Serial(a, b []int8) float64 {
	var sum int32
	for i := range a {
		sum += int32(a[i]) * int32(b[i])
	}
	return float64(sum)
}

func l2sqF64Serial(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func l2sqF32Serial(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

func l2sqF16Serial(a, b []uint16) float64 {
	var sum float32
	for i := range a {
		d := simd.Float16(a[i]).ToFloat32() - simd.Float16(b[i]).ToFloat32()
		sum += d * d
	}
	return float64(sum)
}

func l2sqI8Serial(a, b []int8) float64 {
	var sum int32
	for i := range a {
		d := int32(a[i]) - int32(b[i])
		sum += d * d
	}
	return float64(sum)
}

// cosFinalize computes 1 - Σab / sqrt(Σa²·Σb²) using the ≥15-bit RSqrt32
// approximation, returning 1 (maximum distance) when either norm is zero
// rather than dividing by zero. F32/F16/I8 inputs carry at most single
// precision, so the approximation's error is already below the noise
// floor of the inputs themselves.
func cosFinalize(sumAB, sumAA, sumBB float64) float64 {
	if sumAA == 0 || sumBB == 0 {
		return 1
	}
	denom := float32(sumAA) * float32(sumBB)
	return 1 - sumAB*float64(simd.RSqrt32(denom))
}

// cosFinalizeF64 is cosFinalize's full-precision counterpart: F64 inputs
// accumulate to ~52 bits of precision, so narrowing the norm product to
// float32 and applying RSqrt32 would throw most of that away. It uses
// math.Sqrt directly instead.
func cosFinalizeF64(sumAB, sumAA, sumBB float64) float64 {
	if sumAA == 0 || sumBB == 0 {
		return 1
	}
	return 1 - sumAB/math.Sqrt(sumAA*sumBB)
}

func cosF64Serial(a, b []float64) float64 {
	var ab, aa, bb float64
	for i := range a {
		ab += a[i] * b[i]
		aa += a[i] * a[i]
		bb += b[i] * b[i]
	}
	return cosFinalizeF64(ab, aa, bb)
}

func cosF32Serial(a, b []float32) float64 {
	var ab, aa, bb float64
	for i := range a {
		av, bv := float64(a[i]), float64(b[i])
		ab += av * bv
		aa += av * av
		bb += bv * bv
	}
	return cosFinalize(ab, aa, bb)
}

func cosF16Serial(a, b []uint16) float64 {
	var ab, aa, bb float32
	for i := range a {
		av := simd.Float16(a[i]).ToFloat32()
		bv := simd.Float16(b[i]).ToFloat32()
		ab += av * bv
		aa += av * av
		bb += bv * bv
	}
	return cosFinalize(float64(ab), float64(aa), float64(bb))
}

// cosI8Serial accumulates over integers and promotes to float64 only for
// the final normalization.
func cosI8Serial(a, b []int8) float64 {
	var ab, aa, bb int32
	for i := range a {
		av, bv := int32(a[i]), int32(b[i])
		ab += av * bv
		aa += av * av
		bb += bv * bv
	}
	return cosFinalize(float64(ab), float64(aa), float64(bb))
}

// KernelFunc adapters --------------------------------------------------

func wrapRealF64(fn func(a, b []float64) float64) KernelFunc {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = fn(f64Slice(a, n), f64Slice(b, n))
	}
}

func wrapRealF32(fn func(a, b []float32) float64) KernelFunc {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = fn(f32Slice(a, n), f32Slice(b, n))
	}
}

func wrapRealF16(fn func(a, b []uint16) float64) KernelFunc {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = fn(f16Slice(a, n), f16Slice(b, n))
	}
}

func wrapRealI8(fn func(a, b []int8) float64) KernelFunc {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = fn(i8Slice(a, n), i8Slice(b, n))
	}
}
