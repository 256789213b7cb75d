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

import "github.com/kdist/kdist/simd"

// This file holds the portable vectorized tier: a 4-way unrolled,
// 4-accumulator reduction over plain Go slices. A single function here
// backs every non-serial tier this build can report (neon/sve/sve2 on
// arm64, and haswell/skylake/ice/sapphire on amd64 builds without
// GOEXPERIMENT=simd): the four-accumulator reduction tree is what makes
// this tier's rounding differ, deterministically, from the
// single-accumulator serial tier, even before true hardware intrinsics
// are layered on top (see real_vector_avx2_amd64.go and
// real_vector_avx512_amd64.go for the haswell/skylake hardware path).

func dotF64Vector(a, b []float64) float64 {
	n := len(a)
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func dotF32Vector(a, b []float32) float64 {
	n := len(a)
	var s0, s1, s2, s3 float32
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return float64(sum)
}

func dotF16Vector(a, b []uint16) float64 {
	n := len(a)
	var s0, s1, s2, s3 float32
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += simd.Float16(a[i]).ToFloat32() * simd.Float16(b[i]).ToFloat32()
		s1 += simd.Float16(a[i+1]).ToFloat32() * simd.Float16(b[i+1]).ToFloat32()
		s2 += simd.Float16(a[i+2]).ToFloat32() * simd.Float16(b[i+2]).ToFloat32()
		s3 += simd.Float16(a[i+3]).ToFloat32() * simd.Float16(b[i+3]).ToFloat32()
	}
	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += simd.Float16(a[i]).ToFloat32() * simd.Float16(b[i]).ToFloat32()
	}
	return float64(sum)
}

func dotI8Vector(a, b []int8) float64 {
	n := len(a)
	var s0, s1, s2, s3 int32
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += int32(a[i]) * int32(b[i])
		s1 += int32(a[i+1]) * int32(b[i+1])
		s2 += int32(a[i+2]) * int32(b[i+2])
		s3 += int32(a[i+3]) * int32(b[i+3])
	}
	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += int32(a[i]) * int32(b[i])
	}
	return float64(sum)
}

func l2sqF64Vector(a, b []float64) float64 {
	n := len(a)
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		d0, d1, d2, d3 := a[i]-b[i], a[i+1]-b[i+1], a[i+2]-b[i+2], a[i+3]-b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func l2sqF32Vector(a, b []float32) float64 {
	n := len(a)
	var s0, s1, s2, s3 float32
	i := 0
	for ; i+4 <= n; i += 4 {
		d0, d1, d2, d3 := a[i]-b[i], a[i+1]-b[i+1], a[i+2]-b[i+2], a[i+3]-b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return float64(sum)
}

func l2sqF16Vector(a, b []uint16) float64 {
	n := len(a)
	var s0, s1, s2, s3 float32
	i := 0
	for ; i+4 <= n; i += 4 {
		for k := 0; k < 4; k++ {
			d := simd.Float16(a[i+k]).ToFloat32() - simd.Float16(b[i+k]).ToFloat32()
			switch k {
			case 0:
				s0 += d * d
			case 1:
				s1 += d * d
			case 2:
				s2 += d * d
			case 3:
				s3 += d * d
			}
		}
	}
	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		d := simd.Float16(a[i]).ToFloat32() - simd.Float16(b[i]).ToFloat32()
		sum += d * d
	}
	return float64(sum)
}

func l2sqI8Vector(a, b []int8) float64 {
	n := len(a)
	var s0, s1, s2, s3 int32
	i := 0
	for ; i+4 <= n; i += 4 {
		d0 := int32(a[i]) - int32(b[i])
		d1 := int32(a[i+1]) - int32(b[i+1])
		d2 := int32(a[i+2]) - int32(b[i+2])
		d3 := int32(a[i+3]) - int32(b[i+3])
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		d := int32(a[i]) - int32(b[i])
		sum += d * d
	}
	return float64(sum)
}

// cos's vectorized tier reuses the same three-accumulator-group idea but
// needs all of Σab, Σa², Σb², so it is implemented directly against
// dotF*Vector's building blocks rather than re-deriving the unroll.

func cosF64Vector(a, b []float64) float64 {
	ab := dotF64Vector(a, b)
	aa := dotF64Vector(a, a)
	bb := dotF64Vector(b, b)
	return cosFinalizeF64(ab, aa, bb)
}

func cosF32Vector(a, b []float32) float64 {
	ab := dotF32Vector(a, b)
	aa := dotF32Vector(a, a)
	bb := dotF32Vector(b, b)
	return cosFinalize(ab, aa, bb)
}

func cosF16Vector(a, b []uint16) float64 {
	ab := dotF16Vector(a, b)
	aa := dotF16Vector(a, a)
	bb := dotF16Vector(b, b)
	return cosFinalize(ab, aa, bb)
}

func cosI8Vector(a, b []int8) float64 {
	ab := dotI8Vector(a, b)
	aa := dotI8Vector(a, a)
	bb := dotI8Vector(b, b)
	return cosFinalize(ab, aa, bb)
}
