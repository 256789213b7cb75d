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

//go:build amd64 && goexperiment.simd

package kernels

import "simd/archsimd"

// Hardware AVX-512 bodies for the skylake tier. The reduction folds the
// 16-wide (or 8-wide, for float64) register down to 8 (or 4) lanes with
// GetLo/GetHi, then reuses the AVX2 file's scalar reducer for the rest.

func dotF32Skylake(a, b []float32) float64 {
	n := len(a)
	acc := archsimd.BroadcastFloat32x16(0)
	i := 0
	for ; i+16 <= n; i += 16 {
		va := archsimd.LoadFloat32x16Slice(a[i : i+16])
		vb := archsimd.LoadFloat32x16Slice(b[i : i+16])
		acc = acc.Add(va.Mul(vb))
	}
	sum := reduceF32x8(acc.GetLo().Add(acc.GetHi()))
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return float64(sum)
}

func dotF64Skylake(a, b []float64) float64 {
	n := len(a)
	acc := archsimd.BroadcastFloat64x8(0)
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i : i+8])
		vb := archsimd.LoadFloat64x8Slice(b[i : i+8])
		acc = acc.Add(va.Mul(vb))
	}
	sum := reduceF64x4(acc.GetLo().Add(acc.GetHi()))
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func l2sqF32Skylake(a, b []float32) float64 {
	n := len(a)
	acc := archsimd.BroadcastFloat32x16(0)
	i := 0
	for ; i+16 <= n; i += 16 {
		va := archsimd.LoadFloat32x16Slice(a[i : i+16])
		vb := archsimd.LoadFloat32x16Slice(b[i : i+16])
		d := va.Sub(vb)
		acc = acc.Add(d.Mul(d))
	}
	sum := reduceF32x8(acc.GetLo().Add(acc.GetHi()))
	for ; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return float64(sum)
}

func l2sqF64Skylake(a, b []float64) float64 {
	n := len(a)
	acc := archsimd.BroadcastFloat64x8(0)
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i : i+8])
		vb := archsimd.LoadFloat64x8Slice(b[i : i+8])
		d := va.Sub(vb)
		acc = acc.Add(d.Mul(d))
	}
	sum := reduceF64x4(acc.GetLo().Add(acc.GetHi()))
	for ; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func cosF32Skylake(a, b []float32) float64 {
	return cosFinalize(dotF32Skylake(a, b), dotF32Skylake(a, a), dotF32Skylake(b, b))
}

func cosF64Skylake(a, b []float64) float64 {
	return cosFinalizeF64(dotF64Skylake(a, b), dotF64Skylake(a, a), dotF64Skylake(b, b))
}

func init() {
	hwSkylake = &hwTierFuncs{
		dotF32: dotF32Skylake, l2sqF32: l2sqF32Skylake, cosF32: cosF32Skylake,
		dotF64: dotF64Skylake, l2sqF64: l2sqF64Skylake, cosF64: cosF64Skylake,
	}
}
