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

// cell holds, for one (metric, dtype) pair, the serial fallback and the
// best available vectorized body at each non-serial tier. A nil entry in
// tiered means that tier has no distinct body and falls through to the
// next-lower one during resolution.
type cell struct {
	serial KernelFunc
	tiered map[simd.Tier]KernelFunc
}

var table map[Metric]map[DType]cell

func init() {
	table = map[Metric]map[DType]cell{
		Dot: {
			F64: {
				serial: wrapRealF64(dotF64Serial),
				tiered: hwOrVector64(dotF64Vector, hwDotF64),
			},
			F32: {
				serial: wrapRealF32(dotF32Serial),
				tiered: hwOrVector32(dotF32Vector, hwDotF32),
			},
			F16: {serial: wrapRealF16(dotF16Serial), tiered: portable16(dotF16Vector)},
			I8:  {serial: wrapRealI8(dotI8Serial), tiered: portable8(dotI8Vector)},
			F64C: {serial: wrapComplexF64(dotComplexF64)},
			F32C: {serial: wrapComplexF32(dotComplexF32)},
			F16C: {serial: wrapComplexF16(dotComplexF16)},
		},
		VDot: {
			F64C: {serial: wrapComplexF64(vdotComplexF64)},
			F32C: {serial: wrapComplexF32(vdotComplexF32)},
			F16C: {serial: wrapComplexF16(vdotComplexF16)},
		},
		Cos: {
			F64: {serial: wrapRealF64(cosF64Serial), tiered: hwOrVector64(cosF64Vector, hwCosF64)},
			F32: {serial: wrapRealF32(cosF32Serial), tiered: hwOrVector32(cosF32Vector, hwCosF32)},
			F16: {serial: wrapRealF16(cosF16Serial), tiered: portable16(cosF16Vector)},
			I8:  {serial: wrapRealI8(cosI8Serial), tiered: portable8(cosI8Vector)},
		},
		L2Sq: {
			F64: {serial: wrapRealF64(l2sqF64Serial), tiered: hwOrVector64(l2sqF64Vector, hwL2sqF64)},
			F32: {serial: wrapRealF32(l2sqF32Serial), tiered: hwOrVector32(l2sqF32Vector, hwL2sqF32)},
			F16: {serial: wrapRealF16(l2sqF16Serial), tiered: portable16(l2sqF16Vector)},
			I8:  {serial: wrapRealI8(l2sqI8Serial), tiered: portable8(l2sqI8Vector)},
		},
		Hamming: {
			B8: {serial: wrapBits(hammingBits), tiered: portableBits(hammingBitsVector)},
		},
		Jaccard: {
			B8: {serial: wrapBits(jaccardBits), tiered: portableBits(jaccardBitsVector)},
		},
		KL: {
			F64: {serial: wrapProbF64(klF64), tiered: portable64(klF64Vector)},
			F32: {serial: wrapProbF32(klF32), tiered: portable32(klF32Vector)},
		},
		JS: {
			F64: {serial: wrapProbF64(jsF64), tiered: portable64(jsF64Vector)},
			F32: {serial: wrapProbF32(jsF32), tiered: portable32(jsF32Vector)},
		},
	}
}

// portable* spread one portable-vectorized body across every non-serial
// tier in simd.Ranked, Arm and x86 alike; Resolve only reaches the slots
// whose tiers the host reports. A hardware body, when present, later
// overrides the haswell/skylake slots.
func portable64(fn func(a, b []float64) float64) map[simd.Tier]KernelFunc {
	w := wrapRealF64(fn)
	return spreadAllTiers(w)
}

func portable32(fn func(a, b []float32) float64) map[simd.Tier]KernelFunc {
	w := wrapRealF32(fn)
	return spreadAllTiers(w)
}

func portable16(fn func(a, b []uint16) float64) map[simd.Tier]KernelFunc {
	w := wrapRealF16(fn)
	return spreadAllTiers(w)
}

func portable8(fn func(a, b []int8) float64) map[simd.Tier]KernelFunc {
	w := wrapRealI8(fn)
	return spreadAllTiers(w)
}

func portableBits(fn func(a, b []byte) float64) map[simd.Tier]KernelFunc {
	w := wrapBits(fn)
	return spreadAllTiers(w)
}

func spreadAllTiers(w KernelFunc) map[simd.Tier]KernelFunc {
	m := make(map[simd.Tier]KernelFunc, len(simd.Ranked)-1)
	for _, t := range simd.Ranked {
		if t != simd.TierSerial {
			m[t] = w
		}
	}
	return m
}

// hwOrVector64/32 build the tiered map for a float64/float32 metric whose
// haswell/skylake slots may be overridden by a true hardware body
// (hw_registry.go's hwHaswell/hwSkylake, populated only when this build
// was compiled with GOEXPERIMENT=simd on amd64).
func hwOrVector64(portableFn func(a, b []float64) float64, pick func(*hwTierFuncs) func(a, b []float64) float64) map[simd.Tier]KernelFunc {
	m := portable64(portableFn)
	if hwHaswell != nil {
		if f := pick(hwHaswell); f != nil {
			m[simd.TierHaswell] = wrapRealF64(f)
		}
	}
	if hwSkylake != nil {
		if f := pick(hwSkylake); f != nil {
			m[simd.TierSkylake] = wrapRealF64(f)
		}
	}
	return m
}

func hwOrVector32(portableFn func(a, b []float32) float64, pick func(*hwTierFuncs) func(a, b []float32) float64) map[simd.Tier]KernelFunc {
	m := portable32(portableFn)
	if hwHaswell != nil {
		if f := pick(hwHaswell); f != nil {
			m[simd.TierHaswell] = wrapRealF32(f)
		}
	}
	if hwSkylake != nil {
		if f := pick(hwSkylake); f != nil {
			m[simd.TierSkylake] = wrapRealF32(f)
		}
	}
	return m
}

func hwDotF64(h *hwTierFuncs) func(a, b []float64) float64   { return h.dotF64 }
func hwCosF64(h *hwTierFuncs) func(a, b []float64) float64   { return h.cosF64 }
func hwL2sqF64(h *hwTierFuncs) func(a, b []float64) float64  { return h.l2sqF64 }
func hwDotF32(h *hwTierFuncs) func(a, b []float32) float64   { return h.dotF32 }
func hwCosF32(h *hwTierFuncs) func(a, b []float32) float64   { return h.cosF32 }
func hwL2sqF32(h *hwTierFuncs) func(a, b []float32) float64  { return h.l2sqF32 }

// Resolve picks the highest-ranked kernel available for (metric, dtype)
// that is both implemented and present in allowed, intersected with what
// this process's hardware (and KDIST_DISABLE_TIERS) actually supports.
// It returns (nil, 0) when the (metric, dtype) combination has no kernel
// at all, regardless of tier.
func Resolve(metric Metric, dtype DType, allowed uint32) (KernelFunc, simd.Tier) {
	dtypes, ok := table[metric]
	if !ok {
		return nil, 0
	}
	c, ok := dtypes[dtype]
	if !ok {
		return nil, 0
	}

	usable := allowed & simd.Capabilities()
	for _, t := range simd.Ranked {
		if t == simd.TierSerial {
			continue
		}
		if uint32(t)&usable == 0 {
			continue
		}
		if fn, ok := c.tiered[t]; ok && fn != nil {
			return fn, t
		}
	}
	if c.serial != nil && uint32(simd.TierSerial)&usable != 0 {
		return c.serial, simd.TierSerial
	}
	return nil, 0
}
