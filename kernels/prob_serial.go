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
)

// klTermF64 returns one lane's contribution to Σ a·ln(a/b): zero when a is
// zero regardless of b (the limit of x·ln(x) as x→0), and +Inf when a is
// nonzero but b is zero.
func klTermF64(a, b float64) float64 {
	if a == 0 {
		return 0
	}
	if b == 0 {
		return math.Inf(1)
	}
	return a * math.Log(a/b)
}

func klF64(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += klTermF64(a[i], b[i])
	}
	return sum
}

func klF32(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += klTermF64(float64(a[i]), float64(b[i]))
	}
	return sum
}

// jsF64 computes Jensen-Shannon divergence as the average of both
// distributions' KL divergence against their midpoint, folding the
// midpoint computation into the same pass rather than materializing it.
func jsF64(a, b []float64) float64 {
	var sum float64
	for i := range a {
		mid := (a[i] + b[i]) / 2
		sum += klTermF64(a[i], mid) + klTermF64(b[i], mid)
	}
	return sum / 2
}

func jsF32(a, b []float32) float64 {
	var sum float64
	for i := range a {
		mid := float64(a[i]+b[i]) / 2
		sum += klTermF64(float64(a[i]), mid) + klTermF64(float64(b[i]), mid)
	}
	return sum / 2
}

func wrapProbF64(fn func(a, b []float64) float64) KernelFunc {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = fn(f64Slice(a, n), f64Slice(b, n))
	}
}

func wrapProbF32(fn func(a, b []float32) float64) KernelFunc {
	return func(a, b unsafe.Pointer, n uintptr, out *float64) {
		*out = fn(f32Slice(a, n), f32Slice(b, n))
	}
}
