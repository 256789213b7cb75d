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

// hwHaswell/hwSkylake are populated by real_vector_avx2_amd64.go and
// real_vector_avx512_amd64.go respectively when built with
// GOEXPERIMENT=simd on amd64. Without that build tag, both stay nil and
// the dispatch table falls back to the portable real_vector.go body for
// the haswell/skylake tier slots.
type hwTierFuncs struct {
	dotF32, l2sqF32, cosF32 func(a, b []float32) float64
	dotF64, l2sqF64, cosF64 func(a, b []float64) float64
}

var (
	hwHaswell *hwTierFuncs
	hwSkylake *hwTierFuncs
)
