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

package simd

import "math"

// kadlecMagic is the classic fast-inverse-square-root seed constant
// attributed to Jan Kadlec's refinement of the Quake III bit-hack.
const kadlecMagic uint32 = 0x5f3759df

// RSqrt32 approximates 1/sqrt(x) for x > 0 using the Kadlec bit-hack seed
// followed by two Newton-Raphson refinements, correct to at least 15
// bits. It is the fast path cosine normalization uses in place of a full
// square root.
//
// The seed comes from the bit manipulation rather than a hardware
// reciprocal-square-root estimate instruction, since none is available
// in pure Go; the refinement step is the same either way.
//
// Behavior on x <= 0 is undefined; callers must only invoke this on
// strictly positive norms.
func RSqrt32(x float32) float32 {
	i := math.Float32bits(x)
	i = kadlecMagic - (i >> 1)
	y := math.Float32frombits(i)

	half := float32(0.5) * x
	y = y * (1.5 - half*y*y) // 1st Newton-Raphson iteration
	y = y * (1.5 - half*y*y) // 2nd: pushes accuracy past 15 bits
	return y
}
