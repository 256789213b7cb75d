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

import (
	"math"
	"testing"
)

func TestRSqrt32Accuracy(t *testing.T) {
	for _, x := range []float32{1, 2, 4, 0.25, 100, 1e6, 1e-6} {
		got := RSqrt32(x)
		want := float32(1 / math.Sqrt(float64(x)))
		relErr := math.Abs(float64(got-want)) / float64(want)
		// 15 correct bits implies a relative error well under 2^-15.
		if relErr > 1.0/(1<<15) {
			t.Errorf("RSqrt32(%v) = %v, want ~%v (relErr=%v)", x, got, want, relErr)
		}
	}
}
