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
	"testing"
	"unsafe"

	"github.com/kdist/kdist/simd"
)

func TestResolveReturnsSerialAtMinimum(t *testing.T) {
	fn, tier := Resolve(Dot, F64, uint32(simd.TierSerial))
	if fn == nil {
		t.Fatal("expected a kernel, got nil")
	}
	if tier != simd.TierSerial {
		t.Fatalf("got tier %v, want serial", tier)
	}
}

func TestResolveUnsupportedCombination(t *testing.T) {
	fn, tier := Resolve(Hamming, F64, simd.AllMask)
	if fn != nil || tier != 0 {
		t.Fatalf("expected (nil, 0), got (%v, %v)", fn, tier)
	}
}

func TestResolveUnknownMetric(t *testing.T) {
	fn, tier := Resolve(Metric(99), F64, simd.AllMask)
	if fn != nil || tier != 0 {
		t.Fatalf("expected (nil, 0), got (%v, %v)", fn, tier)
	}
}

func TestResolveIsTotalAcrossSupportedCells(t *testing.T) {
	cases := []struct {
		m Metric
		d DType
	}{
		{Dot, F64}, {Dot, F32}, {Dot, F16}, {Dot, I8},
		{Dot, F64C}, {Dot, F32C}, {Dot, F16C},
		{VDot, F64C}, {VDot, F32C}, {VDot, F16C},
		{Cos, F64}, {Cos, F32}, {Cos, F16}, {Cos, I8},
		{L2Sq, F64}, {L2Sq, F32}, {L2Sq, F16}, {L2Sq, I8},
		{Hamming, B8}, {Jaccard, B8},
		{KL, F64}, {KL, F32}, {JS, F64}, {JS, F32},
	}
	for _, c := range cases {
		fn, tier := Resolve(c.m, c.d, simd.AllMask)
		if fn == nil {
			t.Errorf("Resolve(%v, %v) returned nil kernel", c.m, c.d)
		}
		if tier == 0 {
			t.Errorf("Resolve(%v, %v) returned zero tier", c.m, c.d)
		}
	}
}

func TestResolveHonorsAllowedMask(t *testing.T) {
	fn, tier := Resolve(Dot, F64, 0)
	if fn != nil || tier != 0 {
		t.Fatalf("expected (nil, 0) with an empty allowed mask, got (%v, %v)", fn, tier)
	}
}

func TestResolvedKernelProducesSameValueAsDirectCall(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{4, 3, 2, 1}
	fn, _ := Resolve(L2Sq, F64, simd.AllMask)
	var out float64
	fn(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), uintptr(len(a)), &out)
	almostEqual(t, out, l2sqF64Serial(a, b), 1e-9)
}
