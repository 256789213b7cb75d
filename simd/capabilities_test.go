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

import "testing"

func TestCapabilitiesAlwaysHasSerial(t *testing.T) {
	caps := Capabilities()
	if Tier(caps)&TierSerial == 0 {
		t.Errorf("Capabilities() = %x, missing TierSerial", caps)
	}
}

func TestCapabilitiesIsStable(t *testing.T) {
	a := Capabilities()
	b := Capabilities()
	if a != b {
		t.Errorf("Capabilities() not idempotent: %x != %x", a, b)
	}
}

func TestParseTierName(t *testing.T) {
	if ParseTierName("haswell") != TierHaswell {
		t.Errorf("ParseTierName(haswell) did not resolve to TierHaswell")
	}
	if ParseTierName("bogus") != 0 {
		t.Errorf("ParseTierName(bogus) should be 0")
	}
}
