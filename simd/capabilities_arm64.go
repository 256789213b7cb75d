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

//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	probeTiers = probeARM64Tiers
}

// probeARM64Tiers reports NEON (part of the ARMv8-A baseline) and
// SVE/SVE2, the latter surfaced through the kernel hwcap mechanism that
// golang.org/x/sys/cpu wraps.
func probeARM64Tiers() Tier {
	var t Tier
	if cpu.ARM64.HasASIMD {
		t |= TierNEON
	}
	if cpu.ARM64.HasSVE {
		t |= TierSVE
	}
	if cpu.ARM64.HasSVE2 {
		t |= TierSVE2
	}
	return t
}
