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

//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	probeTiers = probeAMD64Tiers
}

// probeAMD64Tiers decodes CPUID leaves 1 and 7 (via golang.org/x/sys/cpu,
// which caches the CPUID reads itself) into this package's tier bits.
func probeAMD64Tiers() Tier {
	var t Tier

	// F16C has no direct golang.org/x/sys/cpu flag; every CPU with FMA
	// also has F16C (both arrived with Haswell), so FMA is used as the
	// proxy.
	hasF16C := cpu.X86.HasFMA

	if cpu.X86.HasAVX2 && cpu.X86.HasFMA && hasF16C {
		t |= TierHaswell
	}
	if cpu.X86.HasAVX512F {
		t |= TierSkylake
	}
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512VNNI && cpu.X86.HasAVX512IFMA &&
		cpu.X86.HasAVX512BITALG && cpu.X86.HasAVX512VBMI2 && cpu.X86.HasAVX512VPOPCNTDQ {
		t |= TierIce
	}
	// AVX-512 FP16 (Sapphire Rapids) has no golang.org/x/sys/cpu flag as
	// of the version this module pins. Sapphire is therefore never
	// reported by this probe until x/sys/cpu grows the bit.

	return t
}
