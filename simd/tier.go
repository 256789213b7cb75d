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

// Package simd provides the scalar primitives and host-capability probe
// that the kernel family and dispatch table build on: half-precision
// conversion, a fast reciprocal square root, bit population count, and
// runtime CPU feature detection.
package simd

import "strconv"

// Tier identifies a coherent bundle of CPU instruction-set extensions.
// Tier values are bit positions in the capability mask returned by
// Capabilities, not a dense enumeration: a caller may hold several tiers
// set at once (everything the host supports).
type Tier uint32

// Tier bit values are part of the stable ABI and must not be renumbered:
// callers may persist or transmit a capability mask and expect it to
// keep meaning the same thing across versions of this module.
const (
	TierSerial   Tier = 1 << 0
	TierNEON     Tier = 1 << 10
	TierSVE      Tier = 1 << 11
	TierSVE2     Tier = 1 << 12
	TierHaswell  Tier = 1 << 20
	TierSkylake  Tier = 1 << 21
	TierIce      Tier = 1 << 22
	TierSapphire Tier = 1 << 23
)

// Ranked lists tiers from most to least capable, the order Resolve
// walks when picking the best viable kernel.
var Ranked = []Tier{
	TierSapphire,
	TierIce,
	TierSkylake,
	TierHaswell,
	TierSVE2,
	TierSVE,
	TierNEON,
	TierSerial,
}

// String returns the lowercase tier name used by KDIST_DISABLE_TIERS.
func (t Tier) String() string {
	switch t {
	case TierSerial:
		return "serial"
	case TierNEON:
		return "neon"
	case TierSVE:
		return "sve"
	case TierSVE2:
		return "sve2"
	case TierHaswell:
		return "haswell"
	case TierSkylake:
		return "skylake"
	case TierIce:
		return "ice"
	case TierSapphire:
		return "sapphire"
	default:
		return "tier(" + strconv.FormatUint(uint64(t), 16) + ")"
	}
}

// ParseTierName returns the Tier named by s, or 0 if s names no tier.
func ParseTierName(s string) Tier {
	for _, t := range Ranked {
		if t.String() == s {
			return t
		}
	}
	return 0
}

// AllMask is every known tier bit ORed together; Resolve callers that
// don't want to restrict tiers pass this as the allowed mask.
const AllMask = uint32(TierSerial | TierNEON | TierSVE | TierSVE2 | TierHaswell | TierSkylake | TierIce | TierSapphire)
