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
	"os"
	"strings"
	"sync"
)

// probeTiers is implemented per-GOARCH in capabilities_amd64.go,
// capabilities_arm64.go and capabilities_other.go. It returns every tier
// bit the host actually supports, excluding TierSerial (added
// unconditionally by Capabilities).
var probeTiers func() Tier

var (
	capsOnce   sync.Once
	capsMask   uint32
	disableEnv = "KDIST_DISABLE_TIERS"
)

// Capabilities inspects the host CPU once and returns a bitmask of every
// tier it supports, always including TierSerial. The result is cached
// for the lifetime of the process: the set of tiers a host supports
// cannot change while the process runs, so it is safe to compute once
// and reuse everywhere.
//
// KDIST_DISABLE_TIERS, a comma-separated list of tier names (e.g.
// "ice,sapphire"), masks those bits out for debugging without requiring
// a rebuild.
func Capabilities() uint32 {
	capsOnce.Do(func() {
		mask := Tier(TierSerial)
		if probeTiers != nil {
			mask |= probeTiers()
		}
		mask &^= disabledByEnv()
		capsMask = uint32(mask)
	})
	return capsMask
}

func disabledByEnv() Tier {
	var disabled Tier
	for _, name := range strings.Split(os.Getenv(disableEnv), ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}
		disabled |= ParseTierName(name)
	}
	return disabled
}
