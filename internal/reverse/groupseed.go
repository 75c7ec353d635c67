// Package reverse implements the cheapest of the three pipeline
// inversions: recovering the group seed that produced a known
// generator seed.
package reverse

import (
	"github.com/rawblock/groupseed-finder/internal/prng"
	"github.com/rawblock/groupseed-finder/pkg/models"
)

// GroupSeedFromGenSeed recovers G such that a xoroshiro128+ freshly
// seeded with (s0=G, s1=C1) produces gen on its first Next(). Since
// that first output is G+C1, the inverse is the wrapping subtraction
// G = gen - C1. Constant time: no search, no branching on the input.
func GroupSeedFromGenSeed(gen models.GenSeed) models.GroupSeed {
	return models.GroupSeed(uint64(gen) - prng.C1)
}
