// Package validate simulates the forward pipeline from a candidate
// group seed and checks whether the cohort of encryption constants it
// produces is consistent with one of the three spawner patterns.
package validate

import (
	"fmt"

	"github.com/rawblock/groupseed-finder/internal/prng"
	"github.com/rawblock/groupseed-finder/pkg/models"
)

// ValidateGroupSeed reports whether groupSeed's forward simulation
// produces the cohort's encryption constants (ecs) under at least one
// mode in modes, tried in static precedence order (Multi, Single,
// Mixed — models.OrderedModes). first is the cohort index whose
// reversal produced this candidate; it anchors the single/mixed wave
// walk.
//
// Panics if ecs is empty or first is out of range: both are
// programmer errors, never a consequence of bad seed data.
func ValidateGroupSeed(groupSeed models.GroupSeed, ecs []uint32, first int, modes models.SpawnerMode) bool {
	if len(ecs) == 0 {
		panic("validate: ecs must not be empty")
	}
	if first < 0 || first >= len(ecs) {
		panic(fmt.Sprintf("validate: first=%d out of range for %d-entity cohort", first, len(ecs)))
	}

	for _, m := range models.OrderedModes {
		if !modes.Has(m) {
			continue
		}
		switch m {
		case models.ModeMultiSpawn:
			if multiSpawnAccepts(groupSeed, ecs) {
				return true
			}
		case models.ModeSingleSpawn:
			if singleSpawnAccepts(groupSeed, ecs, first) {
				return true
			}
		case models.ModeMixedSpawn:
			if mixedSpawnAccepts(groupSeed, ecs, first) {
				return true
			}
		}
	}
	return false
}

// deriveWaveEC produces one spawn wave's encryption constant from the
// live group rng g: one generator seed, one discarded "alpha move"
// draw of unknown purpose, a secondary rng seeded from the generator
// seed yielding the entity seed after one discarded slot draw, and a
// tertiary rng whose first bounded draw is the encryption constant.
func deriveWaveEC(g *prng.State) uint32 {
	gen := g.Next()
	g.Next() // alpha move; opaque, never interpreted

	slotRNG := prng.New(gen)
	slotRNG.Next() // slot draw, discarded
	entitySeed := slotRNG.Next()

	ecRNG := prng.New(entitySeed)
	return uint32(ecRNG.NextBoundedDefault())
}

func containsEC(ecs []uint32, ec uint32) bool {
	for _, v := range ecs {
		if v == ec {
			return true
		}
	}
	return false
}

// multiSpawnAccepts checks the all-at-once wave pattern: len(ecs)
// consecutive waves on one continuously-running group rng, no
// advances between them, and every produced ec must appear in ecs.
func multiSpawnAccepts(groupSeed models.GroupSeed, ecs []uint32) bool {
	if len(ecs) < 2 {
		return false
	}
	g := prng.New(uint64(groupSeed))
	matched := 0
	for range ecs {
		if containsEC(ecs, deriveWaveEC(g)) {
			matched++
		}
	}
	return matched == len(ecs)
}

// singleSpawnAccepts checks the one-wave-per-entity pattern: each wave
// advances the same group rng by one extra next() afterward, the
// first wave's ec must equal ecs[first], and every wave's ec must
// still be present in the shrinking working set.
func singleSpawnAccepts(groupSeed models.GroupSeed, ecs []uint32, first int) bool {
	remaining := append([]uint32(nil), ecs...)
	g := prng.New(uint64(groupSeed))

	for wave := 0; len(remaining) > 0; wave++ {
		ec := deriveWaveEC(g)
		if wave == 0 && ec != ecs[first] {
			return false
		}
		idx := -1
		for i, v := range remaining {
			if v == ec {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		if len(remaining) == 0 {
			break
		}
		g.Next() // inter-wave group advance
	}
	return true
}

// mixedSpawnAccepts checks the hybrid pattern: a lone first wave that
// must produce ecs[first], one inter-wave advance, then a multi-spawn
// wave of the remaining N-1 entities.
func mixedSpawnAccepts(groupSeed models.GroupSeed, ecs []uint32, first int) bool {
	g := prng.New(uint64(groupSeed))

	if deriveWaveEC(g) != ecs[first] {
		return false
	}
	g.Next() // inter-wave group advance

	rest := make([]uint32, 0, len(ecs)-1)
	for i, v := range ecs {
		if i != first {
			rest = append(rest, v)
		}
	}
	if len(rest) < 2 {
		return false
	}

	matched := 0
	for range rest {
		if containsEC(rest, deriveWaveEC(g)) {
			matched++
		}
	}
	return matched == len(rest)
}
