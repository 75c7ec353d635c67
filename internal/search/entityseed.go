// Package search implements the only parallel stage in the pipeline:
// recovering every entity seed whose forward trait generator
// reproduces a decoded entity record.
//
// The first 32-bit draw from a freshly seeded state is S+C1, whose low
// 32 bits are the entity's encryption constant — so the low half of
// the unknown seed is pinned down algebraically, leaving 2^32 unknown
// upper-half candidates confirmed one at a time by tryCombination. How
// that space gets divided across workers lives in native_portable.go;
// see native_doc.go for where a hardware-accelerated path would plug
// in instead.
package search

import (
	"sync"

	"github.com/rawblock/groupseed-finder/internal/prng"
	"github.com/rawblock/groupseed-finder/pkg/models"
)

// antiShinyFlip mirrors internal/antishiny's flip bit, which that
// package does not export.
const antiShinyFlip = 0x1000_0000

// flawlessCounts are the flawless-IV counts every surviving seed is
// confirmed against, in the order the forward generator can produce
// them.
var flawlessCounts = [3]uint8{0, 3, 4}

// sink is the concurrent, order-agnostic bag every chunk inserts
// confirmed candidates into; callers only read it after every worker
// has finished.
type sink struct {
	mu      sync.Mutex
	results []models.SeedCandidate
}

func (s *sink) add(c models.SeedCandidate) {
	s.mu.Lock()
	s.results = append(s.results, c)
	s.mu.Unlock()
}

// lowHalf recovers the seed's fixed low 32 bits from the entity's
// encryption constant: the first next() output is S+C1, so
// S_low = ec - C1 (wrapping, 32-bit).
func lowHalf(ec uint32) uint32 {
	return ec - uint32(prng.C1)
}

// tryCombination runs the full forward trait generator from seed with
// r personality rolls and k forced-flawless IVs, reporting whether
// every field it produces matches rec.
func tryCombination(seed uint64, r models.RollCount, k uint8, rec models.Entity, widenAntiShiny bool) bool {
	rng := prng.New(seed)

	rng.NextBoundedDefault() // encryption constant; already matched by construction
	fakeTID := uint32(rng.NextBoundedDefault())

	var personality uint32
	for i := models.RollCount(0); i < r; i++ {
		personality = uint32(rng.NextBoundedDefault())
	}

	if !personalityMatches(rec, personality, fakeTID, widenAntiShiny) {
		return false
	}
	if !confirmIVs(rng, rec, k) {
		return false
	}

	ability := uint8(rng.NextBounded(2)) + 1
	if ability != rec.AbilityNumber {
		return false
	}

	if !rec.HasFixedGender() {
		draw := uint8(rng.NextBounded(252)) + 1
		var gender uint8
		if draw < rec.GenderRatio {
			gender = 1
		}
		if gender != rec.Gender {
			return false
		}
	}

	nature := uint8(rng.NextBounded(25))
	if nature != rec.Nature {
		return false
	}

	if rec.IsAlpha {
		return true
	}

	height := uint8(rng.NextBounded(0x81)) + uint8(rng.NextBounded(0x80))
	if height != rec.HeightScalar {
		return false
	}
	weight := uint8(rng.NextBounded(0x81)) + uint8(rng.NextBounded(0x80))
	return weight == rec.WeightScalar
}

// personalityMatches implements the personality gate: a shiny record
// only accepts a low-16-bit match whose simulated fake-trainer shiny
// test also passes; a non-shiny record accepts an exact match, plus
// the anti-shiny-flipped value when widenAntiShiny says this record
// could be a suppressed shiny.
func personalityMatches(rec models.Entity, personality, fakeTID uint32, widenAntiShiny bool) bool {
	if rec.IsShiny() {
		if personality&0xFFFF != rec.Personality&0xFFFF {
			return false
		}
		return models.ShinyXor(personality, fakeTID) < 16
	}
	if personality == rec.Personality {
		return true
	}
	return widenAntiShiny && personality == rec.Personality^antiShinyFlip
}

// confirmIVs replays the flawless-IV assignment: k slots are forced to
// 31 by rejection-sampled draws, the rest are rolled and must match
// rec's IVs (Speed last) exactly.
func confirmIVs(rng *prng.State, rec models.Entity, k uint8) bool {
	ivs := rec.IVsSpeedLast()
	assigned := [6]int8{-1, -1, -1, -1, -1, -1}

	for i := uint8(0); i < k; i++ {
		var slot int
		for {
			slot = int(rng.NextBounded(6))
			if assigned[slot] == -1 {
				break
			}
		}
		if ivs[slot] != 31 {
			return false
		}
		assigned[slot] = 31
	}

	for slot, v := range assigned {
		if v != -1 {
			continue
		}
		draw := uint8(rng.NextBounded(32))
		if draw != ivs[slot] {
			return false
		}
	}
	return true
}
