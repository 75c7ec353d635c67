// Package antishiny implements the one pure predicate in the pipeline:
// whether a non-shiny entity could be a shiny roll the game's bit-28
// personality flip then suppressed.
package antishiny

import "github.com/rawblock/groupseed-finder/pkg/models"

// flipBit is the personality bit the game's anti-shiny correction
// flips before the real shiny test runs.
const flipBit = 0x1000_0000

// IsPotentialAntiShiny reports whether personality, XOR'd with the
// anti-shiny flip bit, would have satisfied the shiny test against
// (trainerID, secretID).
func IsPotentialAntiShiny(trainerID, secretID uint16, personality uint32) bool {
	combined := models.CombineIDs(secretID, trainerID)
	return models.ShinyXor(personality^flipBit, combined) < 16
}
