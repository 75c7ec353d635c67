// Package models holds the shared vocabulary between the record
// ingestion shim and every reversal package: the decoded entity
// record, the seed types that flow through the three pipeline levels,
// and the small result types the finder returns.
package models

// Gender ratio sentinels (species-derived). These values short-circuit
// the gender roll in the forward trait generator instead of drawing a
// bounded value.
const (
	GenderRatioFixedMale   uint8 = 0
	GenderRatioFixedFemale uint8 = 254
	GenderRatioGenderless  uint8 = 255
)

// IV slot order as decoded off the wire: HP, Atk, Def, SpA, SpD, Spe.
const (
	IVSlotHP = iota
	IVSlotAtk
	IVSlotDef
	IVSlotSpA
	IVSlotSpD
	IVSlotSpe
)

// Entity is the decoded entity record the reversal pipeline operates
// on. Decoding the game's binary format is an external collaborator's
// job; this struct is the interface contract the decoder must satisfy.
type Entity struct {
	EncryptionConstant uint32
	Personality        uint32
	TrainerID          uint16
	SecretID           uint16
	IVs                [6]uint8
	FlawlessIVCount    uint8
	AbilityNumber      uint8
	Gender             uint8
	GenderRatio        uint8
	Nature             uint8
	IsAlpha            bool
	HeightScalar       uint8
	WeightScalar       uint8
}

// ShinyXor computes shiny_xor(a, b) = ((a^b) ^ ((a^b)>>16)) & 0xFFFF,
// the shared building block for both the shiny test and the anti-shiny
// predicate.
func ShinyXor(a, b uint32) uint32 {
	x := a ^ b
	return (x ^ (x >> 16)) & 0xFFFF
}

// CombineIDs packs secret/trainer ids into the single u32 the shiny
// check XORs the personality against: (sid<<16)|tid.
func CombineIDs(secretID, trainerID uint16) uint32 {
	return uint32(secretID)<<16 | uint32(trainerID)
}

// IsShiny reports whether the entity's personality/trainer pair
// satisfies shiny_xor(pid, combine(sid,tid)) < 16.
func (e Entity) IsShiny() bool {
	return ShinyXor(e.Personality, CombineIDs(e.SecretID, e.TrainerID)) < 16
}

// IVsSpeedLast returns the IVs reordered with Speed moved to the last
// slot, the order the flawless-IV roll consumes them in.
func (e Entity) IVsSpeedLast() [6]uint8 {
	return [6]uint8{
		e.IVs[IVSlotHP], e.IVs[IVSlotAtk], e.IVs[IVSlotDef],
		e.IVs[IVSlotSpA], e.IVs[IVSlotSpD], e.IVs[IVSlotSpe],
	}
}

// HasFixedGender reports whether the gender ratio sentinel skips the
// gender roll entirely (genderless, fixed-female, or fixed-male).
func (e Entity) HasFixedGender() bool {
	switch e.GenderRatio {
	case GenderRatioGenderless, GenderRatioFixedFemale, GenderRatioFixedMale:
		return true
	default:
		return false
	}
}

// GroupSeed, GenSeed and EntitySeed are disjoint 64-bit roles within
// the pipeline; kept as distinct types so a value from one level can
// never be passed to a function expecting another by accident.
type (
	GroupSeed  uint64
	GenSeed    uint64
	EntitySeed uint64
)

// RollCount is the number of personality re-rolls a spawn performed,
// in [1, R].
type RollCount uint8

// DefaultMaxRolls is R, the default roll ceiling.
const DefaultMaxRolls RollCount = 32

// SpawnerMode is a bitset over the three spawn-wave patterns a cohort
// can have been generated under.
type SpawnerMode uint8

const (
	ModeMultiSpawn SpawnerMode = 1 << iota
	ModeSingleSpawn
	ModeMixedSpawn
)

// DefaultModes is Multi|Single, the finder orchestrator's default mode
// set.
const DefaultModes = ModeMultiSpawn | ModeSingleSpawn

// Has reports whether m includes mode.
func (m SpawnerMode) Has(mode SpawnerMode) bool {
	return m&mode != 0
}

// OrderedModes lists every mode in the static precedence applied when
// more than one would accept the same candidate: Multi, then Single,
// then Mixed.
var OrderedModes = []SpawnerMode{ModeMultiSpawn, ModeSingleSpawn, ModeMixedSpawn}

// SeedCandidate pairs an entity seed with the roll count that produced
// a confirmed match, the unit of work the entity-seed reverser emits.
type SeedCandidate struct {
	Seed  EntitySeed
	Rolls RollCount
}

// FinderResult is what the finder orchestrator returns on success: the
// recovered group seed and the index of the cohort entity whose
// reversal produced it.
type FinderResult struct {
	GroupSeed  GroupSeed
	FirstIndex int
}
