// Package solver implements the hardest of the pipeline inversions:
// given an entity seed, enumerate every generator seed whose forward
// simulation produces it.
//
// The real game never needs to invert this step — the pipeline only
// runs forward — so the only way to recover it is to treat the
// advance as a bit-vector equation and solve for the unknown state.
// No SMT/SAT library fits here (see DESIGN.md), so this package uses a
// small, purpose-built backtracking search with an explicit node
// budget over the 64 unknown bits instead of a generic solver backend.
package solver

import (
	"log"

	"github.com/rawblock/groupseed-finder/pkg/models"
)

// maxSearchNodes guards against runaway backtracking the way the
// teacher's solvers guard against oversized instances — this search
// is a closed 64-bit bit-vector problem with typically 0-3 solutions,
// so tripping this budget indicates a genuine anomaly, not normal
// operation.
const maxSearchNodes = 1 << 22

const (
	c1 uint64 = 0x82A2B175229D6A5B
)

func c1Bit(pos uint) uint64 {
	return (c1 >> pos) & 1
}

// genSeedSolver enumerates the generator seeds g such that seeding
// xoroshiro128+ with (s0=g, s1=C1), discarding the first Next(), and
// taking the second Next() equals target (the entity seed).
//
// Derivation: writing s1a = C1^g, the discarded first
// draw mutates state to
//
//	s0a = rotl(g,24) ^ s1a ^ (s1a<<16)
//	s1b = rotl(s1a,37)
//
// and the kept second draw is target = s0a + s1b (mod 2^64, a real
// carrying addition). s0a and s1b are each GF(2)-affine in the bits of
// g (pure XOR/rotate/shift), so bit i of each depends on at most a
// handful of g's bits:
//
//	bit i of s0a = g[(i-24) mod 64] ^ g[i] ^ (i>=16 ? g[i-16] : 0) ^ const
//	bit i of s1b = g[(i-37) mod 64] ^ const
//
// The search below walks the addition's ripple-carry chain from bit 0
// upward, lazily branching on whichever bit of g a given output bit
// still needs, and pruning the instant a bit's forced sum disagrees
// with target. Every bit of g is referenced by the s1b term at exactly
// one output position (a bijection over the 64 positions), so every
// bit of g is eventually pinned — the search terminates with a
// concrete, fully-determined candidate on every surviving branch.
type genSeedSolver struct {
	target   uint64
	assigned [64]int8 // -1 = undecided, else 0/1
	nodes    int
}

func newGenSeedSolver(target uint64) *genSeedSolver {
	s := &genSeedSolver{target: target}
	for i := range s.assigned {
		s.assigned[i] = -1
	}
	return s
}

// neededIndices returns the bit indices of g that output bit i's sum
// depends on, deduplicated.
func neededIndices(i int) []int {
	idx := []int{(i - 24 + 64) % 64, i, (i - 37 + 64) % 64}
	if i >= 16 {
		idx = append(idx, i-16)
	}
	return dedupe(idx)
}

func dedupe(idx []int) []int {
	out := idx[:0:0]
	seen := make(map[int]bool, len(idx))
	for _, v := range idx {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func (s *genSeedSolver) bitOf(idx int) uint64 {
	return uint64(s.assigned[idx])
}

// sumAt evaluates bit i of s0a+s1b's would-be addends once every bit
// of g it needs has been decided.
func (s *genSeedSolver) sumAt(i int, carryIn uint64) (sum, carryOut uint64) {
	a := s.bitOf((i-24+64)%64) ^ s.bitOf(i) ^ c1Bit(uint(i))
	if i >= 16 {
		a ^= s.bitOf(i-16) ^ c1Bit(uint(i-16))
	}
	b := s.bitOf((i-37+64)%64) ^ c1Bit(uint((i-37+64)%64))

	sum = a ^ b ^ carryIn
	// full-adder majority carry
	carryOut = (a & b) | (a & carryIn) | (b & carryIn)
	return sum, carryOut
}

func (s *genSeedSolver) materialize() uint64 {
	var g uint64
	for i, v := range s.assigned {
		if v == 1 {
			g |= 1 << uint(i)
		}
	}
	return g
}

func (s *genSeedSolver) search(i int, carry uint64, out *[]uint64) {
	if s.nodes++; s.nodes > maxSearchNodes {
		log.Printf("[solver] gen-seed search exceeded %d nodes for target %#x, bailing out (treated as solver-unknown)", maxSearchNodes, s.target)
		return
	}

	if i == 64 {
		*out = append(*out, s.materialize())
		return
	}

	for _, k := range neededIndices(i) {
		if s.assigned[k] == -1 {
			s.assigned[k] = 0
			s.search(i, carry, out)
			s.assigned[k] = 1
			s.search(i, carry, out)
			s.assigned[k] = -1
			return
		}
	}

	wantBit := (s.target >> uint(i)) & 1
	sum, carryOut := s.sumAt(i, carry)
	if sum != wantBit {
		return
	}
	s.search(i+1, carryOut, out)
}

// SolveGenSeeds returns every generator seed whose forward simulation
// — one Next() discarded, the following Next() kept — equals
// entitySeed. Returns an empty, non-nil slice if no such seed exists;
// never panics.
func SolveGenSeeds(entitySeed models.EntitySeed) []models.GenSeed {
	s := newGenSeedSolver(uint64(entitySeed))
	raw := make([]uint64, 0, 1)
	s.search(0, 0, &raw)

	out := make([]models.GenSeed, len(raw))
	for i, g := range raw {
		out[i] = models.GenSeed(g)
	}
	return out
}
