package solver

import (
	"sort"
	"testing"

	"github.com/rawblock/groupseed-finder/internal/prng"
	"github.com/rawblock/groupseed-finder/pkg/models"
)

// forwardEntitySeed replays the exact composition SolveGenSeeds
// inverts: a fresh state seeded from g, first Next() discarded,
// second Next() kept.
func forwardEntitySeed(g uint64) uint64 {
	s := prng.New(g)
	s.Next()
	return s.Next()
}

func sortedUint64(vals []models.GenSeed) []uint64 {
	out := make([]uint64, len(vals))
	for i, v := range vals {
		out[i] = uint64(v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func assertEqualSets(t *testing.T, got []models.GenSeed, want []uint64) {
	t.Helper()
	gotSorted := sortedUint64(got)
	wantSorted := append([]uint64(nil), want...)
	sort.Slice(wantSorted, func(i, j int) bool { return wantSorted[i] < wantSorted[j] })

	if len(gotSorted) != len(wantSorted) {
		t.Fatalf("got %d candidates %#x, want %d candidates %#x", len(gotSorted), gotSorted, len(wantSorted), wantSorted)
	}
	for i := range gotSorted {
		if gotSorted[i] != wantSorted[i] {
			t.Fatalf("candidate %d = %#x, want %#x (full got=%#x want=%#x)", i, gotSorted[i], wantSorted[i], gotSorted, wantSorted)
		}
	}
}

func TestSolveGenSeeds_Soundness(t *testing.T) {
	// Every candidate SolveGenSeeds returns must, when replayed forward,
	// reproduce the requested entity seed exactly.
	targets := []uint64{
		0xfcca2321c7d655ed,
		0x366a1a7ed65e146c,
		0xa69d3c25666a8c6a,
		0x0123456789abcdef,
		5,
	}
	for _, target := range targets {
		for _, g := range SolveGenSeeds(models.EntitySeed(target)) {
			if got := forwardEntitySeed(uint64(g)); got != target {
				t.Errorf("candidate %#x for target %#x replays to %#x", g, target, got)
			}
		}
	}
}

func TestSolveGenSeeds_ScenarioUnique(t *testing.T) {
	// Unique-solution case: exactly one generator seed reaches this entity seed.
	got := SolveGenSeeds(models.EntitySeed(0xfcca2321c7d655ed))
	assertEqualSets(t, got, []uint64{0xad819080a1effcf6})
}

func TestSolveGenSeeds_ScenarioMulti(t *testing.T) {
	// Two-solution case.
	got := SolveGenSeeds(models.EntitySeed(0x366a1a7ed65e146c))
	assertEqualSets(t, got, []uint64{0x041b4ef9172f53f3, 0xd9d1e54df50036ec})
}

func TestSolveGenSeeds_ScenarioTriple(t *testing.T) {
	// Three-solution case.
	got := SolveGenSeeds(models.EntitySeed(0xa69d3c25666a8c6a))
	assertEqualSets(t, got, []uint64{0x323ff4f71fb9898c, 0x3d8d7e995f7569fe, 0x0eec4cffd2595d1b})
}

func TestSolveGenSeeds_NoSolutions(t *testing.T) {
	// No generator seed reaches this entity seed.
	got := SolveGenSeeds(models.EntitySeed(5))
	if len(got) != 0 {
		t.Fatalf("expected no candidates for target 5, got %#x", sortedUint64(got))
	}
}

func TestSolveGenSeeds_NeverPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("SolveGenSeeds panicked: %v", r)
		}
	}()
	for _, target := range []uint64{0, 1, ^uint64(0)} {
		SolveGenSeeds(models.EntitySeed(target))
	}
}
