package prng

import "testing"

func TestNext_MatchesFirstOutputFormula(t *testing.T) {
	// For every seed s, next() == (s + C1) mod 2^64 — the first draw
	// never touches the rotate/shift/xor chain at all.
	seeds := []uint64{0, 1, 0xFFFFFFFFFFFFFFFF, 0xce662cc305201801, 0xfcca2321c7d655ed}
	for _, seed := range seeds {
		got := New(seed).Next()
		want := seed + C1 // wrapping add, matches Go's uint64 overflow semantics
		if got != want {
			t.Errorf("New(%#x).Next() = %#x, want %#x", seed, got, want)
		}
	}
}

func TestNext_Deterministic(t *testing.T) {
	const seed = 0x38dd607647e5b2b5
	a := New(seed)
	b := New(seed)
	for i := 0; i < 256; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d diverged: %#x != %#x", i, x, y)
		}
	}
}

func TestNextBounded_StaysInRange(t *testing.T) {
	s := New(0xa69d3c25666a8c6a)
	for _, mod := range []uint64{1, 2, 6, 25, 32, 252, 0x81, 0xFFFFFFFF} {
		for i := 0; i < 1000; i++ {
			v := s.NextBounded(mod)
			if v >= mod {
				t.Fatalf("NextBounded(%d) = %d, out of range", mod, v)
			}
		}
	}
}

func TestBoundMask_TightestCoveringMask(t *testing.T) {
	cases := []struct {
		mod  uint64
		mask uint64
	}{
		{1, 0},
		{2, 1},
		{3, 3},
		{6, 7},
		{25, 31},
		{32, 31},
		{252, 255},
		{0x81, 0xFF},
		{0xFFFFFFFF, 0xFFFFFFFF},
	}
	for _, c := range cases {
		if got := boundMask(c.mod); got != c.mask {
			t.Errorf("boundMask(%d) = %#x, want %#x", c.mod, got, c.mask)
		}
	}
}
