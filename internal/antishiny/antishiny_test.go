package antishiny

import "testing"

func TestIsPotentialAntiShiny_KnownCase(t *testing.T) {
	got := IsPotentialAntiShiny(15156, 10217, 0xD9ECD53B)
	if !got {
		t.Fatalf("IsPotentialAntiShiny(15156, 10217, 0xD9ECD53B) = false, want true")
	}
}

func TestIsPotentialAntiShiny_FalseCase(t *testing.T) {
	got := IsPotentialAntiShiny(1, 1, 0x00000000)
	if got {
		t.Fatalf("IsPotentialAntiShiny(1, 1, 0) = true, want false")
	}
}
