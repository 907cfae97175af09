package utils

import "testing"

func TestNewRand_SameSeedSameSequence(t *testing.T) {
	a, seedA := NewRand(42)
	b, seedB := NewRand(42)
	if seedA != 42 || seedB != 42 {
		t.Fatalf("seeds = %d, %d, want 42", seedA, seedB)
	}
	for i := 0; i < 10; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
}

func TestNewRand_ZeroPicksSeed(t *testing.T) {
	if _, seed := NewRand(0); seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestRandRange(t *testing.T) {
	rng, _ := NewRand(7)
	for i := 0; i < 200; i++ {
		if v := RandRange(rng, 3, 6); v < 3 || v > 6 {
			t.Fatalf("value %d out of [3, 6]", v)
		}
	}
	if v := RandRange(rng, 5, 5); v != 5 {
		t.Errorf("degenerate range returned %d", v)
	}
}
