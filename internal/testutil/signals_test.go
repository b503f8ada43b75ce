package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	// First sample of a sine at phase 0 should be 0.
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	c := DeterministicNoise(43, 1.0, 64)
	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		if i == 3 && v != 1 || i != 3 && v != 0 {
			t.Fatalf("imp[%d] = %v", i, v)
		}
	}
	for _, v := range Impulse(4, 10) {
		if v != 0 {
			t.Fatal("out-of-bounds impulse must be silent")
		}
	}
}

func TestInterleave(t *testing.T) {
	got := Interleave([]float64{1, 0, -1}, []float64{0.5, -0.5, 0})
	want := []int16{32767, 16384, 0, -16384, -32767, 0}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRMS(t *testing.T) {
	if RMS(nil) != 0 {
		t.Fatal("RMS(nil) != 0")
	}
	s := DeterministicSine(100, 48000, 1, 48000)
	if math.Abs(RMS(s)-1/math.Sqrt2) > 1e-6 {
		t.Fatalf("RMS(sine) = %v", RMS(s))
	}
}
