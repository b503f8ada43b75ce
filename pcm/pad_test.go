package pcm

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-pedalboard/internal/testutil"
)

func TestPadStartOnly(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(1, 8000)
	copy(buf.Data[0], testutil.Float32(testutil.DeterministicSine(440, 8000, 0.5, 8000)))
	buf.Data[0][0] = 0.75

	out, err := Pad(buf, 8000, 0.5, 0)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}

	if out.Channels() != 1 || out.Frames() != 12000 {
		t.Fatalf("shape = %dx%d, want 1x12000", out.Channels(), out.Frames())
	}

	for i := 0; i < 4000; i++ {
		if out.Data[0][i] != 0 {
			t.Fatalf("padding sample %d = %v, want 0", i, out.Data[0][i])
		}
	}

	for i := range buf.Data[0] {
		if out.Data[0][4000+i] != buf.Data[0][i] {
			t.Fatalf("audio sample %d moved", i)
		}
	}
}

func TestPadBothEnds(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(2, 10)
	for c := range buf.Data {
		for i := range buf.Data[c] {
			buf.Data[c][i] = 1
		}
	}

	out, err := Pad(buf, 44100, 0.0001, 0.00005)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}

	if out.Channels() != 2 {
		t.Fatalf("channels = %d, want 2", out.Channels())
	}

	lead := int(math.Round(44100 * 0.0001))
	tail := int(math.Round(44100 * 0.00005))

	if out.Frames() != lead+10+tail {
		t.Fatalf("frames = %d, want %d", out.Frames(), lead+10+tail)
	}

	for c := range out.Data {
		for i, v := range out.Data[c] {
			inside := i >= lead && i < lead+10
			if inside && v != 1 || !inside && v != 0 {
				t.Fatalf("channel %d sample %d = %v", c, i, v)
			}
		}
	}
}

// Not parallel: AllocsPerRun refuses to run in parallel tests.
func TestPadZeroIsPassThrough(t *testing.T) {
	buf := NewBuffer(2, 16)

	out, err := Pad(buf, 48000, 0, 0)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}

	if out != buf {
		t.Fatal("zero padding must return the input buffer unchanged")
	}

	allocs := testing.AllocsPerRun(10, func() {
		_, _ = Pad(buf, 48000, 0, 0)
	})
	if allocs != 0 {
		t.Fatalf("zero padding allocated %v times", allocs)
	}
}

func TestPadInvalid(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(1, 4)

	tests := []struct {
		name       string
		sr         int
		start, end float64
	}{
		{"negative start", 8000, -0.1, 0},
		{"negative end", 8000, 0, -1},
		{"nan start", 8000, math.NaN(), 0},
		{"zero sample rate", 0, 0.1, 0},
	}

	for _, tc := range tests {
		_, err := Pad(buf, tc.sr, tc.start, tc.end)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}
