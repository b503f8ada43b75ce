package engine

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pedalboard/board"
	"github.com/cwbudde/algo-pedalboard/internal/testutil"
)

func TestLagrange4ReproducesCubic(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return 0.5*x*x*x - x*x + 2*x - 3 }

	for _, tt := range []float64{0, 0.1, 0.5, 0.9} {
		got := lagrange4(tt, f(-1), f(0), f(1), f(2))
		if math.Abs(got-f(tt)) > 1e-12 {
			t.Fatalf("lagrange4(%v) = %v, want %v", tt, got, f(tt))
		}
	}
}

func TestRateConverterZeroOrderHold(t *testing.T) {
	t.Parallel()

	c, err := newRateConverter(4, 8, board.QualityZeroOrderHold)
	if err != nil {
		t.Fatalf("newRateConverter: %v", err)
	}

	got := c.convert([]float64{1, 2, 3}, 6)
	want := []float64{1, 1, 2, 2, 3, 3}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRateConverterLinear(t *testing.T) {
	t.Parallel()

	c, err := newRateConverter(4, 8, board.QualityLinear)
	if err != nil {
		t.Fatalf("newRateConverter: %v", err)
	}

	got := c.convert([]float64{0, 1, 0}, 6)
	want := []float64{0, 0.5, 1, 0.5, 0, 0}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRateConverterInvalidRate(t *testing.T) {
	t.Parallel()

	_, err := newRateConverter(0, 8000, board.QualityLinear)
	if err == nil {
		t.Fatal("expected error for zero input rate")
	}

	_, err = newRateConverter(44100, math.NaN(), board.QualityWindowedSinc)
	if err == nil {
		t.Fatal("expected error for NaN output rate")
	}
}

// A tone well below the target Nyquist frequency survives the round trip for
// every quality, with the sinc latency removed.
func TestRoundTripPreservesLowTone(t *testing.T) {
	t.Parallel()

	const (
		sr     = 44100.0
		target = 22050.0
		n      = 4096
		edge   = 256
	)

	in := testutil.DeterministicSine(220, sr, 0.5, n)

	qualities := []board.Quality{
		board.QualityLinear, board.QualityCatmullRom, board.QualityLagrange,
		board.QualityWindowedSinc, board.QualityWindowedSinc32,
	}

	for _, q := range qualities {
		t.Run(q.String(), func(t *testing.T) {
			t.Parallel()

			rt, err := newRoundTrip(sr, target, q)
			if err != nil {
				t.Fatalf("newRoundTrip: %v", err)
			}

			low := rt.toTarget(in)
			if len(low) != n/2 {
				t.Fatalf("target length = %d, want %d", len(low), n/2)
			}

			out := rt.fromTarget(low, n)
			if len(out) != n {
				t.Fatalf("length = %d, want %d", len(out), n)
			}

			diff, err := testutil.MaxAbsDiff(in[edge:n-edge], out[edge:n-edge])
			if err != nil {
				t.Fatal(err)
			}

			if diff > 0.05 {
				t.Fatalf("max deviation %v", diff)
			}
		})
	}
}

func TestResampleRuntimePassThrough(t *testing.T) {
	t.Parallel()

	for _, target := range []float64{0, 44100, 96000} {
		r := &resampleRuntime{}

		err := r.Configure(Context{SampleRate: 44100},
			board.Resample{TargetSampleRate: target, Quality: board.QualityLinear})
		if err != nil {
			t.Fatalf("Configure: %v", err)
		}

		block := testutil.DeterministicNoise(3, 0.5, 128)
		want := append([]float64(nil), block...)

		r.Process(block)

		for i := range want {
			if block[i] != want[i] {
				t.Fatalf("target %v: sample %d changed", target, i)
			}
		}
	}
}

// Downsampling to 8 kHz removes a tone above 4 kHz.
func TestResampleRuntimeBandLimits(t *testing.T) {
	t.Parallel()

	r := &resampleRuntime{}

	err := r.Configure(Context{SampleRate: 44100},
		board.Resample{TargetSampleRate: 8000, Quality: board.QualityWindowedSinc64})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}

	block := testutil.DeterministicSine(10000, 44100, 0.5, 8192)
	r.Process(block)

	if rms := testutil.RMS(block[1024 : 8192-1024]); rms > 0.05 {
		t.Fatalf("10 kHz tone RMS after 8 kHz round trip = %v", rms)
	}
}
