package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-pedalboard/board"
	"github.com/cwbudde/algo-pedalboard/internal/testutil"
	"github.com/cwbudde/algo-pedalboard/pcm"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// fakeEngine records the chains it receives and returns the buffer unchanged
// unless err is set.
type fakeEngine struct {
	err    error
	chains []board.Chain
	frames []int
}

func (f *fakeEngine) Process(chain board.Chain, buf *pcm.Buffer, _ int) (*pcm.Buffer, error) {
	f.chains = append(f.chains, chain)
	f.frames = append(f.frames, buf.Frames())

	if f.err != nil {
		return nil, f.err
	}

	return buf.Clone(), nil
}

// fakeStretcher records calls and keeps every second frame.
type fakeStretcher struct {
	err       error
	calls     int
	factor    float64
	semitones float64
}

func (f *fakeStretcher) TimeStretch(buf *pcm.Buffer, _ int, factor, semitones float64) (*pcm.Buffer, error) {
	f.calls++
	f.factor = factor
	f.semitones = semitones

	if f.err != nil {
		return nil, f.err
	}

	out := pcm.NewBuffer(buf.Channels(), buf.Frames()/2)
	for c := range out.Data {
		for i := range out.Data[c] {
			out.Data[c][i] = buf.Data[c][2*i]
		}
	}

	return out, nil
}

func quietLogger() *logrus.Logger {
	l, _ := test.NewNullLogger()
	return l
}

func stereoInput() pcm.Interleaved {
	return pcm.Interleaved{
		SampleRate: 8000,
		Channels:   2,
		Samples: testutil.Interleave(
			testutil.DeterministicSine(440, 8000, 0.5, 800),
			testutil.DeterministicNoise(7, 0.25, 800),
		),
	}
}

func newFaked(e *fakeEngine, s *fakeStretcher) *Processor {
	return New(WithEngine(e), WithStretcher(s), WithLogger(quietLogger()))
}

func TestProcessIdentity(t *testing.T) {
	t.Parallel()

	in := stereoInput()

	out, err := New(WithLogger(quietLogger())).Process(board.DefaultParams(), in)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if out.SampleRate != in.SampleRate || out.Channels != in.Channels {
		t.Fatalf("format = %d Hz x %d, want %d Hz x %d", out.SampleRate, out.Channels, in.SampleRate, in.Channels)
	}

	if len(out.Samples) != len(in.Samples) {
		t.Fatalf("length = %d, want %d", len(out.Samples), len(in.Samples))
	}

	for i := range in.Samples {
		if out.Samples[i] != in.Samples[i] {
			t.Fatalf("sample %d = %d, want %d", i, out.Samples[i], in.Samples[i])
		}
	}
}

func TestProcessPassesChainInOrder(t *testing.T) {
	t.Parallel()

	e := &fakeEngine{}
	s := &fakeStretcher{}

	p := board.DefaultParams()
	p.Clipping.Enabled = true
	p.GainDB = -3
	p.Reverb.Enabled = true

	_, err := newFaked(e, s).Process(p, stereoInput())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(e.chains) != 1 {
		t.Fatalf("engine called %d times, want 1", len(e.chains))
	}

	got := e.chains[0].Kinds()
	want := []board.Kind{board.KindGain, board.KindReverb, board.KindClipping}

	if len(got) != len(want) {
		t.Fatalf("chain = %v", e.chains[0])
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestProcessPadsBeforeEngine(t *testing.T) {
	t.Parallel()

	e := &fakeEngine{}

	p := board.DefaultParams()
	p.Padding.StartSeconds = 0.5
	p.Padding.EndSeconds = 0.25

	out, err := newFaked(e, &fakeStretcher{}).Process(p, stereoInput())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if e.frames[0] != 800+4000+2000 {
		t.Fatalf("engine saw %d frames, want %d", e.frames[0], 6800)
	}

	if out.Frames() != 6800 {
		t.Fatalf("output frames = %d, want 6800", out.Frames())
	}

	for i := range 4000 * 2 {
		if out.Samples[i] != 0 {
			t.Fatalf("leading sample %d = %d, want 0", i, out.Samples[i])
		}
	}
}

// A unit factor never reaches the stretcher, even with a pitch change.
func TestProcessSkipsStretchAtUnitFactor(t *testing.T) {
	t.Parallel()

	s := &fakeStretcher{}

	p := board.DefaultParams()
	p.TimeStretch.Semitones = 12
	p.PitchShift.Semitones = 12

	in := stereoInput()

	out, err := newFaked(&fakeEngine{}, s).Process(p, in)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if s.calls != 0 {
		t.Fatalf("stretcher called %d times", s.calls)
	}

	for i := range in.Samples {
		if out.Samples[i] != in.Samples[i] {
			t.Fatalf("sample %d changed", i)
		}
	}
}

func TestProcessStretches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		pitch         float64
		stretchPitch  float64
		pitchEnabled  bool
		wantSemitones float64
	}{
		{"pitch shift semitones", 12, 0, false, 12},
		{"pitch shift enabled", -5, 0, true, -5},
		{"stretch semitones ignored", 0, 7, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := &fakeStretcher{}

			p := board.DefaultParams()
			p.TimeStretch.Factor = 2
			p.TimeStretch.Semitones = tc.stretchPitch
			p.PitchShift.Enabled = tc.pitchEnabled
			p.PitchShift.Semitones = tc.pitch

			out, err := newFaked(&fakeEngine{}, s).Process(p, stereoInput())
			if err != nil {
				t.Fatalf("Process: %v", err)
			}

			if s.calls != 1 {
				t.Fatalf("stretcher called %d times, want 1", s.calls)
			}

			if s.factor != 2 || s.semitones != tc.wantSemitones {
				t.Fatalf("stretcher got (factor %v, semitones %v), want (2, %v)",
					s.factor, s.semitones, tc.wantSemitones)
			}

			if out.Frames() != 400 {
				t.Fatalf("frames = %d, want 400", out.Frames())
			}
		})
	}
}

func TestProcessErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	tests := []struct {
		name     string
		mutate   func(*board.Params, *pcm.Interleaved)
		engine   *fakeEngine
		stretch  *fakeStretcher
		wantErr  []error
		noEngine bool
	}{
		{
			name:     "bad sample rate",
			mutate:   func(_ *board.Params, in *pcm.Interleaved) { in.SampleRate = 0 },
			wantErr:  []error{pcm.ErrInvalidInput},
			noEngine: true,
		},
		{
			name:     "ragged interleave",
			mutate:   func(_ *board.Params, in *pcm.Interleaved) { in.Samples = in.Samples[:len(in.Samples)-1] },
			wantErr:  []error{pcm.ErrInvalidInput},
			noEngine: true,
		},
		{
			name:     "unknown quality",
			mutate:   func(p *board.Params, _ *pcm.Interleaved) { p.Resample.Method = "Cubic" },
			wantErr:  []error{board.ErrUnknownEnumValue},
			noEngine: true,
		},
		{
			name:     "negative padding",
			mutate:   func(p *board.Params, _ *pcm.Interleaved) { p.Padding.EndSeconds = -1 },
			wantErr:  []error{pcm.ErrInvalidInput},
			noEngine: true,
		},
		{
			name:    "engine failure",
			engine:  &fakeEngine{err: boom},
			wantErr: []error{ErrUpstreamEngine, boom},
		},
		{
			name:    "stretch failure",
			mutate:  func(p *board.Params, _ *pcm.Interleaved) { p.TimeStretch.Factor = 3 },
			stretch: &fakeStretcher{err: boom},
			wantErr: []error{ErrUpstreamEngine, boom},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e := tc.engine
			if e == nil {
				e = &fakeEngine{}
			}

			s := tc.stretch
			if s == nil {
				s = &fakeStretcher{}
			}

			p := board.DefaultParams()
			in := stereoInput()

			if tc.mutate != nil {
				tc.mutate(&p, &in)
			}

			out, err := newFaked(e, s).Process(p, in)
			for _, want := range tc.wantErr {
				if !errors.Is(err, want) {
					t.Fatalf("error %v does not match %v", err, want)
				}
			}

			if out.Samples != nil {
				t.Fatalf("partial result returned: %d samples", len(out.Samples))
			}

			if tc.noEngine && len(e.chains) != 0 {
				t.Fatal("engine ran despite an earlier failure")
			}
		})
	}
}

func TestProcessLogsChainSummary(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	p := board.DefaultParams()
	p.GainDB = 2

	_, err := New(WithEngine(&fakeEngine{}), WithLogger(logger)).Process(p, stereoInput())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	var info, debug int

	for _, entry := range hook.AllEntries() {
		switch entry.Level {
		case logrus.InfoLevel:
			info++

			if !strings.HasPrefix(entry.Message, "Pedalboard with 1 plugins") {
				t.Fatalf("info message = %q", entry.Message)
			}
		case logrus.DebugLevel:
			debug++
		}
	}

	if info != 1 || debug != 1 {
		t.Fatalf("got %d info and %d debug entries, want 1 and 1", info, debug)
	}
}

func TestProcessEndToEnd(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&logs)

	p := board.DefaultParams()
	p.GainDB = -6
	p.Lowpass.Enabled = true
	p.Lowpass.CutoffHz = 2000
	p.Limiter.Enabled = true
	p.TimeStretch.Factor = 2

	in := stereoInput()

	out, err := New(WithLogger(logger)).Process(p, in)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if out.Frames() != in.Frames()/2 || out.Channels != 2 {
		t.Fatalf("shape = %d frames x %d channels", out.Frames(), out.Channels)
	}

	if !strings.Contains(logs.String(), "Pedalboard with 3 plugins") {
		t.Fatalf("chain summary missing from logs: %s", logs.String())
	}
}
