package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-pedalboard/board"
	"github.com/cwbudde/algo-pedalboard/engine"
	"github.com/cwbudde/algo-pedalboard/pcm"
	"github.com/sirupsen/logrus"
)

// ErrUpstreamEngine wraps failures reported by the Engine or the Stretcher.
// The original error stays reachable through errors.Is and errors.As.
var ErrUpstreamEngine = errors.New("upstream engine failure")

// Engine applies an effect chain to a buffer and returns the result.
type Engine interface {
	Process(chain board.Chain, buf *pcm.Buffer, sampleRate int) (*pcm.Buffer, error)
}

// Stretcher changes the duration of a buffer by a speed factor, optionally
// shifting its pitch.
type Stretcher interface {
	TimeStretch(buf *pcm.Buffer, sampleRate int, factor, semitones float64) (*pcm.Buffer, error)
}

// Processor runs parameter records over audio. It holds no per-call state and
// may be shared by concurrent callers when its Engine and Stretcher can.
type Processor struct {
	engine    Engine
	stretcher Stretcher
	log       logrus.FieldLogger
}

// Option configures a Processor.
type Option func(*Processor)

// WithEngine replaces the default engine.
func WithEngine(e Engine) Option {
	return func(p *Processor) {
		if e != nil {
			p.engine = e
		}
	}
}

// WithStretcher replaces the default time stretcher.
func WithStretcher(s Stretcher) Option {
	return func(p *Processor) {
		if s != nil {
			p.stretcher = s
		}
	}
}

// WithLogger sets the logger for chain summaries and stage diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a Processor. Without options it uses engine.New,
// engine.NewStretcher and the logrus standard logger.
func New(opts ...Option) *Processor {
	p := &Processor{}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	if p.engine == nil {
		p.engine = engine.New()
	}

	if p.stretcher == nil {
		p.stretcher = engine.NewStretcher()
	}

	if p.log == nil {
		p.log = logrus.StandardLogger()
	}

	return p
}

// Process applies params to in. It returns either the complete result or an
// error, never partial audio.
func (p *Processor) Process(params board.Params, in pcm.Interleaved) (pcm.Interleaved, error) {
	buf, err := pcm.FromInt16(in)
	if err != nil {
		return pcm.Interleaved{}, err
	}

	chain, err := board.BuildChain(params)
	if err != nil {
		return pcm.Interleaved{}, err
	}

	p.log.WithFields(logrus.Fields{
		"sample_rate": in.SampleRate,
		"channels":    in.Channels,
		"frames":      buf.Frames(),
	}).Info(chain.String())

	buf, err = pcm.Pad(buf, in.SampleRate, params.Padding.StartSeconds, params.Padding.EndSeconds)
	if err != nil {
		return pcm.Interleaved{}, err
	}

	start := time.Now()

	buf, err = p.engine.Process(chain, buf, in.SampleRate)
	if err != nil {
		return pcm.Interleaved{}, fmt.Errorf("%w: %w", ErrUpstreamEngine, err)
	}

	p.log.WithFields(logrus.Fields{
		"stage":    "chain",
		"effects":  len(chain),
		"frames":   buf.Frames(),
		"duration": time.Since(start),
	}).Debug("Effect chain applied")

	// The stretch takes its pitch from the pitch-shift control, enabled or
	// not; time_stretch.semitones is accepted but unused.
	if factor := params.TimeStretch.Factor; factor != 1 {
		start = time.Now()
		semitones := params.PitchShift.Semitones

		buf, err = p.stretcher.TimeStretch(buf, in.SampleRate, factor, semitones)
		if err != nil {
			return pcm.Interleaved{}, fmt.Errorf("%w: %w", ErrUpstreamEngine, err)
		}

		p.log.WithFields(logrus.Fields{
			"stage":     "time_stretch",
			"factor":    factor,
			"semitones": semitones,
			"frames":    buf.Frames(),
			"duration":  time.Since(start),
		}).Debug("Time stretch applied")
	}

	return pcm.ToInt16(buf, in.SampleRate)
}
