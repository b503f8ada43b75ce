package engine

import (
	"fmt"

	"github.com/cwbudde/algo-pedalboard/board"
	"github.com/cwbudde/algo-pedalboard/pcm"
)

// Engine applies effect chains to audio buffers.
type Engine struct {
	registry *Registry
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry replaces the default registry.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// New creates an Engine backed by DefaultRegistry unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{}

	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	if e.registry == nil {
		e.registry = DefaultRegistry()
	}

	return e
}

// Process runs chain over buf and returns the processed audio. buf is left
// untouched. An empty chain returns a copy of buf.
func (e *Engine) Process(chain board.Chain, buf *pcm.Buffer, sampleRate int) (*pcm.Buffer, error) {
	err := buf.Validate()
	if err != nil {
		return nil, err
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("engine: sample rate %d: %w", sampleRate, pcm.ErrInvalidInput)
	}

	ctx := Context{SampleRate: float64(sampleRate)}
	channels := buf.Float64()

	for _, fx := range chain {
		err = e.apply(ctx, fx, channels)
		if err != nil {
			return nil, err
		}
	}

	return pcm.FromFloat64(channels)
}

func (e *Engine) apply(ctx Context, fx board.Effect, channels [][]float64) error {
	kind := fx.Kind()

	factory := e.registry.Lookup(kind)
	if factory == nil {
		return fmt.Errorf("engine: %w: %s", ErrUnknownEffect, kind)
	}

	for c := range channels {
		rt, err := factory(ctx)
		if err != nil {
			return fmt.Errorf("engine: create %s: %w", kind, err)
		}

		err = rt.Configure(ctx, fx)
		if err != nil {
			return err
		}

		if mp, ok := rt.(MultichannelProcessor); ok {
			mp.ProcessChannels(channels)
			return nil
		}

		rt.Process(channels[c])
	}

	return nil
}
