package engine

import (
	"github.com/cwbudde/algo-dsp/dsp/effects"
	"github.com/cwbudde/algo-dsp/dsp/effects/dynamics"
	"github.com/cwbudde/algo-dsp/dsp/effects/modulation"
	"github.com/cwbudde/algo-dsp/dsp/effects/pitch"
	"github.com/cwbudde/algo-pedalboard/board"
)

// DefaultRegistry returns a registry with a factory for every board effect.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister(board.KindNoiseGate, func(ctx Context) (Runtime, error) {
		fx, err := dynamics.NewExpander(ctx.SampleRate)
		if err != nil {
			return nil, err
		}

		return &noiseGateRuntime{fx: fx}, nil
	})
	r.MustRegister(board.KindGain, func(Context) (Runtime, error) {
		return &gainRuntime{}, nil
	})
	r.MustRegister(board.KindReverb, func(Context) (Runtime, error) {
		return &reverbRuntime{}, nil
	})
	r.MustRegister(board.KindDelay, func(ctx Context) (Runtime, error) {
		fx, err := effects.NewDelay(ctx.SampleRate)
		if err != nil {
			return nil, err
		}

		return &delayRuntime{fx: fx}, nil
	})
	r.MustRegister(board.KindChorus, func(Context) (Runtime, error) {
		return &chorusRuntime{}, nil
	})
	r.MustRegister(board.KindPhaser, func(ctx Context) (Runtime, error) {
		fx, err := modulation.NewPhaser(ctx.SampleRate)
		if err != nil {
			return nil, err
		}

		return &phaserRuntime{fx: fx}, nil
	})
	r.MustRegister(board.KindPitchShift, func(ctx Context) (Runtime, error) {
		fx, err := pitch.NewPitchShifter(ctx.SampleRate)
		if err != nil {
			return nil, err
		}

		return &pitchShiftRuntime{fx: fx}, nil
	})
	r.MustRegister(board.KindCompressor, func(ctx Context) (Runtime, error) {
		fx, err := dynamics.NewCompressor(ctx.SampleRate)
		if err != nil {
			return nil, err
		}

		return &compressorRuntime{fx: fx}, nil
	})
	r.MustRegister(board.KindDistortion, func(ctx Context) (Runtime, error) {
		fx, err := effects.NewDistortion(ctx.SampleRate)
		if err != nil {
			return nil, err
		}

		return &distortionRuntime{fx: fx}, nil
	})
	r.MustRegister(board.KindBitcrush, func(ctx Context) (Runtime, error) {
		fx, err := effects.NewBitCrusher(ctx.SampleRate)
		if err != nil {
			return nil, err
		}

		return &bitcrushRuntime{fx: fx}, nil
	})
	r.MustRegister(board.KindGSMCompressor, func(Context) (Runtime, error) {
		return &gsmRuntime{}, nil
	})
	r.MustRegister(board.KindMP3Compressor, func(Context) (Runtime, error) {
		return &mp3Runtime{}, nil
	})
	r.MustRegister(board.KindResample, func(Context) (Runtime, error) {
		return &resampleRuntime{}, nil
	})

	for _, kind := range []board.Kind{
		board.KindHighpassFilter, board.KindLowpassFilter,
		board.KindHighShelfFilter, board.KindLowShelfFilter, board.KindPeakFilter,
	} {
		r.MustRegister(kind, func(Context) (Runtime, error) {
			return &biquadRuntime{kind: kind}, nil
		})
	}

	r.MustRegister(board.KindLadderFilter, func(Context) (Runtime, error) {
		return &ladderRuntime{}, nil
	})
	r.MustRegister(board.KindLimiter, func(ctx Context) (Runtime, error) {
		fx, err := dynamics.NewCompressor(ctx.SampleRate)
		if err != nil {
			return nil, err
		}

		return &limiterRuntime{fx: fx}, nil
	})
	r.MustRegister(board.KindClipping, func(Context) (Runtime, error) {
		return &clippingRuntime{}, nil
	})

	return r
}
