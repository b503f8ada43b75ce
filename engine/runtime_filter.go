package engine

import (
	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"
	"github.com/cwbudde/algo-dsp/dsp/filter/moog"
	"github.com/cwbudde/algo-pedalboard/board"
)

const (
	minFilterHz     = 1.0
	maxFilterRatio  = 0.49
	minFilterQ      = 0.01
	ladderResScale  = 4.0
	ladderNyquistHz = 0.45
)

func clampCutoff(freq, sampleRate float64) float64 {
	return core.Clamp(freq, minFilterHz, maxFilterRatio*sampleRate)
}

// biquadRuntime runs a designed biquad cascade. The design function is chosen
// by the factory.
type biquadRuntime struct {
	kind  board.Kind
	chain *biquad.Chain
}

func (r *biquadRuntime) Configure(ctx Context, fx board.Effect) error {
	coeffs, err := designFor(r.kind, fx, ctx.SampleRate)
	if err != nil {
		return wrapConfigureErr(r.kind, err)
	}

	r.chain = biquad.NewChain(coeffs)

	return nil
}

func (r *biquadRuntime) Process(block []float64) {
	r.chain.ProcessBlock(block)
}

//nolint:cyclop
func designFor(kind board.Kind, fx board.Effect, sampleRate float64) ([]biquad.Coefficients, error) {
	switch kind {
	case board.KindHighpassFilter:
		f, err := effectAs[board.HighpassFilter](fx)
		if err != nil {
			return nil, err
		}

		return design.ButterworthHP(clampCutoff(f.CutoffHz, sampleRate), 1, sampleRate), nil
	case board.KindLowpassFilter:
		f, err := effectAs[board.LowpassFilter](fx)
		if err != nil {
			return nil, err
		}

		return design.ButterworthLP(clampCutoff(f.CutoffHz, sampleRate), 1, sampleRate), nil
	case board.KindHighShelfFilter:
		f, err := effectAs[board.HighShelfFilter](fx)
		if err != nil {
			return nil, err
		}

		s := shelf(board.ShelfSettings(f), sampleRate)

		return []biquad.Coefficients{design.HighShelf(s.CutoffHz, s.GainDB, s.Q, sampleRate)}, nil
	case board.KindLowShelfFilter:
		f, err := effectAs[board.LowShelfFilter](fx)
		if err != nil {
			return nil, err
		}

		s := shelf(board.ShelfSettings(f), sampleRate)

		return []biquad.Coefficients{design.LowShelf(s.CutoffHz, s.GainDB, s.Q, sampleRate)}, nil
	case board.KindPeakFilter:
		f, err := effectAs[board.PeakFilter](fx)
		if err != nil {
			return nil, err
		}

		s := shelf(board.ShelfSettings(f), sampleRate)

		return []biquad.Coefficients{design.Peak(s.CutoffHz, s.GainDB, s.Q, sampleRate)}, nil
	default:
		return nil, ErrUnknownEffect
	}
}

func shelf(s board.ShelfSettings, sampleRate float64) board.ShelfSettings {
	return board.ShelfSettings{
		CutoffHz: clampCutoff(s.CutoffHz, sampleRate),
		GainDB:   s.GainDB,
		Q:        max(s.Q, minFilterQ),
	}
}

// ladderMix holds the weights of input and the four ladder stages for one
// response.
var ladderMix = map[board.LadderMode][5]float64{
	board.LadderLPF12: {0, 0, 1, 0, 0},
	board.LadderHPF12: {1, -2, 1, 0, 0},
	board.LadderBPF12: {0, 0, -1, 1, 0},
	board.LadderLPF24: {0, 0, 0, 0, 1},
	board.LadderHPF24: {1, -4, 6, -4, 1},
	board.LadderBPF24: {0, 0, 1, -2, 1},
}

type ladderRuntime struct {
	fx     *moog.Filter
	mix    [5]float64
	direct bool
}

func (r *ladderRuntime) Configure(ctx Context, fx board.Effect) error {
	l, err := effectAs[board.LadderFilter](fx)
	if err != nil {
		return wrapConfigureErr(board.KindLadderFilter, err)
	}

	mix, ok := ladderMix[l.Mode]
	if !ok {
		return wrapConfigureErr(board.KindLadderFilter, board.ErrUnknownEnumValue)
	}

	r.mix = mix
	r.direct = l.Mode == board.LadderLPF24

	r.fx, err = moog.New(ctx.SampleRate,
		moog.WithVariant(moog.VariantHuovilainen),
		moog.WithOversampling(1),
		moog.WithNormalizeOutput(false),
		moog.WithCutoffHz(core.Clamp(l.CutoffHz, minFilterHz, ladderNyquistHz*ctx.SampleRate)),
		moog.WithResonance(core.Clamp(l.Resonance*ladderResScale, 0, ladderResScale)),
		moog.WithDrive(core.Clamp(l.Drive, 0.1, 24)),
	)

	return wrapConfigureErr(board.KindLadderFilter, err)
}

func (r *ladderRuntime) Process(block []float64) {
	m := r.mix

	for i, x := range block {
		y := r.fx.ProcessSample(x)
		if r.direct {
			block[i] = y
			continue
		}

		st := r.fx.State().Stage
		block[i] = m[0]*x + m[1]*st[0] + m[2]*st[1] + m[3]*st[2] + m[4]*st[3]
	}
}
