package engine

import (
	"github.com/cwbudde/algo-dsp/dsp/effects"
	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"
	"github.com/cwbudde/algo-pedalboard/board"
)

// GSM 06.10 full rate works on 13-bit linear PCM at 8 kHz with a telephone
// band. The speech coder itself is approximated by the spectral codec at a
// low signal-to-noise ratio.
const (
	gsmSampleRate = 8000.0
	gsmLowHz      = 200.0
	gsmHighHz     = 3400.0
	gsmBitDepth   = 13.0
	gsmSNRDB      = 24.0
	gsmFilterOrd  = 4
)

type gsmRuntime struct {
	rt     *roundTrip
	band   *biquad.Chain
	codec  *spectralCodec
	crush  *effects.BitCrusher
	native bool
}

func (r *gsmRuntime) Configure(ctx Context, fx board.Effect) error {
	g, err := effectAs[board.GSMCompressor](fx)
	if err != nil {
		return wrapConfigureErr(board.KindGSMCompressor, err)
	}

	rate := gsmSampleRate

	r.native = ctx.SampleRate <= gsmSampleRate
	if r.native {
		rate = ctx.SampleRate
	} else {
		r.rt, err = newRoundTrip(ctx.SampleRate, gsmSampleRate, g.Quality)
		if err != nil {
			return wrapConfigureErr(board.KindGSMCompressor, err)
		}
	}

	coeffs := design.ButterworthHP(clampCutoff(gsmLowHz, rate), gsmFilterOrd, rate)
	coeffs = append(coeffs, design.ButterworthLP(clampCutoff(gsmHighHz, rate), gsmFilterOrd, rate)...)
	r.band = biquad.NewChain(coeffs)

	r.codec, err = newSpectralCodec(rate, clampCutoff(gsmHighHz, rate), gsmSNRDB)
	if err != nil {
		return wrapConfigureErr(board.KindGSMCompressor, err)
	}

	r.crush, err = effects.NewBitCrusher(rate)
	if err != nil {
		return wrapConfigureErr(board.KindGSMCompressor, err)
	}

	return wrapConfigureErr(board.KindGSMCompressor, configureBitCrusher(r.crush, rate, gsmBitDepth))
}

func (r *gsmRuntime) Process(block []float64) {
	if len(block) == 0 {
		return
	}

	low := block
	if !r.native {
		low = r.rt.toTarget(block)
	}

	r.band.ProcessBlock(low)
	low = r.codec.process(low)
	r.crush.ProcessInPlace(low)

	if r.native {
		copy(block, low)
		return
	}

	copy(block, r.rt.fromTarget(low, len(block)))
}
