package engine

import (
	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/effects"
	"github.com/cwbudde/algo-pedalboard/board"
)

const maxDistortionDrive = 20.0

// distortionRuntime computes tanh(gain*x). Gains above what the shaper accepts
// are split into a linear pre-gain.
type distortionRuntime struct {
	fx      *effects.Distortion
	preGain float64
}

func (r *distortionRuntime) Configure(ctx Context, fx board.Effect) error {
	d, err := effectAs[board.Distortion](fx)
	if err != nil {
		return wrapConfigureErr(board.KindDistortion, err)
	}

	gain := core.DBToLinear(d.DriveDB)

	r.preGain = 1
	if gain > maxDistortionDrive {
		r.preGain = gain / maxDistortionDrive
		gain = maxDistortionDrive
	}

	err = r.fx.SetSampleRate(ctx.SampleRate)
	if err != nil {
		return wrapConfigureErr(board.KindDistortion, err)
	}

	err = r.fx.SetMode(effects.DistortionModeTanh)
	if err != nil {
		return wrapConfigureErr(board.KindDistortion, err)
	}

	err = r.fx.SetDrive(core.Clamp(gain, 0.01, maxDistortionDrive))
	if err != nil {
		return wrapConfigureErr(board.KindDistortion, err)
	}

	err = r.fx.SetOutputLevel(1)
	if err != nil {
		return wrapConfigureErr(board.KindDistortion, err)
	}

	return wrapConfigureErr(board.KindDistortion, r.fx.SetMix(1))
}

func (r *distortionRuntime) Process(block []float64) {
	if r.preGain != 1 {
		for i := range block {
			block[i] *= r.preGain
		}
	}

	r.fx.ProcessInPlace(block)
}

type bitcrushRuntime struct {
	fx *effects.BitCrusher
}

func (r *bitcrushRuntime) Configure(ctx Context, fx board.Effect) error {
	b, err := effectAs[board.Bitcrush](fx)
	if err != nil {
		return wrapConfigureErr(board.KindBitcrush, err)
	}

	return wrapConfigureErr(board.KindBitcrush, configureBitCrusher(r.fx, ctx.SampleRate, b.BitDepth))
}

func (r *bitcrushRuntime) Process(block []float64) {
	r.fx.ProcessInPlace(block)
}

func configureBitCrusher(fx *effects.BitCrusher, sampleRate, bitDepth float64) error {
	err := fx.SetSampleRate(sampleRate)
	if err != nil {
		return err
	}

	err = fx.SetBitDepth(core.Clamp(bitDepth, 1, 32))
	if err != nil {
		return err
	}

	err = fx.SetDownsample(1)
	if err != nil {
		return err
	}

	return fx.SetMix(1)
}
