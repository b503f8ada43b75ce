package engine

import (
	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/effects/dynamics"
	"github.com/cwbudde/algo-pedalboard/board"
	vecmath "github.com/cwbudde/algo-vecmath"
)

const (
	gateRangeDB = -120.0

	limiterRatio    = 100.0
	limiterAttackMs = 0.1
)

type noiseGateRuntime struct {
	fx *dynamics.Expander
}

func (r *noiseGateRuntime) Configure(ctx Context, fx board.Effect) error {
	g, err := effectAs[board.NoiseGate](fx)
	if err != nil {
		return wrapConfigureErr(board.KindNoiseGate, err)
	}

	err = r.fx.SetSampleRate(ctx.SampleRate)
	if err != nil {
		return wrapConfigureErr(board.KindNoiseGate, err)
	}

	err = r.fx.SetThreshold(g.ThresholdDB)
	if err != nil {
		return wrapConfigureErr(board.KindNoiseGate, err)
	}

	err = r.fx.SetRatio(core.Clamp(g.Ratio, 1, 100))
	if err != nil {
		return wrapConfigureErr(board.KindNoiseGate, err)
	}

	err = r.fx.SetKnee(0)
	if err != nil {
		return wrapConfigureErr(board.KindNoiseGate, err)
	}

	err = r.fx.SetRange(gateRangeDB)
	if err != nil {
		return wrapConfigureErr(board.KindNoiseGate, err)
	}

	err = r.fx.SetAttack(core.Clamp(g.AttackMs, 0.1, 1000))
	if err != nil {
		return wrapConfigureErr(board.KindNoiseGate, err)
	}

	return wrapConfigureErr(board.KindNoiseGate, r.fx.SetRelease(core.Clamp(g.ReleaseMs, 1, 5000)))
}

func (r *noiseGateRuntime) Process(block []float64) {
	r.fx.ProcessInPlace(block)
}

type compressorRuntime struct {
	fx *dynamics.Compressor
}

func (r *compressorRuntime) Configure(ctx Context, fx board.Effect) error {
	c, err := effectAs[board.Compressor](fx)
	if err != nil {
		return wrapConfigureErr(board.KindCompressor, err)
	}

	return wrapConfigureErr(board.KindCompressor,
		configureCompressor(r.fx, ctx.SampleRate, c.ThresholdDB, c.Ratio, c.AttackMs, c.ReleaseMs))
}

func (r *compressorRuntime) Process(block []float64) {
	r.fx.ProcessInPlace(block)
}

// limiterRuntime is a hard-knee compressor at a limiting ratio.
type limiterRuntime struct {
	fx *dynamics.Compressor
}

func (r *limiterRuntime) Configure(ctx Context, fx board.Effect) error {
	l, err := effectAs[board.Limiter](fx)
	if err != nil {
		return wrapConfigureErr(board.KindLimiter, err)
	}

	return wrapConfigureErr(board.KindLimiter,
		configureCompressor(r.fx, ctx.SampleRate, l.ThresholdDB, limiterRatio, limiterAttackMs, l.ReleaseMs))
}

func (r *limiterRuntime) Process(block []float64) {
	r.fx.ProcessInPlace(block)
}

func configureCompressor(fx *dynamics.Compressor, sampleRate, thresholdDB, ratio, attackMs, releaseMs float64) error {
	err := fx.SetSampleRate(sampleRate)
	if err != nil {
		return err
	}

	err = fx.SetThreshold(thresholdDB)
	if err != nil {
		return err
	}

	err = fx.SetRatio(core.Clamp(ratio, 1, 100))
	if err != nil {
		return err
	}

	err = fx.SetKnee(0)
	if err != nil {
		return err
	}

	err = fx.SetAttack(core.Clamp(attackMs, 0.1, 1000))
	if err != nil {
		return err
	}

	err = fx.SetRelease(core.Clamp(releaseMs, 1, 5000))
	if err != nil {
		return err
	}

	return fx.SetMakeupGain(0)
}

type gainRuntime struct {
	gain []float64
	lin  float64
}

func (r *gainRuntime) Configure(_ Context, fx board.Effect) error {
	g, err := effectAs[board.Gain](fx)
	if err != nil {
		return wrapConfigureErr(board.KindGain, err)
	}

	r.lin = core.DBToLinear(g.GainDB)

	return nil
}

func (r *gainRuntime) Process(block []float64) {
	if len(r.gain) != len(block) {
		r.gain = make([]float64, len(block))
		for i := range r.gain {
			r.gain[i] = r.lin
		}
	}

	vecmath.MulBlockInPlace(block, r.gain)
}

type clippingRuntime struct {
	threshold float64
}

func (r *clippingRuntime) Configure(_ Context, fx board.Effect) error {
	c, err := effectAs[board.Clipping](fx)
	if err != nil {
		return wrapConfigureErr(board.KindClipping, err)
	}

	r.threshold = core.DBToLinear(c.ThresholdDB)

	return nil
}

func (r *clippingRuntime) Process(block []float64) {
	for i, v := range block {
		block[i] = core.Clamp(v, -r.threshold, r.threshold)
	}
}
