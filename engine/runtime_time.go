package engine

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/effects"
	"github.com/cwbudde/algo-dsp/dsp/effects/modulation"
	"github.com/cwbudde/algo-dsp/dsp/effects/pitch"
	"github.com/cwbudde/algo-dsp/dsp/effects/reverb"
	"github.com/cwbudde/algo-pedalboard/board"
)

// Freeverb parameter scaling.
const (
	reverbScaleWet    = 3.0
	reverbScaleDry    = 2.0
	reverbScaleDamp   = 0.4
	reverbScaleRoom   = 0.28
	reverbOffsetRoom  = 0.7
	reverbInputGain   = 0.015
	reverbFreezeLevel = 0.5

	phaserStages = 6
	chorusStages = 1

	maxPitchPassSemitones = 24.0
)

// reverbRuntime runs one Freeverb tank per channel and cross-mixes the wet
// signals of channel pairs according to the stereo width.
type reverbRuntime struct {
	sampleRate float64
	settings   board.Reverb
}

func (r *reverbRuntime) Configure(ctx Context, fx board.Effect) error {
	rv, err := effectAs[board.Reverb](fx)
	if err != nil {
		return wrapConfigureErr(board.KindReverb, err)
	}

	r.sampleRate = ctx.SampleRate
	r.settings = rv

	return nil
}

func (r *reverbRuntime) newTank() *reverb.Reverb {
	tank := reverb.NewReverb()
	tank.SetWet(1)
	tank.SetDry(0)

	if r.settings.FreezeMode >= reverbFreezeLevel {
		tank.SetRoomSize(1)
		tank.SetDamp(0)
		tank.SetGain(0)

		return tank
	}

	tank.SetRoomSize(r.settings.RoomSize*reverbScaleRoom + reverbOffsetRoom)
	tank.SetDamp(r.settings.Damping * reverbScaleDamp)
	tank.SetGain(reverbInputGain)

	return tank
}

func (r *reverbRuntime) Process(block []float64) {
	r.ProcessChannels([][]float64{block})
}

func (r *reverbRuntime) ProcessChannels(channels [][]float64) {
	wetLevel := r.settings.WetLevel * reverbScaleWet
	dryLevel := r.settings.DryLevel * reverbScaleDry
	wet1 := wetLevel * (r.settings.Width/2 + 0.5)
	wet2 := wetLevel * (1 - r.settings.Width) / 2

	wet := make([][]float64, len(channels))
	for c, ch := range channels {
		w := append([]float64(nil), ch...)
		r.newTank().ProcessInPlace(w)
		wet[c] = w
	}

	for c := 0; c < len(channels); c += 2 {
		if c+1 == len(channels) {
			for i, x := range channels[c] {
				channels[c][i] = x*dryLevel + wet[c][i]*wetLevel
			}

			continue
		}

		left, right := channels[c], channels[c+1]
		wl, wr := wet[c], wet[c+1]

		for i := range left {
			left[i] = left[i]*dryLevel + wl[i]*wet1 + wr[i]*wet2
			right[i] = right[i]*dryLevel + wr[i]*wet1 + wl[i]*wet2
		}
	}
}

type delayRuntime struct {
	fx *effects.Delay
}

func (r *delayRuntime) Configure(ctx Context, fx board.Effect) error {
	d, err := effectAs[board.Delay](fx)
	if err != nil {
		return wrapConfigureErr(board.KindDelay, err)
	}

	err = r.fx.SetSampleRate(ctx.SampleRate)
	if err != nil {
		return wrapConfigureErr(board.KindDelay, err)
	}

	err = r.fx.SetTime(core.Clamp(d.DelaySeconds, 0.001, 2))
	if err != nil {
		return wrapConfigureErr(board.KindDelay, err)
	}

	err = r.fx.SetFeedback(core.Clamp(d.Feedback, 0, 0.99))
	if err != nil {
		return wrapConfigureErr(board.KindDelay, err)
	}

	return wrapConfigureErr(board.KindDelay, r.fx.SetMix(core.Clamp(d.Mix, 0, 1)))
}

func (r *delayRuntime) Process(block []float64) {
	r.fx.ProcessInPlace(block)
}

// chorusRuntime uses the multi-voice chorus, or the flanger delay line when
// feedback is requested at a centre delay it can hold.
type chorusRuntime struct {
	chorus  *modulation.Chorus
	flanger *modulation.Flanger
}

func (r *chorusRuntime) Configure(ctx Context, fx board.Effect) error {
	c, err := effectAs[board.Chorus](fx)
	if err != nil {
		return wrapConfigureErr(board.KindChorus, err)
	}

	rate := math.Max(c.RateHz, 0.01)
	centre := c.CentreDelayMs / 1000

	if c.Feedback > 0 && centre <= 0.01 {
		base := core.Clamp(centre, 0.0001, 0.01)
		depth := math.Min(c.Depth*base, 0.01-base)

		r.flanger, err = modulation.NewFlanger(ctx.SampleRate)
		if err != nil {
			return wrapConfigureErr(board.KindChorus, err)
		}

		return wrapConfigureErr(board.KindChorus,
			configureFlanger(r.flanger, ctx.SampleRate, rate, base, depth, core.Clamp(c.Feedback, 0, 0.99), c.Mix))
	}

	base := math.Max(centre, 0.001)

	r.chorus, err = modulation.NewChorus()
	if err != nil {
		return wrapConfigureErr(board.KindChorus, err)
	}

	return wrapConfigureErr(board.KindChorus,
		configureChorus(r.chorus, ctx.SampleRate, c.Mix, c.Depth*base, base, rate))
}

func (r *chorusRuntime) Process(block []float64) {
	if r.flanger != nil {
		_ = r.flanger.ProcessInPlace(block)
		return
	}

	r.chorus.ProcessInPlace(block)
}

func configureChorus(fx *modulation.Chorus, sampleRate, mix, depth, baseDelay, speedHz float64) error {
	err := fx.SetSampleRate(sampleRate)
	if err != nil {
		return err
	}

	err = fx.SetMix(core.Clamp(mix, 0, 1))
	if err != nil {
		return err
	}

	err = fx.SetBaseDelay(baseDelay)
	if err != nil {
		return err
	}

	err = fx.SetDepth(depth)
	if err != nil {
		return err
	}

	err = fx.SetSpeedHz(speedHz)
	if err != nil {
		return err
	}

	return fx.SetStages(chorusStages)
}

func configureFlanger(fx *modulation.Flanger, sampleRate, rateHz, baseDelay, depth, feedback, mix float64) error {
	err := fx.SetSampleRate(sampleRate)
	if err != nil {
		return err
	}

	err = fx.SetRateHz(rateHz)
	if err != nil {
		return err
	}

	err = fx.SetDepthSeconds(0)
	if err != nil {
		return err
	}

	err = fx.SetBaseDelaySeconds(baseDelay)
	if err != nil {
		return err
	}

	err = fx.SetDepthSeconds(depth)
	if err != nil {
		return err
	}

	err = fx.SetFeedback(feedback)
	if err != nil {
		return err
	}

	return fx.SetMix(core.Clamp(mix, 0, 1))
}

type phaserRuntime struct {
	fx *modulation.Phaser
}

func (r *phaserRuntime) Configure(ctx Context, fx board.Effect) error {
	p, err := effectAs[board.Phaser](fx)
	if err != nil {
		return wrapConfigureErr(board.KindPhaser, err)
	}

	err = r.fx.SetSampleRate(ctx.SampleRate)
	if err != nil {
		return wrapConfigureErr(board.KindPhaser, err)
	}

	err = r.fx.SetRateHz(math.Max(p.RateHz, 0.01))
	if err != nil {
		return wrapConfigureErr(board.KindPhaser, err)
	}

	top := 0.45 * ctx.SampleRate
	lo := core.Clamp(p.CentreFrequencyHz*(1-p.Depth), 10, top-1)
	hi := core.Clamp(p.CentreFrequencyHz*(1+p.Depth), lo+1, top)

	err = r.fx.SetFrequencyRangeHz(lo, hi)
	if err != nil {
		return wrapConfigureErr(board.KindPhaser, err)
	}

	err = r.fx.SetStages(phaserStages)
	if err != nil {
		return wrapConfigureErr(board.KindPhaser, err)
	}

	err = r.fx.SetFeedback(core.Clamp(p.Feedback, -0.99, 0.99))
	if err != nil {
		return wrapConfigureErr(board.KindPhaser, err)
	}

	return wrapConfigureErr(board.KindPhaser, r.fx.SetMix(core.Clamp(p.Mix, 0, 1)))
}

func (r *phaserRuntime) Process(block []float64) {
	_ = r.fx.ProcessInPlace(block)
}

type pitchShiftRuntime struct {
	fx     *pitch.PitchShifter
	passes int
}

func (r *pitchShiftRuntime) Configure(ctx Context, fx board.Effect) error {
	p, err := effectAs[board.PitchShift](fx)
	if err != nil {
		return wrapConfigureErr(board.KindPitchShift, err)
	}

	err = r.fx.SetSampleRate(ctx.SampleRate)
	if err != nil {
		return wrapConfigureErr(board.KindPitchShift, err)
	}

	r.passes, err = setPitchPasses(r.fx, p.Semitones)

	return wrapConfigureErr(board.KindPitchShift, err)
}

func (r *pitchShiftRuntime) Process(block []float64) {
	for range r.passes {
		copy(block, r.fx.Process(block))
	}
}

// setPitchPasses splits a shift into equal passes the shifter can reach and
// returns their count. Zero semitones needs no pass.
func setPitchPasses(fx *pitch.PitchShifter, semitones float64) (int, error) {
	if semitones == 0 {
		return 0, nil
	}

	passes := int(math.Ceil(math.Abs(semitones) / maxPitchPassSemitones))

	err := fx.SetPitchSemitones(semitones / float64(passes))
	if err != nil {
		return 0, err
	}

	return passes, nil
}
