package board

import (
	"strconv"
	"strings"
)

// Chain is an ordered list of effects, applied first to last.
type Chain []Effect

// Kinds returns the kind of every effect in c.
func (c Chain) Kinds() []Kind {
	out := make([]Kind, len(c))
	for i, fx := range c {
		out[i] = fx.Kind()
	}

	return out
}

// Contains reports whether c holds an effect of kind k.
func (c Chain) Contains(k Kind) bool {
	for _, fx := range c {
		if fx.Kind() == k {
			return true
		}
	}

	return false
}

// String summarises the chain for diagnostics.
func (c Chain) String() string {
	var sb strings.Builder

	sb.WriteString("Pedalboard with ")
	sb.WriteString(strconv.Itoa(len(c)))
	sb.WriteString(" plugins: [")

	for i, fx := range c {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(fx.String())
	}

	sb.WriteByte(']')

	return sb.String()
}

// stage decides whether one effect joins the chain and with which settings.
type stage struct {
	kind  Kind
	build func(p *Params) (Effect, bool, error)
}

// stages is the chain order. Every effect is decided independently of the
// others.
var stages = [...]stage{
	{KindNoiseGate, func(p *Params) (Effect, bool, error) {
		return p.NoiseGate.clamped(), p.NoiseGate.Enabled, nil
	}},
	{KindGain, func(p *Params) (Effect, bool, error) {
		return Gain{GainDB: gainRange.Clamp(p.GainDB)}, p.GainDB != 0, nil
	}},
	{KindReverb, func(p *Params) (Effect, bool, error) {
		return p.Reverb.clamped(), p.Reverb.Enabled, nil
	}},
	{KindDelay, func(p *Params) (Effect, bool, error) {
		return p.Delay.clamped(), p.Delay.Enabled, nil
	}},
	{KindChorus, func(p *Params) (Effect, bool, error) {
		return p.Chorus.clamped(), p.Chorus.Enabled, nil
	}},
	{KindPhaser, func(p *Params) (Effect, bool, error) {
		return p.Phaser.clamped(), p.Phaser.Enabled, nil
	}},
	{KindPitchShift, func(p *Params) (Effect, bool, error) {
		return PitchShift{Semitones: semitoneRange.Clamp(p.PitchShift.Semitones)}, p.PitchShift.Enabled, nil
	}},
	{KindCompressor, func(p *Params) (Effect, bool, error) {
		return p.Compressor.clamped(), p.Compressor.Enabled, nil
	}},
	{KindDistortion, func(p *Params) (Effect, bool, error) {
		return Distortion{DriveDB: driveDBRange.Clamp(p.Distortion.DriveDB)}, p.Distortion.Enabled, nil
	}},
	{KindBitcrush, func(p *Params) (Effect, bool, error) {
		return Bitcrush{BitDepth: bitDepthRange.Clamp(p.Bitcrush.BitDepth)}, p.Bitcrush.Enabled, nil
	}},
	{KindGSMCompressor, buildGSM},
	{KindMP3Compressor, func(p *Params) (Effect, bool, error) {
		return MP3Compressor{VBRQuality: vbrRange.Clamp(p.MP3.VBRQuality)}, p.MP3.Enabled, nil
	}},
	{KindResample, buildResample},
	{KindHighpassFilter, func(p *Params) (Effect, bool, error) {
		return HighpassFilter{CutoffHz: cutoffRange.Clamp(p.Highpass.CutoffHz)}, p.Highpass.Enabled, nil
	}},
	{KindLowpassFilter, func(p *Params) (Effect, bool, error) {
		return LowpassFilter{CutoffHz: cutoffRange.Clamp(p.Lowpass.CutoffHz)}, p.Lowpass.Enabled, nil
	}},
	{KindHighShelfFilter, func(p *Params) (Effect, bool, error) {
		s := ShelfSettings(p.HighShelf.HighShelfFilter).clamped()
		return HighShelfFilter(s), p.HighShelf.Enabled, nil
	}},
	{KindLowShelfFilter, func(p *Params) (Effect, bool, error) {
		s := ShelfSettings(p.LowShelf.LowShelfFilter).clamped()
		return LowShelfFilter(s), p.LowShelf.Enabled, nil
	}},
	{KindPeakFilter, func(p *Params) (Effect, bool, error) {
		s := ShelfSettings(p.Peak.PeakFilter).clamped()
		return PeakFilter(s), p.Peak.Enabled, nil
	}},
	{KindLadderFilter, buildLadder},
	{KindLimiter, func(p *Params) (Effect, bool, error) {
		return p.Limiter.clamped(), p.Limiter.Enabled, nil
	}},
	{KindClipping, func(p *Params) (Effect, bool, error) {
		return Clipping{ThresholdDB: clipThresholdRange.Clamp(p.Clipping.ThresholdDB)}, p.Clipping.Enabled, nil
	}},
}

func buildGSM(p *Params) (Effect, bool, error) {
	q, ok, err := ParseQuality(p.GSMQuality)
	if err != nil || !ok {
		return nil, false, err
	}

	return GSMCompressor{Quality: q}, true, nil
}

func buildResample(p *Params) (Effect, bool, error) {
	q, ok, err := ParseQuality(p.Resample.Method)
	if err != nil || !ok {
		return nil, false, err
	}

	return Resample{
		TargetSampleRate: targetSRRange.Clamp(p.Resample.TargetSampleRate),
		Quality:          q,
	}, true, nil
}

// buildLadder validates the mode only when the filter is enabled, so a stale
// selection on a disabled filter never fails the build.
func buildLadder(p *Params) (Effect, bool, error) {
	if !p.Ladder.Enabled {
		return nil, false, nil
	}

	mode, err := ParseLadderMode(p.Ladder.Mode)
	if err != nil {
		return nil, false, err
	}

	return LadderFilter{
		Mode:      mode,
		CutoffHz:  cutoffRange.Clamp(p.Ladder.CutoffHz),
		Resonance: unitRange.Clamp(p.Ladder.Resonance),
		Drive:     ladderDriveRange.Clamp(p.Ladder.Drive),
	}, true, nil
}

// BuildChain returns the effects enabled in p, in chain order. It fails with
// ErrUnknownEnumValue when a quality or mode selection is not recognised.
func BuildChain(p Params) (Chain, error) {
	chain := make(Chain, 0, len(stages))

	for _, st := range stages {
		fx, ok, err := st.build(&p)
		if err != nil {
			return nil, err
		}

		if ok {
			chain = append(chain, fx)
		}
	}

	return chain, nil
}
