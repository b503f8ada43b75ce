package board

import "github.com/cwbudde/algo-dsp/dsp/core"

// Range is the inclusive span of one numeric control.
type Range struct {
	Min, Max float64
}

// Clamp limits v to r.
func (r Range) Clamp(v float64) float64 {
	return core.Clamp(v, r.Min, r.Max)
}

// Control describes one numeric parameter of an effect.
type Control struct {
	Kind  Kind
	Name  string
	Range Range
}

var (
	gainRange = Range{-30, 30}

	gateThresholdRange = Range{-200, 0}
	gateRatioRange     = Range{10, 20}
	gateAttackRange    = Range{0, 10}
	gateReleaseRange   = Range{0, 300}

	unitRange = Range{0, 1}

	delaySecondsRange = Range{0, 3}

	rateRange              = Range{0, 100}
	chorusCentreDelayRange = Range{0, 50}
	phaserCentreFreqRange  = Range{0, 3000}

	semitoneRange = Range{-72, 72}

	compThresholdRange = Range{-30, 10}
	compRatioRange     = Range{1, 20}
	compAttackRange    = Range{0, 10}
	compReleaseRange   = Range{0, 300}

	driveDBRange  = Range{0, 100}
	bitDepthRange = Range{0, 32}
	vbrRange      = Range{0, 10}
	targetSRRange = Range{0, 44100}

	cutoffRange    = Range{0, 5000}
	shelfGainRange = Range{-30, 30}

	ladderDriveRange = Range{1, 10}

	limiterThresholdRange = Range{-30, 0}
	limiterReleaseRange   = Range{0, 500}

	clipThresholdRange = Range{-30, 20}
)

// Controls lists every numeric effect control with its range, in chain order.
func Controls() []Control {
	return []Control{
		{KindNoiseGate, "threshold_db", gateThresholdRange},
		{KindNoiseGate, "ratio", gateRatioRange},
		{KindNoiseGate, "attack_ms", gateAttackRange},
		{KindNoiseGate, "release_ms", gateReleaseRange},
		{KindGain, "gain_db", gainRange},
		{KindReverb, "room_size", unitRange},
		{KindReverb, "damping", unitRange},
		{KindReverb, "wet_level", unitRange},
		{KindReverb, "dry_level", unitRange},
		{KindReverb, "width", unitRange},
		{KindReverb, "freeze_mode", unitRange},
		{KindDelay, "delay_seconds", delaySecondsRange},
		{KindDelay, "feedback", unitRange},
		{KindDelay, "mix", unitRange},
		{KindChorus, "rate_hz", rateRange},
		{KindChorus, "depth", unitRange},
		{KindChorus, "centre_delay_ms", chorusCentreDelayRange},
		{KindChorus, "feedback", unitRange},
		{KindChorus, "mix", unitRange},
		{KindPhaser, "rate_hz", rateRange},
		{KindPhaser, "depth", unitRange},
		{KindPhaser, "centre_frequency_hz", phaserCentreFreqRange},
		{KindPhaser, "feedback", unitRange},
		{KindPhaser, "mix", unitRange},
		{KindPitchShift, "semitones", semitoneRange},
		{KindCompressor, "threshold_db", compThresholdRange},
		{KindCompressor, "ratio", compRatioRange},
		{KindCompressor, "attack_ms", compAttackRange},
		{KindCompressor, "release_ms", compReleaseRange},
		{KindDistortion, "drive_db", driveDBRange},
		{KindBitcrush, "bit_depth", bitDepthRange},
		{KindMP3Compressor, "vbr_quality", vbrRange},
		{KindResample, "target_sample_rate", targetSRRange},
		{KindHighpassFilter, "cutoff_hz", cutoffRange},
		{KindLowpassFilter, "cutoff_hz", cutoffRange},
		{KindHighShelfFilter, "cutoff_hz", cutoffRange},
		{KindHighShelfFilter, "gain_db", shelfGainRange},
		{KindHighShelfFilter, "q", unitRange},
		{KindLowShelfFilter, "cutoff_hz", cutoffRange},
		{KindLowShelfFilter, "gain_db", shelfGainRange},
		{KindLowShelfFilter, "q", unitRange},
		{KindPeakFilter, "cutoff_hz", cutoffRange},
		{KindPeakFilter, "gain_db", shelfGainRange},
		{KindPeakFilter, "q", unitRange},
		{KindLadderFilter, "cutoff_hz", cutoffRange},
		{KindLadderFilter, "resonance", unitRange},
		{KindLadderFilter, "drive", ladderDriveRange},
		{KindLimiter, "threshold_db", limiterThresholdRange},
		{KindLimiter, "release_ms", limiterReleaseRange},
		{KindClipping, "threshold_db", clipThresholdRange},
	}
}

func (e NoiseGate) clamped() NoiseGate {
	return NoiseGate{
		ThresholdDB: gateThresholdRange.Clamp(e.ThresholdDB),
		Ratio:       gateRatioRange.Clamp(e.Ratio),
		AttackMs:    gateAttackRange.Clamp(e.AttackMs),
		ReleaseMs:   gateReleaseRange.Clamp(e.ReleaseMs),
	}
}

func (e Reverb) clamped() Reverb {
	return Reverb{
		RoomSize:   unitRange.Clamp(e.RoomSize),
		Damping:    unitRange.Clamp(e.Damping),
		WetLevel:   unitRange.Clamp(e.WetLevel),
		DryLevel:   unitRange.Clamp(e.DryLevel),
		Width:      unitRange.Clamp(e.Width),
		FreezeMode: unitRange.Clamp(e.FreezeMode),
	}
}

func (e Delay) clamped() Delay {
	return Delay{
		DelaySeconds: delaySecondsRange.Clamp(e.DelaySeconds),
		Feedback:     unitRange.Clamp(e.Feedback),
		Mix:          unitRange.Clamp(e.Mix),
	}
}

func (e Chorus) clamped() Chorus {
	return Chorus{
		RateHz:        rateRange.Clamp(e.RateHz),
		Depth:         unitRange.Clamp(e.Depth),
		CentreDelayMs: chorusCentreDelayRange.Clamp(e.CentreDelayMs),
		Feedback:      unitRange.Clamp(e.Feedback),
		Mix:           unitRange.Clamp(e.Mix),
	}
}

func (e Phaser) clamped() Phaser {
	return Phaser{
		RateHz:            rateRange.Clamp(e.RateHz),
		Depth:             unitRange.Clamp(e.Depth),
		CentreFrequencyHz: phaserCentreFreqRange.Clamp(e.CentreFrequencyHz),
		Feedback:          unitRange.Clamp(e.Feedback),
		Mix:               unitRange.Clamp(e.Mix),
	}
}

func (e Compressor) clamped() Compressor {
	return Compressor{
		ThresholdDB: compThresholdRange.Clamp(e.ThresholdDB),
		Ratio:       compRatioRange.Clamp(e.Ratio),
		AttackMs:    compAttackRange.Clamp(e.AttackMs),
		ReleaseMs:   compReleaseRange.Clamp(e.ReleaseMs),
	}
}

func (s ShelfSettings) clamped() ShelfSettings {
	return ShelfSettings{
		CutoffHz: cutoffRange.Clamp(s.CutoffHz),
		GainDB:   shelfGainRange.Clamp(s.GainDB),
		Q:        unitRange.Clamp(s.Q),
	}
}

func (e Limiter) clamped() Limiter {
	return Limiter{
		ThresholdDB: limiterThresholdRange.Clamp(e.ThresholdDB),
		ReleaseMs:   limiterReleaseRange.Clamp(e.ReleaseMs),
	}
}
