package board

import (
	"strconv"
	"strings"
)

// Effect is one entry of a Chain. The concrete types below are the only
// implementations.
type Effect interface {
	Kind() Kind
	String() string
}

// Gain scales the signal by GainDB decibels.
type Gain struct {
	GainDB float64 `json:"gain_db"`
}

// NoiseGate attenuates the signal while it stays below ThresholdDB.
type NoiseGate struct {
	ThresholdDB float64 `json:"threshold_db"`
	Ratio       float64 `json:"ratio"`
	AttackMs    float64 `json:"attack_ms"`
	ReleaseMs   float64 `json:"release_ms"`
}

// Reverb is a Freeverb-style room. FreezeMode >= 0.5 holds the current tail.
type Reverb struct {
	RoomSize   float64 `json:"room_size"`
	Damping    float64 `json:"damping"`
	WetLevel   float64 `json:"wet_level"`
	DryLevel   float64 `json:"dry_level"`
	Width      float64 `json:"width"`
	FreezeMode float64 `json:"freeze_mode"`
}

// Delay adds a feedback echo DelaySeconds behind the signal, blended by Mix.
type Delay struct {
	DelaySeconds float64 `json:"delay_seconds"`
	Feedback     float64 `json:"feedback"`
	Mix          float64 `json:"mix"`
}

// Chorus modulates a short delay around CentreDelayMs at RateHz.
type Chorus struct {
	RateHz        float64 `json:"rate_hz"`
	Depth         float64 `json:"depth"`
	CentreDelayMs float64 `json:"centre_delay_ms"`
	Feedback      float64 `json:"feedback"`
	Mix           float64 `json:"mix"`
}

// Phaser sweeps a chain of allpass stages around CentreFrequencyHz.
type Phaser struct {
	RateHz            float64 `json:"rate_hz"`
	Depth             float64 `json:"depth"`
	CentreFrequencyHz float64 `json:"centre_frequency_hz"`
	Feedback          float64 `json:"feedback"`
	Mix               float64 `json:"mix"`
}

// PitchShift transposes the signal by Semitones without changing its length.
type PitchShift struct {
	Semitones float64 `json:"semitones"`
}

// Compressor reduces gain by Ratio above ThresholdDB.
type Compressor struct {
	ThresholdDB float64 `json:"threshold_db"`
	Ratio       float64 `json:"ratio"`
	AttackMs    float64 `json:"attack_ms"`
	ReleaseMs   float64 `json:"release_ms"`
}

// Distortion drives the signal into a tanh shaper by DriveDB.
type Distortion struct {
	DriveDB float64 `json:"drive_db"`
}

// Bitcrush quantises samples to BitDepth bits.
type Bitcrush struct {
	BitDepth float64 `json:"bit_depth"`
}

// GSMCompressor emulates a GSM full-rate phone line. Quality selects the
// resampler used to reach the 8 kHz codec rate.
type GSMCompressor struct {
	Quality Quality
}

// MP3Compressor emulates lossy MP3 artifacts at the given VBR quality
// (0 best, 10 worst).
type MP3Compressor struct {
	VBRQuality float64 `json:"vbr_quality"`
}

// Resample downsamples to TargetSampleRate and back to the source rate.
type Resample struct {
	TargetSampleRate float64
	Quality          Quality
}

// HighpassFilter removes content below CutoffHz.
type HighpassFilter struct {
	CutoffHz float64 `json:"cutoff_hz"`
}

// LowpassFilter removes content above CutoffHz.
type LowpassFilter struct {
	CutoffHz float64 `json:"cutoff_hz"`
}

// ShelfSettings is shared by the shelving and peak filters.
type ShelfSettings struct {
	CutoffHz float64 `json:"cutoff_hz"`
	GainDB   float64 `json:"gain_db"`
	Q        float64 `json:"q"`
}

// HighShelfFilter boosts or cuts content above CutoffHz by GainDB.
type HighShelfFilter ShelfSettings

// LowShelfFilter boosts or cuts content below CutoffHz by GainDB.
type LowShelfFilter ShelfSettings

// PeakFilter boosts or cuts a band centred on CutoffHz by GainDB.
type PeakFilter ShelfSettings

// LadderFilter is a Moog-style ladder with selectable response.
type LadderFilter struct {
	Mode      LadderMode
	CutoffHz  float64
	Resonance float64
	Drive     float64
}

// Limiter holds peaks at ThresholdDB.
type Limiter struct {
	ThresholdDB float64 `json:"threshold_db"`
	ReleaseMs   float64 `json:"release_ms"`
}

// Clipping hard-clips the signal at ThresholdDB.
type Clipping struct {
	ThresholdDB float64 `json:"threshold_db"`
}

func (Gain) Kind() Kind            { return KindGain }
func (NoiseGate) Kind() Kind       { return KindNoiseGate }
func (Reverb) Kind() Kind          { return KindReverb }
func (Delay) Kind() Kind           { return KindDelay }
func (Chorus) Kind() Kind          { return KindChorus }
func (Phaser) Kind() Kind          { return KindPhaser }
func (PitchShift) Kind() Kind      { return KindPitchShift }
func (Compressor) Kind() Kind      { return KindCompressor }
func (Distortion) Kind() Kind      { return KindDistortion }
func (Bitcrush) Kind() Kind        { return KindBitcrush }
func (GSMCompressor) Kind() Kind   { return KindGSMCompressor }
func (MP3Compressor) Kind() Kind   { return KindMP3Compressor }
func (Resample) Kind() Kind        { return KindResample }
func (HighpassFilter) Kind() Kind  { return KindHighpassFilter }
func (LowpassFilter) Kind() Kind   { return KindLowpassFilter }
func (HighShelfFilter) Kind() Kind { return KindHighShelfFilter }
func (LowShelfFilter) Kind() Kind  { return KindLowShelfFilter }
func (PeakFilter) Kind() Kind      { return KindPeakFilter }
func (LadderFilter) Kind() Kind    { return KindLadderFilter }
func (Limiter) Kind() Kind         { return KindLimiter }
func (Clipping) Kind() Kind        { return KindClipping }

func (e Gain) String() string { return describe(e.Kind(), "gain_db", e.GainDB) }

func (e NoiseGate) String() string {
	return describe(e.Kind(), "threshold_db", e.ThresholdDB, "ratio", e.Ratio,
		"attack_ms", e.AttackMs, "release_ms", e.ReleaseMs)
}

func (e Reverb) String() string {
	return describe(e.Kind(), "room_size", e.RoomSize, "damping", e.Damping,
		"wet_level", e.WetLevel, "dry_level", e.DryLevel, "width", e.Width, "freeze_mode", e.FreezeMode)
}

func (e Delay) String() string {
	return describe(e.Kind(), "delay_seconds", e.DelaySeconds, "feedback", e.Feedback, "mix", e.Mix)
}

func (e Chorus) String() string {
	return describe(e.Kind(), "rate_hz", e.RateHz, "depth", e.Depth,
		"centre_delay_ms", e.CentreDelayMs, "feedback", e.Feedback, "mix", e.Mix)
}

func (e Phaser) String() string {
	return describe(e.Kind(), "rate_hz", e.RateHz, "depth", e.Depth,
		"centre_frequency_hz", e.CentreFrequencyHz, "feedback", e.Feedback, "mix", e.Mix)
}

func (e PitchShift) String() string { return describe(e.Kind(), "semitones", e.Semitones) }

func (e Compressor) String() string {
	return describe(e.Kind(), "threshold_db", e.ThresholdDB, "ratio", e.Ratio,
		"attack_ms", e.AttackMs, "release_ms", e.ReleaseMs)
}

func (e Distortion) String() string { return describe(e.Kind(), "drive_db", e.DriveDB) }

func (e Bitcrush) String() string { return describe(e.Kind(), "bit_depth", e.BitDepth) }

func (e GSMCompressor) String() string { return describe(e.Kind(), "quality", e.Quality) }

func (e MP3Compressor) String() string { return describe(e.Kind(), "vbr_quality", e.VBRQuality) }

func (e Resample) String() string {
	return describe(e.Kind(), "target_sample_rate", e.TargetSampleRate, "quality", e.Quality)
}

func (e HighpassFilter) String() string { return describe(e.Kind(), "cutoff_hz", e.CutoffHz) }

func (e LowpassFilter) String() string { return describe(e.Kind(), "cutoff_hz", e.CutoffHz) }

func (e HighShelfFilter) String() string { return ShelfSettings(e).describe(e.Kind()) }

func (e LowShelfFilter) String() string { return ShelfSettings(e).describe(e.Kind()) }

func (e PeakFilter) String() string { return ShelfSettings(e).describe(e.Kind()) }

func (s ShelfSettings) describe(k Kind) string {
	return describe(k, "cutoff_hz", s.CutoffHz, "gain_db", s.GainDB, "q", s.Q)
}

func (e LadderFilter) String() string {
	return describe(e.Kind(), "mode", e.Mode, "cutoff_hz", e.CutoffHz,
		"resonance", e.Resonance, "drive", e.Drive)
}

func (e Limiter) String() string {
	return describe(e.Kind(), "threshold_db", e.ThresholdDB, "release_ms", e.ReleaseMs)
}

func (e Clipping) String() string { return describe(e.Kind(), "threshold_db", e.ThresholdDB) }

// describe renders "Kind(name=value, ...)" from alternating name/value pairs.
func describe(k Kind, kv ...any) string {
	var sb strings.Builder

	sb.WriteString(k.String())
	sb.WriteByte('(')

	for i := 0; i+1 < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(kv[i].(string))
		sb.WriteByte('=')

		switch v := kv[i+1].(type) {
		case float64:
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		case interface{ String() string }:
			sb.WriteString(v.String())
		}
	}

	sb.WriteByte(')')

	return sb.String()
}
