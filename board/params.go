package board

import (
	"encoding/json"
	"fmt"
	"io"
)

// Params is the complete parameter record collected from the control surface.
// The zero value disables every effect; DefaultParams returns the control
// defaults.
type Params struct {
	GainDB float64 `json:"gain_db"`

	NoiseGate  NoiseGateParams  `json:"noise_gate"`
	Reverb     ReverbParams     `json:"reverb"`
	Delay      DelayParams      `json:"delay"`
	Chorus     ChorusParams     `json:"chorus"`
	Phaser     PhaserParams     `json:"phaser"`
	PitchShift PitchShiftParams `json:"pitch_shift"`
	Compressor CompressorParams `json:"compressor"`
	Distortion DistortionParams `json:"distortion"`
	Bitcrush   BitcrushParams   `json:"bitcrush"`

	// GSMQuality is a Quality name or "None".
	GSMQuality string         `json:"gsm_quality"`
	MP3        MP3Params      `json:"mp3"`
	Resample   ResampleParams `json:"resample"`

	Highpass  HighpassParams  `json:"highpass"`
	Lowpass   LowpassParams   `json:"lowpass"`
	HighShelf HighShelfParams `json:"high_shelf"`
	LowShelf  LowShelfParams  `json:"low_shelf"`
	Peak      PeakParams      `json:"peak"`
	Ladder    LadderParams    `json:"ladder"`
	Limiter   LimiterParams   `json:"limiter"`
	Clipping  ClippingParams  `json:"clipping"`

	Padding     PaddingParams     `json:"padding"`
	TimeStretch TimeStretchParams `json:"time_stretch"`
}

type NoiseGateParams struct {
	Enabled bool `json:"enabled"`
	NoiseGate
}

type ReverbParams struct {
	Enabled bool `json:"enabled"`
	Reverb
}

type DelayParams struct {
	Enabled bool `json:"enabled"`
	Delay
}

type ChorusParams struct {
	Enabled bool `json:"enabled"`
	Chorus
}

type PhaserParams struct {
	Enabled bool `json:"enabled"`
	Phaser
}

type PitchShiftParams struct {
	Enabled bool `json:"enabled"`
	PitchShift
}

type CompressorParams struct {
	Enabled bool `json:"enabled"`
	Compressor
}

type DistortionParams struct {
	Enabled bool `json:"enabled"`
	Distortion
}

type BitcrushParams struct {
	Enabled bool `json:"enabled"`
	Bitcrush
}

type MP3Params struct {
	Enabled bool `json:"enabled"`
	MP3Compressor
}

// ResampleParams selects the resampler; Method "None" disables it.
type ResampleParams struct {
	Method           string  `json:"method"`
	TargetSampleRate float64 `json:"target_sample_rate"`
}

type HighpassParams struct {
	Enabled bool `json:"enabled"`
	HighpassFilter
}

type LowpassParams struct {
	Enabled bool `json:"enabled"`
	LowpassFilter
}

type HighShelfParams struct {
	Enabled bool `json:"enabled"`
	HighShelfFilter
}

type LowShelfParams struct {
	Enabled bool `json:"enabled"`
	LowShelfFilter
}

type PeakParams struct {
	Enabled bool `json:"enabled"`
	PeakFilter
}

type LadderParams struct {
	Enabled   bool    `json:"enabled"`
	Mode      string  `json:"mode"`
	CutoffHz  float64 `json:"cutoff_hz"`
	Resonance float64 `json:"resonance"`
	Drive     float64 `json:"drive"`
}

type LimiterParams struct {
	Enabled bool `json:"enabled"`
	Limiter
}

type ClippingParams struct {
	Enabled bool `json:"enabled"`
	Clipping
}

// PaddingParams adds silence before and after the clip, in seconds.
type PaddingParams struct {
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
}

// TimeStretchParams is applied after the chain. A Factor of exactly 1 skips
// the stage. The stage shifts pitch by PitchShift.Semitones; Semitones here is
// decoded for compatibility with saved records but has no effect.
type TimeStretchParams struct {
	Factor    float64 `json:"factor"`
	Semitones float64 `json:"semitones"`
}

// DefaultParams returns the control defaults with every effect disabled.
func DefaultParams() Params {
	return Params{
		NoiseGate: NoiseGateParams{NoiseGate: NoiseGate{
			ThresholdDB: -100, Ratio: 10, AttackMs: 1, ReleaseMs: 100,
		}},
		Reverb: ReverbParams{Reverb: Reverb{
			RoomSize: 0.5, Damping: 0.5, WetLevel: 0.33, DryLevel: 0.4, Width: 1,
		}},
		Delay: DelayParams{Delay: Delay{DelaySeconds: 0.5, Mix: 0.5}},
		Chorus: ChorusParams{Chorus: Chorus{
			RateHz: 1, Depth: 0.25, CentreDelayMs: 7, Mix: 0.5,
		}},
		Phaser: PhaserParams{Phaser: Phaser{
			RateHz: 1, Depth: 0.25, CentreFrequencyHz: 1300, Mix: 0.5,
		}},
		Compressor: CompressorParams{Compressor: Compressor{
			Ratio: 1, AttackMs: 1, ReleaseMs: 100,
		}},
		Distortion: DistortionParams{Distortion: Distortion{DriveDB: 25}},
		Bitcrush:   BitcrushParams{Bitcrush: Bitcrush{BitDepth: 8}},
		GSMQuality: Disabled,
		MP3:        MP3Params{MP3Compressor: MP3Compressor{VBRQuality: 2}},
		Resample:   ResampleParams{Method: Disabled, TargetSampleRate: 8000},
		Highpass:   HighpassParams{HighpassFilter: HighpassFilter{CutoffHz: 50}},
		Lowpass:    LowpassParams{LowpassFilter: LowpassFilter{CutoffHz: 50}},
		HighShelf:  HighShelfParams{HighShelfFilter: HighShelfFilter{CutoffHz: 440, Q: 0.7071}},
		LowShelf:   LowShelfParams{LowShelfFilter: LowShelfFilter{CutoffHz: 440, Q: 0.7071}},
		Peak:       PeakParams{PeakFilter: PeakFilter{CutoffHz: 440, Q: 0.7071}},
		Ladder: LadderParams{
			Mode: LadderLPF12.String(), CutoffHz: 200, Drive: 1,
		},
		Limiter:     LimiterParams{Limiter: Limiter{ThresholdDB: -10, ReleaseMs: 100}},
		Clipping:    ClippingParams{Clipping: Clipping{ThresholdDB: -6}},
		TimeStretch: TimeStretchParams{Factor: 1},
	}
}

// DecodeParams reads a JSON parameter record. Fields missing from the input
// keep their DefaultParams values; unknown fields are rejected.
func DecodeParams(r io.Reader) (Params, error) {
	p := DefaultParams()

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	err := dec.Decode(&p)
	if err != nil {
		return Params{}, fmt.Errorf("board: decode params: %w", err)
	}

	return p, nil
}
