package board

// Kind identifies one effect type.
type Kind int

const (
	KindNoiseGate Kind = iota
	KindGain
	KindReverb
	KindDelay
	KindChorus
	KindPhaser
	KindPitchShift
	KindCompressor
	KindDistortion
	KindBitcrush
	KindGSMCompressor
	KindMP3Compressor
	KindResample
	KindHighpassFilter
	KindLowpassFilter
	KindHighShelfFilter
	KindLowShelfFilter
	KindPeakFilter
	KindLadderFilter
	KindLimiter
	KindClipping

	numKinds
)

var kindNames = [numKinds]string{
	KindNoiseGate:       "NoiseGate",
	KindGain:            "Gain",
	KindReverb:          "Reverb",
	KindDelay:           "Delay",
	KindChorus:          "Chorus",
	KindPhaser:          "Phaser",
	KindPitchShift:      "PitchShift",
	KindCompressor:      "Compressor",
	KindDistortion:      "Distortion",
	KindBitcrush:        "Bitcrush",
	KindGSMCompressor:   "GSMFullRateCompressor",
	KindMP3Compressor:   "MP3Compressor",
	KindResample:        "Resample",
	KindHighpassFilter:  "HighpassFilter",
	KindLowpassFilter:   "LowpassFilter",
	KindHighShelfFilter: "HighShelfFilter",
	KindLowShelfFilter:  "LowShelfFilter",
	KindPeakFilter:      "PeakFilter",
	KindLadderFilter:    "LadderFilter",
	KindLimiter:         "Limiter",
	KindClipping:        "Clipping",
}

// String returns the effect name.
func (k Kind) String() string {
	if !k.Valid() {
		return "Unknown"
	}

	return kindNames[k]
}

// Valid reports whether k names a known effect.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// Kinds returns every effect kind in chain order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(stages))
	for _, st := range stages {
		out = append(out, st.kind)
	}

	return out
}
