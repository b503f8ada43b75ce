package board

import (
	"errors"
	"fmt"
)

// ErrUnknownEnumValue is returned when a selection string does not name a
// known quality or mode.
var ErrUnknownEnumValue = errors.New("unknown enum value")

// Disabled is the selection that turns an enum-selected effect off.
const Disabled = "None"

// Quality selects the resampling kernel used by Resample and the GSM
// emulation.
type Quality int

const (
	QualityZeroOrderHold Quality = iota
	QualityLinear
	QualityCatmullRom
	QualityLagrange
	QualityWindowedSinc
	QualityWindowedSinc256
	QualityWindowedSinc128
	QualityWindowedSinc64
	QualityWindowedSinc32
	QualityWindowedSinc16
	QualityWindowedSinc8
)

var qualityNames = []string{
	QualityZeroOrderHold:   "ZeroOrderHold",
	QualityLinear:          "Linear",
	QualityCatmullRom:      "CatmullRom",
	QualityLagrange:        "Lagrange",
	QualityWindowedSinc:    "WindowedSinc",
	QualityWindowedSinc256: "WindowedSinc256",
	QualityWindowedSinc128: "WindowedSinc128",
	QualityWindowedSinc64:  "WindowedSinc64",
	QualityWindowedSinc32:  "WindowedSinc32",
	QualityWindowedSinc16:  "WindowedSinc16",
	QualityWindowedSinc8:   "WindowedSinc8",
}

func (q Quality) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return fmt.Sprintf("Quality(%d)", int(q))
	}

	return qualityNames[q]
}

// SincTaps returns the kernel length of a windowed-sinc quality and 0 for the
// polynomial interpolators. Plain WindowedSinc uses 64 taps.
func (q Quality) SincTaps() int {
	switch q {
	case QualityWindowedSinc:
		return 64
	case QualityWindowedSinc256:
		return 256
	case QualityWindowedSinc128:
		return 128
	case QualityWindowedSinc64:
		return 64
	case QualityWindowedSinc32:
		return 32
	case QualityWindowedSinc16:
		return 16
	case QualityWindowedSinc8:
		return 8
	default:
		return 0
	}
}

// Qualities returns the selectable quality names, without the "None" sentinel.
func Qualities() []string {
	return append([]string(nil), qualityNames...)
}

// ParseQuality maps a selection string to a Quality by exact name. The second
// result is false for the "None" sentinel and for the empty string.
func ParseQuality(name string) (Quality, bool, error) {
	if name == Disabled || name == "" {
		return 0, false, nil
	}

	for i, n := range qualityNames {
		if n == name {
			return Quality(i), true, nil
		}
	}

	return 0, false, fmt.Errorf("board: quality %q: %w", name, ErrUnknownEnumValue)
}

// LadderMode selects the response of the ladder filter.
type LadderMode int

const (
	LadderLPF12 LadderMode = iota
	LadderHPF12
	LadderBPF12
	LadderLPF24
	LadderHPF24
	LadderBPF24
)

var ladderModeNames = []string{
	LadderLPF12: "LPF12",
	LadderHPF12: "HPF12",
	LadderBPF12: "BPF12",
	LadderLPF24: "LPF24",
	LadderHPF24: "HPF24",
	LadderBPF24: "BPF24",
}

func (m LadderMode) String() string {
	if m < 0 || int(m) >= len(ladderModeNames) {
		return fmt.Sprintf("LadderMode(%d)", int(m))
	}

	return ladderModeNames[m]
}

// LadderModes returns the selectable ladder mode names.
func LadderModes() []string {
	return append([]string(nil), ladderModeNames...)
}

// ParseLadderMode maps a mode name to a LadderMode. The empty string selects
// LPF12.
func ParseLadderMode(name string) (LadderMode, error) {
	if name == "" {
		return LadderLPF12, nil
	}

	for i, n := range ladderModeNames {
		if n == name {
			return LadderMode(i), nil
		}
	}

	return 0, fmt.Errorf("board: ladder mode %q: %w", name, ErrUnknownEnumValue)
}
