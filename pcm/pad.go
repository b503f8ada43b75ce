package pcm

import (
	"fmt"
	"math"
)

// Pad surrounds every channel with round(sampleRate*startSec) leading and
// round(sampleRate*endSec) trailing zeros. When both durations are zero b is
// returned as is.
func Pad(b *Buffer, sampleRate int, startSec, endSec float64) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("pcm: pad: sample rate %d: %w", sampleRate, ErrInvalidInput)
	}

	if !(startSec >= 0) || math.IsInf(startSec, 0) {
		return nil, fmt.Errorf("pcm: pad: start duration %g: %w", startSec, ErrInvalidInput)
	}

	if !(endSec >= 0) || math.IsInf(endSec, 0) {
		return nil, fmt.Errorf("pcm: pad: end duration %g: %w", endSec, ErrInvalidInput)
	}

	err := b.Validate()
	if err != nil {
		return nil, err
	}

	if startSec == 0 && endSec == 0 {
		return b, nil
	}

	lead := int(math.Round(float64(sampleRate) * startSec))
	tail := int(math.Round(float64(sampleRate) * endSec))
	frames := b.Frames()

	out := NewBuffer(b.Channels(), lead+frames+tail)
	for c, ch := range b.Data {
		copy(out.Data[c][lead:], ch)
	}

	return out, nil
}
