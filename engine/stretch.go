package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/effects/pitch"
	"github.com/cwbudde/algo-pedalboard/board"
	"github.com/cwbudde/algo-pedalboard/pcm"
)

// ErrInvalidStretch is returned for a stretch factor that is not finite and
// positive.
var ErrInvalidStretch = errors.New("invalid stretch factor")

// stretchQuality is the kernel used for the varispeed step.
const stretchQuality = board.QualityWindowedSinc

// Stretcher changes the duration of audio by a speed factor. A factor above
// 1 shortens the audio.
//
// The stretch is a pitch shift followed by varispeed resampling: reading the
// audio as if it were recorded at sampleRate·factor and converting it back to
// sampleRate changes its length by 1/factor and its pitch by factor. The
// shifter compensates that pitch change and adds the requested semitones.
type Stretcher struct{}

// NewStretcher returns a Stretcher.
func NewStretcher() *Stretcher {
	return &Stretcher{}
}

// TimeStretch returns buf stretched by factor and pitch-shifted by semitones.
// Each output channel has round(frames/factor) samples. buf is not modified.
func (s *Stretcher) TimeStretch(buf *pcm.Buffer, sampleRate int, factor, semitones float64) (*pcm.Buffer, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return nil, fmt.Errorf("engine: stretch factor %v: %w", factor, ErrInvalidStretch)
	}

	err := buf.Validate()
	if err != nil {
		return nil, err
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("engine: sample rate %d: %w", sampleRate, pcm.ErrInvalidInput)
	}

	sr := float64(sampleRate)
	outLen := int(math.Round(float64(buf.Frames()) / factor))
	shift := semitones - 12*math.Log2(factor)

	channels := buf.Float64()
	out := make([][]float64, len(channels))

	for c, ch := range channels {
		shifted, err := shiftPitch(ch, sr, shift)
		if err != nil {
			return nil, fmt.Errorf("engine: stretch pitch: %w", err)
		}

		conv, err := newRateConverter(sr*factor, sr, stretchQuality)
		if err != nil {
			return nil, fmt.Errorf("engine: stretch resample: %w", err)
		}

		out[c] = conv.convert(shifted, outLen)
	}

	return pcm.FromFloat64(out)
}

func shiftPitch(x []float64, sampleRate, semitones float64) ([]float64, error) {
	if semitones == 0 || len(x) == 0 {
		return x, nil
	}

	fx, err := pitch.NewPitchShifter(sampleRate)
	if err != nil {
		return nil, err
	}

	passes, err := setPitchPasses(fx, semitones)
	if err != nil {
		return nil, err
	}

	for range passes {
		x = fx.Process(x)
	}

	return x, nil
}
