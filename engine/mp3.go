package engine

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-pedalboard/board"
	vecmath "github.com/cwbudde/algo-vecmath"
)

const (
	codecFrameSize = 1024
	codecHopSize   = codecFrameSize / 4
	codecNormFloor = 1e-9

	// Highest VBR setting of the encoder (worst quality).
	maxVBRQuality = 10.0
)

// mp3CutoffHz is the encoder lowpass for each integer VBR setting.
var mp3CutoffHz = [...]float64{19500, 19000, 18600, 17500, 16500, 15500, 14500, 13000, 11500, 10000, 9000}

// mp3Profile maps a VBR setting to the lowpass and the spectral
// signal-to-noise ratio of the emulation. Fractional settings interpolate.
func mp3Profile(vbr float64) (cutoffHz, snrDB float64) {
	vbr = core.Clamp(vbr, 0, maxVBRQuality)

	i := int(vbr)
	if i >= len(mp3CutoffHz)-1 {
		i = len(mp3CutoffHz) - 2
	}

	t := vbr - float64(i)
	cutoffHz = mp3CutoffHz[i] + t*(mp3CutoffHz[i+1]-mp3CutoffHz[i])

	return cutoffHz, 90 - 6*vbr
}

// spectralCodec emulates a transform codec: an STFT that drops bins above a
// cutoff and quantizes the remaining magnitudes to a step set by the frame
// peak and a target signal-to-noise ratio.
type spectralCodec struct {
	cutoffHz   float64
	snrDB      float64
	sampleRate float64

	plan   *algofft.Plan[complex128]
	window []float64
}

func newSpectralCodec(sampleRate, cutoffHz, snrDB float64) (*spectralCodec, error) {
	plan, err := algofft.NewPlan64(codecFrameSize)
	if err != nil {
		return nil, fmt.Errorf("spectral codec: %w", err)
	}

	win, err := window.Hann(codecFrameSize, window.WithPeriodic())
	if err != nil {
		return nil, fmt.Errorf("spectral codec: %w", err)
	}

	return &spectralCodec{
		cutoffHz:   cutoffHz,
		snrDB:      snrDB,
		sampleRate: sampleRate,
		plan:       plan,
		window:     win,
	}, nil
}

// process returns the coded block, same length as x.
func (s *spectralCodec) process(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}

	const size = codecFrameSize

	padded := make([]float64, n+2*size)
	copy(padded[size:], x)

	wet := make([]float64, len(padded))
	norm := make([]float64, len(padded))

	frame := make([]float64, size)
	spec := make([]complex128, size)
	timeFrame := make([]complex128, size)

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	mag := make([]float64, bins)

	cutoffBin := int(math.Ceil(s.cutoffHz * size / s.sampleRate))
	stepScale := math.Pow(10, -s.snrDB/20)

	for pos := 0; pos+size <= len(padded); pos += codecHopSize {
		copy(frame, padded[pos:pos+size])
		vecmath.MulBlockInPlace(frame, s.window)

		for i, v := range frame {
			spec[i] = complex(v, 0)
		}

		if s.plan.Forward(spec, spec) != nil {
			continue
		}

		for k := range bins {
			re[k] = real(spec[k])
			im[k] = imag(spec[k])
		}

		vecmath.Magnitude(mag, re, im)

		peak := 0.0
		for _, m := range mag {
			peak = max(peak, m)
		}

		step := peak * stepScale

		for k := range bins {
			gain := 0.0

			if k < cutoffBin && mag[k] > 0 && step > 0 {
				gain = math.Round(mag[k]/step) * step / mag[k]
			}

			spec[k] *= complex(gain, 0)
			if k > 0 && k < size-k {
				spec[size-k] = complex(real(spec[k]), -imag(spec[k]))
			}
		}

		if s.plan.Inverse(timeFrame, spec) != nil {
			continue
		}

		for i, w := range s.window {
			wet[pos+i] += real(timeFrame[i]) * w
			norm[pos+i] += w * w
		}
	}

	out := make([]float64, n)
	for i := range out {
		v := wet[size+i]
		if nv := norm[size+i]; nv > codecNormFloor {
			v /= nv
		}

		out[i] = v
	}

	return out
}

type mp3Runtime struct {
	codec *spectralCodec
}

func (r *mp3Runtime) Configure(ctx Context, fx board.Effect) error {
	m, err := effectAs[board.MP3Compressor](fx)
	if err != nil {
		return wrapConfigureErr(board.KindMP3Compressor, err)
	}

	cutoff, snr := mp3Profile(m.VBRQuality)

	r.codec, err = newSpectralCodec(ctx.SampleRate, math.Min(cutoff, 0.5*ctx.SampleRate), snr)

	return wrapConfigureErr(board.KindMP3Compressor, err)
}

func (r *mp3Runtime) Process(block []float64) {
	copy(block, r.codec.process(block))
}
