package engine

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/interp"
	"github.com/cwbudde/algo-dsp/dsp/resample"
	"github.com/cwbudde/algo-pedalboard/board"
)

// rateConverter converts whole blocks between two sample rates with one of
// the board qualities. Polynomial qualities interpolate directly; the
// windowed-sinc qualities run a polyphase resampler and drop its latency so
// the output stays aligned with the input.
type rateConverter struct {
	quality board.Quality
	step    float64 // input samples per output sample

	sinc  *resample.Resampler
	delay int
}

func newRateConverter(inRate, outRate float64, q board.Quality) (*rateConverter, error) {
	if inRate <= 0 || outRate <= 0 || math.IsNaN(inRate) || math.IsNaN(outRate) {
		return nil, resample.ErrInvalidRate
	}

	c := &rateConverter{quality: q, step: inRate / outRate}

	// Equal rates take the interpolation path, which copies at step 1.
	taps := q.SincTaps()
	if taps == 0 || inRate == outRate {
		return c, nil
	}

	r, err := resample.NewForRates(inRate, outRate,
		resample.WithQuality(resample.QualityBest),
		resample.WithTapsPerPhase(taps),
	)
	if err != nil {
		return nil, err
	}

	_, down := r.Ratio()
	c.sinc = r
	c.delay = int(math.Round(float64(len(r.Prototype())-1) / 2 / float64(down)))

	return c, nil
}

// convert returns outLen samples of x at the output rate.
func (c *rateConverter) convert(x []float64, outLen int) []float64 {
	out := make([]float64, outLen)
	if len(x) == 0 || outLen == 0 {
		return out
	}

	if c.sinc != nil {
		c.sinc.Reset()

		tail := int(math.Ceil(float64(c.delay+1)*c.step)) + c.sinc.TapsPerPhase()
		padded := make([]float64, len(x)+tail)
		copy(padded, x)

		y := c.sinc.Process(padded)
		if c.delay < len(y) {
			copy(out, y[c.delay:])
		}

		return out
	}

	lagrange := interp.NewLagrangeInterpolator(1)

	for j := range out {
		pos := float64(j) * c.step
		i := int(pos)
		t := pos - float64(i)

		switch c.quality {
		case board.QualityZeroOrderHold:
			out[j] = at(x, i)
		case board.QualityLinear:
			out[j] = lagrange.Interpolate([]float64{at(x, i), at(x, i+1)}, t)
		case board.QualityCatmullRom:
			out[j] = interp.Hermite4(t, at(x, i-1), at(x, i), at(x, i+1), at(x, i+2))
		default:
			out[j] = lagrange4(t, at(x, i-1), at(x, i), at(x, i+1), at(x, i+2))
		}
	}

	return out
}

// at reads x with the edge samples held outside its bounds.
func at(x []float64, i int) float64 {
	switch {
	case i < 0:
		return x[0]
	case i >= len(x):
		return x[len(x)-1]
	default:
		return x[i]
	}
}

// lagrange4 is the third-order Lagrange polynomial through points at -1, 0, 1
// and 2, evaluated at t in [0, 1).
func lagrange4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := -t * (t - 1) * (t - 2) / 6
	c1 := (t + 1) * (t - 1) * (t - 2) / 2
	c2 := -(t + 1) * t * (t - 2) / 2
	c3 := (t + 1) * t * (t - 1) / 6

	return c0*xm1 + c1*x0 + c2*x1 + c3*x2
}

// roundTrip takes a block down to a lower rate and back with the same
// quality, keeping its length.
type roundTrip struct {
	down, up *rateConverter
	ratio    float64
}

func newRoundTrip(sampleRate, targetRate float64, q board.Quality) (*roundTrip, error) {
	down, err := newRateConverter(sampleRate, targetRate, q)
	if err != nil {
		return nil, err
	}

	up, err := newRateConverter(targetRate, sampleRate, q)
	if err != nil {
		return nil, err
	}

	return &roundTrip{down: down, up: up, ratio: targetRate / sampleRate}, nil
}

func (rt *roundTrip) toTarget(block []float64) []float64 {
	n := max(int(math.Round(float64(len(block))*rt.ratio)), 1)
	return rt.down.convert(block, n)
}

func (rt *roundTrip) fromTarget(low []float64, n int) []float64 {
	return rt.up.convert(low, n)
}

// resampleRuntime degrades a block by converting it to the target rate and
// back. Targets at or above the source rate leave the block unchanged.
type resampleRuntime struct {
	rt *roundTrip
}

func (r *resampleRuntime) Configure(ctx Context, fx board.Effect) error {
	rs, err := effectAs[board.Resample](fx)
	if err != nil {
		return wrapConfigureErr(board.KindResample, err)
	}

	r.rt = nil
	if rs.TargetSampleRate <= 0 || rs.TargetSampleRate >= ctx.SampleRate {
		return nil
	}

	r.rt, err = newRoundTrip(ctx.SampleRate, rs.TargetSampleRate, rs.Quality)

	return wrapConfigureErr(board.KindResample, err)
}

func (r *resampleRuntime) Process(block []float64) {
	if r.rt == nil || len(block) == 0 {
		return
	}

	copy(block, r.rt.fromTarget(r.rt.toTarget(block), len(block)))
}
