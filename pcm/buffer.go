package pcm

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a malformed buffer, a non-positive sample rate or a
// negative padding duration.
var ErrInvalidInput = errors.New("invalid input")

// Interleaved is 16-bit PCM stored frame by frame: Samples[i*Channels+c] is
// channel c of frame i.
type Interleaved struct {
	SampleRate int
	Channels   int
	Samples    []int16
}

// Frames returns the number of sample frames, or 0 if Channels is not positive.
func (in Interleaved) Frames() int {
	if in.Channels <= 0 {
		return 0
	}

	return len(in.Samples) / in.Channels
}

// Validate checks that in describes a rectangular frames × channels buffer
// with a positive sample rate.
func (in Interleaved) Validate() error {
	if in.SampleRate <= 0 {
		return fmt.Errorf("pcm: sample rate %d: %w", in.SampleRate, ErrInvalidInput)
	}

	if in.Channels <= 0 {
		return fmt.Errorf("pcm: channel count %d: %w", in.Channels, ErrInvalidInput)
	}

	if len(in.Samples)%in.Channels != 0 {
		return fmt.Errorf("pcm: %d samples do not fill %d channels: %w",
			len(in.Samples), in.Channels, ErrInvalidInput)
	}

	return nil
}

// Buffer holds normalized audio channel-major. All channels slice one
// contiguous backing array in channel order.
type Buffer struct {
	Data [][]float32
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer(channels, frames int) *Buffer {
	backing := make([]float32, channels*frames)
	data := make([][]float32, channels)

	for c := range data {
		data[c] = backing[c*frames : (c+1)*frames : (c+1)*frames]
	}

	return &Buffer{Data: data}
}

// Channels returns the channel count.
func (b *Buffer) Channels() int { return len(b.Data) }

// Frames returns the length of the first channel.
func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}

	return len(b.Data[0])
}

// Validate reports ErrInvalidInput for an empty or ragged buffer.
func (b *Buffer) Validate() error {
	if b == nil || len(b.Data) == 0 {
		return fmt.Errorf("pcm: buffer has no channels: %w", ErrInvalidInput)
	}

	n := len(b.Data[0])
	for c, ch := range b.Data {
		if len(ch) != n {
			return fmt.Errorf("pcm: channel %d has %d frames, want %d: %w", c, len(ch), n, ErrInvalidInput)
		}
	}

	return nil
}

// Clone returns a deep copy in a fresh contiguous allocation.
func (b *Buffer) Clone() *Buffer {
	out := NewBuffer(b.Channels(), b.Frames())
	for c, ch := range b.Data {
		copy(out.Data[c], ch)
	}

	return out
}

// Float64 widens the buffer for the DSP stages.
func (b *Buffer) Float64() [][]float64 {
	out := make([][]float64, len(b.Data))
	for c, ch := range b.Data {
		dst := make([]float64, len(ch))
		for i, v := range ch {
			dst[i] = float64(v)
		}

		out[c] = dst
	}

	return out
}

// FromFloat64 narrows channel-major float64 audio into a contiguous Buffer.
// Channels must share one length.
func FromFloat64(channels [][]float64) (*Buffer, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("pcm: no channels: %w", ErrInvalidInput)
	}

	n := len(channels[0])
	out := NewBuffer(len(channels), n)

	for c, ch := range channels {
		if len(ch) != n {
			return nil, fmt.Errorf("pcm: channel %d has %d frames, want %d: %w", c, len(ch), n, ErrInvalidInput)
		}

		dst := out.Data[c]
		for i, v := range ch {
			dst[i] = float32(v)
		}
	}

	return out, nil
}
