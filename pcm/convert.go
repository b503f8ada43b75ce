package pcm

const fullScale = 32768.0

// FromInt16 transposes interleaved PCM into a channel-major Buffer scaled to
// [-1, 1).
func FromInt16(in Interleaved) (*Buffer, error) {
	err := in.Validate()
	if err != nil {
		return nil, err
	}

	frames := in.Frames()
	out := NewBuffer(in.Channels, frames)

	for c, ch := range out.Data {
		for i := range ch {
			ch[i] = float32(in.Samples[i*in.Channels+c]) / fullScale
		}
	}

	return out, nil
}

// ToInt16 transposes b back to interleaved PCM. Samples are multiplied by
// 32768 and truncated toward zero; products outside the int16 range wrap.
func ToInt16(b *Buffer, sampleRate int) (Interleaved, error) {
	err := b.Validate()
	if err != nil {
		return Interleaved{}, err
	}

	out := Interleaved{
		SampleRate: sampleRate,
		Channels:   b.Channels(),
		Samples:    make([]int16, b.Channels()*b.Frames()),
	}

	err = out.Validate()
	if err != nil {
		return Interleaved{}, err
	}

	nch := out.Channels
	for c, ch := range b.Data {
		for i, v := range ch {
			out.Samples[i*nch+c] = int16(int32(v * fullScale))
		}
	}

	return out, nil
}
