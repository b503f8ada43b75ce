// Package audiofile reads WAV and MP3 files into interleaved 16-bit PCM and
// writes 16-bit WAV files.
package audiofile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-pedalboard/pcm"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// ErrUnsupportedFormat is returned for files that are neither PCM WAV nor MP3.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE

	// go-mp3 always decodes to interleaved 16-bit little-endian stereo.
	mp3Channels = 2
)

// ReadFile decodes the file at path, choosing the decoder by extension.
func ReadFile(path string) (pcm.Interleaved, error) {
	f, err := os.Open(path)
	if err != nil {
		return pcm.Interleaved{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return DecodeWAV(f)
	case ".mp3":
		return DecodeMP3(f)
	default:
		return pcm.Interleaved{}, fmt.Errorf("audiofile: %s: %w", path, ErrUnsupportedFormat)
	}
}

// WriteFile encodes in as a 16-bit WAV file at path.
func WriteFile(path string, in pcm.Interleaved) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = EncodeWAV(f, in)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// DecodeWAV reads an integer PCM WAV stream of any bit depth and scales it to
// 16 bits.
func DecodeWAV(r io.ReadSeeker) (pcm.Interleaved, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return pcm.Interleaved{}, fmt.Errorf("audiofile: invalid WAV stream: %w", ErrUnsupportedFormat)
	}

	if dec.WavAudioFormat != wavFormatPCM && dec.WavAudioFormat != wavFormatExtensible {
		return pcm.Interleaved{}, fmt.Errorf("audiofile: WAV format %d: %w", dec.WavAudioFormat, ErrUnsupportedFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return pcm.Interleaved{}, fmt.Errorf("audiofile: decode WAV: %w", err)
	}

	depth := int(dec.BitDepth)
	out := pcm.Interleaved{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Samples:    make([]int16, len(buf.Data)),
	}

	for i, v := range buf.Data {
		out.Samples[i] = toInt16(v, depth)
	}

	return out, out.Validate()
}

// toInt16 rescales one go-audio sample. 8-bit WAV data is unsigned.
func toInt16(v, bitDepth int) int16 {
	switch {
	case bitDepth == 8:
		return int16((v - 128) << 8)
	case bitDepth > 16:
		return int16(v >> (bitDepth - 16))
	case bitDepth < 16:
		return int16(v << (16 - bitDepth))
	default:
		return int16(v)
	}
}

// DecodeMP3 decodes an MP3 stream to 16-bit stereo.
func DecodeMP3(r io.Reader) (pcm.Interleaved, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return pcm.Interleaved{}, fmt.Errorf("audiofile: decode MP3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return pcm.Interleaved{}, fmt.Errorf("audiofile: decode MP3: %w", err)
	}

	n := len(raw) / 2
	n -= n % mp3Channels

	out := pcm.Interleaved{
		SampleRate: dec.SampleRate(),
		Channels:   mp3Channels,
		Samples:    make([]int16, n),
	}

	for i := range out.Samples {
		out.Samples[i] = int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8)
	}

	return out, out.Validate()
}

// EncodeWAV writes in as a 16-bit PCM WAV stream.
func EncodeWAV(w io.WriteSeeker, in pcm.Interleaved) error {
	err := in.Validate()
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(w, in.SampleRate, 16, in.Channels, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: in.Channels,
			SampleRate:  in.SampleRate,
		},
		Data:           make([]int, len(in.Samples)),
		SourceBitDepth: 16,
	}

	for i, v := range in.Samples {
		buf.Data[i] = int(v)
	}

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("audiofile: encode WAV: %w", err)
	}

	return enc.Close()
}
