package audiofile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-pedalboard/internal/testutil"
	"github.com/cwbudde/algo-pedalboard/pcm"
)

func TestWAVRoundTrip(t *testing.T) {
	t.Parallel()

	in := pcm.Interleaved{
		SampleRate: 22050,
		Channels:   2,
		Samples: testutil.Interleave(
			testutil.DeterministicSine(300, 22050, 0.9, 500),
			testutil.DeterministicNoise(11, 0.5, 500),
		),
	}
	in.Samples[0] = -32768
	in.Samples[1] = 32767

	path := filepath.Join(t.TempDir(), "clip.wav")

	err := WriteFile(path, in)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if out.SampleRate != in.SampleRate || out.Channels != in.Channels {
		t.Fatalf("format = %d Hz x %d, want %d Hz x %d", out.SampleRate, out.Channels, in.SampleRate, in.Channels)
	}

	if len(out.Samples) != len(in.Samples) {
		t.Fatalf("length = %d, want %d", len(out.Samples), len(in.Samples))
	}

	for i := range in.Samples {
		if out.Samples[i] != in.Samples[i] {
			t.Fatalf("sample %d = %d, want %d", i, out.Samples[i], in.Samples[i])
		}
	}
}

func TestToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v, depth int
		want     int16
	}{
		{0, 16, 0},
		{-32768, 16, -32768},
		{128, 8, 0},
		{255, 8, 127 << 8},
		{0, 8, -32768},
		{8388607, 24, 32767},
		{-8388608, 24, -32768},
		{256, 24, 1},
		{2147483647, 32, 32767},
		{2047, 12, 2047 << 4},
	}

	for _, tc := range tests {
		if got := toInt16(tc.v, tc.depth); got != tc.want {
			t.Errorf("toInt16(%d, %d) = %d, want %d", tc.v, tc.depth, got, tc.want)
		}
	}
}

func TestReadFileUnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clip.flac")

	err := os.WriteFile(path, []byte("fLaC"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	_, err = ReadFile(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDecodeWAVRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := DecodeWAV(bytes.NewReader([]byte("definitely not a RIFF header")))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDecodeMP3RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := DecodeMP3(bytes.NewReader(make([]byte, 64)))
	if err == nil {
		t.Fatal("expected error for data without MP3 frames")
	}
}

func TestEncodeWAVInvalidInput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.wav")

	err := WriteFile(path, pcm.Interleaved{SampleRate: 44100, Channels: 0})
	if !errors.Is(err, pcm.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
