// Command pedalboard applies an effect chain to an audio file.
//
// Usage:
//
//	pedalboard [flags] -in input.{wav,mp3} -out output.wav
//
// Parameters are read from a JSON file whose fields override the defaults.
// Omitted fields keep their default values.
//
// Examples:
//
//	pedalboard -defaults > params.json
//	pedalboard -in voice.wav -out phone.wav -params params.json
//	pedalboard -list
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-pedalboard/board"
	"github.com/cwbudde/algo-pedalboard/internal/audiofile"
	"github.com/cwbudde/algo-pedalboard/pipeline"
	"github.com/sirupsen/logrus"
)

func main() {
	in := flag.String("in", "", "input audio file (WAV or MP3)")
	out := flag.String("out", "", "output WAV file (16-bit)")
	paramsPath := flag.String("params", "", "JSON parameter file (defaults when empty)")
	list := flag.Bool("list", false, "list effects in chain order with their parameter ranges")
	defaults := flag.Bool("defaults", false, "print the default parameters as JSON")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pedalboard [flags] -in input -out output.wav\n\n")
		fmt.Fprintf(os.Stderr, "Applies the effect chain described by a parameter file to an audio file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	switch {
	case *list:
		printList()
		return
	case *defaults:
		printDefaults()
		return
	}

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	params, err := loadParams(*paramsPath)
	if err != nil {
		die(log, err)
	}

	audio, err := audiofile.ReadFile(*in)
	if err != nil {
		die(log, err)
	}

	log.WithFields(logrus.Fields{
		"path":        *in,
		"sample_rate": audio.SampleRate,
		"channels":    audio.Channels,
		"frames":      audio.Frames(),
	}).Debug("Input decoded")

	result, err := pipeline.New(pipeline.WithLogger(log)).Process(params, audio)
	if err != nil {
		die(log, err)
	}

	err = audiofile.WriteFile(*out, result)
	if err != nil {
		die(log, err)
	}

	log.WithFields(logrus.Fields{
		"path":   *out,
		"frames": result.Frames(),
	}).Info("Output written")
}

func loadParams(path string) (board.Params, error) {
	if path == "" {
		return board.DefaultParams(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return board.Params{}, err
	}
	defer f.Close()

	return board.DecodeParams(f)
}

func printDefaults() {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(board.DefaultParams()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList() {
	if err := writeList(os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// writeList prints the effects in chain order with their control ranges,
// followed by the values accepted by the enum-selected fields.
func writeList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "#\tEffect\tParameter\tMin\tMax\n"); err != nil {
		return fmt.Errorf("write output header: %w", err)
	}

	controls := board.Controls()

	for i, kind := range board.Kinds() {
		found := false

		for _, c := range controls {
			if c.Kind != kind {
				continue
			}

			found = true

			if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%g\t%g\n", i+1, kind, c.Name, c.Range.Min, c.Range.Max); err != nil {
				return fmt.Errorf("write output row: %w", err)
			}
		}

		if !found {
			if _, err := fmt.Fprintf(tw, "%d\t%s\t-\t\t\n", i+1, kind); err != nil {
				return fmt.Errorf("write output row: %w", err)
			}
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	qualities := append([]string{board.Disabled}, board.Qualities()...)

	choices := []struct {
		field  string
		values []string
	}{
		{"gsm_quality", qualities},
		{"resample.method", qualities},
		{"ladder.mode", board.LadderModes()},
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("write choices: %w", err)
	}

	for _, c := range choices {
		if _, err := fmt.Fprintf(w, "%s: %s\n", c.field, strings.Join(c.values, ", ")); err != nil {
			return fmt.Errorf("write choices: %w", err)
		}
	}

	return nil
}

func die(log logrus.FieldLogger, err error) {
	log.WithError(err).Error("pedalboard failed")
	os.Exit(1)
}
