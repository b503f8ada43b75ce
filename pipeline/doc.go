// Package pipeline turns a parameter record and interleaved 16-bit audio into
// processed audio.
//
// A Processor converts the input to float channels, builds the effect chain
// from the parameters, pads the audio, runs the chain and optionally
// time-stretches the result before converting back. The DSP work is done by
// an Engine and a Stretcher; engine.Engine and engine.Stretcher are the
// defaults.
package pipeline
