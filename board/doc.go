// Package board turns a pedalboard parameter record into an ordered effect chain.
//
// The chain order is fixed and not user-reorderable:
//
//	NoiseGate, Gain, Reverb, Delay, Chorus, Phaser, PitchShift, Compressor,
//	Distortion, Bitcrush, GSMFullRateCompressor, MP3Compressor, Resample,
//	HighpassFilter, LowpassFilter, HighShelfFilter, LowShelfFilter,
//	PeakFilter, LadderFilter, Limiter, Clipping
//
// Flagged effects are added when their Enabled flag is set, GSM and Resample
// when their quality selection is not "None", and Gain when its level is
// non-zero. BuildChain is pure: it reads a Params value and returns a new
// Chain without processing any audio.
//
// Numeric parameters are clamped into the range of their control before they
// are placed in the chain. See Ranges for the table.
package board
