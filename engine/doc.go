// Package engine runs a board.Chain over audio using the algo-dsp processors.
//
// Every effect kind has a Factory in a Registry. For each Process call the
// engine builds fresh runtimes, so no state survives between calls and one
// Engine may be shared by concurrent callers. Runtimes normally handle one
// channel; those that need all channels at once (stereo reverb width)
// implement MultichannelProcessor.
//
// The codec emulations (GSM full rate, MP3) and the resampler qualities are
// approximations built from algo-dsp filters, resamplers and an algo-fft STFT.
// They reproduce the audible character of the effect, not bit-exact codecs.
package engine
