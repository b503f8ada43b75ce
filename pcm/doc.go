// Package pcm converts between 16-bit interleaved PCM and the normalized,
// channel-major float32 buffers the effect engine works on, and pads buffers
// with silence.
//
// Forward conversion divides by 32768; reverse conversion multiplies by 32768
// and truncates toward zero. Values outside [-1, 1) are not clamped on the
// way back, so the caller decides how hot the engine output may be.
package pcm
