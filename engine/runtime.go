package engine

import "github.com/cwbudde/algo-pedalboard/board"

// Runtime is the per-effect configuration and processing contract. Process
// works on one channel in place and keeps the block length.
type Runtime interface {
	Configure(ctx Context, fx board.Effect) error
	Process(block []float64)
}

// MultichannelProcessor is an optional interface for runtimes that process
// all channels together. The engine then creates a single instance and calls
// ProcessChannels instead of one Process per channel.
type MultichannelProcessor interface {
	ProcessChannels(channels [][]float64)
}
