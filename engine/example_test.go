package engine_test

import (
	"fmt"

	"github.com/cwbudde/algo-pedalboard/board"
	"github.com/cwbudde/algo-pedalboard/engine"
	"github.com/cwbudde/algo-pedalboard/pcm"
)

func ExampleEngine_Process() {
	buf := pcm.NewBuffer(1, 4)
	copy(buf.Data[0], []float32{0.1, 0.2, 0.8, -0.9})

	chain := board.Chain{
		board.Gain{GainDB: 6.0206},
		board.Clipping{ThresholdDB: 0},
	}

	out, err := engine.New().Process(chain, buf, 48000)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, v := range out.Data[0] {
		fmt.Printf("%.2f ", v)
	}

	fmt.Println()
	// Output: 0.20 0.40 1.00 -1.00
}

func ExampleStretcher_TimeStretch() {
	buf := pcm.NewBuffer(2, 48000)

	out, err := engine.NewStretcher().TimeStretch(buf, 48000, 1.5, 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(out.Channels(), out.Frames())
	// Output: 2 32000
}
