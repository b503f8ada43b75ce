//go:build js && wasm

package main

import (
	"encoding/json"
	"strings"
	"syscall/js"

	"github.com/cwbudde/algo-pedalboard/board"
	"github.com/cwbudde/algo-pedalboard/pcm"
	"github.com/cwbudde/algo-pedalboard/pipeline"
	"github.com/sirupsen/logrus"
)

var (
	processor *pipeline.Processor
	funcs     []js.Func
)

func main() {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	processor = pipeline.New(pipeline.WithLogger(log))

	api := js.Global().Get("Object").New()

	// process(paramsJSON, sampleRate, channels, Int16Array)
	api.Set("process", export(func(args []js.Value) any {
		if len(args) < 4 {
			return errorResult("process expects paramsJSON, sampleRate, channels, samples")
		}

		params, err := board.DecodeParams(strings.NewReader(args[0].String()))
		if err != nil {
			return errorResult(err.Error())
		}

		src := args[3]
		in := pcm.Interleaved{
			SampleRate: args[1].Int(),
			Channels:   args[2].Int(),
			Samples:    make([]int16, src.Length()),
		}
		for i := range in.Samples {
			in.Samples[i] = int16(src.Index(i).Int())
		}

		out, err := processor.Process(params, in)
		if err != nil {
			return errorResult(err.Error())
		}

		arr := js.Global().Get("Int16Array").New(len(out.Samples))
		for i, v := range out.Samples {
			arr.SetIndex(i, int(v))
		}

		res := js.Global().Get("Object").New()
		res.Set("sampleRate", out.SampleRate)
		res.Set("channels", out.Channels)
		res.Set("samples", arr)
		return res
	}))

	api.Set("defaults", export(func(_ []js.Value) any {
		data, err := json.Marshal(board.DefaultParams())
		if err != nil {
			return errorResult(err.Error())
		}
		return string(data)
	}))

	api.Set("effects", export(func(_ []js.Value) any {
		kinds := board.Kinds()
		names := make([]any, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}
		return js.ValueOf(names)
	}))

	js.Global().Set("pedalboard", api)
	select {}
}

func errorResult(msg string) js.Value {
	res := js.Global().Get("Object").New()
	res.Set("error", msg)
	return res
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
