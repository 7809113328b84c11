package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-ppg/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(100),
		core.WithFFTSize(256),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d fftSize=%d\n", cfg.SampleRate, cfg.BlockSize, cfg.FFTSize)

	// Output:
	// sampleRate=100 blockSize=100 fftSize=256
}

func ExampleClamp() {
	fmt.Println(core.Clamp(104.5, 0, 100), core.Clamp(-3, 0, 100))

	// Output:
	// 100 0
}
