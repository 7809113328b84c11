package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// PPGChannel generates one photodetector channel: a sinusoidal pulse of the
// given amplitude riding on a DC level, rounded to unsigned counts.
func PPGChannel(dc, amplitude, freqHz, sampleRate float64, length int) []uint32 {
	wave := DeterministicSine(freqHz, sampleRate, amplitude, length)
	out := make([]uint32, length)
	for i, v := range wave {
		out[i] = uint32(math.Round(math.Max(0, dc+v)))
	}
	return out
}

// ConstantChannel returns length copies of value.
func ConstantChannel(value uint32, length int) []uint32 {
	out := make([]uint32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// SquareChannel alternates between dc-swing and dc+swing every sample, which
// gives a mean of dc and a mean absolute deviation of exactly swing for even
// lengths.
func SquareChannel(dc, swing uint32, length int) []uint32 {
	out := make([]uint32, length)
	for i := range out {
		if i%2 == 0 {
			out[i] = dc - swing
		} else {
			out[i] = dc + swing
		}
	}
	return out
}
