// Package time computes time-domain statistics of photodetector channels.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain statistics of one channel.
type Stats struct {
	Length   int
	DC       float64 // mean
	AC       float64 // mean absolute deviation from DC
	Max      float64
	MaxPos   int
	Min      float64
	MinPos   int
	Range    float64 // max - min
	RMS      float64
	Variance float64 // population variance
}

// Calculate computes all statistics for signal. An empty signal yields the
// zero Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	dc := stat.Mean(signal, nil)
	maxPos := floats.MaxIdx(signal)
	minPos := floats.MinIdx(signal)

	return Stats{
		Length:   n,
		DC:       dc,
		AC:       MeanAbsDeviation(signal, dc),
		Max:      signal[maxPos],
		MaxPos:   maxPos,
		Min:      signal[minPos],
		MinPos:   minPos,
		Range:    signal[maxPos] - signal[minPos],
		RMS:      RMS(signal),
		Variance: stat.PopVariance(signal, nil),
	}
}

// MeanAbsDeviation returns mean(|x - center|). It is the AC amplitude
// estimate used for ratio-of-ratios oximetry.
func MeanAbsDeviation(signal []float64, center float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range signal {
		sum += math.Abs(v - center)
	}
	return sum / float64(len(signal))
}

// RMS returns the root mean square of signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return floats.Norm(signal, 2) / math.Sqrt(float64(len(signal)))
}

// FromUint32 converts the first count samples to float64. A count outside
// [0, len(samples)] is limited to the available samples.
func FromUint32(samples []uint32, count int) []float64 {
	if count < 0 {
		count = 0
	}
	if count > len(samples) {
		count = len(samples)
	}

	out := make([]float64, count)
	for i := range out {
		out[i] = float64(samples[i])
	}
	return out
}
