package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ppg/dsp/core"
)

// ErrInvalidBand is returned when a search band cannot be mapped onto bins.
var ErrInvalidBand = errors.New("spectrum: invalid search band")

// BinResolution returns the bin spacing in Hz for an n-point transform.
func BinResolution(sampleRate float64, n int) float64 {
	if sampleRate <= 0 || n <= 0 {
		return 0
	}
	return sampleRate / float64(n)
}

// BinFrequency returns the centre frequency of bin k in Hz.
func BinFrequency(k int, sampleRate float64, n int) float64 {
	return float64(k) * BinResolution(sampleRate, n)
}

// BandBins maps [loHz, hiHz] onto an inclusive bin range by truncating
// loHz/res and hiHz/res toward zero. The upper bound is limited to the
// Nyquist bin n/2.
func BandBins(sampleRate float64, n int, loHz, hiHz float64) (lo, hi int, err error) {
	res := BinResolution(sampleRate, n)
	if res == 0 {
		return 0, 0, fmt.Errorf("%w: sample rate %v, size %d", ErrInvalidBand, sampleRate, n)
	}
	if !isFinite(loHz) || !isFinite(hiHz) || loHz < 0 || hiHz < loHz {
		return 0, 0, fmt.Errorf("%w: [%v, %v] Hz", ErrInvalidBand, loHz, hiHz)
	}

	nyquist := n / 2
	lo = core.ClampInt(int(loHz/res), 0, nyquist)
	hi = core.ClampInt(int(hiHz/res), 0, nyquist)

	return lo, hi, nil
}

// PeakBin returns the index and magnitude of the largest value in mag[lo..hi]
// (inclusive). Ties keep the lowest index. When every value in range is zero
// the result is (0, 0), matching a search that starts from an empty maximum.
func PeakBin(mag []float64, lo, hi int) (int, float64) {
	if lo < 0 {
		lo = 0
	}
	if hi >= len(mag) {
		hi = len(mag) - 1
	}

	peak, peakMag := 0, 0.0
	for i := lo; i <= hi; i++ {
		if mag[i] > peakMag {
			peak, peakMag = i, mag[i]
		}
	}

	return peak, peakMag
}

// BPM converts bin k to beats per minute, truncated toward zero.
func BPM(k int, sampleRate float64, n int) int {
	return int(BinFrequency(k, sampleRate, n) * 60)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
