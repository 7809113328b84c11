package vitals

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ppg/dsp/core"
	"github.com/cwbudde/algo-ppg/dsp/fft"
	"github.com/cwbudde/algo-ppg/dsp/window"
)

// Reference calibration. These constants belong to the reference sensor and
// must not be tuned without a calibration run.
const (
	DefaultSpO2Intercept = 110.0
	DefaultSpO2Slope     = 25.0
	DefaultMinIRDC       = 10000.0
	DefaultMinAC         = 20.0
	DefaultMinHz         = 0.5
	DefaultMaxHz         = 3.0
)

// Config holds estimator parameters.
type Config struct {
	// SampleRate is the acquisition rate in Hz.
	SampleRate float64
	// FFTSize is the transform length; it must be a power of two.
	FFTSize int
	// MinHz and MaxHz bound the heart-rate search band.
	MinHz float64
	MaxHz float64
	// MinIRDC is the smallest infrared mean accepted as finger present.
	MinIRDC float64
	// MinAC is the smallest per-channel AC amplitude accepted.
	MinAC float64
	// SpO2Intercept and SpO2Slope define SpO2 = intercept - slope*R.
	SpO2Intercept float64
	SpO2Slope     float64
	// Window tapers the infrared frame before the transform.
	Window window.Type
}

// DefaultConfig returns the reference configuration. Processor options
// override the sample rate and transform size.
func DefaultConfig(opts ...core.ProcessorOption) Config {
	pc := core.ApplyProcessorOptions(opts...)

	return Config{
		SampleRate:    pc.SampleRate,
		FFTSize:       pc.FFTSize,
		MinHz:         DefaultMinHz,
		MaxHz:         DefaultMaxHz,
		MinIRDC:       DefaultMinIRDC,
		MinAC:         DefaultMinAC,
		SpO2Intercept: DefaultSpO2Intercept,
		SpO2Slope:     DefaultSpO2Slope,
		Window:        window.TypeHamming,
	}
}

// FrequencyResolution returns the bin spacing in Hz.
func (c Config) FrequencyResolution() float64 {
	if c.FFTSize <= 0 {
		return 0
	}
	return c.SampleRate / float64(c.FFTSize)
}

func (c Config) validate() error {
	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidConfig, c.SampleRate)
	}
	if c.FFTSize < 2 || !fft.IsPowerOfTwo(c.FFTSize) {
		return fmt.Errorf("%w: fft size %d", fft.ErrInvalidSize, c.FFTSize)
	}
	if math.IsNaN(c.MinHz) || math.IsNaN(c.MaxHz) || math.IsInf(c.MinHz, 0) || math.IsInf(c.MaxHz, 0) {
		return fmt.Errorf("%w: band edges must be finite: [%v, %v] Hz", ErrInvalidConfig, c.MinHz, c.MaxHz)
	}
	if !(c.MinAC >= 0) || !(c.MinIRDC >= 0) {
		return fmt.Errorf("%w: quality thresholds must be >= 0", ErrInvalidConfig)
	}
	return nil
}
