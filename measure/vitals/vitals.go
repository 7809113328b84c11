package vitals

import (
	"fmt"

	"github.com/cwbudde/algo-ppg/dsp/core"
	"github.com/cwbudde/algo-ppg/dsp/fft"
	"github.com/cwbudde/algo-ppg/dsp/spectrum"
	"github.com/cwbudde/algo-ppg/dsp/window"
	ppgtime "github.com/cwbudde/algo-ppg/stats/time"
)

// Result is one vital-sign estimate.
type Result struct {
	// SpO2 is the saturation in percent, clamped to [0, 100].
	SpO2 float64
	// BPM is the heart rate, truncated toward zero.
	BPM int
	// Valid is false when the batch failed the signal-quality gate.
	Valid bool
	// R is the ratio of ratios.
	R float64
	// PeakBin and PeakHz locate the cardiac peak in the spectrum.
	PeakBin int
	PeakHz  float64
	// Red and IR hold the channel statistics over the counted samples.
	Red ppgtime.Stats
	IR  ppgtime.Stats
}

// Estimator computes vital signs. It holds only immutable configuration and
// is safe for concurrent use; scratch buffers are allocated per call.
type Estimator struct {
	cfg     Config
	lowBin  int
	highBin int
}

// NewEstimator validates cfg and precomputes the search band.
func NewEstimator(cfg Config) (*Estimator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	lo, hi, err := spectrum.BandBins(cfg.SampleRate, cfg.FFTSize, cfg.MinHz, cfg.MaxHz)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &Estimator{cfg: cfg, lowBin: lo, highBin: hi}, nil
}

// Config returns the estimator configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Band returns the inclusive bin range searched for the cardiac peak.
func (e *Estimator) Band() (lo, hi int) {
	return e.lowBin, e.highBin
}

// ComputeVitals is a one-shot estimate with [DefaultConfig].
func ComputeVitals(red, ir []uint32, count int) (spo2 float64, bpm int, err error) {
	e, err := NewEstimator(DefaultConfig())
	if err != nil {
		return 0, 0, err
	}

	res, err := e.Estimate(red, ir, count)
	if err != nil {
		return 0, 0, err
	}
	return res.SpO2, res.BPM, nil
}

// Estimate computes SpO2 and heart rate from the first count samples of red
// and ir. The input slices are not modified.
//
// A batch below the quality thresholds returns a Result with SpO2 0, BPM 0
// and Valid false, and a nil error.
func (e *Estimator) Estimate(red, ir []uint32, count int) (Result, error) {
	if count <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if len(red) < count || len(ir) < count {
		return Result{}, fmt.Errorf("%w: red=%d ir=%d count=%d", ErrShortInput, len(red), len(ir), count)
	}

	irSamples := ppgtime.FromUint32(ir, count)
	res := Result{
		Red: ppgtime.Calculate(ppgtime.FromUint32(red, count)),
		IR:  ppgtime.Calculate(irSamples),
	}

	if !e.signalOK(res.Red, res.IR) {
		return res, nil
	}

	res.R = RatioOfRatios(res.Red, res.IR)
	res.SpO2 = e.spo2(res.R)

	peak, err := e.cardiacPeak(irSamples, res.IR.DC)
	if err != nil {
		return Result{}, err
	}

	res.Valid = true
	res.PeakBin = peak
	res.PeakHz = spectrum.BinFrequency(peak, e.cfg.SampleRate, e.cfg.FFTSize)
	res.BPM = spectrum.BPM(peak, e.cfg.SampleRate, e.cfg.FFTSize)

	return res, nil
}

// RatioOfRatios returns (AC_red/DC_red) / (AC_ir/DC_ir).
func RatioOfRatios(red, ir ppgtime.Stats) float64 {
	return (red.AC / red.DC) / (ir.AC / ir.DC)
}

// RatioForSpO2 inverts the calibration line: the R that maps to spo2 under
// cfg. Useful for synthesizing test recordings.
func RatioForSpO2(cfg Config, spo2 float64) float64 {
	if cfg.SpO2Slope == 0 {
		return 0
	}
	return (cfg.SpO2Intercept - spo2) / cfg.SpO2Slope
}

func (e *Estimator) signalOK(red, ir ppgtime.Stats) bool {
	return ir.DC >= e.cfg.MinIRDC && red.AC >= e.cfg.MinAC && ir.AC >= e.cfg.MinAC
}

func (e *Estimator) spo2(r float64) float64 {
	return core.Clamp(e.cfg.SpO2Intercept-e.cfg.SpO2Slope*r, 0, 100)
}

// cardiacPeak windows the DC-free infrared channel into a zero-padded frame,
// transforms it and returns the strongest bin in the search band. Samples
// past FFTSize are ignored.
func (e *Estimator) cardiacPeak(ir []float64, dc float64) (int, error) {
	n := e.cfg.FFTSize

	frame := make([]float64, n)
	for i := 0; i < len(ir) && i < n; i++ {
		frame[i] = ir[i] - dc
	}

	window.Apply(e.cfg.Window, frame)

	buf := fft.FromReal(frame, n)
	if err := fft.Transform(buf); err != nil {
		return 0, err
	}

	peak, _ := spectrum.PeakBin(spectrum.Magnitude(buf), e.lowBin, e.highBin)
	return peak, nil
}
