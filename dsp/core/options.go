package core

// ProcessorConfig defines common PPG processing settings.
type ProcessorConfig struct {
	// SampleRate is the acquisition rate in Hz.
	SampleRate float64
	// BlockSize is the number of samples per acquisition batch.
	BlockSize int
	// FFTSize is the transform length used for spectral analysis.
	FFTSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the reference pulse-oximeter settings:
// 60 Hz acquisition, 100-sample batches and a 128-point transform.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 60,
		BlockSize:  100,
		FFTSize:    128,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the acquisition batch size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithFFTSize sets the transform length. Power-of-two validation is left
// to the transform itself.
func WithFFTSize(fftSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if fftSize > 0 {
			cfg.FFTSize = fftSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
