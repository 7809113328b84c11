package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-ppg/dsp/core"
)

// MaxCount is the largest value an 18-bit photodetector reading can take.
const MaxCount = 1<<18 - 1

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	return whiteNoise(g.seed, amplitude, samples), nil
}

func whiteNoise(seed int64, amplitude float64, samples int) []float64 {
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Channel generates one photodetector channel: a sinusoidal pulse at
// pulseHz with the given amplitude on top of dc, plus optional white noise.
// Values are rounded and limited to [0, MaxCount].
func (g *Generator) Channel(dc, amplitude, pulseHz, noise float64, samples int) ([]uint32, error) {
	return g.channel(g.seed, dc, amplitude, pulseHz, noise, samples)
}

func (g *Generator) channel(seed int64, dc, amplitude, pulseHz, noise float64, samples int) ([]uint32, error) {
	if dc < 0 {
		return nil, fmt.Errorf("channel dc must be >= 0: %f", dc)
	}
	wave, err := g.Sine(pulseHz, amplitude, samples)
	if err != nil {
		return nil, err
	}

	var jitter []float64
	if noise > 0 {
		jitter = whiteNoise(seed, noise, samples)
	}

	out := make([]uint32, samples)
	for i, v := range wave {
		v += dc
		if jitter != nil {
			v += jitter[i]
		}
		out[i] = uint32(core.Clamp(math.Round(v), 0, MaxCount))
	}
	return out, nil
}

// PPG describes a synthetic two-channel pulse-oximeter recording.
type PPG struct {
	HeartRateBPM float64
	RedDC        float64
	RedAmplitude float64
	IRDC         float64
	IRAmplitude  float64
	Noise        float64
}

// PPG generates matching red and infrared channels for p. The infrared noise
// is drawn from seed+1 so the two channels carry independent noise.
func (g *Generator) PPG(p PPG, samples int) (red, ir []uint32, err error) {
	if p.HeartRateBPM <= 0 {
		return nil, nil, fmt.Errorf("ppg heart rate must be > 0: %f", p.HeartRateBPM)
	}
	pulseHz := p.HeartRateBPM / 60

	red, err = g.channel(g.seed, p.RedDC, p.RedAmplitude, pulseHz, p.Noise, samples)
	if err != nil {
		return nil, nil, fmt.Errorf("red channel: %w", err)
	}
	ir, err = g.channel(g.seed+1, p.IRDC, p.IRAmplitude, pulseHz, p.Noise, samples)
	if err != nil {
		return nil, nil, fmt.Errorf("ir channel: %w", err)
	}
	return red, ir, nil
}
