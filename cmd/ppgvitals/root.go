package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-ppg/dsp/core"
	"github.com/cwbudde/algo-ppg/dsp/window"
	"github.com/cwbudde/algo-ppg/measure/vitals"
)

const (
	appName   = "ppgvitals"
	envPrefix = "PPGVITALS"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v      *viper.Viper
	logger *zap.Logger

	newPublisher func(url, subject string) (Publisher, error)
}

func newApp() *app {
	return &app{
		v:            viper.New(),
		newPublisher: newNATSPublisher,
	}
}

func newRootCmd(a *app) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   appName,
		Short: "Pulse-oximeter SpO2 and heart-rate estimation",
		Long: `Estimate blood-oxygen saturation (SpO2) and heart rate from red and
infrared photoplethysmography samples.

Samples are split into fixed-size batches. Each batch is checked for a
usable signal, the ratio of ratios gives SpO2, and the strongest spectral
peak between 0.5 and 3 Hz of the infrared channel gives the pulse rate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(configFile); err != nil {
				return err
			}
			return a.initLogger()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	defaults := core.DefaultProcessorConfig()
	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "",
		"config file (default is ./ppgvitals.yaml or $HOME/.config/ppgvitals/ppgvitals.yaml)")
	flags.Float64("sample-rate", defaults.SampleRate, "acquisition rate in Hz")
	flags.Int("fft-size", defaults.FFTSize, "transform length, a power of two")
	flags.Int("batch", defaults.BlockSize, "samples per estimate")
	flags.String("window", window.TypeHamming.String(), "window applied before the transform (rectangular, hann, hamming)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.StringP("output", "o", "table", "output format (table, json, yaml)")
	flags.String("nats-url", "", "publish each estimate to this NATS server")
	flags.String("nats-subject", "ppg.vitals", "NATS subject for published estimates")

	bindFlags(a.v, flags, map[string]string{
		"sample-rate":  "sample_rate",
		"fft-size":     "fft_size",
		"batch":        "batch",
		"window":       "window",
		"log-level":    "log_level",
		"log-format":   "log_format",
		"output":       "output",
		"nats-url":     "nats.url",
		"nats-subject": "nats.subject",
	})

	root.AddCommand(
		newEstimateCmd(a),
		newSimulateCmd(a),
		newWindowCmd(),
		newVersionCmd(),
	)

	return root
}

// bindFlags binds each flag to its configuration key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	flags.VisitAll(func(f *pflag.Flag) {
		key, ok := keys[f.Name]
		if !ok {
			return
		}
		// Lookup always succeeds inside VisitAll.
		_ = v.BindPFlag(key, f)
	})
}

func (a *app) initConfig(configFile string) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if configFile != "" {
		a.v.SetConfigFile(configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configFile, err)
		}
		return nil
	}

	a.v.SetConfigName(appName)
	a.v.SetConfigType("yaml")
	a.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, ".config", appName))
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func (a *app) initLogger() error {
	if a.logger != nil {
		return nil
	}
	logger, err := newLogger(a.v.GetString("log_level"), a.v.GetString("log_format"))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.logger = logger
	return nil
}

// processorConfig returns the acquisition settings from flags, environment
// and config file. The core options ignore non-positive values, so they are
// rejected here instead of falling back to the defaults.
func (a *app) processorConfig() (core.ProcessorConfig, error) {
	sampleRate := a.v.GetFloat64("sample_rate")
	fftSize := a.v.GetInt("fft_size")
	batch := a.v.GetInt("batch")

	switch {
	case !(sampleRate > 0) || math.IsInf(sampleRate, 0):
		return core.ProcessorConfig{}, fmt.Errorf("%w: sample rate must be > 0: %v", vitals.ErrInvalidConfig, sampleRate)
	case fftSize <= 0:
		return core.ProcessorConfig{}, fmt.Errorf("%w: fft size must be > 0: %d", vitals.ErrInvalidConfig, fftSize)
	case batch <= 0:
		return core.ProcessorConfig{}, fmt.Errorf("%w: batch must be > 0: %d", vitals.ErrInvalidConfig, batch)
	}

	return core.ApplyProcessorOptions(
		core.WithSampleRate(sampleRate),
		core.WithFFTSize(fftSize),
		core.WithBlockSize(batch),
	), nil
}

func (a *app) estimator(pc core.ProcessorConfig) (*vitals.Estimator, error) {
	cfg := vitals.DefaultConfig(
		core.WithSampleRate(pc.SampleRate),
		core.WithFFTSize(pc.FFTSize),
	)

	wt, err := window.ParseType(a.v.GetString("window"))
	if err != nil {
		return nil, err
	}
	cfg.Window = wt

	return vitals.NewEstimator(cfg)
}
