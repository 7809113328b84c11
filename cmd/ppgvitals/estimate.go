package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEstimateCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "estimate [flags] <file>",
		Short: "Estimate vital signs from a recording",
		Long: `Estimate SpO2 and heart rate from a recording, one result per batch.

The csv format holds one "red,ir" pair per line; '#' comments and a header
line are allowed. The fifo format is a raw MAX30102 FIFO dump: 6 bytes per
sample, 3 bytes per channel, red first. Use "-" to read standard input.

Examples:
  ppgvitals estimate recording.csv
  ppgvitals estimate --format fifo --batch 100 dump.bin
  cat recording.csv | ppgvitals estimate -o json -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEstimate(cmd.Context(), cmd, args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatCSV, "input format (csv, fifo)")

	return cmd
}

func (a *app) runEstimate(ctx context.Context, cmd *cobra.Command, path, format string) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	p, err := a.newPipeline(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer a.closePublisher(p)

	switch format {
	case formatCSV:
		red, ir, err := readCSV(r)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		a.logger.Debug("loaded recording", zap.String("path", path), zap.Int("samples", len(ir)))
		if err := p.pushSamples(ctx, red, ir); err != nil {
			return err
		}
	case formatFIFO:
		raw, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := p.pushFIFO(ctx, raw); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	default:
		return fmt.Errorf("unknown input format %q (want %s or %s)", format, formatCSV, formatFIFO)
	}

	return p.finish()
}

// newPipeline wires the estimator, reporter and optional publisher from the
// current configuration.
func (a *app) newPipeline(w io.Writer) (*pipeline, error) {
	pc, err := a.processorConfig()
	if err != nil {
		return nil, err
	}

	est, err := a.estimator(pc)
	if err != nil {
		return nil, err
	}

	rep, err := newReporter(a.v.GetString("output"), w)
	if err != nil {
		return nil, err
	}

	var pub Publisher
	if url := a.v.GetString("nats.url"); url != "" {
		subject := a.v.GetString("nats.subject")
		if pub, err = a.newPublisher(url, subject); err != nil {
			return nil, err
		}
		a.logger.Info("publishing estimates", zap.String("url", url), zap.String("subject", subject))
	}

	return newPipeline(est, pc.BlockSize, a.logger, rep, pub)
}

func (a *app) closePublisher(p *pipeline) {
	if p.pub == nil {
		return
	}
	if err := p.pub.Close(); err != nil {
		a.logger.Warn("close publisher", zap.Error(err))
	}
}
