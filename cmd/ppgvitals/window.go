package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-ppg/dsp/window"
)

var windowTypes = []window.Type{
	window.TypeRectangular,
	window.TypeHann,
	window.TypeHamming,
}

func newWindowCmd() *cobra.Command {
	var (
		size     int
		periodic bool
	)

	cmd := &cobra.Command{
		Use:   "window [flags] [window-name ...]",
		Short: "Print properties of the available analysis windows",
		Long: `Print gain and bandwidth figures of the windows that can be applied
before the transform. Without arguments all windows are listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := windowTypes
			if len(args) > 0 {
				types = types[:0:0]
				for _, name := range args {
					t, err := window.ParseType(name)
					if err != nil {
						return err
					}
					types = append(types, t)
				}
			}

			var opts []window.Option
			if periodic {
				opts = append(opts, window.WithPeriodic())
			}
			return printWindows(cmd.OutOrStdout(), types, size, opts)
		},
	}

	cmd.Flags().IntVar(&size, "size", 128, "window length in samples")
	cmd.Flags().BoolVar(&periodic, "periodic", false, "use periodic (FFT) form instead of symmetric")

	return cmd
}

// windowInfo holds summary figures of one window.
type windowInfo struct {
	CoherentGain float64 // mean coefficient
	ENBW         float64 // equivalent noise bandwidth in bins
	Edge         float64 // first coefficient
	Peak         float64 // largest coefficient
}

func analyzeWindow(coeffs []float64) windowInfo {
	n := float64(len(coeffs))
	sum := floats.Sum(coeffs)
	return windowInfo{
		CoherentGain: sum / n,
		ENBW:         n * floats.Dot(coeffs, coeffs) / (sum * sum),
		Edge:         coeffs[0],
		Peak:         floats.Max(coeffs),
	}
}

func printWindows(w io.Writer, types []window.Type, size int, opts []window.Option) error {
	if size < 2 {
		return fmt.Errorf("%w: %d", window.ErrInvalidLength, size)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tEdge\tPeak"); err != nil {
		return fmt.Errorf("write output header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "------\t----\t-------------\t-----------\t----\t----"); err != nil {
		return fmt.Errorf("write output header: %w", err)
	}

	for _, t := range types {
		info := analyzeWindow(window.Generate(t, size, opts...))
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.4f\n",
			t, size, info.CoherentGain, info.ENBW, info.Edge, info.Peak); err != nil {
			return fmt.Errorf("write output row: %w", err)
		}
	}
	return tw.Flush()
}
