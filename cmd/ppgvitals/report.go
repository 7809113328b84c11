package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-ppg/measure/vitals"
)

// Report is the per-batch output record.
type Report struct {
	Batch   int     `json:"batch" yaml:"batch"`
	Samples int     `json:"samples" yaml:"samples"`
	Valid   bool    `json:"valid" yaml:"valid"`
	SpO2    float64 `json:"spo2" yaml:"spo2"`
	BPM     int     `json:"bpm" yaml:"bpm"`
	R       float64 `json:"r" yaml:"r"`
	PeakHz  float64 `json:"peak_hz" yaml:"peak_hz"`
	RedDC   float64 `json:"red_dc" yaml:"red_dc"`
	RedAC   float64 `json:"red_ac" yaml:"red_ac"`
	IRDC    float64 `json:"ir_dc" yaml:"ir_dc"`
	IRAC    float64 `json:"ir_ac" yaml:"ir_ac"`
}

func newReport(batch, samples int, res vitals.Result) Report {
	return Report{
		Batch:   batch,
		Samples: samples,
		Valid:   res.Valid,
		SpO2:    res.SpO2,
		BPM:     res.BPM,
		R:       res.R,
		PeakHz:  res.PeakHz,
		RedDC:   res.Red.DC,
		RedAC:   res.Red.AC,
		IRDC:    res.IR.DC,
		IRAC:    res.IR.AC,
	}
}

type reporter interface {
	Add(Report) error
	Flush() error
}

func newReporter(format string, w io.Writer) (reporter, error) {
	switch format {
	case "table", "":
		return newTableReporter(w)
	case "json":
		return &jsonReporter{enc: json.NewEncoder(w)}, nil
	case "yaml":
		return &yamlReporter{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

type tableReporter struct {
	tw *tabwriter.Writer
}

func newTableReporter(w io.Writer) (*tableReporter, error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "Batch\tSamples\tValid\tSpO2 [%]\tBPM\tR\tPeak [Hz]\tIR DC\tIR AC"); err != nil {
		return nil, fmt.Errorf("write table header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "-----\t-------\t-----\t--------\t---\t-\t---------\t-----\t-----"); err != nil {
		return nil, fmt.Errorf("write table header: %w", err)
	}
	return &tableReporter{tw: tw}, nil
}

func (t *tableReporter) Add(r Report) error {
	_, err := fmt.Fprintf(t.tw, "%d\t%d\t%t\t%.1f\t%d\t%.4f\t%.3f\t%.0f\t%.1f\n",
		r.Batch, r.Samples, r.Valid, r.SpO2, r.BPM, r.R, r.PeakHz, r.IRDC, r.IRAC)
	if err != nil {
		return fmt.Errorf("write table row: %w", err)
	}
	return nil
}

func (t *tableReporter) Flush() error {
	return t.tw.Flush()
}

// jsonReporter writes one JSON object per line.
type jsonReporter struct {
	enc *json.Encoder
}

func (j *jsonReporter) Add(r Report) error { return j.enc.Encode(r) }

func (j *jsonReporter) Flush() error { return nil }

// yamlReporter collects all reports and writes one YAML sequence.
type yamlReporter struct {
	w       io.Writer
	reports []Report
}

func (y *yamlReporter) Add(r Report) error {
	y.reports = append(y.reports, r)
	return nil
}

func (y *yamlReporter) Flush() error {
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(y.reports); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return enc.Close()
}
