package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-ppg/measure/vitals"
	"github.com/cwbudde/algo-ppg/sensor/max30102"
)

// minFingerSpO2 is the lowest saturation reported as a reading; anything
// lower is treated as the sensor being uncovered.
const minFingerSpO2 = 60

// pipeline runs full batches of samples through the estimator and hands each
// result to the reporter and, when configured, the publisher.
type pipeline struct {
	est   *vitals.Estimator
	batch *max30102.Batch
	log   *zap.Logger
	rep   reporter
	pub   Publisher

	batches int
}

func newPipeline(est *vitals.Estimator, batchSize int, log *zap.Logger, rep reporter, pub Publisher) (*pipeline, error) {
	batch, err := max30102.NewBatch(batchSize)
	if err != nil {
		return nil, err
	}
	return &pipeline{est: est, batch: batch, log: log, rep: rep, pub: pub}, nil
}

// pushSamples feeds paired samples, evaluating every batch that fills up.
func (p *pipeline) pushSamples(ctx context.Context, red, ir []uint32) error {
	if len(red) != len(ir) {
		return fmt.Errorf("channel length mismatch: red=%d ir=%d", len(red), len(ir))
	}
	for i := range ir {
		if err := p.batch.Push(red[i], ir[i]); err != nil {
			return err
		}
		if err := p.evaluateIfFull(ctx); err != nil {
			return err
		}
	}
	return nil
}

// pushFIFO feeds a raw FIFO dump.
func (p *pipeline) pushFIFO(ctx context.Context, raw []byte) error {
	if len(raw)%max30102.BytesPerSample != 0 {
		return fmt.Errorf("%w: %d bytes", max30102.ErrShortFrame, len(raw))
	}
	for len(raw) > 0 {
		n, err := p.batch.PushFIFO(raw)
		if err != nil {
			return err
		}
		raw = raw[n:]
		if err := p.evaluateIfFull(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (p *pipeline) evaluateIfFull(ctx context.Context) error {
	if !p.batch.Full() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	red, ir := p.batch.Windows()
	res, err := p.est.Estimate(red, ir, len(ir))
	if err != nil {
		return fmt.Errorf("batch %d: %w", p.batches, err)
	}

	rep := newReport(p.batches, len(ir), res)
	p.batches++
	p.batch.Reset()

	if res.Valid && res.SpO2 > minFingerSpO2 {
		p.log.Info("vitals",
			zap.Int("batch", rep.Batch),
			zap.Float64("spo2", res.SpO2),
			zap.Int("bpm", res.BPM),
		)
	} else {
		p.log.Warn("no finger detected",
			zap.Int("batch", rep.Batch),
			zap.Float64("ir_dc", res.IR.DC),
			zap.Float64("ir_ac", res.IR.AC),
		)
	}

	if err := p.rep.Add(rep); err != nil {
		return err
	}
	if p.pub != nil {
		if err := p.pub.Publish(rep); err != nil {
			p.log.Error("publish failed", zap.Int("batch", rep.Batch), zap.Error(err))
		}
	}
	return nil
}

// finish flushes the reporter. Samples that did not fill a batch are dropped.
func (p *pipeline) finish() error {
	if n := p.batch.Len(); n > 0 {
		p.log.Debug("dropping partial batch", zap.Int("samples", n))
		p.batch.Reset()
	}
	p.log.Debug("done", zap.Int("batches", p.batches))
	return p.rep.Flush()
}
