package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Publisher forwards estimates to an external consumer.
type Publisher interface {
	Publish(Report) error
	Close() error
}

// vitalsMsg is the JSON payload published per batch.
type vitalsMsg struct {
	Subject string  `json:"subject"`
	Ts      int64   `json:"ts"`
	Batch   int     `json:"batch"`
	Valid   bool    `json:"valid"`
	SpO2    float64 `json:"spo2"`
	BPM     int     `json:"bpm"`
}

func newVitalsMsg(subject string, r Report, now time.Time) vitalsMsg {
	return vitalsMsg{
		Subject: subject,
		Ts:      now.UnixMilli(),
		Batch:   r.Batch,
		Valid:   r.Valid,
		SpO2:    r.SpO2,
		BPM:     r.BPM,
	}
}

type natsPublisher struct {
	nc      *nats.Conn
	subject string
}

func connectNATS(url string) (*nats.Conn, error) {
	return nats.Connect(
		url,
		nats.Name(appName),
		nats.Timeout(3*time.Second),
		nats.ReconnectWait(500*time.Millisecond),
		nats.MaxReconnects(-1),
	)
}

func newNATSPublisher(url, subject string) (Publisher, error) {
	nc, err := connectNATS(url)
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	return &natsPublisher{nc: nc, subject: subject}, nil
}

func (p *natsPublisher) Publish(r Report) error {
	b, err := json.Marshal(newVitalsMsg(p.subject, r, time.Now()))
	if err != nil {
		return err
	}
	return p.nc.Publish(p.subject, b)
}

func (p *natsPublisher) Close() error {
	return p.nc.Drain()
}
