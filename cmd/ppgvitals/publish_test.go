package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVitalsMsg(t *testing.T) {
	r := Report{Batch: 4, Valid: true, SpO2: 97.5, BPM: 84}
	msg := newVitalsMsg("ppg.vitals", r, time.UnixMilli(1700000000123))

	assert.Equal(t, vitalsMsg{
		Subject: "ppg.vitals",
		Ts:      1700000000123,
		Batch:   4,
		Valid:   true,
		SpO2:    97.5,
		BPM:     84,
	}, msg)
}

func TestVitalsMsgJSON(t *testing.T) {
	b, err := json.Marshal(newVitalsMsg("ppg.vitals", Report{BPM: 72, SpO2: 98, Valid: true}, time.UnixMilli(5)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"subject":"ppg.vitals","ts":5,"batch":0,"valid":true,"spo2":98,"bpm":72}`, string(b))
}
