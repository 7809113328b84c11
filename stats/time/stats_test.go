package time

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ppg/internal/testutil"
)

func TestCalculateEmpty(t *testing.T) {
	if s := Calculate(nil); s != (Stats{}) {
		t.Fatalf("Calculate(nil) = %#v, want zero", s)
	}
}

func TestCalculateConstant(t *testing.T) {
	s := Calculate(testutil.DC(5000, 100))

	if s.Length != 100 {
		t.Fatalf("Length = %d, want 100", s.Length)
	}
	if s.DC != 5000 {
		t.Fatalf("DC = %v, want 5000", s.DC)
	}
	if s.AC != 0 {
		t.Fatalf("AC = %v, want 0", s.AC)
	}
	if s.Range != 0 || s.Variance != 0 {
		t.Fatalf("Range=%v Variance=%v, want 0", s.Range, s.Variance)
	}
	testutil.RequireWithin(t, "RMS", s.RMS, 5000, 1e-9)
}

func TestCalculateSquareWave(t *testing.T) {
	signal := FromUint32(testutil.SquareChannel(50000, 300, 100), 100)
	s := Calculate(signal)

	if s.DC != 50000 {
		t.Fatalf("DC = %v, want 50000", s.DC)
	}
	if s.AC != 300 {
		t.Fatalf("AC = %v, want 300", s.AC)
	}
	if s.Max != 50300 || s.MaxPos != 1 {
		t.Fatalf("Max = %v at %d, want 50300 at 1", s.Max, s.MaxPos)
	}
	if s.Min != 49700 || s.MinPos != 0 {
		t.Fatalf("Min = %v at %d, want 49700 at 0", s.Min, s.MinPos)
	}
	if s.Range != 600 {
		t.Fatalf("Range = %v, want 600", s.Range)
	}
	testutil.RequireWithin(t, "Variance", s.Variance, 300*300, 1e-6)
}

func TestMeanAbsDeviationSine(t *testing.T) {
	// A full-period sine has mean |x| of 2A/pi.
	signal := testutil.DeterministicSine(1, 1000, 2, 1000)
	got := MeanAbsDeviation(signal, 0)
	testutil.RequireWithin(t, "MAD", got, 4/math.Pi, 1e-3)

	if MeanAbsDeviation(nil, 1) != 0 {
		t.Fatal("expected 0 for empty signal")
	}
}

func TestRMS(t *testing.T) {
	if RMS(nil) != 0 {
		t.Fatal("RMS(nil) != 0")
	}
	testutil.RequireWithin(t, "RMS", RMS([]float64{3, -3, 3, -3}), 3, 1e-12)
}

func TestFromUint32(t *testing.T) {
	samples := []uint32{1, 2, 3, 262143}

	got := FromUint32(samples, 4)
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 2, 3, 262143}, 0)

	if len(FromUint32(samples, 2)) != 2 {
		t.Fatal("expected count to limit conversion")
	}
	if len(FromUint32(samples, 10)) != 4 {
		t.Fatal("expected count to be limited to input length")
	}
	if len(FromUint32(samples, -1)) != 0 {
		t.Fatal("expected empty result for negative count")
	}
}
