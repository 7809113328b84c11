package fft

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	godsp "github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-ppg/internal/testutil"
)

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{n: -4, want: false},
		{n: 0, want: false},
		{n: 1, want: true},
		{n: 2, want: true},
		{n: 3, want: false},
		{n: 100, want: false},
		{n: 128, want: true},
		{n: 1 << 20, want: true},
	}

	for _, tt := range tests {
		if got := IsPowerOfTwo(tt.n); got != tt.want {
			t.Fatalf("IsPowerOfTwo(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestLog2(t *testing.T) {
	if got := Log2(128); got != 7 {
		t.Fatalf("Log2(128) = %d, want 7", got)
	}
	if got := Log2(1); got != 0 {
		t.Fatalf("Log2(1) = %d, want 0", got)
	}
	if got := Log2(96); got != -1 {
		t.Fatalf("Log2(96) = %d, want -1", got)
	}
}

func TestReverseBits(t *testing.T) {
	tests := []struct {
		x     uint
		width int
		want  uint
	}{
		{x: 3, width: 4, want: 12},
		{x: 1, width: 3, want: 4},
		{x: 6, width: 3, want: 3},
		{x: 0, width: 7, want: 0},
		{x: 127, width: 7, want: 127},
		{x: 1, width: 7, want: 64},
		{x: 5, width: 0, want: 0},
	}

	for _, tt := range tests {
		if got := ReverseBits(tt.x, tt.width); got != tt.want {
			t.Fatalf("ReverseBits(%d, %d) = %d, want %d", tt.x, tt.width, got, tt.want)
		}
	}
}

func TestBitReverseSelfInverse(t *testing.T) {
	for _, n := range []int{1, 2, 8, 64, 128, 1024} {
		buf := make([]complex128, n)
		for i := range buf {
			buf[i] = complex(float64(i), -float64(i))
		}

		if err := BitReverse(buf); err != nil {
			t.Fatalf("n=%d: BitReverse error: %v", n, err)
		}
		if err := BitReverse(buf); err != nil {
			t.Fatalf("n=%d: BitReverse error: %v", n, err)
		}

		for i, v := range buf {
			if v != complex(float64(i), -float64(i)) {
				t.Fatalf("n=%d: index %d = %v after double permutation", n, i, v)
			}
		}
	}
}

func TestBitReverseOrder(t *testing.T) {
	buf := []complex64{0, 1, 2, 3, 4, 5, 6, 7}
	if err := BitReverse(buf); err != nil {
		t.Fatal(err)
	}

	want := []complex64{0, 4, 2, 6, 1, 5, 3, 7}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("index %d = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestTransformInvalidSize(t *testing.T) {
	for _, n := range []int{0, 3, 6, 100, 127} {
		buf := make([]complex128, n)
		for i := range buf {
			buf[i] = complex(float64(i+1), 0)
		}

		err := Transform(buf)
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("n=%d: err = %v, want ErrInvalidSize", n, err)
		}

		for i, v := range buf {
			if v != complex(float64(i+1), 0) {
				t.Fatalf("n=%d: buffer modified at %d on rejected call", n, i)
			}
		}
	}

	if err := BitReverse(make([]complex64, 12)); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("BitReverse err = %v, want ErrInvalidSize", err)
	}
}

func TestTransformZeros(t *testing.T) {
	for _, n := range []int{1, 2, 4, 16, 128, 2048} {
		buf := make([]complex128, n)
		if err := Transform(buf); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		for k, v := range buf {
			if v != 0 {
				t.Fatalf("n=%d: bin %d = %v, want 0", n, k, v)
			}
		}
	}
}

func TestTransformImpulse(t *testing.T) {
	buf := make([]complex128, 32)
	buf[0] = 1

	if err := Transform(buf); err != nil {
		t.Fatal(err)
	}

	for k, v := range buf {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Fatalf("bin %d = %v, want 1", k, v)
		}
	}
}

func TestTransformDC(t *testing.T) {
	const n = 64

	buf := FromReal(testutil.DC(2.5, n), n)
	if err := Transform(buf); err != nil {
		t.Fatal(err)
	}

	if math.Abs(real(buf[0])-2.5*n) > 1e-9 {
		t.Fatalf("bin 0 = %v, want %v", buf[0], 2.5*n)
	}
	for k := 1; k < n; k++ {
		if cmplx.Abs(buf[k]) > 1e-9 {
			t.Fatalf("bin %d = %v, want ~0", k, buf[k])
		}
	}
}

func TestTransformSinusoidPeak(t *testing.T) {
	const (
		n          = 128
		sampleRate = 60.0
	)

	for _, k := range []int{1, 3, 5, 10, 31, 63} {
		freq := float64(k) * sampleRate / n
		buf := FromReal(testutil.DeterministicSine(freq, sampleRate, 1, n), n)

		if err := Transform(buf); err != nil {
			t.Fatal(err)
		}

		want := float64(n) / 2
		if got := cmplx.Abs(buf[k]); math.Abs(got-want) > 1e-9 {
			t.Fatalf("k=%d: |X[k]| = %v, want %v", k, got, want)
		}

		// Real input mirrors bin k at n-k; every other bin must be empty.
		for b := 0; b < n; b++ {
			if b == k || b == n-k {
				continue
			}
			if mag := cmplx.Abs(buf[b]); mag > 1e-9 {
				t.Fatalf("k=%d: leakage at bin %d: %v", k, b, mag)
			}
		}
	}
}

func TestTransformLinearity(t *testing.T) {
	const n = 64

	a := FromReal(testutil.DeterministicNoise(1, 1, n), n)
	b := FromReal(testutil.DeterministicNoise(2, 1, n), n)

	sum := make([]complex128, n)
	for i := range sum {
		sum[i] = 2*a[i] - 3*b[i]
	}

	for _, buf := range [][]complex128{a, b, sum} {
		if err := Transform(buf); err != nil {
			t.Fatal(err)
		}
	}

	for k := range sum {
		want := 2*a[k] - 3*b[k]
		if cmplx.Abs(sum[k]-want) > 1e-9 {
			t.Fatalf("bin %d: got %v, want %v", k, sum[k], want)
		}
	}
}

func TestTransformMatchesAlgoFFT(t *testing.T) {
	for _, n := range []int{2, 8, 64, 128, 1024} {
		in := FromReal(testutil.DeterministicNoise(int64(n), 1, n), n)
		for i := range in {
			in[i] += complex(0, 0.25*float64(i%3))
		}

		plan, err := algofft.NewPlan64(n)
		if err != nil {
			t.Fatalf("n=%d: NewPlan64: %v", n, err)
		}

		want := make([]complex128, n)
		if err := plan.Forward(want, in); err != nil {
			t.Fatalf("n=%d: Forward: %v", n, err)
		}

		got := append([]complex128(nil), in...)
		if err := Transform(got); err != nil {
			t.Fatal(err)
		}

		requireSpectraClose(t, got, want, 1e-9*float64(n))
	}
}

func TestTransformMatchesGoDSP(t *testing.T) {
	const n = 128

	in := FromReal(testutil.DeterministicNoise(7, 1000, n), n)
	want := godsp.FFT(in)

	got := append([]complex128(nil), in...)
	if err := Transform(got); err != nil {
		t.Fatal(err)
	}

	requireSpectraClose(t, got, want, 1e-6)
}

func TestTransformComplex64(t *testing.T) {
	const n = 128

	ref := FromReal(testutil.DeterministicNoise(3, 1, n), n)
	single := make([]complex64, n)
	for i, v := range ref {
		single[i] = complex64(v)
	}

	if err := Transform(ref); err != nil {
		t.Fatal(err)
	}
	if err := Transform(single); err != nil {
		t.Fatal(err)
	}

	for k := range ref {
		if cmplx.Abs(complex128(single[k])-ref[k]) > 1e-3 {
			t.Fatalf("bin %d: complex64 %v vs complex128 %v", k, single[k], ref[k])
		}
	}
}

func TestFromReal(t *testing.T) {
	padded := FromReal([]float64{1, 2, 3}, 4)
	want := []complex128{1, 2, 3, 0}
	for i := range want {
		if padded[i] != want[i] {
			t.Fatalf("padded[%d] = %v, want %v", i, padded[i], want[i])
		}
	}

	truncated := FromReal([]float64{1, 2, 3, 4, 5}, 2)
	if len(truncated) != 2 || truncated[1] != 2 {
		t.Fatalf("truncated = %v, want [1 2]", truncated)
	}

	if FromReal([]float64{1}, 0) != nil {
		t.Fatal("expected nil for n <= 0")
	}
}

func requireSpectraClose(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for k := range got {
		if d := cmplx.Abs(got[k] - want[k]); d > eps {
			t.Fatalf("bin %d: got %v, want %v (diff %v > %v)", k, got[k], want[k], d, eps)
		}
	}
}
