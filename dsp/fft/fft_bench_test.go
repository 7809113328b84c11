package fft

import (
	"strconv"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-ppg/internal/testutil"
)

func BenchmarkTransform(b *testing.B) {
	for _, n := range []int{128, 1024, 4096} {
		src := FromReal(testutil.DeterministicNoise(1, 1, n), n)
		buf := make([]complex128, n)

		b.Run("radix2/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				copy(buf, src)
				_ = Transform(buf)
			}
		})

		b.Run("algofft/"+strconv.Itoa(n), func(b *testing.B) {
			plan, err := algofft.NewPlan64(n)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = plan.Forward(buf, src)
			}
		})
	}
}

func BenchmarkTransformComplex64(b *testing.B) {
	const n = 128

	src := make([]complex64, n)
	for i, v := range testutil.DeterministicNoise(1, 1, n) {
		src[i] = complex(float32(v), 0)
	}
	buf := make([]complex64, n)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		_ = Transform(buf)
	}
}
