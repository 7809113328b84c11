package vitals

import (
	"testing"

	"github.com/cwbudde/algo-ppg/internal/testutil"
)

func BenchmarkEstimate(b *testing.B) {
	e, err := NewEstimator(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	red := testutil.PPGChannel(40000, 400, 1.2, 60, 100)
	ir := testutil.PPGChannel(50000, 2000, 1.2, 60, 100)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = e.Estimate(red, ir, 100)
	}
}
