package fft

import (
	"fmt"
	"math"
	"math/bits"
)

// Complex is the set of element types accepted by [Transform].
type Complex interface {
	~complex64 | ~complex128
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns log2(n) for a power-of-two n, or -1 otherwise.
func Log2(n int) int {
	if !IsPowerOfTwo(n) {
		return -1
	}
	return bits.TrailingZeros(uint(n))
}

// ReverseBits reverses the lowest width bits of x. Bits above width are
// discarded. For width 4, 3 (0011) becomes 12 (1100).
func ReverseBits(x uint, width int) uint {
	var r uint
	for i := 0; i < width; i++ {
		r = r<<1 | x&1
		x >>= 1
	}
	return r
}

// BitReverse applies the bit-reversal permutation to buf in place.
// The permutation is its own inverse.
func BitReverse[T Complex](buf []T) error {
	n := len(buf)
	if !IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	permute(buf, Log2(n))
	return nil
}

// Transform computes the forward DFT of buf in place.
//
// On return buf[k] holds the bin at frequency k*sampleRate/len(buf). The
// input is consumed: its previous contents are overwritten.
func Transform[T Complex](buf []T) error {
	n := len(buf)
	if !IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	permute(buf, Log2(n))

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		angle := -2 * math.Pi / float64(size)
		wlen := T(complex(math.Cos(angle), math.Sin(angle)))

		for start := 0; start < n; start += size {
			w := T(1)
			for k := 0; k < half; k++ {
				even := buf[start+k]
				odd := w * buf[start+k+half]

				buf[start+k] = even + odd
				buf[start+k+half] = even - odd

				w *= wlen
			}
		}
	}

	return nil
}

// FromReal copies x into a new complex buffer of length n. Samples beyond n
// are dropped; missing samples are zero.
func FromReal(x []float64, n int) []complex128 {
	if n <= 0 {
		return nil
	}

	out := make([]complex128, n)
	for i := 0; i < n && i < len(x); i++ {
		out[i] = complex(x[i], 0)
	}
	return out
}

func permute[T Complex](buf []T, width int) {
	for i := range buf {
		j := int(ReverseBits(uint(i), width))
		if j > i {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
}
