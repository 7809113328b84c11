// Package fft provides a fixed-size, in-place radix-2 Cooley-Tukey FFT.
//
// The transform is decimation-in-time: a bit-reversal permutation followed by
// log2(n) butterfly stages with a recurrence-generated twiddle factor. Only
// power-of-two lengths are supported; anything else is rejected with
// [ErrInvalidSize] before the buffer is touched.
//
// Transform consumes and overwrites its argument. Callers that need the
// time-domain data afterwards must copy it first.
package fft
