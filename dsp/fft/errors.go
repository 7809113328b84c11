package fft

import "errors"

// ErrInvalidSize is returned when a transform length is not a power of two.
var ErrInvalidSize = errors.New("fft: length must be a power of two")
