package max30102

import "errors"

// ErrShortFrame is returned when a FIFO buffer does not hold a whole number
// of samples.
var ErrShortFrame = errors.New("max30102: incomplete fifo frame")

// ErrBatchFull is returned by [Batch.Push] once the batch has reached its
// capacity.
var ErrBatchFull = errors.New("max30102: batch is full")
