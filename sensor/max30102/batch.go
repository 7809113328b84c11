package max30102

import "fmt"

// Batch collects samples into fixed-size red and infrared windows, the unit
// the vitals estimator consumes.
type Batch struct {
	red []uint32
	ir  []uint32
}

// NewBatch returns an empty batch holding up to size samples.
func NewBatch(size int) (*Batch, error) {
	if size <= 0 {
		return nil, fmt.Errorf("max30102: batch size must be > 0: %d", size)
	}
	return &Batch{
		red: make([]uint32, 0, size),
		ir:  make([]uint32, 0, size),
	}, nil
}

// Push appends one sample.
func (b *Batch) Push(red, ir uint32) error {
	if b.Full() {
		return ErrBatchFull
	}
	b.red = append(b.red, red)
	b.ir = append(b.ir, ir)
	return nil
}

// PushFIFO decodes raw FIFO bytes and appends as many samples as fit. It
// returns the number of bytes consumed, which is short of len(raw) when the
// batch fills up.
func (b *Batch) PushFIFO(raw []byte) (int, error) {
	consumed := 0
	for len(raw)-consumed >= BytesPerSample && !b.Full() {
		red, ir, err := DecodeSample(raw[consumed:])
		if err != nil {
			return consumed, err
		}
		b.red = append(b.red, red)
		b.ir = append(b.ir, ir)
		consumed += BytesPerSample
	}
	return consumed, nil
}

// Len returns the number of samples collected.
func (b *Batch) Len() int { return len(b.ir) }

// Cap returns the batch size.
func (b *Batch) Cap() int { return cap(b.ir) }

// Full reports whether the batch holds Cap samples.
func (b *Batch) Full() bool { return len(b.ir) == cap(b.ir) }

// Windows returns the collected red and infrared samples. The slices alias
// the batch storage until the next Reset.
func (b *Batch) Windows() (red, ir []uint32) {
	return b.red, b.ir
}

// Reset empties the batch, keeping its capacity.
func (b *Batch) Reset() {
	b.red = b.red[:0]
	b.ir = b.ir[:0]
}
