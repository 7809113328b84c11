package max30102

import "fmt"

const (
	// BytesPerChannel is the width of one channel reading in the FIFO.
	BytesPerChannel = 3
	// BytesPerSample covers one red and one infrared reading.
	BytesPerSample = 2 * BytesPerChannel
	// SampleMask keeps the 18 significant bits of a reading.
	SampleMask = 0x03FFFF
)

// DecodeSample decodes one 6-byte FIFO sample in SpO2 mode: red first, then
// infrared, each big-endian and masked to 18 bits. Extra bytes are ignored.
func DecodeSample(b []byte) (red, ir uint32, err error) {
	if len(b) < BytesPerSample {
		return 0, 0, fmt.Errorf("%w: %d bytes, need %d", ErrShortFrame, len(b), BytesPerSample)
	}
	return channel(b[0:3]), channel(b[3:6]), nil
}

// DecodeFIFO decodes a burst read of consecutive FIFO samples.
func DecodeFIFO(b []byte) (red, ir []uint32, err error) {
	if len(b)%BytesPerSample != 0 {
		return nil, nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrShortFrame, len(b), BytesPerSample)
	}

	n := len(b) / BytesPerSample
	red = make([]uint32, n)
	ir = make([]uint32, n)
	for i := 0; i < n; i++ {
		off := i * BytesPerSample
		red[i] = channel(b[off : off+3])
		ir[i] = channel(b[off+3 : off+6])
	}
	return red, ir, nil
}

// EncodeSample is the inverse of DecodeSample for values within 18 bits. It
// is used to build replay files.
func EncodeSample(dst []byte, red, ir uint32) []byte {
	red &= SampleMask
	ir &= SampleMask
	return append(dst,
		byte(red>>16), byte(red>>8), byte(red),
		byte(ir>>16), byte(ir>>8), byte(ir),
	)
}

func channel(b []byte) uint32 {
	return (uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])) & SampleMask
}
