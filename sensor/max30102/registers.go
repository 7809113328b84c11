// Package max30102 decodes sample data read from the MAX30102 pulse-oximetry
// sensor FIFO. It performs no bus I/O; callers hand it the raw bytes.
package max30102

// Address is the 7-bit I2C address of the sensor.
const Address = 0x57

// PartID is the value of RegPartID on a genuine part.
const PartID = 0x15

// Register map.
const (
	RegIntrStatus1 = 0x00
	RegIntrStatus2 = 0x01
	RegIntrEnable1 = 0x02
	RegIntrEnable2 = 0x03
	RegFIFOWrPtr   = 0x04
	RegOvfCounter  = 0x05
	RegFIFORdPtr   = 0x06
	RegFIFOData    = 0x07
	RegFIFOConfig  = 0x08
	RegModeConfig  = 0x09
	RegSpO2Config  = 0x0A
	RegLED1PA      = 0x0C // red
	RegLED2PA      = 0x0D // infrared
	RegPartID      = 0xFF
)

// FIFODepth is the number of samples the on-chip FIFO holds.
const FIFODepth = 32

// FIFOPending returns how many samples are waiting in the FIFO given the
// write and read pointers. Both pointers wrap at FIFODepth.
func FIFOPending(writePtr, readPtr uint8) int {
	return (int(writePtr) - int(readPtr) + FIFODepth) % FIFODepth
}
