// Package vitals estimates blood-oxygen saturation and heart rate from one
// batch of red and infrared PPG samples.
//
// Saturation uses the ratio of ratios R = (AC_red/DC_red)/(AC_ir/DC_ir)
// with the empirical line SpO2 = 110 - 25*R, clamped to [0, 100]. Heart rate
// is the strongest bin of a Hamming-windowed FFT of the DC-free infrared
// channel inside the 0.5-3 Hz band.
//
// Every call is independent. A batch that fails the signal-quality gate is
// not an error: its [Result] has SpO2 0, BPM 0 and Valid false, with only
// the channel statistics filled in. Callers must read it as "no reading"
// rather than as 0 % saturation.
package vitals
