// Package spectrum provides FFT-adjacent helpers for locating a dominant
// frequency inside a physiological band.
//
// The package does not run a transform itself. It operates on complex bins
// produced by [github.com/cwbudde/algo-ppg/dsp/fft] and maps between bin
// indices, Hz and beats per minute.
package spectrum
