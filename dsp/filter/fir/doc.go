// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line. It is suitable for short filters
// (order < ~256). For long FIR filters, consider using FFT-based partitioned
// convolution (dsp/conv, Phase 7).
//
// [Design] builds windowed-sinc, linear-phase coefficients for lowpass,
// highpass, bandpass and bandstop filters. Other design methods
// (Parks-McClellan, etc.) are not provided.
package fir
