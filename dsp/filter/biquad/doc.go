// Package biquad provides second-order IIR filter primitives.
//
// [Coefficients] describes one first- or second-order section with a0
// normalized to 1. It carries the analysis helpers (complex response,
// magnitude, phase, poles and zeros) that tests and measurement code use to
// check a design against its closed-form expectation.
//
// [DF1] is the Direct Form I runtime: it keeps the two previous inputs and
// the two previous outputs, so coefficients can be swapped between samples
// without transforming the delay line.
//
// Coefficient design lives in dsp/filter/design/pass.
package biquad
