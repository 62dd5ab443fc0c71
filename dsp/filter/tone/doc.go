// Package tone provides a first-order recursive low-pass filter with a
// variable half-power point, the unit generator Csound calls "tone".
//
// The filter computes
//
//	y[n] = (1-a)*x[n] + a*y[n-1]
//
// where the pole a is derived from the half-power frequency. By default
// a = exp(-2*pi*f/fs); [WithCoefficientMode] selects the exact half-power
// derivation instead.
//
// The half-power frequency is a control-rate parameter. [Filter.Process]
// takes it on every call and recomputes a only when the value changes, so
// the sample passed to the call that changes it already uses the new pole.
// Frequencies at or above Nyquist are clamped just below it.
//
// A Filter is not safe for concurrent use.
package tone
