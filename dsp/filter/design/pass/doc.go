// Package pass designs low-order pass-band filter coefficients.
//
// Designers take a control frequency and a sample rate and return
// [biquad.Coefficients] (or a bare pole for one-pole filters). Frequencies at
// or above Nyquist are clamped just below it; non-positive or non-finite
// inputs fail with [core.ErrInvalidParameter].
//
// Second-order Butterworth sections use the bilinear transform with
// prewarping, c = tan(pi*f/fs), so the -3 dB point lands exactly on the
// requested frequency.
package pass
