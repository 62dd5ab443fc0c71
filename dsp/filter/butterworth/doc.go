// Package butterworth provides a second-order Butterworth high-pass filter
// with a control-rate cutoff, the unit generator Csound calls "buthp".
//
// Coefficients come from [pass.ButterworthHP2] and are recomputed only when
// the cutoff changes. Processing uses Direct Form I, keeping two previous
// inputs and two previous outputs, so a cutoff change takes effect on the
// very next sample without transforming the delay line. No smoothing is
// applied across control changes.
//
// A HighPass is not safe for concurrent use.
package butterworth
