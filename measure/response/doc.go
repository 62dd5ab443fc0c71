// Package response measures processors and wavetables in the frequency
// domain.
//
// [Measure] feeds a unit impulse through a [core.SampleProcessor] and
// transforms the captured impulse response into a one-sided magnitude
// [Spectrum]. [Partials] recovers the harmonic sine strengths a wavetable
// was built from by transforming exactly one table period.
//
// # Usage
//
//	hp, _ := butterworth.New(48000, butterworth.WithCutoffHz(1000))
//	spec, _ := response.Measure(hp, 48000, 8192)
//	fmt.Printf("%.2f dB\n", spec.AtHzDB(1000)) // about -3.01 dB
package response
