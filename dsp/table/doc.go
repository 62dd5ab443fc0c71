// Package table builds and reads precomputed single-cycle wavetables.
//
// [BuildSine] sums weighted harmonic sine partials, the function table
// Csound calls GEN10:
//
//	table[i] = sum_k strengths[k-1] * sin(k * 2*pi*i/period)
//
// A table size is a power of two, or a power of two plus one. In the second
// form the last point is a guard point that repeats index 0, so interpolating
// readers never need to wrap.
//
// A built [WaveTable] is immutable and safe for concurrent reads.
package table
