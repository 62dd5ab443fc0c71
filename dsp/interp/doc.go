// Package interp provides the fractional-index interpolation primitives used
// by table lookup.
//
// Available methods, from cheapest to highest quality:
//
//   - [ModeTruncate]: nearest lower sample
//   - [Linear2]:      2-point linear interpolation
//   - [Hermite4]:     4-point cubic Hermite
//
// The [Mode] enum selects the algorithm at construction time.
package interp
