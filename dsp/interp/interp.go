package interp

// Mode selects a table interpolation algorithm.
type Mode int

const (
	// ModeTruncate returns the sample at the integer part of the index.
	ModeTruncate Mode = iota
	// ModeLinear interpolates between the two neighbouring samples.
	ModeLinear
	// ModeHermite uses 4-point cubic Hermite interpolation.
	ModeHermite
)

func (m Mode) String() string {
	switch m {
	case ModeTruncate:
		return "truncate"
	case ModeLinear:
		return "linear"
	case ModeHermite:
		return "hermite"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m >= ModeTruncate && m <= ModeHermite
}

// Points returns the number of neighbouring samples the mode reads.
func (m Mode) Points() int {
	switch m {
	case ModeLinear:
		return 2
	case ModeHermite:
		return 4
	default:
		return 1
	}
}

// Linear2 interpolates from x0 (t = 0) to x1 (t = 1).
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}
