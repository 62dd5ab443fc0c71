package biquad

import "math"

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func passthrough() Coefficients {
	return Coefficients{B0: 1}
}
