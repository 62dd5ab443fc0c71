package pass

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-ugen/dsp/filter/biquad"
)

const tol = 1e-9

// halfPowerDB is 10*log10(1/2).
var halfPowerDB = -10 * math.Log10(2)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func mag(c biquad.Coefficients, freq, sr float64) float64 {
	h := c.Response(freq, sr)
	return cmplx.Abs(h)
}

func assertFiniteCoefficients(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	v := []float64{c.B0, c.B1, c.B2, c.A1, c.A2}
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			t.Fatalf("invalid coefficient[%d]=%v", i, v[i])
		}
	}
}

func assertStableSection(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	if !c.IsStable() {
		p := c.Poles()
		t.Fatalf("unstable poles: |p1|=%v |p2|=%v coeff=%#v", cmplx.Abs(p[0]), cmplx.Abs(p[1]), c)
	}
}
