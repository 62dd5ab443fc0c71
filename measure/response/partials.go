package response

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/table"
)

// Partials returns the signed sine strengths of the first count harmonics
// of tbl. One table period is transformed, so bin k holds harmonic k
// exactly and no window is needed. Harmonics at or above half the period
// alias and cannot be recovered.
func Partials(tbl *table.WaveTable, count int) ([]float64, error) {
	if tbl == nil {
		return nil, fmt.Errorf("response: table must not be nil: %w", core.ErrInvalidParameter)
	}

	n := tbl.Period()
	if count < 1 || count >= n/2 {
		return nil, fmt.Errorf("response: partial count %d outside [1, %d]: %w", count, n/2-1, core.ErrInvalidParameter)
	}

	spectrum, err := forward(tbl.Values()[:n], n)
	if err != nil {
		return nil, err
	}

	// s*sin(k*theta) transforms to -j*s*n/2 in bin k.
	out := make([]float64, count)
	scale := -2 / float64(n)
	for k := range out {
		out[k] = scale * imag(spectrum[k+1])
	}
	return out, nil
}
