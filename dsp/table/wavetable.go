package table

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/interp"
)

// WaveTable is one precomputed waveform cycle, optionally followed by a
// guard point equal to index 0.
type WaveTable struct {
	data      []float64
	period    int
	strengths []float64
}

// Len returns the number of stored points, including the guard point.
func (t *WaveTable) Len() int { return len(t.data) }

// Period returns the number of distinct points in one cycle.
func (t *WaveTable) Period() int { return t.period }

// HasGuardPoint reports whether the table stores a trailing copy of index 0.
func (t *WaveTable) HasGuardPoint() bool { return len(t.data) > t.period }

// At returns the stored point i. It panics if i is out of range.
func (t *WaveTable) At(i int) float64 { return t.data[i] }

// Values returns a copy of the stored points.
func (t *WaveTable) Values() []float64 {
	return append([]float64(nil), t.data...)
}

// PartialStrengths returns a copy of the strengths the table was built from.
func (t *WaveTable) PartialStrengths() []float64 {
	return append([]float64(nil), t.strengths...)
}

// Peak returns the largest absolute value in the table.
func (t *WaveTable) Peak() float64 {
	return vecmath.MaxAbs(t.data)
}

// Normalized returns a copy of t rescaled so that Peak equals peak.
// A silent table cannot be rescaled.
func (t *WaveTable) Normalized(peak float64) (*WaveTable, error) {
	if !core.IsFinite(peak) || peak <= 0 {
		return nil, fmt.Errorf("table: normalization peak must be > 0 and finite: %g: %w", peak, core.ErrInvalidParameter)
	}

	current := t.Peak()
	if current == 0 {
		return nil, fmt.Errorf("table: cannot normalize a silent table: %w", core.ErrInvalidParameter)
	}

	data := make([]float64, len(t.data))
	vecmath.ScaleBlock(data, t.data, peak/current)

	return &WaveTable{
		data:      data,
		period:    t.period,
		strengths: t.PartialStrengths(),
	}, nil
}

// Lookup returns the point at the integer part of phase*Period.
// Phase is in cycles and wraps to [0, 1). All lookups return 0 for a NaN
// or infinite phase.
func (t *WaveTable) Lookup(phase float64) float64 {
	i, _, ok := t.index(phase)
	if !ok {
		return 0
	}
	return t.data[i]
}

// LookupLinear interpolates linearly between the two neighbouring points.
func (t *WaveTable) LookupLinear(phase float64) float64 {
	i, frac, ok := t.index(phase)
	if !ok {
		return 0
	}
	return interp.Linear2(frac, t.data[i], t.wrapped(i+1))
}

// LookupCubic interpolates with 4-point Hermite interpolation.
func (t *WaveTable) LookupCubic(phase float64) float64 {
	i, frac, ok := t.index(phase)
	if !ok {
		return 0
	}
	return interp.Hermite4(frac, t.wrapped(i-1), t.data[i], t.wrapped(i+1), t.wrapped(i+2))
}

// LookupMode dispatches to the lookup selected by mode. Unknown modes
// truncate.
func (t *WaveTable) LookupMode(phase float64, mode interp.Mode) float64 {
	switch mode {
	case interp.ModeLinear:
		return t.LookupLinear(phase)
	case interp.ModeHermite:
		return t.LookupCubic(phase)
	default:
		return t.Lookup(phase)
	}
}

func (t *WaveTable) index(phase float64) (int, float64, bool) {
	if !core.IsFinite(phase) {
		return 0, 0, false
	}
	phase -= math.Floor(phase)

	pos := phase * float64(t.period)
	i := int(pos)
	if i >= t.period {
		// phase just below 1 can round up to a full period
		i = t.period - 1
	}

	return i, pos - float64(i), true
}

// wrapped reads index i modulo the period. The guard point satisfies the
// i == period case directly.
func (t *WaveTable) wrapped(i int) float64 {
	if i >= 0 && i < len(t.data) {
		return t.data[i]
	}

	i %= t.period
	if i < 0 {
		i += t.period
	}

	return t.data[i]
}
