package table

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

const (
	// DefaultSize is the table length used when none is configured.
	DefaultSize = 4096

	// minSize rejects size 1: a one-point cycle holds only DC even though
	// 1 is a power of two.
	minSize = 2
	maxSize = 1<<24 + 1
)

// Builder produces a wavetable from its configuration.
type Builder interface {
	Build() (*WaveTable, error)
}

// SineConfig describes a table of weighted harmonic partials.
//
// PartialStrengths[k] is the amplitude of harmonic k+1; unused harmonics
// take strength 0. No normalization is applied: keeping the summed
// amplitude in range is the caller's responsibility.
type SineConfig struct {
	Size             int
	PartialStrengths []float64
}

// DefaultSineConfig returns a pure sine of DefaultSize points.
func DefaultSineConfig() SineConfig {
	return SineConfig{
		Size:             DefaultSize,
		PartialStrengths: []float64{1},
	}
}

// Validate checks the size invariant and the partial strengths.
func (c SineConfig) Validate() error {
	if _, err := periodOf(c.Size); err != nil {
		return err
	}

	if len(c.PartialStrengths) == 0 {
		return fmt.Errorf("table: partial strengths must not be empty: %w", core.ErrInvalidParameter)
	}

	for k, s := range c.PartialStrengths {
		if !core.IsFinite(s) {
			return fmt.Errorf("table: partial %d strength must be finite: %g: %w", k+1, s, core.ErrInvalidParameter)
		}
	}

	return nil
}

// Build validates c and computes the table.
func (c SineConfig) Build() (*WaveTable, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	period, _ := periodOf(c.Size)
	data := make([]float64, c.Size)
	sumPartials(data[:period], c.PartialStrengths)

	if c.Size > period {
		data[period] = data[0]
	}

	return &WaveTable{
		data:      data,
		period:    period,
		strengths: append([]float64(nil), c.PartialStrengths...),
	}, nil
}

// BuildSine builds a table of size points from the given partial strengths.
func BuildSine(size int, partialStrengths []float64) (*WaveTable, error) {
	return SineConfig{Size: size, PartialStrengths: partialStrengths}.Build()
}

// NewSine returns the default pure sine table.
func NewSine() *WaveTable {
	t, err := DefaultSineConfig().Build()
	if err != nil {
		panic("table: default sine config rejected: " + err.Error())
	}
	return t
}

// periodOf returns the number of distinct points in one cycle for size.
func periodOf(size int) (int, error) {
	switch {
	case size < minSize || size > maxSize:
		return 0, fmt.Errorf("table: size %d outside [%d, %d]: %w", size, minSize, maxSize, core.ErrInvalidTableSize)
	case core.IsPowerOfTwo(size):
		return size, nil
	case core.IsPowerOfTwo(size - 1):
		return size - 1, nil
	default:
		return 0, fmt.Errorf("table: size %d is not a power of two or power of two plus one: %w", size, core.ErrInvalidTableSize)
	}
}

// sumPartials accumulates the weighted partials into acc, whose length is
// the period. Harmonic k at index i reads the fundamental at (k*i) mod
// period, so every partial is exact to the fundamental's precision.
func sumPartials(acc []float64, strengths []float64) {
	period := len(acc)

	base := make([]float64, period)
	step := 2 * math.Pi / float64(period)
	for i := range base {
		base[i] = math.Sin(step * float64(i))
	}

	scratch := make([]float64, period)
	for k, s := range strengths {
		if s == 0 {
			continue
		}

		h := k + 1
		for i := range scratch {
			scratch[i] = base[(h*i)%period]
		}

		vecmath.ScaleBlockInPlace(scratch, s)
		vecmath.AddBlockInPlace(acc, scratch)
	}
}
