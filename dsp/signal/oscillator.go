package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/interp"
	"github.com/cwbudde/algo-ugen/dsp/table"
)

// TableOscillator reads a wavetable cyclically with a phase accumulator.
type TableOscillator struct {
	tbl        *table.WaveTable
	sampleRate float64
	mode       interp.Mode

	freqHz    float64
	amplitude float64
	phase     float64
	inc       float64
}

// NewTableOscillator creates an oscillator playing tbl at freqHz.
// Frequencies may be negative to read the table backwards.
func NewTableOscillator(tbl *table.WaveTable, freqHz, amplitude float64, mode interp.Mode, opts ...core.ProcessorOption) (*TableOscillator, error) {
	if tbl == nil {
		return nil, fmt.Errorf("signal: oscillator table must not be nil: %w", core.ErrInvalidParameter)
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("signal: oscillator interpolation mode %d: %w", int(mode), core.ErrInvalidParameter)
	}

	o := &TableOscillator{
		tbl:        tbl,
		sampleRate: core.ApplyProcessorOptions(opts...).SampleRate,
		mode:       mode,
	}
	if err := o.SetFrequency(freqHz); err != nil {
		return nil, err
	}
	if err := o.SetAmplitude(amplitude); err != nil {
		return nil, err
	}
	return o, nil
}

// Table returns the table being read.
func (o *TableOscillator) Table() *table.WaveTable { return o.tbl }

// SampleRate returns the oscillator sample rate in Hz.
func (o *TableOscillator) SampleRate() float64 { return o.sampleRate }

// Mode returns the interpolation mode.
func (o *TableOscillator) Mode() interp.Mode { return o.mode }

// Frequency returns the oscillator frequency in Hz.
func (o *TableOscillator) Frequency() float64 { return o.freqHz }

// Amplitude returns the output gain.
func (o *TableOscillator) Amplitude() float64 { return o.amplitude }

// Phase returns the current phase in cycles, in [0, 1).
func (o *TableOscillator) Phase() float64 { return o.phase }

// SetFrequency changes the frequency from the next sample on.
func (o *TableOscillator) SetFrequency(freqHz float64) error {
	if !core.IsFinite(freqHz) {
		return fmt.Errorf("signal: oscillator frequency must be finite: %f: %w", freqHz, core.ErrInvalidParameter)
	}
	o.freqHz = freqHz
	o.inc = freqHz / o.sampleRate
	return nil
}

// SetAmplitude changes the output gain.
func (o *TableOscillator) SetAmplitude(amplitude float64) error {
	if !core.IsFinite(amplitude) {
		return fmt.Errorf("signal: oscillator amplitude must be finite: %f: %w", amplitude, core.ErrInvalidParameter)
	}
	o.amplitude = amplitude
	return nil
}

// SetPhase moves the read position. Phase is in cycles and wraps.
func (o *TableOscillator) SetPhase(phase float64) error {
	if !core.IsFinite(phase) {
		return fmt.Errorf("signal: oscillator phase must be finite: %f: %w", phase, core.ErrInvalidParameter)
	}
	o.phase = phase - math.Floor(phase)
	return nil
}

// Reset rewinds the phase to 0.
func (o *TableOscillator) Reset() {
	o.phase = 0
}

// Next returns one sample and advances the phase.
func (o *TableOscillator) Next() float64 {
	y := o.amplitude * o.tbl.LookupMode(o.phase, o.mode)

	o.phase += o.inc
	if o.phase >= 1 || o.phase < 0 {
		o.phase -= math.Floor(o.phase)
	}
	return y
}

// Generate fills dst with consecutive samples.
func (o *TableOscillator) Generate(dst []float64) {
	for i := range dst {
		dst[i] = o.Next()
	}
}
