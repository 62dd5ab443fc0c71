package render

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/filter/design/pass"
	"github.com/cwbudde/algo-ugen/dsp/interp"
	"github.com/cwbudde/algo-ugen/dsp/table"
)

// Render defaults. The duration and log interval follow the filter test
// drivers: ten seconds, logging every 100 ms.
const (
	DefaultDurationSec = 10.0
	DefaultBitDepth    = 16
	DefaultToneHz      = 220.0
	DefaultAmplitude   = 0.25
	DefaultLogInterval = 0.1
)

// Sweep is a linear control segment over the whole render.
type Sweep struct {
	From, To float64
}

// Config describes an offline render: a wavetable oscillator feeding a
// one-pole low-pass and then a Butterworth high-pass, both swept over the
// render duration.
type Config struct {
	SampleRate  int
	BlockSize   int
	DurationSec float64
	BitDepth    int

	ToneHz        float64
	Amplitude     float64
	TableSize     int
	Partials      []float64
	Interpolation interp.Mode

	HalfPower     Sweep
	HalfPowerMode pass.OnePoleMode
	Cutoff        Sweep

	// LogInterval is the parameter log period in seconds; 0 disables it.
	LogInterval float64
}

// DefaultConfig returns a ten second, 16-bit render of a band-limited
// sawtooth whose low-pass sweeps from 300 Hz to 3 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate:    int(core.DefaultSampleRate),
		BlockSize:     core.DefaultBlockSize,
		DurationSec:   DefaultDurationSec,
		BitDepth:      DefaultBitDepth,
		ToneHz:        DefaultToneHz,
		Amplitude:     DefaultAmplitude,
		TableSize:     table.DefaultSize,
		Partials:      []float64{1, 1.0 / 2, 1.0 / 3, 1.0 / 4, 1.0 / 5, 1.0 / 6, 1.0 / 7, 1.0 / 8},
		Interpolation: interp.ModeLinear,
		HalfPower:     Sweep{From: 300, To: 3000},
		HalfPowerMode: pass.OnePoleExponential,
		Cutoff:        Sweep{From: 20, To: 500},
		LogInterval:   DefaultLogInterval,
	}
}

// Validate checks ranges that the processors do not check themselves.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("render: sample rate must be > 0: %d: %w", c.SampleRate, core.ErrInvalidParameter)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("render: block size must be > 0: %d: %w", c.BlockSize, core.ErrInvalidParameter)
	}
	if c.DurationSec <= 0 || !core.IsFinite(c.DurationSec) {
		return fmt.Errorf("render: duration must be > 0: %f: %w", c.DurationSec, core.ErrInvalidParameter)
	}
	switch c.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("render: bit depth must be 16, 24 or 32: %d: %w", c.BitDepth, core.ErrInvalidParameter)
	}
	if c.LogInterval < 0 || !core.IsFinite(c.LogInterval) {
		return fmt.Errorf("render: log interval must be >= 0: %f: %w", c.LogInterval, core.ErrInvalidParameter)
	}
	for _, s := range []Sweep{c.HalfPower, c.Cutoff} {
		if s.From <= 0 || s.To <= 0 {
			return fmt.Errorf("render: sweep endpoints must be > 0: %v: %w", s, core.ErrInvalidParameter)
		}
	}
	return nil
}

// Frames returns the number of sample frames the render produces.
func (c Config) Frames() int {
	return int(c.DurationSec*float64(c.SampleRate) + 0.5)
}

func (c Config) processorOptions() []core.ProcessorOption {
	return []core.ProcessorOption{
		core.WithSampleRate(float64(c.SampleRate)),
		core.WithBlockSize(c.BlockSize),
	}
}
