package signal

import (
	"fmt"
	"math"
	"math/rand"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// Generator creates deterministic test and source signals from a shared
// configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0: %d: %w", samples, core.ErrInvalidParameter)
	}
	if !core.IsFinite(freqHz) || !core.IsFinite(amplitude) {
		return nil, fmt.Errorf("signal: sine frequency and amplitude must be finite: %w", core.ErrInvalidParameter)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d: %w", samples, core.ErrInvalidParameter)
	}
	if amplitude < 0 || !core.IsFinite(amplitude) {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f: %w", amplitude, core.ErrInvalidParameter)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Impulse generates a unit impulse at pos.
func (g *Generator) Impulse(samples, pos int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: impulse samples must be > 0: %d: %w", samples, core.ErrInvalidParameter)
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("signal: impulse position %d outside [0, %d): %w", pos, samples, core.ErrInvalidParameter)
	}
	out := make([]float64, samples)
	out[pos] = 1
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
// Silent input stays silent.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 || !core.IsFinite(targetPeak) {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f: %w", targetPeak, core.ErrInvalidParameter)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty: %w", core.ErrInvalidParameter)
	}

	out := make([]float64, len(data))
	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
