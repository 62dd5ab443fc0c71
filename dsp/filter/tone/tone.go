package tone

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/filter/biquad"
	"github.com/cwbudde/algo-ugen/dsp/filter/design/pass"
)

// DefaultHalfPowerHz is the half-power point used when none is configured.
const DefaultHalfPowerHz = 1000.0

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	halfPowerHz   float64
	mode          pass.OnePoleMode
	skipInit      bool
	initialOutput float64
}

func defaultConfig() config {
	return config{
		halfPowerHz: DefaultHalfPowerHz,
		mode:        pass.OnePoleExponential,
	}
}

// WithHalfPowerHz sets the initial half-power frequency. Must be finite and > 0.
func WithHalfPowerHz(hz float64) Option {
	return func(cfg *config) error {
		if err := validateHalfPower(hz); err != nil {
			return err
		}

		cfg.halfPowerHz = hz

		return nil
	}
}

// WithCoefficientMode selects how the half-power frequency maps to the pole.
func WithCoefficientMode(mode pass.OnePoleMode) Option {
	return func(cfg *config) error {
		if !mode.Valid() {
			return fmt.Errorf("tone: invalid coefficient mode %d: %w", mode, core.ErrInvalidParameter)
		}

		cfg.mode = mode

		return nil
	}
}

// WithSkipInit keeps the previous output across [Filter.Reinit], like the
// iskip flag of the Csound opcode.
func WithSkipInit(skip bool) Option {
	return func(cfg *config) error {
		cfg.skipInit = skip
		return nil
	}
}

// WithInitialOutput sets the value y[-1] that [Filter.Reset] restores.
func WithInitialOutput(y float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(y) {
			return fmt.Errorf("tone: initial output must be finite: %g: %w", y, core.ErrInvalidParameter)
		}

		cfg.initialOutput = y

		return nil
	}
}

// State is the filter's delay-line memory.
type State struct {
	PrevOutput float64
}

// Filter is a one-pole low-pass processor.
type Filter struct {
	sampleRate float64
	mode       pass.OnePoleMode

	halfPowerHz float64
	effectiveHz float64
	a           float64

	skipInit      bool
	initialOutput float64

	state State
}

// New constructs a one-pole low-pass filter at the given sample rate.
func New(sampleRate float64, opts ...Option) (*Filter, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, fmt.Errorf("tone: sample rate must be > 0 and finite: %g: %w", sampleRate, core.ErrInvalidParameter)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	f := &Filter{
		sampleRate:    sampleRate,
		mode:          cfg.mode,
		skipInit:      cfg.skipInit,
		initialOutput: cfg.initialOutput,
		state:         State{PrevOutput: cfg.initialOutput},
	}

	if err := f.rebuild(cfg.halfPowerHz); err != nil {
		return nil, err
	}

	return f, nil
}

// SampleRate returns the sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Mode returns the coefficient derivation.
func (f *Filter) Mode() pass.OnePoleMode { return f.mode }

// HalfPowerHz returns the most recently set half-power frequency.
func (f *Filter) HalfPowerHz() float64 { return f.halfPowerHz }

// EffectiveHalfPowerHz returns the half-power frequency after the Nyquist clamp.
func (f *Filter) EffectiveHalfPowerHz() float64 { return f.effectiveHz }

// Coefficient returns the feedback coefficient a.
func (f *Filter) Coefficient() float64 { return f.a }

// Coefficients returns the current transfer function as a first-order section.
func (f *Filter) Coefficients() biquad.Coefficients {
	return pass.OnePoleCoefficients(f.a)
}

// SetHalfPowerHz updates the half-power frequency. The pole is recomputed
// only when hz differs from the current value. On error the filter keeps
// its previous frequency and coefficient.
func (f *Filter) SetHalfPowerHz(hz float64) error {
	if hz == f.halfPowerHz {
		return nil
	}

	return f.rebuild(hz)
}

// Process filters one sample with the given half-power frequency.
func (f *Filter) Process(x, halfPowerHz float64) (float64, error) {
	if err := f.SetHalfPowerHz(halfPowerHz); err != nil {
		return 0, err
	}

	return f.ProcessSample(x), nil
}

// ProcessSample filters one sample with the current half-power frequency.
func (f *Filter) ProcessSample(x float64) float64 {
	y := (1-f.a)*x + f.a*f.state.PrevOutput
	f.state.PrevOutput = core.FlushDenormals(y)

	return y
}

// ProcessBlock filters buf in place, holding halfPowerHz for the whole block.
func (f *Filter) ProcessBlock(buf []float64, halfPowerHz float64) error {
	if err := f.SetHalfPowerHz(halfPowerHz); err != nil {
		return err
	}

	f.ProcessInPlace(buf)

	return nil
}

// ProcessInPlace filters a mono buffer in place.
func (f *Filter) ProcessInPlace(buf []float64) {
	b, a := 1-f.a, f.a
	y := f.state.PrevOutput

	for i, x := range buf {
		y = b*x + a*y
		buf[i] = y
		y = core.FlushDenormals(y)
	}

	f.state.PrevOutput = y
}

// ProcessTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessTo(dst, src []float64) {
	n := len(src)
	if n == 0 {
		return
	}

	_ = dst[n-1]
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset restores the previous output to its initial value.
func (f *Filter) Reset() {
	f.state = State{PrevOutput: f.initialOutput}
}

// Reinit resets the filter unless it was built with [WithSkipInit].
func (f *Filter) Reinit() {
	if !f.skipInit {
		f.Reset()
	}
}

// State returns a copy of the current delay-line state.
func (f *Filter) State() State {
	return f.state
}

// SetState restores an externally saved state.
func (f *Filter) SetState(state State) error {
	if !core.IsFinite(state.PrevOutput) {
		return fmt.Errorf("tone: state contains NaN or Inf: %w", core.ErrInvalidParameter)
	}

	f.state = state

	return nil
}

func (f *Filter) rebuild(hz float64) error {
	if err := validateHalfPower(hz); err != nil {
		return err
	}

	a, err := pass.OnePoleLP(hz, f.sampleRate, f.mode)
	if err != nil {
		return fmt.Errorf("tone: %w", err)
	}

	f.halfPowerHz = hz
	f.effectiveHz = core.ClampFrequency(hz, f.sampleRate)
	f.a = a

	return nil
}

func validateHalfPower(hz float64) error {
	if !core.IsFinite(hz) || hz <= 0 {
		return fmt.Errorf("tone: half-power frequency must be > 0 and finite: %g: %w", hz, core.ErrInvalidParameter)
	}

	return nil
}
