package butterworth

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/filter/biquad"
	"github.com/cwbudde/algo-ugen/dsp/filter/design/pass"
)

// DefaultCutoffHz is the cutoff used when none is configured.
const DefaultCutoffHz = 500.0

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	cutoffHz float64
	skipInit bool
}

func defaultConfig() config {
	return config{cutoffHz: DefaultCutoffHz}
}

// WithCutoffHz sets the initial cutoff. Must be finite and > 0.
func WithCutoffHz(hz float64) Option {
	return func(cfg *config) error {
		if err := validateCutoff(hz); err != nil {
			return err
		}

		cfg.cutoffHz = hz

		return nil
	}
}

// WithSkipInit keeps the delay line across [HighPass.Reinit].
func WithSkipInit(skip bool) Option {
	return func(cfg *config) error {
		cfg.skipInit = skip
		return nil
	}
}

// State holds x[n-1], x[n-2], y[n-1] and y[n-2].
type State = biquad.DF1

// HighPass is a second-order Butterworth high-pass processor.
type HighPass struct {
	sampleRate float64

	cutoffHz    float64
	effectiveHz float64
	coeffs      biquad.Coefficients

	skipInit bool

	state biquad.DF1
}

// New constructs a Butterworth high-pass filter at the given sample rate.
func New(sampleRate float64, opts ...Option) (*HighPass, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, fmt.Errorf("butterworth: sample rate must be > 0 and finite: %g: %w", sampleRate, core.ErrInvalidParameter)
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

	h := &HighPass{
		sampleRate: sampleRate,
		skipInit:   cfg.skipInit,
	}

	if err := h.rebuild(cfg.cutoffHz); err != nil {
		return nil, err
	}

	return h, nil
}

// SampleRate returns the sample rate in Hz.
func (h *HighPass) SampleRate() float64 { return h.sampleRate }

// CutoffHz returns the most recently set cutoff.
func (h *HighPass) CutoffHz() float64 { return h.cutoffHz }

// EffectiveCutoffHz returns the cutoff after the Nyquist clamp.
func (h *HighPass) EffectiveCutoffHz() float64 { return h.effectiveHz }

// Coefficients returns the current section coefficients.
func (h *HighPass) Coefficients() biquad.Coefficients { return h.coeffs }

// SetCutoffHz updates the cutoff. Coefficients are recomputed only when hz
// differs from the current value. On error the filter is left unchanged.
func (h *HighPass) SetCutoffHz(hz float64) error {
	if hz == h.cutoffHz {
		return nil
	}

	return h.rebuild(hz)
}

// Process filters one sample with the given cutoff.
func (h *HighPass) Process(x, cutoffHz float64) (float64, error) {
	if err := h.SetCutoffHz(cutoffHz); err != nil {
		return 0, err
	}

	return h.state.Process(&h.coeffs, x), nil
}

// ProcessSample filters one sample with the current cutoff.
func (h *HighPass) ProcessSample(x float64) float64 {
	return h.state.Process(&h.coeffs, x)
}

// ProcessBlock filters buf in place, holding cutoffHz for the whole block.
func (h *HighPass) ProcessBlock(buf []float64, cutoffHz float64) error {
	if err := h.SetCutoffHz(cutoffHz); err != nil {
		return err
	}

	h.state.ProcessBlock(&h.coeffs, buf)

	return nil
}

// ProcessInPlace filters a mono buffer in place.
func (h *HighPass) ProcessInPlace(buf []float64) {
	h.state.ProcessBlock(&h.coeffs, buf)
}

// ProcessTo filters src into dst. Both slices must have the same length.
func (h *HighPass) ProcessTo(dst, src []float64) {
	n := len(src)
	if n == 0 {
		return
	}

	_ = dst[n-1]
	for i, x := range src {
		dst[i] = h.state.Process(&h.coeffs, x)
	}
}

// Reset clears the delay line.
func (h *HighPass) Reset() {
	h.state.Reset()
}

// Reinit clears the delay line unless the filter was built with [WithSkipInit].
func (h *HighPass) Reinit() {
	if !h.skipInit {
		h.Reset()
	}
}

// State returns a copy of the current delay line.
func (h *HighPass) State() State {
	return h.state
}

// SetState restores an externally saved delay line.
func (h *HighPass) SetState(state State) error {
	if !state.IsFinite() {
		return fmt.Errorf("butterworth: state contains NaN or Inf: %w", core.ErrInvalidParameter)
	}

	h.state = state

	return nil
}

func (h *HighPass) rebuild(hz float64) error {
	if err := validateCutoff(hz); err != nil {
		return err
	}

	c, err := pass.ButterworthHP2(hz, h.sampleRate)
	if err != nil {
		return fmt.Errorf("butterworth: %w", err)
	}

	h.cutoffHz = hz
	h.effectiveHz = core.ClampFrequency(hz, h.sampleRate)
	h.coeffs = c

	return nil
}

func validateCutoff(hz float64) error {
	if !core.IsFinite(hz) || hz <= 0 {
		return fmt.Errorf("butterworth: cutoff must be > 0 and finite: %g: %w", hz, core.ErrInvalidParameter)
	}

	return nil
}
