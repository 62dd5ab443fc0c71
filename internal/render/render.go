// Package render runs the oscillator and filter chain offline and writes
// the result as a WAV file.
package render

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/filter/butterworth"
	"github.com/cwbudde/algo-ugen/dsp/filter/tone"
	"github.com/cwbudde/algo-ugen/dsp/signal"
	"github.com/cwbudde/algo-ugen/dsp/table"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithParameterLog writes the swept control values to w every
// Config.LogInterval seconds of rendered audio.
func WithParameterLog(w io.Writer) Option {
	return func(r *Renderer) {
		r.log = w
	}
}

// Renderer owns one instance of every processor in the chain.
type Renderer struct {
	cfg Config
	log io.Writer

	osc       *signal.TableOscillator
	lowPass   *tone.Filter
	highPass  *butterworth.HighPass
	halfPower *signal.Line
	cutoff    *signal.Line

	out []float64
}

// New validates cfg and builds the chain.
func New(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tbl, err := table.BuildSine(cfg.TableSize, cfg.Partials)
	if err != nil {
		return nil, fmt.Errorf("render: wavetable: %w", err)
	}

	popts := cfg.processorOptions()
	sr := float64(cfg.SampleRate)

	r := &Renderer{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	if r.osc, err = signal.NewTableOscillator(tbl, cfg.ToneHz, cfg.Amplitude, cfg.Interpolation, popts...); err != nil {
		return nil, fmt.Errorf("render: oscillator: %w", err)
	}
	if r.halfPower, err = signal.NewLine(cfg.HalfPower.From, cfg.HalfPower.To, cfg.DurationSec, popts...); err != nil {
		return nil, fmt.Errorf("render: half-power sweep: %w", err)
	}
	if r.cutoff, err = signal.NewLine(cfg.Cutoff.From, cfg.Cutoff.To, cfg.DurationSec, popts...); err != nil {
		return nil, fmt.Errorf("render: cutoff sweep: %w", err)
	}
	if r.lowPass, err = tone.New(sr,
		tone.WithHalfPowerHz(cfg.HalfPower.From),
		tone.WithCoefficientMode(cfg.HalfPowerMode)); err != nil {
		return nil, fmt.Errorf("render: low-pass: %w", err)
	}
	if r.highPass, err = butterworth.New(sr, butterworth.WithCutoffHz(cfg.Cutoff.From)); err != nil {
		return nil, fmt.Errorf("render: high-pass: %w", err)
	}

	return r, nil
}

// Config returns the render configuration.
func (r *Renderer) Config() Config { return r.cfg }

// Render produces Config.Frames samples. Control values change once per
// block. Each call restarts the chain from its initial state.
//
// The returned slice is owned by the Renderer and is overwritten by the
// next call.
func (r *Renderer) Render() ([]float64, error) {
	r.reset()

	frames := r.cfg.Frames()
	r.out = core.EnsureLen(r.out, frames)
	out := r.out

	logEvery := 0
	if r.log != nil && r.cfg.LogInterval > 0 {
		logEvery = max(1, int(r.cfg.LogInterval*float64(r.cfg.SampleRate)+0.5))
	}
	nextLog := 0

	bs := r.cfg.BlockSize
	for off := 0; off < frames; off += bs {
		block := out[off:min(off+bs, frames)]

		hpHz := r.cutoff.Next()
		lpHz := r.halfPower.Next()

		r.osc.Generate(block)
		if err := r.lowPass.ProcessBlock(block, lpHz); err != nil {
			return nil, fmt.Errorf("render: frame %d: %w", off, err)
		}
		if err := r.highPass.ProcessBlock(block, hpHz); err != nil {
			return nil, fmt.Errorf("render: frame %d: %w", off, err)
		}

		if logEvery > 0 && off >= nextLog {
			if err := r.logParameters(lpHz, hpHz); err != nil {
				return nil, err
			}
			for nextLog <= off {
				nextLog += logEvery
			}
		}
	}

	return out, nil
}

// WriteWAV renders and encodes the result to w.
func (r *Renderer) WriteWAV(w io.WriteSeeker) (int, error) {
	samples, err := r.Render()
	if err != nil {
		return 0, err
	}
	if err := Encode(w, samples, r.cfg.SampleRate, r.cfg.BitDepth); err != nil {
		return 0, err
	}
	return len(samples), nil
}

func (r *Renderer) logParameters(lpHz, hpHz float64) error {
	if _, err := fmt.Fprintf(r.log, "Half-Power Point = %.3f\nCutoff Frequency = %.3f\n", lpHz, hpHz); err != nil {
		return fmt.Errorf("render: parameter log: %w", err)
	}
	return nil
}

func (r *Renderer) reset() {
	r.osc.Reset()
	r.halfPower.Reset()
	r.cutoff.Reset()
	r.lowPass.Reset()
	r.highPass.Reset()
}
