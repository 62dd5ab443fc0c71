package signal

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// Line is a linear control segment from a start to an end value over a
// duration, evaluated once per control period. After the duration the
// value holds at the end.
//
// A Line drives time-varying filter parameters, for example a cutoff
// sweeping from 300 Hz to 3 kHz over a render.
type Line struct {
	cfg         core.ProcessorConfig
	start, end  float64
	durationSec float64
	periods     float64
	pos         int
}

// NewLine creates a segment sampled at the control rate of opts.
func NewLine(start, end, durationSec float64, opts ...core.ProcessorOption) (*Line, error) {
	if !core.IsFinite(start) || !core.IsFinite(end) {
		return nil, fmt.Errorf("signal: line endpoints must be finite: %w", core.ErrInvalidParameter)
	}
	if durationSec < 0 || !core.IsFinite(durationSec) {
		return nil, fmt.Errorf("signal: line duration must be >= 0: %f: %w", durationSec, core.ErrInvalidParameter)
	}

	cfg := core.ApplyProcessorOptions(opts...)
	return &Line{
		cfg:         cfg,
		start:       start,
		end:         end,
		durationSec: durationSec,
		periods:     durationSec * cfg.ControlRate(),
	}, nil
}

// Start returns the initial value.
func (l *Line) Start() float64 { return l.start }

// End returns the final value.
func (l *Line) End() float64 { return l.end }

// Duration returns the segment length in seconds.
func (l *Line) Duration() float64 { return l.durationSec }

// Config returns the processor configuration the line is sampled with.
func (l *Line) Config() core.ProcessorConfig { return l.cfg }

// Value returns the value of the current control period.
func (l *Line) Value() float64 {
	return l.at(l.pos)
}

// Next returns the value of the current control period and advances to the
// next one.
func (l *Line) Next() float64 {
	v := l.at(l.pos)
	l.pos++
	return v
}

// Done reports whether the line has reached its end value.
func (l *Line) Done() bool {
	return float64(l.pos) >= l.periods
}

// Reset rewinds the line to its start.
func (l *Line) Reset() {
	l.pos = 0
}

// Render fills dst with the line at audio rate: each control value is held
// for one block. The line advances by the number of blocks covered.
func (l *Line) Render(dst []float64) {
	bs := l.cfg.BlockSize
	for off := 0; off < len(dst); off += bs {
		n := min(bs, len(dst)-off)
		core.Fill(dst[off:off+n], l.Next())
	}
}

// Computed from the period index so long lines do not accumulate drift.
func (l *Line) at(pos int) float64 {
	if float64(pos) >= l.periods {
		return l.end
	}
	return l.start + (l.end-l.start)*float64(pos)/l.periods
}
