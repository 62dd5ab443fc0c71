package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/filter/butterworth"
	"github.com/cwbudde/algo-ugen/dsp/filter/design/pass"
	"github.com/cwbudde/algo-ugen/dsp/filter/tone"
	"github.com/cwbudde/algo-ugen/internal/testutil"
)

const halfPowerDB = -3.0103

func TestMeasureButterworthCutoff(t *testing.T) {
	for _, fc := range []float64{100, 500, 1000, 5000} {
		hp, err := butterworth.New(48000, butterworth.WithCutoffHz(fc))
		if err != nil {
			t.Fatalf("butterworth.New(%v) error = %v", fc, err)
		}

		spec, err := Measure(hp, 48000, 16384)
		if err != nil {
			t.Fatalf("Measure() error = %v", err)
		}

		testutil.RequireNearDB(t, "cutoff", spec.AtHzDB(fc), halfPowerDB, 0.02)
		testutil.RequireNearDB(t, "nyquist", spec.AtHzDB(24000), 0, 0.01)
		if db := spec.AtHzDB(fc / 50); db > -60 {
			t.Fatalf("fc=%v: gain two decades below = %.2f dB, want < -60", fc, db)
		}
	}
}

func TestMeasureToneHalfPowerMode(t *testing.T) {
	lp, err := tone.New(48000,
		tone.WithHalfPowerHz(2000),
		tone.WithCoefficientMode(pass.OnePoleHalfPower))
	if err != nil {
		t.Fatalf("tone.New() error = %v", err)
	}

	spec, err := Measure(lp, 48000, 0)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}

	testutil.RequireNearDB(t, "dc", spec.AtHzDB(0), 0, 1e-6)
	testutil.RequireNearDB(t, "half-power", spec.AtHzDB(2000), halfPowerDB, 0.02)
}

func TestMeasureLeavesProcessorReset(t *testing.T) {
	hp, err := butterworth.New(44100)
	if err != nil {
		t.Fatalf("butterworth.New() error = %v", err)
	}
	hp.ProcessSample(1)

	if _, err := Measure(hp, 44100, 1024); err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if hp.State() != (butterworth.State{}) {
		t.Fatalf("State() after Measure = %+v, want zero", hp.State())
	}
}

func TestImpulseResponseMatchesCoefficients(t *testing.T) {
	hp, err := butterworth.New(48000, butterworth.WithCutoffHz(1000))
	if err != nil {
		t.Fatalf("butterworth.New() error = %v", err)
	}

	ir, err := ImpulseResponse(hp, 3)
	if err != nil {
		t.Fatalf("ImpulseResponse() error = %v", err)
	}
	c := hp.Coefficients()
	// Direct Form I recursion for x = [1, 0, 0].
	y0 := c.B0
	y1 := c.B1 - c.A1*y0
	y2 := c.B2 - c.A1*y1 - c.A2*y0

	testutil.RequireSliceNearlyEqual(t, ir, []float64{y0, y1, y2}, 1e-12)
}

func TestImpulseResponseRejectsEmptyLength(t *testing.T) {
	hp, err := butterworth.New(48000)
	if err != nil {
		t.Fatalf("butterworth.New() error = %v", err)
	}

	for _, n := range []int{0, -4} {
		if _, err := ImpulseResponse(hp, n); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("ImpulseResponse(%d) error = %v, want ErrInvalidParameter", n, err)
		}
	}
}

func TestAnalyzeSine(t *testing.T) {
	const (
		sr = 8192.0
		n  = 8192
	)
	x := testutil.DeterministicSine(1024, sr, 0.5, n)

	spec, err := Analyze(x, sr, n)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(spec.Magnitude) != n/2+1 {
		t.Fatalf("bins = %d, want %d", len(spec.Magnitude), n/2+1)
	}
	if spec.BinHz() != 1 || spec.FrequencyAt(1024) != 1024 {
		t.Fatalf("BinHz()=%v FrequencyAt(1024)=%v", spec.BinHz(), spec.FrequencyAt(1024))
	}

	// A bin-centered sine of amplitude A peaks at A*N/2.
	if got, want := spec.AtHz(1024), 0.5*n/2; math.Abs(got-want) > 1e-6*want {
		t.Fatalf("AtHz(1024) = %v, want %v", got, want)
	}
	if spec.AtHz(1000) > 1e-6 {
		t.Fatalf("leakage at 1000 Hz = %v", spec.AtHz(1000))
	}
}

func TestAnalyzeRejects(t *testing.T) {
	tests := []struct {
		name    string
		x       []float64
		sr      float64
		fftSize int
	}{
		{"empty", nil, 48000, 0},
		{"zero sample rate", []float64{1}, 0, 0},
		{"not power of two", []float64{1, 2, 3}, 48000, 12},
		{"shorter than input", make([]float64, 9), 48000, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Analyze(tt.x, tt.sr, tt.fftSize); !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("Analyze() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestAnalyzeDefaultSize(t *testing.T) {
	spec, err := Analyze(make([]float64, 10000), 48000, 0)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if spec.FFTSize != 16384 {
		t.Fatalf("FFTSize = %d, want 16384", spec.FFTSize)
	}
}

func BenchmarkMeasure(b *testing.B) {
	hp, err := butterworth.New(48000)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for range b.N {
		if _, err := Measure(hp, 48000, 4096); err != nil {
			b.Fatal(err)
		}
	}
}
