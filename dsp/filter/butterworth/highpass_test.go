package butterworth

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/filter/design/pass"
	"github.com/cwbudde/algo-ugen/internal/testutil"
)

func TestNewDefaults(t *testing.T) {
	h, err := New(44100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if h.CutoffHz() != DefaultCutoffHz {
		t.Fatalf("CutoffHz() = %v, want %v", h.CutoffHz(), DefaultCutoffHz)
	}

	want, err := pass.ButterworthHP2(DefaultCutoffHz, 44100)
	if err != nil {
		t.Fatal(err)
	}
	if h.Coefficients() != want {
		t.Fatalf("Coefficients() = %#v, want %#v", h.Coefficients(), want)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("New(0) error = %v, want ErrInvalidParameter", err)
	}
	if _, err := New(math.Inf(1)); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("New(Inf) error = %v, want ErrInvalidParameter", err)
	}
	for _, hz := range []float64{0, -500, math.NaN()} {
		if _, err := New(48000, WithCutoffHz(hz)); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("WithCutoffHz(%v) error = %v, want ErrInvalidParameter", hz, err)
		}
	}
}

// Impulse response for fc = 1 kHz at 48 kHz from the closed-form recurrence.
func TestImpulseResponseGolden(t *testing.T) {
	h, err := New(48000, WithCutoffHz(1000))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := []float64{
		0.911586668012832,
		-0.168332607136200,
		-0.151528045572930,
		-0.135189748910976,
		-0.119494852344715,
		-0.104580477665672,
		-0.090548347358738,
		-0.077469173454593,
		-0.065386790454067,
		-0.054322010834621,
	}

	got := make([]float64, len(want))
	for i := range got {
		var x float64
		if i == 0 {
			x = 1
		}

		y, err := h.Process(x, 1000)
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		got[i] = y
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-14)
}

func TestMinus3dBAtCutoffMeasured(t *testing.T) {
	const sr = 48000.0

	for _, fc := range []float64{500, 1000, 3000} {
		h, err := New(sr, WithCutoffHz(fc))
		if err != nil {
			t.Fatal(err)
		}

		in := testutil.DeterministicSine(fc, sr, 1, int(sr))
		out := make([]float64, len(in))
		h.ProcessTo(out, in)

		// Skip the transient and measure over a whole number of periods.
		period := int(sr / fc)
		tail := len(in) - 100*period
		gain := testutil.RMS(out[tail:]) / testutil.RMS(in[tail:])

		if db := core.LinearToDB(gain); math.Abs(db+3.0103) > 0.01 {
			t.Fatalf("fc=%v: gain at cutoff = %.4f dB, want -3.01", fc, db)
		}
	}
}

func TestRejectsDC(t *testing.T) {
	h, err := New(44100, WithCutoffHz(200))
	if err != nil {
		t.Fatal(err)
	}

	var y float64
	for range 44100 {
		y = h.ProcessSample(1)
	}
	if math.Abs(y) > 1e-9 {
		t.Fatalf("steady-state output for DC input = %v, want 0", y)
	}
}

func TestControlChangeAppliesToNextSample(t *testing.T) {
	h, err := New(48000, WithCutoffHz(200))
	if err != nil {
		t.Fatal(err)
	}

	in := testutil.DeterministicNoise(11, 1, 5)
	for _, x := range in[:4] {
		if _, err := h.Process(x, 200); err != nil {
			t.Fatal(err)
		}
	}

	st := h.State()
	c, err := pass.ButterworthHP2(5000, 48000)
	if err != nil {
		t.Fatal(err)
	}
	x := in[4]
	want := c.B0*x + c.B1*st.X1 + c.B2*st.X2 - c.A1*st.Y1 - c.A2*st.Y2

	got, err := h.Process(x, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-want) > 1e-15 {
		t.Fatalf("got %.17g, want %.17g (no one-call lag)", got, want)
	}
}

func TestCoefficientsRecomputedOnlyOnChange(t *testing.T) {
	h, err := New(48000, WithCutoffHz(1000))
	if err != nil {
		t.Fatal(err)
	}

	before := h.Coefficients()
	if err := h.SetCutoffHz(1000); err != nil {
		t.Fatal(err)
	}
	if h.Coefficients() != before {
		t.Fatal("same cutoff changed coefficients")
	}

	if err := h.SetCutoffHz(1200); err != nil {
		t.Fatal(err)
	}
	if h.Coefficients() == before {
		t.Fatal("new cutoff did not change coefficients")
	}
}

func TestInvalidCutoffLeavesFilterUnchanged(t *testing.T) {
	h, err := New(48000)
	if err != nil {
		t.Fatal(err)
	}
	_ = h.ProcessSample(0.3)

	st, c := h.State(), h.Coefficients()
	for _, hz := range []float64{0, -1, math.Inf(-1), math.NaN()} {
		if _, err := h.Process(1, hz); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("Process(hz=%v) error = %v, want ErrInvalidParameter", hz, err)
		}
	}

	if h.State() != st || h.Coefficients() != c || h.CutoffHz() != DefaultCutoffHz {
		t.Fatal("invalid cutoff mutated the filter")
	}
}

func TestNyquistClampStaysStable(t *testing.T) {
	h, err := New(48000)
	if err != nil {
		t.Fatal(err)
	}

	noise := testutil.DeterministicNoise(5, 1, 4096)
	for _, hz := range []float64{24000, 30000, 1e9} {
		out := make([]float64, len(noise))
		for i, x := range noise {
			y, err := h.Process(x, hz)
			if err != nil {
				t.Fatalf("Process(hz=%v) error = %v, want clamp", hz, err)
			}
			out[i] = y
		}
		testutil.RequireFinite(t, out)

		if h.EffectiveCutoffHz() != core.MaxFrequency(48000) {
			t.Fatalf("EffectiveCutoffHz() = %v, want %v", h.EffectiveCutoffHz(), core.MaxFrequency(48000))
		}
		if c := h.Coefficients(); !c.IsStable() {
			t.Fatalf("hz=%v: unstable coefficients %#v", hz, c)
		}
	}
}

func TestBlockMatchesSample(t *testing.T) {
	h1, err := New(48000, WithCutoffHz(800))
	if err != nil {
		t.Fatal(err)
	}
	h2, err := New(48000)
	if err != nil {
		t.Fatal(err)
	}

	in := testutil.DeterministicNoise(21, 0.5, 333)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = h1.ProcessSample(x)
	}

	got := append([]float64(nil), in...)
	if err := h2.ProcessBlock(got, 800); err != nil {
		t.Fatalf("ProcessBlock() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestStateRoundTrip(t *testing.T) {
	h, err := New(48000, WithCutoffHz(1200))
	if err != nil {
		t.Fatal(err)
	}
	for i := range 96 {
		_ = h.ProcessSample(math.Sin(2 * math.Pi * float64(i) / 29))
	}

	clone, err := New(48000, WithCutoffHz(1200))
	if err != nil {
		t.Fatal(err)
	}
	if err := clone.SetState(h.State()); err != nil {
		t.Fatalf("SetState() error = %v", err)
	}

	for i := range 128 {
		x := math.Sin(2*math.Pi*float64(i)/31) + 0.2*math.Sin(2*math.Pi*float64(i)/7)
		if y1, y2 := h.ProcessSample(x), clone.ProcessSample(x); y1 != y2 {
			t.Fatalf("state mismatch at %d: %g vs %g", i, y1, y2)
		}
	}

	bad := h.State()
	bad.X2 = math.NaN()
	if err := clone.SetState(bad); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("SetState(NaN) error = %v, want ErrInvalidParameter", err)
	}
}

func TestReinit(t *testing.T) {
	h, err := New(48000)
	if err != nil {
		t.Fatal(err)
	}
	_ = h.ProcessSample(1)
	h.Reinit()
	if h.State() != (State{}) {
		t.Fatalf("Reinit left state %+v", h.State())
	}

	skip, err := New(48000, WithSkipInit(true))
	if err != nil {
		t.Fatal(err)
	}
	_ = skip.ProcessSample(1)
	st := skip.State()
	skip.Reinit()
	if skip.State() != st {
		t.Fatal("skip-init Reinit cleared state")
	}
}

func TestImplementsProcessorInterfaces(t *testing.T) {
	h, err := New(48000)
	if err != nil {
		t.Fatal(err)
	}

	var _ core.ControlProcessor = h
	var _ core.SampleProcessor = h
}

func BenchmarkProcessSample(b *testing.B) {
	h, err := New(48000, WithCutoffHz(1000))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	x := 0.25
	for range b.N {
		x = h.ProcessSample(x) + 0.25
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	h, err := New(48000, WithCutoffHz(1000))
	if err != nil {
		b.Fatal(err)
	}
	buf := testutil.DeterministicNoise(1, 1, 64)

	b.ReportAllocs()
	b.SetBytes(int64(len(buf) * 8))
	for i := range b.N {
		// alternate cutoffs to exercise recomputation at block rate
		hz := 1000.0
		if i&1 == 1 {
			hz = 1100
		}
		if err := h.ProcessBlock(buf, hz); err != nil {
			b.Fatal(err)
		}
	}
}
