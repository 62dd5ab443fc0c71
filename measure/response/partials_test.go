package response

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/table"
	"github.com/cwbudde/algo-ugen/internal/testutil"
)

func TestPartialsRecoverStrengths(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		strengths []float64
	}{
		{name: "pure sine", size: 4096, strengths: []float64{1}},
		{name: "mixed signs", size: 1024, strengths: []float64{1, -0.5, 0, 0.25}},
		{name: "guard point", size: 257, strengths: []float64{0.2, 0.4, 0.6, 0.8}},
		{name: "upper harmonic", size: 64, strengths: upperHarmonic(29, 0.7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := table.BuildSine(tt.size, tt.strengths)
			if err != nil {
				t.Fatalf("BuildSine() error = %v", err)
			}

			count := len(tt.strengths) + 2
			got, err := Partials(tbl, count)
			if err != nil {
				t.Fatalf("Partials() error = %v", err)
			}

			want := make([]float64, count)
			copy(want, tt.strengths)
			testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
		})
	}
}

func TestPartialsRejects(t *testing.T) {
	tbl, err := table.BuildSine(16, []float64{1})
	if err != nil {
		t.Fatalf("BuildSine() error = %v", err)
	}

	for _, count := range []int{0, 8, 100} {
		if _, err := Partials(tbl, count); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("Partials(%d) error = %v, want ErrInvalidParameter", count, err)
		}
	}
	if _, err := Partials(nil, 1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("Partials(nil) error = %v, want ErrInvalidParameter", err)
	}
}

func upperHarmonic(k int, strength float64) []float64 {
	s := make([]float64, k)
	s[k-1] = strength
	return s
}
