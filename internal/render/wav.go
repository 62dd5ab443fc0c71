package render

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

const wavFormatPCM = 1

// Encode writes mono samples in [-1, 1] as integer PCM. Samples outside
// that range are clipped.
func Encode(w io.WriteSeeker, samples []float64, sampleRate, bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("render: unsupported bit depth %d: %w", bitDepth, core.ErrInvalidParameter)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           Quantize(samples, bitDepth),
		SourceBitDepth: bitDepth,
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("render: wav write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render: wav close: %w", err)
	}
	return nil
}

// Quantize converts samples to signed integers of bitDepth bits.
func Quantize(samples []float64, bitDepth int) []int {
	full := float64(int64(1)<<(bitDepth-1) - 1)

	out := make([]int, len(samples))
	for i, x := range samples {
		out[i] = int(math.Round(core.Clamp(x, -1, 1) * full))
	}
	return out
}
