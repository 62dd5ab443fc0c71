package core

const (
	// DefaultSampleRate is the audio rate used when none is configured.
	DefaultSampleRate = 44100.0
	// DefaultBlockSize is the number of audio samples per control period.
	DefaultBlockSize = 64
)

// ProcessorConfig defines common DSP processing settings.
//
// BlockSize is the control period: callers that update control values
// (cutoff, half-power point) once per block use it as the update cadence.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns sensible defaults for offline rendering.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
		BlockSize:  DefaultBlockSize,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && IsFinite(sampleRate) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the control period in samples.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// ControlRate returns the number of control periods per second.
func (c ProcessorConfig) ControlRate() float64 {
	if c.BlockSize <= 0 {
		return c.SampleRate
	}
	return c.SampleRate / float64(c.BlockSize)
}

// Blocks returns the number of control periods needed to cover n samples.
func (c ProcessorConfig) Blocks(n int) int {
	if n <= 0 {
		return 0
	}
	bs := c.BlockSize
	if bs <= 0 {
		bs = 1
	}
	return (n + bs - 1) / bs
}
