package core

// ControlProcessor filters one sample with a control value supplied on the
// same call. Implementations recompute derived coefficients whenever the
// control value differs from the previous call.
type ControlProcessor interface {
	Process(x, control float64) (float64, error)
}

// SampleProcessor filters one sample using its current control value.
type SampleProcessor interface {
	ProcessSample(x float64) float64
	Reset()
}
