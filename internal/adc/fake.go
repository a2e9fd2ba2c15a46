package adc

import "errors"

// FakeSampler is a test double that returns scripted level readings.
type FakeSampler struct {
	// Samples contains scripted raw values (0..RangeMax). Each call to
	// Sample() consumes the next value; once exhausted the last value
	// repeats.
	Samples []int

	// index tracks current position in Samples
	index int

	// Closed tracks if Close was called
	Closed bool

	// SampleError, if set, will be returned by Sample()
	SampleError error
}

// NewFakeSampler creates a FakeSampler with the given raw values.
func NewFakeSampler(samples []int) *FakeSampler {
	return &FakeSampler{Samples: samples}
}

// Sample returns the next scripted value.
func (f *FakeSampler) Sample() (int, error) {
	if f.SampleError != nil {
		return 0, f.SampleError
	}
	if len(f.Samples) == 0 {
		return 0, errors.New("no samples configured")
	}

	v := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}
	return v, nil
}

// Close marks the sampler as closed.
func (f *FakeSampler) Close() error {
	f.Closed = true
	return nil
}
