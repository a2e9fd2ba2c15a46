package gpio

import "errors"

// FakeReader is a test double that returns scripted input readings.
type FakeReader struct {
	// Samples contains scripted readings, already in logical form.
	// Each call to Read() consumes the next sample; once exhausted the
	// last sample repeats.
	Samples []Inputs

	// index tracks current position in Samples
	index int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by Read()
	ReadError error
}

// NewFakeReader creates a FakeReader with the given samples.
func NewFakeReader(samples []Inputs) *FakeReader {
	return &FakeReader{Samples: samples}
}

// Read returns the next scripted sample.
func (f *FakeReader) Read() (Inputs, error) {
	if f.ReadError != nil {
		return Inputs{}, f.ReadError
	}
	if len(f.Samples) == 0 {
		return Inputs{}, errors.New("no samples configured")
	}

	sample := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}
	return sample, nil
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

// OutputState is a FakeWriter's view of every output level.
type OutputState struct {
	Pump          bool
	PumpLED       bool
	TankFullLED   bool
	FilterFullLED bool
	ModeLED       bool
}

// FakeWriter records output writes for assertions.
type FakeWriter struct {
	State OutputState

	// PumpWrites counts relay writes, PumpTransitions only the ones that
	// changed the level.
	PumpWrites      int
	PumpTransitions int

	// PumpLEDWrites counts pump LED writes (the terminal blink state
	// toggles this one).
	PumpLEDWrites int

	// AllOffCalls counts AllOff invocations.
	AllOffCalls int

	// Closed tracks if Close was called
	Closed bool

	// WriteError, if set, will be returned by every write.
	WriteError error
}

// NewFakeWriter creates a FakeWriter with all outputs off.
func NewFakeWriter() *FakeWriter {
	return &FakeWriter{}
}

func (f *FakeWriter) SetPump(on bool) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.PumpWrites++
	if f.State.Pump != on {
		f.PumpTransitions++
	}
	f.State.Pump = on
	return nil
}

func (f *FakeWriter) SetPumpLED(on bool) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.PumpLEDWrites++
	f.State.PumpLED = on
	return nil
}

func (f *FakeWriter) SetTankFullLED(on bool) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.State.TankFullLED = on
	return nil
}

func (f *FakeWriter) SetFilterFullLED(on bool) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.State.FilterFullLED = on
	return nil
}

func (f *FakeWriter) SetModeLED(on bool) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.State.ModeLED = on
	return nil
}

// AllOff forces every recorded output off.
func (f *FakeWriter) AllOff() error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.AllOffCalls++
	f.State = OutputState{}
	return nil
}

// Close marks the writer as closed.
func (f *FakeWriter) Close() error {
	f.Closed = true
	return nil
}
