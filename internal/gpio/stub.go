//go:build !linux

package gpio

import "errors"

var errUnsupported = errors.New("gpio: not supported on this platform (requires Linux)")

// RealReader is not available on non-Linux platforms.
type RealReader struct{}

// NewRealReader returns an error on non-Linux platforms.
func NewRealReader(Pins) (*RealReader, error) {
	return nil, errUnsupported
}

func (r *RealReader) Read() (Inputs, error) { return Inputs{}, errUnsupported }
func (r *RealReader) Close() error          { return nil }

// RealWriter is not available on non-Linux platforms.
type RealWriter struct{}

// NewRealWriter returns an error on non-Linux platforms.
func NewRealWriter(Pins) (*RealWriter, error) {
	return nil, errUnsupported
}

func (w *RealWriter) SetPump(bool) error          { return errUnsupported }
func (w *RealWriter) SetPumpLED(bool) error       { return errUnsupported }
func (w *RealWriter) SetTankFullLED(bool) error   { return errUnsupported }
func (w *RealWriter) SetFilterFullLED(bool) error { return errUnsupported }
func (w *RealWriter) SetModeLED(bool) error       { return errUnsupported }
func (w *RealWriter) AllOff() error               { return errUnsupported }
func (w *RealWriter) Close() error                { return nil }
