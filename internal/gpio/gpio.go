// Package gpio provides digital input/output with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementations allow testing the control loop without hardware.
package gpio

// Inputs is one reading of every switch contact, already in logical form.
// All four lines are wired active-low (pull-up, closed contact pulls the
// line to ground), so the real reader inverts the raw values.
type Inputs struct {
	TankFull   bool
	FilterFull bool
	AutoMode   bool
	ManualPump bool
}

// InputReader reads the discrete inputs.
type InputReader interface {
	Read() (Inputs, error)

	// Close releases GPIO resources.
	Close() error
}

// OutputWriter drives the pump relay and the discrete status LEDs.
// All writes are level writes and safe to repeat with an unchanged value.
type OutputWriter interface {
	SetPump(on bool) error
	SetPumpLED(on bool) error
	SetTankFullLED(on bool) error
	SetFilterFullLED(on bool) error
	SetModeLED(on bool) error

	// AllOff forces the relay and every LED off.
	AllOff() error

	// Close releases GPIO resources.
	Close() error
}

// Pins lists the line offsets in use (BCM numbering).
type Pins struct {
	// Inputs
	TankFull   int
	FilterFull int
	AutoMode   int
	ManualPump int
	// Outputs
	Pump          int
	PumpLED       int
	TankFullLED   int
	FilterFullLED int
	ModeLED       int
}

// DefaultPins is the reference wiring.
var DefaultPins = Pins{
	TankFull:   17,
	FilterFull: 27,
	AutoMode:   22,
	ManualPump: 23,

	Pump:          24,
	PumpLED:       25,
	TankFullLED:   5,
	FilterFullLED: 6,
	ModeLED:       13,
}
