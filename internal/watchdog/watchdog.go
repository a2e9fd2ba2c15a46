// Package watchdog controls the hardware watchdog timer.
// The real implementation uses the Linux watchdog device: once opened
// the device is armed, and the board resets unless it is fed within its
// timeout. That is what turns a stalled control loop (or one that
// deliberately stops feeding) into a full hardware restart.
package watchdog

import "time"

// DefaultTimeout is the window the loop has always run under; the tick
// period leaves it a wide margin.
const DefaultTimeout = 4 * time.Second

// DefaultDevice is the standard Linux watchdog node.
const DefaultDevice = "/dev/watchdog"

// Timer is a hardware watchdog.
type Timer interface {
	// Feed signals that the control loop is alive, resetting the
	// timeout window.
	Feed() error

	// Disarm tells the watchdog an intentional shutdown is in progress
	// so the pending timeout will not fire. Starving the timer instead
	// (never calling Feed or Disarm again) forces a hardware reset.
	Disarm() error

	// Close releases the device.
	Close() error
}

// Disabled is a no-op Timer for running without a watchdog device.
type Disabled struct{}

func (Disabled) Feed() error   { return nil }
func (Disabled) Disarm() error { return nil }
func (Disabled) Close() error  { return nil }
