// Package bargraph drives the combined level/status strip.
// The real implementation writes an APA102 (DotStar) strip over SPI.
package bargraph

import "github.com/wkla/rainpump/internal/logic"

// Display renders full frames. The control loop re-renders every tick;
// implementations must tolerate unchanged frames.
type Display interface {
	Render(logic.Frame) error

	// Close blanks the strip and releases bus resources.
	Close() error
}
