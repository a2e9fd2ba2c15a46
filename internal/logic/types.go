// Package logic contains the pure control core for the pump controller.
// This package has NO external dependencies (no GPIO, I2C, OS, or time.Sleep).
// Every state machine here is fed one immutable Snapshot per tick by the
// control loop; nothing reaches into ambient state.
package logic

// Snapshot is one tick's view of every switch and sensor, already in
// logical form (active-low inversion happens in the gpio layer).
type Snapshot struct {
	TankFull   bool
	FilterFull bool
	AutoMode   bool
	ManualPump bool
	RawLevel   int // 0..1023
}

// FilteredLevel is the level filter's per-tick output.
type FilteredLevel struct {
	Percent int // 0..100
	Fault   bool
}

// Cell is one bar-graph pixel.
type Cell struct {
	R, G, B uint8
}

// FrameCells is the strip length of the reference hardware.
const FrameCells = 8

// Frame is a full bar-graph refresh. The zero value blanks the strip.
type Frame [FrameCells]Cell

// LEDs holds the desired state of every discrete indicator.
type LEDs struct {
	Pump       bool
	TankFull   bool
	FilterFull bool
	ManualMode bool // lit when the mode switch is NOT in auto position
}

// Outputs is everything the renderer decides for one tick.
type Outputs struct {
	LEDs  LEDs
	Frame Frame
}
