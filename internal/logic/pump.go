package logic

// PumpController decides the relay state once per tick.
//
// In auto mode a full pre-filter (or the manual button) reloads a run-on
// countdown so the pump keeps draining the filter after the trigger
// clears; a full main tank zeroes the countdown unconditionally. In
// manual mode the relay follows the button edge-triggered through a
// latch, the way the original panel wiring behaved.
type PumpController struct {
	lapCount    int
	runOnTicks  int
	manualLatch bool
	pumpOn      bool
}

// NewPumpController creates a controller with the pump off.
// lapCount is the run-on duration expressed in ticks.
func NewPumpController(lapCount int) *PumpController {
	return &PumpController{lapCount: lapCount}
}

// Process evaluates one tick and returns the desired relay state plus
// whether it changed since the previous tick. The relay write itself is
// idempotent, so callers may write every tick and use changed only for
// logging.
func (p *PumpController) Process(s Snapshot) (on, changed bool) {
	prev := p.pumpOn

	if s.AutoMode {
		if (s.FilterFull || s.ManualPump) && !s.TankFull {
			// Re-triggering while running just refreshes the countdown.
			p.runOnTicks = p.lapCount
		}
		if s.TankFull {
			// Safety cutoff beats any pending run-on.
			p.runOnTicks = 0
		}
		if p.runOnTicks > 0 {
			p.pumpOn = true
			p.runOnTicks--
		} else {
			p.pumpOn = false
		}
		// While the auto path owns the relay the manual latch is void;
		// a button still held when the mode flips back re-arms cleanly.
		p.manualLatch = false
	} else {
		// Leaving auto mode abandons any dwell in progress; the relay
		// belongs to the button now.
		p.runOnTicks = 0
		if s.ManualPump {
			if !p.manualLatch {
				p.pumpOn = true
				p.manualLatch = true
			}
		} else if p.manualLatch || p.pumpOn {
			p.pumpOn = false
			p.manualLatch = false
		}
	}

	return p.pumpOn, p.pumpOn != prev
}

// RunOnTicks reports the remaining run-on countdown.
func (p *PumpController) RunOnTicks() int {
	return p.runOnTicks
}

// PumpOn reports the relay state decided on the last tick.
func (p *PumpController) PumpOn() bool {
	return p.pumpOn
}
