// Package status provides a thread-safe tracker of the controller's last
// observed state. The control loop updates it every tick; the shutdown
// and terminal-fault paths read it for their final log lines.
package status

import (
	"sync"
	"time"

	"github.com/wkla/rainpump/internal/logic"
)

// Config contains the timing profile for display in log output.
type Config struct {
	TickMs    int64
	RunOnS    int64
	RestartS  int64
	WatchdogS int64
	Debug     bool
}

// Snapshot is a point-in-time view of controller state.
// It is a value type, safe to use after the lock is released.
type Snapshot struct {
	Inputs     logic.Snapshot
	Level      logic.FilteredLevel
	PumpOn     bool
	RunOnTicks int
	TicksLeft  int // unspent restart budget
	StartTime  time.Time
	Now        time.Time
	Config     Config
}

// Uptime returns the duration since the controller started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable controller state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the per-tick state. Called from the control loop on every
// successful tick.
func (t *Tracker) Update(in logic.Snapshot, level logic.FilteredLevel, pumpOn bool, runOnTicks, ticksLeft int) {
	t.mu.Lock()
	t.snap.Inputs = in
	t.snap.Level = level
	t.snap.PumpOn = pumpOn
	t.snap.RunOnTicks = runOnTicks
	t.snap.TicksLeft = ticksLeft
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the controller state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
