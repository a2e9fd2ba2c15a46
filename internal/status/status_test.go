package status

import (
	"testing"
	"time"

	"github.com/wkla/rainpump/internal/logic"
)

func TestTrackerUpdateAndSnapshot(t *testing.T) {
	start := time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC)
	tr := NewTracker(start, Config{TickMs: 100, RunOnS: 15, RestartS: 3600})

	in := logic.Snapshot{AutoMode: true, FilterFull: true, RawLevel: 512}
	level := logic.FilteredLevel{Percent: 42}
	tr.Update(in, level, true, 7, 1000)

	snap := tr.Snapshot()
	if snap.Inputs != in {
		t.Errorf("inputs: got %+v, want %+v", snap.Inputs, in)
	}
	if snap.Level != level {
		t.Errorf("level: got %+v, want %+v", snap.Level, level)
	}
	if !snap.PumpOn {
		t.Error("expected pump on")
	}
	if snap.RunOnTicks != 7 {
		t.Errorf("run-on ticks: got %d, want 7", snap.RunOnTicks)
	}
	if snap.TicksLeft != 1000 {
		t.Errorf("ticks left: got %d, want 1000", snap.TicksLeft)
	}
	if !snap.StartTime.Equal(start) {
		t.Errorf("start time: got %v, want %v", snap.StartTime, start)
	}
	if snap.Config.RunOnS != 15 {
		t.Errorf("config run-on: got %d, want 15", snap.Config.RunOnS)
	}
}

func TestSnapshotUptime(t *testing.T) {
	s := Snapshot{
		StartTime: time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC),
		Now:       time.Date(2026, 8, 1, 6, 30, 0, 0, time.UTC),
	}
	if s.Uptime() != 30*time.Minute {
		t.Errorf("uptime: got %v, want 30m", s.Uptime())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})
	tr.Update(logic.Snapshot{TankFull: true}, logic.FilteredLevel{}, false, 0, 5)

	snap := tr.Snapshot()
	tr.Update(logic.Snapshot{}, logic.FilteredLevel{}, true, 0, 4)

	if !snap.Inputs.TankFull || snap.PumpOn {
		t.Error("snapshot mutated by later update")
	}
}
