package logic

import "testing"

const testLapCount = 5

func auto(filterFull, tankFull, manualPump bool) Snapshot {
	return Snapshot{AutoMode: true, FilterFull: filterFull, TankFull: tankFull, ManualPump: manualPump}
}

func manual(manualPump bool) Snapshot {
	return Snapshot{AutoMode: false, ManualPump: manualPump}
}

func TestAutoTriggerRunsForLapCount(t *testing.T) {
	p := NewPumpController(testLapCount)

	// One tick with the pre-filter full loads the full countdown.
	on, changed := p.Process(auto(true, false, false))
	if !on || !changed {
		t.Fatalf("trigger tick: expected on=true changed=true, got on=%v changed=%v", on, changed)
	}

	// Trigger gone: the pump keeps running until the countdown drains.
	for i := 1; i < testLapCount; i++ {
		on, changed = p.Process(auto(false, false, false))
		if !on {
			t.Fatalf("run-on tick %d: expected pump on", i)
		}
		if changed {
			t.Errorf("run-on tick %d: expected no transition", i)
		}
	}

	on, changed = p.Process(auto(false, false, false))
	if on {
		t.Error("expected pump off after run-on drained")
	}
	if !changed {
		t.Error("expected off transition to be reported")
	}
}

func TestTankFullCutsRunOnImmediately(t *testing.T) {
	p := NewPumpController(testLapCount)
	p.Process(auto(true, false, false))
	p.Process(auto(false, false, false))

	// Tank fills mid-countdown: pump off on the same tick.
	on, changed := p.Process(auto(false, true, false))
	if on {
		t.Error("expected pump off the tick the tank reads full")
	}
	if !changed {
		t.Error("expected the cutoff to report a transition")
	}
	if p.RunOnTicks() != 0 {
		t.Errorf("expected countdown zeroed, got %d", p.RunOnTicks())
	}
}

func TestTankFullWinsOverTrigger(t *testing.T) {
	p := NewPumpController(testLapCount)
	// Filter full AND tank full on the same tick: safety wins.
	on, _ := p.Process(auto(true, true, false))
	if on {
		t.Error("expected pump off while tank is full")
	}
	if p.RunOnTicks() != 0 {
		t.Errorf("expected no countdown loaded, got %d", p.RunOnTicks())
	}
}

func TestRetriggerRefreshesCountdown(t *testing.T) {
	p := NewPumpController(testLapCount)
	p.Process(auto(true, false, false))
	p.Process(auto(false, false, false))
	p.Process(auto(false, false, false))

	// Second trigger reloads to the full lap count.
	p.Process(auto(true, false, false))
	if p.RunOnTicks() != testLapCount-1 {
		t.Errorf("expected refreshed countdown %d, got %d", testLapCount-1, p.RunOnTicks())
	}
}

func TestManualButtonTriggersDwellInAutoMode(t *testing.T) {
	p := NewPumpController(testLapCount)
	on, _ := p.Process(auto(false, false, true))
	if !on {
		t.Fatal("expected button press to start the pump in auto mode")
	}
	for i := 1; i < testLapCount; i++ {
		on, _ = p.Process(auto(false, false, false))
		if !on {
			t.Fatalf("run-on tick %d: expected pump on", i)
		}
	}
	on, _ = p.Process(auto(false, false, false))
	if on {
		t.Error("expected pump off after run-on drained")
	}
}

func TestManualModeFollowsButtonEdges(t *testing.T) {
	p := NewPumpController(testLapCount)

	// off, on, off across three ticks, no dwell.
	steps := []struct {
		press       bool
		wantOn      bool
		wantChanged bool
	}{
		{false, false, false},
		{true, true, true},
		{false, false, true},
	}
	for i, s := range steps {
		on, changed := p.Process(manual(s.press))
		if on != s.wantOn || changed != s.wantChanged {
			t.Errorf("tick %d: got on=%v changed=%v, want on=%v changed=%v",
				i, on, changed, s.wantOn, s.wantChanged)
		}
	}
}

func TestManualModeHeldButtonWritesOnce(t *testing.T) {
	p := NewPumpController(testLapCount)
	_, changed := p.Process(manual(true))
	if !changed {
		t.Fatal("expected on transition")
	}
	for i := 0; i < 4; i++ {
		on, changed := p.Process(manual(true))
		if !on {
			t.Fatalf("tick %d: expected pump on while button held", i)
		}
		if changed {
			t.Errorf("tick %d: held button must not report transitions", i)
		}
	}
}

// Leaving auto mode abandons the dwell; with the button up the pump goes
// off on that tick rather than latching until the countdown is next
// touched.
func TestModeSwitchDuringRunOn(t *testing.T) {
	p := NewPumpController(testLapCount)
	p.Process(auto(true, false, false))
	p.Process(auto(false, false, false))

	on, changed := p.Process(manual(false))
	if on {
		t.Error("expected pump off after leaving auto mode mid-run-on")
	}
	if !changed {
		t.Error("expected the off transition to be reported")
	}
	if p.RunOnTicks() != 0 {
		t.Errorf("expected countdown abandoned, got %d", p.RunOnTicks())
	}

	// Returning to auto with no trigger must not resume the old dwell.
	on, _ = p.Process(auto(false, false, false))
	if on {
		t.Error("stale countdown resumed after returning to auto mode")
	}
}

func TestHeldButtonSurvivesModeFlip(t *testing.T) {
	p := NewPumpController(testLapCount)
	p.Process(auto(false, false, true)) // button held, auto dwell running

	// Flip to manual with the button still held: pump stays on via a
	// fresh edge (the latch was void while auto owned the relay).
	on, _ := p.Process(manual(true))
	if !on {
		t.Error("expected pump on in manual mode with button held")
	}
	on, _ = p.Process(manual(false))
	if on {
		t.Error("expected pump off on button release")
	}
}
