package logic

import "testing"

func TestLivenessDecrementsOncePerTick(t *testing.T) {
	l := NewLiveness(10)
	for i := 1; i <= 5; i++ {
		v := l.Tick()
		if v != Feed {
			t.Fatalf("tick %d: expected Feed, got %v", i, v)
		}
		if l.Remaining() != 10-i {
			t.Errorf("tick %d: expected %d remaining, got %d", i, 10-i, l.Remaining())
		}
	}
}

func TestLivenessTerminalOnExactExhaustion(t *testing.T) {
	const budget = 4
	l := NewLiveness(budget)

	// Feed verdicts until the tick where the budget reaches exactly 0.
	for i := 1; i < budget; i++ {
		if v := l.Tick(); v != Feed {
			t.Fatalf("tick %d: expected Feed, got %v", i, v)
		}
	}
	if v := l.Tick(); v != Terminal {
		t.Errorf("expected Terminal on the exhaustion tick, got %v", v)
	}
	if l.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", l.Remaining())
	}
}

func TestLivenessTerminalIsSticky(t *testing.T) {
	l := NewLiveness(1)
	if v := l.Tick(); v != Terminal {
		t.Fatalf("expected Terminal, got %v", v)
	}
	for i := 0; i < 3; i++ {
		if v := l.Tick(); v != Terminal {
			t.Errorf("tick %d after exhaustion: expected Terminal, got %v", i, v)
		}
		if l.Remaining() != 0 {
			t.Errorf("budget went negative: %d", l.Remaining())
		}
	}
}
