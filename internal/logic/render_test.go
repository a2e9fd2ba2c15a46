package logic

import "testing"

func TestRenderIdle(t *testing.T) {
	out := Render(Snapshot{AutoMode: true}, false, FilteredLevel{})

	if out.LEDs.Pump || out.LEDs.TankFull || out.LEDs.FilterFull {
		t.Errorf("expected all status LEDs off, got %+v", out.LEDs)
	}
	if out.LEDs.ManualMode {
		t.Error("mode LED must be off in auto mode")
	}
	for i := 0; i < statusCells; i++ {
		if out.Frame[i] != cellDim {
			t.Errorf("status cell %d: expected dim, got %+v", i, out.Frame[i])
		}
	}
	for i := statusCells; i < FrameCells; i++ {
		if out.Frame[i] != (Cell{}) {
			t.Errorf("level cell %d: expected blank at 0%%, got %+v", i, out.Frame[i])
		}
	}
}

func TestRenderModeLED(t *testing.T) {
	out := Render(Snapshot{AutoMode: false}, false, FilteredLevel{})
	if !out.LEDs.ManualMode {
		t.Error("mode LED must be lit when the switch is not in auto position")
	}
}

func TestRenderStatusBlock(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		on   bool
		cell int
		want Cell
	}{
		{"pump running", Snapshot{AutoMode: true}, true, 0, cellAccent},
		{"button held", Snapshot{AutoMode: true, ManualPump: true}, false, 0, cellAccent},
		{"filter full", Snapshot{AutoMode: true, FilterFull: true}, false, 1, cellAlert},
		{"tank full", Snapshot{AutoMode: true, TankFull: true}, false, 2, cellAlert},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Render(tc.snap, tc.on, FilteredLevel{})
			if out.Frame[tc.cell] != tc.want {
				t.Errorf("cell %d: got %+v, want %+v", tc.cell, out.Frame[tc.cell], tc.want)
			}
			// The other status cells stay dim.
			for i := 0; i < statusCells; i++ {
				if i != tc.cell && out.Frame[i] != cellDim {
					t.Errorf("cell %d: expected dim, got %+v", i, out.Frame[i])
				}
			}
		})
	}
}

func TestRenderStatusOverridesAreIndependent(t *testing.T) {
	out := Render(Snapshot{AutoMode: true, FilterFull: true, TankFull: true}, true, FilteredLevel{})
	if out.Frame[0] != cellAccent || out.Frame[1] != cellAlert || out.Frame[2] != cellAlert {
		t.Errorf("expected all three overrides active, got %+v", out.Frame[:statusCells])
	}
}

func TestRenderGradedFill(t *testing.T) {
	tests := []struct {
		percent int
		lit     int
	}{
		{0, 0},
		{19, 0},
		{20, 1},
		{50, 2},
		{60, 3},
		{80, 4},
		{99, 4},
		{100, 5},
	}
	for _, tc := range tests {
		out := Render(Snapshot{AutoMode: true}, false, FilteredLevel{Percent: tc.percent})
		lit := 0
		for i := statusCells; i < FrameCells; i++ {
			if out.Frame[i] == cellNominal {
				lit++
			} else if out.Frame[i] != (Cell{}) {
				t.Errorf("%d%%: cell %d has unexpected colour %+v", tc.percent, i, out.Frame[i])
			}
		}
		if lit != tc.lit {
			t.Errorf("%d%%: expected %d lit cells, got %d", tc.percent, tc.lit, lit)
		}
	}
}

func TestRenderFault(t *testing.T) {
	out := Render(Snapshot{AutoMode: true}, false, FilteredLevel{Fault: true})
	for i := statusCells; i < FrameCells-1; i++ {
		if out.Frame[i] != (Cell{}) {
			t.Errorf("cell %d: expected blank on fault, got %+v", i, out.Frame[i])
		}
	}
	if out.Frame[FrameCells-1] != cellAlert {
		t.Errorf("last cell: expected alert on fault, got %+v", out.Frame[FrameCells-1])
	}
}
