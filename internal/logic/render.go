package logic

// Bar-graph palette. The status block idles dim so the strip doubles as
// a power-on indicator.
var (
	cellDim     = Cell{R: 8, G: 8, B: 8}
	cellAccent  = Cell{B: 255}
	cellAlert   = Cell{R: 255}
	cellNominal = Cell{G: 180}
)

// statusCells is the fixed status block at the head of the strip; the
// remaining cells render the fill level.
const (
	statusCells = 3
	levelCells  = FrameCells - statusCells
)

// Render maps one tick's state to every indicator. Pure function; the
// loop writes the result unconditionally each tick, no dirty tracking.
//
// Strip layout: cell 0 accent while the pump runs or the button is held,
// cell 1 alert while the pre-filter is full, cell 2 alert while the tank
// is full, all three dim otherwise. Cells 3-7 show the fill level as a
// graded bar, or a single alert cell at the end on a sensor fault.
func Render(s Snapshot, pumpOn bool, level FilteredLevel) Outputs {
	out := Outputs{
		LEDs: LEDs{
			Pump:       pumpOn,
			TankFull:   s.TankFull,
			FilterFull: s.FilterFull,
			ManualMode: !s.AutoMode,
		},
	}

	for i := 0; i < statusCells; i++ {
		out.Frame[i] = cellDim
	}
	if pumpOn || s.ManualPump {
		out.Frame[0] = cellAccent
	}
	if s.FilterFull {
		out.Frame[1] = cellAlert
	}
	if s.TankFull {
		out.Frame[2] = cellAlert
	}

	if level.Fault {
		out.Frame[FrameCells-1] = cellAlert
		return out
	}
	lit := level.Percent * levelCells / 100
	for i := 0; i < lit; i++ {
		out.Frame[statusCells+i] = cellNominal
	}
	return out
}
