package logic

// historyLen is the smoothing window size. The trimmed mean discards the
// single smallest and single largest entry, so the divisor is historyLen-2.
const historyLen = 7

// Calibration holds the analog sensor's raw-scale reference points.
// The level sensor is a 4-20mA loop scaled into a 10-bit reading, so the
// points shift per hardware revision and sensor type.
type Calibration struct {
	// ErrLevel is the fault floor: below it the current loop is broken
	// (sensor unplugged or cable damage).
	ErrLevel int
	// MinLevel is the raw reading of an empty tank.
	MinLevel int
	// MaxLevel is the raw reading of a full tank.
	MaxLevel int
}

// DefaultCalibration matches the reference sensor: 4mA across the shunt
// reads ~205, 20mA reads full scale, and anything under half the 4mA
// floor means the loop is open.
var DefaultCalibration = Calibration{
	ErrLevel: 100,
	MinLevel: 205,
	MaxLevel: 1023,
}

// LevelFilter turns noisy raw samples into a trustworthy fill percentage.
// Invalid samples never enter the history, so a transient sensor fault
// cannot corrupt the smoothing window. The window is zero-filled at
// construction and never cleared afterwards.
type LevelFilter struct {
	cal     Calibration
	history [historyLen]int
	cursor  int
}

// NewLevelFilter creates a filter with an all-zero history.
func NewLevelFilter(cal Calibration) *LevelFilter {
	return &LevelFilter{cal: cal}
}

// Process evaluates one raw sample (0..1023).
// Below the fault floor it reports a sensor fault; below the calibrated
// zero point it clamps to 0%. Neither case touches the history. A valid
// sample is mapped onto 0..100, stored, and the trimmed mean of the
// window is returned.
func (f *LevelFilter) Process(raw int) FilteredLevel {
	if raw < f.cal.ErrLevel {
		return FilteredLevel{Percent: 0, Fault: true}
	}
	if raw < f.cal.MinLevel {
		return FilteredLevel{Percent: 0}
	}

	pct := (raw - f.cal.MinLevel) * 100 / (f.cal.MaxLevel - f.cal.MinLevel)
	if pct > 100 {
		pct = 100
	}
	f.history[f.cursor] = pct
	f.cursor = (f.cursor + 1) % historyLen

	return FilteredLevel{Percent: f.trimmedMean()}
}

// trimmedMean averages the window with its single minimum and single
// maximum removed, integer-truncated.
func (f *LevelFilter) trimmedMean() int {
	sum := f.history[0]
	min, max := f.history[0], f.history[0]
	for _, v := range f.history[1:] {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return (sum - min - max) / (historyLen - 2)
}

// History returns a copy of the smoothing window in buffer order.
func (f *LevelFilter) History() [historyLen]int {
	return f.history
}
