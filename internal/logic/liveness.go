package logic

// Verdict is the per-tick liveness decision.
type Verdict int

const (
	// Feed means the loop is alive and within its uptime budget: signal
	// the hardware watchdog.
	Feed Verdict = iota
	// Terminal means the uptime budget is exhausted. The loop must force
	// its outputs off and starve the watchdog until the hardware resets
	// the board. There is no way back short of that reset.
	Terminal
)

// Liveness counts down the scheduled-restart budget. The budget moves
// one way only; once Tick returns Terminal every later call does too.
//
// The budget exists so the controller reboots itself once an hour even
// when nothing ever goes wrong. Actual stalls are the hardware
// watchdog's job: it resets the board whenever Feed verdicts stop
// arriving, whatever the reason.
type Liveness struct {
	restartBudget int
}

// NewLiveness creates a supervisor with the given budget in ticks.
func NewLiveness(budgetTicks int) *Liveness {
	return &Liveness{restartBudget: budgetTicks}
}

// Tick consumes one tick of budget and returns the verdict. Terminal
// begins on the tick where the budget reaches exactly zero.
func (l *Liveness) Tick() Verdict {
	if l.restartBudget > 0 {
		l.restartBudget--
	}
	if l.restartBudget > 0 {
		return Feed
	}
	return Terminal
}

// Remaining reports the unspent budget in ticks.
func (l *Liveness) Remaining() int {
	return l.restartBudget
}
