package watchdog

// FakeTimer records feeds for assertions.
type FakeTimer struct {
	// Feeds counts Feed calls.
	Feeds int

	// Disarmed tracks if Disarm was called.
	Disarmed bool

	// Closed tracks if Close was called
	Closed bool

	// FeedError, if set, will be returned by Feed()
	FeedError error
}

// NewFakeTimer creates a FakeTimer.
func NewFakeTimer() *FakeTimer {
	return &FakeTimer{}
}

// Feed counts the heartbeat.
func (f *FakeTimer) Feed() error {
	if f.FeedError != nil {
		return f.FeedError
	}
	f.Feeds++
	return nil
}

// Disarm records the magic close.
func (f *FakeTimer) Disarm() error {
	f.Disarmed = true
	return nil
}

// Close marks the timer as closed.
func (f *FakeTimer) Close() error {
	f.Closed = true
	return nil
}
