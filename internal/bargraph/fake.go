package bargraph

import "github.com/wkla/rainpump/internal/logic"

// FakeDisplay records rendered frames for assertions.
type FakeDisplay struct {
	// Frames holds every frame in render order.
	Frames []logic.Frame

	// Closed tracks if Close was called
	Closed bool

	// RenderError, if set, will be returned by Render()
	RenderError error
}

// NewFakeDisplay creates an empty FakeDisplay.
func NewFakeDisplay() *FakeDisplay {
	return &FakeDisplay{}
}

// Render records the frame.
func (f *FakeDisplay) Render(frame logic.Frame) error {
	if f.RenderError != nil {
		return f.RenderError
	}
	f.Frames = append(f.Frames, frame)
	return nil
}

// Last returns the most recent frame, or a blank frame if none were
// rendered.
func (f *FakeDisplay) Last() logic.Frame {
	if len(f.Frames) == 0 {
		return logic.Frame{}
	}
	return f.Frames[len(f.Frames)-1]
}

// Close marks the display as closed.
func (f *FakeDisplay) Close() error {
	f.Closed = true
	return nil
}
