//go:build linux

package watchdog

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// RealTimer drives a Linux watchdog device.
type RealTimer struct {
	f *os.File
}

// NewRealTimer opens the watchdog device and programs its timeout.
// Opening the device arms it immediately, so the first Feed must follow
// within the timeout.
func NewRealTimer(path string, timeout time.Duration) (*RealTimer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open watchdog: %w", err)
	}

	secs := int(timeout / time.Second)
	if err := unix.IoctlSetPointerInt(int(f.Fd()), unix.WDIOC_SETTIMEOUT, secs); err != nil {
		// Some drivers have a fixed timeout; keep going with whatever
		// the hardware gives us rather than refusing to supervise.
		fmt.Fprintf(os.Stderr, "watchdog: set timeout %ds: %v (using driver default)\n", secs, err)
	}

	return &RealTimer{f: f}, nil
}

// Feed resets the timeout window.
func (t *RealTimer) Feed() error {
	if err := unix.IoctlWatchdogKeepalive(int(t.f.Fd())); err != nil {
		return fmt.Errorf("watchdog keepalive: %w", err)
	}
	return nil
}

// Disarm performs the magic close so a clean shutdown does not reboot
// the board. Must not be called on the terminal-fault path, where the
// pending timeout is the whole point.
func (t *RealTimer) Disarm() error {
	if _, err := t.f.Write([]byte("V")); err != nil {
		return fmt.Errorf("watchdog magic close: %w", err)
	}
	return nil
}

// Close releases the device. Call Disarm first on clean shutdowns.
func (t *RealTimer) Close() error {
	return t.f.Close()
}
