//go:build !linux

package watchdog

import (
	"errors"
	"time"
)

var errUnsupported = errors.New("watchdog: not supported on this platform (requires Linux)")

// RealTimer is not available on non-Linux platforms.
type RealTimer struct{}

// NewRealTimer returns an error on non-Linux platforms.
func NewRealTimer(string, time.Duration) (*RealTimer, error) {
	return nil, errUnsupported
}

func (t *RealTimer) Feed() error   { return errUnsupported }
func (t *RealTimer) Disarm() error { return errUnsupported }
func (t *RealTimer) Close() error  { return nil }
