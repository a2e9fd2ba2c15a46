//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

const chipName = "gpiochip0"

// RealReader reads the switches from actual hardware using the Linux
// GPIO character device.
type RealReader struct {
	chip       *gpiocdev.Chip
	tankFull   *gpiocdev.Line
	filterFull *gpiocdev.Line
	autoMode   *gpiocdev.Line
	manualPump *gpiocdev.Line
}

// NewRealReader requests the four input lines as inputs with pull-up,
// matching the original controller's INPUT_PULLUP wiring.
func NewRealReader(pins Pins) (*RealReader, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	r := &RealReader{chip: chip}
	for _, req := range []struct {
		name string
		pin  int
		line **gpiocdev.Line
	}{
		{"tank-full", pins.TankFull, &r.tankFull},
		{"filter-full", pins.FilterFull, &r.filterFull},
		{"auto-mode", pins.AutoMode, &r.autoMode},
		{"manual-pump", pins.ManualPump, &r.manualPump},
	} {
		l, err := chip.RequestLine(req.pin, gpiocdev.AsInput, gpiocdev.WithPullUp)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("request %s pin %d: %w", req.name, req.pin, err)
		}
		*req.line = l
	}
	return r, nil
}

// Read returns the logical input states.
// Inverts raw values: the contacts pull to ground when active, so raw 0
// means the condition is physically true.
func (r *RealReader) Read() (Inputs, error) {
	var in Inputs
	for _, l := range []struct {
		line *gpiocdev.Line
		name string
		dst  *bool
	}{
		{r.tankFull, "tank-full", &in.TankFull},
		{r.filterFull, "filter-full", &in.FilterFull},
		{r.autoMode, "auto-mode", &in.AutoMode},
		{r.manualPump, "manual-pump", &in.ManualPump},
	} {
		raw, err := l.line.Value()
		if err != nil {
			return Inputs{}, fmt.Errorf("read %s pin: %w", l.name, err)
		}
		*l.dst = raw == 0
	}
	return in, nil
}

// Close releases the input lines and the chip handle.
func (r *RealReader) Close() error {
	var errs []error
	for _, l := range []*gpiocdev.Line{r.tankFull, r.filterFull, r.autoMode, r.manualPump} {
		if l == nil {
			continue
		}
		if err := l.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// RealWriter drives the relay and LEDs through the Linux GPIO character
// device. Outputs are requested low so a restart never inherits a stuck
// relay.
type RealWriter struct {
	chip      *gpiocdev.Chip
	pump      *gpiocdev.Line
	pumpLED   *gpiocdev.Line
	tankLED   *gpiocdev.Line
	filterLED *gpiocdev.Line
	modeLED   *gpiocdev.Line
}

// NewRealWriter requests the five output lines, all initially low.
func NewRealWriter(pins Pins) (*RealWriter, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	w := &RealWriter{chip: chip}
	for _, req := range []struct {
		name string
		pin  int
		line **gpiocdev.Line
	}{
		{"pump", pins.Pump, &w.pump},
		{"pump-led", pins.PumpLED, &w.pumpLED},
		{"tank-led", pins.TankFullLED, &w.tankLED},
		{"filter-led", pins.FilterFullLED, &w.filterLED},
		{"mode-led", pins.ModeLED, &w.modeLED},
	} {
		l, err := chip.RequestLine(req.pin, gpiocdev.AsOutput(0))
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("request %s pin %d: %w", req.name, req.pin, err)
		}
		*req.line = l
	}
	return w, nil
}

func set(l *gpiocdev.Line, name string, on bool) error {
	v := 0
	if on {
		v = 1
	}
	if err := l.SetValue(v); err != nil {
		return fmt.Errorf("write %s pin: %w", name, err)
	}
	return nil
}

func (w *RealWriter) SetPump(on bool) error          { return set(w.pump, "pump", on) }
func (w *RealWriter) SetPumpLED(on bool) error       { return set(w.pumpLED, "pump-led", on) }
func (w *RealWriter) SetTankFullLED(on bool) error   { return set(w.tankLED, "tank-led", on) }
func (w *RealWriter) SetFilterFullLED(on bool) error { return set(w.filterLED, "filter-led", on) }
func (w *RealWriter) SetModeLED(on bool) error       { return set(w.modeLED, "mode-led", on) }

// AllOff forces the relay and every LED low.
func (w *RealWriter) AllOff() error {
	var errs []error
	for _, l := range []struct {
		line *gpiocdev.Line
		name string
	}{
		{w.pump, "pump"},
		{w.pumpLED, "pump-led"},
		{w.tankLED, "tank-led"},
		{w.filterLED, "filter-led"},
		{w.modeLED, "mode-led"},
	} {
		if err := set(l.line, l.name, false); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("all off: %v", errs)
	}
	return nil
}

// Close drives every output low and releases the lines. The relay being
// low on exit matters more than a tidy error return.
func (w *RealWriter) Close() error {
	var errs []error
	for _, l := range []*gpiocdev.Line{w.pump, w.pumpLED, w.tankLED, w.filterLED, w.modeLED} {
		if l == nil {
			continue
		}
		if err := l.SetValue(0); err != nil {
			errs = append(errs, err)
		}
		if err := l.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if w.chip != nil {
		if err := w.chip.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
