package bargraph

import (
	"fmt"

	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/apa102"

	"github.com/wkla/rainpump/internal/logic"
)

// RealDisplay drives an APA102 strip over SPI.
// The caller must have initialized the periph host before constructing
// one.
type RealDisplay struct {
	port spi.PortCloser
	dev  *apa102.Dev
	buf  []byte
}

// NewRealDisplay opens the default SPI port and configures the strip.
// intensity scales every cell globally (0 off, 255 full brightness); the
// strip is bright enough that daylight-readable values still sit well
// below 255.
func NewRealDisplay(intensity uint8) (*RealDisplay, error) {
	port, err := spireg.Open("")
	if err != nil {
		return nil, fmt.Errorf("open spi port: %w", err)
	}

	opts := apa102.DefaultOpts
	opts.NumPixels = logic.FrameCells
	opts.Intensity = intensity
	dev, err := apa102.New(port, &opts)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("init apa102: %w", err)
	}

	return &RealDisplay{
		port: port,
		dev:  dev,
		buf:  make([]byte, 3*logic.FrameCells),
	}, nil
}

// Render writes one frame to the strip as packed RGB.
func (d *RealDisplay) Render(f logic.Frame) error {
	for i, c := range f {
		d.buf[3*i+0] = c.R
		d.buf[3*i+1] = c.G
		d.buf[3*i+2] = c.B
	}
	if _, err := d.dev.Write(d.buf); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Close blanks the strip and releases the SPI port.
func (d *RealDisplay) Close() error {
	var errs []error
	if err := d.Render(logic.Frame{}); err != nil {
		errs = append(errs, err)
	}
	if err := d.port.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
