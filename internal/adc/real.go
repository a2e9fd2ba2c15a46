package adc

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
)

// RealSampler reads the level sensor through an ADS1115.
// The caller must have initialized the periph host before constructing
// one.
type RealSampler struct {
	bus i2c.BusCloser
	pin ads1x15.PinADC
}

// NewRealSampler opens the default I2C bus and prepares channel 0 for
// single-shot conversions over the sensor's 0-3.3V range.
func NewRealSampler() (*RealSampler, error) {
	bus, err := i2creg.Open("")
	if err != nil {
		return nil, fmt.Errorf("open i2c bus: %w", err)
	}

	dev, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("init ads1115: %w", err)
	}

	pin, err := dev.PinForChannel(ads1x15.Channel0, 3300*physic.MilliVolt, 1*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("configure level channel: %w", err)
	}

	return &RealSampler{bus: bus, pin: pin}, nil
}

// Sample performs one conversion and rescales it to the 10-bit range the
// calibration constants are expressed in.
func (s *RealSampler) Sample() (int, error) {
	sample, err := s.pin.Read()
	if err != nil {
		return 0, fmt.Errorf("read level channel: %w", err)
	}

	// The ADS1115 returns signed 16-bit conversions with a 15-bit
	// positive range. Shift down to the sensor's 10-bit scale.
	raw := int(sample.Raw) >> 5
	if raw < 0 {
		raw = 0
	}
	if raw > RangeMax {
		raw = RangeMax
	}
	return raw, nil
}

// Close halts the channel and releases the bus.
func (s *RealSampler) Close() error {
	var errs []error
	if err := s.pin.Halt(); err != nil {
		errs = append(errs, err)
	}
	if err := s.bus.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
