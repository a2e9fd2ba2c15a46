// Package adc provides analog tank-level sampling.
// The board has no on-chip ADC, so the real implementation reads an
// ADS1115 on the I2C bus. The fake allows testing without hardware.
package adc

// RangeMax is the top of the sensor's 10-bit scale. Calibration
// constants are expressed on this scale regardless of the converter's
// native width.
const RangeMax = 1023

// Sampler reads the tank-level sensor, returning 0..RangeMax.
type Sampler interface {
	Sample() (int, error)

	// Close releases bus resources.
	Close() error
}
