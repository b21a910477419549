// Package hal defines the interface contracts for the executor's external
// collaborators — the PWM output sink and the persistent calibration
// record — plus pure-Go implementations (compensation curve) and thin
// adapters over real hardware drivers (ws2812).
package hal

import "github.com/itohio/ledctrl/color"

// PWMSink receives the color the executor wants driven onto the strip
// right now.
type PWMSink interface {
	SetColor(color.Color)
}

// CalibrationMagic marks a valid calibration record in non-volatile
// memory.
const CalibrationMagic uint32 = 0xDEADBEEF

// CalibrationRecord is the fixed 8-byte record persisted at address 0 of
// calibration storage: a magic value followed by the clock skew
// compensation factor.
type CalibrationRecord struct {
	Magic uint32
	Skew  float32
}

// Valid reports whether the record's magic matches, i.e. whether Skew
// should be trusted rather than defaulted to 1.0.
func (r CalibrationRecord) Valid() bool { return r.Magic == CalibrationMagic }

// CalibrationStore persists and retrieves the clock skew calibration
// record.
type CalibrationStore interface {
	Read() (CalibrationRecord, error)
	Write(CalibrationRecord) error
	Reset() error
}
