//go:build rp2040

package dev

import (
	"machine"
	"time"
)

// FlashPin blinks pin on and off times, each half lasting half. It is the
// onboard-status-LED analogue of exec.Executor.FinishCalibration's strip
// flash: boards that wire a separate status LED (rather than relying on
// the strip itself being visible during calibration) use this instead.
func FlashPin(pin machine.Pin, half time.Duration, times int) {
	for i := 0; i < times; i++ {
		pin.High()
		time.Sleep(half)
		pin.Low()
		time.Sleep(half)
	}
}
