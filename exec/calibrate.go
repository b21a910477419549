package exec

import "github.com/itohio/ledctrl/color"

// FinishCalibration computes the clock skew compensation factor implied by
// having measured elapsedMs of wall-clock time over a calibration run
// whose internal-clock duration was expectedInternalMs, accepts it only
// within [SkewAcceptanceMin, SkewAcceptanceMax], and — when a PWM sink is
// attached — flashes the strip green three times on acceptance or red
// three times on rejection, the same visual feedback the original
// firmware's calibration routine gave over the LED strip itself.
func (e *Executor) FinishCalibration(expectedInternalMs, elapsedMs uint32) (factor float32, accepted bool) {
	if expectedInternalMs == 0 {
		return e.skew, false
	}
	factor = float32(elapsedMs) / float32(expectedInternalMs)
	accepted = factor >= SkewAcceptanceMin && factor <= SkewAcceptanceMax
	if accepted {
		e.SetSkew(factor)
		e.flash(color.Color{G: 255}, 3)
	} else {
		e.flash(color.Color{R: 255}, 3)
	}
	return factor, accepted
}

func (e *Executor) flash(c color.Color, times int) {
	if e.sink == nil {
		return
	}
	for i := 0; i < times; i++ {
		e.sink.SetColor(c)
		e.sink.SetColor(color.Black())
	}
	e.sink.SetColor(e.currentColor)
}
