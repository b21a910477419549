//go:build rp2040

package config

import "machine"

var (
	// LEDData drives the WS2812(+W) strip's single data line.
	LEDData = machine.GP2

	// RCChannel0..RCChannel3 are the ADC-sampled RC receiver channels the
	// bytecode's trigger subsystem and SET_COLOR_FROM_CHANNELS read.
	RCChannel0 = machine.ADC{Pin: machine.ADC0}
	RCChannel1 = machine.ADC{Pin: machine.ADC1}
	RCChannel2 = machine.ADC{Pin: machine.ADC2}
	RCChannel3 = machine.ADC{Pin: machine.ADC3}

	// StatusLED is the onboard LED used for calibration feedback and boot
	// status, independent of whatever strip is attached to LEDData.
	StatusLED = machine.GP25

	// CalibrationButton starts a clock-skew calibration run when held at
	// boot.
	CalibrationButton = machine.GP15

	// EncoderA and EncoderB are the quadrature pins for the optional
	// bench "manual color" signal source, used instead of an RC receiver
	// on boards built with the manual build tag.
	EncoderA = machine.GP16
	EncoderB = machine.GP17
)
