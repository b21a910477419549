//go:build rp2040

package hal

import (
	"machine"

	"github.com/itohio/ledctrl/color"
	"tinygo.org/x/drivers/ws2812"
)

// WS2812Sink drives a single addressable RGB(W) LED (or the first pixel of
// a strip wired in parallel) through the ws2812 bit-banged protocol. It is
// the natural TinyGo equivalent of the teacher's ADC-facing drivers, just
// pointed the opposite direction: bytes out instead of samples in.
type WS2812Sink struct {
	dev   ws2812.Device
	white bool
}

// NewWS2812Sink configures pin as a ws2812 data line. When rgbw is true,
// SetColor also streams the White channel as a fourth byte.
func NewWS2812Sink(pin machine.Pin, rgbw bool) *WS2812Sink {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &WS2812Sink{dev: ws2812.New(pin), white: rgbw}
}

func (s *WS2812Sink) SetColor(c color.Color) {
	buf := [4]byte{c.G, c.R, c.B, c.W}
	if s.white {
		s.dev.Write(buf[:4])
		return
	}
	s.dev.Write(buf[:3])
}
