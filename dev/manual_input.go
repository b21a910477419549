//go:build rp2040

package dev

import (
	"tinygo.org/x/drivers/encoders"

	"github.com/itohio/ledctrl/signal"
)

// ManualInput is a one-channel signal.Source driven by a quadrature
// encoder, for boards with no RC receiver attached where a bench
// technician needs to fire triggers by hand. The encoder's running
// position is clamped into a byte and treated exactly like an RC
// channel's analog reading, so the same EdgeDetector/Trigger machinery
// drives it.
type ManualInput struct {
	encoder *encoders.QuadratureDevice
	ring    *signal.Ring
}

// NewManualInput wraps an already-configured quadrature encoder.
func NewManualInput(encoder *encoders.QuadratureDevice, ringSize int) *ManualInput {
	return &ManualInput{encoder: encoder, ring: signal.NewRing(ringSize)}
}

// NumChannels always reports one: the encoder's own position.
func (m *ManualInput) NumChannels() int { return 1 }

// ChannelValue clamps the encoder's running position into a byte. i is
// ignored beyond bounds checking; there is only channel 0.
func (m *ManualInput) ChannelValue(i int) uint8 {
	if i != 0 {
		return 0
	}
	pos := m.encoder.Position()
	switch {
	case pos < 0:
		return 0
	case pos > 255:
		return 255
	default:
		return uint8(pos)
	}
}

// FilteredChannelValue returns the ring-buffered mean of channel 0.
func (m *ManualInput) FilteredChannelValue(i int) uint8 {
	if i != 0 {
		return 0
	}
	return m.ring.Mean()
}

// Sample reads the encoder once and pushes it into the ring; call this
// once per main-loop iteration.
func (m *ManualInput) Sample() {
	m.ring.Push(m.ChannelValue(0))
}

// Active reports whether an encoder is attached; an attached encoder is
// always live.
func (m *ManualInput) Active() bool { return m.encoder != nil }

// DumpDebug renders the encoder's filtered channel 0 reading.
func (m *ManualInput) DumpDebug() string {
	return string(appendDecimal(nil, m.FilteredChannelValue(0)))
}
