//go:build rp2040

package dev

import (
	"machine"

	"github.com/itohio/ledctrl/signal"
)

// RCSource is a signal.Source backed by a bank of ADC pins, each one
// decoding one channel of an RC receiver's analog outputs (or any other
// 0-3.3V analog signal). Samples are read raw-to-8-bit and smoothed
// through a per-channel signal.Ring, the same "accumulate then divide"
// shape as a multi-pin voltage meter, generalized from volts to an
// arbitrary normalized channel reading.
type RCSource struct {
	adcs  []machine.ADC
	rings []*signal.Ring
}

// NewRCSource builds a source over adcPins, each smoothed across
// ringSize recent samples.
func NewRCSource(adcPins []machine.ADC, ringSize int) (*RCSource, error) {
	if len(adcPins) == 0 {
		return nil, ErrNoChannels
	}
	rings := make([]*signal.Ring, len(adcPins))
	for i := range rings {
		rings[i] = signal.NewRing(ringSize)
	}
	return &RCSource{adcs: adcPins, rings: rings}, nil
}

// Configure initializes every underlying ADC pin.
func (s *RCSource) Configure() {
	for i := range s.adcs {
		s.adcs[i].Configure(machine.ADCConfig{})
	}
}

// NumChannels reports the number of configured ADC channels.
func (s *RCSource) NumChannels() int { return len(s.adcs) }

// ChannelValue reads channel i directly off the ADC, rescaled from the
// platform's 16-bit ADC reading down to a byte.
func (s *RCSource) ChannelValue(i int) uint8 {
	return uint8(s.adcs[i].Get() >> 8)
}

// FilteredChannelValue returns channel i's ring-buffered mean.
func (s *RCSource) FilteredChannelValue(i int) uint8 {
	return s.rings[i].Mean()
}

// Sample reads every channel once and pushes it into its ring; call this
// once per main-loop iteration, independently of how often the executor
// polls FilteredChannelValue.
func (s *RCSource) Sample() {
	for i := range s.adcs {
		s.rings[i].Push(s.ChannelValue(i))
	}
}

// Active reports whether any channel is configured.
func (s *RCSource) Active() bool { return len(s.adcs) > 0 }

// DumpDebug renders the current filtered reading of every channel.
func (s *RCSource) DumpDebug() string {
	buf := make([]byte, 0, 4*len(s.adcs))
	for i := range s.adcs {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendDecimal(buf, s.FilteredChannelValue(i))
	}
	return string(buf)
}

func appendDecimal(buf []byte, v uint8) []byte {
	if v >= 100 {
		buf = append(buf, '0'+v/100)
		v %= 100
		buf = append(buf, '0'+v/10)
		v %= 10
	} else if v >= 10 {
		buf = append(buf, '0'+v/10)
		v %= 10
	}
	return append(buf, '0'+v)
}
