//go:build rp2040 && !manual

package main

import (
	"machine"

	"github.com/itohio/ledctrl/config"
	"github.com/itohio/ledctrl/dev"
)

// newSignalSource builds the default board variant's signal source: a bank
// of ADC pins decoding an RC receiver's channels.
func newSignalSource() sampledSource {
	machine.InitADC()
	src, err := dev.NewRCSource([]machine.ADC{
		config.RCChannel0, config.RCChannel1, config.RCChannel2, config.RCChannel3,
	}, 8)
	if err != nil {
		panic(err)
	}
	src.Configure()
	return src
}
