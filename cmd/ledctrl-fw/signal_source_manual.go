//go:build rp2040 && manual

package main

import (
	"tinygo.org/x/drivers/encoders"

	"github.com/itohio/ledctrl/config"
	"github.com/itohio/ledctrl/dev"
)

// newSignalSource builds the bench board variant's signal source: a
// quadrature encoder stood in for an RC receiver, for boards with no RC
// gear attached.
func newSignalSource() sampledSource {
	encoder := encoders.NewQuadratureViaInterrupt(config.EncoderA, config.EncoderB)
	encoder.Configure(encoders.QuadratureConfig{Precision: 1})
	return dev.NewManualInput(encoder, 8)
}
