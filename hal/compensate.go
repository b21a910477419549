package hal

import "github.com/itohio/ledctrl/color"

// ChannelRange is the duty-cycle fraction [0,1] a channel should be
// remapped through at full-scale input; Min is the duty cycle at input 0,
// Max is the duty cycle at input 255. Generalizes the teacher's ADC
// approximator curves to the PWM output side: instead of converting a raw
// ADC sample to a voltage, this converts a logical color channel to a duty
// cycle compensated for that channel's actual LED/driver response.
type ChannelRange struct {
	Min, Max float32
}

// DefaultChannelRange passes the input straight through; so does the zero
// ChannelRange.
var DefaultChannelRange = ChannelRange{Min: 0, Max: 1}

func remapCubic(v uint8, rng ChannelRange) uint8 {
	if rng == DefaultChannelRange || rng == (ChannelRange{}) {
		return v
	}
	t := float32(v) / 255
	t3 := t * t * t
	scaled := rng.Min + (rng.Max-rng.Min)*t3
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 1 {
		scaled = 1
	}
	return uint8(scaled*255 + 0.5)
}

// CompensatingSink wraps a PWMSink and remaps each channel through a cubic
// curve scaled by its configured voltage/duty-cycle range before
// forwarding the color to the underlying sink. This is the non-linear
// remap spec'd as an optional step between the fader and the real PWM
// hardware — LEDs do not respond linearly to duty cycle, and a cubic curve
// with a per-channel [min,max] range compensates for that without needing
// a full calibration table per channel.
type CompensatingSink struct {
	sink   PWMSink
	ranges [4]ChannelRange
}

// NewCompensatingSink wraps sink, applying ranges (R,G,B,W) to every color
// before it reaches the hardware.
func NewCompensatingSink(sink PWMSink, ranges [4]ChannelRange) *CompensatingSink {
	return &CompensatingSink{sink: sink, ranges: ranges}
}

func (s *CompensatingSink) SetColor(c color.Color) {
	s.sink.SetColor(color.Color{
		R: remapCubic(c.R, s.ranges[0]),
		G: remapCubic(c.G, s.ranges[1]),
		B: remapCubic(c.B, s.ranges[2]),
		W: remapCubic(c.W, s.ranges[3]),
	})
}
