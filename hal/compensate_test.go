package hal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itohio/ledctrl/color"
)

type recordingSink struct {
	last color.Color
}

func (r *recordingSink) SetColor(c color.Color) { r.last = c }

func TestDefaultChannelRangePassesThrough(t *testing.T) {
	rec := &recordingSink{}
	sink := NewCompensatingSink(rec, [4]ChannelRange{
		DefaultChannelRange, DefaultChannelRange, DefaultChannelRange, DefaultChannelRange,
	})
	in := color.Color{R: 0, G: 128, B: 255, W: 64}
	sink.SetColor(in)
	require.Equal(t, uint8(0), rec.last.R)
	require.Equal(t, uint8(255), rec.last.B)
}

func TestCompensatingSinkRemapsPerChannelRange(t *testing.T) {
	rec := &recordingSink{}
	ranges := [4]ChannelRange{
		{Min: 0.2, Max: 1.0},
		DefaultChannelRange,
		DefaultChannelRange,
		DefaultChannelRange,
	}
	sink := NewCompensatingSink(rec, ranges)

	sink.SetColor(color.Color{R: 0})
	require.Equal(t, uint8(51), rec.last.R, "input 0 maps to Min duty cycle (0.2*255 rounded)")

	sink.SetColor(color.Color{R: 255})
	require.Equal(t, uint8(255), rec.last.R, "input 255 maps to Max duty cycle")
}

func TestRemapCubicClampsToByteRange(t *testing.T) {
	require.Equal(t, uint8(0), remapCubic(0, ChannelRange{Min: -0.5, Max: 0.5}))
	require.Equal(t, uint8(255), remapCubic(255, ChannelRange{Min: 0.5, Max: 1.5}))
}

func TestRemapCubicIsMonotonicForPositiveRange(t *testing.T) {
	rng := ChannelRange{Min: 0.1, Max: 0.9}
	prev := remapCubic(0, rng)
	for v := 1; v <= 255; v++ {
		cur := remapCubic(uint8(v), rng)
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}
