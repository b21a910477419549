//go:build rp2040

package dev

import (
	_ "unsafe"
)

//go:linkname ticks runtime.ticks
func ticks() uint64

//go:linkname ticksToNanoseconds runtime.ticksToNanoseconds
func ticksToNanoseconds(ticks uint64) int64

// HWClock is an exec.Clock backed by the runtime's free-running tick
// counter. NowMillis wraps on overflow exactly like the firmware's
// original unsigned long millis() would.
type HWClock struct{}

// NowMillis returns milliseconds since boot, truncated to uint32.
func (HWClock) NowMillis() uint32 {
	return uint32(ticksToNanoseconds(ticks()) / 1e6)
}
