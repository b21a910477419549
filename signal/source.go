// Package signal models the analog channels the bytecode program can read
// (typically an RC receiver's decoded PPM/PWM frames), the hysteretic edge
// detector that turns a noisy channel into clean rising/falling events, and
// the trigger table that binds channel edges to bytecode jumps.
package signal

// Source is an abstract provider of N analog channels, each readable as a
// raw byte-level sample or as a debounced/averaged filtered value.
type Source interface {
	NumChannels() int
	ChannelValue(i int) uint8
	// FilteredChannelValue averages recent samples, excluding whichever
	// slot is currently being written, so callers never observe a
	// half-updated reading.
	FilteredChannelValue(i int) uint8
	Active() bool
	DumpDebug() string
}
