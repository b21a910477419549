// Package config carries the board-independent Config record plus one
// pin file per target board (go:build-tagged, e.g. pins_pico.go), so a
// hardware variant is a single struct value read once at boot rather than
// a maze of preprocessor-selected config.h files.
package config

import "github.com/itohio/ledctrl/hal"

// Config is threaded explicitly into every constructor that needs it;
// there is no package-level mutable config singleton.
type Config struct {
	// NumChannels is the number of RC/analog channels the signal source
	// exposes, and the bound checked against SET_COLOR_FROM_CHANNELS and
	// TRIGGERED_JUMP channel indices.
	NumChannels int

	// TriggerTableSize is the number of trigger slots available to
	// TRIGGERED_JUMP.
	TriggerTableSize int

	// LoopStackDepth is the maximum nesting depth of LOOP_BEGIN/LOOP_END.
	LoopStackDepth int

	// BytecodeCapacity is the writable size of the RAM bytecode store.
	BytecodeCapacity int

	// ChannelRanges are the per-channel (R, G, B, W) PWM voltage
	// compensation ranges; a zero value for a channel disables
	// compensation for it (DefaultChannelRange).
	ChannelRanges [4]hal.ChannelRange

	// EdgeMidLow, EdgeMidHigh and EdgeDebounceMs configure every channel's
	// hysteretic edge detector identically.
	EdgeMidLow     uint8
	EdgeMidHigh    uint8
	EdgeDebounceMs uint32

	// RequireStartupSignal gates firmware boot on a "?READY?\n" exchange
	// over the serial port before the main loop starts, so a host tool
	// attaching late never races the first few bytecode steps.
	RequireStartupSignal bool

	// CalibrationDurationMs is the internal-clock duration a boot-time
	// calibration run is expected to take; after releasing the boot-time
	// hold, the operator times exactly this long by an external stopwatch
	// and then presses the calibration button again, a procedure modeled
	// on the original firmware's
	// CLOCK_SKEW_CALIBRATION_DURATION_IN_MINUTES build option.
	CalibrationDurationMs uint32
}

// Default returns the configuration this firmware ships with absent any
// board-specific override.
func Default() Config {
	return Config{
		NumChannels:      4,
		TriggerTableSize: 8,
		LoopStackDepth:   4,
		BytecodeCapacity: 2048,
		ChannelRanges: [4]hal.ChannelRange{
			hal.DefaultChannelRange,
			hal.DefaultChannelRange,
			hal.DefaultChannelRange,
			hal.DefaultChannelRange,
		},
		EdgeMidLow:            64,
		EdgeMidHigh:           192,
		EdgeDebounceMs:        0,
		RequireStartupSignal: false,
		CalibrationDurationMs: 10 * 60 * 1000,
	}
}
