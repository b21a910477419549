// Package errs carries the bytecode-level error taxonomy that the executor
// and the serial protocol parser report back over the wire. These values
// are part of the ABI: a host tool reads the decimal code straight off the
// serial port, so the integer values must stay stable once shipped.
package errs

// Code is the wire-stable error taxonomy. Values are appended, never
// reordered.
type Code uint8

const (
	Success Code = iota
	InvalidCommandCode
	OperationNotSupported
	OperationNotImplemented
	InvalidAddress
	InvalidChannelIndex
	NoBytecodeInEEPROM
	NoBytecodeStore
	NoMoreAvailableTriggers
	InvalidTriggerActionType
	SerialProtocolParseError
	SerialProtocolInvalidState
)

var names = [...]string{
	"SUCCESS",
	"INVALID_COMMAND_CODE",
	"OPERATION_NOT_SUPPORTED",
	"OPERATION_NOT_IMPLEMENTED",
	"INVALID_ADDRESS",
	"INVALID_CHANNEL_INDEX",
	"NO_BYTECODE_IN_EEPROM",
	"NO_BYTECODE_STORE",
	"NO_MORE_AVAILABLE_TRIGGERS",
	"INVALID_TRIGGER_ACTION_TYPE",
	"SERIAL_PROTOCOL_PARSE_ERROR",
	"SERIAL_PROTOCOL_INVALID_STATE",
}

func (c Code) String() string {
	if int(c) < len(names) {
		return names[c]
	}
	return "UNKNOWN_ERROR"
}

// Fatal reports whether the error leaves the executor in a state where it
// must stop dispatching further opcodes.
func (c Code) Fatal() bool {
	switch c {
	case InvalidCommandCode, InvalidAddress, NoBytecodeInEEPROM, NoBytecodeStore:
		return true
	default:
		return false
	}
}

// Sink is notified once whenever the current error transitions away from
// Success. It carries no other responsibility, and it is never a
// process-wide singleton: callers pass the Sink they want into whichever
// component needs to report through it.
type Sink interface {
	Report(Code)
}

// NopSink discards every report; the default when no indicator is wired.
type NopSink struct{}

func (NopSink) Report(Code) {}

// ChanSink delivers reports to a channel, used by tests that want to
// observe transitions without a real indicator pin attached.
type ChanSink chan Code

func (s ChanSink) Report(c Code) {
	select {
	case s <- c:
	default:
	}
}

// Tracker turns a stream of codes into "did the code just change" events,
// so a Sink (or a serial writer) only hears about a transition once, not on
// every tick that the error persists.
type Tracker struct {
	last Code
}

// Update records the latest code and reports whether it differs from the
// previously recorded one.
func (t *Tracker) Update(code Code) bool {
	if code == t.last {
		return false
	}
	t.last = code
	return true
}

// Current returns the last code recorded by Update.
func (t *Tracker) Current() Code {
	return t.last
}
