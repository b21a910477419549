package exec

import "github.com/itohio/ledctrl/bytecode"

// Opcode is one byte of the instruction set. Values are part of the wire
// ABI and must never be renumbered.
type Opcode = uint8

const (
	OpEnd                      Opcode = 0x00
	OpNop                      Opcode = bytecode.NOP
	OpSleep                    Opcode = 0x02
	OpWaitUntil                Opcode = 0x03
	OpSetColor                 Opcode = 0x04
	OpSetGray                  Opcode = 0x05
	OpSetBlack                 Opcode = 0x06
	OpSetWhite                 Opcode = 0x07
	OpFadeToColor              Opcode = 0x08
	OpFadeToGray               Opcode = 0x09
	OpFadeToBlack              Opcode = 0x0A
	OpFadeToWhite              Opcode = 0x0B
	OpLoopBegin                Opcode = 0x0C
	OpLoopEnd                  Opcode = 0x0D
	OpResetClock               Opcode = 0x0E
	OpSetColorFromChannels     Opcode = 0x10
	OpFadeToColorFromChannels  Opcode = 0x11
	OpJump                     Opcode = 0x12
	OpTriggeredJump            Opcode = 0x13
)

// TriggeredJump param byte layout: x S R F CCCC (MSB to LSB).
const (
	triggeredJumpChannelMask  = 0x0F
	triggeredJumpFallingBit   = 0x10
	triggeredJumpRisingBit    = 0x20
	triggeredJumpOneShotBit   = 0x40
)
