package exec

import (
	"github.com/itohio/ledctrl/color"
	"github.com/itohio/ledctrl/errs"
	"github.com/itohio/ledctrl/signal"
)

func (e *Executor) dispatch() {
	opcode := e.store.Next()

	switch opcode {
	case OpEnd:
		e.ended = true

	case OpNop:
		// no-op

	case OpSleep:
		e.scheduleDuration(e.readDurationMs())

	case OpWaitUntil:
		e.scheduleWaitUntil(uint32(e.readVarint()))

	case OpSetColor:
		r, g, b := e.store.Next(), e.store.Next(), e.store.Next()
		ms := e.readDurationMs()
		e.scheduleDuration(ms)
		e.writeColor(color.Color{R: r, G: g, B: b})

	case OpSetGray:
		g := e.store.Next()
		ms := e.readDurationMs()
		e.scheduleDuration(ms)
		e.writeColor(color.Color{R: g, G: g, B: g})

	case OpSetBlack:
		ms := e.readDurationMs()
		e.scheduleDuration(ms)
		e.writeColor(color.Black())

	case OpSetWhite:
		ms := e.readDurationMs()
		e.scheduleDuration(ms)
		e.writeColor(color.White())

	case OpFadeToColor:
		r, g, b := e.store.Next(), e.store.Next(), e.store.Next()
		ms := e.readDurationMs()
		e.startFade(color.Color{R: r, G: g, B: b}, ms)

	case OpFadeToGray:
		g := e.store.Next()
		ms := e.readDurationMs()
		e.startFade(color.Color{R: g, G: g, B: g}, ms)

	case OpFadeToBlack:
		ms := e.readDurationMs()
		e.startFade(color.Black(), ms)

	case OpFadeToWhite:
		ms := e.readDurationMs()
		e.startFade(color.White(), ms)

	case OpLoopBegin:
		iter := e.readVarint()
		addr, ok := e.store.Tell()
		if !ok {
			e.setError(errs.OperationNotSupported)
			e.ended = true
			return
		}
		e.loops.Begin(uint32(addr), uint32(iter))

	case OpLoopEnd:
		if addr, jump := e.loops.End(); jump {
			if err := e.store.Seek(int(addr)); err != nil {
				e.setError(errs.InvalidAddress)
			}
		}

	case OpResetClock:
		e.resetClock(e.currentCommandStart)

	case OpSetColorFromChannels:
		cr, cg, cb := e.store.Next(), e.store.Next(), e.store.Next()
		ms := e.readDurationMs()
		if c, ok := e.colorFromChannels(cr, cg, cb); ok {
			e.scheduleDuration(ms)
			e.writeColor(c)
		}

	case OpFadeToColorFromChannels:
		cr, cg, cb := e.store.Next(), e.store.Next(), e.store.Next()
		ms := e.readDurationMs()
		if c, ok := e.colorFromChannels(cr, cg, cb); ok {
			e.startFade(c, ms)
		}

	case OpJump:
		addr := e.readVarint()
		if int(addr) > e.store.Len() {
			e.setError(errs.InvalidAddress)
			return
		}
		if err := e.store.Seek(int(addr)); err != nil {
			e.setError(errs.InvalidAddress)
			return
		}
		e.loops.Clear()

	case OpTriggeredJump:
		e.dispatchTriggeredJump()

	default:
		e.setError(errs.InvalidCommandCode)
	}
}

// startFade begins a transition to target lasting ms of internal (show)
// time; a zero-duration fade sets the color immediately and leaves no
// active transition, matching the boundary behavior spec'd for
// zero-length fades. The Transition itself steps against the wall clock,
// so it must run for nextWakeup-currentCommandStart wall-clock ms, not
// ms: under a calibrated skew != 1 those two only match by coincidence,
// and the fade has to land exactly on the next dispatch regardless.
func (e *Executor) startFade(target color.Color, ms uint32) {
	e.scheduleDuration(ms)
	if ms == 0 {
		e.writeColor(target)
		return
	}
	e.fade.Start(e.currentColor, target, e.nextWakeup-e.currentCommandStart, e.currentCommandStart)
}

func (e *Executor) dispatchTriggeredJump() {
	params := e.store.Next()
	channel := params & triggeredJumpChannelMask
	falling := params&triggeredJumpFallingBit != 0
	rising := params&triggeredJumpRisingBit != 0
	oneShot := params&triggeredJumpOneShotBit != 0

	if !rising && !falling {
		if tr, ok := e.triggers.FindForChannel(channel); ok {
			tr.Disable()
		}
		return
	}

	addr := e.readVarint()
	if int(addr) > e.store.Len() {
		e.setError(errs.InvalidAddress)
		return
	}
	if int(channel) >= e.numChannels {
		e.setError(errs.InvalidChannelIndex)
		return
	}
	tr, ok := e.triggers.FindForChannel(channel)
	if !ok {
		e.setError(errs.NoMoreAvailableTriggers)
		return
	}

	mask := signal.EdgeMaskNone
	if rising {
		mask |= signal.EdgeMaskRising
	}
	if falling {
		mask |= signal.EdgeMaskFalling
	}
	tr.Watch(e.source, channel, mask, signal.Action{Type: signal.ActionJumpTo, Address: uint32(addr)}, oneShot)
}
