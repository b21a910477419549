package signal

// ActionType discriminates what a fired trigger does to the executor.
type ActionType uint8

const (
	ActionResume ActionType = iota
	ActionJumpTo
)

// Action fully describes what happens when a trigger fires.
type Action struct {
	Type    ActionType
	Address uint32 // only meaningful for ActionJumpTo
}

// EdgeMask selects which edges a trigger reacts to.
type EdgeMask uint8

const (
	EdgeMaskNone    EdgeMask = 0
	EdgeMaskRising  EdgeMask = 1 << 0
	EdgeMaskFalling EdgeMask = 1 << 1
	EdgeMaskBoth             = EdgeMaskRising | EdgeMaskFalling
)

// Trigger binds one signal source channel to an action, firing it when the
// channel's edge detector reports a matching edge.
type Trigger struct {
	source   Source
	channel  uint8
	mask     EdgeMask
	oneShot  bool
	action   Action
	detector EdgeDetector

	midLow, midHigh uint8
	debounceMs      uint32
}

// configureEdge installs the hysteresis band and debounce window every
// Watch call on this slot will arm its detector with; called once by
// Table at construction time so every slot shares one board's config.
func (t *Trigger) configureEdge(midLow, midHigh uint8, debounceMs uint32) {
	t.midLow, t.midHigh, t.debounceMs = midLow, midHigh, debounceMs
}

// Active reports whether the trigger is currently armed.
func (t *Trigger) Active() bool {
	return t.source != nil && t.mask != EdgeMaskNone
}

// ChannelIndex returns the channel this trigger watches.
func (t *Trigger) ChannelIndex() uint8 { return t.channel }

// Action returns the action that will run when the trigger fires.
func (t *Trigger) Action() Action { return t.action }

// Disable deactivates the trigger; it stops matching FindForChannel for its
// old channel and becomes available for reuse.
func (t *Trigger) Disable() {
	t.source = nil
	t.mask = EdgeMaskNone
}

// Watch arms the trigger to observe channel on source, firing action when
// an edge in mask is detected. oneShot triggers disable themselves after
// firing once; permanent triggers stay armed.
func (t *Trigger) Watch(source Source, channel uint8, mask EdgeMask, action Action, oneShot bool) {
	t.source = source
	t.channel = channel
	t.mask = mask
	t.action = action
	t.oneShot = oneShot
	t.detector = *NewEdgeDetector(t.midLow, t.midHigh, t.debounceMs)
}

// CheckAndFire samples the watched channel, feeds the edge detector, and
// reports whether a matching edge fired this tick along with the action to
// run. One-shot triggers disable themselves before returning.
func (t *Trigger) CheckAndFire(now uint32) (fired bool, action Action) {
	if !t.Active() {
		return false, Action{}
	}
	sample := t.source.FilteredChannelValue(int(t.channel))
	edge := t.detector.Feed(sample, now)
	switch {
	case edge == EdgeRising && t.mask&EdgeMaskRising != 0:
	case edge == EdgeFalling && t.mask&EdgeMaskFalling != 0:
	default:
		return false, Action{}
	}
	action = t.action
	if t.oneShot {
		t.Disable()
	}
	return true, action
}
