package signal

// Table is a fixed-size set of trigger slots, at most one of which may be
// active for any given channel index.
type Table struct {
	triggers []Trigger
}

// NewTable allocates a table with the given fixed number of slots, all
// sharing one edge detector configuration (hysteresis band and debounce
// window) applied whenever a slot is (re)armed by Watch.
func NewTable(size int, midLow, midHigh uint8, debounceMs uint32) *Table {
	triggers := make([]Trigger, size)
	for i := range triggers {
		triggers[i].configureEdge(midLow, midHigh, debounceMs)
	}
	return &Table{triggers: triggers}
}

// Size returns the configured number of slots.
func (t *Table) Size() int { return len(t.triggers) }

// FindForChannel returns the existing active slot for channel if one is
// already watching it; otherwise the first inactive slot, so a new watch
// can be armed there. ok is false if the table is full of other active
// channels.
func (t *Table) FindForChannel(channel uint8) (slot *Trigger, ok bool) {
	var firstInactive *Trigger
	for i := range t.triggers {
		tr := &t.triggers[i]
		if tr.Active() && tr.ChannelIndex() == channel {
			return tr, true
		}
		if firstInactive == nil && !tr.Active() {
			firstInactive = tr
		}
	}
	if firstInactive != nil {
		return firstInactive, true
	}
	return nil, false
}

// CheckAndFireAll polls every active trigger once and invokes fire for
// each one that matched an edge this tick, in slot order.
func (t *Table) CheckAndFireAll(now uint32, fire func(Action)) {
	for i := range t.triggers {
		tr := &t.triggers[i]
		if fired, action := tr.CheckAndFire(now); fired {
			fire(action)
		}
	}
}
