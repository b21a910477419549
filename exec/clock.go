package exec

// Clock provides the wall-clock time the scheduler measures against, in
// firmware milliseconds (free-running, wraps like the original's
// unsigned long millis()).
type Clock interface {
	NowMillis() uint32
}

// ManualClock is a Clock a test can advance explicitly; it has no
// dependency on real time and needs no hardware.
type ManualClock struct {
	now uint32
}

// NewManualClock creates a clock starting at t=0.
func NewManualClock() *ManualClock { return &ManualClock{} }

func (c *ManualClock) NowMillis() uint32 { return c.now }

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms uint32) { c.now += ms }

// Set moves the clock to an absolute value; only legal to set it non-
// decreasingly in the field, but tests sometimes rewind it deliberately.
func (c *ManualClock) Set(ms uint32) { c.now = ms }
