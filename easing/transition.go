package easing

import "github.com/itohio/ledctrl/color"

// Sink receives the interpolated color at each step of an active
// transition. Modeled as a plain function rather than a callable object:
// the Transition owns (start, end) and calls the sink with the lerp result.
type Sink func(color.Color)

// Transition holds the most recent (start, end) color pair and an easing
// mode, and advances a single active interpolation. The clock unit is
// firmware milliseconds (wraps like the original's unsigned long millis()).
type Transition struct {
	active     bool
	start      uint32
	duration   uint32
	mode       Mode
	startColor color.Color
	endColor   color.Color
}

// Active reports whether a transition is currently running.
func (t *Transition) Active() bool { return t.active }

// Mode returns the easing mode used by the current/most recent transition.
func (t *Transition) Mode() Mode { return t.mode }

// SetMode changes the easing mode applied by future Start calls.
func (t *Transition) SetMode(m Mode) { t.mode = m }

// EndColor returns the color the transition is heading towards (or, once
// finished, the color it latched on completion).
func (t *Transition) EndColor() color.Color { return t.endColor }

// ProgressPreEasing returns the linear progress in [0,1] at clock, before
// the easing function is applied.
func (t *Transition) ProgressPreEasing(clock uint32) float32 {
	if clock < t.start {
		return 0
	}
	if t.duration == 0 {
		return 1
	}
	elapsed := clock - t.start
	p := float32(elapsed) / float32(t.duration)
	if p > 1 {
		p = 1
	}
	return p
}

// ProgressPostEasing returns ProgressPreEasing(clock) passed through the
// transition's easing function; the result may be negative or exceed 1 for
// overshooting modes such as InBack or OutElastic.
func (t *Transition) ProgressPostEasing(clock uint32) float32 {
	return Apply(t.mode, t.ProgressPreEasing(clock))
}

// Start begins a transition from startColor to endColor lasting duration
// ms, with the clock currently reading startTime.
func (t *Transition) Start(startColor, endColor color.Color, duration uint32, startTime uint32) {
	t.startColor = startColor
	t.endColor = endColor
	t.start = startTime
	t.duration = duration
	t.active = true
}

// Step advances the transition to clock, reporting the interpolated color
// to sink. It returns false once the transition has completed, latching
// startColor to endColor so a subsequent transition starts from the color
// that was actually reached.
func (t *Transition) Step(clock uint32, sink Sink) bool {
	if !t.active {
		return false
	}
	pre := t.ProgressPreEasing(clock)
	post := Apply(t.mode, pre)
	if sink != nil {
		sink(color.Lerp(t.startColor, t.endColor, post))
	}
	if pre >= 1 {
		t.active = false
		t.startColor = t.endColor
	}
	return t.active
}
