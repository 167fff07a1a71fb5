package blink

import "math"

// Controller owns on/off timing state and pushes it to an injected sink.
// It never reads time itself: the caller passes the current value of a
// free-running millisecond counter to Update on every iteration of its
// control loop. One logical owner per controller; no internal locking.
type Controller struct {
	sink        Sink
	onDuration  uint32 // ms the LED stays on
	offDuration uint32 // ms the LED stays off
	lastToggle  uint32 // counter value at the last state change
	on          bool
	counts      Counts
}

// New creates a controller in the OFF state with the toggle timestamp at
// zero. The sink is borrowed, not owned — it must remain valid for the
// controller's lifetime. Durations may be zero: a zero-duration state is
// left on the very next Update call, so on=off=0 toggles once per call.
func New(sink Sink, onMs, offMs uint32) *Controller {
	return &Controller{
		sink:        sink,
		onDuration:  onMs,
		offDuration: offMs,
	}
}

// Update advances the controller to currentMs and writes the resulting
// state to the sink. The counter is expected to increase until it
// overflows past MaxUint32 and wraps to zero (roughly every 49.7 days
// for a hardware millis counter); elapsed time is computed correctly
// across the wrap. The state changes at most once per call, and the sink
// is written exactly once per call whether or not a toggle occurred, so
// repeated calls with the same timestamp re-apply the same state rather
// than double-toggling. Update cannot fail.
func (c *Controller) Update(currentMs uint32) {
	var elapsed uint32
	if currentMs >= c.lastToggle {
		elapsed = currentMs - c.lastToggle
	} else {
		// Counter wrapped: remaining distance to the top of the range,
		// plus however far past zero the new reading is.
		elapsed = (math.MaxUint32 - c.lastToggle) + currentMs + 1
	}

	target := c.offDuration
	if c.on {
		target = c.onDuration
	}

	if elapsed >= target {
		c.on = !c.on
		c.lastToggle = currentMs
		if c.on {
			c.counts.On++
		} else {
			c.counts.Off++
		}
	}

	c.sink.Set(c.on)
}

// Reset returns the controller to its initial state: OFF, toggle
// timestamp and counts zeroed. The sink is written synchronously, not
// deferred to the next Update.
func (c *Controller) Reset() {
	c.on = false
	c.lastToggle = 0
	c.counts = Counts{}
	c.sink.Set(false)
}

// IsOn returns the current logical state.
func (c *Controller) IsOn() bool {
	return c.on
}

// CurrentState returns the current logical state as a State value.
func (c *Controller) CurrentState() State {
	if c.on {
		return StateOn
	}
	return StateOff
}

// LastToggleTime returns the counter value at which the state last
// changed, or 0 after construction or Reset.
func (c *Controller) LastToggleTime() uint32 {
	return c.lastToggle
}

// OnDuration returns the configured on duration in milliseconds.
func (c *Controller) OnDuration() uint32 {
	return c.onDuration
}

// OffDuration returns the configured off duration in milliseconds.
func (c *Controller) OffDuration() uint32 {
	return c.offDuration
}

// CountsSnapshot returns a copy of the toggle counts.
func (c *Controller) CountsSnapshot() Counts {
	return c.counts
}
