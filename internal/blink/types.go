// Package blink contains pure LED blink timing logic.
// This package has NO external dependencies (no GPIO, OS, or time.Sleep).
// Time is always supplied by the caller as a millisecond counter value,
// so everything here is deterministic under test.
package blink

// Sink consumes a boolean LED state. Implementations stand in for a
// hardware pin, a console visualizer, or a test double. Set has no
// failure mode visible to the controller — a sink whose underlying
// write can fail must handle that itself.
type Sink interface {
	Set(on bool)
}

// State represents the logical state of the LED.
type State string

const (
	StateOn  State = "ON"
	StateOff State = "OFF"
)

// Counts tracks the number of toggles in each direction since
// construction or the last Reset.
type Counts struct {
	On  int // transitions into the ON state
	Off int // transitions into the OFF state
}
