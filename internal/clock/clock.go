// Package clock provides millisecond counter time sources.
// The real implementation counts milliseconds of wall time since it was
// created, truncated to 32 bits like a hardware millis counter.
// The fake implementation allows tests to simulate arbitrary time spans,
// including counter wraparound, without real delays.
package clock

import "time"

// Clock reports a free-running millisecond counter. The value increases
// until it overflows uint32 and wraps back to zero.
type Clock interface {
	Millis() uint32
}

// Monotonic counts milliseconds since creation or the last Reset,
// backed by the runtime's monotonic clock.
type Monotonic struct {
	start time.Time
}

// NewMonotonic creates a Monotonic starting at zero.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// Millis returns milliseconds elapsed since creation or the last Reset,
// truncated to 32 bits.
func (m *Monotonic) Millis() uint32 {
	return uint32(time.Since(m.start).Milliseconds())
}

// Reset restarts the counter from zero.
func (m *Monotonic) Reset() {
	m.start = time.Now()
}

// Fake is a test clock advanced manually. The zero value reads 0.
// Not safe for concurrent use.
type Fake struct {
	now uint32
}

// Millis returns the current fake counter value.
func (f *Fake) Millis() uint32 {
	return f.now
}

// Advance moves the counter forward. The addition wraps at MaxUint32
// exactly like the hardware counter it stands in for.
func (f *Fake) Advance(ms uint32) {
	f.now += ms
}

// Set sets an absolute counter value, useful for wraparound edge cases.
func (f *Fake) Set(ms uint32) {
	f.now = ms
}

// Reset returns the counter to zero.
func (f *Fake) Reset() {
	f.now = 0
}
