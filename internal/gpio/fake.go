package gpio

// FakePin is a test double that records every state written to it.
type FakePin struct {
	// History contains every value passed to Set, in order.
	History []bool

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakePin creates an empty FakePin.
func NewFakePin() *FakePin {
	return &FakePin{}
}

// Set records the written state.
func (f *FakePin) Set(on bool) {
	f.History = append(f.History, on)
}

// State returns the most recently written state, or false if nothing
// has been written yet.
func (f *FakePin) State() bool {
	if len(f.History) == 0 {
		return false
	}
	return f.History[len(f.History)-1]
}

// Writes returns the number of Set calls recorded.
func (f *FakePin) Writes() int {
	return len(f.History)
}

// Close marks the pin as closed.
func (f *FakePin) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded writes.
func (f *FakePin) Reset() {
	f.History = nil
	f.Closed = false
}
