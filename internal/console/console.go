// Package console provides an LED sink that renders state to a terminal
// with ANSI color codes. The formatting is separated from the I/O so it
// can be asserted on without capturing console output.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/sweeney/blink-led/internal/clock"
)

// ANSI escape sequences used by Format.
const (
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// Pin writes a timestamped, colored state line to w on every Set.
// Timestamps come from the injected clock so output is deterministic
// under test.
type Pin struct {
	w     io.Writer
	clk   clock.Clock
	state bool
	last  string
}

// NewPin creates a console pin writing to w, timestamped by clk.
func NewPin(w io.Writer, clk clock.Clock) *Pin {
	return &Pin{w: w, clk: clk}
}

// Set records the state and writes a formatted line. Write errors are
// ignored: the sink contract has no failure mode visible to the caller,
// and there is no useful recovery from a failed terminal write.
func (p *Pin) Set(on bool) {
	p.state = on
	p.last = Format(p.clk.Millis(), on)
	fmt.Fprintln(p.w, p.last)
}

// State returns the most recently set state.
func (p *Pin) State() bool {
	return p.state
}

// LastOutput returns the last formatted line, without the trailing
// newline. Empty until the first Set.
func (p *Pin) LastOutput() string {
	return p.last
}

// Format renders a state line like "[1500ms] LED: ███ ON ███", green
// for on and red for off.
func Format(timestampMs uint32, on bool) string {
	if on {
		return fmt.Sprintf("[%dms] LED: %s███ ON ███%s", timestampMs, ansiGreen, ansiReset)
	}
	return fmt.Sprintf("[%dms] LED: %s▓▓▓ OFF ▓▓▓%s", timestampMs, ansiRed, ansiReset)
}

// StripANSI removes ANSI escape sequences so tests can assert on the
// visible text.
func StripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
