//go:build linux

package gpio

import (
	"fmt"
	"log"

	"github.com/warthog618/go-gpiocdev"
)

// RealPin drives an LED on actual hardware using the Linux GPIO
// character device.
type RealPin struct {
	line *gpiocdev.Line
}

// NewRealPin requests the given line offset as an output, initially
// inactive (LED off).
func NewRealPin(chip string, offset int) (*RealPin, error) {
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("request LED pin %d: %w", offset, err)
	}
	return &RealPin{line: line}, nil
}

// Set drives the line active or inactive. Write failures are logged and
// swallowed here: the sink contract exposes no failure mode to the
// controller, and a transient write error should not stop the blink loop.
func (p *RealPin) Set(on bool) {
	v := 0
	if on {
		v = 1
	}
	if err := p.line.SetValue(v); err != nil {
		log.Printf("gpio: set LED pin: %v", err)
	}
}

// Close releases the GPIO line.
// Reconfigures the pin to input (matching Pi boot defaults) before
// closing to ensure clean state for system shutdown/reboot.
func (p *RealPin) Close() error {
	var errs []error

	if p.line != nil {
		if err := p.line.Reconfigure(gpiocdev.AsInput); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure LED pin: %w", err))
		}
		if err := p.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close LED pin: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
