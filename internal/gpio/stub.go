//go:build !linux

package gpio

import "errors"

// RealPin is not available on non-Linux platforms.
type RealPin struct{}

// NewRealPin returns an error on non-Linux platforms.
func NewRealPin(chip string, offset int) (*RealPin, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

// Set does nothing on non-Linux platforms.
func (p *RealPin) Set(on bool) {}

// Close is not implemented on non-Linux platforms.
func (p *RealPin) Close() error {
	return nil
}
