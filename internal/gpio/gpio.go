// Package gpio provides an LED output pin with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// Pin definitions (BCM numbering)
const (
	// DefaultPinLED is the default line offset for the LED output.
	DefaultPinLED = 17

	// DefaultChip is the GPIO character device for the Raspberry Pi
	// header pins.
	DefaultChip = "gpiochip0"
)
