// Package config loads daemon configuration from a TOML file.
package config

import (
	"encoding"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/sweeney/blink-led/internal/gpio"
)

// Output selects where LED state is written.
type Output string

const (
	// OutputConsole renders LED state to the terminal with ANSI colors.
	OutputConsole Output = "console"
	// OutputGPIO drives a real pin through the GPIO character device.
	OutputGPIO Output = "gpio"
)

// Config is the blink-led daemon configuration.
type Config struct {
	// OnMs is how long the LED stays on, in milliseconds.
	OnMs uint32 `toml:"on_ms"`
	// OffMs is how long the LED stays off, in milliseconds.
	OffMs uint32 `toml:"off_ms"`
	// Poll is the controller update interval.
	Poll Duration `toml:"poll"`
	// RunFor bounds the total run time. Zero means run until signalled.
	RunFor Duration `toml:"run_for"`
	// Output is the sink to drive: "console" or "gpio".
	Output Output `toml:"output"`
	// Pin is the GPIO line offset (BCM numbering), gpio output only.
	Pin int `toml:"pin"`
	// Chip is the GPIO character device, gpio output only.
	Chip string `toml:"chip"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		OnMs:   1000,
		OffMs:  500,
		Poll:   Duration(50 * time.Millisecond),
		Output: OutputConsole,
		Pin:    gpio.DefaultPinLED,
		Chip:   gpio.DefaultChip,
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config file")
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a TOML configuration from r on top of the defaults and
// validates it.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputConsole, OutputGPIO:
	default:
		return fmt.Errorf("unknown output %q", c.Output)
	}

	if c.Poll <= 0 {
		return errors.New("poll interval must be positive")
	}
	if c.RunFor < 0 {
		return errors.New("run_for must not be negative")
	}
	if c.Output == OutputGPIO && c.Pin < 0 {
		return fmt.Errorf("invalid pin %d", c.Pin)
	}

	return nil
}

// Duration is a duration that can be parsed from TOML.
type Duration time.Duration

var (
	_ encoding.TextUnmarshaler = (*Duration)(nil)
	_ encoding.TextMarshaler   = (*Duration)(nil)
)

func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
