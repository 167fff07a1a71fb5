// Command blink-led drives an LED blink controller against a console
// visualizer or a real GPIO pin.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/sweeney/blink-led/internal/blink"
	"github.com/sweeney/blink-led/internal/clock"
	"github.com/sweeney/blink-led/internal/config"
	"github.com/sweeney/blink-led/internal/console"
	"github.com/sweeney/blink-led/internal/gpio"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "TOML configuration file")
	on := pflag.Uint32("on", 0, "on duration in ms (overrides config)")
	off := pflag.Uint32("off", 0, "off duration in ms (overrides config)")
	output := pflag.String("output", "", "output sink: console or gpio (overrides config)")
	runFor := pflag.Duration("run-for", 0, "stop after this long, 0 = until signalled (overrides config)")

	pflag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}

	if pflag.CommandLine.Changed("on") {
		cfg.OnMs = *on
	}
	if pflag.CommandLine.Changed("off") {
		cfg.OffMs = *off
	}
	if pflag.CommandLine.Changed("output") {
		cfg.Output = config.Output(*output)
	}
	if pflag.CommandLine.Changed("run-for") {
		cfg.RunFor = config.Duration(*runFor)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("fatal: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

// loadConfig returns the defaults when no file is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	return config.Load(path)
}

func run(cfg *config.Config) error {
	clk := clock.NewMonotonic()

	var sink blink.Sink
	switch cfg.Output {
	case config.OutputGPIO:
		pin, err := gpio.NewRealPin(cfg.Chip, cfg.Pin)
		if err != nil {
			return fmt.Errorf("init gpio: %w", err)
		}
		defer pin.Close()
		sink = pin
	default:
		sink = console.NewPin(os.Stdout, clk)
	}

	ctrl := blink.New(sink, cfg.OnMs, cfg.OffMs)

	log.Printf("started: on=%dms off=%dms poll=%v output=%s",
		cfg.OnMs, cfg.OffMs, time.Duration(cfg.Poll), cfg.Output)

	ticker := time.NewTicker(time.Duration(cfg.Poll))
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var done <-chan time.Time
	if cfg.RunFor > 0 {
		timer := time.NewTimer(time.Duration(cfg.RunFor))
		defer timer.Stop()
		done = timer.C
	}

	return runLoop(ctrl, clk, ticker.C, done, sigCh)
}

// runLoop drives the controller until a signal arrives or the run timer
// fires. Shutdown resets the controller so the sink is left off.
func runLoop(ctrl *blink.Controller, clk clock.Clock, tick, done <-chan time.Time, sig <-chan os.Signal) error {
	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			shutdown(ctrl)
			return nil

		case <-done:
			log.Printf("run time limit reached, shutting down")
			shutdown(ctrl)
			return nil

		case <-tick:
			ctrl.Update(clk.Millis())
		}
	}
}

// shutdown logs a toggle summary and forces the LED off.
// Counts are read before Reset zeroes them.
func shutdown(ctrl *blink.Controller) {
	counts := ctrl.CountsSnapshot()
	ctrl.Reset()
	log.Printf("toggles: on=%d off=%d", counts.On, counts.Off)
}
