package internal

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/sweeney/blink-led/internal/blink"
	"github.com/sweeney/blink-led/internal/clock"
	"github.com/sweeney/blink-led/internal/config"
	"github.com/sweeney/blink-led/internal/console"
	"github.com/sweeney/blink-led/internal/gpio"
)

// TestIntegrationConfigToFakePin tests the complete flow from a parsed
// config through the controller to a recorded pin, simulating the main
// polling loop with a fake clock.
func TestIntegrationConfigToFakePin(t *testing.T) {
	doc := `
on_ms = 100
off_ms = 50
poll = "25ms"
output = "gpio"
`
	cfg, err := config.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}

	pin := gpio.NewFakePin()
	ctrl := blink.New(pin, cfg.OnMs, cfg.OffMs)

	var clk clock.Fake
	poll := uint32(time.Duration(cfg.Poll).Milliseconds())

	// Simulate the main loop.
	// t=0,25 OFF; t=50,75,100,125 ON (toggle at 50, on for 100ms);
	// t=150,175 OFF (toggle at 150).
	want := []bool{false, false, true, true, true, true, false, false}
	for i, w := range want {
		ctrl.Update(clk.Millis())
		if pin.State() != w {
			t.Errorf("tick %d (t=%dms): expected sink=%v, got %v", i, clk.Millis(), w, pin.State())
		}
		if pin.Writes() != i+1 {
			t.Fatalf("tick %d: expected %d sink writes, got %d", i, i+1, pin.Writes())
		}
		clk.Advance(poll)
	}

	counts := ctrl.CountsSnapshot()
	if counts.On != 1 || counts.Off != 1 {
		t.Errorf("expected 1 toggle each way, got %+v", counts)
	}
}

// TestIntegrationConsolePin drives the controller against the console
// sink and checks the rendered transcript.
func TestIntegrationConsolePin(t *testing.T) {
	var buf bytes.Buffer
	var clk clock.Fake

	pin := console.NewPin(&buf, &clk)
	ctrl := blink.New(pin, 100, 100)

	for i := 0; i < 4; i++ {
		ctrl.Update(clk.Millis())
		clk.Advance(100)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"[0ms] LED: ▓▓▓ OFF ▓▓▓",
		"[100ms] LED: ███ ON ███",
		"[200ms] LED: ▓▓▓ OFF ▓▓▓",
		"[300ms] LED: ███ ON ███",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), buf.String())
	}
	for i, w := range want {
		if got := console.StripANSI(lines[i]); got != w {
			t.Errorf("line %d: got %q, want %q", i, got, w)
		}
	}
}

// TestIntegrationWraparound runs the loop across the counter wrap and
// verifies the blink period is unaffected.
func TestIntegrationWraparound(t *testing.T) {
	pin := gpio.NewFakePin()
	ctrl := blink.New(pin, 100, 100)

	var clk clock.Fake
	clk.Set(math.MaxUint32 - 150)

	ctrl.Update(clk.Millis()) // elapsed huge -> ON
	if !pin.State() {
		t.Fatal("expected ON before the wrap")
	}

	clk.Advance(110) // MaxUint32 - 40
	ctrl.Update(clk.Millis())
	if pin.State() {
		t.Fatal("expected OFF at MaxUint32-40")
	}

	clk.Advance(111) // wraps to 70
	if clk.Millis() != 70 {
		t.Fatalf("fake clock should have wrapped to 70, got %d", clk.Millis())
	}
	ctrl.Update(clk.Millis())
	if !pin.State() {
		t.Error("expected ON at t=70 after wraparound")
	}
}
