package camera

import (
	"sync"
	"testing"
	"time"

	"github.com/miljank/artemis/internal/hw/gpio"
)

// traceDriver records every pin write in order.
type traceDriver struct {
	mu     sync.Mutex
	writes []gpio.Level
}

func (d *traceDriver) SetupPin(pin int, mode gpio.PinMode) error { return nil }

func (d *traceDriver) WritePin(pin int, level gpio.Level) error {
	d.mu.Lock()
	d.writes = append(d.writes, level)
	d.mu.Unlock()
	return nil
}

func (d *traceDriver) Close() error { return nil }

func TestNewShutterGPIO_LineIdlesLow(t *testing.T) {
	drv := &traceDriver{}
	NewShutterGPIO(drv, 3)

	if len(drv.writes) != 1 || drv.writes[0] != gpio.Low {
		t.Errorf("writes = %v, want a single Low on setup", drv.writes)
	}
}

func TestExpose_HighThenLow(t *testing.T) {
	drv := &traceDriver{}
	cam := NewShutterGPIO(drv, 3)

	start := time.Now()
	if err := cam.Expose(20 * time.Millisecond); err != nil {
		t.Fatalf("Expose: %v", err)
	}
	held := time.Since(start)

	// setup Low, then High, then Low
	if len(drv.writes) != 3 || drv.writes[1] != gpio.High || drv.writes[2] != gpio.Low {
		t.Errorf("writes = %v, want [Low High Low]", drv.writes)
	}
	if held < 20*time.Millisecond {
		t.Errorf("shutter held %v, want >= 20ms", held)
	}
}
