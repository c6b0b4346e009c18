package motor

import (
	"time"

	"github.com/miljank/artemis/internal/debug"
	"github.com/miljank/artemis/internal/hw/gpio"
)

// Motor drives the slider carriage motor through a single GPIO line.
// The motor controller runs the carriage for as long as the line is
// held HIGH, so travel distance is expressed as pulse duration.
// Acceleration, direction control, etc. can be added later.
type Motor struct {
	gpio gpio.Driver
	pin  int
}

// NewMotor creates a carriage motor controller on the given pin.
func NewMotor(g gpio.Driver, pin int) *Motor {
	_ = g.SetupPin(pin, gpio.Output)
	_ = g.WritePin(pin, gpio.Low)

	return &Motor{
		gpio: g,
		pin:  pin,
	}
}

// Pulse holds the motor line HIGH for the given duration, then releases
// it. The call blocks for the whole pulse; once the carriage starts
// moving it is never stopped early.
func (m *Motor) Pulse(d time.Duration) error {
	if d <= 0 {
		return nil
	}

	debug.Live("Motor: pulsing pin %d for %v", m.pin, d)

	if err := m.gpio.WritePin(m.pin, gpio.High); err != nil {
		return err
	}

	time.Sleep(d)

	return m.gpio.WritePin(m.pin, gpio.Low)
}
