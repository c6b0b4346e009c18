package camera

import (
	"time"

	"github.com/miljank/artemis/internal/debug"
	"github.com/miljank/artemis/internal/hw/gpio"
)

// ShutterGPIO is a Camera implementation for a camera wired through an
// opto-coupled remote release on a single GPIO line:
// - GND: connected to Raspberry Pi ground
// - SHUTTER: trigger (activate by setting to HIGH)
//
// The line idles LOW. Driving it HIGH closes the release circuit; the
// camera keeps the shutter open for as long as the line stays HIGH
// (bulb-style control), so the exposure time is simply how long we hold
// the pin.
type ShutterGPIO struct {
	gpio       gpio.Driver
	shutterPin int
}

// NewShutterGPIO creates a GPIO-controlled shutter trigger.
// shutterPin is the GPIO pin number wired to the release line.
func NewShutterGPIO(g gpio.Driver, shutterPin int) *ShutterGPIO {
	// Configure the pin as output, released by default
	_ = g.SetupPin(shutterPin, gpio.Output)
	_ = g.WritePin(shutterPin, gpio.Low)

	return &ShutterGPIO{
		gpio:       g,
		shutterPin: shutterPin,
	}
}

// Expose holds the shutter line HIGH for the exposure duration.
// Sequence: SHUTTER high -> hold -> SHUTTER low.
func (s *ShutterGPIO) Expose(exposure time.Duration) error {
	debug.Verbose("Camera: opening shutter (pin %d, %v)", s.shutterPin, exposure)

	if err := s.gpio.WritePin(s.shutterPin, gpio.High); err != nil {
		return err
	}

	time.Sleep(exposure)

	debug.Verbose("Camera: releasing shutter (pin %d)", s.shutterPin)
	return s.gpio.WritePin(s.shutterPin, gpio.Low)
}
