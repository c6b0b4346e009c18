package rig

import (
	"time"

	"github.com/miljank/artemis/internal/debug"
	"github.com/miljank/artemis/internal/hw/camera"
	"github.com/miljank/artemis/internal/hw/motor"
)

// Controller groups the rig's hardware behind the operations the run
// logic needs. It's an intermediate layer between business logic
// (timelapse loop, menus) and low-level (GPIO).
type Controller struct {
	camera camera.Camera
	motor  *motor.Motor
}

func NewController(cam camera.Camera, m *motor.Motor) *Controller {
	return &Controller{
		camera: cam,
		motor:  m,
	}
}

// TakePhoto holds the shutter open for the exposure. Blocking and
// uninterruptible: mechanical timing must not jitter.
func (c *Controller) TakePhoto(exposure time.Duration) error {
	return c.camera.Expose(exposure)
}

// MoveCarriage pulses the carriage motor for the given duration, then
// waits for the rig to stop vibrating before the caller continues.
func (c *Controller) MoveCarriage(pulse, settle time.Duration) error {
	if err := c.motor.Pulse(pulse); err != nil {
		return err
	}
	debug.Verbose("Rig: settling for %v", settle)
	time.Sleep(settle)
	return nil
}
