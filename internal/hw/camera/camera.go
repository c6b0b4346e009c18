package camera

import "time"

// Camera is the high-level interface used by the rest of the application.
// It represents an abstract "camera", regardless of how it's controlled
// (GPIO, USB, network protocol, etc.).
type Camera interface {
	// Expose triggers a single capture, holding the shutter open for
	// the given duration. The call blocks for the whole exposure and
	// must not be interrupted once started.
	Expose(exposure time.Duration) error
}
