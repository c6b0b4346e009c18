package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/miljank/artemis/internal/debug"
)

// Operator-adjustable defaults, used when no settings file exists.
const (
	DefaultFrames   = 5
	DefaultInterval = 2
	DefaultShutter  = 2

	MinFrames   = 1
	MinInterval = 1
	MaxInterval = 30
)

// Config holds the operator settings adjusted through the panel menus
// and persisted between runs.
type Config struct {
	Frames   int `yaml:"frames"`   // photos per run
	Interval int `yaml:"interval"` // seconds between frames
	Shutter  int `yaml:"shutter"`  // index into the shutter table
}

// Default returns the compiled-in settings.
func Default() *Config {
	return &Config{
		Frames:   DefaultFrames,
		Interval: DefaultInterval,
		Shutter:  DefaultShutter,
	}
}

// DefaultPath returns the settings file location (~/.artemisrc).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".artemisrc"
	}
	return filepath.Join(home, ".artemisrc")
}

// Load reads the settings file. A missing, unreadable or malformed file
// silently falls back to the defaults: the rig must come up usable even
// with a corrupt card, and the operator can always re-save from the menu.
func Load(path string) *Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		debug.Verbose("No settings at %s, using defaults: %v", path, err)
		return cfg
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		debug.Error(fmt.Errorf("malformed settings %s, using defaults: %w", path, err))
		return cfg
	}

	// Basic validation: anything out of bounds means corruption,
	// fall back wholesale rather than mixing saved and default values.
	if loaded.Frames < MinFrames ||
		loaded.Interval < MinInterval || loaded.Interval > MaxInterval ||
		loaded.Shutter < 0 {
		debug.Error(fmt.Errorf("settings out of range in %s, using defaults: %+v", path, loaded))
		return cfg
	}

	debug.Info("Loaded settings from %s: %+v", path, loaded)
	return &loaded
}

// Save writes the settings file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	debug.Verbose("Saved settings to %s: %+v", path, *c)
	return nil
}

// IncInterval raises the interval by one second, capped at MaxInterval.
func (c *Config) IncInterval() {
	if c.Interval < MaxInterval {
		c.Interval++
	}
}

// DecInterval lowers the interval by one second, floored at MinInterval.
func (c *Config) DecInterval() {
	if c.Interval > MinInterval {
		c.Interval--
	}
}

// IncFrames raises the frame count by one. No ceiling.
func (c *Config) IncFrames() {
	c.Frames++
}

// DecFrames lowers the frame count by one, floored at MinFrames.
func (c *Config) DecFrames() {
	if c.Frames > MinFrames {
		c.Frames--
	}
}

// IncShutter moves to the next slower speed, capped at maxIndex.
func (c *Config) IncShutter(maxIndex int) {
	if c.Shutter < maxIndex {
		c.Shutter++
	}
}

// DecShutter moves to the next faster speed, floored at index 0.
func (c *Config) DecShutter() {
	if c.Shutter > 0 {
		c.Shutter--
	}
}
