package config

import (
	"os"
	"path/filepath"
	"testing"
)

// ---------- Load / Save ----------

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".artemisrc")
	cfg := Load(path)
	if *cfg != *Default() {
		t.Errorf("missing file: got %+v, want defaults %+v", *cfg, *Default())
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".artemisrc")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Load(path)
	if *cfg != *Default() {
		t.Errorf("malformed file: got %+v, want defaults", *cfg)
	}
}

func TestLoad_OutOfRangeValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero_frames", "frames: 0\ninterval: 2\nshutter: 2\n"},
		{"negative_frames", "frames: -3\ninterval: 2\nshutter: 2\n"},
		{"zero_interval", "frames: 5\ninterval: 0\nshutter: 2\n"},
		{"interval_over_max", "frames: 5\ninterval: 31\nshutter: 2\n"},
		{"negative_shutter", "frames: 5\ninterval: 2\nshutter: -1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".artemisrc")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg := Load(path)
			if *cfg != *Default() {
				t.Errorf("got %+v, want defaults", *cfg)
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".artemisrc")

	saved := &Config{Frames: 120, Interval: 7, Shutter: 11}
	if err := saved.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := Load(path)
	if *loaded != *saved {
		t.Errorf("round trip: got %+v, want %+v", *loaded, *saved)
	}
}

func TestSave_UnwritablePath(t *testing.T) {
	cfg := Default()
	if err := cfg.Save(filepath.Join(t.TempDir(), "missing", ".artemisrc")); err == nil {
		t.Error("expected error for unwritable path, got nil")
	}
}

// ---------- Edit clamping ----------

func TestIncInterval_Ceiling(t *testing.T) {
	cfg := &Config{Interval: MaxInterval - 1}
	cfg.IncInterval()
	if cfg.Interval != MaxInterval {
		t.Errorf("Interval = %d, want %d", cfg.Interval, MaxInterval)
	}
	cfg.IncInterval() // at the ceiling: no-op
	if cfg.Interval != MaxInterval {
		t.Errorf("Interval = %d, want %d after no-op", cfg.Interval, MaxInterval)
	}
}

func TestDecInterval_Floor(t *testing.T) {
	cfg := &Config{Interval: MinInterval + 1}
	cfg.DecInterval()
	if cfg.Interval != MinInterval {
		t.Errorf("Interval = %d, want %d", cfg.Interval, MinInterval)
	}
	cfg.DecInterval() // at the floor: no-op
	if cfg.Interval != MinInterval {
		t.Errorf("Interval = %d, want %d after no-op", cfg.Interval, MinInterval)
	}
}

func TestFrames_FloorNoCeiling(t *testing.T) {
	cfg := &Config{Frames: MinFrames}
	cfg.DecFrames() // at the floor: no-op
	if cfg.Frames != MinFrames {
		t.Errorf("Frames = %d, want %d", cfg.Frames, MinFrames)
	}
	for i := 0; i < 1000; i++ {
		cfg.IncFrames()
	}
	if cfg.Frames != MinFrames+1000 {
		t.Errorf("Frames = %d, want %d (no ceiling)", cfg.Frames, MinFrames+1000)
	}
}

func TestShutter_Clamping(t *testing.T) {
	const maxIndex = 33

	cfg := &Config{Shutter: maxIndex}
	cfg.IncShutter(maxIndex) // at the ceiling: no-op
	if cfg.Shutter != maxIndex {
		t.Errorf("Shutter = %d, want %d", cfg.Shutter, maxIndex)
	}

	cfg.Shutter = 0
	cfg.DecShutter() // at the floor: no-op
	if cfg.Shutter != 0 {
		t.Errorf("Shutter = %d, want 0", cfg.Shutter)
	}

	cfg.IncShutter(maxIndex)
	if cfg.Shutter != 1 {
		t.Errorf("Shutter = %d, want 1", cfg.Shutter)
	}
	cfg.DecShutter()
	if cfg.Shutter != 0 {
		t.Errorf("Shutter = %d, want 0", cfg.Shutter)
	}
}
