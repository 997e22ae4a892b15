package scenario

import (
	"path/filepath"
	"testing"

	"github.com/airspacelab/deconflict/internal/deconflict"
)

func TestFixtureRoundTrip(t *testing.T) {
	cfg := deconflict.DefaultConfig()
	cfg.SafetyBuffer = 75
	fixture := FromScenario(Conflict(), cfg)
	fixture.Expected = &FixtureExpected{Status: "CONFLICT_DETECTED", WindowCount: 2}

	path := filepath.Join(t.TempDir(), "conflict.json")
	if err := WriteFixture(fixture, path); err != nil {
		t.Fatalf("WriteFixture: %v", err)
	}

	loaded, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	if loaded.Description != fixture.Description {
		t.Errorf("description = %q, want %q", loaded.Description, fixture.Description)
	}
	if loaded.Config.SafetyBuffer != 75 {
		t.Errorf("safety buffer = %v, want 75", loaded.Config.SafetyBuffer)
	}
	if loaded.Primary.ID != "PRIMARY" {
		t.Errorf("primary ID = %q, want PRIMARY", loaded.Primary.ID)
	}
	if len(loaded.Others) != 2 {
		t.Fatalf("others = %d, want 2", len(loaded.Others))
	}
	if len(loaded.Primary.Waypoints) != len(fixture.Primary.Waypoints) {
		t.Errorf("waypoints = %d, want %d", len(loaded.Primary.Waypoints), len(fixture.Primary.Waypoints))
	}
	if loaded.Expected == nil || loaded.Expected.WindowCount != 2 {
		t.Errorf("expected block not preserved: %+v", loaded.Expected)
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing fixture file")
	}
}

func TestFixtureConfigDefaults(t *testing.T) {
	cfg := FixtureConfig{}.ToConfig()
	defaults := deconflict.DefaultConfig()
	if cfg.SafetyBuffer != defaults.SafetyBuffer {
		t.Errorf("zero buffer should default to %v, got %v", defaults.SafetyBuffer, cfg.SafetyBuffer)
	}
	if cfg.TimeResolution != defaults.TimeResolution {
		t.Errorf("zero resolution should default to %v, got %v", defaults.TimeResolution, cfg.TimeResolution)
	}

	cfg = FixtureConfig{SafetyBuffer: 100, TimeResolution: 0.5, GroupByFlight: true}.ToConfig()
	if cfg.SafetyBuffer != 100 || cfg.TimeResolution != 0.5 || !cfg.GroupByFlight {
		t.Errorf("explicit parameters not carried through: %+v", cfg)
	}
}
