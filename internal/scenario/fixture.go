package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/airspacelab/deconflict/internal/deconflict"
	"github.com/airspacelab/deconflict/internal/mission"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replayable check: a
// mission set, the check parameters, and optionally the expected outcome
// for regression comparison.
type Fixture struct {
	Description string            `json:"description"`
	Config      FixtureConfig     `json:"config"`
	Primary     mission.Mission   `json:"primary"`
	Others      []mission.Mission `json:"others"`
	Expected    *FixtureExpected  `json:"expected,omitempty"`
}

// FixtureConfig mirrors deconflict.Config with JSON tags.
type FixtureConfig struct {
	SafetyBuffer   float64 `json:"safety_buffer"`
	TimeResolution float64 `json:"time_resolution"`
	GroupByFlight  bool    `json:"group_by_flight"`
}

// FixtureExpected captures the reference outcome of a fixture run.
type FixtureExpected struct {
	Status      string `json:"status"`
	WindowCount int    `json:"window_count"`
}

// #endregion fixture-types

// #region fixture-io

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// WriteFixture serializes a fixture to path with indentation.
func WriteFixture(f Fixture, path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ToConfig converts fixture parameters to a check config, filling zero
// values with the operational defaults.
func (fc FixtureConfig) ToConfig() deconflict.Config {
	cfg := deconflict.DefaultConfig()
	if fc.SafetyBuffer > 0 {
		cfg.SafetyBuffer = fc.SafetyBuffer
	}
	if fc.TimeResolution > 0 {
		cfg.TimeResolution = fc.TimeResolution
	}
	cfg.GroupByFlight = fc.GroupByFlight
	return cfg
}

// FromScenario builds a fixture from a canned scenario and the config it
// should be checked with. Expected is left nil; fixture-export fills it
// from an actual run.
func FromScenario(sc Scenario, cfg deconflict.Config) Fixture {
	return Fixture{
		Description: fmt.Sprintf("canned scenario %q: %s", sc.Name, sc.Description),
		Config: FixtureConfig{
			SafetyBuffer:   cfg.SafetyBuffer,
			TimeResolution: cfg.TimeResolution,
			GroupByFlight:  cfg.GroupByFlight,
		},
		Primary: sc.Primary,
		Others:  sc.Others,
	}
}

// #endregion fixture-io
