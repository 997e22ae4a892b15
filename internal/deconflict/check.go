// Package deconflict wires the 4D check pipeline: interpolation-driven
// sampling, window consolidation, and summary aggregation. Check is a pure
// function over its arguments — no state survives a call, so concurrent
// checks over distinct inputs are safe.
package deconflict

import (
	"context"
	"errors"
	"fmt"

	"github.com/airspacelab/deconflict/internal/consolidate"
	"github.com/airspacelab/deconflict/internal/mission"
	"github.com/airspacelab/deconflict/internal/report"
	"github.com/airspacelab/deconflict/internal/sampler"
)

// #region errors

// ErrInvalidConfig is returned when a check parameter is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// #endregion errors

// #region config

// Config carries the caller-supplied check parameters.
type Config struct {
	SafetyBuffer   float64 `json:"safety_buffer"`   // meters, > 0
	TimeResolution float64 `json:"time_resolution"` // seconds, > 0

	// GroupByFlight consolidates per flight (stable regroup by flight ID
	// before the merge pass) instead of preserving the raw stream-adjacency
	// behavior. Off by default for compatibility.
	GroupByFlight bool `json:"group_by_flight"`

	// Workers > 1 shards sampling across goroutines. The sample stream
	// order is identical either way.
	Workers int `json:"workers"`
}

// DefaultConfig returns the standard operational parameters: 50 m buffer,
// 1 s resolution, sequential sampling, stream-order consolidation.
func DefaultConfig() Config {
	return Config{
		SafetyBuffer:   50.0,
		TimeResolution: 1.0,
	}
}

func validateConfig(cfg Config) error {
	if cfg.SafetyBuffer <= 0 {
		return fmt.Errorf("%w: safety buffer %g, must be > 0", ErrInvalidConfig, cfg.SafetyBuffer)
	}
	if cfg.TimeResolution <= 0 {
		return fmt.Errorf("%w: time resolution %g, must be > 0", ErrInvalidConfig, cfg.TimeResolution)
	}
	return nil
}

// #endregion config

// #region result

// Result is the outcome of one deconfliction check. It is produced once
// per call and not retained by the engine.
type Result struct {
	Status  report.Status        `json:"status"`
	Windows []consolidate.Window `json:"conflicts"`
	Summary report.Summary       `json:"summary"`
}

// #endregion result

// #region check

// Check runs the full 4D analysis of primary against others. Validation
// failures (mission structure or configuration) are fatal to the call; no
// partial result is returned. The check itself never fails: out-of-window
// positions are expected absences, skipped per sample.
func Check(primary mission.Mission, others []mission.Mission, cfg Config) (Result, error) {
	if err := validateConfig(cfg); err != nil {
		return Result{}, err
	}
	if err := mission.Validate(primary); err != nil {
		return Result{}, err
	}
	for _, other := range others {
		if err := mission.Validate(other); err != nil {
			return Result{}, err
		}
	}

	var samples []sampler.RawSample
	if cfg.Workers > 1 {
		var err error
		samples, err = sampler.SampleParallel(context.Background(), primary, others, cfg.SafetyBuffer, cfg.TimeResolution, cfg.Workers)
		if err != nil {
			return Result{}, fmt.Errorf("parallel sampling: %w", err)
		}
	} else {
		samples = sampler.Sample(primary, others, cfg.SafetyBuffer, cfg.TimeResolution)
	}

	var windows []consolidate.Window
	if cfg.GroupByFlight {
		windows = consolidate.ByFlight(samples, cfg.TimeResolution)
	} else {
		windows = consolidate.Consolidate(samples, cfg.TimeResolution)
	}

	status := report.StatusClear
	if len(windows) > 0 {
		status = report.StatusConflict
	}

	return Result{
		Status:  status,
		Windows: windows,
		Summary: report.Summarize(windows),
	}, nil
}

// #endregion check
