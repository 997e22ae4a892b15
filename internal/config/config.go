// Package config loads the daemon's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/airspacelab/deconflict/internal/deconflict"
)

// #region types

// Config is the daemon configuration file shape.
type Config struct {
	Listen    string    `yaml:"listen"`
	StorePath string    `yaml:"store_path"`
	Check     Check     `yaml:"check"`
	Animation Animation `yaml:"animation"`
}

// Check carries the default check parameters handed to the engine when a
// request does not override them. The engine itself hard-codes nothing.
type Check struct {
	SafetyBuffer   float64 `yaml:"safety_buffer"`   // meters
	TimeResolution float64 `yaml:"time_resolution"` // seconds
	GroupByFlight  bool    `yaml:"group_by_flight"`
	Workers        int     `yaml:"workers"`
}

// Animation controls the WebSocket frame stream.
type Animation struct {
	FrameStep       float64 `yaml:"frame_step"`        // seconds of mission time per frame
	FrameIntervalMs int     `yaml:"frame_interval_ms"` // wall-clock delay between frames
}

// #endregion types

// #region load

// Default returns the standalone defaults: local listen address, on-disk
// store next to the binary, 50 m / 1 s check parameters, half-resolution
// animation frames.
func Default() Config {
	return Config{
		Listen:    ":8087",
		StorePath: "deconflict.db",
		Check: Check{
			SafetyBuffer:   50.0,
			TimeResolution: 1.0,
		},
		Animation: Animation{
			FrameStep:       0.5,
			FrameIntervalMs: 50,
		},
	}
}

// Load reads a YAML config file over the defaults. Unset fields keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Check.SafetyBuffer <= 0 || cfg.Check.TimeResolution <= 0 {
		return Config{}, fmt.Errorf("config %s: check parameters must be > 0", path)
	}
	if cfg.Animation.FrameStep <= 0 {
		return Config{}, fmt.Errorf("config %s: animation frame_step must be > 0", path)
	}
	return cfg, nil
}

// CheckConfig converts the configured defaults to an engine config.
func (c Config) CheckConfig() deconflict.Config {
	return deconflict.Config{
		SafetyBuffer:   c.Check.SafetyBuffer,
		TimeResolution: c.Check.TimeResolution,
		GroupByFlight:  c.Check.GroupByFlight,
		Workers:        c.Check.Workers,
	}
}

// #endregion load
