// Package scenario holds the canned mission library used by the CLI, the
// seed tool, and the regression fixtures, plus the JSON fixture format.
package scenario

import (
	"github.com/airspacelab/deconflict/internal/mission"
)

// #region types

// Scenario is a named mission set: one primary and the simulated traffic
// it is checked against.
type Scenario struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Primary     mission.Mission   `json:"primary"`
	Others      []mission.Mission `json:"others"`
}

// #endregion types

// #region library

// Conflict is the guaranteed-conflict set: a head-on closure with ALPHA
// and a crossing encounter with BETA inside BETA's shorter window.
func Conflict() Scenario {
	return Scenario{
		Name:        "conflict",
		Description: "head-on and crossing-path conflicts against two flights",
		Primary: mission.Mission{
			ID: "PRIMARY",
			Waypoints: []mission.Position{
				{X: 0, Y: 0, Z: 100},
				{X: 100, Y: 100, Z: 150},
				{X: 200, Y: 100, Z: 100},
				{X: 300, Y: 0, Z: 100},
			},
			StartTime: 0,
			EndTime:   60,
		},
		Others: []mission.Mission{
			{
				ID: "ALPHA",
				Waypoints: []mission.Position{
					{X: 300, Y: 0, Z: 100},
					{X: 200, Y: 50, Z: 120},
					{X: 100, Y: 100, Z: 140},
					{X: 0, Y: 150, Z: 100},
				},
				StartTime: 0,
				EndTime:   60,
			},
			{
				ID: "BETA",
				Waypoints: []mission.Position{
					{X: 150, Y: 0, Z: 80},
					{X: 150, Y: 200, Z: 120},
				},
				StartTime: 20,
				EndTime:   50,
			},
		},
	}
}

// Clear is the fully safe set: ALPHA is spatially separated for the whole
// window, BETA's window does not overlap the primary's at all.
func Clear() Scenario {
	return Scenario{
		Name:        "clear",
		Description: "spatial and temporal separation, no conflicts",
		Primary: mission.Mission{
			ID: "PRIMARY",
			Waypoints: []mission.Position{
				{X: 0, Y: 0, Z: 100},
				{X: 100, Y: 0, Z: 100},
				{X: 200, Y: 0, Z: 100},
			},
			StartTime: 0,
			EndTime:   40,
		},
		Others: []mission.Mission{
			{
				ID: "ALPHA",
				Waypoints: []mission.Position{
					{X: 0, Y: 200, Z: 150},
					{X: 200, Y: 200, Z: 150},
				},
				StartTime: 0,
				EndTime:   40,
			},
			{
				ID: "BETA",
				Waypoints: []mission.Position{
					{X: 100, Y: 100, Z: 50},
					{X: 100, Y: 100, Z: 200},
				},
				StartTime: 50,
				EndTime:   70,
			},
		},
	}
}

// NearMiss holds ALPHA at a constant 60 m lateral offset — close, but
// outside the standard 50 m buffer.
func NearMiss() Scenario {
	return Scenario{
		Name:        "near-miss",
		Description: "60m offset pass, just outside the 50m safety buffer",
		Primary: mission.Mission{
			ID: "PRIMARY",
			Waypoints: []mission.Position{
				{X: 0, Y: 0, Z: 100},
				{X: 200, Y: 0, Z: 100},
			},
			StartTime: 0,
			EndTime:   40,
		},
		Others: []mission.Mission{
			{
				ID: "ALPHA",
				Waypoints: []mission.Position{
					{X: 100, Y: 60, Z: 100},
					{X: 100, Y: 60, Z: 150},
				},
				StartTime: 0,
				EndTime:   40,
			},
		},
	}
}

// Library returns all canned scenarios in presentation order.
func Library() []Scenario {
	return []Scenario{Conflict(), Clear(), NearMiss()}
}

// ByName looks up a canned scenario.
func ByName(name string) (Scenario, bool) {
	for _, sc := range Library() {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

// #endregion library
