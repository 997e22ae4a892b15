package mission

import (
	"errors"
	"fmt"
	"math"
)

// #region errors

// ErrInvalidMission is returned when a mission fails structural validation.
// Wrapped errors carry the specific violation; test with errors.Is.
var ErrInvalidMission = errors.New("invalid mission")

// #endregion errors

// #region position

// Position is a 3D coordinate in meters.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Distance returns the 3D Euclidean distance between two positions.
func Distance(a, b Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Lerp linearly interpolates between a and b per axis.
// frac is the local fraction in [0, 1]; 0 yields a, 1 yields b.
func Lerp(a, b Position, frac float64) Position {
	return Position{
		X: a.X + (b.X-a.X)*frac,
		Y: a.Y + (b.Y-a.Y)*frac,
		Z: a.Z + (b.Z-a.Z)*frac,
	}
}

// #endregion position

// #region mission

// Mission is an ordered polyline of waypoints plus an absolute active time
// window. Missions are read-only for the lifetime of a check.
type Mission struct {
	ID        string     `json:"mission_id"`
	Waypoints []Position `json:"waypoints"`
	StartTime float64    `json:"start_time"` // seconds
	EndTime   float64    `json:"end_time"`   // seconds
}

// Duration returns the length of the active window in seconds.
func (m Mission) Duration() float64 {
	return m.EndTime - m.StartTime
}

// PathLength returns the total polyline length: the sum of
// consecutive-waypoint Euclidean distances. Zero-length segments
// (duplicate consecutive waypoints) contribute nothing.
func PathLength(waypoints []Position) float64 {
	var length float64
	for i := 0; i < len(waypoints)-1; i++ {
		length += Distance(waypoints[i], waypoints[i+1])
	}
	return length
}

// Validate checks the structural invariants: at least 2 waypoints and a
// strictly positive duration. A zero-duration window is rejected here so
// interpolation never divides by it.
func Validate(m Mission) error {
	if len(m.Waypoints) < 2 {
		return fmt.Errorf("%w: mission %q has %d waypoints, need at least 2",
			ErrInvalidMission, m.ID, len(m.Waypoints))
	}
	if m.EndTime <= m.StartTime {
		return fmt.Errorf("%w: mission %q window [%g, %g] has non-positive duration",
			ErrInvalidMission, m.ID, m.StartTime, m.EndTime)
	}
	return nil
}

// #endregion mission
