package interp

import (
	"github.com/airspacelab/deconflict/internal/mission"
)

// #region position-at

// PositionAt returns the interpolated position of m at absolute time t.
// The second return is false when t falls outside the mission's active
// window; callers treat that as "absent", not an error. It is also false
// for a non-positive-duration window, which Validate rejects upstream —
// the guard here only prevents a division by zero if a caller skipped
// validation.
//
// The position is located by arc-length progress: normalized time progress
// scaled by the total polyline length, then a walk over segments to find
// the one containing the target distance. Cost is O(waypoints) per call.
func PositionAt(m mission.Mission, t float64) (mission.Position, bool) {
	if t < m.StartTime || t > m.EndTime {
		return mission.Position{}, false
	}
	duration := m.EndTime - m.StartTime
	if duration <= 0 {
		return mission.Position{}, false
	}

	totalDistance := mission.PathLength(m.Waypoints)
	progress := (t - m.StartTime) / duration
	targetDistance := progress * totalDistance

	accumulated := 0.0
	for i := 0; i < len(m.Waypoints)-1; i++ {
		segmentLength := mission.Distance(m.Waypoints[i], m.Waypoints[i+1])

		// Duplicate consecutive waypoints have zero traversal cost; skip
		// them so the local fraction below never divides by zero.
		if segmentLength == 0 {
			continue
		}

		if accumulated+segmentLength >= targetDistance {
			frac := (targetDistance - accumulated) / segmentLength
			return mission.Lerp(m.Waypoints[i], m.Waypoints[i+1], frac), true
		}
		accumulated += segmentLength
	}

	// Floating rounding can leave the target just past the last segment;
	// t == EndTime must still resolve to the final waypoint.
	return m.Waypoints[len(m.Waypoints)-1], true
}

// #endregion position-at
