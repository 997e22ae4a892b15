package consolidate

import (
	"sort"

	"github.com/airspacelab/deconflict/internal/mission"
	"github.com/airspacelab/deconflict/internal/sampler"
)

// #region types

// Window is a consolidated conflict episode: a contiguous time range of
// sustained breach against one other flight. Location is the primary's
// position at the episode's first sample.
type Window struct {
	StartTime   float64          `json:"start_time"`
	EndTime     float64          `json:"end_time"`
	Location    mission.Position `json:"location"`
	MinDistance float64          `json:"min_distance"`
	FlightID    string           `json:"flight_id"`
}

// #endregion types

// #region consolidate

// Consolidate merges an ordered raw sample stream into conflict windows in
// a single streaming pass. One window is open at a time; a sample extends
// it when it carries the same flight ID and lands within 2x timeResolution
// of the window's end — the 2x (not 1x) tolerance lets one skipped tick
// pass without splitting an episode. Any other sample closes the open
// window and seeds a new one. Output preserves the chronological order of
// window start times as encountered.
//
// Adjacency in the input stream is what drives merging. The sampler's
// time-major/path-minor ordering interleaves different flights' samples
// within a tick, so two flights breaching simultaneously fragment each
// other's episodes into short alternating windows. ByFlight regroups the
// stream first when continuous per-flight episodes are wanted.
func Consolidate(samples []sampler.RawSample, timeResolution float64) []Window {
	if len(samples) == 0 {
		return nil
	}

	var windows []Window
	current := seedWindow(samples[0])

	for _, s := range samples[1:] {
		if s.FlightID == current.FlightID && s.Time-current.EndTime <= 2*timeResolution {
			current.EndTime = s.Time
			if s.Distance < current.MinDistance {
				current.MinDistance = s.Distance
			}
			continue
		}
		windows = append(windows, current)
		current = seedWindow(s)
	}

	return append(windows, current)
}

// ByFlight stable-sorts the sample stream by (flight ID, time) before
// consolidating, so simultaneous multi-flight breaches no longer fragment
// one another. The resulting windows are re-sorted chronologically by
// start time. The input slice is not modified.
func ByFlight(samples []sampler.RawSample, timeResolution float64) []Window {
	grouped := make([]sampler.RawSample, len(samples))
	copy(grouped, samples)
	sort.SliceStable(grouped, func(i, j int) bool {
		if grouped[i].FlightID != grouped[j].FlightID {
			return grouped[i].FlightID < grouped[j].FlightID
		}
		return grouped[i].Time < grouped[j].Time
	})

	windows := Consolidate(grouped, timeResolution)
	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].StartTime < windows[j].StartTime
	})
	return windows
}

func seedWindow(s sampler.RawSample) Window {
	return Window{
		StartTime:   s.Time,
		EndTime:     s.Time,
		Location:    s.Primary,
		MinDistance: s.Distance,
		FlightID:    s.FlightID,
	}
}

// #endregion consolidate
