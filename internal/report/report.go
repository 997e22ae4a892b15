package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/airspacelab/deconflict/internal/consolidate"
)

// #region status

// Status is the overall outcome of a deconfliction check.
type Status string

const (
	StatusClear    Status = "CLEAR"
	StatusConflict Status = "CONFLICT_DETECTED"
)

// #endregion status

// #region summary

// Summary is the aggregate view over a check's conflict windows.
// MinimumDistance is nil when there are no windows.
type Summary struct {
	TotalConflicts  int      `json:"total_conflicts"`
	AffectedFlights int      `json:"affected_flights"`
	MinimumDistance *float64 `json:"minimum_distance"`
	Message         string   `json:"message"`
}

// Summarize reduces windows to counts, the global minimum separation, and a
// human-readable message. It reads nothing but the windows list, so
// recomputing it from a result's windows is idempotent.
func Summarize(windows []consolidate.Window) Summary {
	if len(windows) == 0 {
		return Summary{
			Message: "MISSION CLEAR - No conflicts detected. Safe to execute.",
		}
	}

	flights := make(map[string]struct{}, len(windows))
	minDistance := windows[0].MinDistance
	for _, w := range windows {
		flights[w.FlightID] = struct{}{}
		if w.MinDistance < minDistance {
			minDistance = w.MinDistance
		}
	}

	return Summary{
		TotalConflicts:  len(windows),
		AffectedFlights: len(flights),
		MinimumDistance: &minDistance,
		Message: fmt.Sprintf("CONFLICT DETECTED - %d conflict window(s) with %d flight(s). Minimum separation: %.2fm",
			len(windows), len(flights), minDistance),
	}
}

// #endregion summary

// #region writer

// Write renders the detailed textual report. It consumes check output
// fields only and performs no computation beyond formatting.
func Write(w io.Writer, status Status, windows []consolidate.Window, summary Summary, safetyBuffer float64) {
	rule := strings.Repeat("=", 70)
	thinRule := strings.Repeat("-", 70)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "DECONFLICTION SYSTEM REPORT")
	fmt.Fprintf(w, "%s\n", rule)
	fmt.Fprintf(w, "\nStatus: %s\n", status)
	fmt.Fprintf(w, "Safety Buffer: %gm\n", safetyBuffer)
	fmt.Fprintf(w, "\n%s\n", summary.Message)

	if len(windows) > 0 {
		fmt.Fprintf(w, "\n%s\n", thinRule)
		fmt.Fprintln(w, "CONFLICT DETAILS:")
		fmt.Fprintf(w, "%s\n", thinRule)

		for i, win := range windows {
			fmt.Fprintf(w, "\nConflict #%d:\n", i+1)
			fmt.Fprintf(w, "  Flight: %s\n", win.FlightID)
			fmt.Fprintf(w, "  Time Window: %.1fs - %.1fs\n", win.StartTime, win.EndTime)
			fmt.Fprintf(w, "  Location: (%.1f, %.1f, %.1f)\n", win.Location.X, win.Location.Y, win.Location.Z)
			fmt.Fprintf(w, "  Minimum Separation: %.2fm\n", win.MinDistance)
			fmt.Fprintf(w, "  VIOLATION: %.2fm below safety buffer\n", safetyBuffer-win.MinDistance)
		}
	}

	fmt.Fprintf(w, "\n%s\n\n", rule)
}

// #endregion writer
