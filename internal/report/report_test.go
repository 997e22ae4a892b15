package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/airspacelab/deconflict/internal/consolidate"
	"github.com/airspacelab/deconflict/internal/mission"
)

func TestSummarizeEmptyWindows(t *testing.T) {
	s := Summarize(nil)
	if s.TotalConflicts != 0 || s.AffectedFlights != 0 {
		t.Errorf("counts = %d/%d, want 0/0", s.TotalConflicts, s.AffectedFlights)
	}
	if s.MinimumDistance != nil {
		t.Errorf("minimum distance = %v, want nil", *s.MinimumDistance)
	}
	if s.Message != "MISSION CLEAR - No conflicts detected. Safe to execute." {
		t.Errorf("unexpected clear message: %q", s.Message)
	}
}

func TestSummarizeCountsAndMinimum(t *testing.T) {
	windows := []consolidate.Window{
		{StartTime: 5, EndTime: 10, FlightID: "ALPHA", MinDistance: 30.5},
		{StartTime: 20, EndTime: 22, FlightID: "BETA", MinDistance: 12.34},
		{StartTime: 30, EndTime: 35, FlightID: "ALPHA", MinDistance: 45},
	}
	s := Summarize(windows)
	if s.TotalConflicts != 3 {
		t.Errorf("total conflicts = %d, want 3", s.TotalConflicts)
	}
	if s.AffectedFlights != 2 {
		t.Errorf("affected flights = %d, want 2", s.AffectedFlights)
	}
	if s.MinimumDistance == nil || *s.MinimumDistance != 12.34 {
		t.Fatalf("minimum distance = %v, want 12.34", s.MinimumDistance)
	}
	want := "CONFLICT DETECTED - 3 conflict window(s) with 2 flight(s). Minimum separation: 12.34m"
	if s.Message != want {
		t.Errorf("message = %q, want %q", s.Message, want)
	}
}

func TestWriteConflictReport(t *testing.T) {
	windows := []consolidate.Window{
		{
			StartTime:   18,
			EndTime:     24,
			Location:    mission.Position{X: 95, Y: 92, Z: 148},
			MinDistance: 11.18,
			FlightID:    "ALPHA",
		},
	}
	summary := Summarize(windows)

	var buf bytes.Buffer
	Write(&buf, StatusConflict, windows, summary, 50)
	out := buf.String()

	for _, want := range []string{
		"DECONFLICTION SYSTEM REPORT",
		"Status: CONFLICT_DETECTED",
		"Safety Buffer: 50m",
		"Conflict #1:",
		"Flight: ALPHA",
		"Time Window: 18.0s - 24.0s",
		"Minimum Separation: 11.18m",
		"VIOLATION: 38.82m below safety buffer",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\nfull output:\n%s", want, out)
		}
	}
}

func TestWriteClearReportOmitsDetails(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, StatusClear, nil, Summarize(nil), 50)
	out := buf.String()

	if !strings.Contains(out, "MISSION CLEAR") {
		t.Errorf("report missing clear message:\n%s", out)
	}
	if strings.Contains(out, "CONFLICT DETAILS") {
		t.Errorf("clear report should not include conflict details:\n%s", out)
	}
}
