package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/airspacelab/deconflict/internal/mission"
	"github.com/airspacelab/deconflict/internal/scenario"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	st := newTestStore(t)
	sc := scenario.Conflict()

	id, err := st.SaveScenario(sc)
	if err != nil {
		t.Fatalf("SaveScenario: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty scenario ID")
	}

	got, err := st.GetScenario(id)
	if err != nil {
		t.Fatalf("GetScenario: %v", err)
	}

	if got.Name != sc.Name || got.Description != sc.Description {
		t.Errorf("identity = %q/%q, want %q/%q", got.Name, got.Description, sc.Name, sc.Description)
	}
	if got.Primary.ID != sc.Primary.ID {
		t.Errorf("primary = %q, want %q", got.Primary.ID, sc.Primary.ID)
	}
	if len(got.Others) != len(sc.Others) {
		t.Fatalf("others = %d, want %d", len(got.Others), len(sc.Others))
	}
	// Stored order must survive the round trip.
	for i, other := range sc.Others {
		if got.Others[i].ID != other.ID {
			t.Errorf("others[%d] = %q, want %q", i, got.Others[i].ID, other.ID)
		}
	}
	if len(got.Primary.Waypoints) != len(sc.Primary.Waypoints) {
		t.Fatalf("primary waypoints = %d, want %d", len(got.Primary.Waypoints), len(sc.Primary.Waypoints))
	}
	for i, wp := range sc.Primary.Waypoints {
		if got.Primary.Waypoints[i] != wp {
			t.Errorf("primary waypoint %d = %v, want %v", i, got.Primary.Waypoints[i], wp)
		}
	}
	if got.Primary.StartTime != sc.Primary.StartTime || got.Primary.EndTime != sc.Primary.EndTime {
		t.Errorf("primary window = [%v, %v], want [%v, %v]",
			got.Primary.StartTime, got.Primary.EndTime, sc.Primary.StartTime, sc.Primary.EndTime)
	}
}

func TestGetScenarioByName(t *testing.T) {
	st := newTestStore(t)
	wantID, err := st.SaveScenario(scenario.NearMiss())
	if err != nil {
		t.Fatalf("SaveScenario: %v", err)
	}

	id, sc, err := st.GetScenarioByName("near-miss")
	if err != nil {
		t.Fatalf("GetScenarioByName: %v", err)
	}
	if id != wantID {
		t.Errorf("resolved ID = %s, want %s", id, wantID)
	}
	if sc.Primary.ID != "PRIMARY" {
		t.Errorf("primary = %q, want PRIMARY", sc.Primary.ID)
	}

	if _, _, err := st.GetScenarioByName("no-such"); err == nil {
		t.Fatal("expected error for unknown name")
	}
}

func TestListScenarios(t *testing.T) {
	st := newTestStore(t)

	infos, err := st.ListScenarios()
	if err != nil {
		t.Fatalf("ListScenarios on empty store: %v", err)
	}
	if len(infos) != 0 {
		t.Fatalf("empty store listed %d scenarios", len(infos))
	}

	for _, sc := range scenario.Library() {
		if _, err := st.SaveScenario(sc); err != nil {
			t.Fatalf("SaveScenario %q: %v", sc.Name, err)
		}
	}

	infos, err = st.ListScenarios()
	if err != nil {
		t.Fatalf("ListScenarios: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("listed %d scenarios, want 3", len(infos))
	}
	for _, info := range infos {
		if info.MissionCount < 2 {
			t.Errorf("%q mission count = %d, want >= 2", info.Name, info.MissionCount)
		}
		if info.CreatedAt.IsZero() {
			t.Errorf("%q has zero created_at", info.Name)
		}
	}
}

func TestDeleteScenarioCascades(t *testing.T) {
	st := newTestStore(t)
	id, err := st.SaveScenario(scenario.Clear())
	if err != nil {
		t.Fatalf("SaveScenario: %v", err)
	}

	if err := st.DeleteScenario(id); err != nil {
		t.Fatalf("DeleteScenario: %v", err)
	}
	if _, err := st.GetScenario(id); err == nil {
		t.Fatal("expected error loading deleted scenario")
	}

	// Cascade must have emptied the child tables too.
	var count int
	if err := st.DB().QueryRow(`SELECT COUNT(*) FROM waypoints WHERE scenario_id = ?`, id).Scan(&count); err != nil {
		t.Fatalf("count waypoints: %v", err)
	}
	if count != 0 {
		t.Errorf("%d waypoint rows survived the cascade", count)
	}

	if err := st.DeleteScenario("nonexistent"); err == nil {
		t.Fatal("expected error deleting unknown scenario")
	}
}

func TestSaveDuplicateNameFails(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.SaveScenario(scenario.Clear()); err != nil {
		t.Fatalf("first SaveScenario: %v", err)
	}
	if _, err := st.SaveScenario(scenario.Clear()); err == nil {
		t.Fatal("expected unique constraint violation for duplicate name")
	}
}

func TestSaveRejectsInvalidMission(t *testing.T) {
	st := newTestStore(t)
	sc := scenario.Clear()
	sc.Name = "broken"
	sc.Primary.Waypoints = sc.Primary.Waypoints[:1]

	_, err := st.SaveScenario(sc)
	if !errors.Is(err, mission.ErrInvalidMission) {
		t.Fatalf("expected ErrInvalidMission, got %v", err)
	}
}

func TestSaveRequiresName(t *testing.T) {
	st := newTestStore(t)
	sc := scenario.Clear()
	sc.Name = ""
	if _, err := st.SaveScenario(sc); err == nil {
		t.Fatal("expected error for empty scenario name")
	}
}
