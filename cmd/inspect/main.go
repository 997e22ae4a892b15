package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/airspacelab/deconflict/internal/mission"
	"github.com/airspacelab/deconflict/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to deconflict.db")
	scenarioID := flag.String("scenario", "", "show single scenario detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/deconflict.db [--scenario id] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *scenarioID != "" {
		err = runDetailMode(st, *scenarioID, *jsonOut)
	} else {
		err = runListMode(st, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(st *store.Store, jsonOut bool) error {
	infos, err := st.ListScenarios()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintln(os.Stderr, "no scenarios found")
		return nil
	}

	if jsonOut {
		return printJSON(infos)
	}

	fmt.Printf("%-12s  %-12s  %8s  %-19s  %s\n",
		"Scenario", "Name", "Missions", "Created", "Description")
	fmt.Printf("%-12s+-%-12s+-%8s+-%-19s+-%s\n",
		"------------", "------------", "--------", "-------------------", "--------------------")

	for _, info := range infos {
		fmt.Printf("%-12s  %-12s  %8d  %-19s  %s\n",
			shortID(info.ID), info.Name, info.MissionCount,
			info.CreatedAt.Format("2006-01-02T15:04:05"), info.Description)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type missionDetail struct {
	ID        string  `json:"mission_id"`
	Role      string  `json:"role"`
	Waypoints int     `json:"waypoints"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Duration  float64 `json:"duration"`
	Length    float64 `json:"path_length"`
}

func runDetailMode(st *store.Store, id string, jsonOut bool) error {
	sc, err := st.GetScenario(id)
	if err != nil {
		return err
	}

	details := []missionDetail{describeMission(sc.Primary, "primary")}
	for _, other := range sc.Others {
		details = append(details, describeMission(other, "other"))
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"name":        sc.Name,
			"description": sc.Description,
			"missions":    details,
		})
	}

	fmt.Printf("Scenario:    %s\n", sc.Name)
	fmt.Printf("Description: %s\n", sc.Description)
	fmt.Printf("\n%-10s  %-8s  %9s  %16s  %10s  %10s\n",
		"Mission", "Role", "Waypoints", "Window", "Duration", "Length")
	for _, d := range details {
		fmt.Printf("%-10s  %-8s  %9d  [%6.1f, %6.1f]  %9.1fs  %9.1fm\n",
			d.ID, d.Role, d.Waypoints, d.StartTime, d.EndTime, d.Duration, d.Length)
	}
	return nil
}

func describeMission(m mission.Mission, role string) missionDetail {
	return missionDetail{
		ID:        m.ID,
		Role:      role,
		Waypoints: len(m.Waypoints),
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Duration:  m.Duration(),
		Length:    mission.PathLength(m.Waypoints),
	}
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
