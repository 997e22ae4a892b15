// Package store persists scenario definitions (missions and their
// waypoints) in SQLite. Check results are never stored; the store holds
// inputs only.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/airspacelab/deconflict/internal/mission"
	"github.com/airspacelab/deconflict/internal/scenario"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS scenarios (
	scenario_id  TEXT PRIMARY KEY,
	name         TEXT NOT NULL UNIQUE,
	description  TEXT,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS missions (
	scenario_id  TEXT NOT NULL,
	mission_id   TEXT NOT NULL,
	role         TEXT NOT NULL CHECK (role IN ('primary', 'other')),
	ord          INTEGER NOT NULL,
	start_time   REAL NOT NULL,
	end_time     REAL NOT NULL,
	PRIMARY KEY (scenario_id, mission_id),
	FOREIGN KEY (scenario_id) REFERENCES scenarios(scenario_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS waypoints (
	scenario_id  TEXT NOT NULL,
	mission_id   TEXT NOT NULL,
	seq          INTEGER NOT NULL,
	x            REAL NOT NULL,
	y            REAL NOT NULL,
	z            REAL NOT NULL,
	PRIMARY KEY (scenario_id, mission_id, seq),
	FOREIGN KEY (scenario_id, mission_id) REFERENCES missions(scenario_id, mission_id) ON DELETE CASCADE
);
`

// #endregion schema

// #region store-struct

// Store manages scenario persistence in SQLite.
type Store struct {
	db *sql.DB
}

// ScenarioInfo is a listing row: identity plus shape stats.
type ScenarioInfo struct {
	ID           string    `json:"scenario_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	MissionCount int       `json:"mission_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by inspection tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region save

// SaveScenario validates and inserts a scenario with all its missions and
// waypoints in one transaction, returning the generated scenario ID.
func (s *Store) SaveScenario(sc scenario.Scenario) (string, error) {
	if sc.Name == "" {
		return "", fmt.Errorf("scenario name required")
	}
	if err := mission.Validate(sc.Primary); err != nil {
		return "", err
	}
	for _, other := range sc.Others {
		if err := mission.Validate(other); err != nil {
			return "", err
		}
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO scenarios (scenario_id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		id, sc.Name, sc.Description, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert scenario: %w", err)
	}

	if err := insertMission(tx, id, sc.Primary, "primary", 0); err != nil {
		return "", err
	}
	for i, other := range sc.Others {
		if err := insertMission(tx, id, other, "other", i+1); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

func insertMission(tx *sql.Tx, scenarioID string, m mission.Mission, role string, ord int) error {
	_, err := tx.Exec(
		`INSERT INTO missions (scenario_id, mission_id, role, ord, start_time, end_time)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		scenarioID, m.ID, role, ord, m.StartTime, m.EndTime,
	)
	if err != nil {
		return fmt.Errorf("insert mission %q: %w", m.ID, err)
	}
	for seq, wp := range m.Waypoints {
		_, err := tx.Exec(
			`INSERT INTO waypoints (scenario_id, mission_id, seq, x, y, z) VALUES (?, ?, ?, ?, ?, ?)`,
			scenarioID, m.ID, seq, wp.X, wp.Y, wp.Z,
		)
		if err != nil {
			return fmt.Errorf("insert waypoint %d of %q: %w", seq, m.ID, err)
		}
	}
	return nil
}

// #endregion save

// #region get

// GetScenario loads a full scenario by ID, others in stored order.
func (s *Store) GetScenario(id string) (scenario.Scenario, error) {
	var sc scenario.Scenario
	err := s.db.QueryRow(
		`SELECT name, description FROM scenarios WHERE scenario_id = ?`, id,
	).Scan(&sc.Name, &sc.Description)
	if err != nil {
		return scenario.Scenario{}, fmt.Errorf("get scenario %s: %w", id, err)
	}

	rows, err := s.db.Query(
		`SELECT mission_id, role, start_time, end_time FROM missions
		 WHERE scenario_id = ? ORDER BY ord ASC`, id,
	)
	if err != nil {
		return scenario.Scenario{}, fmt.Errorf("query missions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m mission.Mission
		var role string
		if err := rows.Scan(&m.ID, &role, &m.StartTime, &m.EndTime); err != nil {
			return scenario.Scenario{}, fmt.Errorf("scan mission: %w", err)
		}
		m.Waypoints, err = s.loadWaypoints(id, m.ID)
		if err != nil {
			return scenario.Scenario{}, err
		}
		if role == "primary" {
			sc.Primary = m
		} else {
			sc.Others = append(sc.Others, m)
		}
	}
	if err := rows.Err(); err != nil {
		return scenario.Scenario{}, fmt.Errorf("iterate missions: %w", err)
	}
	if sc.Primary.ID == "" {
		return scenario.Scenario{}, fmt.Errorf("scenario %s has no primary mission", id)
	}
	return sc, nil
}

// GetScenarioByName resolves a name to its ID and loads the scenario.
func (s *Store) GetScenarioByName(name string) (string, scenario.Scenario, error) {
	var id string
	err := s.db.QueryRow(`SELECT scenario_id FROM scenarios WHERE name = ?`, name).Scan(&id)
	if err != nil {
		return "", scenario.Scenario{}, fmt.Errorf("get scenario by name %q: %w", name, err)
	}
	sc, err := s.GetScenario(id)
	return id, sc, err
}

func (s *Store) loadWaypoints(scenarioID, missionID string) ([]mission.Position, error) {
	rows, err := s.db.Query(
		`SELECT x, y, z FROM waypoints WHERE scenario_id = ? AND mission_id = ? ORDER BY seq ASC`,
		scenarioID, missionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query waypoints: %w", err)
	}
	defer rows.Close()

	var wps []mission.Position
	for rows.Next() {
		var p mission.Position
		if err := rows.Scan(&p.X, &p.Y, &p.Z); err != nil {
			return nil, fmt.Errorf("scan waypoint: %w", err)
		}
		wps = append(wps, p)
	}
	return wps, rows.Err()
}

// #endregion get

// #region list-delete

// ListScenarios returns all stored scenarios, newest first.
func (s *Store) ListScenarios() ([]ScenarioInfo, error) {
	rows, err := s.db.Query(
		`SELECT s.scenario_id, s.name, s.description, s.created_at, COUNT(m.mission_id)
		 FROM scenarios s LEFT JOIN missions m ON m.scenario_id = s.scenario_id
		 GROUP BY s.scenario_id ORDER BY s.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var infos []ScenarioInfo
	for rows.Next() {
		var info ScenarioInfo
		var createdStr string
		var desc sql.NullString
		if err := rows.Scan(&info.ID, &info.Name, &desc, &createdStr, &info.MissionCount); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if desc.Valid {
			info.Description = desc.String
		}
		info.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DeleteScenario removes a scenario and, via cascade, its missions and
// waypoints.
func (s *Store) DeleteScenario(id string) error {
	res, err := s.db.Exec(`DELETE FROM scenarios WHERE scenario_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete scenario: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("scenario %s not found", id)
	}
	return nil
}

// #endregion list-delete
