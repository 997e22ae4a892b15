package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/airspacelab/deconflict/internal/deconflict"
	"github.com/airspacelab/deconflict/internal/mission"
	"github.com/airspacelab/deconflict/internal/scenario"
)

// #region check

// checkRequest is the POST /v1/check body. Parameter fields are pointers
// so "absent" falls back to the configured defaults rather than zero.
type checkRequest struct {
	Primary        mission.Mission   `json:"primary" binding:"required"`
	Others         []mission.Mission `json:"others"`
	SafetyBuffer   *float64          `json:"safety_buffer"`
	TimeResolution *float64          `json:"time_resolution"`
	GroupByFlight  *bool             `json:"group_by_flight"`
}

func (s *Server) resolveConfig(safetyBuffer, timeResolution *float64, groupByFlight *bool) deconflict.Config {
	cfg := s.defaults
	if safetyBuffer != nil {
		cfg.SafetyBuffer = *safetyBuffer
	}
	if timeResolution != nil {
		cfg.TimeResolution = *timeResolution
	}
	if groupByFlight != nil {
		cfg.GroupByFlight = *groupByFlight
	}
	return cfg
}

func (s *Server) handleCheck(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}

	cfg := s.resolveConfig(req.SafetyBuffer, req.TimeResolution, req.GroupByFlight)
	result, err := deconflict.Check(req.Primary, req.Others, cfg)
	if err != nil {
		if errors.Is(err, mission.ErrInvalidMission) || errors.Is(err, deconflict.ErrInvalidConfig) {
			errorJSON(c, http.StatusBadRequest, err)
			return
		}
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}

	slog.Info("check complete",
		"primary", req.Primary.ID,
		"others", len(req.Others),
		"status", result.Status,
		"windows", len(result.Windows))
	c.JSON(http.StatusOK, result)
}

// #endregion check

// #region scenarios

// scenarioListing distinguishes stored scenarios (with IDs) from the
// built-in canned library (addressable by name).
type scenarioListing struct {
	Stored []storedScenario `json:"stored"`
	Canned []cannedScenario `json:"canned"`
}

type storedScenario struct {
	ID           string `json:"scenario_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	MissionCount int    `json:"mission_count"`
}

type cannedScenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleListScenarios(c *gin.Context) {
	infos, err := s.store.ListScenarios()
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}

	listing := scenarioListing{Stored: []storedScenario{}, Canned: []cannedScenario{}}
	for _, info := range infos {
		listing.Stored = append(listing.Stored, storedScenario{
			ID:           info.ID,
			Name:         info.Name,
			Description:  info.Description,
			MissionCount: info.MissionCount,
		})
	}
	for _, sc := range scenario.Library() {
		listing.Canned = append(listing.Canned, cannedScenario{Name: sc.Name, Description: sc.Description})
	}
	c.JSON(http.StatusOK, listing)
}

func (s *Server) handleSaveScenario(c *gin.Context) {
	var sc scenario.Scenario
	if err := c.ShouldBindJSON(&sc); err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}

	id, err := s.store.SaveScenario(sc)
	if err != nil {
		if errors.Is(err, mission.ErrInvalidMission) {
			errorJSON(c, http.StatusBadRequest, err)
			return
		}
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}

	slog.Info("scenario stored", "id", id, "name", sc.Name)
	c.JSON(http.StatusCreated, gin.H{"scenario_id": id})
}

// loadScenario resolves :id against the store first, then the canned
// library by name.
func (s *Server) loadScenario(id string) (scenario.Scenario, bool) {
	if sc, err := s.store.GetScenario(id); err == nil {
		return sc, true
	}
	if sc, ok := scenario.ByName(id); ok {
		return sc, true
	}
	return scenario.Scenario{}, false
}

func (s *Server) handleGetScenario(c *gin.Context) {
	sc, ok := s.loadScenario(c.Param("id"))
	if !ok {
		errorJSON(c, http.StatusNotFound, errors.New("scenario not found"))
		return
	}
	c.JSON(http.StatusOK, sc)
}

func (s *Server) handleScenarioCheck(c *gin.Context) {
	sc, ok := s.loadScenario(c.Param("id"))
	if !ok {
		errorJSON(c, http.StatusNotFound, errors.New("scenario not found"))
		return
	}

	var overrides struct {
		SafetyBuffer   *float64 `json:"safety_buffer"`
		TimeResolution *float64 `json:"time_resolution"`
		GroupByFlight  *bool    `json:"group_by_flight"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&overrides); err != nil {
			errorJSON(c, http.StatusBadRequest, err)
			return
		}
	}

	cfg := s.resolveConfig(overrides.SafetyBuffer, overrides.TimeResolution, overrides.GroupByFlight)
	result, err := deconflict.Check(sc.Primary, sc.Others, cfg)
	if err != nil {
		if errors.Is(err, mission.ErrInvalidMission) || errors.Is(err, deconflict.ErrInvalidConfig) {
			errorJSON(c, http.StatusBadRequest, err)
			return
		}
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// #endregion scenarios
