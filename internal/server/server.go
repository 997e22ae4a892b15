// Package server exposes the deconfliction engine over HTTP and streams
// animation frames over WebSocket. The engine stays pure; every request
// threads its own inputs through deconflict.Check.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/airspacelab/deconflict/internal/config"
	"github.com/airspacelab/deconflict/internal/deconflict"
	"github.com/airspacelab/deconflict/internal/store"
)

// Server bundles the scenario store and the configured check defaults.
type Server struct {
	store     *store.Store
	defaults  deconflict.Config
	animation config.Animation
}

// New creates a server around an open store.
func New(st *store.Store, cfg config.Config) *Server {
	return &Server{
		store:     st,
		defaults:  cfg.CheckConfig(),
		animation: cfg.Animation,
	}
}

// Router builds the gin engine with all /v1 routes registered.
//
// Endpoints:
//
//	GET  /v1/health                  - liveness
//	POST /v1/check                   - run a check on request-supplied missions
//	GET  /v1/scenarios               - list stored and canned scenarios
//	POST /v1/scenarios               - store a scenario definition
//	GET  /v1/scenarios/:id           - fetch a stored scenario
//	POST /v1/scenarios/:id/check     - run a stored scenario
//	GET  /v1/scenarios/:id/animate   - WebSocket frame stream for a stored scenario
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/v1")
	{
		v1.GET("/health", s.handleHealth)
		v1.POST("/check", s.handleCheck)
		v1.GET("/scenarios", s.handleListScenarios)
		v1.POST("/scenarios", s.handleSaveScenario)
		v1.GET("/scenarios/:id", s.handleGetScenario)
		v1.POST("/scenarios/:id/check", s.handleScenarioCheck)
		v1.GET("/scenarios/:id/animate", s.handleAnimate)
	}
	return router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// errorJSON maps an error to a client-facing body and logs it once.
func errorJSON(c *gin.Context, status int, err error) {
	slog.Warn("request failed", "path", c.FullPath(), "status", status, "error", err)
	c.JSON(status, gin.H{"error": err.Error()})
}
