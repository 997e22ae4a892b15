package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/airspacelab/deconflict/internal/consolidate"
	"github.com/airspacelab/deconflict/internal/deconflict"
	"github.com/airspacelab/deconflict/internal/interp"
	"github.com/airspacelab/deconflict/internal/mission"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// #region frame-types

// entityPos is one drawn entity at a frame instant. Entities whose window
// does not cover the frame time are omitted from the frame entirely.
type entityPos struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Z  float64 `json:"z"`
}

// frame is one animation tick: all drawable entities plus the conflict
// windows active at that instant.
type frame struct {
	Time          float64              `json:"time"`
	Entities      []entityPos          `json:"entities"`
	ActiveWindows []consolidate.Window `json:"active_windows,omitempty"`
	InConflict    bool                 `json:"in_conflict"`
}

// animationDone closes the stream with the overall check outcome.
type animationDone struct {
	Done   bool   `json:"done"`
	Status string `json:"status"`
}

// #endregion frame-types

// #region animate

// handleAnimate streams interpolated frames for a scenario over the
// primary's window at sub-step increments. The frame step is independent
// of the check's time resolution, so the client sees smooth motion while
// the conflict windows come from the fixed-step analysis.
func (s *Server) handleAnimate(c *gin.Context) {
	sc, ok := s.loadScenario(c.Param("id"))
	if !ok {
		errorJSON(c, http.StatusNotFound, errors.New("scenario not found"))
		return
	}

	result, err := deconflict.Check(sc.Primary, sc.Others, s.defaults)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	defer ws.Close()

	sessionID := uuid.New().String()
	slog.Info("animation session started",
		"session", sessionID,
		"scenario", sc.Name,
		"status", result.Status)

	interval := time.Duration(s.animation.FrameIntervalMs) * time.Millisecond
	missions := append([]mission.Mission{sc.Primary}, sc.Others...)

	for t := sc.Primary.StartTime; t <= sc.Primary.EndTime; t += s.animation.FrameStep {
		f := buildFrame(t, missions, result.Windows)
		if err := ws.WriteJSON(f); err != nil {
			slog.Info("animation client disconnected", "session", sessionID, "error", err)
			return
		}
		if interval > 0 {
			time.Sleep(interval)
		}
	}

	if err := ws.WriteJSON(animationDone{Done: true, Status: string(result.Status)}); err != nil {
		slog.Info("animation close write failed", "session", sessionID, "error", err)
		return
	}
	slog.Info("animation session complete", "session", sessionID)
}

// buildFrame interpolates every mission at t, skipping entities whose
// window does not cover t, and attaches the windows spanning t.
func buildFrame(t float64, missions []mission.Mission, windows []consolidate.Window) frame {
	f := frame{Time: t, Entities: []entityPos{}}

	for _, m := range missions {
		pos, ok := interp.PositionAt(m, t)
		if !ok {
			continue
		}
		f.Entities = append(f.Entities, entityPos{ID: m.ID, X: pos.X, Y: pos.Y, Z: pos.Z})
	}

	for _, w := range windows {
		if w.StartTime <= t && t <= w.EndTime {
			f.ActiveWindows = append(f.ActiveWindows, w)
			f.InConflict = true
		}
	}
	return f
}

// #endregion animate
