package handlers

import (
	"errors"
	"net/http"
	"time"

	"simon_webapp/internal/game"
	"simon_webapp/internal/service"

	"github.com/gin-gonic/gin"
)

type StartGameRequest struct {
	Difficulty string `json:"difficulty"`
}

type TileRequest struct {
	Tile int `json:"tile"`
}

type DifficultyRequest struct {
	Difficulty string `json:"difficulty" binding:"required"`
}

// StartGame begins a new session for the caller. A running session is
// restarted from scratch.
func (h *Handler) StartGame(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	// Body is optional, difficulty falls back to easy.
	var req StartGameRequest
	_ = c.ShouldBindJSON(&req)

	d := game.DifficultyEasy
	if req.Difficulty != "" {
		parsed, err := game.ParseDifficulty(req.Difficulty)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty"})
			return
		}
		d = parsed
	}

	snap := h.SessionService.StartSession(userID, d)
	c.JSON(http.StatusOK, gin.H{"session": snap})
}

// SubmitTile forwards one tile press to the caller's session. Presses
// outside the input phase are ignored, not errors.
func (h *Handler) SubmitTile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req TileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	snap, err := h.SessionService.SubmitTile(userID, req.Tile)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit tile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": snap})
}

// StopGame ends the caller's session early. The reached score still counts.
func (h *Handler) StopGame(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	snap, err := h.SessionService.StopSession(userID)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stop session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": snap})
}

// ResetGame silently returns the caller's session to idle. Nothing is
// recorded.
func (h *Handler) ResetGame(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	snap, err := h.SessionService.ResetSession(userID)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": snap})
}

// SetDifficulty changes the difficulty of an idle session. During play the
// request is accepted but has no effect until the next game.
func (h *Handler) SetDifficulty(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req DifficultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	d, err := game.ParseDifficulty(req.Difficulty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty"})
		return
	}

	snap := h.SessionService.SetDifficulty(userID, d)
	c.JSON(http.StatusOK, gin.H{"session": snap})
}

// GameState returns the caller's current session snapshot.
func (h *Handler) GameState(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	snap, err := h.SessionService.GetState(userID)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": snap})
}

// GameInfo describes the grid and difficulty profiles so clients do not
// hardcode timings.
func (h *Handler) GameInfo(c *gin.Context) {
	profiles := gin.H{}
	for _, d := range game.Difficulties() {
		p := game.ProfileFor(d)
		profiles[string(d)] = gin.H{
			"reveal_duration_ms": p.RevealDuration / time.Millisecond,
			"pause_duration_ms":  p.PauseDuration / time.Millisecond,
			"base_multiplier":    p.BaseMultiplier,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"grid_size":            game.GridSize,
		"inter_round_delay_ms": game.DefaultInterRoundDelay / time.Millisecond,
		"profiles":             profiles,
	})
}
