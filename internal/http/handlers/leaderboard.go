package handlers

import (
	"net/http"
	"strconv"

	"simon_webapp/internal/game"

	"github.com/gin-gonic/gin"
)

const leaderboardSize = 100

// GetLeaderboard returns the top players for one difficulty.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	d, err := game.ParseDifficulty(c.DefaultQuery("difficulty", string(game.DifficultyEasy)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty"})
		return
	}

	limit := leaderboardSize
	if v := c.Query("limit"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = min(n, leaderboardSize)
	}

	top, err := h.Leaderboard.GetTop(c.Request.Context(), d, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"difficulty":  d,
		"leaderboard": top,
	})
}

// GetMyRank returns the current user's rank and best score at one difficulty.
func (h *Handler) GetMyRank(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	d, err := game.ParseDifficulty(c.DefaultQuery("difficulty", string(game.DifficultyEasy)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty"})
		return
	}

	rank, best, err := h.Leaderboard.GetUserRank(c.Request.Context(), userID, d)
	if err != nil {
		// No finished games yet at this difficulty.
		c.JSON(http.StatusOK, gin.H{
			"difficulty": d,
			"rank":       0,
			"score":      0,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"difficulty": d,
		"rank":       rank,
		"score":      best,
	})
}
