package handlers

import (
	"net/http"

	"simon_webapp/internal/game"

	"github.com/gin-gonic/gin"
)

// AchievementCatalog lists every achievement with the caller's unlock state.
func (h *Handler) AchievementCatalog(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	unlocked, err := h.AchievementRepo.ListUnlocked(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load achievements"})
		return
	}

	unlockedAt := make(map[string]any, len(unlocked))
	for _, ua := range unlocked {
		unlockedAt[ua.Code] = ua.UnlockedAt
	}

	out := make([]gin.H, 0, len(game.Catalog))
	for _, def := range game.Catalog {
		entry := gin.H{
			"code":        def.Code,
			"name":        def.Name,
			"description": def.Description,
			"unlocked":    false,
		}
		if at, ok := unlockedAt[def.Code]; ok {
			entry["unlocked"] = true
			entry["unlocked_at"] = at
		}
		out = append(out, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"achievements": out,
		"unlocked":     len(unlocked),
		"total":        len(game.Catalog),
	})
}
