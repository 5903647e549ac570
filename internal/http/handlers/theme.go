package handlers

import (
	"net/http"
	"regexp"

	"simon_webapp/internal/domain"

	"github.com/gin-gonic/gin"
)

// hexColor accepts #RGB and #RRGGBB.
var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type ThemeRequest struct {
	Name            string `json:"name" binding:"required,max=32"`
	TileColor       string `json:"tile_color" binding:"required"`
	TileActiveColor string `json:"tile_active_color" binding:"required"`
	BackgroundColor string `json:"background_color" binding:"required"`
	GridColor       string `json:"grid_color" binding:"required"`
}

func (h *Handler) GetTheme(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	theme, err := h.ThemeRepo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load theme"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (h *Handler) UpdateTheme(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	for _, col := range []string{req.TileColor, req.TileActiveColor, req.BackgroundColor, req.GridColor} {
		if !hexColor.MatchString(col) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "colors must be hex strings like #1a2b3c"})
			return
		}
	}

	theme := &domain.Theme{
		UserID:          userID,
		Name:            req.Name,
		TileColor:       req.TileColor,
		TileActiveColor: req.TileActiveColor,
		BackgroundColor: req.BackgroundColor,
		GridColor:       req.GridColor,
	}
	if err := h.ThemeRepo.Upsert(c.Request.Context(), theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save theme"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"theme": theme})
}
