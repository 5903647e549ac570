package http

import (
	"simon_webapp/internal/config"
	"simon_webapp/internal/http/handlers"
	"simon_webapp/internal/http/middleware"
	"simon_webapp/internal/service"
	"simon_webapp/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, sessions *service.SessionService, leaderboard *service.LeaderboardService, hub *ws.Hub, cfg *config.Config, version string) {
	h := handlers.NewHandler(db, sessions, leaderboard)
	healthHandler := handlers.NewHealthHandler(db, sessions, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(v1, h, cfg)

	// Legacy /api routes (kept for early frontend builds)
	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	api.GET("/health", healthHandler.Health)
	registerAPIRoutes(api, h, cfg)

	// WebSocket event stream
	r.GET("/ws", h.WS(hub))

	// Frontend static files
	r.StaticFS("/assets", gin.Dir("../frontend", false))
	r.NoRoute(func(c *gin.Context) {
		c.File("../frontend/index.html")
	})
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config) {
	authRL := middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)

	// Auth
	api.POST("/auth/register", authRL, h.Register)
	api.POST("/auth/login", authRL, h.Login)

	// User profile
	api.GET("/me", middleware.JWT(), h.Me)
	api.GET("/me/scores", middleware.JWT(), h.MyScores)
	api.GET("/me/stats", middleware.JWT(), h.MyStats)
	api.GET("/me/achievements", middleware.JWT(), h.AchievementCatalog)

	// Theme settings
	api.GET("/me/theme", middleware.JWT(), h.GetTheme)
	api.PUT("/me/theme", middleware.JWT(), h.UpdateTheme)

	// Game rate limiter (per user, not per IP). Tile presses arrive in
	// bursts during input, so the window is short.
	gameRL := middleware.GameRateLimit(cfg.GameRateLimit, cfg.GameRateWindow)

	// Session commands
	api.POST("/game/start", middleware.JWT(), gameRL, h.StartGame)
	api.POST("/game/tile", middleware.JWT(), gameRL, h.SubmitTile)
	api.POST("/game/stop", middleware.JWT(), h.StopGame)
	api.POST("/game/reset", middleware.JWT(), h.ResetGame)
	api.POST("/game/difficulty", middleware.JWT(), h.SetDifficulty)
	api.GET("/game/state", middleware.JWT(), h.GameState)
	api.GET("/game/info", h.GameInfo)

	// Leaderboard (per difficulty top + user rank)
	api.GET("/leaderboard", h.GetLeaderboard)
	api.GET("/leaderboard/rank", middleware.JWT(), h.GetMyRank)
}
