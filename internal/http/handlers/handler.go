package handlers

import (
	"simon_webapp/internal/repository"
	"simon_webapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB              *pgxpool.Pool
	UserRepo        *repository.UserRepository
	ScoreRepo       *repository.ScoreRepository
	ThemeRepo       *repository.ThemeRepository
	AchievementRepo *repository.AchievementRepository
	AuthService     *service.AuthService
	SessionService  *service.SessionService
	Leaderboard     *service.LeaderboardService
}

func NewHandler(db *pgxpool.Pool, sessions *service.SessionService, leaderboard *service.LeaderboardService) *Handler {
	userRepo := repository.NewUserRepository(db)
	return &Handler{
		DB:              db,
		UserRepo:        userRepo,
		ScoreRepo:       repository.NewScoreRepository(db),
		ThemeRepo:       repository.NewThemeRepository(db),
		AchievementRepo: repository.NewAchievementRepository(db),
		AuthService:     service.NewAuthService(userRepo),
		SessionService:  sessions,
		Leaderboard:     leaderboard,
	}
}

// getUserID extracts the authenticated user id set by the JWT middleware.
func getUserID(c *gin.Context) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
