package service

import (
	"context"
	"strconv"

	"simon_webapp/internal/game"
	"simon_webapp/internal/logger"
	"simon_webapp/internal/repository"

	redis "github.com/redis/go-redis/v9"
)

// LeaderboardService serves ranked high scores. Postgres is authoritative;
// a redis sorted set per difficulty is kept as a fast path for rank lookups
// and skipped entirely when redis is not configured (fail-open, same
// posture as the rate limiter).
type LeaderboardService struct {
	repo *repository.LeaderboardRepository
	rdb  *redis.Client
}

func NewLeaderboardService(repo *repository.LeaderboardRepository, rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{repo: repo, rdb: rdb}
}

func lbKey(d game.Difficulty) string {
	return "lb:" + string(d)
}

// RecordScore mirrors a new high score into the redis sorted set. ZADD GT
// keeps the stored member score monotonic, matching the write-if-greater
// semantics of the high_scores table.
func (s *LeaderboardService) RecordScore(ctx context.Context, userID int64, d game.Difficulty, score int) {
	if s.rdb == nil {
		return
	}

	err := s.rdb.ZAddGT(ctx, lbKey(d), redis.Z{
		Score:  float64(score),
		Member: strconv.FormatInt(userID, 10),
	}).Err()
	if err != nil {
		logger.Warn("leaderboard redis update failed", "error", err, "user_id", userID)
	}
}

// GetTop returns the ranked top entries for a difficulty.
func (s *LeaderboardService) GetTop(ctx context.Context, d game.Difficulty, limit int) ([]repository.LeaderboardEntry, error) {
	return s.repo.GetTop(ctx, d, limit)
}

// GetUserRank returns the user's rank and best score. The redis sorted set
// answers first; postgres is the fallback when redis is missing or cold.
func (s *LeaderboardService) GetUserRank(ctx context.Context, userID int64, d game.Difficulty) (int, int, error) {
	if s.rdb != nil {
		member := strconv.FormatInt(userID, 10)
		rank, err := s.rdb.ZRevRank(ctx, lbKey(d), member).Result()
		if err == nil {
			score, err := s.rdb.ZScore(ctx, lbKey(d), member).Result()
			if err == nil {
				return int(rank) + 1, int(score), nil
			}
		}
	}

	return s.repo.GetUserRank(ctx, userID, d)
}
