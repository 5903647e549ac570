package service

import (
	"context"

	"simon_webapp/internal/domain"
	"simon_webapp/internal/game"
)

// HistoryStore loads the score history the evaluator runs over.
type HistoryStore interface {
	GetHistoryEntries(ctx context.Context, userID int64) ([]game.HistoryEntry, error)
}

// AchievementStore persists unlocks.
type AchievementStore interface {
	ListUnlocked(ctx context.Context, userID int64) ([]*domain.UserAchievement, error)
	Unlock(ctx context.Context, userID int64, code string) (bool, error)
}

type AchievementService struct {
	history HistoryStore
	unlocks AchievementStore
}

func NewAchievementService(history HistoryStore, unlocks AchievementStore) *AchievementService {
	return &AchievementService{history: history, unlocks: unlocks}
}

// EvaluateForUser re-runs the pure evaluator over the user's full history
// and records any achievements not yet unlocked. Returns the codes that
// became newly unlocked.
func (s *AchievementService) EvaluateForUser(ctx context.Context, userID int64) ([]string, error) {
	history, err := s.history.GetHistoryEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	var newlyUnlocked []string
	for _, code := range game.EvaluateAchievements(history) {
		inserted, err := s.unlocks.Unlock(ctx, userID, code)
		if err != nil {
			return newlyUnlocked, err
		}
		if inserted {
			newlyUnlocked = append(newlyUnlocked, code)
		}
	}
	return newlyUnlocked, nil
}
