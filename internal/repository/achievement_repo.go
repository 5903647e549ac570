package repository

import (
	"context"

	"simon_webapp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AchievementRepository struct {
	db *pgxpool.Pool
}

func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// ListUnlocked returns the user's unlocked achievements, oldest first.
func (r *AchievementRepository) ListUnlocked(ctx context.Context, userID int64) ([]*domain.UserAchievement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, code, unlocked_at
		 FROM user_achievements
		 WHERE user_id = $1
		 ORDER BY unlocked_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.UserAchievement
	for rows.Next() {
		var ua domain.UserAchievement
		if err := rows.Scan(&ua.UserID, &ua.Code, &ua.UnlockedAt); err != nil {
			return nil, err
		}
		result = append(result, &ua)
	}
	return result, rows.Err()
}

// Unlock records an achievement. Returns false when it was already unlocked.
func (r *AchievementRepository) Unlock(ctx context.Context, userID int64, code string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO user_achievements (user_id, code)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, code) DO NOTHING`,
		userID, code,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
