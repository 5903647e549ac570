package repository

import (
	"context"

	"simon_webapp/internal/game"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LeaderboardEntry is one row of the per-difficulty leaderboard.
type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	UserID         int64  `json:"user_id"`
	Username       string `json:"username"`
	Score          int    `json:"score"`
	SequenceLength int    `json:"sequence_length"`
}

type LeaderboardRepository struct {
	db *pgxpool.Pool
}

func NewLeaderboardRepository(db *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// GetTop returns the best scores at one difficulty, ranked.
func (r *LeaderboardRepository) GetTop(ctx context.Context, d game.Difficulty, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT RANK() OVER (ORDER BY hs.score DESC) AS rank,
			u.id, u.username, hs.score,
			COALESCE((
				SELECT MAX(sr.sequence_length)
				FROM score_records sr
				WHERE sr.user_id = u.id AND sr.difficulty = hs.difficulty
			), 0) AS best_length
		 FROM high_scores hs
		 JOIN users u ON u.id = hs.user_id
		 WHERE hs.difficulty = $1
		 ORDER BY hs.score DESC, hs.updated_at ASC
		 LIMIT $2`,
		d, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Rank, &e.UserID, &e.Username, &e.Score, &e.SequenceLength); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// GetUserRank returns the user's rank and best score at one difficulty.
// Users with no high score rank 0.
func (r *LeaderboardRepository) GetUserRank(ctx context.Context, userID int64, d game.Difficulty) (int, int, error) {
	var rank, score int
	err := r.db.QueryRow(ctx,
		`WITH ranked AS (
			SELECT user_id, score,
				RANK() OVER (ORDER BY score DESC) AS rank
			FROM high_scores
			WHERE difficulty = $1
		)
		SELECT rank, score FROM ranked WHERE user_id = $2`,
		d, userID,
	).Scan(&rank, &score)
	if err != nil {
		return 0, 0, err
	}
	return rank, score, nil
}
