package repository

import (
	"context"
	"errors"

	"simon_webapp/internal/domain"
	"simon_webapp/internal/game"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScoreRepository struct {
	db *pgxpool.Pool
}

func NewScoreRepository(db *pgxpool.Pool) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// Create appends a finished-session record.
func (r *ScoreRepository) Create(ctx context.Context, rec *domain.ScoreRecord) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO score_records (user_id, score, difficulty, sequence_length)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		rec.UserID,
		rec.Score,
		rec.Difficulty,
		rec.SequenceLength,
	).Scan(&rec.ID, &rec.CreatedAt)
}

// GetByUser returns the user's most recent games.
func (r *ScoreRepository) GetByUser(ctx context.Context, userID int64, limit int) ([]*domain.ScoreRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, score, difficulty, sequence_length, created_at
		 FROM score_records
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.ScoreRecord
	for rows.Next() {
		var rec domain.ScoreRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Score, &rec.Difficulty,
			&rec.SequenceLength, &rec.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &rec)
	}
	return result, rows.Err()
}

// GetHighScore returns the user's best at one difficulty, 0 when no record
// exists yet.
func (r *ScoreRepository) GetHighScore(ctx context.Context, userID int64, d game.Difficulty) (int, error) {
	var score int
	err := r.db.QueryRow(ctx,
		`SELECT score FROM high_scores WHERE user_id = $1 AND difficulty = $2`,
		userID, d,
	).Scan(&score)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return score, err
}

// GetHighScores returns all of the user's per-difficulty bests.
func (r *ScoreRepository) GetHighScores(ctx context.Context, userID int64) ([]*domain.HighScore, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, difficulty, score, updated_at
		 FROM high_scores
		 WHERE user_id = $1
		 ORDER BY difficulty`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.HighScore
	for rows.Next() {
		var hs domain.HighScore
		if err := rows.Scan(&hs.UserID, &hs.Difficulty, &hs.Score, &hs.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &hs)
	}
	return result, rows.Err()
}

// UpsertHighScoreIfGreater writes the score only if it beats the stored
// best. Returns whether a new record was written.
func (r *ScoreRepository) UpsertHighScoreIfGreater(ctx context.Context, userID int64, d game.Difficulty, score int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO high_scores (user_id, difficulty, score)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, difficulty)
		 DO UPDATE SET score = EXCLUDED.score, updated_at = now()
		 WHERE high_scores.score < EXCLUDED.score`,
		userID, d, score,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// GetStats aggregates the user's history per difficulty. SQL mirror of
// game.SummarizeStats for users with long histories.
func (r *ScoreRepository) GetStats(ctx context.Context, userID int64) ([]game.DifficultyStats, error) {
	rows, err := r.db.Query(ctx,
		`SELECT difficulty,
			COUNT(*) AS games_played,
			COALESCE(MAX(score), 0) AS best_score,
			COALESCE(MAX(sequence_length), 0) AS best_length,
			COALESCE(SUM(score), 0) AS total_score
		 FROM score_records
		 WHERE user_id = $1
		 GROUP BY difficulty`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byLevel := map[game.Difficulty]game.DifficultyStats{}
	for rows.Next() {
		var st game.DifficultyStats
		if err := rows.Scan(&st.Difficulty, &st.GamesPlayed, &st.BestScore,
			&st.BestLength, &st.TotalScore); err != nil {
			return nil, err
		}
		byLevel[st.Difficulty] = st
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Difficulties with no games still get a zeroed row.
	result := make([]game.DifficultyStats, 0, len(game.Difficulties()))
	for _, d := range game.Difficulties() {
		st, ok := byLevel[d]
		if !ok {
			st = game.DifficultyStats{Difficulty: d}
		}
		result = append(result, st)
	}
	return result, nil
}

// GetHistoryEntries loads the compact history the achievement evaluator
// consumes.
func (r *ScoreRepository) GetHistoryEntries(ctx context.Context, userID int64) ([]game.HistoryEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT score, difficulty, sequence_length
		 FROM score_records
		 WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []game.HistoryEntry
	for rows.Next() {
		var e game.HistoryEntry
		if err := rows.Scan(&e.Score, &e.Difficulty, &e.SequenceLength); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
