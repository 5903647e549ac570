package domain

import (
	"time"

	"simon_webapp/internal/game"
)

// ScoreRecord is one finished session, appended when a session ends.
type ScoreRecord struct {
	ID             int64           `db:"id" json:"id"`
	UserID         int64           `db:"user_id" json:"user_id"`
	Score          int             `db:"score" json:"score"`
	Difficulty     game.Difficulty `db:"difficulty" json:"difficulty"`
	SequenceLength int             `db:"sequence_length" json:"sequence_length"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// HighScore is the per-user, per-difficulty best. Updated with
// write-if-greater semantics only.
type HighScore struct {
	UserID     int64           `db:"user_id" json:"user_id"`
	Difficulty game.Difficulty `db:"difficulty" json:"difficulty"`
	Score      int             `db:"score" json:"score"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}
