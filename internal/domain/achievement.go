package domain

import "time"

// UserAchievement is one unlocked achievement. The catalog itself lives in
// the game package; only unlocks are persisted.
type UserAchievement struct {
	UserID     int64     `db:"user_id" json:"user_id"`
	Code       string    `db:"code" json:"code"`
	UnlockedAt time.Time `db:"unlocked_at" json:"unlocked_at"`
}
