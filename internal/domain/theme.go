package domain

import "time"

// Theme holds a player's custom visual settings for the 3x3 grid.
// Colors are CSS color strings, validated at the API edge.
type Theme struct {
	UserID          int64     `db:"user_id" json:"user_id"`
	Name            string    `db:"name" json:"name"`
	TileColor       string    `db:"tile_color" json:"tile_color"`
	TileActiveColor string    `db:"tile_active_color" json:"tile_active_color"`
	BackgroundColor string    `db:"background_color" json:"background_color"`
	GridColor       string    `db:"grid_color" json:"grid_color"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// DefaultTheme is used for users who never saved custom settings.
func DefaultTheme(userID int64) *Theme {
	return &Theme{
		UserID:          userID,
		Name:            "classic",
		TileColor:       "#2d6cdf",
		TileActiveColor: "#ffd84d",
		BackgroundColor: "#101622",
		GridColor:       "#1b2434",
	}
}
