package repository

import (
	"context"
	"errors"

	"simon_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ThemeRepository struct {
	db *pgxpool.Pool
}

func NewThemeRepository(db *pgxpool.Pool) *ThemeRepository {
	return &ThemeRepository{db: db}
}

// GetByUser returns the user's saved theme, or the default when none was
// saved yet.
func (r *ThemeRepository) GetByUser(ctx context.Context, userID int64) (*domain.Theme, error) {
	var t domain.Theme
	err := r.db.QueryRow(ctx,
		`SELECT user_id, name, tile_color, tile_active_color, background_color, grid_color, updated_at
		 FROM themes
		 WHERE user_id = $1`,
		userID,
	).Scan(&t.UserID, &t.Name, &t.TileColor, &t.TileActiveColor,
		&t.BackgroundColor, &t.GridColor, &t.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DefaultTheme(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Upsert saves the theme, replacing any previous settings.
func (r *ThemeRepository) Upsert(ctx context.Context, t *domain.Theme) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO themes (user_id, name, tile_color, tile_active_color, background_color, grid_color)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id)
		 DO UPDATE SET name = EXCLUDED.name,
			tile_color = EXCLUDED.tile_color,
			tile_active_color = EXCLUDED.tile_active_color,
			background_color = EXCLUDED.background_color,
			grid_color = EXCLUDED.grid_color,
			updated_at = now()
		 RETURNING updated_at`,
		t.UserID, t.Name, t.TileColor, t.TileActiveColor, t.BackgroundColor, t.GridColor,
	).Scan(&t.UpdatedAt)
}
