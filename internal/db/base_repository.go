package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/spawnpoint/internal/model"
)

// BaseRepository reads player base placements.
type BaseRepository struct {
	pool *pgxpool.Pool
}

// NewBaseRepository creates a new BaseRepository.
func NewBaseRepository(pool *pgxpool.Pool) *BaseRepository {
	return &BaseRepository{pool: pool}
}

// ActiveBaseCoordinate returns the coordinate of the player's active base.
// Returns nil, nil if the player has no active base.
func (r *BaseRepository) ActiveBaseCoordinate(ctx context.Context, playerID string) (*model.Coordinate, error) {
	var c model.Coordinate
	err := r.pool.QueryRow(ctx,
		`SELECT x, y
		 FROM active_bases
		 WHERE player_id = $1 AND is_active
		 ORDER BY created_at DESC
		 LIMIT 1`, playerID,
	).Scan(&c.X, &c.Y)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying active base for player %q: %w", playerID, err)
	}
	return &c, nil
}

// ScanActiveSections returns the map-section key of every active base.
// One entry per base, so repeated keys carry the density information.
func (r *BaseRepository) ScanActiveSections(ctx context.Context) ([]model.SectionKey, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT x, y FROM active_bases WHERE is_active`)
	if err != nil {
		return nil, fmt.Errorf("scanning active bases: %w", err)
	}
	defer rows.Close()

	sections := make([]model.SectionKey, 0, 64)
	for rows.Next() {
		var c model.Coordinate
		if err := rows.Scan(&c.X, &c.Y); err != nil {
			return nil, fmt.Errorf("scanning base row: %w", err)
		}
		sections = append(sections, c.Section())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating base rows: %w", err)
	}

	return sections, nil
}
