package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/spawnpoint/internal/model"
)

// ReservationRepository persists soft spawn-location reservations.
type ReservationRepository struct {
	pool *pgxpool.Pool
}

// NewReservationRepository creates a new ReservationRepository.
func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// Upsert writes a reservation row. Reservations are keyed by the generated
// spawn location ID, so distinct requests never collide even when they
// picked the same coordinate.
func (r *ReservationRepository) Upsert(ctx context.Context, res model.SpawnReservation) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO spawn_reservations
		   (spawn_location_id, spawn_region_id, reserved_by, reserved_at, expires_at, is_available)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (spawn_location_id) DO UPDATE SET
		   spawn_region_id = EXCLUDED.spawn_region_id,
		   reserved_by     = EXCLUDED.reserved_by,
		   reserved_at     = EXCLUDED.reserved_at,
		   expires_at      = EXCLUDED.expires_at,
		   is_available    = EXCLUDED.is_available`,
		res.SpawnLocationID, res.SpawnRegionID, res.ReservedBy,
		res.ReservedAt, res.ExpiresAt, res.IsAvailable,
	)
	if err != nil {
		return fmt.Errorf("upserting reservation %q: %w", res.SpawnLocationID, err)
	}
	return nil
}

// PurgeExpired deletes reservations whose expiry has passed and returns the
// number of rows removed. Stands in for the TTL mechanism of stores that
// expire rows natively.
func (r *ReservationRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM spawn_reservations WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("purging expired reservations: %w", err)
	}
	if n := tag.RowsAffected(); n > 0 {
		slog.Debug("purged expired spawn reservations", "count", n)
		return n, nil
	}
	return 0, nil
}
