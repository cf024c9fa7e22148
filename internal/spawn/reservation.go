package spawn

import (
	"context"
	"log/slog"
	"time"

	"github.com/udisondev/spawnpoint/internal/model"
)

// ReservationWriter persists soft spawn reservations.
type ReservationWriter interface {
	Upsert(ctx context.Context, res model.SpawnReservation) error
}

// ReservationManager writes the time-boxed soft lock for a chosen spawn
// location so it is not immediately offered again.
type ReservationManager struct {
	reservations ReservationWriter
	ttl          time.Duration
	now          func() time.Time
}

// NewReservationManager creates a manager that reserves locations for the
// given TTL.
func NewReservationManager(reservations ReservationWriter, ttl time.Duration) *ReservationManager {
	return &ReservationManager{
		reservations: reservations,
		ttl:          ttl,
		now:          time.Now,
	}
}

// Reserve writes the reservation record. Best-effort: a write failure is
// logged and absorbed, since the reservation is advisory and must not block
// handing the location to the player.
func (m *ReservationManager) Reserve(ctx context.Context, spawnLocationID, playerID string) {
	reservedAt := m.now()
	res := model.SpawnReservation{
		SpawnRegionID:   model.ReservationRegionID,
		SpawnLocationID: spawnLocationID,
		ReservedBy:      playerID,
		ReservedAt:      reservedAt,
		ExpiresAt:       reservedAt.Add(m.ttl),
		IsAvailable:     false,
	}
	if err := m.reservations.Upsert(ctx, res); err != nil {
		slog.Warn("spawn reservation write failed, continuing without reservation",
			"spawnLocationID", spawnLocationID,
			"playerID", playerID,
			"err", err)
		return
	}
	slog.Debug("spawn location reserved",
		"spawnLocationID", spawnLocationID,
		"playerID", playerID,
		"expiresAt", res.ExpiresAt)
}
