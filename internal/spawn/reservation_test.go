package spawn

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/spawnpoint/internal/model"
)

// mockReservationWriter captures upserts and optionally fails them.
type mockReservationWriter struct {
	reservations []model.SpawnReservation
	err          error
}

func (m *mockReservationWriter) Upsert(ctx context.Context, res model.SpawnReservation) error {
	if m.err != nil {
		return m.err
	}
	m.reservations = append(m.reservations, res)
	return nil
}

func TestReservationManager_Reserve(t *testing.T) {
	writer := &mockReservationWriter{}
	m := NewReservationManager(writer, 300*time.Second)
	fixed := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	m.Reserve(context.Background(), "spawn_123_abcdef", "p1")

	require.Len(t, writer.reservations, 1)
	res := writer.reservations[0]
	assert.Equal(t, model.ReservationRegionID, res.SpawnRegionID)
	assert.Equal(t, "spawn_123_abcdef", res.SpawnLocationID)
	assert.Equal(t, "p1", res.ReservedBy)
	assert.Equal(t, fixed, res.ReservedAt)
	assert.Equal(t, fixed.Add(300*time.Second), res.ExpiresAt)
	assert.False(t, res.IsAvailable)
}

func TestReservationManager_WriteFailureAbsorbed(t *testing.T) {
	writer := &mockReservationWriter{err: errors.New("provisioned throughput exceeded")}
	m := NewReservationManager(writer, 300*time.Second)

	// Must not panic or propagate anything.
	m.Reserve(context.Background(), "spawn_1_aaaaaa", "p1")

	assert.Empty(t, writer.reservations)
}
