package spawn

import (
	"context"
	"log/slog"

	"github.com/udisondev/spawnpoint/internal/model"
)

// BaseCoordinateSource resolves a player's active base coordinate.
// Returns nil, nil when the player has no active base.
type BaseCoordinateSource interface {
	ActiveBaseCoordinate(ctx context.Context, playerID string) (*model.Coordinate, error)
}

// FriendLocator resolves the base coordinates of a player's friends so
// candidate generation can bias toward their centroid.
type FriendLocator struct {
	bases      BaseCoordinateSource
	maxLookups int
}

// NewFriendLocator creates a FriendLocator that resolves at most maxLookups
// friend IDs per request.
func NewFriendLocator(bases BaseCoordinateSource, maxLookups int) *FriendLocator {
	return &FriendLocator{bases: bases, maxLookups: maxLookups}
}

// Locate returns the active-base coordinates of up to the first maxLookups
// friend IDs. Lookup failures and friends without a base are skipped, so the
// result may be any subset down to empty; it never fails.
func (l *FriendLocator) Locate(ctx context.Context, friendIDs []string) []model.Coordinate {
	if len(friendIDs) > l.maxLookups {
		friendIDs = friendIDs[:l.maxLookups]
	}

	coords := make([]model.Coordinate, 0, len(friendIDs))
	for _, id := range friendIDs {
		coord, err := l.bases.ActiveBaseCoordinate(ctx, id)
		if err != nil {
			slog.Warn("friend base lookup failed, skipping",
				"friendID", id,
				"err", err)
			continue
		}
		if coord == nil {
			continue
		}
		coords = append(coords, *coord)
	}
	return coords
}
