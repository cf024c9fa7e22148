package spawn

import (
	"errors"
	"fmt"
	"time"

	"github.com/udisondev/spawnpoint/internal/model"
)

// ErrNoCandidates is returned when selection is handed an empty candidate
// list. The generator always emits a full set, so hitting this indicates a
// broken precondition upstream, not a recoverable condition.
var ErrNoCandidates = errors.New("no spawn candidates to select from")

// Reason thresholds, checked in priority order.
const (
	reasonFriendThreshold   = 0.5
	reasonSafetyThreshold   = 0.8
	reasonResourceThreshold = 0.9
	reasonDensityThreshold  = 0.2
)

// Select picks the best candidate from an already-sorted scored list and
// turns it into the spawn location offered to the player, including a fresh
// reservation ID.
func Select(scored []model.ScoredCandidate, rng Rand, now time.Time) (model.SpawnLocation, error) {
	if len(scored) == 0 {
		return model.SpawnLocation{}, ErrNoCandidates
	}

	best := scored[0]
	return model.SpawnLocation{
		Coordinates:           best.Coordinate,
		SpawnLocationID:       newSpawnLocationID(rng, now),
		PopulationDensity:     best.DensityScore,
		SafetyRating:          best.SafetyScore,
		ResourceAccessibility: best.ResourceScore,
		Reason:                selectionReason(best),
	}, nil
}

// selectionReason derives the human-readable justification, most specific
// condition first.
func selectionReason(sc model.ScoredCandidate) string {
	switch {
	case sc.FriendScore > reasonFriendThreshold:
		return "near friends"
	case sc.SafetyScore > reasonSafetyThreshold:
		return "safe starter location"
	case sc.ResourceScore > reasonResourceThreshold:
		return "excellent resource access"
	case sc.DensityScore < reasonDensityThreshold:
		return "low population density"
	default:
		return "optimal balance"
	}
}

const idSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newSpawnLocationID generates a reservation identifier, millisecond
// timestamp plus a 6-character random suffix. IDs carry no positional
// meaning and are never reused.
func newSpawnLocationID(rng Rand, now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idSuffixAlphabet[rng.Intn(len(idSuffixAlphabet))]
	}
	return fmt.Sprintf("spawn_%d_%s", now.UnixMilli(), suffix)
}
