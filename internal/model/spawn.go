package model

import "time"

// Candidate is a spawn coordinate under consideration. Candidates live only
// for the duration of one allocation request and are never persisted.
type Candidate struct {
	Coordinate Coordinate
	Section    SectionKey
}

// NewCandidate builds a candidate with its section key derived from the
// coordinate.
func NewCandidate(c Coordinate) Candidate {
	return Candidate{Coordinate: c, Section: c.Section()}
}

// ScoredCandidate is a candidate with its normalized sub-scores and the
// weighted composite. All scores lie in [0,1].
type ScoredCandidate struct {
	Candidate
	Score         float64
	DensityScore  float64
	SafetyScore   float64
	ResourceScore float64
	FriendScore   float64
}

// SpawnLocation is the allocation result offered to the player. The
// SpawnLocationID identifies the reservation record, not a durable place on
// the map; two callers picking the same coordinate get distinct IDs.
type SpawnLocation struct {
	Coordinates           Coordinate `json:"coordinates"`
	SpawnLocationID       string     `json:"spawnLocationId"`
	PopulationDensity     float64    `json:"populationDensity"`
	SafetyRating          float64    `json:"safetyRating"`
	ResourceAccessibility float64    `json:"resourceAccessibility"`
	Reason                string     `json:"reason"`
}

// ReservationRegionID marks reservation rows produced by the allocation
// engine, as opposed to hand-placed spawn regions.
const ReservationRegionID = "calculated"

// SpawnReservation is a time-boxed soft lock on an offered spawn location.
// It is advisory: it discourages immediate reuse but does not guarantee
// exclusivity, and it expires rather than being confirmed or deleted here.
type SpawnReservation struct {
	SpawnRegionID   string
	SpawnLocationID string
	ReservedBy      string
	ReservedAt      time.Time
	ExpiresAt       time.Time
	IsAvailable     bool
}
