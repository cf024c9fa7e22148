package spawn

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/spawnpoint/internal/config"
	"github.com/udisondev/spawnpoint/internal/model"
)

// BaseSource combines the two read paths the engine needs from the base
// store.
type BaseSource interface {
	BaseCoordinateSource
	SectionScanner
}

// Request is a validated spawn-location request.
type Request struct {
	PlayerID         string
	PreferredRegion  model.RegionName
	GroupWithFriends bool
	FriendIDs        []string
}

// Result is a successful allocation: the offered location and how long its
// soft reservation holds, in seconds.
type Result struct {
	SpawnLocation model.SpawnLocation `json:"spawnLocation"`
	ValidFor      int                 `json:"validFor"`
}

// Allocator runs the full allocation pipeline: friend location and density
// analysis fan out concurrently, then candidates are generated, scored,
// selected and soft-reserved.
type Allocator struct {
	friends      *FriendLocator
	density      *DensityAnalyzer
	generator    *CandidateGenerator
	scorer       *Scorer
	reservations *ReservationManager
	ttl          time.Duration
	rng          Rand
}

// NewAllocator wires the engine from its collaborators and tuning config.
func NewAllocator(cfg config.SpawnConfig, bases BaseSource, reservations ReservationWriter, rng Rand) *Allocator {
	return &Allocator{
		friends:      NewFriendLocator(bases, cfg.MaxFriendLookups),
		density:      NewDensityAnalyzer(bases),
		generator:    NewCandidateGenerator(cfg.Radius, cfg.CandidateCount, cfg.FriendBiasRadius, rng),
		scorer:       NewScorer(cfg.Weights, rng),
		reservations: NewReservationManager(reservations, cfg.ReservationTTL),
		ttl:          cfg.ReservationTTL,
		rng:          rng,
	}
}

// Allocate computes a spawn location for the request. Friend and density
// lookups degrade to empty data on failure; only a selection failure is
// surfaced, wrapped in a CalculationError. The reservation write is
// best-effort and does not gate the result.
func (a *Allocator) Allocate(ctx context.Context, req Request) (Result, error) {
	var (
		friendCoords []model.Coordinate
		density      map[model.SectionKey]int
	)

	// Independent reads, no data dependency between them.
	g, gctx := errgroup.WithContext(ctx)
	if req.GroupWithFriends && len(req.FriendIDs) > 0 {
		g.Go(func() error {
			friendCoords = a.friends.Locate(gctx, req.FriendIDs)
			return nil
		})
	}
	g.Go(func() error {
		density = a.density.Analyze(gctx)
		return nil
	})
	// Both tasks absorb their own failures.
	_ = g.Wait()

	candidates := a.generator.Generate(req.PreferredRegion, friendCoords)
	scored := a.scorer.Score(candidates, friendCoords, density)

	location, err := Select(scored, a.rng, time.Now())
	if err != nil {
		return Result{}, &CalculationError{PlayerID: req.PlayerID, Err: err}
	}

	a.reservations.Reserve(ctx, location.SpawnLocationID, req.PlayerID)

	slog.Info("spawn location allocated",
		"playerID", req.PlayerID,
		"region", req.PreferredRegion,
		"x", location.Coordinates.X,
		"y", location.Coordinates.Y,
		"reason", location.Reason,
		"friends", len(friendCoords))

	return Result{
		SpawnLocation: location,
		ValidFor:      int(a.ttl.Seconds()),
	}, nil
}
