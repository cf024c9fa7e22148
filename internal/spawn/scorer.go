package spawn

import (
	"sort"

	"github.com/udisondev/spawnpoint/internal/config"
	"github.com/udisondev/spawnpoint/internal/model"
)

const (
	// placeholderDensity is assumed for every section when no density data
	// is available (scan degraded or empty world).
	placeholderDensity = 0.1
	// densityCeiling is the per-section base count at which densityScore
	// bottoms out at 0.
	densityCeiling = 10.0
	// safetyFalloff is the distance from origin at which safetyScore
	// reaches 0.
	safetyFalloff = 5000.0
	// friendFalloff is the mean friend distance at which friendScore
	// reaches 0.
	friendFalloff = 1000.0
	// resourceFloor / resourceSpan bound the placeholder resource score,
	// sampled uniformly in [floor, floor+span). TODO: replace with a real
	// resource-accessibility model once resource nodes are persisted.
	resourceFloor = 0.7
	resourceSpan  = 0.3
)

// Scorer computes the four sub-scores and their weighted composite for each
// candidate.
type Scorer struct {
	weights config.ScoreWeights
	rng     Rand
}

// NewScorer creates a Scorer with the given composite weights. The weights
// must sum to 1 (enforced by config validation) so the composite stays in
// [0,1].
func NewScorer(weights config.ScoreWeights, rng Rand) *Scorer {
	return &Scorer{weights: weights, rng: rng}
}

// Score rates every candidate and returns them sorted by composite score,
// descending. The sort is stable: ties keep generation order. It never
// fails.
func (s *Scorer) Score(
	candidates []model.Candidate,
	friendCoords []model.Coordinate,
	density map[model.SectionKey]int,
) []model.ScoredCandidate {
	scored := make([]model.ScoredCandidate, 0, len(candidates))
	for _, cand := range candidates {
		sc := model.ScoredCandidate{
			Candidate:     cand,
			DensityScore:  s.densityScore(cand, density),
			SafetyScore:   s.safetyScore(cand),
			ResourceScore: s.resourceScore(),
			FriendScore:   s.friendScore(cand, friendCoords),
		}
		sc.Score = s.weights.Density*sc.DensityScore +
			s.weights.Safety*sc.SafetyScore +
			s.weights.Resource*sc.ResourceScore +
			s.weights.Friend*sc.FriendScore
		scored = append(scored, sc)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// densityScore favors sparsely settled sections. With no density data every
// candidate gets the neutral placeholder density.
func (s *Scorer) densityScore(cand model.Candidate, density map[model.SectionKey]int) float64 {
	populationDensity := placeholderDensity
	if len(density) > 0 {
		populationDensity = float64(density[cand.Section])
	}
	return clampZero(1 - populationDensity/densityCeiling)
}

// safetyScore favors candidates near the map center.
func (s *Scorer) safetyScore(cand model.Candidate) float64 {
	return clampZero(1 - cand.Coordinate.DistanceFromOrigin()/safetyFalloff)
}

// resourceScore is a uniformly sampled placeholder until a resource model
// exists.
func (s *Scorer) resourceScore() float64 {
	return resourceFloor + s.rng.Float64()*resourceSpan
}

// friendScore favors candidates close to the player's friends, 0 when there
// are none.
func (s *Scorer) friendScore(cand model.Candidate, friendCoords []model.Coordinate) float64 {
	if len(friendCoords) == 0 {
		return 0
	}
	var total float64
	for _, f := range friendCoords {
		total += cand.Coordinate.DistanceTo(f)
	}
	avg := total / float64(len(friendCoords))
	return clampZero(1 - avg/friendFalloff)
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
