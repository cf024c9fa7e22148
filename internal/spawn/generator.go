package spawn

import (
	"math"

	"github.com/udisondev/spawnpoint/internal/model"
)

// CandidateGenerator produces the fixed-size candidate set for one
// allocation: up to half biased around the friend centroid, the rest drawn
// uniformly from the region bounds.
type CandidateGenerator struct {
	radius     int
	count      int
	biasRadius int
	rng        Rand
}

// NewCandidateGenerator creates a generator for a world of the given spawn
// radius. count is the total candidates per request, biasRadius the maximum
// polar offset from the friend centroid.
func NewCandidateGenerator(radius, count, biasRadius int, rng Rand) *CandidateGenerator {
	return &CandidateGenerator{
		radius:     radius,
		count:      count,
		biasRadius: biasRadius,
		rng:        rng,
	}
}

// Generate returns the candidate set for the region. When friendCoords is
// non-empty, up to count/2 candidates are polar-offset samples around the
// friend centroid; samples falling outside the region bounds are discarded
// without retry, so a centroid near an edge yields fewer biased candidates.
// The remainder is filled with uniform draws from the bounds rectangle.
func (g *CandidateGenerator) Generate(region model.RegionName, friendCoords []model.Coordinate) []model.Candidate {
	bounds := ResolveRegionBounds(region, g.radius)
	candidates := make([]model.Candidate, 0, g.count)

	if centroid, ok := model.Centroid(friendCoords); ok {
		for i := 0; i < g.count/2; i++ {
			angle := g.rng.Float64() * 2 * math.Pi
			dist := g.rng.Float64() * float64(g.biasRadius)
			c := model.Coordinate{
				X: int(math.Floor(float64(centroid.X) + math.Cos(angle)*dist)),
				Y: int(math.Floor(float64(centroid.Y) + math.Sin(angle)*dist)),
			}
			if !bounds.Contains(c) {
				continue
			}
			candidates = append(candidates, model.NewCandidate(c))
		}
	}

	for len(candidates) < g.count {
		c := model.Coordinate{
			X: bounds.MinX + g.rng.Intn(bounds.MaxX-bounds.MinX+1),
			Y: bounds.MinY + g.rng.Intn(bounds.MaxY-bounds.MinY+1),
		}
		candidates = append(candidates, model.NewCandidate(c))
	}

	return candidates
}
