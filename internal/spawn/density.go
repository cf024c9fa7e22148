package spawn

import (
	"context"
	"log/slog"

	"github.com/udisondev/spawnpoint/internal/model"
)

// SectionScanner enumerates the map section of every active base, one entry
// per base.
type SectionScanner interface {
	ScanActiveSections(ctx context.Context) ([]model.SectionKey, error)
}

// DensityAnalyzer aggregates active bases into a per-section population
// count.
type DensityAnalyzer struct {
	bases SectionScanner
}

// NewDensityAnalyzer creates a DensityAnalyzer over the given scanner.
func NewDensityAnalyzer(bases SectionScanner) *DensityAnalyzer {
	return &DensityAnalyzer{bases: bases}
}

// Analyze counts active bases per map section. A scan failure degrades to an
// empty map, which scoring treats as "no density information" rather than
// zero density everywhere; it never fails.
func (a *DensityAnalyzer) Analyze(ctx context.Context) map[model.SectionKey]int {
	sections, err := a.bases.ScanActiveSections(ctx)
	if err != nil {
		slog.Warn("population density scan failed, proceeding without density data",
			"err", err)
		return map[model.SectionKey]int{}
	}

	density := make(map[model.SectionKey]int, len(sections))
	for _, s := range sections {
		density[s]++
	}
	return density
}
