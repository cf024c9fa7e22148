package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/spawnpoint/internal/model"
)

func TestResolveRegionBounds(t *testing.T) {
	const radius = 2000

	tests := []struct {
		name   string
		region model.RegionName
		want   model.RegionBounds
	}{
		{
			name:   "center is a half-radius box",
			region: model.RegionCenter,
			want:   model.RegionBounds{MinX: -1000, MaxX: 1000, MinY: -1000, MaxY: 1000},
		},
		{
			name:   "north",
			region: model.RegionNorth,
			want:   model.RegionBounds{MinX: -2000, MaxX: 2000, MinY: 0, MaxY: 2000},
		},
		{
			name:   "south",
			region: model.RegionSouth,
			want:   model.RegionBounds{MinX: -2000, MaxX: 2000, MinY: -2000, MaxY: 0},
		},
		{
			name:   "east",
			region: model.RegionEast,
			want:   model.RegionBounds{MinX: 0, MaxX: 2000, MinY: -2000, MaxY: 2000},
		},
		{
			name:   "west",
			region: model.RegionWest,
			want:   model.RegionBounds{MinX: -2000, MaxX: 0, MinY: -2000, MaxY: 2000},
		},
		{
			name:   "random spans the full radius",
			region: model.RegionRandom,
			want:   model.RegionBounds{MinX: -2000, MaxX: 2000, MinY: -2000, MaxY: 2000},
		},
		{
			name:   "unknown region falls back to full radius",
			region: "underdark",
			want:   model.RegionBounds{MinX: -2000, MaxX: 2000, MinY: -2000, MaxY: 2000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRegionBounds(tt.region, radius))
		})
	}
}
