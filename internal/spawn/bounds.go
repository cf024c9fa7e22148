package spawn

import "github.com/udisondev/spawnpoint/internal/model"

// ResolveRegionBounds maps a named region to its inclusive coordinate window
// for a world of the given spawn radius. Unrecognized names fall back to the
// full-radius window; there is no failure mode.
func ResolveRegionBounds(region model.RegionName, radius int) model.RegionBounds {
	switch region {
	case model.RegionCenter:
		half := radius / 2
		return model.RegionBounds{MinX: -half, MaxX: half, MinY: -half, MaxY: half}
	case model.RegionNorth:
		return model.RegionBounds{MinX: -radius, MaxX: radius, MinY: 0, MaxY: radius}
	case model.RegionSouth:
		return model.RegionBounds{MinX: -radius, MaxX: radius, MinY: -radius, MaxY: 0}
	case model.RegionEast:
		return model.RegionBounds{MinX: 0, MaxX: radius, MinY: -radius, MaxY: radius}
	case model.RegionWest:
		return model.RegionBounds{MinX: -radius, MaxX: 0, MinY: -radius, MaxY: radius}
	default:
		return model.RegionBounds{MinX: -radius, MaxX: radius, MinY: -radius, MaxY: radius}
	}
}
