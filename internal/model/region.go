package model

// RegionName is a named coarse area of the map constraining where spawn
// candidates may be generated.
type RegionName string

const (
	RegionCenter RegionName = "center"
	RegionNorth  RegionName = "north"
	RegionSouth  RegionName = "south"
	RegionEast   RegionName = "east"
	RegionWest   RegionName = "west"
	RegionRandom RegionName = "random"
)

// KnownRegion reports whether name is one of the six supported regions.
func KnownRegion(name RegionName) bool {
	switch name {
	case RegionCenter, RegionNorth, RegionSouth, RegionEast, RegionWest, RegionRandom:
		return true
	}
	return false
}

// RegionBounds is an inclusive rectangular coordinate window.
type RegionBounds struct {
	MinX int
	MaxX int
	MinY int
	MaxY int
}

// Contains reports whether the coordinate lies inside the bounds.
func (b RegionBounds) Contains(c Coordinate) bool {
	return c.X >= b.MinX && c.X <= b.MaxX && c.Y >= b.MinY && c.Y <= b.MaxY
}
