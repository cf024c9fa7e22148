package model

import (
	"fmt"
	"math"
)

// SectionSize is the edge length of one map section, the coarse grid cell
// used for population-density aggregation.
const SectionSize = 100

// Coordinate is an integer position on the world grid. Value type, passed
// by value (immutable).
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SectionKey identifies the map section a coordinate falls into,
// formatted as "sx,sy" with section indices truncated toward zero.
type SectionKey string

// Section returns the map-section key for the coordinate.
func (c Coordinate) Section() SectionKey {
	return SectionKey(fmt.Sprintf("%d,%d", c.X/SectionSize, c.Y/SectionSize))
}

// DistanceTo returns the Euclidean distance to another coordinate.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	dx := float64(c.X - other.X)
	dy := float64(c.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceFromOrigin returns the Euclidean distance to the map center.
func (c Coordinate) DistanceFromOrigin() float64 {
	return c.DistanceTo(Coordinate{})
}

// Centroid returns the arithmetic center of the given coordinates,
// truncated to integers. Returns false when the slice is empty.
func Centroid(coords []Coordinate) (Coordinate, bool) {
	if len(coords) == 0 {
		return Coordinate{}, false
	}
	var sumX, sumY int
	for _, c := range coords {
		sumX += c.X
		sumY += c.Y
	}
	return Coordinate{X: sumX / len(coords), Y: sumY / len(coords)}, true
}
