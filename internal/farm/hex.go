// Package farm provides the hex grid, fruit plots, and collection stations
// that make up the orchard environment.
// Uses axial coordinates (q, r) for the hex grid.
// See design doc Section 3.
package farm

import "fmt"

// HexCoord represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type HexCoord struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// String formats the coordinate as "(q,r)".
func (h HexCoord) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}

// HexNeighborDirections defines the six neighbor offsets in axial coordinates.
// The order is fixed (E, NE, NW, W, SW, SE) and successor expansion follows it,
// so anything iterating neighbors is reproducible run to run.
var HexNeighborDirections = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// DirectionNames labels each entry of HexNeighborDirections for logs and
// action strings.
var DirectionNames = [6]string{"E", "NE", "NW", "W", "SW", "SE"}

// Neighbors returns the six adjacent hex coordinates in direction order.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for i, dir := range HexNeighborDirections {
		result[i] = HexCoord{Q: h.Q + dir.Q, R: h.R + dir.R}
	}
	return result
}

// InRadius returns true if the coordinate lies on a grid of the given radius,
// i.e. max(|q|, |r|, |s|) <= radius.
func (h HexCoord) InRadius(radius int) bool {
	q := h.Q
	r := h.R
	s := h.S()
	if q < 0 {
		q = -q
	}
	if r < 0 {
		r = -r
	}
	if s < 0 {
		s = -s
	}
	max := q
	if r > max {
		max = r
	}
	if s > max {
		max = s
	}
	return max <= radius
}

// Distance returns the hex distance between two coordinates: the minimum
// number of unit steps from a to b. Symmetric, zero iff a == b, and satisfies
// the triangle inequality.
func Distance(a, b HexCoord) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	ds := dq + dr
	if dq < 0 {
		dq = -dq
	}
	if dr < 0 {
		dr = -dr
	}
	if ds < 0 {
		ds = -ds
	}
	// Axial form of the cube distance: (|dq| + |dr| + |dq+dr|) / 2.
	return (dq + dr + ds) / 2
}
