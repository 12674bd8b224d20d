// Package search implements the optimal harvest-route planner: immutable
// picker states, the movement/harvest/unload transition rules, an admissible
// distance heuristic, and an A* driver over the implied state graph.
// See design doc Section 5.
package search

import (
	"math/bits"

	"github.com/talgya/kiwibot/internal/farm"
)

// PlotSet is a set of plot indices packed into one 64-bit word. The farm
// layer guarantees at most farm.MaxPlots plots per farm, so index i maps to
// bit i.
type PlotSet uint64

// Has reports whether index i is in the set.
func (s PlotSet) Has(i int) bool {
	return s&(1<<uint(i)) != 0
}

// With returns the set with index i added.
func (s PlotSet) With(i int) PlotSet {
	return s | 1<<uint(i)
}

// Count returns the number of indices in the set.
func (s PlotSet) Count() int {
	return bits.OnesCount64(uint64(s))
}

// AllPlots returns the set holding every index below n.
func AllPlots(n int) PlotSet {
	if n <= 0 {
		return 0
	}
	if n >= 64 {
		return ^PlotSet(0)
	}
	return PlotSet(1)<<uint(n) - 1
}

// State is one immutable snapshot of the picker: where it stands, what the
// basket holds, and which plots have been stripped. State is a comparable
// value, so two states with equal fields are the same search node no matter
// how they were reached, and it keys the driver's bookkeeping maps directly.
type State struct {
	Pos       farm.HexCoord `json:"pos"`
	Mass      float64       `json:"mass_kg"`    // current basket mass, kg
	Volume    float64       `json:"volume_cm3"` // current basket volume, cm³
	Harvested PlotSet       `json:"harvested"`
}

// Start returns the initial state at the given position: empty basket,
// nothing harvested.
func Start(pos farm.HexCoord) State {
	return State{Pos: pos}
}

// Loaded reports whether the basket holds anything.
func (s State) Loaded() bool {
	return s.Mass > 0 || s.Volume > 0
}

// IsGoal reports whether s completes the harvest: every plot collected and
// the basket empty again, the final load dropped at a station.
func (s State) IsGoal(f *farm.Farm) bool {
	return s.Harvested == AllPlots(f.NumPlots()) && !s.Loaded()
}

// applyHarvest returns s after stripping the plot with the given index: the
// whole plot lands in the basket and the index joins the harvested set.
// Callers check capacity first; harvests are all-or-nothing.
func applyHarvest(s State, plot farm.FruitPlot, idx int) State {
	s.Mass += plot.Mass
	s.Volume += plot.Volume
	s.Harvested = s.Harvested.With(idx)
	return s
}

// applyUnload returns s with an empty basket. The harvested set keeps every
// collected plot; unloading never puts fruit back.
func applyUnload(s State) State {
	s.Mass = 0
	s.Volume = 0
	return s
}
