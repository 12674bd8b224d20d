package search

import "github.com/talgya/kiwibot/internal/farm"

// Heuristic scores the remaining cost from a state. Estimate is the
// production heuristic; Zero degrades the driver to uniform-cost search,
// which the admissibility tests use as the ground-truth baseline.
type Heuristic func(State, *farm.Farm) float64

// Zero estimates nothing.
func Zero(State, *farm.Farm) float64 {
	return 0
}

// Estimate returns a lower bound on the steps remaining from s, in MoveCost
// units. It never overestimates: every quantity below is a hex distance to a
// cell the remaining route provably has to visit.
//
//   - Everything harvested: distance to the nearest station if the basket is
//     loaded, else 0, the state being the goal.
//   - Basket empty: distance to the nearest unharvested plot. Plots whose
//     mass or volume exceed the basket outright are excluded; they can never
//     be the next pickup, or any pickup.
//   - Basket loaded and at least one remaining plot still fits on top of the
//     current load: either that plot or a station comes next, so the bound is
//     the smaller of the two distances.
//   - Basket loaded and nothing fits: a station visit must precede any
//     pickup, so the bound is the station distance.
//
// When every remaining plot exceeds the basket on its own no completion
// exists; the estimate falls back to the station distance and the driver
// proves NoSolution by exhaustion.
func Estimate(s State, f *farm.Farm) float64 {
	if s.Harvested == AllPlots(f.NumPlots()) {
		if s.Loaded() {
			return float64(nearestStation(s.Pos, f))
		}
		return 0
	}

	dFruit := -1
	canPickNow := false
	for i, p := range f.Plots() {
		if s.Harvested.Has(i) {
			continue
		}
		if p.Mass > f.MaxMass || p.Volume > f.MaxVolume {
			continue
		}
		if d := farm.Distance(s.Pos, p.Coord); dFruit < 0 || d < dFruit {
			dFruit = d
		}
		if s.Mass+p.Mass <= f.MaxMass && s.Volume+p.Volume <= f.MaxVolume {
			canPickNow = true
		}
	}
	if dFruit < 0 {
		return float64(nearestStation(s.Pos, f))
	}

	if !s.Loaded() {
		return float64(dFruit)
	}
	dStation := nearestStation(s.Pos, f)
	if !canPickNow {
		return float64(dStation)
	}
	if dFruit <= dStation {
		return float64(dFruit)
	}
	return float64(dStation)
}

// nearestStation returns the hex distance from pos to the closest station.
// Farms always carry at least one station.
func nearestStation(pos farm.HexCoord, f *farm.Farm) int {
	best := -1
	for _, st := range f.Stations() {
		if d := farm.Distance(pos, st); best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}
