package search

import (
	"fmt"

	"github.com/talgya/kiwibot/internal/farm"
)

// MoveCost is the uniform cost of one step. Harvest and unload effects ride
// along for free.
const MoveCost = 1.0

// Effect is what automatically happens on arrival at a cell.
type Effect uint8

const (
	EffectNone    Effect = iota // plain move
	EffectHarvest               // destination plot stripped into the basket
	EffectUnload                // basket emptied at a station
)

// String returns the effect name for logs and wire payloads.
func (e Effect) String() string {
	switch e {
	case EffectHarvest:
		return "harvest"
	case EffectUnload:
		return "unload"
	default:
		return "none"
	}
}

// Action is one step of a plan: a move to an adjacent cell plus whatever the
// destination triggered.
type Action struct {
	From   farm.HexCoord `json:"from"`
	To     farm.HexCoord `json:"to"`
	Dir    int           `json:"dir"` // index into farm.HexNeighborDirections
	Effect Effect        `json:"effect"`
}

// String formats the action the way the solve report prints it, e.g.
// "MOVE (0,0)->(1,0)+HARVEST".
func (a Action) String() string {
	s := fmt.Sprintf("MOVE %s->%s", a.From, a.To)
	switch a.Effect {
	case EffectHarvest:
		s += "+HARVEST"
	case EffectUnload:
		s += "+UNLOAD"
	}
	return s
}

// Succ is one legal transition out of a state.
type Succ struct {
	State  State
	Action Action
	Cost   float64
}

// Successors returns the legal transitions out of s, one candidate per
// occupiable neighbor, in fixed direction order. Arrival effects apply
// atomically: a plot is harvested only if the whole load fits under both
// capacity limits, a station always empties the basket. A cell is never both
// plot and station, so at most one effect fires per step and each
// destination yields exactly one successor.
func Successors(s State, f *farm.Farm) []Succ {
	succs := make([]Succ, 0, 6)
	for dir, d := range farm.HexNeighborDirections {
		to := farm.HexCoord{Q: s.Pos.Q + d.Q, R: s.Pos.R + d.R}
		if !f.Occupiable(to) {
			continue
		}

		next := s
		next.Pos = to
		effect := EffectNone

		if idx, ok := f.PlotIndex(to); ok {
			if !s.Harvested.Has(idx) {
				p := f.Plot(idx)
				if s.Mass+p.Mass <= f.MaxMass && s.Volume+p.Volume <= f.MaxVolume {
					next = applyHarvest(next, p, idx)
					effect = EffectHarvest
				}
			}
		} else if f.IsStation(to) {
			next = applyUnload(next)
			effect = EffectUnload
		}

		succs = append(succs, Succ{
			State:  next,
			Action: Action{From: s.Pos, To: to, Dir: dir, Effect: effect},
			Cost:   MoveCost,
		})
	}
	return succs
}
