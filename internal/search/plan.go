package search

import "github.com/talgya/kiwibot/internal/farm"

// Step is one executed action and the state it produced.
type Step struct {
	Action Action `json:"action"`
	State  State  `json:"state"`
}

// Stats reports how hard the search worked.
type Stats struct {
	Expanded  int `json:"expanded"`  // states expanded (closed)
	Generated int `json:"generated"` // distinct states that reached the frontier
	Frontier  int `json:"frontier"`  // entries still queued when the goal popped
}

// Plan is a complete harvest route from start to goal. Steps is empty when
// the start already satisfies the goal.
type Plan struct {
	Start farm.HexCoord `json:"start"`
	Steps []Step        `json:"steps"`
	Cost  float64       `json:"cost"`
	Stats Stats         `json:"stats"`
}

// reconstruct walks the back-pointers from the goal node to the root and
// reverses the chain into a Plan.
func reconstruct(start farm.HexCoord, goal *searchNode, st Stats) *Plan {
	var steps []Step
	for n := goal; n.parent != nil; n = n.parent {
		steps = append(steps, Step{Action: n.action, State: n.state})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return &Plan{
		Start: start,
		Steps: steps,
		Cost:  goal.g,
		Stats: st,
	}
}

// Moves returns the number of move actions. Every step is a move, so the
// plan cost equals Moves times MoveCost.
func (p *Plan) Moves() int {
	return len(p.Steps)
}

// Harvests counts the steps that stripped a plot.
func (p *Plan) Harvests() int {
	return p.countEffect(EffectHarvest)
}

// Unloads counts the steps that emptied the basket at a station.
func (p *Plan) Unloads() int {
	return p.countEffect(EffectUnload)
}

func (p *Plan) countEffect(e Effect) int {
	n := 0
	for _, s := range p.Steps {
		if s.Action.Effect == e {
			n++
		}
	}
	return n
}

// Final returns the state the plan ends in.
func (p *Plan) Final() State {
	if len(p.Steps) == 0 {
		return Start(p.Start)
	}
	return p.Steps[len(p.Steps)-1].State
}

// Route returns the visited coordinates in order, start first.
func (p *Plan) Route() []farm.HexCoord {
	route := make([]farm.HexCoord, 0, len(p.Steps)+1)
	route = append(route, p.Start)
	for _, s := range p.Steps {
		route = append(route, s.State.Pos)
	}
	return route
}
