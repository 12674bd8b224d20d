package search

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/talgya/kiwibot/internal/farm"
)

var (
	// ErrNoSolution means the whole reachable state space was searched and
	// no complete harvest exists. A normal, reportable outcome.
	ErrNoSolution = errors.New("no harvest plan exists")

	// ErrInvalidStart means the requested start cell is not occupiable.
	ErrInvalidStart = errors.New("start is not occupiable")

	// ErrLimit means the expansion budget ran out before the search could
	// either find a plan or prove there is none.
	ErrLimit = errors.New("expansion limit exceeded")
)

// Solver plans harvest routes over a fixed farm with A*. The zero Heuristic
// defaults to Estimate; MaxExpansions of 0 means unbounded. A Solver is
// stateless across calls and safe for concurrent use: the farm is
// read-only and every search owns its bookkeeping.
type Solver struct {
	Farm          *farm.Farm
	Heuristic     Heuristic
	MaxExpansions int
}

// Solve searches for a minimum-cost route from start that harvests every
// plot and ends with an empty basket. Classic A*: pop the lowest-f frontier
// entry; return on goal; skip entries already expanded at an equal-or-better
// g; otherwise expand, pushing successors that improve on the best known g
// for their state. Exhausting the frontier proves no plan exists.
func (sv *Solver) Solve(start farm.HexCoord) (*Plan, error) {
	f := sv.Farm
	if !f.Occupiable(start) {
		return nil, fmt.Errorf("start %s: %w", start, ErrInvalidStart)
	}
	h := sv.Heuristic
	if h == nil {
		h = Estimate
	}

	root := &searchNode{state: Start(start)}
	root.h = h(root.state, f)

	open := &frontier{}
	heap.Push(open, root)

	// gScore holds the best cost known for each state, frontier or closed.
	// closed holds the cost each state was expanded at; a popped entry that
	// cannot beat it is stale and dropped.
	gScore := map[State]float64{root.state: 0}
	closed := make(map[State]float64)

	var seq uint64
	expanded := 0

	for open.Len() > 0 {
		n := heap.Pop(open).(*searchNode)

		if n.state.IsGoal(f) {
			return reconstruct(start, n, Stats{
				Expanded:  expanded,
				Generated: len(gScore),
				Frontier:  open.Len(),
			}), nil
		}
		if cg, ok := closed[n.state]; ok && cg <= n.g {
			continue
		}
		closed[n.state] = n.g

		expanded++
		if sv.MaxExpansions > 0 && expanded > sv.MaxExpansions {
			return nil, fmt.Errorf("stopped after %d expansions: %w", sv.MaxExpansions, ErrLimit)
		}

		for _, sc := range Successors(n.state, f) {
			tg := n.g + sc.Cost
			if best, ok := gScore[sc.State]; ok && tg >= best {
				continue
			}
			gScore[sc.State] = tg
			seq++
			heap.Push(open, &searchNode{
				state:  sc.State,
				action: sc.Action,
				parent: n,
				g:      tg,
				h:      h(sc.State, f),
				seq:    seq,
			})
		}
	}

	return nil, fmt.Errorf("searched %d states: %w", expanded, ErrNoSolution)
}
