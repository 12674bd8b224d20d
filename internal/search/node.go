package search

// searchNode is one frontier entry: a state, its scores, and the back-pointer
// chain the plan is rebuilt from. Owned entirely by the driver.
type searchNode struct {
	state  State
	action Action      // the action that led to state; zero for the root
	parent *searchNode // nil for the root
	g      float64     // cost from the start to this state
	h      float64     // heuristic estimate of the cost remaining
	seq    uint64      // insertion counter, the final tie-break
	index  int         // position in the heap
}

// f is the priority A* sorts by.
func (n *searchNode) f() float64 {
	return n.g + n.h
}

// frontier implements heap.Interface as a min-heap over searchNodes.
// Order: lowest f, then lowest h, then earliest insertion. The two
// tie-breaks pin the pop order, so identical inputs always yield the
// identical plan.
type frontier []*searchNode

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].f() != pq[j].f() {
		return pq[i].f() < pq[j].f()
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *frontier) Push(x any) {
	n := len(*pq)
	item := x.(*searchNode)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // avoid memory leak
	item.index = -1 // for safety
	*pq = old[0 : n-1]
	return item
}
