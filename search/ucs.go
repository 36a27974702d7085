package search

import (
	"container/heap"

	"github.com/quentik/pathviz/grid"
)

// ucsState is the working memory of a uniform-cost run: a cost-ordered
// min-heap frontier with lazy decrease-key (improved entries are pushed
// anew, stale ones skipped at pop), the expanded set, the cheapest-known
// cost map, and predecessor links that a strictly cheaper rediscovery
// may overwrite before the node is expanded. Extraction order gives the
// minimum total path cost.
type ucsState struct {
	pq        costPQ
	visited   map[grid.Node]bool
	parent    map[grid.Node]grid.Node
	costSoFar map[grid.Node]float64
}

func newUCS(e *Engine) *ucsState {
	s := &ucsState{
		pq:        costPQ{{node: e.start, cost: 0}},
		visited:   make(map[grid.Node]bool),
		parent:    make(map[grid.Node]grid.Node),
		costSoFar: map[grid.Node]float64{e.start: 0},
	}
	heap.Init(&s.pq)

	return s
}

func (s *ucsState) step(e *Engine) Progress {
	if s.pq.Len() == 0 {
		return NoPath
	}

	item := heap.Pop(&s.pq).(*costItem)
	cur := item.node

	// Stale lazy-decrease-key entry: consume the tick without expanding.
	if s.visited[cur] {
		return Advanced
	}

	s.visited[cur] = true
	e.mark(cur, grid.MarkExplored)

	if cur == e.target {
		e.tracePath(s.parent)

		return Found
	}

	for _, mv := range e.g.Moves(cur) {
		if s.visited[mv.To] {
			continue
		}
		next := s.costSoFar[cur] + mv.Cost
		if old, known := s.costSoFar[mv.To]; known && next >= old {
			continue
		}
		s.costSoFar[mv.To] = next
		heap.Push(&s.pq, &costItem{node: mv.To, cost: next})
		s.parent[mv.To] = cur
		e.mark(mv.To, grid.MarkFrontier)
	}
	e.steps++

	return Advanced
}

func (s *ucsState) summarize(sum *Summary) {
	sum.Visited = len(s.visited)
}

// costItem pairs a node with its accumulated cost from start.
type costItem struct {
	node grid.Node
	cost float64
}

// costPQ is a min-heap of *costItem ordered by cost, with ties broken by
// (row, col) so that extraction order is a strict total order and thus
// fully reproducible.
type costPQ []*costItem

// Len returns the number of items in the heap.
func (pq costPQ) Len() int { return len(pq) }

// Less orders by cost ascending, then row, then col.
func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	if pq[i].node.Row != pq[j].node.Row {
		return pq[i].node.Row < pq[j].node.Row
	}

	return pq[i].node.Col < pq[j].node.Col
}

// Swap swaps two elements in the heap.
func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *costItem.
func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(*costItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
