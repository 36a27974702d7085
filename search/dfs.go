package search

import "github.com/quentik/pathviz/grid"

// dfsState is the working memory of a depth-first run: a LIFO frontier
// with predecessor links recorded for the first discoverer only.
// Neighbors are pushed in reverse geometric order so the first one in
// model order is popped first. Membership in the frontier is checked by
// value at push time, and expansion is additionally suppressed lazily at
// pop time; both checks together define the traversal order.
type dfsState struct {
	frontier []grid.Node
	visited  map[grid.Node]bool
	parent   map[grid.Node]grid.Node
}

func newDFS(e *Engine) *dfsState {
	return &dfsState{
		frontier: []grid.Node{e.start},
		visited:  make(map[grid.Node]bool),
		parent:   make(map[grid.Node]grid.Node),
	}
}

func (s *dfsState) step(e *Engine) Progress {
	if len(s.frontier) == 0 {
		return NoPath
	}

	cur := s.frontier[len(s.frontier)-1]
	s.frontier = s.frontier[:len(s.frontier)-1]

	// Lazy duplicate suppression: a stale entry consumes the tick but
	// does not count as an expansion step.
	if s.visited[cur] {
		return Advanced
	}

	s.visited[cur] = true
	e.mark(cur, grid.MarkExplored)

	if cur == e.target {
		e.tracePath(s.parent)

		return Found
	}

	nbs := e.g.Neighbors(cur)
	for i := len(nbs) - 1; i >= 0; i-- {
		nb := nbs[i]
		if s.visited[nb] {
			continue
		}
		if nodeIn(s.frontier, nb) {
			continue
		}
		s.frontier = append(s.frontier, nb)
		if _, seen := s.parent[nb]; !seen {
			s.parent[nb] = cur
		}
		e.mark(nb, grid.MarkFrontier)
	}
	e.steps++

	return Advanced
}

func (s *dfsState) summarize(sum *Summary) {
	sum.Visited = len(s.visited)
}
