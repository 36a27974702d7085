package search

import "github.com/quentik/pathviz/grid"

// bfsState is the working memory of a breadth-first run: a FIFO
// frontier, the expanded set, and first-discoverer predecessor links.
// Duplicates are suppressed at enqueue time, so every node enters the
// frontier at most once and BFS guarantees a shortest hop-count path.
type bfsState struct {
	frontier []grid.Node
	visited  map[grid.Node]bool
	parent   map[grid.Node]grid.Node
}

func newBFS(e *Engine) *bfsState {
	return &bfsState{
		frontier: []grid.Node{e.start},
		visited:  make(map[grid.Node]bool),
		parent:   make(map[grid.Node]grid.Node),
	}
}

func (s *bfsState) step(e *Engine) Progress {
	if len(s.frontier) == 0 {
		return NoPath
	}

	cur := s.frontier[0]
	s.frontier = s.frontier[1:]
	s.visited[cur] = true
	e.mark(cur, grid.MarkExplored)

	if cur == e.target {
		e.tracePath(s.parent)

		return Found
	}

	for _, nb := range e.g.Neighbors(cur) {
		if s.visited[nb] || nodeIn(s.frontier, nb) {
			continue
		}
		s.frontier = append(s.frontier, nb)
		s.parent[nb] = cur
		e.mark(nb, grid.MarkFrontier)
	}
	e.steps++

	return Advanced
}

func (s *bfsState) summarize(sum *Summary) {
	sum.Visited = len(s.visited)
}
