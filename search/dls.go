package search

import "github.com/quentik/pathviz/grid"

// depthItem pairs a frontier node with its predecessor-chain depth.
type depthItem struct {
	node  grid.Node
	depth int
}

// dlsState is the working memory of a depth-limited run: a LIFO frontier
// of (node, depth) pairs. Nodes at depth ≥ limit are extracted but never
// expanded. Unlike plain DFS there is no push-time frontier membership
// check, so duplicates enter the stack freely and are discarded lazily
// at pop time; this is the exact discipline the traversal order depends
// on.
type dlsState struct {
	frontier []depthItem
	visited  map[grid.Node]bool
	parent   map[grid.Node]grid.Node
	limit    int
}

func newDLS(e *Engine, limit int) *dlsState {
	return &dlsState{
		frontier: []depthItem{{node: e.start, depth: 0}},
		visited:  make(map[grid.Node]bool),
		parent:   make(map[grid.Node]grid.Node),
		limit:    limit,
	}
}

func (s *dlsState) step(e *Engine) Progress {
	if len(s.frontier) == 0 {
		return NoPath
	}

	it := s.frontier[len(s.frontier)-1]
	s.frontier = s.frontier[:len(s.frontier)-1]

	if s.visited[it.node] {
		return Advanced
	}

	s.visited[it.node] = true
	e.mark(it.node, grid.MarkExplored)

	if it.node == e.target {
		e.tracePath(s.parent)

		return Found
	}

	if it.depth < s.limit {
		nbs := e.g.Neighbors(it.node)
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i]
			if s.visited[nb] {
				continue
			}
			s.frontier = append(s.frontier, depthItem{node: nb, depth: it.depth + 1})
			if _, seen := s.parent[nb]; !seen {
				s.parent[nb] = it.node
			}
			e.mark(nb, grid.MarkFrontier)
		}
	}
	e.steps++

	return Advanced
}

func (s *dlsState) summarize(sum *Summary) {
	sum.Visited = len(s.visited)
	sum.DepthLimit = s.limit
}
