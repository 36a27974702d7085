package search

import "github.com/quentik/pathviz/grid"

// biState is the working memory of a bidirectional run: two independent
// breadth-first halves, forward from start and backward from target,
// each with its own frontier, visited set, and predecessor map. The
// halves alternate one expansion per tick by step-counter parity; when
// the parity side's frontier is empty, the other side proceeds. The run
// terminates the instant a freshly expanded node is already present in
// the opposite visited set — that node is the meeting node.
type biState struct {
	fwdFrontier []grid.Node
	bwdFrontier []grid.Node
	fwdVisited  map[grid.Node]bool
	bwdVisited  map[grid.Node]bool
	fwdParent   map[grid.Node]grid.Node
	bwdParent   map[grid.Node]grid.Node
	meeting     grid.Node
	met         bool
}

func newBidirectional(e *Engine) *biState {
	return &biState{
		fwdFrontier: []grid.Node{e.start},
		bwdFrontier: []grid.Node{e.target},
		fwdVisited:  make(map[grid.Node]bool),
		bwdVisited:  make(map[grid.Node]bool),
		fwdParent:   make(map[grid.Node]grid.Node),
		bwdParent:   make(map[grid.Node]grid.Node),
	}
}

func (s *biState) step(e *Engine) Progress {
	if len(s.fwdFrontier) == 0 && len(s.bwdFrontier) == 0 {
		return NoPath
	}

	forward := e.steps%2 == 0
	if forward && len(s.fwdFrontier) == 0 {
		forward = false
	} else if !forward && len(s.bwdFrontier) == 0 {
		forward = true
	}

	if forward {
		return s.expand(e, &s.fwdFrontier, s.fwdVisited, s.fwdParent,
			s.bwdVisited, grid.MarkExplored, grid.MarkFrontier)
	}

	return s.expand(e, &s.bwdFrontier, s.bwdVisited, s.bwdParent,
		s.fwdVisited, grid.MarkExplored2, grid.MarkFrontier2)
}

// expand performs one breadth-first expansion for one half: pop, visit,
// meeting check against the opposite visited set, then enqueue unseen
// neighbors with enqueue-time duplicate suppression.
func (s *biState) expand(
	e *Engine,
	frontier *[]grid.Node,
	visited map[grid.Node]bool,
	parent map[grid.Node]grid.Node,
	opposite map[grid.Node]bool,
	explored, discovered grid.Mark,
) Progress {
	cur := (*frontier)[0]
	*frontier = (*frontier)[1:]
	visited[cur] = true
	e.mark(cur, explored)

	if opposite[cur] {
		s.meeting = cur
		s.met = true
		e.traceBidirectional(s.fwdParent, s.bwdParent, cur)

		return Found
	}

	for _, nb := range e.g.Neighbors(cur) {
		if visited[nb] || nodeIn(*frontier, nb) {
			continue
		}
		*frontier = append(*frontier, nb)
		parent[nb] = cur
		e.mark(nb, discovered)
	}
	e.steps++

	return Advanced
}

func (s *biState) summarize(sum *Summary) {
	sum.Visited = len(s.fwdVisited) + len(s.bwdVisited)
}
