package search

// iddfsState is the working memory of an iterative-deepening run: a
// depth-limited search whose bound starts at zero and grows by one each
// time the frontier is exhausted. A bound increase is an explicit
// restart transition — visited set, frontier, predecessor map, and
// overlay are rebuilt wholesale, with no carry-over of prior-bound
// state. Exceeding maxBound declares failure.
type iddfsState struct {
	dls      *dlsState
	bound    int
	maxBound int
}

func newIDDFS(e *Engine) *iddfsState {
	return &iddfsState{
		dls:      newDLS(e, 0),
		bound:    0,
		maxBound: e.opts.MaxBound,
	}
}

func (s *iddfsState) step(e *Engine) Progress {
	if len(s.dls.frontier) == 0 {
		s.bound++
		if s.bound > s.maxBound {
			return NoPath
		}
		// Restart transition: fresh containers and a clean overlay for
		// bound+1. It consumes the tick without expanding anything.
		s.dls = newDLS(e, s.bound)
		e.overlay.Reset()

		return Advanced
	}

	return s.dls.step(e)
}

func (s *iddfsState) summarize(sum *Summary) {
	sum.Visited = len(s.dls.visited)
	sum.DepthBound = s.bound
}
