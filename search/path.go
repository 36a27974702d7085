package search

import "github.com/quentik/pathviz/grid"

// tracePath reconstructs the start→target sequence from a predecessor
// map and paints the interior nodes as MarkPath. The start node is the
// only one without a predecessor entry, so the backward walk terminates
// there. Callable only after the target was extracted.
func (e *Engine) tracePath(parent map[grid.Node]grid.Node) {
	path := []grid.Node{e.target}
	cur := e.target
	for {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	reverseNodes(path)
	e.setPath(path)
}

// traceBidirectional stitches the two half-paths at the meeting node:
// the forward predecessor chain meeting→start (reversed) followed by the
// backward chain from the meeting node's backward predecessor onward to
// target. The meeting node appears exactly once; the backward segment is
// empty when the meeting node is the target itself.
func (e *Engine) traceBidirectional(fwdParent, bwdParent map[grid.Node]grid.Node, meeting grid.Node) {
	path := []grid.Node{meeting}
	cur := meeting
	for {
		prev, ok := fwdParent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	reverseNodes(path)

	if next, ok := bwdParent[meeting]; ok {
		cur = next
		for {
			path = append(path, cur)
			prev, ok := bwdParent[cur]
			if !ok {
				break
			}
			cur = prev
		}
	}
	e.setPath(path)
}

// setPath records the reconstructed sequence and paints its interior
// nodes; endpoint cells keep their own presentation.
func (e *Engine) setPath(path []grid.Node) {
	e.path = path
	for _, n := range path {
		e.mark(n, grid.MarkPath)
	}
}

func reverseNodes(path []grid.Node) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
