package search

import "github.com/quentik/pathviz/grid"

// nodeIn reports whether n is present in frontier. The linear scan is
// deliberate: the stack-based algorithms' traversal order depends on
// exactly this membership semantics over the live frontier slice, so it
// must not be replaced with a hashed side structure.
func nodeIn(frontier []grid.Node, n grid.Node) bool {
	for _, f := range frontier {
		if f == n {
			return true
		}
	}

	return false
}
