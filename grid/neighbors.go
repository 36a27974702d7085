package grid

// moveOffsets is the six-direction neighbor model: the four axis-aligned
// directions plus exactly two diagonals (SE and NW), visited in this
// fixed order. The asymmetry is intentional and load-bearing: search
// visit order, and therefore every animation, depends on it.
var moveOffsets = [6][2]int{
	{-1, 0},  // N
	{0, 1},   // E
	{1, 0},   // S
	{1, 1},   // SE (diagonal)
	{0, -1},  // W
	{-1, -1}, // NW (diagonal)
}

// MoveCost returns the cost of a single move between two adjacent nodes:
// DiagonalCost when both coordinates change, StraightCost otherwise.
func MoveCost(from, to Node) float64 {
	dr := from.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := from.Col - to.Col
	if dc < 0 {
		dc = -dc
	}
	if dr+dc == 2 {
		return DiagonalCost
	}

	return StraightCost
}

// Moves returns the valid moves out of n in model order: candidates
// outside the grid or landing on a Wall are dropped. Start and Target
// cells are traversable like Empty ones.
// Complexity: O(1) (at most six candidates).
func (g *Grid) Moves(n Node) []Move {
	moves := make([]Move, 0, len(moveOffsets))
	for _, d := range moveOffsets {
		next := Node{Row: n.Row + d[0], Col: n.Col + d[1]}
		if !g.InBounds(next) {
			continue
		}
		if g.kindAt(next) == Wall {
			continue
		}
		moves = append(moves, Move{To: next, Cost: MoveCost(n, next)})
	}

	return moves
}

// Neighbors returns just the destination nodes of Moves, in the same
// order. Convenience for algorithms that ignore costs.
func (g *Grid) Neighbors(n Node) []Node {
	moves := g.Moves(n)
	nodes := make([]Node, len(moves))
	for i, m := range moves {
		nodes[i] = m.To
	}

	return nodes
}
