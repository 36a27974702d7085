package grid

// Grid is a rows×cols matrix of CellKind with at most one Start and one
// Target cell. It is mutated only by the editing methods below; the
// search engine treats it as read-only for the duration of a run.
type Grid struct {
	rows, cols int
	cells      [][]CellKind
	start      Node
	target     Node
	hasStart   bool
	hasTarget  bool
}

// New constructs an all-Empty grid of the given extent.
// Returns ErrBadDimensions if rows or cols is below one.
// Complexity: O(rows×cols).
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	cells := make([][]CellKind, rows)
	for r := range cells {
		cells[r] = make([]CellKind, cols)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether n lies within the grid extent.
func (g *Grid) InBounds(n Node) bool {
	return n.Row >= 0 && n.Row < g.rows && n.Col >= 0 && n.Col < g.cols
}

// Kind returns the kind of the cell at n.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) Kind(n Node) (CellKind, error) {
	if !g.InBounds(n) {
		return Empty, ErrOutOfBounds
	}

	return g.cells[n.Row][n.Col], nil
}

// kindAt is the unchecked fast path used by the neighbor model.
func (g *Grid) kindAt(n Node) CellKind {
	return g.cells[n.Row][n.Col]
}

// Start returns the start node, if one has been placed.
func (g *Grid) Start() (Node, bool) { return g.start, g.hasStart }

// Target returns the target node, if one has been placed.
func (g *Grid) Target() (Node, bool) { return g.target, g.hasTarget }

// SetWall places a wall at n. Start and Target cells are never
// reclassified: the call is a no-op on them.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) SetWall(n Node) error {
	if !g.InBounds(n) {
		return ErrOutOfBounds
	}
	if g.cells[n.Row][n.Col] == Empty {
		g.cells[n.Row][n.Col] = Wall
	}

	return nil
}

// ClearWall removes a wall at n, if present.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) ClearWall(n Node) error {
	if !g.InBounds(n) {
		return ErrOutOfBounds
	}
	if g.cells[n.Row][n.Col] == Wall {
		g.cells[n.Row][n.Col] = Empty
	}

	return nil
}

// ToggleWall flips a cell between Empty and Wall, leaving Start and
// Target untouched. Reports whether the cell is a wall afterwards.
func (g *Grid) ToggleWall(n Node) (bool, error) {
	if !g.InBounds(n) {
		return false, ErrOutOfBounds
	}
	switch g.cells[n.Row][n.Col] {
	case Empty:
		g.cells[n.Row][n.Col] = Wall

		return true, nil
	case Wall:
		g.cells[n.Row][n.Col] = Empty

		return false, nil
	default:
		return false, nil
	}
}

// PlaceStart moves the start marker to n. A previous start cell reverts
// to Empty; whatever occupied n (wall included) is overwritten. The two
// markers may share a cell — the degenerate start-equals-target run is a
// legal configuration — in which case the most recently placed marker
// decides the cell kind.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) PlaceStart(n Node) error {
	if !g.InBounds(n) {
		return ErrOutOfBounds
	}
	if g.hasStart {
		g.cells[g.start.Row][g.start.Col] = Empty
		if g.hasTarget && g.target == g.start {
			g.cells[g.target.Row][g.target.Col] = Target
		}
	}
	g.cells[n.Row][n.Col] = Start
	g.start = n
	g.hasStart = true

	return nil
}

// PlaceTarget moves the target marker to n, symmetric to PlaceStart.
func (g *Grid) PlaceTarget(n Node) error {
	if !g.InBounds(n) {
		return ErrOutOfBounds
	}
	if g.hasTarget {
		g.cells[g.target.Row][g.target.Col] = Empty
		if g.hasStart && g.start == g.target {
			g.cells[g.start.Row][g.start.Col] = Start
		}
	}
	g.cells[n.Row][n.Col] = Target
	g.target = n
	g.hasTarget = true

	return nil
}

// Clear resets every cell to Empty and removes the start/target markers.
func (g *Grid) Clear() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.cells[r][c] = Empty
		}
	}
	g.hasStart = false
	g.hasTarget = false
}
