package grid

// Overlay is a rows×cols matrix of presentation Marks. It is purely
// derived state: the search engine rebuilds it fresh at the start of
// every run and repaints it as cells change role. Overlay itself is dumb
// storage; the engine enforces that Start/Target presentation is never
// hidden (rendering reads CellKind before Mark).
type Overlay struct {
	rows, cols int
	marks      [][]Mark
}

// NewOverlay constructs an all-MarkNone overlay of the given extent.
// Returns ErrBadDimensions if rows or cols is below one.
func NewOverlay(rows, cols int) (*Overlay, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	marks := make([][]Mark, rows)
	for r := range marks {
		marks[r] = make([]Mark, cols)
	}

	return &Overlay{rows: rows, cols: cols, marks: marks}, nil
}

// Rows returns the number of rows.
func (o *Overlay) Rows() int { return o.rows }

// Cols returns the number of columns.
func (o *Overlay) Cols() int { return o.cols }

// At returns the mark at n, or MarkNone for out-of-bounds coordinates.
func (o *Overlay) At(n Node) Mark {
	if n.Row < 0 || n.Row >= o.rows || n.Col < 0 || n.Col >= o.cols {
		return MarkNone
	}

	return o.marks[n.Row][n.Col]
}

// Set paints the mark at n. Out-of-bounds coordinates are ignored.
func (o *Overlay) Set(n Node, m Mark) {
	if n.Row < 0 || n.Row >= o.rows || n.Col < 0 || n.Col >= o.cols {
		return
	}
	o.marks[n.Row][n.Col] = m
}

// Reset repaints every cell to MarkNone.
func (o *Overlay) Reset() {
	for r := 0; r < o.rows; r++ {
		for c := 0; c < o.cols; c++ {
			o.marks[r][c] = MarkNone
		}
	}
}

// Count returns how many cells currently carry mark m.
// Useful for tests and status reporting.
func (o *Overlay) Count(m Mark) int {
	total := 0
	for r := 0; r < o.rows; r++ {
		for c := 0; c < o.cols; c++ {
			if o.marks[r][c] == m {
				total++
			}
		}
	}

	return total
}
