// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/quentik/pathviz.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates rows or cols below the minimum of one.
	ErrBadDimensions = errors.New("grid: rows and cols must both be at least one")
	// ErrOutOfBounds indicates a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrUnknownPreset indicates an unrecognized preset name.
	ErrUnknownPreset = errors.New("grid: unknown preset")
)

// Default grid extent, matching the classic visualizer window.
const (
	DefaultRows = 30
	DefaultCols = 50
)

// Move costs: unit cost for axis-aligned steps, √2 for the two
// diagonals included in the neighbor model.
const (
	StraightCost = 1.0
	DiagonalCost = math.Sqrt2
)

// Node identifies a cell by its (row, col) position. Nodes are plain
// values: two Nodes are the same cell iff their coordinates are equal.
type Node struct {
	Row, Col int
}

// Move is a single candidate transition out of a cell: the destination
// node and the cost of taking it.
type Move struct {
	To   Node
	Cost float64
}

// CellKind classifies what a cell IS: terrain and endpoint markers.
type CellKind uint8

const (
	// Empty is a traversable cell with no special role.
	Empty CellKind = iota
	// Wall blocks traversal.
	Wall
	// Start marks the search origin. At most one per grid.
	Start
	// Target marks the search destination. At most one per grid.
	Target
)

// String returns a short human-readable kind name.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Target:
		return "target"
	default:
		return "unknown"
	}
}

// Mark classifies what a cell currently LOOKS like to the search:
// presentation state layered over the CellKind, rebuilt every run.
type Mark uint8

const (
	// MarkNone is the default: nothing to show.
	MarkNone Mark = iota
	// MarkFrontier flags a discovered-but-unexpanded cell.
	MarkFrontier
	// MarkExplored flags an expanded cell.
	MarkExplored
	// MarkPath flags a cell on the reconstructed path.
	MarkPath
	// MarkFrontier2 is the frontier of the backward half of a
	// bidirectional search.
	MarkFrontier2
	// MarkExplored2 is the explored set of the backward half of a
	// bidirectional search.
	MarkExplored2
)

// String returns a short human-readable mark name.
func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkFrontier:
		return "frontier"
	case MarkExplored:
		return "explored"
	case MarkPath:
		return "path"
	case MarkFrontier2:
		return "frontier2"
	case MarkExplored2:
		return "explored2"
	default:
		return "unknown"
	}
}
