package grid

import (
	"math/rand"
	"strings"
)

// Preset selects one of the built-in maze layouts.
type Preset int

const (
	// PresetSimple is an open field: endpoints only, no walls.
	PresetSimple Preset = iota
	// PresetMaze is a serpentine corridor maze.
	PresetMaze
	// PresetSpiral is a square spiral wound around the center.
	PresetSpiral
	// PresetRandom scatters walls with 25% density.
	PresetRandom
)

// String returns the preset name as accepted by ParsePreset.
func (p Preset) String() string {
	switch p {
	case PresetSimple:
		return "simple"
	case PresetMaze:
		return "maze"
	case PresetSpiral:
		return "spiral"
	case PresetRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParsePreset maps a case-insensitive preset name to its Preset.
// Returns ErrUnknownPreset for anything else.
func ParsePreset(name string) (Preset, error) {
	switch strings.ToLower(name) {
	case "simple":
		return PresetSimple, nil
	case "maze":
		return PresetMaze, nil
	case "spiral":
		return PresetSpiral, nil
	case "random":
		return PresetRandom, nil
	default:
		return 0, ErrUnknownPreset
	}
}

// randomWallDensity is the wall probability used by PresetRandom.
const randomWallDensity = 0.25

// LoadPreset clears g and rebuilds it with the given layout. rng is used
// only by PresetRandom; pass a seeded source for reproducible mazes, or
// nil to fall back to the global one. Endpoints are stamped last, so
// they always win over preset walls.
// Returns ErrOutOfBounds when the grid is too small for the layout's
// endpoint positions, ErrUnknownPreset for an invalid preset.
func LoadPreset(g *Grid, p Preset, rng *rand.Rand) error {
	g.Clear()
	switch p {
	case PresetSimple:
		return placeEndpoints(g, Node{5, 5}, Node{g.rows - 6, g.cols - 6})
	case PresetMaze:
		loadMaze(g)

		return placeEndpoints(g, Node{2, 2}, Node{g.rows - 3, g.cols - 3})
	case PresetSpiral:
		loadSpiral(g)

		return placeEndpoints(g, Node{g.rows / 2, g.cols / 2}, Node{2, 2})
	case PresetRandom:
		loadRandom(g, rng)

		return placeEndpoints(g, Node{5, 5}, Node{g.rows - 6, g.cols - 6})
	default:
		return ErrUnknownPreset
	}
}

func placeEndpoints(g *Grid, start, target Node) error {
	if err := g.PlaceStart(start); err != nil {
		return err
	}

	return g.PlaceTarget(target)
}

// loadMaze lays horizontal wall bands every eight rows, offset by four,
// each with a single gap so a serpentine corridor remains.
func loadMaze(g *Grid) {
	for i := 5; i < g.rows-5; i += 8 {
		for j := 5; j < g.cols-5; j++ {
			_ = g.SetWall(Node{i, j})
		}
		if i+4 < g.rows {
			for j := 10; j < g.cols-5; j++ {
				_ = g.SetWall(Node{i + 4, j})
			}
		}
		_ = g.ClearWall(Node{i, g.cols - 10})
		if i+4 < g.rows {
			_ = g.ClearWall(Node{i + 4, 10})
		}
	}
}

// loadSpiral draws concentric square rings three cells apart, each with
// a gap near its top-left corner.
func loadSpiral(g *Grid) {
	for layer := 1; layer < min(g.rows, g.cols)/4; layer++ {
		offset := layer * 3
		for j := offset; j < g.cols-offset; j++ {
			if offset < g.rows {
				_ = g.SetWall(Node{offset, j})
			}
		}
		for i := offset; i < g.rows-offset; i++ {
			if g.cols-offset-1 >= 0 {
				_ = g.SetWall(Node{i, g.cols - offset - 1})
			}
		}
		for j := offset; j < g.cols-offset; j++ {
			if g.rows-offset-1 >= 0 {
				_ = g.SetWall(Node{g.rows - offset - 1, j})
			}
		}
		for i := offset + 1; i < g.rows-offset; i++ {
			_ = g.SetWall(Node{i, offset})
		}
		if offset+3 < g.cols {
			_ = g.ClearWall(Node{offset, offset + 3})
		}
	}
}

func loadRandom(g *Grid, rng *rand.Rand) {
	roll := rand.Float64
	if rng != nil {
		roll = rng.Float64
	}
	start := Node{5, 5}
	target := Node{g.rows - 6, g.cols - 6}
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			n := Node{i, j}
			if n == start || n == target {
				continue
			}
			if roll() < randomWallDensity {
				_ = g.SetWall(n)
			}
		}
	}
}
