package grid_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/quentik/pathviz/grid"
)

// TestParsePreset covers name round-trips and the unknown case.
func TestParsePreset(t *testing.T) {
	for _, p := range []grid.Preset{
		grid.PresetSimple, grid.PresetMaze, grid.PresetSpiral, grid.PresetRandom,
	} {
		got, err := grid.ParsePreset(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %v,%v; want %v,nil", p.String(), got, err, p)
		}
	}
	if _, err := grid.ParsePreset("labyrinth"); !errors.Is(err, grid.ErrUnknownPreset) {
		t.Errorf("ParsePreset(labyrinth) error = %v; want ErrUnknownPreset", err)
	}
}

// TestLoadPreset_Endpoints verifies every preset leaves both endpoints
// placed on the default extent.
func TestLoadPreset_Endpoints(t *testing.T) {
	presets := []grid.Preset{
		grid.PresetSimple, grid.PresetMaze, grid.PresetSpiral, grid.PresetRandom,
	}
	for _, p := range presets {
		t.Run(p.String(), func(t *testing.T) {
			g, err := grid.New(grid.DefaultRows, grid.DefaultCols)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			rng := rand.New(rand.NewSource(1))
			if err = grid.LoadPreset(g, p, rng); err != nil {
				t.Fatalf("LoadPreset(%v): %v", p, err)
			}
			if _, ok := g.Start(); !ok {
				t.Error("preset left no start")
			}
			if _, ok := g.Target(); !ok {
				t.Error("preset left no target")
			}
		})
	}
}

// TestLoadPreset_SimpleHasNoWalls pins the simple layout: endpoints only.
func TestLoadPreset_SimpleHasNoWalls(t *testing.T) {
	g, _ := grid.New(grid.DefaultRows, grid.DefaultCols)
	if err := grid.LoadPreset(g, grid.PresetSimple, nil); err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if k, _ := g.Kind(grid.Node{r, c}); k == grid.Wall {
				t.Fatalf("simple preset placed a wall at (%d,%d)", r, c)
			}
		}
	}
}

// TestLoadPreset_RandomReproducible checks that the same seed yields the
// same maze.
func TestLoadPreset_RandomReproducible(t *testing.T) {
	g1, _ := grid.New(20, 20)
	g2, _ := grid.New(20, 20)
	_ = grid.LoadPreset(g1, grid.PresetRandom, rand.New(rand.NewSource(42)))
	_ = grid.LoadPreset(g2, grid.PresetRandom, rand.New(rand.NewSource(42)))

	for r := 0; r < 20; r++ {
		for c := 0; c < 20; c++ {
			n := grid.Node{r, c}
			k1, _ := g1.Kind(n)
			k2, _ := g2.Kind(n)
			if k1 != k2 {
				t.Fatalf("seeded random presets differ at %v: %v vs %v", n, k1, k2)
			}
		}
	}
}

// TestLoadPreset_MazeKeepsEndpointsClear confirms the serpentine maze
// never walls in its own endpoints.
func TestLoadPreset_MazeKeepsEndpointsClear(t *testing.T) {
	g, _ := grid.New(grid.DefaultRows, grid.DefaultCols)
	if err := grid.LoadPreset(g, grid.PresetMaze, nil); err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	s, _ := g.Start()
	if k, _ := g.Kind(s); k != grid.Start {
		t.Errorf("start cell kind = %v; want Start", k)
	}
	tgt, _ := g.Target()
	if k, _ := g.Kind(tgt); k != grid.Target {
		t.Errorf("target cell kind = %v; want Target", k)
	}
}
