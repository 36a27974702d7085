package config

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/quentik/pathviz/grid"
	"github.com/quentik/pathviz/search"
)

// rawScenario mirrors the top-level structure of a scenario file.
// Coordinate attributes stay as expressions: they are evaluated in a
// second pass once the grid extent is known, so `row = rows - 6` works.
type rawScenario struct {
	Grid   *rawGrid   `hcl:"grid,block"`
	Search *rawSearch `hcl:"search,block"`
	Start  *rawCell   `hcl:"start,block"`
	Target *rawCell   `hcl:"target,block"`
	Walls  []rawCell  `hcl:"wall,block"`
}

type rawGrid struct {
	Rows   int    `hcl:"rows,optional"`
	Cols   int    `hcl:"cols,optional"`
	Preset string `hcl:"preset,optional"`
	Seed   int64  `hcl:"seed,optional"`
}

type rawSearch struct {
	Algorithm  string `hcl:"algorithm,optional"`
	DepthLimit int    `hcl:"depth_limit,optional"`
	StepDelay  string `hcl:"step_delay,optional"`
}

type rawCell struct {
	Row hcl.Expression `hcl:"row"`
	Col hcl.Expression `hcl:"col"`
}

// Load reads and resolves a scenario file from disk.
func Load(path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(src, path)
}

// Parse decodes HCL source into a resolved, clamped Scenario.
// filename is used only for diagnostics.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}

	var raw rawScenario
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}

	s := &Scenario{
		Rows:       DefaultRows,
		Cols:       DefaultCols,
		Algorithm:  search.BFS,
		DepthLimit: search.DefaultDepthLimit,
		StepDelay:  DefaultStepDelay,
	}

	if raw.Grid != nil {
		if raw.Grid.Rows > 0 {
			s.Rows = raw.Grid.Rows
		}
		if raw.Grid.Cols > 0 {
			s.Cols = raw.Grid.Cols
		}
		if raw.Grid.Preset != "" {
			p, err := grid.ParsePreset(raw.Grid.Preset)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadPreset, raw.Grid.Preset)
			}
			s.Preset = p
			s.UsePreset = true
		}
		s.Seed = raw.Grid.Seed
	}

	if raw.Search != nil {
		if raw.Search.Algorithm != "" {
			alg, err := search.ParseAlgorithm(raw.Search.Algorithm)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadAlgorithm, raw.Search.Algorithm)
			}
			s.Algorithm = alg
		}
		if raw.Search.DepthLimit != 0 {
			s.DepthLimit = raw.Search.DepthLimit
		}
		if raw.Search.StepDelay != "" {
			d, err := time.ParseDuration(raw.Search.StepDelay)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadDelay, raw.Search.StepDelay)
			}
			s.StepDelay = d
		}
	}
	s.DepthLimit = clampDepth(s.DepthLimit)
	s.StepDelay = ClampDelay(s.StepDelay)

	// Second pass: evaluate coordinate expressions with rows/cols bound.
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"rows": cty.NumberIntVal(int64(s.Rows)),
			"cols": cty.NumberIntVal(int64(s.Cols)),
		},
	}
	if raw.Start != nil {
		n, err := evalCell(raw.Start, evalCtx, s.Rows, s.Cols)
		if err != nil {
			return nil, err
		}
		s.Start = &n
	}
	if raw.Target != nil {
		n, err := evalCell(raw.Target, evalCtx, s.Rows, s.Cols)
		if err != nil {
			return nil, err
		}
		s.Target = &n
	}
	for i := range raw.Walls {
		n, err := evalCell(&raw.Walls[i], evalCtx, s.Rows, s.Cols)
		if err != nil {
			return nil, err
		}
		s.Walls = append(s.Walls, n)
	}

	return s, nil
}

// evalCell resolves one row/col expression pair and bounds-checks it.
func evalCell(c *rawCell, ctx *hcl.EvalContext, rows, cols int) (grid.Node, error) {
	row, err := evalInt(c.Row, ctx)
	if err != nil {
		return grid.Node{}, err
	}
	col, err := evalInt(c.Col, ctx)
	if err != nil {
		return grid.Node{}, err
	}
	n := grid.Node{Row: row, Col: col}
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return grid.Node{}, fmt.Errorf("%w: (%d,%d) on %d×%d grid",
			ErrBadCoordinate, row, col, rows, cols)
	}

	return n, nil
}

func evalInt(expr hcl.Expression, ctx *hcl.EvalContext) (int, error) {
	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return 0, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}
	var i int
	if err := gocty.FromCtyValue(val, &i); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return i, nil
}

// BuildGrid materializes the scenario's grid: preset first, then
// explicit walls, then explicit endpoints (which always win).
func (s *Scenario) BuildGrid() (*grid.Grid, error) {
	g, err := grid.New(s.Rows, s.Cols)
	if err != nil {
		return nil, err
	}
	if s.UsePreset {
		var rng *rand.Rand
		if s.Seed != 0 {
			rng = rand.New(rand.NewSource(s.Seed))
		}
		if err = grid.LoadPreset(g, s.Preset, rng); err != nil {
			return nil, err
		}
	}
	for _, w := range s.Walls {
		if err = g.SetWall(w); err != nil {
			return nil, fmt.Errorf("%w: wall (%d,%d)", ErrBadCoordinate, w.Row, w.Col)
		}
	}
	if s.Start != nil {
		if err = g.PlaceStart(*s.Start); err != nil {
			return nil, fmt.Errorf("%w: start (%d,%d)", ErrBadCoordinate, s.Start.Row, s.Start.Col)
		}
	}
	if s.Target != nil {
		if err = g.PlaceTarget(*s.Target); err != nil {
			return nil, fmt.Errorf("%w: target (%d,%d)", ErrBadCoordinate, s.Target.Row, s.Target.Col)
		}
	}

	return g, nil
}

// EngineOptions translates the scenario's tunables into engine options.
func (s *Scenario) EngineOptions() []search.Option {
	return []search.Option{search.WithDepthLimit(s.DepthLimit)}
}

// NewEngine builds the grid and an Idle engine in one call.
func (s *Scenario) NewEngine() (*search.Engine, error) {
	g, err := s.BuildGrid()
	if err != nil {
		return nil, err
	}

	return search.New(g, s.Algorithm, s.EngineOptions()...)
}
