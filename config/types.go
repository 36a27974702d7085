// Package config defines the scenario model and sentinel errors for
// HCL-driven pathviz runs.
package config

import (
	"errors"
	"time"

	"github.com/quentik/pathviz/grid"
	"github.com/quentik/pathviz/search"
)

// Sentinel errors for scenario loading.
var (
	// ErrDecode indicates the HCL source failed to parse or decode.
	ErrDecode = errors.New("config: cannot decode scenario")
	// ErrBadCoordinate indicates a start/target/wall coordinate outside
	// the grid extent.
	ErrBadCoordinate = errors.New("config: coordinate out of grid bounds")
	// ErrBadAlgorithm indicates an unrecognized algorithm name.
	ErrBadAlgorithm = errors.New("config: unknown algorithm")
	// ErrBadPreset indicates an unrecognized preset name.
	ErrBadPreset = errors.New("config: unknown preset")
	// ErrBadDelay indicates an unparseable step_delay duration.
	ErrBadDelay = errors.New("config: invalid step_delay")
)

// Clamping ranges applied before values reach the engine. The engine
// itself never sees an out-of-range depth limit or pacing interval.
const (
	MinDepthLimit = 5
	MaxDepthLimit = 100
	MinStepDelay  = 1 * time.Millisecond
	MaxStepDelay  = 200 * time.Millisecond
)

// Scenario defaults.
const (
	DefaultRows      = grid.DefaultRows
	DefaultCols      = grid.DefaultCols
	DefaultStepDelay = 20 * time.Millisecond
)

// Scenario is a fully resolved run description: grid layout, algorithm
// selection, and pacing. All values are clamped and validated; a
// Scenario can always be turned into a grid and an engine.
type Scenario struct {
	// Rows and Cols define the grid extent.
	Rows, Cols int

	// Preset, when UsePreset is true, selects a built-in layout applied
	// before explicit walls and endpoints.
	Preset    grid.Preset
	UsePreset bool

	// Seed drives the random preset; zero means non-reproducible.
	Seed int64

	// Algorithm is the selected search strategy.
	Algorithm search.Algorithm

	// DepthLimit is the DLS cutoff, clamped to [MinDepthLimit, MaxDepthLimit].
	DepthLimit int

	// StepDelay is the pacing interval, clamped to [MinStepDelay, MaxStepDelay].
	StepDelay time.Duration

	// Start and Target are explicit endpoints; nil means the preset (or
	// nothing) places them.
	Start, Target *grid.Node

	// Walls are explicit wall cells, applied after the preset.
	Walls []grid.Node
}

// clampDepth forces d into the valid DLS range.
func clampDepth(d int) int {
	if d < MinDepthLimit {
		return MinDepthLimit
	}
	if d > MaxDepthLimit {
		return MaxDepthLimit
	}

	return d
}

// ClampDelay forces a pacing interval into the valid animation range.
// Exported for drivers that accept ad-hoc delays outside scenario files.
func ClampDelay(d time.Duration) time.Duration {
	if d < MinStepDelay {
		return MinStepDelay
	}
	if d > MaxStepDelay {
		return MaxStepDelay
	}

	return d
}
