// Package search defines the algorithm set, options, and sentinel errors
// for the steppable search engine of github.com/quentik/pathviz.
package search

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for engine construction and stepping.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed to New.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNoStart is returned by Start when the grid has no start cell.
	ErrNoStart = errors.New("search: grid has no start cell")

	// ErrNoTarget is returned by Start when the grid has no target cell.
	ErrNoTarget = errors.New("search: grid has no target cell")

	// ErrAlreadyRunning is returned by Start while a run is in progress.
	ErrAlreadyRunning = errors.New("search: run already in progress")

	// ErrNotRunning is returned by Step outside a run.
	ErrNotRunning = errors.New("search: no run in progress")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the closed
	// set, or an unrecognized name passed to ParseAlgorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm selects one of the six search strategies. The set is closed:
// the engine's per-algorithm state is chosen by this tag alone.
type Algorithm int

const (
	// BFS is breadth-first search: FIFO frontier, shortest hop count.
	BFS Algorithm = iota
	// DFS is depth-first search: LIFO frontier, no optimality guarantee.
	DFS
	// UCS is uniform-cost search: cost-ordered frontier, minimum total cost.
	UCS
	// DLS is depth-limited search: DFS that refuses to expand at or
	// beyond a configured depth limit.
	DLS
	// IDDFS is iterative-deepening DFS: DLS restarted with a growing
	// bound until success or MaxBound.
	IDDFS
	// Bidirectional runs two breadth-first halves, forward from start
	// and backward from target, until their visited sets meet.
	Bidirectional
)

// String returns the canonical short name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case UCS:
		return "UCS"
	case DLS:
		return "DLS"
	case IDDFS:
		return "IDDFS"
	case Bidirectional:
		return "Bidirectional"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a case-insensitive name to its Algorithm.
// Returns ErrUnknownAlgorithm for anything outside the closed set.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "ucs":
		return UCS, nil
	case "dls":
		return DLS, nil
	case "iddfs":
		return IDDFS, nil
	case "bidirectional", "bibfs":
		return Bidirectional, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Depth parameter bounds. DLS limits are clamped to [1, MaxDepthLimit]
// by the configuration layer; IDDFS gives up past DefaultMaxBound
// restarts unless overridden.
const (
	MaxDepthLimit     = 100
	DefaultDepthLimit = 20
	DefaultMaxBound   = 50
)

// Option configures engine behavior via functional arguments. An invalid
// Option (e.g. a non-positive depth limit) is recorded internally and
// surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a run. All of them are fixed
// at New time: tunables change only between runs, never while the engine
// is Running.
type Options struct {
	// DepthLimit is the DLS expansion cutoff: nodes at depth ≥ DepthLimit
	// are extracted but not expanded.
	DepthLimit int

	// MaxBound caps IDDFS deepening; exceeding it declares failure.
	MaxBound int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DepthLimit=20 and MaxBound=50.
func DefaultOptions() Options {
	return Options{
		DepthLimit: DefaultDepthLimit,
		MaxBound:   DefaultMaxBound,
	}
}

// WithDepthLimit sets the DLS depth cutoff.
//
//	1 ≤ d ≤ MaxDepthLimit: accepted
//	otherwise: invalid option → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 1 || d > MaxDepthLimit {
			o.err = fmt.Errorf("%w: DepthLimit must be in [1,%d], got %d",
				ErrOptionViolation, MaxDepthLimit, d)

			return
		}
		o.DepthLimit = d
	}
}

// WithMaxBound sets the IDDFS deepening ceiling.
//
//	b ≥ 1: accepted
//	otherwise: invalid option → ErrOptionViolation
func WithMaxBound(b int) Option {
	return func(o *Options) {
		if b < 1 {
			o.err = fmt.Errorf("%w: MaxBound must be positive, got %d",
				ErrOptionViolation, b)

			return
		}
		o.MaxBound = b
	}
}

// State is the engine lifecycle phase.
type State int

const (
	// Idle: no run-scoped state exists; the grid may be edited.
	Idle State = iota
	// Running: a run is in progress; one Step call per external tick.
	Running
	// Complete: a terminal signal fired; Summary and Path are available.
	Complete
)

// String returns the lifecycle phase name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Progress is the outcome of a single Step call.
type Progress int

const (
	// Advanced: one unit of work done, no terminal signal yet.
	Advanced Progress = iota
	// Found: the target was extracted (or the halves met); the path has
	// been reconstructed and painted.
	Found
	// NoPath: every relevant frontier is exhausted; no path exists.
	NoPath
)

// String returns the progress name.
func (p Progress) String() string {
	switch p {
	case Advanced:
		return "advanced"
	case Found:
		return "found"
	case NoPath:
		return "no-path"
	default:
		return "unknown"
	}
}

// Summary is the status-sink payload emitted on every terminal signal.
type Summary struct {
	// Algorithm identifies the strategy that ran.
	Algorithm Algorithm
	// Found reports whether a path exists.
	Found bool
	// Steps is the number of expansion steps performed.
	Steps int
	// Visited is the visited-set size; for Bidirectional it is the sum
	// of both halves.
	Visited int
	// PathLen is the node count of the reconstructed path, start and
	// target inclusive. Zero when Found is false.
	PathLen int
	// DepthBound is the final IDDFS bound (IDDFS only).
	DepthBound int
	// DepthLimit is the configured cutoff (DLS only).
	DepthLimit int
}

// String renders the visualizer status line for this terminal signal.
func (s Summary) String() string {
	if s.Found {
		line := fmt.Sprintf("PATH FOUND | %s | steps: %d | explored: %d | path: %d",
			s.Algorithm, s.Steps, s.Visited, s.PathLen)
		if s.Algorithm == IDDFS {
			line += fmt.Sprintf(" | depth: %d", s.DepthBound)
		}

		return line
	}
	line := fmt.Sprintf("NO PATH | %s | steps: %d", s.Algorithm, s.Steps)
	switch s.Algorithm {
	case DLS:
		line += fmt.Sprintf(" | depth limit: %d", s.DepthLimit)
	case IDDFS:
		line += fmt.Sprintf(" | max depth reached: %d", s.DepthBound)
	}

	return line
}
