package search

import (
	"context"

	"github.com/quentik/pathviz/grid"
)

// stepper is the closed per-algorithm state variant. Each of the six
// algorithms implements exactly one transition: step performs one unit
// of work (one extraction and its expansion) against the engine's shared
// run state. A stepper never loops to completion.
type stepper interface {
	// step advances the search by one unit of work and reports whether
	// the run reached a terminal signal.
	step(e *Engine) Progress
	// summarize fills the algorithm-specific Summary fields (visited-set
	// sizes and depth extras).
	summarize(sum *Summary)
}

// Engine owns the lifecycle of a single-algorithm search run over a
// grid: Idle → Running → Complete → Idle. It is strictly single-
// threaded; one external tick maps to one Step call, and all run-scoped
// state (frontier, visited set, predecessor map, overlay) is touched
// only inside Step.
type Engine struct {
	g    *grid.Grid
	alg  Algorithm
	opts Options

	overlay *grid.Overlay
	state   State
	run     stepper

	start  grid.Node
	target grid.Node

	steps      int
	path       []grid.Node
	summary    Summary
	hasSummary bool
}

// New constructs an Idle engine for the given grid and algorithm.
// Returns ErrNilGrid, ErrUnknownAlgorithm, or ErrOptionViolation for
// invalid input. The grid's start/target need not be placed yet; they
// are validated by Start.
func New(g *grid.Grid, alg Algorithm, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if alg < BFS || alg > Bidirectional {
		return nil, ErrUnknownAlgorithm
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	overlay, err := grid.NewOverlay(g.Rows(), g.Cols())
	if err != nil {
		return nil, err
	}

	return &Engine{g: g, alg: alg, opts: o, overlay: overlay, state: Idle}, nil
}

// Algorithm returns the strategy this engine runs.
func (e *Engine) Algorithm() Algorithm { return e.alg }

// State returns the current lifecycle phase.
func (e *Engine) State() State { return e.state }

// Steps returns the expansion steps performed so far in this run.
func (e *Engine) Steps() int { return e.steps }

// Overlay returns the visualization overlay. Consumers must apply the
// rendering precedence Start/Target kind > Path > Frontier > Explored >
// Wall > Empty; the engine never paints over endpoint cells.
func (e *Engine) Overlay() *grid.Overlay { return e.overlay }

// Grid returns the grid this engine searches.
func (e *Engine) Grid() *grid.Grid { return e.g }

// Path returns a copy of the reconstructed start→target sequence, or nil
// before a successful terminal signal.
func (e *Engine) Path() []grid.Node {
	if e.path == nil {
		return nil
	}
	out := make([]grid.Node, len(e.path))
	copy(out, e.path)

	return out
}

// Summary returns the status payload of the last terminal signal.
// The second return is false until a run completes.
func (e *Engine) Summary() (Summary, bool) { return e.summary, e.hasSummary }

// Start initializes a fresh run: new per-algorithm containers, a clean
// overlay, step counter at zero. A Complete engine is implicitly Reset
// first; a Running one returns ErrAlreadyRunning. Returns ErrNoStart or
// ErrNoTarget when the grid is missing an endpoint.
func (e *Engine) Start() error {
	if e.state == Running {
		return ErrAlreadyRunning
	}
	start, ok := e.g.Start()
	if !ok {
		return ErrNoStart
	}
	target, ok := e.g.Target()
	if !ok {
		return ErrNoTarget
	}

	e.Reset()
	e.start = start
	e.target = target
	e.run = e.newStepper()
	e.state = Running

	return nil
}

// newStepper builds the per-algorithm state for a fresh run. The
// algorithm tag was validated in New, so the switch is exhaustive.
func (e *Engine) newStepper() stepper {
	switch e.alg {
	case DFS:
		return newDFS(e)
	case UCS:
		return newUCS(e)
	case DLS:
		return newDLS(e, e.opts.DepthLimit)
	case IDDFS:
		return newIDDFS(e)
	case Bidirectional:
		return newBidirectional(e)
	default:
		return newBFS(e)
	}
}

// Step performs exactly one unit of work for the running algorithm and
// reports whether it produced a terminal signal. Outside a run it
// returns ErrNotRunning. Steps are atomic: a Step call either completes
// its unit of work or (on misuse) does nothing.
func (e *Engine) Step() (Progress, error) {
	if e.state != Running {
		return Advanced, ErrNotRunning
	}
	// Degenerate run: success with zero expansion steps and the
	// single-node path.
	if e.start == e.target {
		e.path = []grid.Node{e.start}
		e.finish(true)

		return Found, nil
	}

	p := e.run.step(e)
	if p != Advanced {
		e.finish(p == Found)
	}

	return p, nil
}

// finish records the terminal signal: lifecycle moves to Complete and
// the Summary is built for status sinks.
func (e *Engine) finish(found bool) {
	sum := Summary{
		Algorithm: e.alg,
		Found:     found,
		Steps:     e.steps,
		PathLen:   len(e.path),
	}
	if e.run != nil {
		e.run.summarize(&sum)
	}
	e.summary = sum
	e.hasSummary = true
	e.state = Complete
}

// Reset clears every run-scoped container immediately and returns the
// engine to Idle. It is safe in any state; aborting a run this way can
// only happen between steps, so no container is ever half-populated.
func (e *Engine) Reset() {
	e.state = Idle
	e.run = nil
	e.steps = 0
	e.path = nil
	e.summary = Summary{}
	e.hasSummary = false
	e.overlay.Reset()
}

// Run drives the engine to a terminal signal: it Starts an Idle engine
// and then Steps until Found or NoPath, checking ctx between steps.
// The outcome is identical to external stepping at any pace.
func (e *Engine) Run(ctx context.Context) (Summary, error) {
	if e.state == Complete {
		return e.summary, nil
	}
	if e.state == Idle {
		if err := e.Start(); err != nil {
			return Summary{}, err
		}
	}
	for {
		select {
		case <-ctx.Done():
			return Summary{}, ctx.Err()
		default:
		}

		p, err := e.Step()
		if err != nil {
			return Summary{}, err
		}
		if p != Advanced {
			return e.summary, nil
		}
	}
}

// mark paints a transitioned cell into the overlay. Endpoint cells are
// skipped: the Start/Target presentation is never overwritten.
func (e *Engine) mark(n grid.Node, m grid.Mark) {
	if n == e.start || n == e.target {
		return
	}
	e.overlay.Set(n, m)
}
