package runner_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quentik/pathviz/grid"
	"github.com/quentik/pathviz/runner"
	"github.com/quentik/pathviz/search"
)

func newEngine(t *testing.T) *search.Engine {
	t.Helper()
	g, err := grid.New(6, 6)
	require.NoError(t, err)
	require.NoError(t, g.PlaceStart(grid.Node{Row: 0, Col: 0}))
	require.NoError(t, g.PlaceTarget(grid.Node{Row: 5, Col: 5}))
	e, err := search.New(g, search.BFS)
	require.NoError(t, err)

	return e
}

// TestRun_PublishesSummaryOnce confirms the sink sees exactly one
// terminal payload per run, matching the returned Summary.
func TestRun_PublishesSummaryOnce(t *testing.T) {
	e := newEngine(t)

	var published []search.Summary
	r := runner.New(e, runner.WithSink(runner.SinkFunc(func(sum search.Summary) {
		published = append(published, sum)
	})))

	sum, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, sum.Found)
	require.Len(t, published, 1)
	assert.Equal(t, sum, published[0])
}

// TestRun_PacingDoesNotChangeOutcome runs the same search unpaced and at
// the fastest paced interval: identical Summary, identical path.
func TestRun_PacingDoesNotChangeOutcome(t *testing.T) {
	unpaced := newEngine(t)
	fast, err := runner.New(unpaced).Run(context.Background())
	require.NoError(t, err)
	unpacedPath := unpaced.Path()

	paced := newEngine(t)
	slow, err := runner.New(paced, runner.WithInterval(runner.MinInterval)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, fast, slow)
	assert.Equal(t, unpacedPath, paced.Path())
}

// TestRun_CancelResetsEngine aborts a paced run and checks the engine
// was returned to Idle with no partial state.
func TestRun_CancelResetsEngine(t *testing.T) {
	e := newEngine(t)
	r := runner.New(e, runner.WithInterval(runner.MaxInterval))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, search.Idle, e.State())
	assert.Equal(t, 0, e.Steps())
	assert.Nil(t, e.Path())
}

// TestRun_StartErrorPropagates surfaces engine start failures.
func TestRun_StartErrorPropagates(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	e, err := search.New(g, search.BFS)
	require.NoError(t, err)

	_, err = runner.New(e).Run(context.Background())
	assert.ErrorIs(t, err, search.ErrNoStart)
}

// TestWithInterval_Clamping pins the pacing bounds.
func TestWithInterval_Clamping(t *testing.T) {
	e := newEngine(t)

	// An over-limit interval is clamped, not rejected: the run below
	// would take minutes at 5s per tick if the clamp failed, so a short
	// deadline doubles as the assertion.
	r := runner.New(e, runner.WithInterval(5*time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sum, err := r.Run(ctx)
	require.NoError(t, err)
	assert.True(t, sum.Found)
}

// TestRun_LogsLifecycle checks the structured log carries the run
// boundaries and the outcome fields.
func TestRun_LogsLifecycle(t *testing.T) {
	e := newEngine(t)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := runner.New(e, runner.WithLogger(log)).Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "run started")
	assert.Contains(t, out, "run finished")
	assert.Contains(t, out, "algorithm=BFS")
	assert.Contains(t, out, "found=true")
}
