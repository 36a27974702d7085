package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quentik/pathviz/config"
	"github.com/quentik/pathviz/grid"
	"github.com/quentik/pathviz/search"
)

// TestParse_Defaults decodes an empty scenario: every field falls back
// to its documented default.
func TestParse_Defaults(t *testing.T) {
	s, err := config.Parse(nil, "empty.hcl")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultRows, s.Rows)
	assert.Equal(t, config.DefaultCols, s.Cols)
	assert.False(t, s.UsePreset)
	assert.Equal(t, search.BFS, s.Algorithm)
	assert.Equal(t, search.DefaultDepthLimit, s.DepthLimit)
	assert.Equal(t, config.DefaultStepDelay, s.StepDelay)
	assert.Nil(t, s.Start)
	assert.Nil(t, s.Target)
	assert.Empty(t, s.Walls)
}

// TestParse_FullScenario decodes every block, including a coordinate
// expression resolved against the declared extent.
func TestParse_FullScenario(t *testing.T) {
	src := []byte(`
grid {
  rows   = 10
  cols   = 12
  preset = "random"
  seed   = 42
}

search {
  algorithm   = "ucs"
  depth_limit = 30
  step_delay  = "50ms"
}

start {
  row = 0
  col = 0
}

target {
  row = rows - 6
  col = cols - 1
}

wall {
  row = 5
  col = 5
}

wall {
  row = 5
  col = 6
}
`)
	s, err := config.Parse(src, "full.hcl")
	require.NoError(t, err)

	assert.Equal(t, 10, s.Rows)
	assert.Equal(t, 12, s.Cols)
	assert.True(t, s.UsePreset)
	assert.Equal(t, grid.PresetRandom, s.Preset)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, search.UCS, s.Algorithm)
	assert.Equal(t, 30, s.DepthLimit)
	assert.Equal(t, 50*time.Millisecond, s.StepDelay)

	require.NotNil(t, s.Start)
	assert.Equal(t, grid.Node{Row: 0, Col: 0}, *s.Start)
	require.NotNil(t, s.Target)
	assert.Equal(t, grid.Node{Row: 4, Col: 11}, *s.Target)
	assert.Equal(t, []grid.Node{{Row: 5, Col: 5}, {Row: 5, Col: 6}}, s.Walls)
}

// TestParse_Clamping confirms out-of-range tunables are forced into
// their documented ranges rather than rejected.
func TestParse_Clamping(t *testing.T) {
	cases := []struct {
		name      string
		src       string
		wantDepth int
		wantDelay time.Duration
	}{
		{
			"DepthTooSmall",
			`search { depth_limit = 2 }`,
			config.MinDepthLimit,
			config.DefaultStepDelay,
		},
		{
			"DepthTooLarge",
			`search { depth_limit = 500 }`,
			config.MaxDepthLimit,
			config.DefaultStepDelay,
		},
		{
			"DelayTooSlow",
			`search { step_delay = "5s" }`,
			search.DefaultDepthLimit,
			config.MaxStepDelay,
		},
		{
			"DelayTooFast",
			`search { step_delay = "1us" }`,
			search.DefaultDepthLimit,
			config.MinStepDelay,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := config.Parse([]byte(tc.src), tc.name+".hcl")
			require.NoError(t, err)
			assert.Equal(t, tc.wantDepth, s.DepthLimit)
			assert.Equal(t, tc.wantDelay, s.StepDelay)
		})
	}
}

// TestParse_Errors maps every malformed input to its sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"MalformedHCL", `grid {`, config.ErrDecode},
		{"UnknownAlgorithm", `search { algorithm = "astar" }`, config.ErrBadAlgorithm},
		{"UnknownPreset", `grid { preset = "labyrinth" }`, config.ErrBadPreset},
		{"BadDelay", `search { step_delay = "fast" }`, config.ErrBadDelay},
		{
			"CoordinateOutOfBounds",
			`grid {
  rows = 5
  cols = 5
}
start {
  row = 9
  col = 0
}`,
			config.ErrBadCoordinate,
		},
		{
			"NegativeCoordinate",
			`target {
  row = 0 - 1
  col = 0
}`,
			config.ErrBadCoordinate,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.src), tc.name+".hcl")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuildGrid_LayeredApplication verifies the materialization order:
// preset first, explicit walls on top, explicit endpoints last.
func TestBuildGrid_LayeredApplication(t *testing.T) {
	src := []byte(`
grid {
  rows   = 10
  cols   = 10
  preset = "simple"
}

start {
  row = 1
  col = 1
}

target {
  row = 8
  col = 8
}

wall {
  row = 4
  col = 4
}
`)
	s, err := config.Parse(src, "layered.hcl")
	require.NoError(t, err)

	g, err := s.BuildGrid()
	require.NoError(t, err)

	// Explicit endpoints displaced the preset's; the preset cells revert.
	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, grid.Node{Row: 1, Col: 1}, start)
	target, ok := g.Target()
	require.True(t, ok)
	assert.Equal(t, grid.Node{Row: 8, Col: 8}, target)

	k, err := g.Kind(grid.Node{Row: 4, Col: 4})
	require.NoError(t, err)
	assert.Equal(t, grid.Wall, k)
}

// TestNewEngine_EndToEnd runs a parsed scenario to completion.
func TestNewEngine_EndToEnd(t *testing.T) {
	src := []byte(`
grid {
  rows = 6
  cols = 6
}

search {
  algorithm = "bidirectional"
}

start {
  row = 0
  col = 0
}

target {
  row = rows - 1
  col = cols - 1
}
`)
	s, err := config.Parse(src, "e2e.hcl")
	require.NoError(t, err)

	e, err := s.NewEngine()
	require.NoError(t, err)
	require.Equal(t, search.Bidirectional, e.Algorithm())

	sum, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, sum.Found)
	assert.Greater(t, sum.PathLen, 1)
}
