package search_test

import (
	"context"
	"testing"

	"github.com/quentik/pathviz/grid"
	"github.com/quentik/pathviz/search"
)

// benchGrid builds the default-extent serpentine maze once per benchmark.
func benchGrid(b *testing.B) *grid.Grid {
	b.Helper()
	g, err := grid.New(grid.DefaultRows, grid.DefaultCols)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	if err = grid.LoadPreset(g, grid.PresetMaze, nil); err != nil {
		b.Fatalf("LoadPreset: %v", err)
	}

	return g
}

// benchRun drives one full run per iteration, reusing the engine via the
// implicit Reset in Start.
func benchRun(b *testing.B, alg search.Algorithm, opts ...search.Option) {
	b.Helper()
	g := benchGrid(b)
	e, err := search.New(g, alg, opts...)
	if err != nil {
		b.Fatalf("New engine: %v", err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Reset()
		if _, err = e.Run(ctx); err != nil {
			b.Fatalf("Run: %v", err)
		}
	}
}

func BenchmarkBFS(b *testing.B)   { benchRun(b, search.BFS) }
func BenchmarkDFS(b *testing.B)   { benchRun(b, search.DFS) }
func BenchmarkUCS(b *testing.B)   { benchRun(b, search.UCS) }
func BenchmarkDLS(b *testing.B)   { benchRun(b, search.DLS, search.WithDepthLimit(search.MaxDepthLimit)) }
func BenchmarkIDDFS(b *testing.B) { benchRun(b, search.IDDFS) }

func BenchmarkBidirectional(b *testing.B) { benchRun(b, search.Bidirectional) }
