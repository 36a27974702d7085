// Command pathviz runs a search scenario and prints the resulting
// overlay as ASCII art plus the status line.
//
// Usage:
//
//	pathviz -scenario maze.hcl
//	pathviz -scenario maze.hcl -algorithm ucs -delay 50ms -quiet
//
// Exit codes: 0 path found, 1 no path, 2 usage or scenario error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/quentik/pathviz/config"
	"github.com/quentik/pathviz/grid"
	"github.com/quentik/pathviz/runner"
	"github.com/quentik/pathviz/search"
)

func main() {
	code, err := run(os.Stdout, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}

// run encapsulates the CLI logic so it can be exercised without
// process exit.
func run(out io.Writer, args []string) (int, error) {
	fs := flag.NewFlagSet("pathviz", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		scenarioPath = fs.String("scenario", "", "path to the HCL scenario file (required)")
		algorithm    = fs.String("algorithm", "", "override the scenario's algorithm (bfs|dfs|ucs|dls|iddfs|bidirectional)")
		delay        = fs.Duration("delay", 0, "pace the run with this interval (0 = as fast as possible)")
		quiet        = fs.Bool("quiet", false, "print only the status line, not the grid")
		verbose      = fs.Bool("v", false, "log run progress to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return 2, nil
	}
	if *scenarioPath == "" {
		fs.Usage()

		return 2, fmt.Errorf("pathviz: -scenario is required")
	}

	scenario, err := config.Load(*scenarioPath)
	if err != nil {
		return 2, err
	}
	if *algorithm != "" {
		alg, err := search.ParseAlgorithm(*algorithm)
		if err != nil {
			return 2, err
		}
		scenario.Algorithm = alg
	}

	engine, err := scenario.NewEngine()
	if err != nil {
		return 2, err
	}

	opts := []runner.Option{}
	if *delay > 0 {
		opts = append(opts, runner.WithInterval(*delay))
	}
	if *verbose {
		opts = append(opts, runner.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}

	start := time.Now()
	sum, err := runner.New(engine, opts...).Run(context.Background())
	if err != nil {
		return 2, err
	}

	if !*quiet {
		fmt.Fprint(out, render(engine.Grid(), engine.Overlay()))
	}
	fmt.Fprintf(out, "%s (%s)\n", sum, time.Since(start).Round(time.Millisecond))

	if !sum.Found {
		return 1, nil
	}

	return 0, nil
}

// render draws the grid with the standard precedence: Start/Target kind
// first, then Path > Frontier > Explored marks, then Wall, then Empty.
func render(g *grid.Grid, o *grid.Overlay) string {
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			b.WriteByte(cellRune(g, o, grid.Node{Row: r, Col: c}))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func cellRune(g *grid.Grid, o *grid.Overlay, n grid.Node) byte {
	kind, _ := g.Kind(n)
	switch kind {
	case grid.Start:
		return 'S'
	case grid.Target:
		return 'T'
	}
	switch o.At(n) {
	case grid.MarkPath:
		return '*'
	case grid.MarkFrontier:
		return 'o'
	case grid.MarkFrontier2:
		return 'O'
	case grid.MarkExplored:
		return '.'
	case grid.MarkExplored2:
		return ','
	}
	if kind == grid.Wall {
		return '#'
	}

	return ' '
}
