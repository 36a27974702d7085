// Package config loads pathviz scenarios from HCL files: grid layout,
// walls and endpoints, algorithm selection, and animation pacing.
//
// What:
//
//   - Scenario: the resolved run description, with every tunable clamped
//     into its valid range before it can reach the engine.
//   - Load / Parse: decode a scenario file, with coordinate attributes
//     evaluated against the grid extent — `row = rows - 6` is legal.
//   - BuildGrid / NewEngine: materialize the grid (preset, then walls,
//     then endpoints) and construct an Idle search engine for it.
//
// A minimal scenario:
//
//	grid {
//	  rows   = 30
//	  cols   = 50
//	  preset = "maze"
//	}
//
//	search {
//	  algorithm   = "bfs"
//	  depth_limit = 20
//	  step_delay  = "20ms"
//	}
//
// Explicit layout blocks may replace or refine a preset:
//
//	start  { row = 5         col = 5 }
//	target { row = rows - 6  col = cols - 6 }
//	wall   { row = 10        col = 12 }
//
// Clamping:
//
//	depth_limit is clamped to [5, 100] and step_delay to [1ms, 200ms];
//	out-of-range values are corrected silently, mirroring the UI's own
//	increment/decrement limits. The engine never observes raw values.
//
// Errors:
//
//   - ErrDecode: malformed HCL or an unevaluable expression.
//   - ErrBadCoordinate: a cell outside the grid extent.
//   - ErrBadAlgorithm, ErrBadPreset, ErrBadDelay: unrecognized names.
package config
