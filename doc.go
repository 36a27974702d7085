// Package pathviz is an in-memory engine for animating classic search
// strategies over editable 2D grids — one expansion per tick, six
// algorithms, identical results at any animation speed.
//
// 🚀 What is pathviz?
//
//	A small, deterministic library that brings together:
//		• Grid primitives: editable walls, start/target placement, preset mazes
//		• Six steppable searches: BFS, DFS, UCS, DLS, IDDFS, Bidirectional BFS
//		• A visualization overlay: frontier/explored/path marks per cell
//		• Path reconstruction, including bidirectional meet-in-the-middle
//		• HCL scenario files and a paced runner for driving animations
//
// ✨ Why choose pathviz?
//
//   - Step-at-a-time – every call to Step performs exactly one unit of work,
//     so a UI, a test, or a benchmark can drive the search at any pace
//   - Reproducible – visit order and outcome never depend on pacing
//   - Pure algorithmic core – no rendering, no goroutines, no hidden state
//
// Everything is organized under five packages:
//
//	grid/    — Grid, Node, the six-direction neighbor model, Overlay, presets
//	search/  — the steppable Engine, per-algorithm states, reconstruction
//	config/  — HCL scenario files (grid layout, algorithm, pacing)
//	runner/  — paced driver: ticks the engine, publishes the final Summary
//	cmd/     — the pathviz CLI: run a scenario, print the overlay as ASCII
//
// Quick ASCII example of a finished BFS run:
//
//	S ■ . . .
//	* ■ . ■ .
//	* ■ . ■ .
//	* * * ■ T
//
//	S/T are start and target, ■ walls, * the reconstructed path.
//
// Dive into the search package docs for the per-algorithm guarantees and
// the exact stepping contract.
//
//	go get github.com/quentik/pathviz
package pathviz
