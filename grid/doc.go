// Package grid provides the editable 2D playing field for pathviz:
// cell kinds, the six-direction neighbor model, the visualization
// overlay, and preset maze layouts.
//
// What:
//
//   - Grid: a rows×cols matrix of CellKind (Empty, Wall, Start, Target)
//     with wall editing and start/target placement.
//   - Node: a plain (row, col) value; the only node identity in pathviz.
//   - Moves: the fixed six-direction neighbor model — N, E, S, SE, W, NW,
//     in that order — filtered to bounds and non-wall cells, with cost
//     1.0 for axis-aligned steps and √2 for the two included diagonals.
//   - Overlay: a rows×cols matrix of Marks (frontier/explored/path and the
//     bidirectional second set), rebuilt fresh by every search run.
//   - LoadPreset: the four built-in layouts (simple, maze, spiral, random).
//
// Why:
//
//   - The engine in package search needs a stable, value-typed node space
//     and a deterministic neighbor order; both live here.
//   - Keeping presentation (Overlay) separate from terrain (Grid) lets a
//     renderer apply the precedence Start/Target > Path > Frontier >
//     Explored > Wall > Empty without the engine knowing about colors.
//
// The neighbor model is deliberately asymmetric: only the SE and NW
// diagonals are included. Do not "fix" it to four or eight directions —
// every recorded animation and every test expectation depends on the
// exact candidate order.
//
// Invariants:
//
//   - At most one Start and one Target cell exist at a time.
//   - SetWall never reclassifies a Start or Target cell.
//   - Grid is never mutated by the search engine; Overlay is never read
//     by it for decisions, only written.
//
// Complexity: all editing and lookup operations are O(1); construction,
// Clear, Reset, and LoadPreset are O(rows×cols).
//
// Errors:
//
//   - ErrBadDimensions: rows or cols below one.
//   - ErrOutOfBounds: coordinate outside the grid extent.
//   - ErrUnknownPreset: unrecognized preset name.
package grid
