// Package search provides the steppable multi-algorithm engine at the
// heart of pathviz: six grid-search strategies advanced one unit of work
// per external tick, with consistent path reconstruction and a
// visualization overlay painted as the search unfolds.
//
// What:
//
//   - Engine: owns one run's lifecycle (Idle → Running → Complete → Idle)
//     and all run-scoped state; Step performs exactly one node extraction
//     and its expansion, never an internal loop to completion.
//   - Six algorithms, selected by the closed Algorithm tag:
//     – BFS: FIFO frontier, duplicates suppressed at enqueue time;
//     guarantees a shortest hop-count path.
//     – DFS: LIFO frontier, neighbors pushed in reverse geometric order,
//     duplicates dropped lazily at pop time; no guarantee.
//     – UCS: cost-ordered frontier with lazy decrease-key; requeues only
//     on strict cost improvement; guarantees minimum total cost.
//     – DLS: DFS over (node, depth) pairs that refuses to expand nodes
//     at or above the configured depth limit.
//     – IDDFS: DLS restarted with bound+1 each time the frontier drains,
//     rebuilding all state wholesale; fails past MaxBound (50).
//     – Bidirectional: two BFS halves alternating by step parity until
//     their visited sets intersect at the meeting node.
//   - Path reconstruction, including bidirectional meet-in-the-middle
//     stitching without duplicating the meeting node.
//   - Summary: the status payload (steps, visited sizes, path length,
//     depth extras) emitted on every terminal signal.
//
// Why:
//
//   - Animating a search requires pausing it between expansions; folding
//     the traversal loop inside-out into a step function makes the driver
//     (a ticker, a UI, a test) own the pace.
//   - Keeping each algorithm's frontier discipline and duplicate policy
//     exactly as specified makes runs reproducible: visit order and
//     outcome are identical at any stepping rate.
//
// Determinism:
//
//	Neighbor candidates arrive in the fixed six-direction model order,
//	frontier membership is checked against concrete containers (never map
//	iteration), and the UCS heap breaks cost ties by (row, col). Reset
//	followed by an unmodified re-run reproduces the identical step
//	sequence and terminal result.
//
// Edge policy:
//
//   - Start == Target reports success on the first Step with zero
//     expansion steps and a single-node path.
//   - An unreachable target exhausts the relevant frontier(s) and reports
//     NoPath; absence of a path is a normal outcome, never an error.
//
// Concurrency:
//
//	Strictly single-threaded and cooperative. One tick, one unit of work;
//	steps are atomic and a run may be abandoned only between steps via
//	Reset, which clears every run-scoped container at once.
//
// Complexity (V = rows×cols):
//
//   - Every algorithm performs at most V expansion steps (2V for the two
//     bidirectional halves); IDDFS restarts at most MaxBound times.
//   - Memory: O(V) per run for frontier, visited set, and predecessor map.
//
// Errors:
//
//   - ErrNilGrid, ErrUnknownAlgorithm, ErrOptionViolation from New.
//   - ErrNoStart, ErrNoTarget from Start; ErrAlreadyRunning while Running.
//   - ErrNotRunning from Step outside a run.
package search
