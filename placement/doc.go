// Package placement lays normalized-graph nodes out as fixed voxel "macros"
// on a column-swept grid (SPEC_FULL.md §4.5–4.6), grounded directly on this
// project's original backend/placement.rs (per-kind macro stampers),
// backend/placement/reserve.rs (reservation halo), and backend.rs's
// generate_layout (the column-sweep driver).
//
// Test style follows this module's teacher's matrix package: one test per
// macro kind, asserted with testify/assert, since placement output is most
// naturally checked as "this exact set of cells is Used/Reserved" rather
// than via sentinel-error branching.
package placement

import "errors"

// ErrNoStandaloneMacro is returned for a node kind the macro library has no
// fixed stamp for. A Not operation is the one normalized-graph kind this
// applies to today: the library has no Not macro and no pass fuses a Not
// into a neighbouring gate, so every Not node is rejected with this error
// (SPEC_FULL.md §4.5, §9 "Not-gate placement").
var ErrNoStandaloneMacro = errors.New("placement: no macro for this node kind")
