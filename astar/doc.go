// Package astar implements a generic A* shortest-path search over any
// indexable container, parameterized by a distance/heuristic function and a
// neighbor function (SPEC_FULL.md §4.2). The container type is never
// inspected by this package beyond being passed through to the neighbor
// function — exactly the shape of the original path() function's Container
// trait, translated to a Go type parameter instead of a trait bound.
//
// This module's teacher, lvlath/dijkstra, is the closest analogue in the
// corpus: a functional-options-configured single-source shortest-path
// runner over a fixed core.Graph. astar.Search is a single function whose
// search state (came-from and g-score maps, open set) lives in locals, and
// it is deliberately more generic than Dijkstra
// needs to be, because the router calls it over a voxel.Grid rather than a
// core.Graph, and because a router failure is fatal rather than something
// to recover from (SPEC_FULL.md §4.2, §7).
package astar
