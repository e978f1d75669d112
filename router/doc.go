// Package router connects every edge of a normalized graph's placed nodes
// with a stamped redstone wire, routed through the voxel grid with 3-D A*
// (SPEC_FULL.md §4.2–4.4), grounded directly on this project's original
// backend/connect_nodes.rs (neighbor rule, port-position resolution, stub
// unreservation) and backend/astar.rs (the path-search driver, here
// replaced by package astar's generic Search).
//
// Test style follows this module's teacher's flow package: testify/suite,
// since routing scenarios (substrate correctness, connectivity, a full
// multi-edge circuit) read naturally as a shared-fixture suite rather than
// independent table cases.
package router

import "errors"

// ErrNodeNotPlaced is returned when an edge names a node id absent from the
// placement result handed to ConnectAll — an internal-invariant violation
// (SPEC_FULL.md §7 category 2), since every normalized-graph node is placed
// before routing begins.
var ErrNodeNotPlaced = errors.New("router: edge references an unplaced node")

// ErrPortNotPlaced is returned when an edge addresses a port index beyond
// the ports a placed node's macro actually exposes.
var ErrPortNotPlaced = errors.New("router: edge references a port the placed macro does not expose")
