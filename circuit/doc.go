// Package circuit defines the generic node/edge graph container shared by
// the three stages of circuit lowering: the entity-stage graph (straight out
// of semantic analysis, may still reference user-defined entities), the
// builtin-stage graph (entities inlined away, only primitive operations
// remain), and the normalized graph (every output port drives exactly one
// destination, the form placement consumes).
//
// Graph[K] is intentionally a thin, unsynchronized container: ids are
// uint32, ports are zero-based indices into a node's port vectors, and a
// Graph is owned by exactly one pipeline stage at a time (see the
// Concurrency & Resource Model section of SPEC_FULL.md). This differs from
// this module's teacher, github.com/katalvlaran/lvlath's core.Graph, which
// guards every field with its own sync.RWMutex for safe concurrent
// construction — that guarantee is unnecessary here because graphs are moved
// (never shared) between lowering stages, so the locking was dropped rather
// than carried as dead weight.
//
// Node kinds are modeled the same way across all three stages: a small
// interface with an unexported marker method, implemented by one struct per
// variant, so a type switch recovers the concrete shape (the standard Go
// idiom for a closed sum type, as opposed to lvlath's core.Vertex, which has
// no variants — Vertex is always the same shape with a free-form metadata
// map).
package circuit

import "errors"

// Sentinel errors for circuit graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("circuit: node not found")

	// ErrPortOutOfRange indicates an edge referenced a port index beyond a
	// node's declared port count.
	ErrPortOutOfRange = errors.New("circuit: port index out of range")
)
