// Package lowering implements the three lowering stages described in
// SPEC_FULL.md §4.8–4.9: entity inlining (entity-stage graph → builtin-stage
// graph), splitter insertion (builtin-stage graph → normalized graph), and
// the post-normalization removal of single-in/single-out pass-through nodes.
//
// Grounded directly on this project's original implementation,
// graph/entity.rs's Graph::into_builtin, graph/builtin.rs's
// Graph::into_normalized, and graph/normalized.rs's Graph::optimize — this
// package is a line-for-line behavioral port of those three functions onto
// circuit.Graph, written in the doc-comment and sentinel-error idiom of this
// module's teacher's dfs package (TopologicalSort in particular: a small
// unexported "sorter"-style struct carrying traversal state, validated
// inputs up front, sentinel errors for anything unreachable).
package lowering

import "errors"

// Sentinel errors for lowering operations. All three are internal-invariant
// errors (SPEC_FULL.md §7 category 2): by the time a graph reaches this
// package, package lang's semantic analysis has already rejected unknown
// entity/operation references, so encountering one here indicates a bug in
// an earlier stage rather than a malformed source file.
var (
	// ErrUnknownEntity indicates an EntityOp node referenced a name absent
	// from the entity table.
	ErrUnknownEntity = errors.New("lowering: unknown entity reference")

	// ErrPortIndexOutOfRange indicates an edge addressed a port index beyond
	// the referenced node's declared port count.
	ErrPortIndexOutOfRange = errors.New("lowering: port index out of range")

	// ErrUnexpectedNodeKind indicates a node kind was encountered that the
	// current lowering stage does not know how to handle (e.g. an EntityOp
	// surviving past Inline).
	ErrUnexpectedNodeKind = errors.New("lowering: unexpected node kind")
)
