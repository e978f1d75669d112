package lowering

import (
	"fmt"
	"sort"

	"github.com/Lol3rrr/mclc-go/circuit"
)

// EntityTable maps an entity's declared name to its entity-stage graph, as
// built by package lang's semantic analysis pass.
type EntityTable map[string]*circuit.EntityGraph

// Inline repeatedly replaces every EntityOp node in root with a fresh clone
// of the sub-graph it names, rewiring the edges that crossed the EntityOp's
// boundary to the clone's own Input/Output nodes, until no EntityOp remains.
// It then maps the surviving node kinds onto the builtin-stage vocabulary
// (SPEC_FULL.md §4.8, "Entity inlining").
//
// Inline consumes root: callers must not use root after calling Inline
// (SPEC_FULL.md §5, "Graphs are moved into each lowering stage").
//
// Recursion through a cycle of mutually-referencing entities is a user
// error this function does not guard against — it will not terminate. A
// production hardening would track a visited-set per inlining root and
// reject re-entry; SPEC_FULL.md §9 records this as an open question this
// implementation leaves unresolved, matching the original Rust source.
func Inline(root *circuit.EntityGraph, entities EntityTable) (*circuit.BuiltinGraph, error) {
	g := root

	for {
		node, found := findEntityOp(g)
		if !found {
			break
		}

		name := node.Kind.(circuit.EntityOp).Name
		template, ok := entities[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, name)
		}

		g.RemoveNode(node.ID)

		clone := cloneEntityGraph(template)
		offset := nextOffset(g, clone)
		clone.OffsetIDs(offset)

		inputIDs := portOrderedIDs(clone, func(k circuit.EntityKind) (uint32, bool) {
			in, ok := k.(circuit.EntityInput)
			return in.Number, ok
		})
		outputIDs := portOrderedIDs(clone, func(k circuit.EntityKind) (uint32, bool) {
			out, ok := k.(circuit.EntityOutput)
			return out.Number, ok
		})

		if err := rewireBoundary(g, node.ID, inputIDs, outputIDs); err != nil {
			return nil, err
		}

		for _, n := range clone.Nodes() {
			g.AddNode(n)
		}
		for _, e := range clone.Edges() {
			g.AddEdge(e)
		}
	}

	return toBuiltinGraph(g)
}

// findEntityOp returns the first EntityOp node in g, if any.
func findEntityOp(g *circuit.EntityGraph) (node circuit.Node[circuit.EntityKind], found bool) {
	for _, n := range g.Nodes() {
		if _, ok := n.Kind.(circuit.EntityOp); ok {
			return n, true
		}
	}

	return circuit.Node[circuit.EntityKind]{}, false
}

// cloneEntityGraph returns a deep-enough copy of template that OffsetIDs and
// node/edge mutation on the clone never touches the original entity table
// entry (the same entity may be instantiated many times).
func cloneEntityGraph(template *circuit.EntityGraph) *circuit.EntityGraph {
	nodes := make([]circuit.Node[circuit.EntityKind], len(template.Nodes()))
	copy(nodes, template.Nodes())
	edges := make([]circuit.Edge, len(template.Edges()))
	copy(edges, template.Edges())

	return circuit.New(nodes, edges)
}

// nextOffset returns the smallest offset that guarantees clone's ids, once
// shifted, do not collide with any id currently in g.
func nextOffset(g *circuit.EntityGraph, clone *circuit.EntityGraph) uint32 {
	if len(g.Nodes()) == 0 {
		return 0
	}

	return g.MaxID() + 1
}

// portOrderedIDs returns the ids of clone's nodes matching selector, sorted
// by the port number selector extracts — the order edges into/out of the
// removed EntityOp must be rewired against, since a declared port's index is
// its Number, not its position in the node vector.
func portOrderedIDs(clone *circuit.EntityGraph, selector func(circuit.EntityKind) (uint32, bool)) []uint32 {
	type idNum struct {
		id  uint32
		num uint32
	}
	var matches []idNum
	for _, n := range clone.Nodes() {
		if num, ok := selector(n.Kind); ok {
			matches = append(matches, idNum{id: n.ID, num: num})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].num < matches[j].num })

	ids := make([]uint32, len(matches))
	for i, m := range matches {
		ids[i] = m.id
	}

	return ids
}

// rewireBoundary redirects every edge that crossed removedID's boundary:
// edges into removedID at port p now target inputIDs[p]'s port 0; edges out
// of removedID at port p now originate from outputIDs[p]'s port 0.
func rewireBoundary(g *circuit.EntityGraph, removedID uint32, inputIDs, outputIDs []uint32) error {
	edges := g.Edges()
	for i, e := range edges {
		if e.DestID == removedID {
			if int(e.DestPort) >= len(inputIDs) {
				return fmt.Errorf("%w: entity call port %d", ErrPortIndexOutOfRange, e.DestPort)
			}
			edges[i].DestID = inputIDs[e.DestPort]
			edges[i].DestPort = 0
		}
		if e.SrcID == removedID {
			if int(e.SrcPort) >= len(outputIDs) {
				return fmt.Errorf("%w: entity call port %d", ErrPortIndexOutOfRange, e.SrcPort)
			}
			edges[i].SrcID = outputIDs[e.SrcPort]
			edges[i].SrcPort = 0
		}
	}

	return nil
}

// toBuiltinGraph maps every surviving EntityKind node onto its
// BuiltinKind counterpart. An EntityOp surviving to this point is a bug in
// the inlining loop above, not a reachable user error.
func toBuiltinGraph(g *circuit.EntityGraph) (*circuit.BuiltinGraph, error) {
	nodes := make([]circuit.Node[circuit.BuiltinKind], 0, len(g.Nodes()))
	for _, n := range g.Nodes() {
		var kind circuit.BuiltinKind
		switch k := n.Kind.(type) {
		case circuit.EntityInput:
			kind = circuit.BuiltinInput{Name: k.Name, Number: k.Number}
		case circuit.EntityOutput:
			kind = circuit.BuiltinOutput{Name: k.Name, Number: k.Number}
		case circuit.EntityVariable:
			kind = circuit.BuiltinVariable{Name: k.Name}
		case circuit.EntityBuiltinOp:
			kind = circuit.BuiltinOperation{Op: k.Op}
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnexpectedNodeKind, n.Kind)
		}
		nodes = append(nodes, circuit.NewNode(n.ID, kind))
	}

	return circuit.New(nodes, g.Edges()), nil
}
