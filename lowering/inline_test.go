package lowering_test

import (
	"testing"

	"github.com/Lol3rrr/mclc-go/circuit"
	"github.com/Lol3rrr/mclc-go/lowering"
)

// nandEntity builds a tiny two-input entity "nand" = not(and(a, b)), the
// same shape used throughout SPEC_FULL.md's worked examples.
func nandEntity() *circuit.EntityGraph {
	nodes := []circuit.Node[circuit.EntityKind]{
		circuit.NewNode[circuit.EntityKind](0, circuit.EntityInput{Name: "a", Number: 0}),
		circuit.NewNode[circuit.EntityKind](1, circuit.EntityInput{Name: "b", Number: 1}),
		circuit.NewNode[circuit.EntityKind](2, circuit.EntityBuiltinOp{Op: circuit.And}),
		circuit.NewNode[circuit.EntityKind](3, circuit.EntityBuiltinOp{Op: circuit.Not}),
		circuit.NewNode[circuit.EntityKind](4, circuit.EntityOutput{Name: "q", Number: 0}),
	}
	edges := []circuit.Edge{
		circuit.NewEdge(0, 0, 2, 0),
		circuit.NewEdge(1, 0, 2, 1),
		circuit.NewEdge(2, 0, 3, 0),
		circuit.NewEdge(3, 0, 4, 0),
	}

	return circuit.New(nodes, edges)
}

// TestInline_NoEntityOpsPassesThrough verifies a graph with no EntityOp
// nodes is mapped straight onto the builtin vocabulary without error.
func TestInline_NoEntityOpsPassesThrough(t *testing.T) {
	g := nandEntity()

	out, err := lowering.Inline(g, lowering.EntityTable{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Nodes()) != 5 {
		t.Fatalf("expected 5 nodes, got %d", len(out.Nodes()))
	}
	if len(out.Edges()) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(out.Edges()))
	}
}

// TestInline_SplicesEntityCall verifies a call to a user-defined entity is
// replaced by a clone of that entity's graph, with boundary edges rewired
// onto the clone's own input/output nodes.
func TestInline_SplicesEntityCall(t *testing.T) {
	// root: in(0) --> nandCall(id=1) --> out(2)
	root := circuit.New(
		[]circuit.Node[circuit.EntityKind]{
			circuit.NewNode[circuit.EntityKind](0, circuit.EntityInput{Name: "x", Number: 0}),
			circuit.NewNode[circuit.EntityKind](1, circuit.EntityOp{Name: "nand"}),
			circuit.NewNode[circuit.EntityKind](2, circuit.EntityOutput{Name: "y", Number: 0}),
		},
		[]circuit.Edge{
			circuit.NewEdge(0, 0, 1, 0),
			circuit.NewEdge(0, 0, 1, 1),
			circuit.NewEdge(1, 0, 2, 0),
		},
	)

	out, err := lowering.Inline(root, lowering.EntityTable{"nand": nandEntity()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The EntityOp node is gone; root's in/out nodes plus the clone's five
	// nodes remain.
	if len(out.Nodes()) != 7 {
		t.Fatalf("expected 7 nodes after splice, got %d", len(out.Nodes()))
	}

	// No edge should still reference the removed EntityOp's id (1).
	for _, e := range out.Edges() {
		if e.SrcID == 1 || e.DestID == 1 {
			t.Fatalf("edge %+v still references removed entity-call node", e)
		}
	}
}

// TestInline_PortOrderFollowsDeclaredNumber verifies boundary rewiring uses
// the clone's declared port Number, not its position in the node vector —
// constructed so the clone's Input nodes appear in descending id order but
// ascending declared-Number order.
func TestInline_PortOrderFollowsDeclaredNumber(t *testing.T) {
	entity := circuit.New(
		[]circuit.Node[circuit.EntityKind]{
			circuit.NewNode[circuit.EntityKind](0, circuit.EntityInput{Name: "second", Number: 1}),
			circuit.NewNode[circuit.EntityKind](1, circuit.EntityInput{Name: "first", Number: 0}),
			circuit.NewNode[circuit.EntityKind](2, circuit.EntityOutput{Name: "q", Number: 0}),
		},
		[]circuit.Edge{
			circuit.NewEdge(1, 0, 2, 0), // "first" drives the output directly
		},
	)

	root := circuit.New(
		[]circuit.Node[circuit.EntityKind]{
			circuit.NewNode[circuit.EntityKind](0, circuit.EntityVariable{Name: "p"}),
			circuit.NewNode[circuit.EntityKind](1, circuit.EntityVariable{Name: "q"}),
			circuit.NewNode[circuit.EntityKind](2, circuit.EntityOp{Name: "pass"}),
			circuit.NewNode[circuit.EntityKind](3, circuit.EntityOutput{Name: "r", Number: 0}),
		},
		[]circuit.Edge{
			circuit.NewEdge(0, 0, 2, 0), // port 0 -> clone's declared-Number-0 input ("first")
			circuit.NewEdge(1, 0, 2, 1), // port 1 -> clone's declared-Number-1 input ("second")
			circuit.NewEdge(2, 0, 3, 0),
		},
	)

	out, err := lowering.Inline(root, lowering.EntityTable{"pass": entity})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Find the node named "first" in the spliced clone and confirm the
	// edge from root's variable id=0 now targets it, not "second".
	var firstID, secondID uint32
	for _, n := range out.Nodes() {
		switch k := n.Kind.(type) {
		case circuit.BuiltinInput:
			if k.Name == "first" {
				firstID = n.ID
			}
			if k.Name == "second" {
				secondID = n.ID
			}
		}
	}

	foundFirst := false
	for _, e := range out.Edges() {
		if e.SrcID == 0 && e.DestID == firstID {
			foundFirst = true
		}
		if e.SrcID == 0 && e.DestID == secondID {
			t.Fatalf("edge from root port 0 incorrectly targeted %q instead of %q", "second", "first")
		}
	}
	if !foundFirst {
		t.Fatalf("expected an edge from root's first variable into the clone's declared-Number-0 input")
	}
}

// TestInline_UnknownEntity verifies an EntityOp with no matching table entry
// is reported as ErrUnknownEntity rather than silently dropped.
func TestInline_UnknownEntity(t *testing.T) {
	root := circuit.New(
		[]circuit.Node[circuit.EntityKind]{
			circuit.NewNode[circuit.EntityKind](0, circuit.EntityOp{Name: "missing"}),
		},
		nil,
	)

	_, err := lowering.Inline(root, lowering.EntityTable{})
	if err == nil {
		t.Fatalf("expected an error for an unresolved entity call")
	}
}

// TestInline_SameEntityTwiceDoesNotShareState verifies instantiating the
// same entity twice in one root graph produces two independent clones with
// disjoint ids, not a single aliased sub-graph.
func TestInline_SameEntityTwiceDoesNotShareState(t *testing.T) {
	root := circuit.New(
		[]circuit.Node[circuit.EntityKind]{
			circuit.NewNode[circuit.EntityKind](0, circuit.EntityInput{Name: "a", Number: 0}),
			circuit.NewNode[circuit.EntityKind](1, circuit.EntityInput{Name: "b", Number: 1}),
			circuit.NewNode[circuit.EntityKind](2, circuit.EntityOp{Name: "nand"}),
			circuit.NewNode[circuit.EntityKind](3, circuit.EntityOp{Name: "nand"}),
			circuit.NewNode[circuit.EntityKind](4, circuit.EntityOutput{Name: "y0", Number: 0}),
			circuit.NewNode[circuit.EntityKind](5, circuit.EntityOutput{Name: "y1", Number: 1}),
		},
		[]circuit.Edge{
			circuit.NewEdge(0, 0, 2, 0),
			circuit.NewEdge(1, 0, 2, 1),
			circuit.NewEdge(0, 0, 3, 0),
			circuit.NewEdge(1, 0, 3, 1),
			circuit.NewEdge(2, 0, 4, 0),
			circuit.NewEdge(3, 0, 5, 0),
		},
	)

	out, err := lowering.Inline(root, lowering.EntityTable{"nand": nandEntity()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[uint32]bool)
	for _, n := range out.Nodes() {
		if seen[n.ID] {
			t.Fatalf("duplicate node id %d after inlining two instances of the same entity", n.ID)
		}
		seen[n.ID] = true
	}
	// root's 6 nodes, minus the two removed EntityOp nodes, plus two clones
	// of the 5-node nand entity.
	if len(out.Nodes()) != 4+2*5 {
		t.Fatalf("expected %d nodes, got %d", 4+2*5, len(out.Nodes()))
	}
}
