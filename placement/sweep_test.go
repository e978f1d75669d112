package placement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lol3rrr/mclc-go/circuit"
	"github.com/Lol3rrr/mclc-go/placement"
)

// notGateFreeGraph builds a tiny normalized graph (in -> and -> out) with no
// Not operations, since Place has no macro for a standalone Not.
func notGateFreeGraph() *circuit.NormalizedGraph {
	return circuit.New(
		[]circuit.Node[circuit.NormalizedKind]{
			circuit.NewNode[circuit.NormalizedKind](0, circuit.NormalizedInput{Name: "a", Number: 0}),
			circuit.NewNode[circuit.NormalizedKind](1, circuit.NormalizedInput{Name: "b", Number: 1}),
			circuit.NewNode[circuit.NormalizedKind](2, circuit.NormalizedOperation{Op: circuit.And}),
			circuit.NewNode[circuit.NormalizedKind](3, circuit.NormalizedOutput{Name: "q", Number: 0}),
		},
		[]circuit.Edge{
			circuit.NewEdge(0, 0, 2, 0),
			circuit.NewEdge(1, 0, 2, 1),
			circuit.NewEdge(2, 0, 3, 0),
		},
	)
}

func TestPlace_PlacesEveryNode(t *testing.T) {
	g := notGateFreeGraph()

	_, placed, err := placement.Place(g, placement.DefaultReserveSpace, placement.DefaultColumnSpacing)
	require.NoError(t, err)
	assert.Len(t, placed, 4)
}

// TestPlace_RespectsTopologicalOrder verifies a node is never placed into an
// earlier (smaller-x) column than any of its predecessors, matching the
// column-sweep invariant that a node's column strictly follows every
// predecessor's column.
func TestPlace_RespectsTopologicalOrder(t *testing.T) {
	g := notGateFreeGraph()

	_, placed, err := placement.Place(g, placement.DefaultReserveSpace, placement.DefaultColumnSpacing)
	require.NoError(t, err)

	byID := make(map[uint32]int)
	for _, p := range placed {
		byID[p.ID] = p.Anchor.X
	}

	assert.Less(t, byID[0], byID[2], "input 0 must be placed before the and-gate it feeds")
	assert.Less(t, byID[1], byID[2], "input 1 must be placed before the and-gate it feeds")
	assert.Less(t, byID[2], byID[3], "the and-gate must be placed before the output it feeds")
}

// TestPlace_FullAdderPlacesFiveOperationMacros exercises the canonical
// two-xor-two-and-one-or full adder (SPEC_FULL.md §8, "Full adder"),
// already normalized with splitters on the three fanned-out inputs.
func TestPlace_FullAdderPlacesFiveOperationMacros(t *testing.T) {
	g := circuit.New(
		[]circuit.Node[circuit.NormalizedKind]{
			circuit.NewNode[circuit.NormalizedKind](0, circuit.NormalizedInput{Name: "a", Number: 0}),
			circuit.NewNode[circuit.NormalizedKind](1, circuit.NormalizedInput{Name: "b", Number: 1}),
			circuit.NewNode[circuit.NormalizedKind](2, circuit.NormalizedInput{Name: "cin", Number: 2}),
			circuit.NewNode[circuit.NormalizedKind](3, circuit.NormalizedSplitter{PortCount: 2}), // a
			circuit.NewNode[circuit.NormalizedKind](4, circuit.NormalizedSplitter{PortCount: 2}), // b
			circuit.NewNode[circuit.NormalizedKind](5, circuit.NormalizedSplitter{PortCount: 2}), // cin
			circuit.NewNode[circuit.NormalizedKind](6, circuit.NormalizedOperation{Op: circuit.Xor}),
			circuit.NewNode[circuit.NormalizedKind](7, circuit.NormalizedSplitter{PortCount: 2}), // xor1 out
			circuit.NewNode[circuit.NormalizedKind](8, circuit.NormalizedOperation{Op: circuit.Xor}),
			circuit.NewNode[circuit.NormalizedKind](9, circuit.NormalizedOperation{Op: circuit.And}),
			circuit.NewNode[circuit.NormalizedKind](10, circuit.NormalizedOperation{Op: circuit.And}),
			circuit.NewNode[circuit.NormalizedKind](11, circuit.NormalizedOperation{Op: circuit.Or}),
			circuit.NewNode[circuit.NormalizedKind](12, circuit.NormalizedOutput{Name: "sum", Number: 0}),
			circuit.NewNode[circuit.NormalizedKind](13, circuit.NormalizedOutput{Name: "cout", Number: 1}),
		},
		[]circuit.Edge{
			circuit.NewEdge(0, 0, 3, 0),
			circuit.NewEdge(1, 0, 4, 0),
			circuit.NewEdge(2, 0, 5, 0),
			circuit.NewEdge(3, 0, 6, 0),
			circuit.NewEdge(4, 0, 6, 1),
			circuit.NewEdge(6, 0, 7, 0),
			circuit.NewEdge(7, 0, 8, 0),
			circuit.NewEdge(5, 0, 8, 1),
			circuit.NewEdge(7, 1, 9, 0),
			circuit.NewEdge(5, 1, 9, 1),
			circuit.NewEdge(3, 1, 10, 0),
			circuit.NewEdge(4, 1, 10, 1),
			circuit.NewEdge(9, 0, 11, 0),
			circuit.NewEdge(10, 0, 11, 1),
			circuit.NewEdge(8, 0, 12, 0),
			circuit.NewEdge(11, 0, 13, 0),
		},
	)

	_, placed, err := placement.Place(g, placement.DefaultReserveSpace, placement.DefaultColumnSpacing)
	require.NoError(t, err)

	operationMacros := 0
	for _, p := range placed {
		if _, ok := p.Data.(placement.OperationData); ok {
			operationMacros++
		}
	}
	assert.Equal(t, 5, operationMacros)
}
