package lowering

import "github.com/Lol3rrr/mclc-go/circuit"

// Optimize removes every Input/Output/Variable node that has exactly one
// incoming edge and one outgoing edge, splicing its single predecessor
// directly onto its single successor. This matches Variable nodes and the
// Input/Output nodes an inlined entity call leaves inside the graph; only the
// compiled entity's own top-level Inputs (no incoming edge) and Outputs (no
// outgoing edge) never satisfy the one-in-one-out filter below. The filter
// is as broad as the original graph/normalized.rs's Graph::optimize.
//
// Optimize mutates g in place, matching the original's &mut self signature.
func Optimize(g *circuit.NormalizedGraph) {
	var removable []uint32
	for _, n := range g.Nodes() {
		switch n.Kind.(type) {
		case circuit.NormalizedInput, circuit.NormalizedOutput, circuit.NormalizedVariable:
		default:
			continue
		}

		in := g.EdgesTo(n.ID)
		out := g.EdgesFrom(n.ID)
		if len(in) == 1 && len(out) == 1 {
			removable = append(removable, n.ID)
		}
	}

	for _, id := range removable {
		in := g.EdgesTo(id)
		out := g.EdgesFrom(id)
		if len(in) == 0 || len(out) == 0 {
			// A prior removal in this same pass already disconnected this
			// node (its sole neighbor was itself spliced away); nothing
			// left to splice.
			continue
		}

		input := in[0]
		output := out[0]

		g.RemoveNode(id)
		g.RemoveEdge(input)
		g.RemoveEdge(output)
		g.AddEdge(circuit.NewEdge(input.SrcID, input.SrcPort, output.DestID, output.DestPort))
	}
}
