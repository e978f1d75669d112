package lowering

import (
	"sort"

	"github.com/Lol3rrr/mclc-go/circuit"
)

// srcPort identifies one output port: the node that owns it and which of its
// output ports.
type srcPort struct {
	id   uint32
	port uint32
}

// destPort identifies one input port an edge targets.
type destPort struct {
	id   uint32
	port uint32
}

// Normalize maps a builtin-stage graph onto the normalized vocabulary and
// then repeatedly splits any output port driving more than one destination,
// inserting a Splitter node per SPEC_FULL.md §3 invariant 1 ("a normalized
// edge is single-consumer") and §4.9, grounded directly on this project's
// original graph/builtin.rs's Graph::into_normalized.
//
// Normalize consumes g: callers must not use g after calling Normalize.
func Normalize(g *circuit.BuiltinGraph) *circuit.NormalizedGraph {
	out := toNormalizedGraph(g)

	for {
		src, targets, found := nextFanOut(out)
		if !found {
			break
		}

		for _, t := range targets {
			out.RemoveEdge(circuit.NewEdge(src.id, src.port, t.id, t.port))
		}

		splitterID := out.MaxID() + 1
		out.AddNode(circuit.NewNode[circuit.NormalizedKind](splitterID, circuit.NormalizedSplitter{
			PortCount: uint32(len(targets)),
		}))
		out.AddEdge(circuit.NewEdge(src.id, src.port, splitterID, 0))

		for i, t := range targets {
			out.AddEdge(circuit.NewEdge(splitterID, uint32(i), t.id, t.port))
		}
	}

	return out
}

// nextFanOut returns one output port currently driving more than one
// destination, together with all of its destinations, in edge order. Ports
// are scanned in a fixed (srcID, srcPort) order so repeated runs over the
// same graph make the same choice — the original's HashMap iteration order
// is unspecified, but nothing downstream depends on which fan-out among
// several is split first, only that all of them eventually are.
func nextFanOut(g *circuit.NormalizedGraph) (srcPort, []destPort, bool) {
	byPort := make(map[srcPort][]destPort)
	var keys []srcPort
	for _, e := range g.Edges() {
		key := srcPort{id: e.SrcID, port: e.SrcPort}
		if _, seen := byPort[key]; !seen {
			keys = append(keys, key)
		}
		byPort[key] = append(byPort[key], destPort{id: e.DestID, port: e.DestPort})
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].id != keys[j].id {
			return keys[i].id < keys[j].id
		}
		return keys[i].port < keys[j].port
	})

	for _, k := range keys {
		if len(byPort[k]) > 1 {
			return k, byPort[k], true
		}
	}

	return srcPort{}, nil, false
}

// toNormalizedGraph maps every BuiltinKind node onto its NormalizedKind
// counterpart, carrying edges across unchanged.
func toNormalizedGraph(g *circuit.BuiltinGraph) *circuit.NormalizedGraph {
	nodes := make([]circuit.Node[circuit.NormalizedKind], 0, len(g.Nodes()))
	for _, n := range g.Nodes() {
		var kind circuit.NormalizedKind
		switch k := n.Kind.(type) {
		case circuit.BuiltinInput:
			kind = circuit.NormalizedInput{Name: k.Name, Number: k.Number}
		case circuit.BuiltinOutput:
			kind = circuit.NormalizedOutput{Name: k.Name, Number: k.Number}
		case circuit.BuiltinVariable:
			kind = circuit.NormalizedVariable{Name: k.Name}
		case circuit.BuiltinOperation:
			kind = circuit.NormalizedOperation{Op: k.Op}
		}
		nodes = append(nodes, circuit.NewNode(n.ID, kind))
	}

	return circuit.New(nodes, g.Edges())
}
