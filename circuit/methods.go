package circuit

// Nodes returns the graph's nodes in insertion order. The returned slice
// aliases internal storage and must not be mutated by the caller; callers
// that need a private copy should copy it themselves. Iteration order is
// deterministic for a given sequence of AddNode calls, which is what the
// column-sweep placer relies on to break placement ties (SPEC_FULL.md §4.6).
func (g *Graph[K]) Nodes() []Node[K] {
	return g.nodes
}

// Edges returns the graph's edges in insertion order. Routing processes
// edges in exactly this order (SPEC_FULL.md §4.7).
func (g *Graph[K]) Edges() []Edge {
	return g.edges
}

// AddNode appends node to the graph.
func (g *Graph[K]) AddNode(node Node[K]) {
	g.nodes = append(g.nodes, node)
}

// AddEdge appends edge to the graph.
func (g *Graph[K]) AddEdge(edge Edge) {
	g.edges = append(g.edges, edge)
}

// GetNode returns the node with the given id, or ok=false if none exists.
// Complexity: O(n); acceptable at the sizes this compiler handles (the
// teacher's core.Graph trades an extra map for O(1) lookup, but our graphs
// are lowered once and never looked up in a hot loop the way a long-lived
// service graph would be).
func (g *Graph[K]) GetNode(id uint32) (Node[K], bool) {
	for _, n := range g.nodes {
		if n.ID == id {
			return n, true
		}
	}

	return Node[K]{}, false
}

// RemoveNode deletes the node with the given id, if present. A missing id is
// a silent no-op, matching lvlath's core.RemoveVertex-adjacent helpers that
// treat "already gone" as success rather than an error for idempotent
// cleanup during multi-pass lowering.
func (g *Graph[K]) RemoveNode(id uint32) {
	for i, n := range g.nodes {
		if n.ID == id {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			return
		}
	}
}

// RemoveEdge deletes the first edge equal to e, if present.
func (g *Graph[K]) RemoveEdge(e Edge) {
	for i, existing := range g.edges {
		if existing == e {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			return
		}
	}
}

// EdgesTo returns every edge whose destination is targetID, in graph order.
func (g *Graph[K]) EdgesTo(targetID uint32) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.DestID == targetID {
			out = append(out, e)
		}
	}

	return out
}

// EdgesFrom returns every edge whose source is srcID, in graph order.
func (g *Graph[K]) EdgesFrom(srcID uint32) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.SrcID == srcID {
			out = append(out, e)
		}
	}

	return out
}

// MaxID returns the largest node id currently in the graph. Lowering uses
// MaxID()+1 as the base offset for ids cloned in from an inlined entity, so
// the clone never collides with a surviving node (SPEC_FULL.md §4.8).
// Panics if the graph has no nodes; every caller in this module only calls
// MaxID on a graph that has at least its declared ports.
func (g *Graph[K]) MaxID() uint32 {
	max := g.nodes[0].ID
	for _, n := range g.nodes[1:] {
		if n.ID > max {
			max = n.ID
		}
	}

	return max
}

// OffsetIDs shifts every node id and every edge endpoint id by offset. Used
// when splicing a cloned entity sub-graph into a parent graph so the clone's
// ids no longer collide with the parent's (SPEC_FULL.md §4.8).
func (g *Graph[K]) OffsetIDs(offset uint32) {
	for i := range g.nodes {
		g.nodes[i].ID += offset
	}
	for i := range g.edges {
		g.edges[i].SrcID += offset
		g.edges[i].DestID += offset
	}
}

// NodesWithPredecessors returns, for every node in graph order, the node
// together with the distinct ids of its predecessors (nodes with an edge
// into any of its ports). This is the working set the column-sweep placer
// repeatedly filters down to "currently placeable" nodes (SPEC_FULL.md
// §4.6), mirroring the original Graph::nodes_with_predecessors.
func NodesWithPredecessors[K any](g *Graph[K]) []struct {
	Node  Node[K]
	Preds []uint32
} {
	result := make([]struct {
		Node  Node[K]
		Preds []uint32
	}, 0, len(g.nodes))

	for _, n := range g.nodes {
		seen := make(map[uint32]struct{})
		var preds []uint32
		for _, e := range g.EdgesTo(n.ID) {
			if _, ok := seen[e.SrcID]; ok {
				continue
			}
			seen[e.SrcID] = struct{}{}
			preds = append(preds, e.SrcID)
		}
		result = append(result, struct {
			Node  Node[K]
			Preds []uint32
		}{Node: n, Preds: preds})
	}

	return result
}
