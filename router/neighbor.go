package router

import "github.com/Lol3rrr/mclc-go/voxel"

// candidate is one admissible-or-not step out of a position, paired with
// its routing cost (1 for a same-layer cardinal step, 2 for a step that
// also climbs or descends a z-layer).
type candidate struct {
	pos  voxel.Pos
	cost int64
}

// baseNeighbors returns every geometric neighbor of pos before admissibility
// filtering: the four same-layer cardinal steps, the same four shifted one
// layer down (z+1, cost 2), and — only when the cell directly above pos is
// Empty — the same four shifted one layer up (z-1, cost 2). Twelve
// candidates at most (SPEC_FULL.md §4.3), grounded on
// connect_nodes.rs's base_neighbours.
func baseNeighbors(g *voxel.Grid, pos voxel.Pos) []candidate {
	cardinal := []voxel.Pos{
		{X: pos.X + 1, Y: pos.Y, Z: pos.Z},
		{X: pos.X - 1, Y: pos.Y, Z: pos.Z},
		{X: pos.X, Y: pos.Y + 1, Z: pos.Z},
		{X: pos.X, Y: saturatingSub(pos.Y, 1), Z: pos.Z},
	}

	out := make([]candidate, 0, 12)
	for _, c := range cardinal {
		out = append(out, candidate{pos: c, cost: 1})
	}
	for _, c := range cardinal {
		out = append(out, candidate{pos: voxel.Pos{X: c.X, Y: c.Y, Z: c.Z + 1}, cost: 2})
	}

	topFree := pos.Z > 0 && g.Get(voxel.Pos{X: pos.X, Y: pos.Y, Z: pos.Z - 1}).IsEmpty()
	if topFree {
		for _, c := range cardinal {
			out = append(out, candidate{pos: voxel.Pos{X: c.X, Y: c.Y, Z: c.Z - 1}, cost: 2})
		}
	}

	return out
}

// admissibleNeighbors applies connect_nodes.rs's neighbours filtering on
// top of baseNeighbors: if dest is itself one of the twelve base candidates,
// it alone is returned unfiltered — guaranteeing the final hop into a
// macro's (Reserved) port always succeeds. Otherwise a candidate survives
// only if the candidate cell itself is Empty, the cell directly below it
// (its would-be solid substrate) is Empty, and the cell directly above it
// is Empty or Reserved (room for the wire's own vertical clearance).
func admissibleNeighbors(g *voxel.Grid, pos, dest voxel.Pos) []candidate {
	base := baseNeighbors(g, pos)

	for _, c := range base {
		if c.pos == dest {
			return []candidate{c}
		}
	}

	out := base[:0]
	for _, c := range base {
		if !g.Get(c.pos).IsEmpty() {
			continue
		}
		below := voxel.Pos{X: c.pos.X, Y: c.pos.Y, Z: c.pos.Z + 1}
		if !g.Get(below).IsEmpty() {
			continue
		}
		above := voxel.Pos{X: c.pos.X, Y: c.pos.Y, Z: c.pos.Z - 1}
		aboveCell := g.Get(above)
		if !(aboveCell.IsEmpty() || aboveCell.IsReserved()) {
			continue
		}
		out = append(out, c)
	}

	return out
}

// saturatingSub mirrors Rust's usize::saturating_sub: it clamps at zero
// instead of going negative.
func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}

	return a - b
}
