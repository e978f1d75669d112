package router

import (
	"fmt"

	"github.com/Lol3rrr/mclc-go/astar"
	"github.com/Lol3rrr/mclc-go/circuit"
	"github.com/Lol3rrr/mclc-go/placement"
	"github.com/Lol3rrr/mclc-go/voxel"
)

// ConnectAll routes every edge of g across grid, in edge order, using the
// port positions recorded in placed. Edges are never revisited once routed:
// a later edge must navigate the reservation halos earlier edges have
// already painted, and a router failure partway through is an unrecoverable
// error, not a condition to retry or roll back (SPEC_FULL.md §4.4, §7).
func ConnectAll(grid *voxel.Grid, g *circuit.NormalizedGraph, placed []placement.Node, reserveSpace int) error {
	byID := make(map[uint32]placement.Node, len(placed))
	for _, p := range placed {
		byID[p.ID] = p
	}

	for _, e := range g.Edges() {
		if err := connectEdge(grid, e, byID, reserveSpace); err != nil {
			return err
		}
	}

	return nil
}

// connectEdge resolves e's source and destination port positions, unreserves
// a stub on the source's +x side and the destination's -x side so A* has
// room to leave/enter, searches a path between the stubs, and stamps it.
func connectEdge(grid *voxel.Grid, e circuit.Edge, placed map[uint32]placement.Node, reserveSpace int) error {
	srcNode, ok := placed[e.SrcID]
	if !ok {
		return fmt.Errorf("%w: node %d", ErrNodeNotPlaced, e.SrcID)
	}
	destNode, ok := placed[e.DestID]
	if !ok {
		return fmt.Errorf("%w: node %d", ErrNodeNotPlaced, e.DestID)
	}

	srcPos, err := sourcePortPos(srcNode, e.SrcPort)
	if err != nil {
		return err
	}
	destPos, err := destPortPos(destNode, e.DestPort)
	if err != nil {
		return err
	}

	unreserveStub(grid, srcPos, destPos, reserveSpace)

	searchStart := voxel.Pos{X: srcPos.X + 1, Y: srcPos.Y, Z: srcPos.Z}
	searchDest := voxel.Pos{X: destPos.X - 1, Y: destPos.Y, Z: destPos.Z}

	path, err := astar.Search(grid, searchStart, searchDest, manhattan3D, func(g *voxel.Grid, pos voxel.Pos) []astar.Neighbor[voxel.Pos] {
		cands := admissibleNeighbors(g, pos, searchDest)
		out := make([]astar.Neighbor[voxel.Pos], len(cands))
		for i, c := range cands {
			out[i] = astar.Neighbor[voxel.Pos]{Index: c.pos, Cost: c.cost}
		}
		return out
	})
	if err != nil {
		return fmt.Errorf("router: edge %d:%d -> %d:%d: %w", e.SrcID, e.SrcPort, e.DestID, e.DestPort, err)
	}

	path = append(path, srcPos, destPos)
	stampPath(grid, path)

	return nil
}

// manhattan3D is the A* heuristic/distance function: L1 distance in three
// axes, admissible since every step costs at least 1.
func manhattan3D(a, b voxel.Pos) int64 {
	return int64(absInt(a.X-b.X) + absInt(a.Y-b.Y) + absInt(a.Z-b.Z))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// unreserveStub clears a corridor of reserveSpace+1 cells on the source
// port's +x side and the destination port's -x side (both z-layers on the
// destination side), breaking the halos placement painted around each
// macro so the router has somewhere to enter and exit (SPEC_FULL.md §4.4).
func unreserveStub(grid *voxel.Grid, srcPos, destPos voxel.Pos, reserveSpace int) {
	for x := srcPos.X; x < srcPos.X+reserveSpace+1; x++ {
		grid.Set(voxel.Pos{X: x, Y: srcPos.Y, Z: srcPos.Z}, voxel.Overwrite(voxel.EmptyCell))
	}

	start := saturatingSub(destPos.X, reserveSpace+1)
	for x := start; x < destPos.X; x++ {
		grid.Set(voxel.Pos{X: x, Y: destPos.Y, Z: destPos.Z}, voxel.Overwrite(voxel.EmptyCell))
		grid.Set(voxel.Pos{X: x, Y: destPos.Y, Z: destPos.Z + 1}, voxel.Overwrite(voxel.EmptyCell))
	}
}

// sourcePortPos resolves the voxel position an edge's source port resolves
// to, given the placed node's kind-specific port data.
func sourcePortPos(node placement.Node, port uint32) (voxel.Pos, error) {
	switch d := node.Data.(type) {
	case placement.InputData, placement.OutputData, placement.VariableData:
		return node.Anchor, nil
	case placement.SplitterData:
		if int(port) >= len(d.Ports) {
			return voxel.Pos{}, fmt.Errorf("%w: splitter port %d", ErrPortNotPlaced, port)
		}
		return d.Ports[port], nil
	case placement.OperationData:
		if int(port) >= len(d.OutPorts) {
			return voxel.Pos{}, fmt.Errorf("%w: operation out-port %d", ErrPortNotPlaced, port)
		}
		return d.OutPorts[port], nil
	default:
		return voxel.Pos{}, fmt.Errorf("%w: unrecognized placement data %T", ErrPortNotPlaced, node.Data)
	}
}

// destPortPos resolves the voxel position an edge's destination port
// resolves to.
func destPortPos(node placement.Node, port uint32) (voxel.Pos, error) {
	switch d := node.Data.(type) {
	case placement.InputData, placement.OutputData, placement.VariableData:
		return node.Anchor, nil
	case placement.SplitterData:
		return d.Input, nil
	case placement.OperationData:
		if int(port) >= len(d.InPorts) {
			return voxel.Pos{}, fmt.Errorf("%w: operation in-port %d", ErrPortNotPlaced, port)
		}
		return d.InPorts[port], nil
	default:
		return voxel.Pos{}, fmt.Errorf("%w: unrecognized placement data %T", ErrPortNotPlaced, node.Data)
	}
}
