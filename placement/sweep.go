package placement

import (
	"github.com/Lol3rrr/mclc-go/circuit"
	"github.com/Lol3rrr/mclc-go/voxel"
)

// DefaultReserveSpace is the halo radius ReserveAround paints around each
// macro's footprint when Place is not given an explicit override.
const DefaultReserveSpace = 3

// DefaultColumnSpacing is the extra gap, beyond each column's own
// reservation halos, left between one placement column and the next.
const DefaultColumnSpacing = 10

// baseZ is the fixed z-layer every macro in a layout is stamped at. The
// original never varies z during placement; only routing climbs and
// descends in z to route around obstacles.
const baseZ = 8

// Place lays every node of g onto a fresh voxel.Grid using a column-sweep
// topological placer: repeatedly batch every node with no still-unplaced
// predecessor into the current column, stamp each with its macro, then
// advance to the next x column sized to the widest macro just placed
// (SPEC_FULL.md §4.6, grounded on backend.rs's generate_layout).
//
// Place does not route edges; that is package router's job, run over the
// grid and placements Place returns.
func Place(g *circuit.NormalizedGraph, reserveSpace, columnSpacing int) (*voxel.Grid, []Node, error) {
	grid := voxel.NewGrid()

	toPlace := circuit.NodesWithPredecessors(g)
	var placed []Node

	xOffset := 1
	for len(toPlace) > 0 {
		var placeable []circuit.Node[circuit.NormalizedKind]
		for _, entry := range toPlace {
			if len(entry.Preds) == 0 {
				placeable = append(placeable, entry.Node)
			}
		}

		yOffset := 1
		maxWidth := 0
		for _, node := range placeable {
			toPlace = removeNode(toPlace, node.ID)

			anchor := voxel.Pos{X: xOffset, Y: yOffset, Z: baseZ}
			p, err := Stamp(grid, node, anchor, reserveSpace)
			if err != nil {
				return nil, nil, err
			}
			placed = append(placed, p)

			yOffset += p.Depth + 5
			if p.Width > maxWidth {
				maxWidth = p.Width
			}
		}

		xOffset += maxWidth + columnSpacing + 2*reserveSpace
	}

	return grid, placed, nil
}

// nodesWithPreds is the element type circuit.NodesWithPredecessors returns;
// aliased here so removeNode's signature stays readable.
type nodesWithPreds = []struct {
	Node  circuit.Node[circuit.NormalizedKind]
	Preds []uint32
}

// removeNode deletes the entry for id from entries and strikes id out of
// every remaining entry's Preds list, mirroring generate_layout's in-place
// bookkeeping after each node is placed.
func removeNode(entries nodesWithPreds, id uint32) nodesWithPreds {
	out := entries[:0]
	for _, e := range entries {
		if e.Node.ID == id {
			continue
		}
		e.Preds = removeID(e.Preds, id)
		out = append(out, e)
	}

	return out
}

func removeID(ids []uint32, id uint32) []uint32 {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
