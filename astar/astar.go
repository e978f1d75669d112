package astar

import (
	"errors"
	"fmt"

	"github.com/Lol3rrr/mclc-go/openset"
)

// ErrNoPath indicates the open set was exhausted before reaching dest. The
// domain this package serves (wire routing over a voxel grid that always
// has room to route) assumes a path always exists; SPEC_FULL.md §7 treats
// this as an unrecoverable bug, not a condition callers should retry.
var ErrNoPath = errors.New("astar: no path found")

// DistanceFunc estimates the cost between two indices; for the router this
// is Manhattan L1 in three axes, which is consistent for the 6-connected
// (plus diagonal step) grid this package is used over (SPEC_FULL.md §4.2).
type DistanceFunc[I any] func(a, b I) int64

// Neighbor is one admissible step out of a position, paired with its edge
// cost.
type Neighbor[I any] struct {
	Index I
	Cost  int64
}

// NeighborFunc returns every admissible neighbor of pos within container.
// It is handed the container itself so domain-specific adjacency rules
// (e.g. the voxel grid's occupancy/reservation filtering) stay out of this
// package entirely (SPEC_FULL.md §4.3, §9).
type NeighborFunc[C any, I any] func(container C, pos I) []Neighbor[I]

// Search runs A* from start to dest over container, using dist only as the
// heuristic term and neigh to expand a position into its admissible
// neighbors; each step's cost is the Cost field of the Neighbor that neigh
// reports.
//
// Returns the sequence of indices from start to dest inclusive. Returns
// ErrNoPath if the open set empties before dest is reached — per
// SPEC_FULL.md §4.2/§7 this indicates a bug in the caller's domain model,
// not a condition to recover from.
func Search[C any, I comparable](
	container C,
	start, dest I,
	dist DistanceFunc[I],
	neigh NeighborFunc[C, I],
) ([]I, error) {
	cameFrom := make(map[I]I)
	gScore := make(map[I]int64)
	gScore[start] = 0

	open := openset.New[I]()
	open.Update(start, dist(start, dest))

	for open.Len() > 0 {
		current, ok := open.Pop()
		if !ok {
			break
		}

		if current == dest {
			return reconstructPath(cameFrom, current), nil
		}

		currentG := gScore[current]
		for _, n := range neigh(container, current) {
			tentativeG := currentG + n.Cost
			prevG, seen := gScore[n.Index]
			if seen && tentativeG >= prevG {
				continue
			}

			cameFrom[n.Index] = current
			gScore[n.Index] = tentativeG
			open.Update(n.Index, tentativeG+dist(n.Index, dest))
		}
	}

	return nil, fmt.Errorf("%w: from %v to %v", ErrNoPath, start, dest)
}

// reconstructPath walks cameFrom backward from current to the (implicit)
// start and returns the path from start to current inclusive, in order.
func reconstructPath[I comparable](cameFrom map[I]I, current I) []I {
	path := []I{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		current = prev
		path = append([]I{current}, path...)
	}

	return path
}
