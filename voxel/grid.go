package voxel

// Transform maps an old cell to a new one. Set takes a Transform rather than
// a plain value so that callers can encode write policy — e.g. "upgrade
// Empty to Reserved but never touch Used or downgrade Reserved" — as a pure
// function instead of duplicating that policy at every call site
// (SPEC_FULL.md §4.1).
type Transform func(old Cell) Cell

// Overwrite returns a Transform that unconditionally replaces the old cell
// with next, ignoring it. Used by macro stamping and wire placement, which
// always want their own writes to win.
func Overwrite(next Cell) Transform {
	return func(Cell) Cell { return next }
}

// UpgradeEmptyToReserved returns a Transform that paints Reserved only over
// a currently-Empty cell, leaving Used and already-Reserved cells untouched.
// This is the transform reservation halos use (SPEC_FULL.md §4.5, §4.4): it
// must never clobber a physical block nor count twice over an existing halo.
func UpgradeEmptyToReserved() Transform {
	return func(old Cell) Cell {
		if old.State == Empty {
			return ReservedCell()
		}
		return old
	}
}

// Grid is a lazily-grown, nested-slice-backed sparse 3-D grid of Cell,
// indexed z (outermost), then y, then x — the same layer/row/cell nesting
// order as the original Space<T>, so Size()'s (width, depth, height) tuple
// lines up with (x-extent, y-extent, z-extent) the same way.
//
// The zero value is an empty, usable Grid (no constructor needed, matching
// the original Space::new()/Default behavior of starting with zero layers).
type Grid struct {
	// layers[z][y][x] = Cell. A nil or short layer/row reads as Empty for
	// any address beyond its current length; growth happens lazily in Set.
	layers [][][]Cell
}

// NewGrid returns an empty Grid. Provided for symmetry with the rest of the
// package's constructors; the zero value works identically.
func NewGrid() *Grid {
	return &Grid{}
}

// Get returns the cell at pos. Any address never written by Set reads as
// Empty, including addresses outside the grid's current backing storage.
// Complexity: O(1).
func (g *Grid) Get(pos Pos) Cell {
	if pos.X < 0 || pos.Y < 0 || pos.Z < 0 {
		return EmptyCell
	}
	if pos.Z >= len(g.layers) {
		return EmptyCell
	}
	layer := g.layers[pos.Z]
	if pos.Y >= len(layer) {
		return EmptyCell
	}
	row := layer[pos.Y]
	if pos.X >= len(row) {
		return EmptyCell
	}

	return row[pos.X]
}

// Set applies transform to the current cell at pos and stores the result,
// growing backing storage as needed to reach pos. Growth never shrinks or
// reorders existing cells; newly allocated cells start Empty (Go's zero
// Cell), matching the default-Empty contract.
// Complexity: amortized O(1), O(max(Δx,Δy,Δz)) worst case on first touch of
// a far-away address.
func (g *Grid) Set(pos Pos, transform Transform) {
	if pos.X < 0 || pos.Y < 0 || pos.Z < 0 {
		panic("voxel: negative coordinate")
	}

	for pos.Z >= len(g.layers) {
		g.layers = append(g.layers, nil)
	}
	layer := g.layers[pos.Z]

	for pos.Y >= len(layer) {
		layer = append(layer, nil)
	}
	g.layers[pos.Z] = layer
	row := layer[pos.Y]

	for pos.X >= len(row) {
		row = append(row, EmptyCell)
	}
	layer[pos.Y] = row

	row[pos.X] = transform(row[pos.X])
}

// Iter calls visit once for every address ever materialized by a Set call —
// not the logical infinite domain, only cells that have backing storage.
// Cells that were grown as filler (e.g. a row extended to reach a farther
// x) but never individually transformed are still visited; they read as
// Empty, the same value Get would return for them.
func (g *Grid) Iter(visit func(pos Pos, cell Cell)) {
	for z, layer := range g.layers {
		for y, row := range layer {
			for x, cell := range row {
				visit(Pos{X: x, Y: y, Z: z}, cell)
			}
		}
	}
}

// Size returns the grid's bounding extents (width, depth, height) along
// x, y, z respectively — the furthest-grown index on each axis plus one.
// A never-written Grid reports all-zero extents.
func (g *Grid) Size() (width, depth, height int) {
	height = len(g.layers)
	for _, layer := range g.layers {
		if len(layer) > depth {
			depth = len(layer)
		}
		for _, row := range layer {
			if len(row) > width {
				width = len(row)
			}
		}
	}

	return width, depth, height
}
