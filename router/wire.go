package router

import "github.com/Lol3rrr/mclc-go/voxel"

// stampPath writes every position in path as a redstone wire over a solid
// substrate, then paints a 13-cell reservation halo around each (only where
// currently Empty) to model redstone's electrical interference radius
// (SPEC_FULL.md §4.4, grounded on connect_nodes.rs's place_path). Path order
// does not matter: every cell is stamped independently.
func stampPath(grid *voxel.Grid, path []voxel.Pos) {
	for _, pos := range path {
		grid.Set(pos, voxel.Overwrite(voxel.UsedCell(voxel.Wire())))
		grid.Set(voxel.Pos{X: pos.X, Y: pos.Y, Z: pos.Z + 1}, voxel.Overwrite(voxel.UsedCell(voxel.Solid())))

		for _, halo := range haloAround(pos) {
			setIfNonNegative(grid, halo, voxel.UpgradeEmptyToReserved())
		}
	}
}

// haloAround returns the 13 cells around pos that must not host another
// wire: the four same-layer cardinals, the cell directly above (z+1), and
// the four cardinals at z-1 and the four at z+1.
func haloAround(pos voxel.Pos) []voxel.Pos {
	x, y, z := pos.X, pos.Y, pos.Z

	return []voxel.Pos{
		{X: x + 1, Y: y, Z: z},
		{X: saturatingSub(x, 1), Y: y, Z: z},
		{X: x, Y: y + 1, Z: z},
		{X: x, Y: saturatingSub(y, 1), Z: z},
		{X: x, Y: y, Z: z + 1},
		{X: x + 1, Y: y, Z: z - 1},
		{X: saturatingSub(x, 1), Y: y, Z: z - 1},
		{X: x, Y: y + 1, Z: z - 1},
		{X: x, Y: saturatingSub(y, 1), Z: z - 1},
		{X: x + 1, Y: y, Z: z + 1},
		{X: saturatingSub(x, 1), Y: y, Z: z + 1},
		{X: x, Y: y + 1, Z: z + 1},
		{X: x, Y: saturatingSub(y, 1), Z: z + 1},
	}
}

// setIfNonNegative applies transform at pos unless any coordinate is
// negative, since the voxel grid has no addressable cells there; this is a
// defensive bounds guard the original's unsigned-integer saturating_sub
// calls partially provided but did not make exhaustive.
func setIfNonNegative(grid *voxel.Grid, pos voxel.Pos, transform voxel.Transform) {
	if pos.X < 0 || pos.Y < 0 || pos.Z < 0 {
		return
	}
	grid.Set(pos, transform)
}
