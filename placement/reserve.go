package placement

import "github.com/Lol3rrr/mclc-go/voxel"

// ReserveAround paints a reservation halo around the width x depth
// footprint anchored at pos: the row one cell above and one cell below the
// footprint (extended reserveSpace cells past each side), and the column
// reserveSpace cells left and right of the footprint (running from two cells
// before its first row to one cell past its last row, on both the z and z+1
// layers). Only cells currently
// Empty are upgraded — an already-Used or already-Reserved cell is left
// untouched (SPEC_FULL.md §4.5, grounded on backend/placement/reserve.rs's
// reserve_around).
func ReserveAround(g *voxel.Grid, pos voxel.Pos, width, depth, reserveSpace int) {
	x, y, z := pos.X, pos.Y, pos.Z

	rowStart := saturatingSub(x, reserveSpace)
	rowEnd := x + width + reserveSpace
	for xPos := rowStart; xPos < rowEnd; xPos++ {
		g.Set(voxel.Pos{X: xPos, Y: y - 1, Z: z}, voxel.UpgradeEmptyToReserved())
		g.Set(voxel.Pos{X: xPos, Y: y + depth, Z: z}, voxel.UpgradeEmptyToReserved())
	}

	colStart := saturatingSub(y, 2)
	colEnd := y + depth + 1
	for yPos := colStart; yPos < colEnd; yPos++ {
		left := voxel.Pos{X: saturatingSub(x, reserveSpace), Y: yPos, Z: z}
		right := voxel.Pos{X: x + width + reserveSpace, Y: yPos, Z: z}
		g.Set(left, voxel.UpgradeEmptyToReserved())
		g.Set(right, voxel.UpgradeEmptyToReserved())
		g.Set(left.Add(voxel.Pos{Z: 1}), voxel.UpgradeEmptyToReserved())
		g.Set(right.Add(voxel.Pos{Z: 1}), voxel.UpgradeEmptyToReserved())
	}
}

// saturatingSub mirrors Rust's usize::saturating_sub: it clamps at zero
// instead of going negative, since voxel coordinates are never negative.
func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}

	return a - b
}
