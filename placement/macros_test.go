package placement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lol3rrr/mclc-go/circuit"
	"github.com/Lol3rrr/mclc-go/placement"
	"github.com/Lol3rrr/mclc-go/voxel"
)

// assertWithinFootprint asserts every Used cell g has ever materialized, on
// any z layer, falls inside [anchor, anchor+size) on x/y
// (SPEC_FULL.md §8 property 3, "Macro bounding-box containment").
func assertWithinFootprint(t *testing.T, g *voxel.Grid, anchor voxel.Pos, width, depth int) {
	t.Helper()
	g.Iter(func(pos voxel.Pos, cell voxel.Cell) {
		if !cell.IsUsed() {
			return
		}
		assert.GreaterOrEqualf(t, pos.X, anchor.X, "used cell %v below anchor x", pos)
		assert.Lessf(t, pos.X, anchor.X+width, "used cell %v beyond footprint width", pos)
		assert.GreaterOrEqualf(t, pos.Y, anchor.Y, "used cell %v below anchor y", pos)
		assert.Lessf(t, pos.Y, anchor.Y+depth, "used cell %v beyond footprint depth", pos)
	})
}

func TestStamp_XorMacro(t *testing.T) {
	g := voxel.NewGrid()
	anchor := voxel.Pos{X: 1, Y: 1, Z: 8}
	node := circuit.NewNode[circuit.NormalizedKind](0, circuit.NormalizedOperation{Op: circuit.Xor})

	placed, err := placement.Stamp(g, node, anchor, placement.DefaultReserveSpace)
	require.NoError(t, err)

	assert.Equal(t, 7, placed.Width)
	assert.Equal(t, 4, placed.Depth)

	data, ok := placed.Data.(placement.OperationData)
	require.True(t, ok)
	require.Len(t, data.InPorts, 2)
	require.Len(t, data.OutPorts, 1)
	assert.Equal(t, voxel.Pos{X: anchor.X, Y: anchor.Y, Z: anchor.Z}, data.InPorts[0])
	assert.Equal(t, voxel.Pos{X: anchor.X, Y: anchor.Y + 3, Z: anchor.Z}, data.InPorts[1])
	assert.Equal(t, voxel.Pos{X: anchor.X + 6, Y: anchor.Y + 1, Z: anchor.Z}, data.OutPorts[0])

	assertWithinFootprint(t, g, anchor, 7, 4)
}

func TestStamp_AndMacro(t *testing.T) {
	g := voxel.NewGrid()
	anchor := voxel.Pos{X: 2, Y: 2, Z: 8}
	node := circuit.NewNode[circuit.NormalizedKind](1, circuit.NormalizedOperation{Op: circuit.And})

	placed, err := placement.Stamp(g, node, anchor, placement.DefaultReserveSpace)
	require.NoError(t, err)
	assert.Equal(t, 5, placed.Width)
	assert.Equal(t, 3, placed.Depth)
	assertWithinFootprint(t, g, anchor, 5, 3)
}

func TestStamp_OrMacro(t *testing.T) {
	g := voxel.NewGrid()
	anchor := voxel.Pos{X: 2, Y: 2, Z: 8}
	node := circuit.NewNode[circuit.NormalizedKind](2, circuit.NormalizedOperation{Op: circuit.Or})

	placed, err := placement.Stamp(g, node, anchor, placement.DefaultReserveSpace)
	require.NoError(t, err)
	assert.Equal(t, 3, placed.Width)
	assert.Equal(t, 3, placed.Depth)
	assertWithinFootprint(t, g, anchor, 3, 3)
}

func TestStamp_NotHasNoMacro(t *testing.T) {
	g := voxel.NewGrid()
	node := circuit.NewNode[circuit.NormalizedKind](3, circuit.NormalizedOperation{Op: circuit.Not})

	_, err := placement.Stamp(g, node, voxel.Pos{X: 1, Y: 1, Z: 8}, placement.DefaultReserveSpace)
	require.ErrorIs(t, err, placement.ErrNoStandaloneMacro)
}

func TestStamp_SplitterFootprintGrowsWithPortCount(t *testing.T) {
	g := voxel.NewGrid()
	node := circuit.NewNode[circuit.NormalizedKind](4, circuit.NormalizedSplitter{PortCount: 3})

	placed, err := placement.Stamp(g, node, voxel.Pos{X: 1, Y: 1, Z: 8}, placement.DefaultReserveSpace)
	require.NoError(t, err)
	assert.Equal(t, 3, placed.Width)
	assert.Equal(t, 5, placed.Depth) // 1 + 2*(3-1) rows along y

	data, ok := placed.Data.(placement.SplitterData)
	require.True(t, ok)
	assert.Len(t, data.Ports, 3)
}

// TestStamp_DisjointMacrosDoNotOverlap places two And macros far enough
// apart and confirms neither's Used cells appear inside the other's
// declared bounding box (SPEC_FULL.md §8 property 4, "Macro disjointness").
func TestStamp_DisjointMacrosDoNotOverlap(t *testing.T) {
	g := voxel.NewGrid()
	first := circuit.NewNode[circuit.NormalizedKind](0, circuit.NormalizedOperation{Op: circuit.And})
	second := circuit.NewNode[circuit.NormalizedKind](1, circuit.NormalizedOperation{Op: circuit.And})

	anchorA := voxel.Pos{X: 1, Y: 1, Z: 8}
	anchorB := voxel.Pos{X: 20, Y: 1, Z: 8}

	_, err := placement.Stamp(g, first, anchorA, placement.DefaultReserveSpace)
	require.NoError(t, err)
	_, err = placement.Stamp(g, second, anchorB, placement.DefaultReserveSpace)
	require.NoError(t, err)

	g.Iter(func(pos voxel.Pos, cell voxel.Cell) {
		if !cell.IsUsed() {
			return
		}
		insideA := pos.X >= anchorA.X && pos.X < anchorA.X+5 && pos.Y >= anchorA.Y && pos.Y < anchorA.Y+3
		insideB := pos.X >= anchorB.X && pos.X < anchorB.X+5 && pos.Y >= anchorB.Y && pos.Y < anchorB.Y+3
		assert.Falsef(t, insideA && insideB, "cell %v fell inside both macros' bounding boxes", pos)
	})
}
