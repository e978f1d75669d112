package placement

import (
	"fmt"

	"github.com/Lol3rrr/mclc-go/circuit"
	"github.com/Lol3rrr/mclc-go/voxel"
)

// stampWireColumn writes a redstone wire cell with a solid substrate
// directly beneath it at each of positions — the repeated (Used(Redstone),
// Used(SolidBlock) at z+1) pattern every macro in backend/placement.rs
// stamps its wire runs with.
func stampWireColumn(g *voxel.Grid, positions ...voxel.Pos) {
	for _, p := range positions {
		g.Set(p, voxel.Overwrite(voxel.UsedCell(voxel.Wire())))
		g.Set(p.Add(voxel.Pos{Z: 1}), voxel.Overwrite(voxel.UsedCell(voxel.Solid())))
	}
}

// stampIO places the 1x1x1 macro shared by Input, Output, and Variable
// nodes: a single redstone cell over a solid substrate.
func stampIO(g *voxel.Grid, anchor voxel.Pos) {
	stampWireColumn(g, anchor)
}

// stampSplitter places a Splitter macro: a single input cell feeding a
// vertical spine of connecting cells, fanning out to ports output cells two
// apart, per backend/placement.rs's Splitter arm.
func stampSplitter(g *voxel.Grid, anchor voxel.Pos, portCount uint32) SplitterData {
	height := 1 + 2*(int(portCount)-1)
	inputYOff := (height - 1) / 2
	inputPos := voxel.Pos{X: anchor.X, Y: anchor.Y + inputYOff, Z: anchor.Z}

	ports := make([]voxel.Pos, portCount)
	for p := 0; p < int(portCount); p++ {
		ports[p] = voxel.Pos{X: anchor.X + 2, Y: anchor.Y + p*2, Z: anchor.Z}
	}

	connecting := make([]voxel.Pos, height)
	for y := 0; y < height; y++ {
		connecting[y] = voxel.Pos{X: anchor.X + 1, Y: anchor.Y + y, Z: anchor.Z}
	}

	stampWireColumn(g, inputPos)
	stampWireColumn(g, ports...)
	stampWireColumn(g, connecting...)

	return SplitterData{Input: inputPos, Ports: ports}
}

// stampXor places the 7x4x1 XOR macro verbatim from backend/placement.rs.
func stampXor(g *voxel.Grid, anchor voxel.Pos) OperationData {
	x, y, z := anchor.X, anchor.Y, anchor.Z

	wire := []voxel.Pos{
		{X: x, Y: y, Z: z},
		{X: x, Y: y + 3, Z: z},
		{X: x + 3, Y: y, Z: z},
		{X: x + 3, Y: y + 3, Z: z},
		{X: x + 4, Y: y, Z: z},
		{X: x + 4, Y: y + 1, Z: z},
		{X: x + 4, Y: y + 2, Z: z},
		{X: x + 4, Y: y + 3, Z: z},
		{X: x + 5, Y: y + 1, Z: z},
		{X: x + 6, Y: y + 1, Z: z},
	}
	solid := []voxel.Pos{
		{X: x + 2, Y: y, Z: z},
		{X: x + 2, Y: y + 1, Z: z},
		{X: x + 2, Y: y + 2, Z: z},
		{X: x + 2, Y: y + 3, Z: z},
	}
	repeaters := []voxel.Pos{
		{X: x + 1, Y: y, Z: z},
		{X: x + 1, Y: y + 3, Z: z},
	}
	comparators := []voxel.Pos{
		{X: x + 3, Y: y + 1, Z: z},
		{X: x + 3, Y: y + 2, Z: z},
	}

	stampWireColumn(g, wire...)
	for _, p := range solid {
		g.Set(p, voxel.Overwrite(voxel.UsedCell(voxel.Solid())))
	}
	for _, p := range repeaters {
		g.Set(p, voxel.Overwrite(voxel.UsedCell(voxel.NewRepeater(voxel.East))))
		g.Set(p.Add(voxel.Pos{Z: 1}), voxel.Overwrite(voxel.UsedCell(voxel.Solid())))
	}
	for _, p := range comparators {
		g.Set(p, voxel.Overwrite(voxel.UsedCell(voxel.NewComparator(voxel.East, true))))
		g.Set(p.Add(voxel.Pos{Z: 1}), voxel.Overwrite(voxel.UsedCell(voxel.Solid())))
	}

	return OperationData{
		InPorts:  []voxel.Pos{{X: x, Y: y, Z: z}, {X: x, Y: y + 3, Z: z}},
		OutPorts: []voxel.Pos{{X: x + 6, Y: y + 1, Z: z}},
	}
}

// stampAnd places the 5x3x1 AND macro verbatim from backend/placement.rs.
func stampAnd(g *voxel.Grid, anchor voxel.Pos) OperationData {
	x, y, z := anchor.X, anchor.Y, anchor.Z

	wire := []voxel.Pos{
		{X: x, Y: y, Z: z},
		{X: x, Y: y + 2, Z: z},
		{X: x + 3, Y: y + 1, Z: z},
		{X: x + 4, Y: y + 1, Z: z},
	}
	repeaters := []voxel.Pos{
		{X: x + 1, Y: y, Z: z},
		{X: x + 1, Y: y + 2, Z: z},
	}
	torches := []voxel.Pos{
		{X: x + 3, Y: y, Z: z},
		{X: x + 3, Y: y + 2, Z: z},
	}
	solid := []voxel.Pos{
		{X: x + 2, Y: y, Z: z},
		{X: x + 2, Y: y + 1, Z: z},
		{X: x + 2, Y: y + 2, Z: z},
	}

	stampWireColumn(g, wire...)
	for _, p := range repeaters {
		g.Set(p, voxel.Overwrite(voxel.UsedCell(voxel.NewRepeater(voxel.East))))
		g.Set(p.Add(voxel.Pos{Z: 1}), voxel.Overwrite(voxel.UsedCell(voxel.Solid())))
	}
	for _, p := range torches {
		g.Set(p, voxel.Overwrite(voxel.UsedCell(voxel.NewWallTorch(voxel.West))))
	}
	for _, p := range solid {
		g.Set(p, voxel.Overwrite(voxel.UsedCell(voxel.Solid())))
	}

	return OperationData{
		InPorts:  []voxel.Pos{{X: x, Y: y, Z: z}, {X: x, Y: y + 2, Z: z}},
		OutPorts: []voxel.Pos{{X: x + 4, Y: y + 1, Z: z}},
	}
}

// stampOr places the 3x3x1 OR macro verbatim from backend/placement.rs.
func stampOr(g *voxel.Grid, anchor voxel.Pos) OperationData {
	x, y, z := anchor.X, anchor.Y, anchor.Z

	wire := []voxel.Pos{
		{X: x, Y: y, Z: z},
		{X: x, Y: y + 2, Z: z},
		{X: x + 1, Y: y, Z: z},
		{X: x + 1, Y: y + 1, Z: z},
		{X: x + 1, Y: y + 2, Z: z},
		{X: x + 2, Y: y + 1, Z: z},
	}
	stampWireColumn(g, wire...)

	return OperationData{
		InPorts:  []voxel.Pos{{X: x, Y: y, Z: z}, {X: x, Y: y + 2, Z: z}},
		OutPorts: []voxel.Pos{{X: x + 2, Y: y + 1, Z: z}},
	}
}

// Stamp places node's macro at anchor on g, reserving a halo of reserveSpace
// cells around its footprint, and returns the placed node's full record.
func Stamp(g *voxel.Grid, node circuit.Node[circuit.NormalizedKind], anchor voxel.Pos, reserveSpace int) (Node, error) {
	var (
		width, depth, height = 1, 1, 1
		data                 Data
	)

	switch k := node.Kind.(type) {
	case circuit.NormalizedInput:
		stampIO(g, anchor)
		data = InputData{Name: k.Name}
	case circuit.NormalizedOutput:
		stampIO(g, anchor)
		data = OutputData{Name: k.Name}
	case circuit.NormalizedVariable:
		stampIO(g, anchor)
		data = VariableData{Name: k.Name}
	case circuit.NormalizedSplitter:
		depth = 1 + 2*(int(k.PortCount)-1)
		width = 3
		data = stampSplitter(g, anchor, k.PortCount)
	case circuit.NormalizedOperation:
		switch k.Op {
		case circuit.Xor:
			width, depth = 7, 4
			data = stampXor(g, anchor)
		case circuit.And:
			width, depth = 5, 3
			data = stampAnd(g, anchor)
		case circuit.Or:
			width, depth = 3, 3
			data = stampOr(g, anchor)
		default:
			return Node{}, fmt.Errorf("%w: %v", ErrNoStandaloneMacro, k.Op)
		}
	default:
		return Node{}, fmt.Errorf("%w: %T", ErrNoStandaloneMacro, node.Kind)
	}

	ReserveAround(g, anchor, width, depth, reserveSpace)

	return Node{
		ID:     node.ID,
		Anchor: anchor,
		Width:  width,
		Depth:  depth,
		Height: height,
		Data:   data,
	}, nil
}
