package placement

import "github.com/Lol3rrr/mclc-go/voxel"

// Data is the per-kind payload recorded for a placed node, carrying the
// port positions that package router connects edges between. Implementations
// are InputData, OutputData, VariableData, SplitterData, and OperationData.
type Data interface {
	placementData()
}

// InputData records a placed Input node's declared name.
type InputData struct {
	Name string
}

// OutputData records a placed Output node's declared name.
type OutputData struct {
	Name string
}

// VariableData records a placed Variable node's declared name.
type VariableData struct {
	Name string
}

// SplitterData records a placed Splitter's single input port position and
// its ports output port positions, in port-index order.
type SplitterData struct {
	Input voxel.Pos
	Ports []voxel.Pos
}

// OperationData records a placed primitive-operation macro's input and
// output port positions, in declared-port order.
type OperationData struct {
	InPorts  []voxel.Pos
	OutPorts []voxel.Pos
}

func (InputData) placementData()    {}
func (OutputData) placementData()   {}
func (VariableData) placementData() {}
func (SplitterData) placementData() {}
func (OperationData) placementData() {}

// Node is one node's placement result: its graph id, its bounding-box
// anchor (the lowest (x,y,z) corner of its footprint), and its per-kind
// port data. Width/depth/height record the same footprint placement.Place
// used to reserve space for it (SPEC_FULL.md §8 property 3).
type Node struct {
	ID     uint32
	Anchor voxel.Pos
	Width  int
	Depth  int
	Height int
	Data   Data
}
