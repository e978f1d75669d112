package voxel

// Pos addresses a single cell in the grid.
type Pos struct {
	X, Y, Z int
}

// Add returns the component-wise sum of p and q.
func (p Pos) Add(q Pos) Pos {
	return Pos{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Orientation is the compass face a directional block points toward.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

// String renders the orientation the way Minecraft block-state strings
// spell it ("facing=north", etc.), used directly by package render.
func (o Orientation) String() string {
	switch o {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "north"
	}
}

// BlockKind tags the variant of a physical Block.
type BlockKind int

const (
	SolidBlock BlockKind = iota
	RedstoneWire
	ComparatorBlock
	RepeaterBlock
	WallTorchBlock
)

// Block is a physical, placed block. Only the fields relevant to Kind are
// meaningful: SolidBlock and RedstoneWire ignore Direction and Activated;
// Repeater and WallTorch ignore Activated; only Comparator uses Activated.
type Block struct {
	Kind      BlockKind
	Direction Orientation
	Activated bool
}

// Solid, Wire, Comparator, Repeater, and WallTorch are constructors for each
// Block variant, kept small and obvious rather than exposing the struct
// literal everywhere macro stamping happens.

func Solid() Block { return Block{Kind: SolidBlock} }

func Wire() Block { return Block{Kind: RedstoneWire} }

func NewComparator(dir Orientation, activated bool) Block {
	return Block{Kind: ComparatorBlock, Direction: dir, Activated: activated}
}

func NewRepeater(dir Orientation) Block {
	return Block{Kind: RepeaterBlock, Direction: dir}
}

func NewWallTorch(dir Orientation) Block {
	return Block{Kind: WallTorchBlock, Direction: dir}
}

// CellState tags the variant of a Cell.
type CellState int

const (
	// Empty is the default state of any address never written.
	Empty CellState = iota
	// Reserved is a soft-blocked halo: routing may tunnel under it but may
	// not occupy it, and placement may upgrade it back to Used.
	Reserved
	// Used holds a physical Block.
	Used
)

// Cell is a tagged-variant grid cell: Empty, Reserved, or Used(Block).
type Cell struct {
	State CellState
	Block Block
}

// EmptyCell is the zero value of Cell and the default for any unwritten
// address; it is also Go's natural zero value, so a freshly grown slice
// needs no explicit initialization to read as Empty.
var EmptyCell = Cell{State: Empty}

// ReservedCell constructs a Reserved cell.
func ReservedCell() Cell { return Cell{State: Reserved} }

// UsedCell constructs a Used cell wrapping b.
func UsedCell(b Block) Cell { return Cell{State: Used, Block: b} }

// IsEmpty reports whether c is the Empty variant.
func (c Cell) IsEmpty() bool { return c.State == Empty }

// IsReserved reports whether c is the Reserved variant.
func (c Cell) IsReserved() bool { return c.State == Reserved }

// IsUsed reports whether c is the Used variant.
func (c Cell) IsUsed() bool { return c.State == Used }
