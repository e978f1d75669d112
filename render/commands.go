package render

import (
	"fmt"
	"strings"

	"github.com/Lol3rrr/mclc-go/voxel"
)

// batchSize is the maximum number of setblock commands wrapped into one
// self-destructing installer string, matching backend.rs's
// BlockLayout::place_commands chunks(400).
const batchSize = 400

// placeCmd builds the single `setblock` command for one Used cell at pos.
// World coordinates are relative (`~`) and axis-swapped from grid
// coordinates: world x = -grid.X, world y = -grid.Z, world z = -grid.Y, so
// stacking upward in grid Z becomes stacking upward in world Y — the exact
// mapping backend.rs's MinecraftBlock::place_cmd uses.
func placeCmd(pos voxel.Pos, b voxel.Block) (string, error) {
	blockStr, err := blockState(b)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("setblock ~%d ~%d ~%d %s", -pos.X, -pos.Z, -pos.Y, blockStr), nil
}

func blockState(b voxel.Block) (string, error) {
	switch b.Kind {
	case voxel.SolidBlock:
		return "stone", nil
	case voxel.RedstoneWire:
		return "redstone_wire", nil
	case voxel.WallTorchBlock:
		return fmt.Sprintf("redstone_wall_torch[facing=%s]", b.Direction), nil
	case voxel.RepeaterBlock:
		return fmt.Sprintf("repeater[facing=%s]", b.Direction), nil
	case voxel.ComparatorBlock:
		if !b.Activated {
			return "", fmt.Errorf("%w: inactive comparator has no command-form block state", ErrUnsupportedOrientation)
		}
		return fmt.Sprintf("comparator[facing=%s,mode=subtract]", b.Direction), nil
	default:
		return "", fmt.Errorf("%w: unrecognized block kind", ErrUnsupportedOrientation)
	}
}

// Commands walks g's Used cells and returns the batched installer command
// list: solid blocks first (chunked), then every other block kind
// (chunked), each chunk wrapped in the nested falling_block/activator_rail/
// command_block_minecart self-destructing installer (SPEC_FULL.md §4.11,
// grounded on backend.rs's BlockLayout::place_commands).
func Commands(g *voxel.Grid) ([]string, error) {
	var stoneCmds, restCmds []string

	var iterErr error
	g.Iter(func(pos voxel.Pos, cell voxel.Cell) {
		if iterErr != nil || !cell.IsUsed() {
			return
		}
		cmd, err := placeCmd(pos, cell.Block)
		if err != nil {
			iterErr = err
			return
		}
		if cell.Block.Kind == voxel.SolidBlock {
			stoneCmds = append(stoneCmds, cmd)
		} else {
			restCmds = append(restCmds, cmd)
		}
	})
	if iterErr != nil {
		return nil, iterErr
	}

	var batches []string
	for _, chunk := range chunk(stoneCmds, batchSize) {
		batches = append(batches, installer(chunk))
	}
	for _, chunk := range chunk(restCmds, batchSize) {
		batches = append(batches, installer(chunk))
	}

	return batches, nil
}

func chunk(cmds []string, size int) [][]string {
	var chunks [][]string
	for len(cmds) > size {
		chunks = append(chunks, cmds[:size])
		cmds = cmds[size:]
	}
	if len(cmds) > 0 {
		chunks = append(chunks, cmds)
	}
	return chunks
}

// installer wraps cmds in the nested falling_block/activator_rail/
// command_block_minecart entity chain that runs each command once on
// landing and self-destructs, the exact NBT string backend.rs emits.
func installer(cmds []string) string {
	var bundled strings.Builder
	for _, raw := range cmds {
		fmt.Fprintf(&bundled, "{id:command_block_minecart,Command:'%s'},", raw)
	}

	return fmt.Sprintf(
		"summon falling_block ~ ~1 ~ {Time:1,BlockState:{Name:redstone_block},Passengers:[{id:falling_block,Passengers:[{id:falling_block,Time:1,BlockState:{Name:activator_rail},Passengers:[{id:command_block_minecart,Command:'gamerule commandBlockOutput false'},%s{id:command_block_minecart,Command:'setblock ~ ~1 ~ command_block{auto:1,Command:\"fill ~ ~ ~ ~ ~-3 ~ air\"}'},{id:command_block_minecart,Command:'kill @e[type=command_block_minecart,distance=..1]'}]}]}]}",
		bundled.String(),
	)
}
