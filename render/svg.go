package render

import (
	"fmt"
	"strings"

	"github.com/Lol3rrr/mclc-go/voxel"
)

// scale is the pixel size of one voxel cell's footprint in the emitted SVG,
// matching visualize.rs's SCALE constant.
const scale = 10

// SVG renders g as a self-contained SVG document: one stacked layer per
// z-index, grid lines first, then the cell contents on top. Layer k is
// offset vertically by k * layerHeight pixels, where layerHeight is the
// grid's y-extent in pixels — the same "stack layers downward in the
// document" arrangement as visualize.rs's grid()/cells() (SPEC_FULL.md
// §4.11).
func SVG(g *voxel.Grid) (string, error) {
	width, depth, height := g.Size()
	layerHeight := depth * scale
	svgWidth := width * scale
	svgHeight := layerHeight * height

	var body strings.Builder
	writeGridLines(&body, width, depth, height, layerHeight)
	if err := writeCells(&body, g, layerHeight); err != nil {
		return "", err
	}

	var doc strings.Builder
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" version="1.11.1">`, svgWidth, svgHeight)
	doc.WriteString("\n")
	doc.WriteString(body.String())
	doc.WriteString("</svg>\n")

	return doc.String(), nil
}

func writeGridLines(w *strings.Builder, width, depth, height, layerHeight int) {
	w.WriteString(`<g>` + "\n")
	for layer := 0; layer < height; layer++ {
		yOffset := layer * layerHeight
		for x := 0; x < width; x++ {
			px := x * scale
			fmt.Fprintf(w, `<path fill="none" stroke="black" stroke-width="1" d="M%d,%d v%d"/>`+"\n", px, yOffset, depth*scale)
		}
		for y := 1; y < depth; y++ {
			py := y*scale + yOffset
			fmt.Fprintf(w, `<path fill="none" stroke="black" stroke-width="1" d="M0,%d h%d"/>`+"\n", py, width*scale)
		}
	}
	w.WriteString(`</g>` + "\n")
}

func writeCells(w *strings.Builder, g *voxel.Grid, layerHeight int) error {
	w.WriteString(`<g>` + "\n")

	var cellErr error
	g.Iter(func(pos voxel.Pos, cell voxel.Cell) {
		if cellErr != nil || !cell.IsUsed() {
			return
		}
		x := pos.X * scale
		y := pos.Y*scale + pos.Z*layerHeight
		if err := writeBlock(w, cell.Block, x, y); err != nil {
			cellErr = err
		}
	})

	w.WriteString(`</g>` + "\n")
	return cellErr
}

func writeBlock(w *strings.Builder, b voxel.Block, x, y int) error {
	switch b.Kind {
	case voxel.SolidBlock:
		writeRect(w, "gray", x, y, scale, scale)
	case voxel.RedstoneWire:
		writeRect(w, "#FF0000", x, y, scale, scale)
	case voxel.RepeaterBlock:
		writeRect(w, "lightgrey", x, y, scale, scale)
		if b.Direction != voxel.East {
			return fmt.Errorf("%w: repeater facing %s", ErrUnsupportedOrientation, b.Direction)
		}
		torch := scale / 5
		ty := y + scale/2 - torch/2
		writeRect(w, "#FF0000", x+torch*4, ty, torch, torch)
		writeRect(w, "#FF0000", x+torch*2, ty, torch, torch)
	case voxel.ComparatorBlock:
		writeRect(w, "lightgrey", x, y, scale, scale)
		if b.Direction != voxel.East {
			return fmt.Errorf("%w: comparator facing %s", ErrUnsupportedOrientation, b.Direction)
		}
		torch := scale / 5
		tx := x + torch
		writeRect(w, "#FF0000", tx, y+torch, torch, torch)
		writeRect(w, "#FF0000", tx, y+torch*3, torch, torch)
		thirdColor := "#AA3333"
		if b.Activated {
			thirdColor = "#FF0000"
		}
		writeRect(w, thirdColor, x+torch*3, y+scale/2-torch/2, torch, torch)
	case voxel.WallTorchBlock:
		if b.Direction != voxel.West {
			return fmt.Errorf("%w: wall torch facing %s", ErrUnsupportedOrientation, b.Direction)
		}
		torch := scale / 5
		writeRect(w, "#FF0000", x, y+scale/2-torch/2, torch, torch)
	}

	return nil
}

func writeRect(w *strings.Builder, fill string, x, y, width, height int) {
	fmt.Fprintf(w, `<rect fill="%s" x="%d" y="%d" width="%d" height="%d"/>`+"\n", fill, x, y, width, height)
}
