package render_test

import (
	"strings"
	"testing"

	"github.com/Lol3rrr/mclc-go/render"
	"github.com/Lol3rrr/mclc-go/voxel"
)

func TestSVG_EmptyGridIsValidDocument(t *testing.T) {
	g := voxel.NewGrid()
	doc, err := render.SVG(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(doc, "<svg") || !strings.HasSuffix(doc, "</svg>\n") {
		t.Fatalf("expected a well-formed svg document, got %q", doc)
	}
}

func TestSVG_SolidBlockRendersGrayRect(t *testing.T) {
	g := voxel.NewGrid()
	g.Set(voxel.Pos{X: 1, Y: 2, Z: 0}, voxel.Overwrite(voxel.UsedCell(voxel.Solid())))

	doc, err := render.SVG(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(doc, `fill="gray"`) {
		t.Fatalf("expected a gray rect in %q", doc)
	}
	if !strings.Contains(doc, `x="10" y="20"`) {
		t.Fatalf("expected the rect positioned at the voxel's scaled offset, got %q", doc)
	}
}

func TestSVG_RedstoneRendersRedRect(t *testing.T) {
	g := voxel.NewGrid()
	g.Set(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Overwrite(voxel.UsedCell(voxel.Wire())))

	doc, err := render.SVG(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(doc, `fill="#FF0000"`) {
		t.Fatalf("expected a red rect in %q", doc)
	}
}

func TestSVG_RepeaterFacingNorthIsUnsupported(t *testing.T) {
	g := voxel.NewGrid()
	g.Set(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Overwrite(voxel.UsedCell(voxel.NewRepeater(voxel.North))))

	if _, err := render.SVG(g); err == nil {
		t.Fatalf("expected an error for a north-facing repeater")
	}
}

func TestSVG_RepeaterFacingEastRenders(t *testing.T) {
	g := voxel.NewGrid()
	g.Set(voxel.Pos{X: 0, Y: 0, Z: 0}, voxel.Overwrite(voxel.UsedCell(voxel.NewRepeater(voxel.East))))

	if _, err := render.SVG(g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
