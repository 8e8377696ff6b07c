package moleman

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestMaskInspector_Hidden_DrawsNothing(t *testing.T) {
	r := NewTilemapRenderer(testConfig(t), testSheet())
	r.Toggle(1, 1)
	r.Update()

	ins := NewMaskInspector(r)
	ins.Draw(ebiten.NewImage(640, 480))

	if len(ins.vertices) != 0 {
		t.Errorf("hidden inspector built %d vertices", len(ins.vertices))
	}
}

func TestMaskInspector_BuildsQuadPerFilledTile(t *testing.T) {
	r := NewTilemapRenderer(testConfig(t), testSheet())
	r.Toggle(1, 1)
	r.Toggle(2, 1)
	r.Toggle(5, 5)
	r.Update()

	ins := NewMaskInspector(r)
	ins.Visible = true
	ins.Draw(ebiten.NewImage(640, 480))

	if got := len(ins.vertices); got != 3*4 {
		t.Errorf("vertices = %d, want 4 per filled tile (12)", got)
	}
	if got := len(ins.indices); got != 3*6 {
		t.Errorf("indices = %d, want 6 per filled tile (18)", got)
	}
}

func TestMaskInspector_CornerColorsEncodeMask(t *testing.T) {
	r := NewTilemapRenderer(testConfig(t), testSheet())
	// Horizontal pair: the left tile's mask is exactly East.
	r.Toggle(4, 4)
	r.Toggle(5, 4)
	r.Update()

	ins := NewMaskInspector(r)
	ins.Visible = true
	ins.Draw(ebiten.NewImage(640, 480))

	// First quad = tile (4,4). Its top-right corner encodes (N, E, NE):
	// only the green (E) channel is lit.
	tr := ins.vertices[1]
	if tr.ColorR != 0 || tr.ColorG != 1 || tr.ColorB != 0 {
		t.Errorf("top-right corner color = (%g, %g, %g), want (0, 1, 0)", tr.ColorR, tr.ColorG, tr.ColorB)
	}
	// Top-left corner (N, W, NW) stays dark.
	tl := ins.vertices[0]
	if tl.ColorR != 0 || tl.ColorG != 0 || tl.ColorB != 0 {
		t.Errorf("top-left corner color = (%g, %g, %g), want (0, 0, 0)", tl.ColorR, tl.ColorG, tl.ColorB)
	}
}
