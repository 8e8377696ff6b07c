package moleman

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MaskInspector is a debug overlay that paints every filled tile of a
// map as a small quad whose corner colors encode the adjacency mask:
// at each corner, red marks the vertical edge bit (N or S), green the
// horizontal edge bit (W or E), and blue the diagonal bit. A fully
// surrounded tile shows four white corners; an isolated tile is black.
type MaskInspector struct {
	renderer *TilemapRenderer

	// Visible toggles the overlay.
	Visible bool
	// X, Y is the top-left corner of the overlay on screen.
	X, Y float64
	// CellSize is the on-screen size of one tile quad in pixels.
	CellSize float64

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewMaskInspector creates an inspector over the renderer's grid.
func NewMaskInspector(renderer *TilemapRenderer) *MaskInspector {
	return &MaskInspector{
		renderer: renderer,
		CellSize: 15,
	}
}

// maskChannel returns 1 when the mask has the bit, else 0.
func maskChannel(mask, dir Orientation) float32 {
	if mask.Contains(dir) {
		return 1
	}
	return 0
}

// cornerColor fills a vertex color from the three bits meeting at one
// corner of a tile.
func cornerColor(v *ebiten.Vertex, mask Orientation, vertical, horizontal, diagonal Orientation) {
	v.ColorR = maskChannel(mask, vertical)
	v.ColorG = maskChannel(mask, horizontal)
	v.ColorB = maskChannel(mask, diagonal)
	v.ColorA = 1
}

// Draw renders the overlay grid. No-op while hidden.
func (i *MaskInspector) Draw(screen *ebiten.Image) {
	if !i.Visible {
		return
	}

	w := i.renderer.Width()
	h := i.renderer.Height()
	size := float32(i.CellSize)

	bgW := float32(w)*size + 8
	bgH := float32(h)*size + 24
	vector.DrawFilledRect(screen, float32(i.X), float32(i.Y), bgW, bgH,
		color.RGBA{R: 20, G: 20, B: 28, A: 230}, false)
	ebitenutil.DebugPrintAt(screen, "mask inspector", int(i.X)+4, int(i.Y)+2)

	ox := float32(i.X) + 4
	oy := float32(i.Y) + 20

	i.vertices = i.vertices[:0]
	i.indices = i.indices[:0]

	count := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tile := i.renderer.Tile(x, y)
			if !tile.Filled {
				continue
			}

			x0 := ox + float32(x)*size
			y0 := oy + float32(y)*size
			x1 := x0 + size - 1
			y1 := y0 + size - 1

			var tl, tr, bl, br ebiten.Vertex
			tl.DstX, tl.DstY = x0, y0
			tr.DstX, tr.DstY = x1, y0
			bl.DstX, bl.DstY = x0, y1
			br.DstX, br.DstY = x1, y1
			cornerColor(&tl, tile.Mask, North, West, NorthWest)
			cornerColor(&tr, tile.Mask, North, East, NorthEast)
			cornerColor(&bl, tile.Mask, South, West, SouthWest)
			cornerColor(&br, tile.Mask, South, East, SouthEast)

			base := uint16(count * 4)
			i.vertices = append(i.vertices, tl, tr, bl, br)
			i.indices = append(i.indices,
				base+0, base+1, base+2,
				base+1, base+3, base+2)
			count++
		}
	}

	if count == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	screen.DrawTriangles(i.vertices, i.indices, WhitePixel, &op)
}
