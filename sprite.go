package moleman

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSheet is a texture subdivided into a regular grid of tiles.
// GridWidth and GridHeight are the sheet dimensions in tiles; TileWidth
// and TileHeight are the per-tile pixel dimensions.
type SpriteSheet struct {
	Image      *ebiten.Image
	GridWidth  int
	GridHeight int
	TileWidth  int
	TileHeight int
}

// NewSpriteSheet wraps an image as a sheet of gridWidth x gridHeight
// tiles of tileWidth x tileHeight pixels each.
func NewSpriteSheet(img *ebiten.Image, gridWidth, gridHeight, tileWidth, tileHeight int) *SpriteSheet {
	return &SpriteSheet{
		Image:      img,
		GridWidth:  gridWidth,
		GridHeight: gridHeight,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
	}
}

// PlaceholderSheet generates a magenta/charcoal checkerboard sheet with
// the given layout, used when sheet art is missing on disk so the game
// still runs and the gap is unmissable on screen.
func PlaceholderSheet(gridWidth, gridHeight, tileWidth, tileHeight int) *SpriteSheet {
	img := ebiten.NewImage(gridWidth*tileWidth, gridHeight*tileHeight)
	magenta := color.RGBA{R: 255, G: 0, B: 255, A: 255}
	charcoal := color.RGBA{R: 40, G: 40, B: 40, A: 255}
	for ty := 0; ty < gridHeight; ty++ {
		for tx := 0; tx < gridWidth; tx++ {
			fill := magenta
			if (tx+ty)%2 == 0 {
				fill = charcoal
			}
			cell := img.SubImage(image.Rect(
				tx*tileWidth, ty*tileHeight,
				(tx+1)*tileWidth, (ty+1)*tileHeight,
			)).(*ebiten.Image)
			cell.Fill(fill)
		}
	}
	return NewSpriteSheet(img, gridWidth, gridHeight, tileWidth, tileHeight)
}

// InGrid reports whether the coordinate addresses a tile of the sheet.
func (s *SpriteSheet) InGrid(coord SpriteCoord) bool {
	return coord.TileX >= 0 && coord.TileX < s.GridWidth &&
		coord.TileY >= 0 && coord.TileY < s.GridHeight
}

// Region returns the pixel rectangle of the tile at coord. Coordinates
// are clamped into the sheet grid so a stale config entry can never
// sample outside the texture.
func (s *SpriteSheet) Region(coord SpriteCoord) image.Rectangle {
	tx := clampInt(coord.TileX, 0, s.GridWidth-1)
	ty := clampInt(coord.TileY, 0, s.GridHeight-1)
	x0 := tx * s.TileWidth
	y0 := ty * s.TileHeight
	return image.Rect(x0, y0, x0+s.TileWidth, y0+s.TileHeight)
}

// SubImage returns the tile at coord as a sub-image of the sheet.
func (s *SpriteSheet) SubImage(coord SpriteCoord) *ebiten.Image {
	return s.Image.SubImage(s.Region(coord)).(*ebiten.Image)
}

// DrawSprite draws the tile at coord with its top-left corner at the
// given world position, through the camera's view.
func (s *SpriteSheet) DrawSprite(target *ebiten.Image, coord SpriteCoord, worldX, worldY float64, cam *Camera) {
	view := cam.View()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(worldX, worldY)
	op.GeoM.Scale(view[0], view[3])
	op.GeoM.Translate(view[4], view[5])
	target.DrawImage(s.SubImage(coord), &op)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
