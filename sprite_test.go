package moleman

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSpriteSheet_Region(t *testing.T) {
	s := NewSpriteSheet(ebiten.NewImage(96, 32), 3, 1, 32, 32)

	tests := []struct {
		coord SpriteCoord
		want  image.Rectangle
	}{
		{SpriteCoord{TileX: 0, TileY: 0}, image.Rect(0, 0, 32, 32)},
		{SpriteCoord{TileX: 2, TileY: 0}, image.Rect(64, 0, 96, 32)},
	}
	for _, tt := range tests {
		if got := s.Region(tt.coord); got != tt.want {
			t.Errorf("Region(%v) = %v, want %v", tt.coord, got, tt.want)
		}
	}
}

func TestSpriteSheet_Region_ClampsToSheet(t *testing.T) {
	s := NewSpriteSheet(ebiten.NewImage(128, 128), 8, 8, 16, 16)

	// Stale config entries must never sample outside the texture.
	if got := s.Region(SpriteCoord{TileX: 99, TileY: 99}); got != image.Rect(112, 112, 128, 128) {
		t.Errorf("overflow region = %v, want last tile", got)
	}
	if got := s.Region(SpriteCoord{TileX: -3, TileY: 0}); got != image.Rect(0, 0, 16, 16) {
		t.Errorf("negative region = %v, want first tile", got)
	}
}

func TestSpriteSheet_InGrid(t *testing.T) {
	s := NewSpriteSheet(ebiten.NewImage(128, 64), 8, 4, 16, 16)

	if !s.InGrid(SpriteCoord{TileX: 7, TileY: 3}) {
		t.Error("InGrid(7, 3) = false, want true")
	}
	if s.InGrid(SpriteCoord{TileX: 8, TileY: 0}) {
		t.Error("InGrid(8, 0) = true, want false")
	}
	if s.InGrid(SpriteCoord{TileX: 0, TileY: -1}) {
		t.Error("InGrid(0, -1) = true, want false")
	}
}

func TestPlaceholderSheet_Dimensions(t *testing.T) {
	s := PlaceholderSheet(8, 8, 16, 16)

	b := s.Image.Bounds()
	if b.Dx() != 128 || b.Dy() != 128 {
		t.Errorf("placeholder image = %dx%d, want 128x128", b.Dx(), b.Dy())
	}
	if s.GridWidth != 8 || s.TileWidth != 16 {
		t.Errorf("placeholder layout = %d tiles of %dpx, want 8 of 16", s.GridWidth, s.TileWidth)
	}
}
