package moleman

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D vector used for positions, offsets, and movement axes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// WhitePixel is a 1x1 white image used for solid color quads
// (the mask inspector tints it with per-vertex colors).
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(color.White)
}

// globalDebug gates warning output for recoverable asset and config
// problems (missing sprite config, unreadable sheet, bad mask keys).
var globalDebug bool

// SetDebugMode enables or disables debug warnings on stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugf logs a formatted warning when debug mode is on.
func debugf(format string, args ...any) {
	if globalDebug {
		log.Printf("moleman: "+format, args...)
	}
}
