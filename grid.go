package moleman

import "fmt"

// DefaultGridSize is the width and height in tiles of a map created by
// NewTilemapRenderer.
const DefaultGridSize = 16

// Tile is one cell of a TileGrid: either empty, or filled with a
// resolved adjacency mask. The mask is only meaningful after the most
// recent ResolveAdjacency pass; toggling cells leaves neighbor masks
// stale until the next pass.
type Tile struct {
	Filled bool
	Mask   Orientation
}

// TileGrid is a fixed-size row-major grid of tiles. It owns occupancy
// truth for a tilemap; the renderer owning the grid is the only writer.
type TileGrid struct {
	width  int
	height int
	tiles  []Tile
}

// NewTileGrid creates an all-empty grid of the given dimensions.
// Dimensions must be positive.
func NewTileGrid(width, height int) *TileGrid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("moleman: invalid grid dimensions %dx%d", width, height))
	}
	return &TileGrid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// Width returns the grid width in tiles.
func (g *TileGrid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *TileGrid) Height() int { return g.height }

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Toggle flips the cell at (x, y) between empty and filled (with a
// zero mask). Out-of-range coordinates are ignored: upstream
// pointer-to-world translation is allowed to produce them. Returns
// true if a cell changed.
func (g *TileGrid) Toggle(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	t := &g.tiles[y*g.width+x]
	if t.Filled {
		*t = Tile{}
	} else {
		*t = Tile{Filled: true}
	}
	return true
}

// Tile returns the cell at (x, y). Unlike Toggle, out-of-range access
// here panics: internal callers iterate the grid's own bounds, so a bad
// coordinate is a programming error, not user input.
func (g *TileGrid) Tile(x, y int) Tile {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("moleman: grid access (%d, %d) outside %dx%d", x, y, g.width, g.height))
	}
	return g.tiles[y*g.width+x]
}

// FilledCount returns the number of filled cells.
func (g *TileGrid) FilledCount() int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].Filled {
			n++
		}
	}
	return n
}

// MaskAt computes the adjacency mask for cell (x, y) from the current
// occupancy: one bit per filled neighbor among the 8 surrounding cells.
// Neighbors outside the grid count as empty, so edge and corner cells
// simply have fewer bits. Pure and deterministic.
func (g *TileGrid) MaskAt(x, y int) Orientation {
	var mask Orientation
	for _, n := range neighborOffsets {
		nx, ny := x+n.DX, y+n.DY
		if g.InBounds(nx, ny) && g.tiles[ny*g.width+nx].Filled {
			mask |= n.Dir
		}
	}
	return mask
}

// ResolveAdjacency recomputes the mask of every filled cell from its
// neighbors. The full recompute keeps the pass trivially correct; the
// grids involved are small enough that it is also cheap.
func (g *TileGrid) ResolveAdjacency() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			t := &g.tiles[y*g.width+x]
			if t.Filled {
				t.Mask = g.MaskAt(x, y)
			}
		}
	}
}
