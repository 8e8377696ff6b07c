package moleman

import "github.com/hajimehoshi/ebiten/v2"

// maxTilesPerDraw is the maximum number of tiles per DrawTriangles call.
// Limited by uint16 index buffer: 65535 / 4 vertices per tile = 16383.
const maxTilesPerDraw = 16383

// TileInstance is one entry of the renderer's instance buffer: the
// world-space offset of a tile's top-left corner plus the sprite-sheet
// coordinate resolved for its mask. The buffer feeds a single batched
// draw per map.
type TileInstance struct {
	OffsetX float32
	OffsetY float32
	Coord   SpriteCoord
}

// TilemapRenderer bridges grid occupancy and the sprite configuration
// to a drawable geometry buffer. It exclusively owns its TileGrid and
// instance buffer; the SpriteConfig is shared with the editor and read
// here one locked call at a time.
type TilemapRenderer struct {
	grid   *TileGrid
	config *SpriteConfig
	sheet  *SpriteSheet

	instances []TileInstance
	vertices  []ebiten.Vertex
	indices   []uint16

	dirty     bool
	configGen uint64
}

// NewTilemapRenderer creates a renderer over a DefaultGridSize square
// grid, bound to a shared sprite configuration and the sheet it indexes
// into.
func NewTilemapRenderer(config *SpriteConfig, sheet *SpriteSheet) *TilemapRenderer {
	return NewTilemapRendererSize(config, sheet, DefaultGridSize, DefaultGridSize)
}

// NewTilemapRendererSize creates a renderer over a grid of the given
// dimensions.
func NewTilemapRendererSize(config *SpriteConfig, sheet *SpriteSheet, width, height int) *TilemapRenderer {
	return &TilemapRenderer{
		grid:   NewTileGrid(width, height),
		config: config,
		sheet:  sheet,
		dirty:  true,
	}
}

// Width returns the grid width in tiles.
func (r *TilemapRenderer) Width() int { return r.grid.Width() }

// Height returns the grid height in tiles.
func (r *TilemapRenderer) Height() int { return r.grid.Height() }

// Tile returns the grid cell at (x, y). Panics out of bounds, same as
// TileGrid.Tile.
func (r *TilemapRenderer) Tile(x, y int) Tile { return r.grid.Tile(x, y) }

// Toggle flips the occupancy of cell (x, y) and schedules a rebuild.
// Out-of-range coordinates are ignored.
func (r *TilemapRenderer) Toggle(x, y int) {
	if r.grid.Toggle(x, y) {
		r.dirty = true
	}
}

// InstanceCount returns the number of entries in the most recently
// built instance buffer: filled cells whose mask resolved to a
// configured sprite.
func (r *TilemapRenderer) InstanceCount() int {
	return len(r.instances)
}

// Instances returns the current instance buffer in row-major cell
// order. The returned slice MUST NOT be mutated and is only valid
// until the next rebuild.
func (r *TilemapRenderer) Instances() []TileInstance {
	return r.instances
}

// Update rebuilds the instance and geometry buffers when the grid was
// toggled or the sprite configuration changed since the last build.
// Call once per tick, before Draw.
func (r *TilemapRenderer) Update() {
	gen := r.config.Generation()
	if !r.dirty && gen == r.configGen {
		return
	}
	r.dirty = false
	r.configGen = gen
	r.rebuild()
}

// rebuild recomputes adjacency for the whole grid, resolves each filled
// cell against the configuration, and rewrites the buffers wholesale.
// Cells whose mask has no configured sprite are omitted: painting ahead
// of the art is a supported workflow, not an error.
func (r *TilemapRenderer) rebuild() {
	r.grid.ResolveAdjacency()

	tw := float32(r.sheet.TileWidth)
	th := float32(r.sheet.TileHeight)

	r.instances = r.instances[:0]
	for y := 0; y < r.grid.Height(); y++ {
		for x := 0; x < r.grid.Width(); x++ {
			tile := r.grid.Tile(x, y)
			if !tile.Filled {
				continue
			}
			coord, ok := r.config.Lookup(tile.Mask)
			if !ok {
				continue
			}
			r.instances = append(r.instances, TileInstance{
				OffsetX: float32(x) * tw,
				OffsetY: float32(y) * th,
				Coord:   coord,
			})
		}
	}

	r.ensureGeometry(len(r.instances))
	for i, inst := range r.instances {
		region := r.sheet.Region(inst.Coord)
		sx0 := float32(region.Min.X)
		sy0 := float32(region.Min.Y)
		sx1 := float32(region.Max.X)
		sy1 := float32(region.Max.Y)

		// Screen positions are filled in per-frame during Draw; UVs and
		// tint only change on rebuild.
		v := r.vertices[i*4:]
		v[0].SrcX, v[0].SrcY = sx0, sy0 // top-left
		v[1].SrcX, v[1].SrcY = sx1, sy0 // top-right
		v[2].SrcX, v[2].SrcY = sx0, sy1 // bottom-left
		v[3].SrcX, v[3].SrcY = sx1, sy1 // bottom-right
		for j := 0; j < 4; j++ {
			v[j].ColorR, v[j].ColorG, v[j].ColorB, v[j].ColorA = 1, 1, 1, 1
		}
	}
}

// ensureGeometry grows the vertex and index buffers to hold count
// tiles. The index topology never changes once written.
func (r *TilemapRenderer) ensureGeometry(count int) {
	// Only maxTilesPerDraw tiles are ever indexed in one submission, so
	// the index buffer never needs to grow past that.
	iCount := count
	if iCount > maxTilesPerDraw {
		iCount = maxTilesPerDraw
	}
	if count*4 <= cap(r.vertices) {
		r.vertices = r.vertices[:count*4]
		r.indices = r.indices[:iCount*6]
		return
	}
	r.vertices = make([]ebiten.Vertex, count*4)
	r.indices = make([]uint16, iCount*6)
	for i := 0; i < iCount; i++ {
		base := uint16(i * 4)
		off := i * 6
		r.indices[off+0] = base + 0
		r.indices[off+1] = base + 1
		r.indices[off+2] = base + 2
		r.indices[off+3] = base + 1
		r.indices[off+4] = base + 3
		r.indices[off+5] = base + 2
	}
}

// Draw transforms the instance buffer through the camera and submits
// the map as batched DrawTriangles calls, one per maxTilesPerDraw
// tiles. Maps up to 16383 instances draw in a single call.
func (r *TilemapRenderer) Draw(target *ebiten.Image, cam *Camera) {
	n := len(r.instances)
	if n == 0 {
		return
	}

	view := cam.View()
	a, d := float32(view[0]), float32(view[3])
	tx, ty := float32(view[4]), float32(view[5])

	tileScreenW := a * float32(r.sheet.TileWidth)
	tileScreenH := d * float32(r.sheet.TileHeight)

	for i, inst := range r.instances {
		screenX := a*inst.OffsetX + tx
		screenY := d*inst.OffsetY + ty

		v := r.vertices[i*4:]
		v[0].DstX, v[0].DstY = screenX, screenY
		v[1].DstX, v[1].DstY = screenX+tileScreenW, screenY
		v[2].DstX, v[2].DstY = screenX, screenY+tileScreenH
		v[3].DstX, v[3].DstY = screenX+tileScreenW, screenY+tileScreenH
	}

	// Submit in maxTilesPerDraw chunks. The index topology is relative,
	// so each chunk reuses the front of the index buffer against an
	// offset vertex slice.
	var op ebiten.DrawTrianglesOptions
	for offset := 0; offset < n; offset += maxTilesPerDraw {
		end := offset + maxTilesPerDraw
		if end > n {
			end = n
		}
		batch := end - offset
		target.DrawTriangles(r.vertices[offset*4:end*4], r.indices[:batch*6], r.sheet.Image, &op)
	}
}
