package moleman

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Editor panel layout. All values are screen pixels.
const (
	editorPadding    = 8
	editorHeaderH    = 16
	editorBitCell    = 20
	editorSheetScale = 2
	editorStatusH    = 28
)

// bitCells maps the 3x3 mask widget cells to direction bits. The
// center cell is the tile itself and toggles nothing.
var bitCells = [3][3]Orientation{
	{NorthWest, North, NorthEast},
	{West, 0, East},
	{SouthWest, South, SouthEast},
}

// SpriteConfigEditor is the in-game inspector for a SpriteConfig: it
// browses orientation masks, previews the candidates bound to each,
// and records new candidates from clicks on the sheet preview. It only
// ever touches the shared store, never a tile grid, and every store
// access happens inside one locked store call.
type SpriteConfigEditor struct {
	config *SpriteConfig
	sheet  *SpriteSheet

	// Visible toggles the whole panel; input is ignored while hidden.
	Visible bool
	// X, Y is the top-left corner of the panel on screen.
	X, Y float64

	selected Orientation
	status   string

	// OnCandidateAdded fires after a candidate is recorded (and its
	// persist attempted). OnPersistError fires when the persist failed.
	// Both are optional.
	OnCandidateAdded func(mask Orientation, coord SpriteCoord)
	OnPersistError   func(err error)
}

// NewSpriteConfigEditor creates an editor over the shared store and the
// sheet it indexes into.
func NewSpriteConfigEditor(config *SpriteConfig, sheet *SpriteSheet) *SpriteConfigEditor {
	return &SpriteConfigEditor{
		config: config,
		sheet:  sheet,
		status: "click the sheet to bind a sprite",
	}
}

// Selected returns the mask currently being inspected.
func (e *SpriteConfigEditor) Selected() Orientation { return e.selected }

// SelectMask jumps the inspector to the given mask.
func (e *SpriteConfigEditor) SelectMask(mask Orientation) {
	e.selected = mask
}

// NextMask advances to the next mask value, wrapping after 255.
func (e *SpriteConfigEditor) NextMask() { e.selected++ }

// PrevMask steps back to the previous mask value, wrapping below 0.
func (e *SpriteConfigEditor) PrevMask() { e.selected-- }

// ToggleBit flips one direction bit of the selected mask.
func (e *SpriteConfigEditor) ToggleBit(dir Orientation) {
	e.selected ^= dir
}

// Status returns the current status line (last action or error).
func (e *SpriteConfigEditor) Status() string { return e.status }

// AddCandidateAt records the sheet cell at coord as a candidate for the
// selected mask. Clicks outside the sheet grid are ignored. A failed
// persist is surfaced on the status line and through OnPersistError;
// the binding itself still takes effect in memory.
func (e *SpriteConfigEditor) AddCandidateAt(coord SpriteCoord) {
	if !e.sheet.InGrid(coord) {
		return
	}
	if err := e.config.AddCandidate(e.selected, coord); err != nil {
		e.status = fmt.Sprintf("save failed: %v", err)
		if e.OnPersistError != nil {
			e.OnPersistError(err)
		}
		return
	}
	e.status = fmt.Sprintf("bound (%d, %d) to mask %s", coord.TileX, coord.TileY, e.selected)
	if e.OnCandidateAdded != nil {
		e.OnCandidateAdded(e.selected, coord)
	}
}

// Bounds returns the panel's screen rectangle. The game uses it to keep
// clicks over the editor from painting the map underneath.
func (e *SpriteConfigEditor) Bounds() Rect {
	w := editorPadding*2 + float64(e.sheet.GridWidth*e.sheet.TileWidth*editorSheetScale)
	minW := editorPadding*2 + 3*editorBitCell + 120.0
	if w < minW {
		w = minW
	}
	h := editorPadding*2 + editorHeaderH + 3*editorBitCell + editorPadding +
		float64(e.sheet.GridHeight*e.sheet.TileHeight*editorSheetScale) + editorStatusH
	return Rect{X: e.X, Y: e.Y, Width: w, Height: h}
}

// bitCellRect returns the screen rectangle of a mask widget cell.
func (e *SpriteConfigEditor) bitCellRect(col, row int) Rect {
	return Rect{
		X:      e.X + editorPadding + float64(col*editorBitCell),
		Y:      e.Y + editorPadding + editorHeaderH + float64(row*editorBitCell),
		Width:  editorBitCell,
		Height: editorBitCell,
	}
}

// sheetOrigin returns the screen position of the sheet preview.
func (e *SpriteConfigEditor) sheetOrigin() (float64, float64) {
	return e.X + editorPadding,
		e.Y + editorPadding + editorHeaderH + 3*editorBitCell + editorPadding
}

// sheetCellAt maps a screen position to a sheet cell, reporting false
// outside the preview.
func (e *SpriteConfigEditor) sheetCellAt(mx, my float64) (SpriteCoord, bool) {
	ox, oy := e.sheetOrigin()
	cellW := float64(e.sheet.TileWidth * editorSheetScale)
	cellH := float64(e.sheet.TileHeight * editorSheetScale)
	preview := Rect{
		X: ox, Y: oy,
		Width:  cellW * float64(e.sheet.GridWidth),
		Height: cellH * float64(e.sheet.GridHeight),
	}
	if !preview.Contains(mx, my) {
		return SpriteCoord{}, false
	}
	coord := SpriteCoord{
		TileX: int((mx - ox) / cellW),
		TileY: int((my - oy) / cellH),
	}
	if !e.sheet.InGrid(coord) {
		return SpriteCoord{}, false
	}
	return coord, true
}

// HandleClick routes a click at screen position (mx, my) to the mask
// widget or the sheet preview. Returns true if the editor consumed the
// click.
func (e *SpriteConfigEditor) HandleClick(mx, my float64) bool {
	if !e.Visible {
		return false
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			dir := bitCells[row][col]
			if dir == 0 {
				continue
			}
			if e.bitCellRect(col, row).Contains(mx, my) {
				e.ToggleBit(dir)
				return true
			}
		}
	}
	if coord, ok := e.sheetCellAt(mx, my); ok {
		e.AddCandidateAt(coord)
		return true
	}
	return e.Bounds().Contains(mx, my)
}

// Update polls input for the editor: mask browsing with '[' and ']',
// and left clicks on the panel. No-op while hidden.
func (e *SpriteConfigEditor) Update() {
	if !e.Visible {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		e.PrevMask()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		e.NextMask()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		e.HandleClick(float64(mx), float64(my))
	}
}

// Editor palette.
var (
	editorPanelBG  = color.RGBA{R: 20, G: 20, B: 28, A: 230}
	editorCellOff  = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	editorCellOn   = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	editorCellSelf = color.RGBA{R: 200, G: 140, B: 40, A: 255}
	editorGridLine = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	editorMarker   = color.RGBA{R: 80, G: 220, B: 120, A: 255}
)

// Draw renders the panel. No-op while hidden.
func (e *SpriteConfigEditor) Draw(screen *ebiten.Image) {
	if !e.Visible {
		return
	}

	b := e.Bounds()
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), editorPanelBG, false)
	ebitenutil.DebugPrintAt(screen, "tileset editor  [ / ] browse masks", int(e.X)+editorPadding, int(e.Y)+2)

	// Mask widget: direction cells light up with the selected bits, the
	// center cell stands for the tile itself.
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := e.bitCellRect(col, row)
			dir := bitCells[row][col]
			fill := editorCellOff
			switch {
			case dir == 0 && col == 1 && row == 1:
				fill = editorCellSelf
			case dir != 0 && e.selected.Contains(dir):
				fill = editorCellOn
			}
			vector.DrawFilledRect(screen,
				float32(cell.X)+1, float32(cell.Y)+1,
				float32(cell.Width)-2, float32(cell.Height)-2,
				fill, false)
		}
	}

	// Mask label and candidate summary next to the widget.
	candidates := e.config.Candidates(e.selected)
	labelX := int(e.X) + editorPadding + 3*editorBitCell + editorPadding
	labelY := int(e.Y) + editorPadding + editorHeaderH
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("mask %s (%s)", e.selected.Key(), e.selected), labelX, labelY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("candidates: %d", len(candidates)), labelX, labelY+14)

	// Sheet preview with grid lines.
	ox, oy := e.sheetOrigin()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(editorSheetScale, editorSheetScale)
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(e.sheet.Image, &op)

	cellW := float32(e.sheet.TileWidth * editorSheetScale)
	cellH := float32(e.sheet.TileHeight * editorSheetScale)
	previewW := cellW * float32(e.sheet.GridWidth)
	previewH := cellH * float32(e.sheet.GridHeight)
	for i := 0; i <= e.sheet.GridWidth; i++ {
		x := float32(ox) + float32(i)*cellW
		vector.StrokeLine(screen, x, float32(oy), x, float32(oy)+previewH, 1, editorGridLine, false)
	}
	for i := 0; i <= e.sheet.GridHeight; i++ {
		y := float32(oy) + float32(i)*cellH
		vector.StrokeLine(screen, float32(ox), y, float32(ox)+previewW, y, 1, editorGridLine, false)
	}

	// Outline the cells already bound to the selected mask.
	for _, coord := range candidates {
		vector.StrokeRect(screen,
			float32(ox)+float32(coord.TileX)*cellW+1,
			float32(oy)+float32(coord.TileY)*cellH+1,
			cellW-2, cellH-2, 2, editorMarker, false)
	}

	ebitenutil.DebugPrintAt(screen, e.status, int(e.X)+editorPadding, int(oy+float64(previewH))+editorPadding)
}
