package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	moleman "github.com/StolenCheese/Mole-Man-2"
	"github.com/StolenCheese/Mole-Man-2/audio"
	"github.com/StolenCheese/Mole-Man-2/ecs"
)

// Update runs on ebiten's fixed tick.
const tickDelta = 1.0 / 60

var backgroundColor = color.RGBA{R: 24, G: 20, B: 18, A: 255}

// Game wires the world, renderer and UI panels into ebiten's loop.
type Game struct {
	world     donburi.World
	renderer  *moleman.TilemapRenderer
	cam       *moleman.Camera
	editor    *moleman.SpriteConfigEditor
	inspector *moleman.MaskInspector
	sounds    *audio.Engine

	dragging   bool
	lastMouseX int
	lastMouseY int
}

func (g *Game) Update() error {
	g.handleKeys()
	g.handleMouse()

	g.editor.Update()
	g.cam.Update(tickDelta)
	ecs.Update(g.world, tickDelta)
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.editor.Visible = !g.editor.Visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.inspector.Visible = !g.inspector.Visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.cam.ScrollToTile(g.renderer.Width()/2, g.renderer.Height()/2, tileSize, tileSize, 0.5, ease.OutQuad)
	}

	var axis moleman.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		axis.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		axis.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		axis.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		axis.Y++
	}
	// Diagonals move at the same speed as the axes.
	if axis.X != 0 && axis.Y != 0 {
		axis.X *= math.Sqrt2 / 2
		axis.Y *= math.Sqrt2 / 2
	}
	ecs.MoveEvents.Publish(g.world, ecs.MoveEvent{Axis: axis})
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	overEditor := g.editor.Visible && g.editor.Bounds().Contains(float64(mx), float64(my))

	// Right click digs or fills the map cell under the cursor. The
	// editor panel shadows the map while it is open.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && !overEditor {
		wx, wy := g.cam.ScreenToWorld(float64(mx), float64(my))
		ecs.TileToggleEvents.Publish(g.world, ecs.TileToggleEvent{
			X: int(math.Floor(wx / tileSize)),
			Y: int(math.Floor(wy / tileSize)),
		})
		g.sounds.Play(audio.SoundToggle)
	}

	// Left drag pans the camera. Editor clicks never start a drag;
	// the editor consumes those in its own Update.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !overEditor {
		g.dragging = true
		g.lastMouseX, g.lastMouseY = mx, my
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging {
		g.cam.Pan(float64(mx-g.lastMouseX), float64(my-g.lastMouseY))
		g.lastMouseX, g.lastMouseY = mx, my
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.renderer.Draw(screen, g.cam)
	ecs.EachSprite(g.world, func(pos ecs.PositionData, spr ecs.SpriteData) {
		coord := moleman.SpriteCoord{TileX: spr.TileX, TileY: spr.TileY}
		spr.Sheet.DrawSprite(screen, coord, pos.X, pos.Y+spr.BobbleOffset, g.cam)
	})

	g.inspector.Draw(screen)
	g.editor.Draw(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"fps %.0f  tiles %d  [tab] editor  [f1] masks  [home] recenter",
		ebiten.ActualFPS(), g.renderer.InstanceCount()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}
