// Moleman is a dig-and-fill tilemap sandbox. Right click digs out or
// fills map cells, which re-resolve their adjacency masks and pick
// sprites from the tileset config. Tab opens the sprite config editor,
// F1 overlays the mask inspector. The config persists next to the
// tileset image and survives restarts.
package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	moleman "github.com/StolenCheese/Mole-Man-2"
	"github.com/StolenCheese/Mole-Man-2/audio"
	"github.com/StolenCheese/Mole-Man-2/ecs"
)

const (
	windowTitle = "Mole Man 2"
	screenW     = 1280
	screenH     = 720

	tileSize    = 16
	mapWidth    = 16
	mapHeight   = 16
	playerSpeed = 96
)

// loadSheet opens a sheet image, falling back to the placeholder
// pattern when the asset is missing or unreadable.
func loadSheet(path string, gridWidth, gridHeight, tileWidth, tileHeight int) *moleman.SpriteSheet {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("moleman: open %s: %v (using placeholder)", path, err)
		return moleman.PlaceholderSheet(gridWidth, gridHeight, tileWidth, tileHeight)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		log.Printf("moleman: decode %s: %v (using placeholder)", path, err)
		return moleman.PlaceholderSheet(gridWidth, gridHeight, tileWidth, tileHeight)
	}
	return moleman.NewSpriteSheet(img, gridWidth, gridHeight, tileWidth, tileHeight)
}

func main() {
	if os.Getenv("MOLEMAN_DEBUG") != "" {
		moleman.SetDebugMode(true)
	}

	const tilesetPath = "assets/tileset.png"
	tiles := loadSheet(tilesetPath, 8, 8, tileSize, tileSize)
	mole := loadSheet("assets/moleman.png", 3, 1, 32, 32)

	config := moleman.LoadSpriteConfig(moleman.SpriteConfigPath(tilesetPath), tileSize, tileSize)
	renderer := moleman.NewTilemapRendererSize(config, tiles, mapWidth, mapHeight)

	cam := moleman.NewCamera(moleman.Rect{Width: screenW, Height: screenH})
	cam.X = float64(mapWidth*tileSize) / 2
	cam.Y = float64(mapHeight*tileSize) / 2
	cam.SetZoom(3)

	sounds := audio.NewEngine(audio.LoadConfig())
	if err := sounds.Init(); err != nil {
		log.Printf("moleman: audio disabled: %v", err)
	}
	defer sounds.Close()

	editor := moleman.NewSpriteConfigEditor(config, tiles)
	editor.X = float64(screenW - 320)
	editor.Y = 16
	editor.OnCandidateAdded = func(moleman.Orientation, moleman.SpriteCoord) {
		sounds.Play(audio.SoundBlip)
	}
	editor.OnPersistError = func(error) {
		sounds.Play(audio.SoundError)
	}

	inspector := moleman.NewMaskInspector(renderer)
	inspector.X = 16
	inspector.Y = 48

	world := ecs.NewWorld()
	ecs.SpawnTilemap(world, renderer)
	ecs.SpawnPlayer(world, mole,
		float64(mapWidth*tileSize)/2, float64(mapHeight*tileSize)/2, playerSpeed)

	game := &Game{
		world:     world,
		renderer:  renderer,
		cam:       cam,
		editor:    editor,
		inspector: inspector,
		sounds:    sounds,
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(windowTitle)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
