package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	moleman "github.com/StolenCheese/Mole-Man-2"
)

// PositionData is a world-space position in pixels.
type PositionData struct {
	X, Y float64
}

// VelocityData is a world-space velocity in pixels per second.
type VelocityData struct {
	X, Y float64
}

// PlayerData marks the player-controlled entity and carries its
// movement speed in pixels per second.
type PlayerData struct {
	Speed float64
}

// SpriteData renders one tile of a sheet at the entity's position,
// with an idle bobble animation offsetting the drawn Y.
type SpriteData struct {
	Sheet        *moleman.SpriteSheet
	TileX, TileY int

	BobbleAmp    float64 // bobble amplitude in pixels, 0 disables
	BobblePhase  float64 // advanced by the bobble system
	BobbleOffset float64 // current Y offset, written by the bobble system
}

// TilemapData binds a tilemap renderer into the world so the tick can
// drive its rebuilds and toggle events can reach it.
type TilemapData struct {
	Renderer *moleman.TilemapRenderer
}

// Component columns.
var (
	Position = donburi.NewComponentType[PositionData]()
	Velocity = donburi.NewComponentType[VelocityData]()
	Player   = donburi.NewComponentType[PlayerData]()
	Sprite   = donburi.NewComponentType[SpriteData]()
	Tilemap  = donburi.NewComponentType[TilemapData]()
)

// MoveEvent carries the player's current movement axis, each component
// in [-1, 1]. Published once per tick from keyboard state.
type MoveEvent struct {
	Axis moleman.Vec2
}

// TileToggleEvent requests flipping the occupancy of a map cell. The
// coordinates come from pointer-to-world translation and may be out of
// range; the renderer ignores those.
type TileToggleEvent struct {
	X, Y int
}

// Event queues drained at the start of Update.
var (
	MoveEvents       = events.NewEventType[MoveEvent]()
	TileToggleEvents = events.NewEventType[TileToggleEvent]()
)

// NewWorld creates a world with the input event handlers attached:
// move events steer every player entity, toggle events reach every
// registered tilemap.
func NewWorld() donburi.World {
	w := donburi.NewWorld()

	MoveEvents.Subscribe(w, func(w donburi.World, ev MoveEvent) {
		playersQuery.Each(w, func(entry *donburi.Entry) {
			speed := Player.Get(entry).Speed
			vel := Velocity.Get(entry)
			vel.X = ev.Axis.X * speed
			vel.Y = ev.Axis.Y * speed
		})
	})

	TileToggleEvents.Subscribe(w, func(w donburi.World, ev TileToggleEvent) {
		tilemapsQuery.Each(w, func(entry *donburi.Entry) {
			Tilemap.Get(entry).Renderer.Toggle(ev.X, ev.Y)
		})
	})

	return w
}

// SpawnPlayer creates the player entity at a world position, drawn as
// the sheet's first tile.
func SpawnPlayer(w donburi.World, sheet *moleman.SpriteSheet, x, y, speed float64) *donburi.Entry {
	entry := w.Entry(w.Create(Position, Velocity, Player, Sprite))
	donburi.SetValue(entry, Position, PositionData{X: x, Y: y})
	donburi.SetValue(entry, Velocity, VelocityData{})
	donburi.SetValue(entry, Player, PlayerData{Speed: speed})
	donburi.SetValue(entry, Sprite, SpriteData{Sheet: sheet, BobbleAmp: 2})
	return entry
}

// SpawnTilemap registers a tilemap renderer as an entity.
func SpawnTilemap(w donburi.World, renderer *moleman.TilemapRenderer) *donburi.Entry {
	entry := w.Entry(w.Create(Tilemap))
	donburi.SetValue(entry, Tilemap, TilemapData{Renderer: renderer})
	return entry
}
