package ecs

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// bobbleRate is the idle animation frequency in radians per second.
const bobbleRate = 6.0

var (
	moversQuery   = donburi.NewQuery(filter.Contains(Position, Velocity))
	playersQuery  = donburi.NewQuery(filter.Contains(Player, Velocity))
	spritesQuery  = donburi.NewQuery(filter.Contains(Position, Sprite))
	tilemapsQuery = donburi.NewQuery(filter.Contains(Tilemap))
)

// Update advances the world by one tick: drain queued input events,
// then run the systems in their fixed order. dt is the tick duration
// in seconds.
func Update(w donburi.World, dt float64) {
	events.ProcessAllEvents(w)
	UpdateMovement(w, dt)
	UpdateBobble(w, dt)
	UpdateTilemaps(w)
}

// UpdateMovement integrates velocity into position.
func UpdateMovement(w donburi.World, dt float64) {
	moversQuery.Each(w, func(entry *donburi.Entry) {
		pos := Position.Get(entry)
		vel := Velocity.Get(entry)
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	})
}

// UpdateBobble advances every sprite's idle bobble.
func UpdateBobble(w donburi.World, dt float64) {
	spritesQuery.Each(w, func(entry *donburi.Entry) {
		spr := Sprite.Get(entry)
		if spr.BobbleAmp == 0 {
			return
		}
		spr.BobblePhase += bobbleRate * dt
		spr.BobbleOffset = math.Sin(spr.BobblePhase) * spr.BobbleAmp
	})
}

// UpdateTilemaps rebuilds every registered tilemap that changed.
func UpdateTilemaps(w donburi.World) {
	tilemapsQuery.Each(w, func(entry *donburi.Entry) {
		Tilemap.Get(entry).Renderer.Update()
	})
}

// EachSprite joins position and sprite columns for the draw pass.
func EachSprite(w donburi.World, fn func(pos PositionData, spr SpriteData)) {
	spritesQuery.Each(w, func(entry *donburi.Entry) {
		fn(*Position.Get(entry), *Sprite.Get(entry))
	})
}
