// Package moleman is the tile-map engine behind Mole Man 2, a small
// real-time tile-authoring game built on [Ebitengine].
//
// The heart of the package is the auto-tiling pipeline: a [TileGrid]
// stores which cells are occupied, [TileGrid.ResolveAdjacency] computes
// an 8-direction [Orientation] mask for every filled cell from its
// neighbors, a [SpriteConfig] maps each mask to sprite-sheet
// coordinates, and a [TilemapRenderer] compiles the result into a
// geometry buffer drawn in a single call.
//
//	config := moleman.LoadSpriteConfig(moleman.SpriteConfigPath("tileset.png"), 16, 16)
//	sheet := moleman.NewSpriteSheet(img, 8, 8, 16, 16)
//	tilemap := moleman.NewTilemapRenderer(config, sheet)
//
//	tilemap.Toggle(3, 3) // paint a tile
//	tilemap.Update()     // recompute masks and rebuild the buffer
//	tilemap.Draw(screen, cam)
//
// The mapping from mask to sprite coordinate lives in a sidecar JSON
// file next to the sprite sheet and can be edited while the game runs
// through [SpriteConfigEditor]. A tile whose mask has no configured
// sprite is simply not drawn, so a map can be painted before any art
// is assigned.
//
// Entity simulation (the mole, physics, input routing) lives in the
// ecs subpackage on top of [Donburi]; the audio subpackage provides
// procedural feedback tones.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package moleman
