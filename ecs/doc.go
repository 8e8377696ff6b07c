// Package ecs holds the entity/component layer of Mole Man 2 on top of
// [Donburi]: typed component columns keyed by entity, queried with
// explicit joins, plus the update systems that advance them each tick.
//
// Input reaches the world as queued Donburi events ([MoveEvents],
// [TileToggleEvents]) published by the game loop and drained at the
// start of [Update], so systems never poll devices themselves.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
