// Package sandbox is a small playable platformer that drives the
// collision engine: a box with gravity moving through a tile world,
// resolved every frame by the bounded shrink-and-retry loop.
package sandbox

import (
	"github.com/tomz197/tilenet"
	"github.com/tomz197/tilenet/geom"
)

// World dimensions in tiles.
const (
	WorldWidth  = 60
	WorldHeight = 22
)

// Tile values used by the sandbox.
const (
	TileEmpty    = 0
	TileWall     = 1
	TilePlatform = 2
)

// BuildWorld creates the demo level: walls on all four edges and a few
// platforms and pillars to jump around.
func BuildWorld() *tilenet.Net[int] {
	net := tilenet.New[int](WorldWidth, WorldHeight)

	net.SetRow(TileWall, 0)
	net.SetRow(TileWall, WorldHeight-1)
	net.SetCol(TileWall, 0)
	net.SetCol(TileWall, WorldWidth-1)

	net.SetBox(TilePlatform, geom.Cell{Col: 8, Row: 16}, geom.Cell{Col: 18, Row: 16})
	net.SetBox(TilePlatform, geom.Cell{Col: 24, Row: 12}, geom.Cell{Col: 32, Row: 12})
	net.SetBox(TilePlatform, geom.Cell{Col: 38, Row: 8}, geom.Cell{Col: 46, Row: 8})
	net.SetBox(TileWall, geom.Cell{Col: 50, Row: 14}, geom.Cell{Col: 52, Row: WorldHeight-1})

	return net
}
