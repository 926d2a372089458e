package road

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/hopper/internal/core"
)

// TileSprite is how a placed tile is drawn.
type TileSprite struct {
	Glyph rune
	Color core.Color
}

// DefaultTileSprite is the prefab used for solid tiles.
var DefaultTileSprite = TileSprite{Glyph: '█', Color: core.ColorTile}

// slot is the road index a tile entity was spawned for.
type slot struct {
	Index int
}

// TileArena keeps the visuals of the current road as entities in an ECS
// world. Only solid tiles get an entity; gaps are the absence of one.
type TileArena struct {
	world   ecs.World
	tiles   *ecs.Map3[core.Vec2, TileSprite, slot]
	filter  *ecs.Filter3[core.Vec2, TileSprite, slot]
	handles map[int]ecs.Entity
	prefab  *TileSprite
}

// NewTileArena creates an empty arena. With a nil prefab the arena never
// spawns anything.
func NewTileArena(prefab *TileSprite) *TileArena {
	a := &TileArena{
		world:   ecs.NewWorld(),
		handles: make(map[int]ecs.Entity),
		prefab:  prefab,
	}
	a.tiles = ecs.NewMap3[core.Vec2, TileSprite, slot](&a.world)
	a.filter = ecs.NewFilter3[core.Vec2, TileSprite, slot](&a.world)
	return a
}

// Clear removes every placed tile.
func (a *TileArena) Clear() {
	for idx, e := range a.handles {
		if a.world.Alive(e) {
			a.world.RemoveEntity(e)
		}
		delete(a.handles, idx)
	}
}

// Spawn places the visual for a road tile. Empty tiles and a missing prefab
// place nothing. Spawning an index twice replaces the earlier visual.
func (a *TileArena) Spawn(index int, tile Tile, pos core.Vec2) {
	if a.prefab == nil || tile != TileSolid {
		return
	}
	if old, ok := a.handles[index]; ok && a.world.Alive(old) {
		a.world.RemoveEntity(old)
	}

	sprite := *a.prefab
	a.handles[index] = a.tiles.NewEntity(&pos, &sprite, &slot{Index: index})
}

// Each calls fn for every placed tile, in no particular order.
func (a *TileArena) Each(fn func(index int, pos core.Vec2, sprite TileSprite)) {
	query := a.filter.Query()
	for query.Next() {
		pos, sprite, s := query.Get()
		fn(s.Index, *pos, *sprite)
	}
}

// Len returns the number of placed tiles.
func (a *TileArena) Len() int {
	return len(a.handles)
}
