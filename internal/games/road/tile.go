// Package road implements Hopper: the player hops one or two tiles at a time
// along a generated road and loses on landing where a tile is missing.
package road

import (
	"math/rand"
	"strings"
)

// Tile is a single road position.
type Tile int

const (
	TileEmpty Tile = iota // Missing tile, landing here ends the run
	TileSolid             // Safe tile
)

// String returns a one-word name for the tile.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// Road is the generated tile sequence, indexed from the start tile.
type Road []Tile

// Generate builds a road of the given length.
//
// Tile 0 is always solid. A tile that follows an empty tile is forced solid, so
// two gaps never touch and a two-tile hop can always clear a gap. Every other
// tile is solid or empty with equal probability. Lengths below 1 produce the
// one-tile road.
func Generate(length int, rng *rand.Rand) Road {
	if length < 1 {
		length = 1
	}

	r := make(Road, 0, length)
	r = append(r, TileSolid)
	for i := 1; i < length; i++ {
		if r[i-1] == TileEmpty {
			r = append(r, TileSolid)
			continue
		}
		r = append(r, Tile(rng.Intn(2)))
	}
	return r
}

// Len returns the number of tiles.
func (r Road) Len() int {
	return len(r)
}

// At returns the tile at index i. ok is false outside the road.
func (r Road) At(i int) (t Tile, ok bool) {
	if i < 0 || i >= len(r) {
		return TileEmpty, false
	}
	return r[i], true
}

// Gaps returns the number of empty tiles.
func (r Road) Gaps() int {
	n := 0
	for _, t := range r {
		if t == TileEmpty {
			n++
		}
	}
	return n
}

// String renders the road as '#' for solid and '_' for empty tiles.
func (r Road) String() string {
	var sb strings.Builder
	sb.Grow(len(r))
	for _, t := range r {
		if t == TileSolid {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// ParseRoad is the inverse of Road.String. Any byte other than '#' is a gap.
func ParseRoad(s string) Road {
	r := make(Road, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '#' {
			r[i] = TileSolid
		}
	}
	return r
}
