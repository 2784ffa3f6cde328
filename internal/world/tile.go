// Package world provides cave generation: cellular-automaton floor plans
// stitched to neighboring tiles, plus a synthesized height field.
package world

// Tile represents a single grid cell state.
type Tile rune

const (
	// TileWall represents an impassable wall cell.
	TileWall Tile = '#'
	// TileFloor represents a passable floor cell.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
