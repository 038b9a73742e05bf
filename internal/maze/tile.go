package maze

// Tile represents a single structural cell.
type Tile rune

const (
	// TileWall represents an impassable wall cell.
	TileWall Tile = '*'
	// TileFloor represents an open floor cell.
	TileFloor Tile = ' '
)

// VariationBackground is the variations-layer character for cells that
// belong to no zone.
const VariationBackground = '.'

// IsFloor returns true if the tile is open.
func (t Tile) IsFloor() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
