package mazefile

// Tile records the wall state of a single maze cell, one flag per
// direction. Tiles are immutable once constructed; the grid cell that
// holds a tile is its sole owner.
type Tile struct {
	walls [4]bool
}

// NewTile creates a tile from its four wall flags.
func NewTile(north, east, south, west bool) Tile {
	return Tile{walls: [4]bool{north, east, south, west}}
}

// Wall reports whether the tile has a wall in the given direction.
func (t Tile) Wall(d Direction) bool {
	return t.walls[d]
}

// Grid is the complete in-memory maze: an ordered sequence of columns
// (indexed by X), each an ordered sequence of tiles (indexed by Y).
// Columns may have different heights; the file format does not require
// the maze to be rectangular.
type Grid [][]Tile

// Width returns the number of columns.
func (g Grid) Width() int {
	return len(g)
}

// Height returns the number of tiles in the tallest column.
func (g Grid) Height() int {
	tallest := 0
	for _, column := range g {
		if len(column) > tallest {
			tallest = len(column)
		}
	}
	return tallest
}
