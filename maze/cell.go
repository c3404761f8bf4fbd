package maze

// Cell is a single maze cell with a wall flag per side.
type Cell struct {
	NorthWall bool
	SouthWall bool
	EastWall  bool
	WestWall  bool
}

// Walls returns the number of standing walls around the cell.
func (c Cell) Walls() int {
	count := 0
	for _, wall := range []bool{c.NorthWall, c.SouthWall, c.EastWall, c.WestWall} {
		if wall {
			count++
		}
	}
	return count
}
