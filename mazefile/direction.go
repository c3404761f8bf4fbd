package mazefile

// Direction identifies one side of a maze tile.
//
// Each direction carries a fixed ordinal that doubles as the offset of its
// wall flag within a maze file line (token 3 + ordinal). The ordering is
// part of the file format contract: changing it would silently break
// compatibility with every existing maze file, so it is pinned here
// explicitly rather than left to declaration order.
type Direction int

const (
	North Direction = 0
	East  Direction = 1
	South Direction = 2
	West  Direction = 3
)

// Directions lists the four directions in their on-disk column order.
var Directions = [4]Direction{North, East, South, West}

// String returns the direction's name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}
