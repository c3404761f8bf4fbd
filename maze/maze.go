/*
Package maze generates perfect rectangular mazes.

A maze is a grid of cells with wall configurations, generated with
Wilson's algorithm: loop-erased random walks produce a uniform spanning
tree, so every cell is reachable from every other by exactly one path.
Generated mazes convert to the maze file grid representation for
serialization and storage.
*/
package maze

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/beka-birhanu/maze-registry/mazefile"
)

const (
	// MaxDimension bounds generated maze width and height.
	MaxDimension = 32
)

// Directions maps a direction name to its row/column delta.
var Directions = map[string]CellPosition{
	"North": {Row: -1, Col: 0},
	"South": {Row: 1, Col: 0},
	"East":  {Row: 0, Col: 1},
	"West":  {Row: 0, Col: -1},
}

// ErrInvalidDimensions is returned when a requested maze size is out of range.
var ErrInvalidDimensions = fmt.Errorf("maze dimensions must be between 1 and %d", MaxDimension)

// CellPosition addresses a cell by row and column.
type CellPosition struct {
	Row int
	Col int
}

// Move describes stepping from one cell to an adjacent one.
type Move struct {
	From      CellPosition
	To        CellPosition
	Direction string
}

// Maze is a rectangular maze of cells with walls.
type Maze struct {
	Width  int      // number of columns
	Height int      // number of rows
	Grid   [][]Cell // Grid[row][col]
}

// New generates a maze of the given dimensions. All cells start fully
// walled; generation then knocks down walls until the maze is perfect.
func New(width, height int) (*Maze, error) {
	if min(width, height) <= 0 || max(width, height) > MaxDimension {
		return nil, ErrInvalidDimensions
	}

	grid := make([][]Cell, height)
	for row := range grid {
		grid[row] = make([]Cell, width)
		for col := range grid[row] {
			grid[row][col] = Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	maze := &Maze{
		Width:  width,
		Height: height,
		Grid:   grid,
	}
	maze.generate()
	return maze, nil
}

// randomCellPosition picks a uniformly random position in the maze.
func (m *Maze) randomCellPosition() CellPosition {
	return CellPosition{Row: rand.Intn(m.Height), Col: rand.Intn(m.Width)}
}

// randomUnvisitedCellPosition picks a random position not yet in visited.
func (m *Maze) randomUnvisitedCellPosition(visited map[CellPosition]struct{}) CellPosition {
	for {
		pos := m.randomCellPosition()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors lists all in-bounds moves from a position.
func (m *Maze) neighbors(pos CellPosition) []Move {
	var result []Move
	for dir, delta := range Directions {
		neighbor := CellPosition{Row: pos.Row + delta.Row, Col: pos.Col + delta.Col}
		if neighbor.Row >= 0 && neighbor.Row < m.Height && neighbor.Col >= 0 && neighbor.Col < m.Width {
			result = append(result, Move{From: pos, To: neighbor, Direction: dir})
		}
	}
	return result
}

// openWall removes the wall between two adjacent cells on both sides.
func (m *Maze) openWall(move Move) {
	from := &m.Grid[move.From.Row][move.From.Col]
	to := &m.Grid[move.To.Row][move.To.Col]

	switch move.Direction {
	case "North":
		from.NorthWall = false
		to.SouthWall = false
	case "South":
		from.SouthWall = false
		to.NorthWall = false
	case "East":
		from.EastWall = false
		to.WestWall = false
	case "West":
		from.WestWall = false
		to.EastWall = false
	}
}

// randomWalk walks randomly from an unvisited cell until it reaches the
// visited set, recording the latest exit taken from each cell. Revisiting
// a cell overwrites its exit, which erases any loop the walk made.
func (m *Maze) randomWalk(visited map[CellPosition]struct{}) map[CellPosition]Move {
	start := m.randomUnvisitedCellPosition(visited)
	visits := make(map[CellPosition]Move)
	cell := start

	for {
		neighbors := m.neighbors(cell)
		next := neighbors[rand.Intn(len(neighbors))]
		visits[cell] = next
		if _, included := visited[next.To]; included {
			break
		}
		cell = next.To
	}

	return visits
}

// generate carves the maze with Wilson's algorithm.
func (m *Maze) generate() {
	visited := make(map[CellPosition]struct{})
	visited[m.randomCellPosition()] = struct{}{}

	for len(visited) < m.Width*m.Height {
		for cell, move := range m.randomWalk(visited) {
			m.openWall(move)
			visited[cell] = struct{}{}
		}
	}
}

// ToGrid converts the maze to the maze file grid representation: columns
// indexed by X (the maze column) and tiles indexed by Y (the maze row).
func (m *Maze) ToGrid() mazefile.Grid {
	grid := make(mazefile.Grid, m.Width)
	for col := 0; col < m.Width; col++ {
		column := make([]mazefile.Tile, m.Height)
		for row := 0; row < m.Height; row++ {
			cell := m.Grid[row][col]
			column[row] = mazefile.NewTile(cell.NorthWall, cell.EastWall, cell.SouthWall, cell.WestWall)
		}
		grid[col] = column
	}
	return grid
}

// String renders the maze as ASCII art, one "+---+" segment per cell.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.Width) + "\n")

	for row := 0; row < m.Height; row++ {
		cellRow := "|"
		wallRow := "+"
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]

			if cell.EastWall {
				cellRow += "   |"
			} else {
				cellRow += "    "
			}
			if cell.SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(cellRow + "\n")
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
