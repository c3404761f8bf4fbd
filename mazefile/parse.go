package mazefile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadMaze reads a validated maze file and reconstructs its grid. The
// ValidMazeFile argument guarantees the content already satisfies the
// format, so no structural checks are repeated here; the only way this
// can fail is an I/O error on the re-read (for example the file vanished
// between validation and load), which is returned as-is.
//
// Ownership of the returned grid transfers fully to the caller.
func (c *Codec) LoadMaze(f *ValidMazeFile) (Grid, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("opening maze file %q: %w", f.path, err)
	}
	defer file.Close()

	var maze Grid
	var column []Tile

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())

		// Wall flags sit at token 3 onward, one per direction in the
		// fixed column order.
		var walls [4]bool
		for _, d := range Directions {
			value, _ := strconv.Atoi(tokens[2+d])
			walls[d] = value == 1
		}
		tile := NewTile(walls[North], walls[East], walls[South], walls[West])

		// A tile with an X beyond the finalized columns starts a new
		// column, so the one in progress is complete.
		x, _ := strconv.Atoi(tokens[0])
		if len(maze) < x {
			maze = append(maze, column)
			column = nil
		}

		column = append(column, tile)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading maze file %q: %w", f.path, err)
	}

	// The last column is never flushed by the X check above; there is no
	// subsequent line to trigger it.
	maze = append(maze, column)

	return maze, nil
}
