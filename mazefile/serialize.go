package mazefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// SaveMaze writes the grid to path in the maze file format, creating or
// overwriting the target. Iterating columns and rows in index order
// trivially satisfies the format's ordering rules, so the written file is
// always one that Validate accepts.
//
// A target that cannot be opened or written is logged and the function
// returns without effect; serialization failures are never fatal.
func (c *Codec) SaveMaze(grid Grid, path string) {
	file, err := os.Create(path)
	if err != nil {
		c.logger.Warning(fmt.Sprintf("Unable to save maze to %q: %v", path, err))
		return
	}
	defer file.Close()

	if err := Encode(file, grid); err != nil {
		c.logger.Warning(fmt.Sprintf("Writing maze to %q failed: %v", path, err))
	}
}

// Encode writes the grid to w in the maze file format, one line per tile
// in column-major order.
func Encode(w io.Writer, grid Grid) error {
	buf := bufio.NewWriter(w)

	for x, column := range grid {
		for y, tile := range column {
			if _, err := fmt.Fprintf(buf, "%d %d", x, y); err != nil {
				return err
			}
			for _, d := range Directions {
				flag := 0
				if tile.Wall(d) {
					flag = 1
				}
				if _, err := fmt.Fprintf(buf, " %d", flag); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(buf); err != nil {
				return err
			}
		}
	}

	return buf.Flush()
}
