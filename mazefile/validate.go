package mazefile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ValidMazeFile is proof that a path passed maze file validation. A value
// can only be obtained from a successful Validate call, which makes it
// impossible to hand LoadMaze a file that was never checked.
type ValidMazeFile struct {
	path string
}

// Path returns the validated file's path.
func (f *ValidMazeFile) Path() string {
	return f.path
}

// IsValidMazeFile reports whether the file at path is a well-formed maze
// file. It has no side effects on the filesystem; every rejection is
// logged with the offending line and rule.
func (c *Codec) IsValidMazeFile(path string) bool {
	_, ok := c.Validate(path)
	return ok
}

// Validate checks the file at path against the maze file format in a
// single forward pass and, on success, returns a ValidMazeFile for it.
//
// The pass keeps only two counters, the next expected X and Y. Because
// the format mandates monotonic, gapless, column-major ordering, the two
// legal transitions (same-column continuation and new-column start) are
// enough to guarantee uniqueness and completeness of every (X, Y) pair;
// no seen-set or sort is needed and memory stays bounded by one line.
//
// A missing, unreadable, or empty file is a normal negative result, not
// an error: it is logged and reported as invalid.
func (c *Codec) Validate(path string) (*ValidMazeFile, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		c.logger.Warning(fmt.Sprintf("%q is not a file.", path))
		return nil, false
	}

	file, err := os.Open(path)
	if err != nil {
		c.logger.Warning(fmt.Sprintf("Could not open %q for maze validation: %v", path, err))
		return nil, false
	}
	defer file.Close()

	if info.Size() == 0 {
		c.logger.Warning(fmt.Sprintf("%q is empty.", path))
		return nil, false
	}

	scanner := bufio.NewScanner(file)
	lineNum := 0
	expectedX, expectedY := 0, 0

	for scanner.Scan() {
		lineNum++

		tokens := strings.Fields(scanner.Text())
		if len(tokens) != 6 {
			c.logger.Warning(fmt.Sprintf(
				"%q does not contain six entries on each line: line %d contains %d entries.",
				path, lineNum, len(tokens)))
			return nil, false
		}

		values := make([]int, len(tokens))
		for i, token := range tokens {
			value, ok := parsePlainInt(token)
			if !ok {
				c.logger.Warning(fmt.Sprintf(
					"%q contains non-numeric entries: the entry %q on line %d in position %d is not numeric.",
					path, token, lineNum, i+1))
				return nil, false
			}
			values[i] = value
		}

		for i := 0; i < 4; i++ {
			if value := values[2+i]; value != 0 && value != 1 {
				c.logger.Warning(fmt.Sprintf(
					"%q contains an invalid value of %d in position %d on line %d."+
						" All wall values must be either \"0\" or \"1\".",
					path, value, 2+i+1, lineNum))
				return nil, false
			}
		}

		x, y := values[0], values[1]

		// The first line of the file must describe cell (0, 0). This is
		// checked explicitly; it also follows from the expectedY guard on
		// the new-column transition below, but the format treats it as a
		// rule in its own right.
		if lineNum == 1 && (x != 0 || y != 0) {
			c.logger.Warning(fmt.Sprintf(
				"%q must start with cell (0, 0) but starts with (%d, %d).", path, x, y))
			return nil, false
		}

		switch {
		case x == expectedX && y == expectedY:
			// Same-column continuation.
			expectedY++
		case x == expectedX+1 && y == 0 && expectedY != 0:
			// New column; its first cell is consumed, so the next
			// expected row is 1.
			expectedX++
			expectedY = 1
		default:
			c.logger.Warning(fmt.Sprintf(
				"%q contains unexpected x and y values of %d and %d on line %d.",
				path, x, y, lineNum))
			return nil, false
		}
	}

	if err := scanner.Err(); err != nil {
		c.logger.Warning(fmt.Sprintf("Reading %q failed: %v", path, err))
		return nil, false
	}

	return &ValidMazeFile{path: path}, true
}

// parsePlainInt parses a base-10 integer consisting of an optional minus
// sign followed by digits. Anything else, including a leading plus sign,
// whitespace, or a fractional part, is rejected.
func parsePlainInt(token string) (int, bool) {
	digits := strings.TrimPrefix(token, "-")
	if len(digits) == 0 {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return value, true
}
