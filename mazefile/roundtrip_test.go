package mazefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, codec *Codec, path string) Grid {
	t.Helper()
	proof, ok := codec.Validate(path)
	require.True(t, ok, "fixture must be a valid maze file")
	grid, err := codec.LoadMaze(proof)
	require.NoError(t, err)
	return grid
}

func TestLoadMazeSingleCell(t *testing.T) {
	codec := newTestCodec(t)
	path := writeMazeFile(t, "0 0 1 0 1 0\n")

	grid := mustLoad(t, codec, path)

	require.Equal(t, 1, grid.Width())
	require.Len(t, grid[0], 1)
	tile := grid[0][0]
	assert.True(t, tile.Wall(North))
	assert.False(t, tile.Wall(East))
	assert.True(t, tile.Wall(South))
	assert.False(t, tile.Wall(West))
}

func TestLoadMazeRaggedColumns(t *testing.T) {
	codec := newTestCodec(t)
	path := writeMazeFile(t, "0 0 1 1 1 1\n1 0 0 1 0 1\n1 1 1 0 0 1\n")

	grid := mustLoad(t, codec, path)

	require.Equal(t, 2, grid.Width())
	assert.Len(t, grid[0], 1)
	assert.Len(t, grid[1], 2)
	assert.Equal(t, 2, grid.Height())

	assert.Equal(t, NewTile(false, true, false, true), grid[1][0])
	assert.Equal(t, NewTile(true, false, false, true), grid[1][1])
}

func TestSaveMazeOutputRevalidates(t *testing.T) {
	codec := newTestCodec(t)
	source := writeMazeFile(t, "0 0 1 1 0 1\n0 1 1 1 0 1\n1 0 0 0 1 1\n")

	grid := mustLoad(t, codec, source)

	target := filepath.Join(t.TempDir(), "saved.txt")
	codec.SaveMaze(grid, target)

	assert.True(t, codec.IsValidMazeFile(target))
}

func TestSaveMazeByteForByte(t *testing.T) {
	codec := newTestCodec(t)
	content := "0 0 1 1 0 1\n0 1 1 1 0 1\n1 0 0 0 1 1\n1 1 0 1 1 0\n"
	source := writeMazeFile(t, content)

	grid := mustLoad(t, codec, source)

	target := filepath.Join(t.TempDir(), "saved.txt")
	codec.SaveMaze(grid, target)

	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, content, string(written))
}

func TestRoundTripIsLossless(t *testing.T) {
	codec := newTestCodec(t)

	grid := Grid{
		{NewTile(true, false, true, false), NewTile(false, false, true, true)},
		{NewTile(true, true, true, true)},
		{NewTile(false, false, false, false), NewTile(true, false, false, true), NewTile(false, true, true, false)},
	}

	path := filepath.Join(t.TempDir(), "roundtrip.txt")
	codec.SaveMaze(grid, path)

	reloaded := mustLoad(t, codec, path)

	require.Equal(t, grid.Width(), reloaded.Width())
	for x := range grid {
		require.Len(t, reloaded[x], len(grid[x]))
		for y, tile := range grid[x] {
			for _, d := range Directions {
				assert.Equal(t, tile.Wall(d), reloaded[x][y].Wall(d),
					"column %d row %d direction %s", x, y, d)
			}
		}
	}
}

func TestSaveMazeUnwritableTargetIsSilent(t *testing.T) {
	codec := newTestCodec(t)

	grid := Grid{{NewTile(true, true, true, true)}}

	// The parent directory does not exist, so the create fails; the
	// serializer must log and return rather than panic or write.
	target := filepath.Join(t.TempDir(), "missing", "saved.txt")
	assert.NotPanics(t, func() { codec.SaveMaze(grid, target) })

	_, err := os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}
