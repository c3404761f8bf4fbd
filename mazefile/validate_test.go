package mazefile

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/maze-registry/logging"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	logger, err := logging.New("MAZE-FILE", "", io.Discard)
	require.NoError(t, err)
	return New(logger)
}

func writeMazeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateAccepts(t *testing.T) {
	codec := newTestCodec(t)

	cases := []struct {
		name    string
		content string
	}{
		{
			name:    "minimal one-cell maze",
			content: "0 0 1 1 1 1\n",
		},
		{
			name:    "single column",
			content: "0 0 1 1 0 1\n0 1 1 1 0 1\n0 2 1 1 1 1\n",
		},
		{
			name:    "ragged columns",
			content: "0 0 0 0 0 0\n1 0 0 0 0 0\n1 1 0 0 0 0\n",
		},
		{
			name:    "extra whitespace between tokens",
			content: "  0  0   1 1 1 1  \n",
		},
		{
			name:    "no trailing newline",
			content: "0 0 1 1 1 1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeMazeFile(t, tc.content)
			assert.True(t, codec.IsValidMazeFile(path))
		})
	}
}

func TestValidateRejects(t *testing.T) {
	codec := newTestCodec(t)

	cases := []struct {
		name    string
		content string
	}{
		{
			name:    "empty file",
			content: "",
		},
		{
			name:    "first line is not cell (0,0)",
			content: "1 0 0 0 0 0\n",
		},
		{
			name:    "first line starts at row one",
			content: "0 1 0 0 0 0\n",
		},
		{
			name:    "five tokens",
			content: "0 0 1 1 1\n",
		},
		{
			name:    "seven tokens",
			content: "0 0 1 1 1 1 1\n",
		},
		{
			name:    "non-numeric token",
			content: "0 zero 1 1 1 1\n",
		},
		{
			name:    "floating point token",
			content: "0 0 1.0 1 1 1\n",
		},
		{
			name:    "leading plus sign",
			content: "+0 0 1 1 1 1\n",
		},
		{
			name:    "wall flag of two",
			content: "0 0 2 0 0 0\n",
		},
		{
			name:    "negative wall flag",
			content: "0 0 -1 0 0 0\n",
		},
		{
			name:    "skipped row",
			content: "0 0 0 0 0 0\n0 2 0 0 0 0\n",
		},
		{
			name:    "duplicate cell",
			content: "0 0 0 0 0 0\n0 0 0 0 0 0\n",
		},
		{
			name:    "new column does not restart at row zero",
			content: "0 0 0 0 0 0\n1 1 0 0 0 0\n",
		},
		{
			name:    "skipped column",
			content: "0 0 0 0 0 0\n2 0 0 0 0 0\n",
		},
		{
			name:    "decreasing column",
			content: "0 0 0 0 0 0\n1 0 0 0 0 0\n0 1 0 0 0 0\n",
		},
		{
			name:    "blank line between records",
			content: "0 0 0 0 0 0\n\n0 1 0 0 0 0\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeMazeFile(t, tc.content)
			assert.False(t, codec.IsValidMazeFile(path))
		})
	}
}

func TestValidateMissingFile(t *testing.T) {
	codec := newTestCodec(t)

	assert.False(t, codec.IsValidMazeFile(filepath.Join(t.TempDir(), "no-such-file.txt")))
}

func TestValidateDirectory(t *testing.T) {
	codec := newTestCodec(t)

	assert.False(t, codec.IsValidMazeFile(t.TempDir()))
}

func TestValidateReturnsProofOnSuccess(t *testing.T) {
	codec := newTestCodec(t)
	path := writeMazeFile(t, "0 0 1 1 1 1\n")

	proof, ok := codec.Validate(path)
	require.True(t, ok)
	require.NotNil(t, proof)
	assert.Equal(t, path, proof.Path())
}

func TestValidateReturnsNoProofOnFailure(t *testing.T) {
	codec := newTestCodec(t)
	path := writeMazeFile(t, "0 0 2 0 0 0\n")

	proof, ok := codec.Validate(path)
	assert.False(t, ok)
	assert.Nil(t, proof)
}
