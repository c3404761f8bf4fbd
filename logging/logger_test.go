package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNilWriter(t *testing.T) {
	logger, err := New("APP", "", nil)
	assert.Error(t, err)
	assert.Nil(t, logger)
}

func TestLoggerTagsLines(t *testing.T) {
	var out bytes.Buffer
	logger, err := New("CATALOG", "", &out)
	require.NoError(t, err)

	logger.Info("catalog ready")
	logger.Warning("redis slow")
	logger.Error("mongo down")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "[CATALOG] [INFO]")
	assert.Contains(t, lines[0], "catalog ready")
	assert.Contains(t, lines[1], "[CATALOG] [WARNING]")
	assert.Contains(t, lines[2], "[CATALOG] [ERROR]")
}
