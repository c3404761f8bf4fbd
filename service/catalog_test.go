package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dmn "github.com/beka-birhanu/maze-registry/domain"
	"github.com/beka-birhanu/maze-registry/logging"
	"github.com/beka-birhanu/maze-registry/mazefile"
	"github.com/beka-birhanu/maze-registry/service/i"
)

type fakeMazeRepo struct {
	mazes map[uuid.UUID]*dmn.Maze
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{mazes: make(map[uuid.UUID]*dmn.Maze)}
}

func (r *fakeMazeRepo) Save(maze *dmn.Maze) error {
	r.mazes[maze.ID] = maze
	return nil
}

func (r *fakeMazeRepo) ByID(id uuid.UUID) (*dmn.Maze, error) {
	maze, ok := r.mazes[id]
	if !ok {
		return nil, errors.New("maze not found")
	}
	return maze, nil
}

func (r *fakeMazeRepo) All() ([]*dmn.Maze, error) {
	var all []*dmn.Maze
	for _, maze := range r.mazes {
		all = append(all, maze)
	}
	sort.Slice(all, func(a, b int) bool { return all[a].CreatedAt.After(all[b].CreatedAt) })
	return all, nil
}

func (r *fakeMazeRepo) Delete(id uuid.UUID) error {
	if _, ok := r.mazes[id]; !ok {
		return errors.New("maze not found")
	}
	delete(r.mazes, id)
	return nil
}

type fakeLeaderboard struct {
	downloads  map[uuid.UUID]int64
	failRecord bool
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{downloads: make(map[uuid.UUID]int64)}
}

func (l *fakeLeaderboard) RecordDownload(_ context.Context, mazeID uuid.UUID) error {
	if l.failRecord {
		return errors.New("redis unavailable")
	}
	l.downloads[mazeID]++
	return nil
}

func (l *fakeLeaderboard) Top(_ context.Context, amount int64) ([]i.RankedMaze, error) {
	var entries []i.RankedMaze
	for id, count := range l.downloads {
		entries = append(entries, i.RankedMaze{MazeID: id, Downloads: count})
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].Downloads > entries[b].Downloads })
	if int64(len(entries)) > amount {
		entries = entries[:amount]
	}
	return entries, nil
}

func (l *fakeLeaderboard) Forget(_ context.Context, mazeID uuid.UUID) error {
	delete(l.downloads, mazeID)
	return nil
}

func newTestCatalog(t *testing.T) (*Catalog, *fakeMazeRepo, *fakeLeaderboard, *mazefile.Codec) {
	t.Helper()

	logger, err := logging.New("CATALOG", "", io.Discard)
	require.NoError(t, err)

	repo := newFakeMazeRepo()
	board := newFakeLeaderboard()
	codec := mazefile.New(logger)

	catalog, err := NewCatalog(CatalogConfig{
		MazeRepo:    repo,
		Codec:       codec,
		Leaderboard: board,
		Logger:      logger,
	})
	require.NoError(t, err)

	return catalog, repo, board, codec
}

func TestCatalogSubmit(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("valid upload is stored canonically", func(t *testing.T) {
		catalog, repo, _, _ := newTestCatalog(t)

		// Same maze as the canonical form, but with irregular spacing.
		upload := []byte("  0 0  1 1 0 1\n0  1 1 1 0 1\n1 0 0 0 1 1 \n")

		record, err := catalog.Submit(ctx, owner, "Sloppy Upload", upload)
		require.NoError(t, err)

		assert.Equal(t, "0 0 1 1 0 1\n0 1 1 1 0 1\n1 0 0 0 1 1\n", record.Content)
		assert.Equal(t, 2, record.Columns)
		assert.Equal(t, 2, record.Rows)
		assert.Equal(t, owner, record.OwnerID)

		stored, err := repo.ByID(record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.Content, stored.Content)
	})

	t.Run("malformed upload is rejected", func(t *testing.T) {
		catalog, repo, _, _ := newTestCatalog(t)

		_, err := catalog.Submit(ctx, owner, "Broken Maze", []byte("0 0 2 0 0 0\n"))
		assert.ErrorIs(t, err, ErrInvalidMazeFile)
		assert.Empty(t, repo.mazes)
	})

	t.Run("bad name is rejected after validation", func(t *testing.T) {
		catalog, repo, _, _ := newTestCatalog(t)

		_, err := catalog.Submit(ctx, owner, "x", []byte("0 0 1 1 1 1\n"))
		assert.Error(t, err)
		assert.Empty(t, repo.mazes)
	})
}

func TestCatalogGenerate(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	catalog, _, _, codec := newTestCatalog(t)

	record, err := catalog.Generate(ctx, owner, "Generated Maze", 6, 4)
	require.NoError(t, err)

	assert.Equal(t, 6, record.Columns)
	assert.Equal(t, 4, record.Rows)

	// The stored content must itself be a valid maze file.
	path := filepath.Join(t.TempDir(), "generated.txt")
	require.NoError(t, os.WriteFile(path, []byte(record.Content), 0o644))
	assert.True(t, codec.IsValidMazeFile(path))
}

func TestCatalogGenerateRejectsBadDimensions(t *testing.T) {
	catalog, _, _, _ := newTestCatalog(t)

	_, err := catalog.Generate(context.Background(), uuid.New(), "Generated Maze", 0, 4)
	assert.Error(t, err)
}

func TestCatalogFetchFile(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("returns content and records the download", func(t *testing.T) {
		catalog, _, board, _ := newTestCatalog(t)

		record, err := catalog.Submit(ctx, owner, "Downloadable", []byte("0 0 1 1 1 1\n"))
		require.NoError(t, err)

		content, err := catalog.FetchFile(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.Content, content)
		assert.Equal(t, int64(1), board.downloads[record.ID])
	})

	t.Run("leaderboard failure does not block the download", func(t *testing.T) {
		catalog, _, board, _ := newTestCatalog(t)
		board.failRecord = true

		record, err := catalog.Submit(ctx, owner, "Downloadable", []byte("0 0 1 1 1 1\n"))
		require.NoError(t, err)

		content, err := catalog.FetchFile(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.Content, content)
	})

	t.Run("unknown maze", func(t *testing.T) {
		catalog, _, _, _ := newTestCatalog(t)

		_, err := catalog.FetchFile(ctx, uuid.New())
		assert.Error(t, err)
	})
}

func TestCatalogRemove(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("owner can remove", func(t *testing.T) {
		catalog, repo, board, _ := newTestCatalog(t)

		record, err := catalog.Submit(ctx, owner, "Short Lived", []byte("0 0 1 1 1 1\n"))
		require.NoError(t, err)

		_, err = catalog.FetchFile(ctx, record.ID)
		require.NoError(t, err)

		require.NoError(t, catalog.Remove(ctx, record.ID, owner))
		assert.Empty(t, repo.mazes)
		assert.Empty(t, board.downloads)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		catalog, repo, _, _ := newTestCatalog(t)

		record, err := catalog.Submit(ctx, owner, "Short Lived", []byte("0 0 1 1 1 1\n"))
		require.NoError(t, err)

		err = catalog.Remove(ctx, record.ID, uuid.New())
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Len(t, repo.mazes, 1)
	})
}
