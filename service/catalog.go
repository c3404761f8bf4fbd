package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	dmn "github.com/beka-birhanu/maze-registry/domain"
	"github.com/beka-birhanu/maze-registry/logging"
	"github.com/beka-birhanu/maze-registry/maze"
	"github.com/beka-birhanu/maze-registry/mazefile"
	"github.com/beka-birhanu/maze-registry/service/i"
	"github.com/google/uuid"
)

var (
	// ErrInvalidMazeFile is returned when an uploaded file fails maze
	// file validation. The per-line diagnostics go to the codec's log.
	ErrInvalidMazeFile = errors.New("not a valid maze file")

	// ErrNotOwner is returned when a remove request comes from someone
	// other than the maze's owner.
	ErrNotOwner = errors.New("only the maze owner can remove it")
)

// Catalog implements i.Catalog: the registry of maze files.
type Catalog struct {
	mazeRepo    i.MazeRepo
	codec       *mazefile.Codec
	leaderboard i.Leaderboard
	logger      logging.Logger
}

// CatalogConfig holds the dependencies for creating a Catalog.
type CatalogConfig struct {
	MazeRepo    i.MazeRepo
	Codec       *mazefile.Codec
	Leaderboard i.Leaderboard
	Logger      logging.Logger
}

// NewCatalog creates a Catalog with the given configuration.
func NewCatalog(config CatalogConfig) (*Catalog, error) {
	if config.MazeRepo == nil || config.Codec == nil || config.Leaderboard == nil || config.Logger == nil {
		return nil, errors.New("catalog requires a maze repository, a codec, a leaderboard, and a logger")
	}

	return &Catalog{
		mazeRepo:    config.MazeRepo,
		codec:       config.Codec,
		leaderboard: config.Leaderboard,
		logger:      config.Logger,
	}, nil
}

// Submit validates an uploaded maze file and stores it in canonical form.
// The upload is staged to a temporary file so the streaming validator can
// make its single pass over it exactly as it would over a file on disk.
func (c *Catalog) Submit(ctx context.Context, ownerID uuid.UUID, name string, file []byte) (*dmn.Maze, error) {
	staged, err := stageUpload(file)
	if err != nil {
		return nil, err
	}
	defer os.Remove(staged)

	proof, ok := c.codec.Validate(staged)
	if !ok {
		return nil, ErrInvalidMazeFile
	}

	grid, err := c.codec.LoadMaze(proof)
	if err != nil {
		return nil, fmt.Errorf("loading validated upload: %w", err)
	}

	return c.store(ownerID, name, grid)
}

// Generate creates a random perfect maze and stores it.
func (c *Catalog) Generate(ctx context.Context, ownerID uuid.UUID, name string, columns, rows int) (*dmn.Maze, error) {
	generated, err := maze.New(columns, rows)
	if err != nil {
		return nil, err
	}

	return c.store(ownerID, name, generated.ToGrid())
}

// Get retrieves a maze record by ID.
func (c *Catalog) Get(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	return c.mazeRepo.ByID(id)
}

// List returns all maze records, newest first.
func (c *Catalog) List(ctx context.Context) ([]*dmn.Maze, error) {
	return c.mazeRepo.All()
}

// FetchFile returns the canonical maze file content for a maze and
// records the download. A leaderboard failure must not block the
// download; it is logged and the content is returned anyway.
func (c *Catalog) FetchFile(ctx context.Context, id uuid.UUID) (string, error) {
	record, err := c.mazeRepo.ByID(id)
	if err != nil {
		return "", err
	}

	if err := c.leaderboard.RecordDownload(ctx, id); err != nil {
		c.logger.Warning(fmt.Sprintf("Recording download of maze %s: %v", id, err))
	}

	return record.Content, nil
}

// Top returns the most downloaded mazes with their counts.
func (c *Catalog) Top(ctx context.Context, amount int64) ([]i.RankedMaze, error) {
	return c.leaderboard.Top(ctx, amount)
}

// Remove deletes a maze. Only the owner may remove it.
func (c *Catalog) Remove(ctx context.Context, id, requesterID uuid.UUID) error {
	record, err := c.mazeRepo.ByID(id)
	if err != nil {
		return err
	}

	if record.OwnerID != requesterID {
		return ErrNotOwner
	}

	if err := c.mazeRepo.Delete(id); err != nil {
		return err
	}

	if err := c.leaderboard.Forget(ctx, id); err != nil {
		c.logger.Warning(fmt.Sprintf("Dropping maze %s from leaderboard: %v", id, err))
	}

	return nil
}

// store serializes the grid to its canonical text and saves the record.
func (c *Catalog) store(ownerID uuid.UUID, name string, grid mazefile.Grid) (*dmn.Maze, error) {
	var content strings.Builder
	if err := mazefile.Encode(&content, grid); err != nil {
		return nil, fmt.Errorf("serializing maze: %w", err)
	}

	record, err := dmn.NewMaze(dmn.MazeConfig{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: ownerID,
		Columns: grid.Width(),
		Rows:    grid.Height(),
		Content: content.String(),
	})
	if err != nil {
		return nil, err
	}

	if err := c.mazeRepo.Save(record); err != nil {
		return nil, err
	}

	return record, nil
}

// stageUpload writes the uploaded bytes to a temporary file and returns
// its path. The caller removes the file when done.
func stageUpload(file []byte) (string, error) {
	staged, err := os.CreateTemp("", "maze-upload-*.txt")
	if err != nil {
		return "", fmt.Errorf("staging upload: %w", err)
	}

	if _, err := staged.Write(file); err != nil {
		staged.Close()
		os.Remove(staged.Name())
		return "", fmt.Errorf("staging upload: %w", err)
	}
	if err := staged.Close(); err != nil {
		os.Remove(staged.Name())
		return "", fmt.Errorf("staging upload: %w", err)
	}

	return staged.Name(), nil
}
