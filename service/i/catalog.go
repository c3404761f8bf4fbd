package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-registry/domain"
	"github.com/google/uuid"
)

// Catalog manages the registry of maze files: submission, server-side
// generation, lookup, download, and removal.
type Catalog interface {
	// Submit validates an uploaded maze file and, if it is well formed,
	// stores it in canonical form under the owner's account.
	Submit(ctx context.Context, ownerID uuid.UUID, name string, file []byte) (*dmn.Maze, error)

	// Generate creates a random perfect maze of the given dimensions and
	// stores it under the owner's account.
	Generate(ctx context.Context, ownerID uuid.UUID, name string, columns, rows int) (*dmn.Maze, error)

	// Get retrieves a maze record by ID.
	Get(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)

	// List returns all maze records, newest first.
	List(ctx context.Context) ([]*dmn.Maze, error)

	// FetchFile returns the canonical maze file content for a maze and
	// records the download on the leaderboard.
	FetchFile(ctx context.Context, id uuid.UUID) (string, error)

	// Top returns the most downloaded mazes with their counts.
	Top(ctx context.Context, amount int64) ([]RankedMaze, error)

	// Remove deletes a maze. Only the owner may remove it.
	Remove(ctx context.Context, id, requesterID uuid.UUID) error
}
