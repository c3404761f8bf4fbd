package i

import (
	"context"

	"github.com/google/uuid"
)

// RankedMaze is a leaderboard entry: a maze and its download count.
type RankedMaze struct {
	MazeID    uuid.UUID
	Downloads int64
}

// Leaderboard tracks maze downloads and ranks mazes by popularity.
type Leaderboard interface {
	// RecordDownload increments the download count of a maze.
	RecordDownload(ctx context.Context, mazeID uuid.UUID) error

	// Top returns up to amount mazes ordered by descending downloads.
	Top(ctx context.Context, amount int64) ([]RankedMaze, error)

	// Forget drops a maze from the board, e.g. when it is deleted.
	Forget(ctx context.Context, mazeID uuid.UUID) error
}
