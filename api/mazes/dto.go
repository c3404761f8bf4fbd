// Package mazesapi exposes the maze catalog endpoints.
package mazesapi

import "time"

// UploadRequest carries a maze file submission.
type UploadRequest struct {
	Name    string `json:"name" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// GenerateRequest asks the server to generate a maze of the given size.
type GenerateRequest struct {
	Name    string `json:"name" binding:"required"`
	Columns int    `json:"columns" binding:"required"`
	Rows    int    `json:"rows" binding:"required"`
}

// MazeResponse describes a stored maze. Content is only populated on
// single-maze lookups.
type MazeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	Columns   int       `json:"columns"`
	Rows      int       `json:"rows"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RankedMazeResponse is one leaderboard entry.
type RankedMazeResponse struct {
	MazeID    string `json:"maze_id"`
	Downloads int64  `json:"downloads"`
}
