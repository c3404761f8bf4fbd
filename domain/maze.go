package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

const (
	mazeNamePattern   = `^[a-zA-Z0-9_\- ]+$`
	minMazeNameLength = 3
	maxMazeNameLength = 60
)

var mazeNameRegex = regexp.MustCompile(mazeNamePattern)

// Maze is a registered maze: its metadata plus the canonical maze file
// content. Content is always the serializer's output for the maze's grid,
// so any stored maze re-validates against the file format.
type Maze struct {
	ID        uuid.UUID `bson:"_id"`
	Name      string    `bson:"name"`
	OwnerID   uuid.UUID `bson:"ownerId"`
	Columns   int       `bson:"columns"`
	Rows      int       `bson:"rows"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"createdAt"`
}

// MazeConfig holds parameters for registering a maze.
type MazeConfig struct {
	ID      uuid.UUID
	Name    string
	OwnerID uuid.UUID
	Columns int
	Rows    int
	Content string
}

// NewMaze creates a Maze after validating its name and content presence.
func NewMaze(config MazeConfig) (*Maze, error) {
	if err := validateMazeName(config.Name); err != nil {
		return nil, err
	}
	if config.Content == "" {
		return nil, errors.New("maze content missing")
	}

	return &Maze{
		ID:        config.ID,
		Name:      config.Name,
		OwnerID:   config.OwnerID,
		Columns:   config.Columns,
		Rows:      config.Rows,
		Content:   config.Content,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// validateMazeName validates a maze's display name.
func validateMazeName(name string) error {
	if len(name) < minMazeNameLength {
		return errors.New("maze name too short")
	}
	if len(name) > maxMazeNameLength {
		return errors.New("maze name too long")
	}
	if !mazeNameRegex.MatchString(name) {
		return errors.New("invalid maze name format")
	}
	return nil
}
