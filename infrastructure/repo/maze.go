package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/maze-registry/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of maze records.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client,
// database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze in the repository.
func (m *MazeRepo) Save(maze *dmn.Maze) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": maze.ID}
	update := bson.M{
		"$set": bson.M{
			"name":    maze.Name,
			"ownerId": maze.OwnerID,
			"columns": maze.Columns,
			"rows":    maze.Rows,
			"content": maze.Content,
		},
		"$setOnInsert": bson.M{
			"createdAt": maze.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze by its ID.
func (m *MazeRepo) ByID(id uuid.UUID) (*dmn.Maze, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var maze dmn.Maze
	if err := m.collection.FindOne(ctx, filter).Decode(&maze); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("maze not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &maze, nil
}

// All lists every stored maze, newest first. The file content is left out
// of the projection; it is only needed for downloads, which go through
// ByID.
func (m *MazeRepo) All() ([]*dmn.Maze, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"content": 0})

	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	var mazes []*dmn.Maze
	if err := cursor.All(ctx, &mazes); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return mazes, nil
}

// Delete removes a maze by its ID.
func (m *MazeRepo) Delete(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	if result.DeletedCount == 0 {
		return errors.New("maze not found")
	}
	return nil
}
