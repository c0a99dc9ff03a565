package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExplorerRepo handles the persistence of explorer models.
type ExplorerRepo struct {
	collection *mongo.Collection
}

// NewExplorerRepo creates a new ExplorerRepo with the given MongoDB client, database name, and collection name.
func NewExplorerRepo(client *mongo.Client, dbName, collectionName string) *ExplorerRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &ExplorerRepo{
		collection: collection,
	}
}

// EnsureIndexes makes usernames unique.
func (e *ExplorerRepo) EnsureIndexes(ctx context.Context) error {
	_, err := e.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Save inserts or updates an explorer in the repository.
// If the explorer already exists, it updates the existing record.
// If the explorer does not exist, it adds a new record.
func (e *ExplorerRepo) Save(explorer *dmn.Explorer) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": explorer.ID}
	set := bson.M{
		"username":     explorer.Username,
		"passwordHash": explorer.PasswordHash,
		"updatedAt":    time.Now(),
	}
	if explorer.BestReward != nil {
		set["bestReward"] = *explorer.BestReward
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": explorer.CreatedAt},
	}

	opts := options.Update().SetUpsert(true)
	_, err := e.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return dmn.ErrUsernameConflict
		}
		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

// ByID retrieves an explorer by their ID.
// Returns dmn.ErrExplorerNotFound if the explorer is not found.
func (e *ExplorerRepo) ByID(id uuid.UUID) (*dmn.Explorer, error) {
	return e.findOne(bson.M{"_id": id})
}

// ByUsername retrieves an explorer by their username.
// Returns dmn.ErrExplorerNotFound if the explorer is not found.
func (e *ExplorerRepo) ByUsername(username string) (*dmn.Explorer, error) {
	return e.findOne(bson.M{"username": username})
}

func (e *ExplorerRepo) findOne(filter bson.M) (*dmn.Explorer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var explorer dmn.Explorer
	if err := e.collection.FindOne(ctx, filter).Decode(&explorer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrExplorerNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &explorer, nil
}
