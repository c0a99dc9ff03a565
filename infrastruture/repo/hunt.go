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

// HuntRepo stores hunts in MongoDB.
type HuntRepo struct {
	collection *mongo.Collection
}

// NewHuntRepo creates a new HuntRepo with the given MongoDB client, database name, and collection name.
func NewHuntRepo(client *mongo.Client, dbName, collectionName string) *HuntRepo {
	return &HuntRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes speeds up per-explorer history listing.
func (h *HuntRepo) EnsureIndexes(ctx context.Context) error {
	_, err := h.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "explorerId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Save inserts a hunt, replacing any hunt with the same ID.
func (h *HuntRepo) Save(hunt *dmn.Hunt) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := h.collection.ReplaceOne(ctx, bson.M{"_id": hunt.ID}, hunt, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

// ByID retrieves a hunt by its ID.
func (h *HuntRepo) ByID(id uuid.UUID) (*dmn.Hunt, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var hunt dmn.Hunt
	if err := h.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&hunt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrHuntNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &hunt, nil
}

// ByExplorer lists an explorer's hunts, most recent first.
func (h *HuntRepo) ByExplorer(explorerID uuid.UUID, limit int) ([]*dmn.Hunt, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := h.collection.Find(ctx, bson.M{"explorerId": explorerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	hunts := make([]*dmn.Hunt, 0)
	if err := cursor.All(ctx, &hunts); err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return hunts, nil
}
