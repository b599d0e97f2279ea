// internal/app/store/downloads/store.go
package downloads

import (
	"context"
	"time"

	"github.com/robinaudi/deckhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages the append-only downloads collection. Entries are written
// once per successful gate pass and never mutated or deleted by this system.
type Store struct {
	c *mongo.Collection
}

// New creates a downloads store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("downloads")}
}

// EnsureIndexes creates the indexes backing the quota check and the admin
// log view.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Quota check: entries for one uid within a time window.
		{
			Keys: bson.D{
				{Key: "uid", Value: 1},
				{Key: "timestamp", Value: -1},
			},
		},
		// Admin log view: most recent first.
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Append records one download log entry.
func (s *Store) Append(ctx context.Context, entry models.DownloadLogEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, entry)
	return err
}

// CountSince returns how many entries exist for uid with a timestamp after
// the given instant. The gate's quota check only needs existence, but the
// count is as cheap and easier to assert on.
func (s *Store) CountSince(ctx context.Context, uid string, since time.Time) (int64, error) {
	filter := bson.M{
		"uid":       uid,
		"timestamp": bson.M{"$gt": since},
	}
	return s.c.CountDocuments(ctx, filter)
}

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int64) ([]models.DownloadLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.DownloadLogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
