// internal/app/store/content/contentstore.go
package content

import (
	"context"
	"errors"
	"time"

	"github.com/robinaudi/deckhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The whole deck lives in a single document. There is exactly one content
// document in the system; DocID is its fixed key.
const DocID = "main_slides"

// ErrRevisionMismatch is returned by Replace when the stored document moved
// since the caller loaded it. The editor surfaces this as a reload prompt
// instead of silently overwriting the other writer's publish.
var ErrRevisionMismatch = errors.New("content: document changed since load")

// Doc is the stored shape of content/main_slides.
type Doc struct {
	ID        string         `bson:"_id"`
	Slides    []models.Slide `bson:"slides"`
	Revision  int64          `bson:"revision"`
	UpdatedAt time.Time      `bson:"updated_at"`
}

// Store provides access to the content collection.
type Store struct {
	c *mongo.Collection
}

// New creates a content store bound to the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("content")}
}

// Get returns the current deck document. ok is false when no document has
// been written yet; callers fall back to the default seed deck.
func (s *Store) Get(ctx context.Context) (Doc, bool, error) {
	var doc Doc
	err := s.c.FindOne(ctx, bson.M{"_id": DocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return Doc{ID: DocID}, false, nil
	}
	if err != nil {
		return Doc{}, false, err
	}
	return doc, true, nil
}

// Slides returns the current deck, falling back to the default seed when no
// document has been written yet. This is the read path the export gate uses.
func (s *Store) Slides(ctx context.Context) ([]models.Slide, error) {
	doc, ok, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.DefaultDeck(), nil
	}
	return doc.Slides, nil
}

// Replace overwrites the whole deck. When expectedRev >= 0 the write only
// succeeds if the stored revision still matches; pass a negative revision to
// skip the check (integrity repair and reset must win unconditionally).
// The document is created if absent.
func (s *Store) Replace(ctx context.Context, slides []models.Slide, expectedRev int64) error {
	filter := bson.M{"_id": DocID}
	if expectedRev >= 0 {
		filter["revision"] = expectedRev
	}
	update := bson.M{
		"$set": bson.M{
			"slides":     slides,
			"updated_at": time.Now().UTC(),
		},
		"$inc": bson.M{"revision": int64(1)},
	}
	_, err := s.c.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		// A conditional write against a document whose revision moved falls
		// through to the upsert insert and collides on _id.
		if expectedRev >= 0 && mongo.IsDuplicateKeyError(err) {
			return ErrRevisionMismatch
		}
		return err
	}
	return nil
}

// Seed unconditionally overwrites the deck with the default slide set.
// Used on first run, by the editor's reset action, and by the integrity
// guard's auto-repair. Idempotent: repeated calls leave the same slides.
func (s *Store) Seed(ctx context.Context) error {
	return s.Replace(ctx, models.DefaultDeck(), -1)
}
