// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"time"

	"github.com/robinaudi/deckhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The single settings document's fixed key.
const DocID = "global"

// Store provides access to the settings collection.
type Store struct {
	c *mongo.Collection
}

// New creates a settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("settings")}
}

// Get returns the global deck settings. If no settings document exists, the
// defaults are returned (download mode "login") with no error.
func (s *Store) Get(ctx context.Context) (models.DeckSettings, error) {
	var settings models.DeckSettings
	err := s.c.FindOne(ctx, bson.M{"_id": DocID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return models.DeckSettings{PDFDownloadMode: models.DefaultDownloadMode}, nil
	}
	if err != nil {
		return models.DeckSettings{}, err
	}
	if !models.ValidDownloadMode(settings.PDFDownloadMode) {
		settings.PDFDownloadMode = models.DefaultDownloadMode
	}
	return settings, nil
}

// Save updates the global settings. Uses upsert so it works whether the
// document exists or not. No history is kept.
func (s *Store) Save(ctx context.Context, settings models.DeckSettings) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"pdfDownloadMode":  settings.PDFDownloadMode,
			"updated_at":       now,
			"updated_by_email": settings.UpdatedByEmail,
		},
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": DocID}, update, options.Update().SetUpsert(true))
	return err
}
