// internal/domain/models/downloadlog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Identity placeholders written when no authenticated user is present.
const (
	AnonymousUID   = "anonymous"
	AnonymousEmail = "anonymous@guest"
)

// DownloadLogEntry is one append-only record in the downloads collection.
// Entries are written once per successful gate pass and never mutated.
type DownloadLogEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UID       string             `bson:"uid" json:"uid"`
	Email     string             `bson:"email" json:"email"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	UserAgent string             `bson:"userAgent" json:"userAgent"`
	Source    string             `bson:"source" json:"source"`
	Mode      string             `bson:"mode" json:"mode"`
}

// Anonymous reports whether the entry was written without an identity.
func (e DownloadLogEntry) Anonymous() bool { return e.UID == AnonymousUID }
