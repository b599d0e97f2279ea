// internal/domain/models/settings.go
package models

import "time"

// PDF download modes.
const (
	DownloadModeOpen   = "open"   // anyone may export, no sign-in
	DownloadModeLogin  = "login"  // export requires a Google identity
	DownloadModeClosed = "closed" // export disabled entirely
)

// DefaultDownloadMode is used whenever the settings document is absent or
// unreadable. Requiring sign-in is the safe fallback.
const DefaultDownloadMode = DownloadModeLogin

// DeckSettings is the single settings/global document.
type DeckSettings struct {
	PDFDownloadMode string     `bson:"pdfDownloadMode" json:"pdfDownloadMode"`
	UpdatedAt       *time.Time `bson:"updated_at,omitempty" json:"-"`
	UpdatedByEmail  string     `bson:"updated_by_email,omitempty" json:"-"`
}

// ValidDownloadMode reports whether mode is one of the three known modes.
func ValidDownloadMode(mode string) bool {
	switch mode {
	case DownloadModeOpen, DownloadModeLogin, DownloadModeClosed:
		return true
	}
	return false
}
