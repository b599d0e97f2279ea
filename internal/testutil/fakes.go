// internal/testutil/fakes.go

// Package testutil provides fakes for the download gate's collaborator
// interfaces and small HTTP test helpers. The fakes record their calls so
// tests can assert on ordering and side effects.
package testutil

import (
	"context"
	"time"

	"github.com/robinaudi/deckhub/internal/app/system/auth"
	"github.com/robinaudi/deckhub/internal/domain/models"
)

// FakeSettings returns a fixed download mode or error.
type FakeSettings struct {
	Mode string
	Err  error
}

func (f *FakeSettings) Get(ctx context.Context) (models.DeckSettings, error) {
	if f.Err != nil {
		return models.DeckSettings{}, f.Err
	}
	return models.DeckSettings{PDFDownloadMode: f.Mode}, nil
}

// FakeQuota reports a fixed count and records the query.
type FakeQuota struct {
	Count     int64
	Err       error
	LastUID   string
	LastSince time.Time
	Calls     int
}

func (f *FakeQuota) CountSince(ctx context.Context, uid string, since time.Time) (int64, error) {
	f.Calls++
	f.LastUID = uid
	f.LastSince = since
	return f.Count, f.Err
}

// FakeAudit collects appended entries.
type FakeAudit struct {
	Entries []models.DownloadLogEntry
	Err     error
}

func (f *FakeAudit) Append(ctx context.Context, entry models.DownloadLogEntry) error {
	if f.Err != nil {
		return f.Err
	}
	f.Entries = append(f.Entries, entry)
	return nil
}

// FakeSlides serves a fixed deck.
type FakeSlides struct {
	Deck []models.Slide
	Err  error
}

func (f *FakeSlides) Slides(ctx context.Context) ([]models.Slide, error) {
	return f.Deck, f.Err
}

// FakeExporter returns fixed bytes and counts invocations.
type FakeExporter struct {
	Data  []byte
	Err   error
	Calls int
}

func (f *FakeExporter) Export(ctx context.Context, slides []models.Slide) ([]byte, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Data, nil
}

// FakeIdentity scripts the two sign-in paths and records the order they
// were tried in.
type FakeIdentity struct {
	InteractiveUser *auth.SessionUser
	InteractiveErr  error
	RedirectUser    *auth.SessionUser
	RedirectErr     error
	Tried           []string
}

func (f *FakeIdentity) SignInInteractive(ctx context.Context) (*auth.SessionUser, error) {
	f.Tried = append(f.Tried, "interactive")
	return f.InteractiveUser, f.InteractiveErr
}

func (f *FakeIdentity) SignInRedirect(ctx context.Context) (*auth.SessionUser, error) {
	f.Tried = append(f.Tried, "redirect")
	return f.RedirectUser, f.RedirectErr
}

// FakeRepairer records seed calls for integrity guard tests.
type FakeRepairer struct {
	Err    error
	Seeded chan struct{}
}

// NewFakeRepairer returns a repairer whose Seeded channel receives one value
// per Seed call.
func NewFakeRepairer(err error) *FakeRepairer {
	return &FakeRepairer{Err: err, Seeded: make(chan struct{}, 8)}
}

func (f *FakeRepairer) Seed(ctx context.Context) error {
	f.Seeded <- struct{}{}
	return f.Err
}
