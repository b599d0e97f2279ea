// internal/app/features/download/gate.go

// Package download implements the export gate: the fixed sequence
// survey → conditional sign-in → daily quota → audit log → PDF export.
// Each step talks to a collaborator through a narrow interface so the
// sequence can be exercised end to end with fakes.
package download

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/app/system/auth"
	"github.com/robinaudi/deckhub/internal/domain/models"
)

// Sentinel failures for the gate steps, in the order they can occur.
var (
	// ErrValidation: the survey submission is invalid. Nothing ran.
	ErrValidation = errors.New("survey validation failed")
	// ErrModeClosed: downloads are switched off. Nothing ran.
	ErrModeClosed = errors.New("downloads are closed")
	// ErrAuthFailed: login mode, no identity, and both sign-in paths failed.
	ErrAuthFailed = errors.New("sign-in failed")
	// ErrRateLimited: the identity already exported within 24 hours.
	ErrRateLimited = errors.New("download quota exhausted")
	// ErrExportFailed: rendering or assembly broke after the audit write.
	ErrExportFailed = errors.New("export failed")
)

// quotaWindow is the rolling period for the one-export-per-account limit.
const quotaWindow = 24 * time.Hour

// SettingsReader fetches the current deck settings.
type SettingsReader interface {
	Get(ctx context.Context) (models.DeckSettings, error)
}

// QuotaCounter counts prior downloads for an identity since a cutoff.
type QuotaCounter interface {
	CountSince(ctx context.Context, uid string, since time.Time) (int64, error)
}

// AuditAppender records a completed gate pass.
type AuditAppender interface {
	Append(ctx context.Context, entry models.DownloadLogEntry) error
}

// SlideSource yields the deck to export.
type SlideSource interface {
	Slides(ctx context.Context) ([]models.Slide, error)
}

// Exporter produces the PDF artifact.
type Exporter interface {
	Export(ctx context.Context, slides []models.Slide) ([]byte, error)
}

// IdentityProvider acquires an identity mid-workflow when login mode finds
// none. SignInInteractive is tried first; SignInRedirect is the fallback.
type IdentityProvider interface {
	SignInInteractive(ctx context.Context) (*auth.SessionUser, error)
	SignInRedirect(ctx context.Context) (*auth.SessionUser, error)
}

// Request is one user-initiated download attempt.
type Request struct {
	SourceKey string
	OtherText string
	User      *auth.SessionUser // nil when the session is anonymous
	UserAgent string
}

// Artifact is a finished export.
type Artifact struct {
	Data     []byte
	Filename string
}

// Gate runs the download workflow. Side effects are strictly ordered:
// validation and the mode gate touch nothing, sign-in precedes the quota
// check, the quota check precedes the audit write, and the audit write
// precedes export. The audit write is best effort; export failure is fatal.
type Gate struct {
	Settings SettingsReader
	Quota    QuotaCounter
	Audit    AuditAppender
	Slides   SlideSource
	Exporter Exporter
	Identity IdentityProvider
	Filename string
	Log      *zap.Logger

	// now is swappable for quota-window tests.
	now func() time.Time
}

// NewGate wires a gate over its collaborators.
func NewGate(settings SettingsReader, quota QuotaCounter, audit AuditAppender,
	slides SlideSource, exporter Exporter, identity IdentityProvider,
	filename string, logger *zap.Logger) *Gate {
	return &Gate{
		Settings: settings,
		Quota:    quota,
		Audit:    audit,
		Slides:   slides,
		Exporter: exporter,
		Identity: identity,
		Filename: filename,
		Log:      logger,
		now:      time.Now,
	}
}

// Run executes one pass of the workflow.
func (g *Gate) Run(ctx context.Context, req Request) (*Artifact, error) {
	source, err := NormalizeSource(req.SourceKey, req.OtherText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// Settings fetch failure degrades to the default (login) rather than
	// blocking every download on a flaky read.
	settings, err := g.Settings.Get(ctx)
	if err != nil {
		g.Log.Warn("gate: settings fetch failed, assuming login mode", zap.Error(err))
		settings = models.DeckSettings{PDFDownloadMode: models.DefaultDownloadMode}
	}
	mode := settings.PDFDownloadMode
	if mode == models.DownloadModeClosed {
		return nil, ErrModeClosed
	}

	user := req.User
	if mode == models.DownloadModeLogin && user == nil {
		user, err = g.signIn(ctx)
		if err != nil {
			return nil, err
		}
	}

	// Anonymous identities are never rate limited. A failed quota read
	// counts as no prior entries: the limit is a courtesy throttle, and a
	// flaky log query must not cost the visitor their PDF.
	if user != nil {
		since := g.now().Add(-quotaWindow)
		n, err := g.Quota.CountSince(ctx, user.ID, since)
		if err != nil {
			g.Log.Warn("gate: quota read failed, allowing download",
				zap.Error(err), zap.String("uid", user.ID))
		} else if n > 0 {
			return nil, ErrRateLimited
		}
	}

	entry := models.DownloadLogEntry{
		Timestamp: g.now(),
		UserAgent: req.UserAgent,
		Source:    source,
		Mode:      mode,
	}
	if entry.UserAgent == "" {
		entry.UserAgent = "Unknown"
	}
	if user != nil {
		entry.UID = user.ID
		entry.Email = user.Email
	} else {
		entry.UID = models.AnonymousUID
		entry.Email = models.AnonymousEmail
	}
	if err := g.Audit.Append(ctx, entry); err != nil {
		// Best effort: a lost log line must not cost the visitor their PDF.
		g.Log.Warn("gate: audit write failed", zap.Error(err), zap.String("uid", entry.UID))
	}

	slides, err := g.Slides.Slides(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load deck: %v", ErrExportFailed, err)
	}
	data, err := g.Exporter.Export(ctx, slides)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	g.Log.Info("download gate passed",
		zap.String("uid", entry.UID),
		zap.String("source", source),
		zap.String("mode", mode))

	return &Artifact{Data: data, Filename: g.Filename}, nil
}

// signIn tries the interactive path, then the redirect fallback.
func (g *Gate) signIn(ctx context.Context) (*auth.SessionUser, error) {
	if g.Identity == nil {
		return nil, ErrAuthFailed
	}
	u, err := g.Identity.SignInInteractive(ctx)
	if err == nil && u != nil {
		return u, nil
	}
	if err != nil {
		g.Log.Warn("gate: interactive sign-in failed, trying redirect", zap.Error(err))
	}
	u, err = g.Identity.SignInRedirect(ctx)
	if err != nil || u == nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	return u, nil
}
