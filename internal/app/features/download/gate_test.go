// internal/app/features/download/gate_test.go
package download

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/app/system/auth"
	"github.com/robinaudi/deckhub/internal/domain/models"
	"github.com/robinaudi/deckhub/internal/testutil"
)

type gateFakes struct {
	settings *testutil.FakeSettings
	quota    *testutil.FakeQuota
	audit    *testutil.FakeAudit
	slides   *testutil.FakeSlides
	exporter *testutil.FakeExporter
	identity *testutil.FakeIdentity
}

func newTestGate(mode string) (*Gate, *gateFakes) {
	f := &gateFakes{
		settings: &testutil.FakeSettings{Mode: mode},
		quota:    &testutil.FakeQuota{},
		audit:    &testutil.FakeAudit{},
		slides:   &testutil.FakeSlides{Deck: models.DefaultDeck()},
		exporter: &testutil.FakeExporter{Data: []byte("%PDF-fake")},
		identity: &testutil.FakeIdentity{},
	}
	g := NewGate(f.settings, f.quota, f.audit, f.slides, f.exporter,
		f.identity, "deck.pdf", zap.NewNop())
	return g, f
}

func validRequest(user *auth.SessionUser) Request {
	return Request{SourceKey: "linkedin-feed", User: user, UserAgent: "test-agent"}
}

func TestGateValidationAbortsEverything(t *testing.T) {
	g, f := newTestGate(models.DownloadModeOpen)

	_, err := g.Run(context.Background(), Request{SourceKey: ""})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
	if f.exporter.Calls != 0 || len(f.audit.Entries) != 0 || f.quota.Calls != 0 {
		t.Error("a rejected survey must touch nothing")
	}
}

func TestGateClosedMode(t *testing.T) {
	g, f := newTestGate(models.DownloadModeClosed)

	_, err := g.Run(context.Background(), validRequest(&auth.SessionUser{ID: "u1"}))
	if !errors.Is(err, ErrModeClosed) {
		t.Fatalf("got %v, want ErrModeClosed", err)
	}
	if f.quota.Calls != 0 {
		t.Error("closed mode must not reach the quota check")
	}
	if len(f.audit.Entries) != 0 {
		t.Error("closed mode must not write an audit entry")
	}
	if f.exporter.Calls != 0 {
		t.Error("closed mode must not export")
	}
}

func TestGateQuotaExhausted(t *testing.T) {
	g, f := newTestGate(models.DownloadModeLogin)
	f.quota.Count = 1
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return now }

	user := &auth.SessionUser{ID: "u-42", Email: "u42@example.com"}
	_, err := g.Run(context.Background(), validRequest(user))
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("got %v, want ErrRateLimited", err)
	}
	if f.quota.LastUID != "u-42" {
		t.Errorf("quota queried for %q", f.quota.LastUID)
	}
	if !f.quota.LastSince.Equal(now.Add(-24 * time.Hour)) {
		t.Errorf("quota window: got %v, want 24h before now", f.quota.LastSince)
	}
	if len(f.audit.Entries) != 0 || f.exporter.Calls != 0 {
		t.Error("a rate-limited request must not log or export")
	}
}

func TestGateQuotaReadFailureAllows(t *testing.T) {
	g, f := newTestGate(models.DownloadModeOpen)
	f.quota.Err = errors.New("transient read failure")

	user := &auth.SessionUser{ID: "u-5", Email: "u5@example.com"}
	art, err := g.Run(context.Background(), validRequest(user))
	if err != nil {
		t.Fatalf("a failed quota read must not block the download: %v", err)
	}
	if f.exporter.Calls != 1 || art == nil {
		t.Error("export must still run")
	}
	if len(f.audit.Entries) != 1 || f.audit.Entries[0].UID != "u-5" {
		t.Error("the pass must still be logged under the identity")
	}
}

func TestGateStaleEntryOutsideWindow(t *testing.T) {
	g, f := newTestGate(models.DownloadModeLogin)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return now }

	// The count covers the last 24 hours only; an entry from 25 hours ago
	// falls outside the cutoff and contributes nothing.
	f.quota.Count = 0

	user := &auth.SessionUser{ID: "u-42", Email: "u42@example.com"}
	art, err := g.Run(context.Background(), validRequest(user))
	if err != nil {
		t.Fatalf("an entry older than the window must not block: %v", err)
	}
	if f.quota.Calls != 1 {
		t.Errorf("quota calls: got %d, want 1", f.quota.Calls)
	}
	if !f.quota.LastSince.Equal(now.Add(-24 * time.Hour)) {
		t.Errorf("quota window: got %v, want 24h before now", f.quota.LastSince)
	}
	if f.exporter.Calls != 1 || art == nil {
		t.Error("export must run")
	}
	if len(f.audit.Entries) != 1 {
		t.Errorf("audit entries: got %d, want 1", len(f.audit.Entries))
	}
}

func TestGateAnonymousOpenModeSkipsQuota(t *testing.T) {
	g, f := newTestGate(models.DownloadModeOpen)

	art, err := g.Run(context.Background(), Request{SourceKey: "dadafly"})
	if err != nil {
		t.Fatal(err)
	}
	if f.quota.Calls != 0 {
		t.Error("anonymous downloads are never rate limited")
	}
	if f.exporter.Calls != 1 {
		t.Errorf("exporter calls: got %d, want 1", f.exporter.Calls)
	}
	if art.Filename != "deck.pdf" || string(art.Data) != "%PDF-fake" {
		t.Errorf("artifact: %+v", art)
	}

	if len(f.audit.Entries) != 1 {
		t.Fatalf("audit entries: got %d, want 1", len(f.audit.Entries))
	}
	entry := f.audit.Entries[0]
	if entry.UID != models.AnonymousUID || entry.Email != models.AnonymousEmail {
		t.Errorf("anonymous identity: uid=%q email=%q", entry.UID, entry.Email)
	}
	if entry.UserAgent != "Unknown" {
		t.Errorf("missing user agent must default to Unknown, got %q", entry.UserAgent)
	}
	if entry.Source != "大大帶我飛 (DaDaFly)" {
		t.Errorf("source: got %q", entry.Source)
	}
	if entry.Mode != models.DownloadModeOpen {
		t.Errorf("mode: got %q", entry.Mode)
	}
}

func TestGateAuditFailureStillExports(t *testing.T) {
	g, f := newTestGate(models.DownloadModeOpen)
	f.audit.Err = errors.New("collection unavailable")

	art, err := g.Run(context.Background(), validRequest(nil))
	if err != nil {
		t.Fatalf("a lost audit write must not fail the download: %v", err)
	}
	if f.exporter.Calls != 1 || art == nil {
		t.Error("export must still run")
	}
}

func TestGateExportFailureIsFatal(t *testing.T) {
	g, f := newTestGate(models.DownloadModeOpen)
	f.exporter.Err = errors.New("render broke")

	_, err := g.Run(context.Background(), validRequest(nil))
	if !errors.Is(err, ErrExportFailed) {
		t.Fatalf("got %v, want ErrExportFailed", err)
	}
}

func TestGateLoginModeAuthFailure(t *testing.T) {
	g, f := newTestGate(models.DownloadModeLogin)
	f.identity.InteractiveErr = errors.New("popup blocked")
	f.identity.RedirectErr = errors.New("redirect refused")

	_, err := g.Run(context.Background(), validRequest(nil))
	if !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("got %v, want ErrAuthFailed", err)
	}
	if f.quota.Calls != 0 || len(f.audit.Entries) != 0 || f.exporter.Calls != 0 {
		t.Error("a failed sign-in must abort before any side effect")
	}
}

func TestGateInteractiveThenRedirectFallback(t *testing.T) {
	g, f := newTestGate(models.DownloadModeLogin)
	f.identity.InteractiveErr = errors.New("popup blocked")
	f.identity.RedirectUser = &auth.SessionUser{ID: "u-7", Email: "u7@example.com"}

	_, err := g.Run(context.Background(), validRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.identity.Tried) != 2 || f.identity.Tried[0] != "interactive" || f.identity.Tried[1] != "redirect" {
		t.Errorf("sign-in order: %v", f.identity.Tried)
	}
	if f.quota.LastUID != "u-7" {
		t.Errorf("quota must use the acquired identity, got %q", f.quota.LastUID)
	}
	if len(f.audit.Entries) != 1 || f.audit.Entries[0].UID != "u-7" {
		t.Error("audit entry must carry the acquired identity")
	}
}

func TestGateSignedInUserSkipsSignIn(t *testing.T) {
	g, f := newTestGate(models.DownloadModeLogin)
	f.identity.InteractiveErr = errors.New("must not be called")

	user := &auth.SessionUser{ID: "u-9", Email: "u9@example.com"}
	if _, err := g.Run(context.Background(), validRequest(user)); err != nil {
		t.Fatal(err)
	}
	if len(f.identity.Tried) != 0 {
		t.Errorf("existing identity must skip sign-in, tried %v", f.identity.Tried)
	}
}

func TestGateSettingsFailureDegradesToLogin(t *testing.T) {
	g, f := newTestGate("")
	f.settings.Err = errors.New("settings read failed")
	f.identity.InteractiveUser = &auth.SessionUser{ID: "u-3", Email: "u3@example.com"}

	_, err := g.Run(context.Background(), validRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	// Sign-in ran, proving the gate fell back to login mode.
	if len(f.identity.Tried) == 0 {
		t.Error("degraded mode must still require sign-in")
	}
	if len(f.audit.Entries) != 1 || f.audit.Entries[0].Mode != models.DownloadModeLogin {
		t.Error("audit entry must record the degraded mode")
	}
}
