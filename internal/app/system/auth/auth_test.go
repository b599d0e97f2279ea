// internal/app/system/auth/auth_test.go
package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/app/system/auth"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(testKey, "deckhub-test", "", false, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return sm
}

func TestNewSessionManagerEmptyKey(t *testing.T) {
	if _, err := auth.NewSessionManager("", "s", "", false, zap.NewNop()); err == nil {
		t.Error("an empty session key must be refused")
	}
}

func TestSignInRoundTrip(t *testing.T) {
	sm := newManager(t)

	// Sign in and capture the cookie.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	user := &auth.SessionUser{ID: "u-1", Name: "Robin", Email: "r@example.com", Provider: "google"}
	if err := sm.SignIn(rec, req, user); err != nil {
		t.Fatal(err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("SignIn set no cookie")
	}

	// Replay the cookie through the middleware.
	var got *auth.SessionUser
	handler := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	}))

	req = httptest.NewRequest("GET", "/cms", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("no user in context after replaying the session cookie")
	}
	if *got != *user {
		t.Errorf("round trip: got %+v, want %+v", got, user)
	}
}

func TestSignOut(t *testing.T) {
	sm := newManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/logout", nil)
	if err := sm.SignOut(rec, req); err != nil {
		t.Fatal(err)
	}
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			t.Errorf("sign-out cookie %s must expire, got MaxAge %d", c.Name, c.MaxAge)
		}
	}
}

func TestRequireSignedIn(t *testing.T) {
	sm := newManager(t)
	protected := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// API caller: plain 401.
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest("GET", "/cms/logs", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("api caller: got %d, want 401", rec.Code)
	}

	// Browser: redirect to login with a return target.
	req := httptest.NewRequest("GET", "/cms?tab=logs", nil)
	req.Header.Set("Accept", "text/html")
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("browser: got %d, want 303", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/login?return=") || !strings.Contains(loc, "tab%3Dlogs") {
		t.Errorf("redirect target: %q", loc)
	}

	// Signed-in request passes through.
	req = auth.WithTestUser(httptest.NewRequest("GET", "/cms", nil), &auth.SessionUser{ID: "u-1"})
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("signed-in: got %d, want 200", rec.Code)
	}
}
