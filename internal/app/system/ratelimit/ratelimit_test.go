// internal/app/system/ratelimit/ratelimit_test.go
package ratelimit_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/robinaudi/deckhub/internal/app/system/ratelimit"
)

func TestAllowWithinLimit(t *testing.T) {
	l := ratelimit.New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("fourth attempt should be denied")
	}

	// Other keys have their own windows.
	if !l.Allow("10.0.0.2") {
		t.Error("a different key must not share the window")
	}
}

func TestReset(t *testing.T) {
	l := ratelimit.New(1, time.Minute)

	if !l.Allow("k") {
		t.Fatal("first attempt should pass")
	}
	if l.Allow("k") {
		t.Fatal("second attempt should be denied")
	}

	l.Reset("k")
	if !l.Allow("k") {
		t.Error("Reset must reopen the window")
	}
}

func TestWindowExpiry(t *testing.T) {
	l := ratelimit.New(1, 30*time.Millisecond)

	l.Allow("k")
	if l.Allow("k") {
		t.Fatal("window should be exhausted")
	}

	time.Sleep(60 * time.Millisecond)
	if !l.Allow("k") {
		t.Error("an expired window must reset")
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.9:4123"
	if ip := ratelimit.ClientIP(r); ip != "192.0.2.9" {
		t.Errorf("remote addr: got %q", ip)
	}

	r.Header.Set("X-Real-IP", "203.0.113.7")
	if ip := ratelimit.ClientIP(r); ip != "203.0.113.7" {
		t.Errorf("x-real-ip: got %q", ip)
	}

	r.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
	if ip := ratelimit.ClientIP(r); ip != "198.51.100.4" {
		t.Errorf("x-forwarded-for: got %q", ip)
	}
}
