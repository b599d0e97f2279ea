// internal/app/features/download/survey_test.go
package download_test

import (
	"strings"
	"testing"

	"github.com/robinaudi/deckhub/internal/app/features/download"
)

func TestNormalizeSourcePredefined(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"linkedin-feed", "LinkedIn 首頁 / 動態牆"},
		{"linkedin-meetup", "領英小聚 (活動)"},
		{"dadafly", "大大帶我飛 (DaDaFly)"},
	}
	for _, tc := range cases {
		got, err := download.NormalizeSource(tc.key, "")
		if err != nil {
			t.Errorf("%s: %v", tc.key, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestNormalizeSourceRejects(t *testing.T) {
	if _, err := download.NormalizeSource("", ""); err == nil {
		t.Error("missing selection must be rejected")
	}
	if _, err := download.NormalizeSource("instagram", ""); err == nil {
		t.Error("unknown key must be rejected")
	}
	if _, err := download.NormalizeSource("other", ""); err == nil {
		t.Error("empty free text must be rejected")
	}
	if _, err := download.NormalizeSource("other", "   "); err == nil {
		t.Error("whitespace-only free text must be rejected")
	}
}

func TestNormalizeSourceOtherLength(t *testing.T) {
	// The limit counts runes, not bytes.
	atLimit := strings.Repeat("聚", 50)
	got, err := download.NormalizeSource("other", atLimit)
	if err != nil {
		t.Fatalf("50 runes must pass: %v", err)
	}
	if got != "其他 - "+atLimit {
		t.Errorf("got %q", got)
	}

	if _, err := download.NormalizeSource("other", strings.Repeat("聚", 51)); err == nil {
		t.Error("51 runes must be rejected")
	}
}

func TestNormalizeSourceOtherTrims(t *testing.T) {
	got, err := download.NormalizeSource("other", "  朋友推薦  ")
	if err != nil {
		t.Fatal(err)
	}
	if got != "其他 - 朋友推薦" {
		t.Errorf("got %q", got)
	}
}
