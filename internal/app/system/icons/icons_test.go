// internal/app/system/icons/icons_test.go
package icons_test

import (
	"testing"

	"github.com/robinaudi/deckhub/internal/app/system/icons"
)

func TestLookup(t *testing.T) {
	ic, ok := icons.Lookup("Target")
	if !ok || ic.Name != "Target" {
		t.Errorf("known icon: got %+v ok=%v", ic, ok)
	}

	ic, ok = icons.Lookup("Sparkles")
	if ok {
		t.Error("unknown icon must report ok=false")
	}
	if ic != icons.NoIcon {
		t.Errorf("unknown icon must fall back to NoIcon, got %+v", ic)
	}

	if _, ok := icons.Lookup(""); ok {
		t.Error("empty name must report ok=false")
	}
}

func TestValidateSeed(t *testing.T) {
	if err := icons.ValidateSeed(); err != nil {
		t.Fatalf("every seed icon must resolve: %v", err)
	}
}
