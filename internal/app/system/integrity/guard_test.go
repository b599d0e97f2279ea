// internal/app/system/integrity/guard_test.go
package integrity_test

import (
	"testing"
	"time"

	"github.com/robinaudi/deckhub/internal/app/system/integrity"
	"github.com/robinaudi/deckhub/internal/domain/models"
	"github.com/robinaudi/deckhub/internal/testutil"
	"go.uber.org/zap"
)

func TestCorrupted(t *testing.T) {
	if integrity.Corrupted(models.DefaultDeck()) {
		t.Error("the seed deck must pass the corruption check")
	}
	if !integrity.Corrupted(nil) {
		t.Error("an empty collection is corrupted")
	}

	deck := models.DefaultDeck()
	deck[0].Title = ""
	if !integrity.Corrupted(deck) {
		t.Error("a first slide without a title is corrupted")
	}

	deck = models.DefaultDeck()
	deck[0].Content = nil
	if !integrity.Corrupted(deck) {
		t.Error("a first slide without content is corrupted")
	}

	deck = models.DefaultDeck()
	deck[0].Type = models.SlideConcept
	if !integrity.Corrupted(deck) {
		t.Error("a concept-typed first slide is corrupted")
	}

	// Later slides are outside the heuristic.
	deck = models.DefaultDeck()
	deck[4].Title = ""
	deck[4].Type = models.SlideConcept
	if integrity.Corrupted(deck) {
		t.Error("only the first slide is inspected")
	}
}

func TestCheckClean(t *testing.T) {
	repairer := testutil.NewFakeRepairer(nil)
	guard := integrity.NewGuard(repairer, zap.NewNop())

	if got := guard.Check(models.DefaultDeck(), true); got != integrity.Clean {
		t.Fatalf("disposition: got %v, want Clean", got)
	}
	select {
	case <-repairer.Seeded:
		t.Error("a clean deck must not trigger a repair")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCheckMaintenanceWithoutAuthorization(t *testing.T) {
	repairer := testutil.NewFakeRepairer(nil)
	guard := integrity.NewGuard(repairer, zap.NewNop())

	if got := guard.Check(nil, false); got != integrity.Maintenance {
		t.Fatalf("disposition: got %v, want Maintenance", got)
	}
	select {
	case <-repairer.Seeded:
		t.Error("unauthorized sessions must not trigger a repair")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCheckRepairing(t *testing.T) {
	repairer := testutil.NewFakeRepairer(nil)
	guard := integrity.NewGuard(repairer, zap.NewNop())

	if got := guard.Check(nil, true); got != integrity.Repairing {
		t.Fatalf("disposition: got %v, want Repairing", got)
	}
	select {
	case <-repairer.Seeded:
	case <-time.After(2 * time.Second):
		t.Fatal("repair was never fired")
	}
}
