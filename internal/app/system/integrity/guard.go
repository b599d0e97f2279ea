// internal/app/system/integrity/guard.go

// Package integrity gates the deck between the content subscription and the
// viewer. The check is a narrow heuristic, not schema validation: it exists
// to catch the one known failure mode (the editor leaving slide 0 in the
// wrong shape), which crashes the renderer. Publish-time validation in the
// CMS is the stricter layer.
package integrity

import (
	"context"
	"sync"
	"time"

	"github.com/robinaudi/deckhub/internal/domain/models"
	"go.uber.org/zap"
)

// Corrupted evaluates the corruption predicate: an empty collection, or a
// first slide without a title, without content, or tagged "concept" instead
// of "intro".
func Corrupted(slides []models.Slide) bool {
	if len(slides) == 0 {
		return true
	}
	first := slides[0]
	if first.Title == "" || len(first.Content) == 0 {
		return true
	}
	return first.Type == models.SlideConcept
}

// Disposition is the guard's decision for one snapshot.
type Disposition int

const (
	// Clean: pass the collection through to consumers unchanged.
	Clean Disposition = iota
	// Repairing: corrupted, an authorized actor is present, and a repair
	// write has been fired.
	Repairing
	// Maintenance: corrupted and nobody can repair; render the recovery
	// state and wait for the next snapshot.
	Maintenance
)

// Repairer overwrites the stored deck with the default seed.
type Repairer interface {
	Seed(ctx context.Context) error
}

// Guard evaluates snapshots and triggers repairs. A repair is
// fire-and-forget: failures are logged, never retried automatically; the
// next corrupted snapshot will trigger a fresh attempt.
type Guard struct {
	repairer Repairer
	log      *zap.Logger

	mu       sync.Mutex
	inflight bool
}

// NewGuard creates a guard writing repairs through the given repairer.
func NewGuard(repairer Repairer, logger *zap.Logger) *Guard {
	return &Guard{repairer: repairer, log: logger}
}

// Check evaluates one snapshot. authorized reports whether an authenticated
// identity is present; unauthenticated repair writes would be rejected by
// the store's access policy anyway, so none are attempted.
func (g *Guard) Check(slides []models.Slide, authorized bool) Disposition {
	if !Corrupted(slides) {
		return Clean
	}
	if !authorized {
		return Maintenance
	}
	g.repair()
	return Repairing
}

// repair fires a single seed write. Concurrent corrupted snapshots collapse
// into one in-flight attempt.
func (g *Guard) repair() {
	g.mu.Lock()
	if g.inflight {
		g.mu.Unlock()
		return
	}
	g.inflight = true
	g.mu.Unlock()

	go func() {
		defer func() {
			g.mu.Lock()
			g.inflight = false
			g.mu.Unlock()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		g.log.Warn("content corrupted, auto-repairing with default deck")
		if err := g.repairer.Seed(ctx); err != nil {
			g.log.Error("auto-repair failed", zap.Error(err))
			return
		}
		g.log.Info("auto-repair successful")
	}()
}
