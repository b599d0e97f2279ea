// internal/app/features/viewer/hub.go
package viewer

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/app/store/content"
	"github.com/robinaudi/deckhub/internal/domain/models"
)

// Hub owns the single content subscription and fans snapshots out to viewer
// sessions. Each subscriber channel is buffered one deep and stale snapshots
// are displaced, so a slow socket never sees anything but the newest deck.
type Hub struct {
	log *zap.Logger

	mu     sync.RWMutex
	latest content.Snapshot
	subs   map[chan content.Snapshot]struct{}
}

// NewHub creates a hub primed with the default deck so pages rendered before
// the first snapshot arrives still have content.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		log:    logger,
		latest: content.Snapshot{Slides: models.DefaultDeck(), Offline: true},
		subs:   make(map[chan content.Snapshot]struct{}),
	}
}

// Run consumes the store subscription until it closes or ctx is cancelled.
// Call once, in a goroutine, during startup.
func (h *Hub) Run(ctx context.Context, snapshots <-chan content.Snapshot) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			h.broadcast(snap)
		}
	}
}

func (h *Hub) broadcast(snap content.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = snap
	for ch := range h.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
	h.log.Debug("content snapshot broadcast",
		zap.Int("slides", len(snap.Slides)),
		zap.Int("sessions", len(h.subs)),
		zap.Bool("offline", snap.Offline))
}

// Latest returns the most recently delivered snapshot.
func (h *Hub) Latest() content.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// Subscribe registers a session. The returned cancel must be called on
// session teardown.
func (h *Hub) Subscribe() (<-chan content.Snapshot, func()) {
	ch := make(chan content.Snapshot, 1)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	ch <- h.latest
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}
	return ch, cancel
}
