// internal/app/features/viewer/hub_test.go
package viewer_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/app/features/viewer"
	"github.com/robinaudi/deckhub/internal/app/store/content"
	"github.com/robinaudi/deckhub/internal/domain/models"
)

func waitForRevision(t *testing.T, h *viewer.Hub, rev int64) content.Snapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if snap := h.Latest(); snap.Revision == rev {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("revision %d never arrived", rev)
	return content.Snapshot{}
}

func TestHubPrimedWithSeed(t *testing.T) {
	h := viewer.NewHub(zap.NewNop())

	snap := h.Latest()
	if len(snap.Slides) != len(models.DefaultDeck()) {
		t.Errorf("primed deck: got %d slides", len(snap.Slides))
	}
	if !snap.Offline {
		t.Error("the primed snapshot must be marked offline")
	}
}

func TestHubSubscribeDeliversLatest(t *testing.T) {
	h := viewer.NewHub(zap.NewNop())

	ch, cancel := h.Subscribe()
	defer cancel()

	select {
	case snap := <-ch:
		if !snap.Offline {
			t.Error("a fresh subscriber must receive the primed snapshot")
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the initial snapshot")
	}
}

func TestHubBroadcastAndStaleDisplacement(t *testing.T) {
	h := viewer.NewHub(zap.NewNop())

	ctx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()
	src := make(chan content.Snapshot)
	go h.Run(ctx, src)

	sub, cancel := h.Subscribe()
	defer cancel()

	// The subscriber buffer is one deep; do not drain it, so each broadcast
	// must displace the previous snapshot.
	src <- content.Snapshot{Slides: models.DefaultDeck()[:3], Revision: 1}
	waitForRevision(t, h, 1)
	src <- content.Snapshot{Slides: models.DefaultDeck()[:5], Revision: 2}
	waitForRevision(t, h, 2)

	select {
	case snap := <-sub:
		if snap.Revision != 2 {
			t.Errorf("subscriber saw revision %d, want the newest (2)", snap.Revision)
		}
		if len(snap.Slides) != 5 {
			t.Errorf("slides: got %d, want 5", len(snap.Slides))
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber never received a broadcast")
	}
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	h := viewer.NewHub(zap.NewNop())

	ctx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()
	src := make(chan content.Snapshot)
	go h.Run(ctx, src)

	sub, cancel := h.Subscribe()
	<-sub // drain the primed snapshot
	cancel()

	src <- content.Snapshot{Slides: models.DefaultDeck(), Revision: 1}
	waitForRevision(t, h, 1)

	select {
	case snap := <-sub:
		t.Errorf("cancelled subscriber still received revision %d", snap.Revision)
	default:
	}
}
