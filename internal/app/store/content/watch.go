// internal/app/store/content/watch.go
package content

import (
	"context"
	"time"

	"github.com/robinaudi/deckhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Snapshot is a full, point-in-time copy of the deck as delivered by the
// store's subscription. Offline is set when the subscription is broken and
// the slides shown may be stale.
type Snapshot struct {
	Slides   []models.Slide
	Revision int64
	Offline  bool
}

// changeEvent is the subset of a change-stream event we decode.
type changeEvent struct {
	OperationType string `bson:"operationType"`
	FullDocument  Doc    `bson:"fullDocument"`
}

// Watch subscribes to the content document and delivers snapshots until ctx
// is cancelled. The returned channel has capacity one and stale values are
// dropped before newer ones are queued, so a slow consumer always reads the
// most recently delivered snapshot (last-snapshot-wins). The channel is
// closed when the watch ends.
//
// Only one component (the viewer hub) is expected to hold this subscription;
// it fans snapshots out to its own clients.
func (s *Store) Watch(ctx context.Context, logger *zap.Logger) <-chan Snapshot {
	out := make(chan Snapshot, 1)

	go func() {
		defer close(out)

		// Offline snapshots re-emit the last deck delivered, so a broken
		// stream degrades to stale content instead of an empty deck. Online
		// snapshots pass through untouched; an empty one must still reach
		// the integrity guard.
		last := models.DefaultDeck()
		emit := func(snap Snapshot) {
			if snap.Offline && len(snap.Slides) == 0 {
				snap.Slides = last
			} else if len(snap.Slides) > 0 {
				last = snap.Slides
			}
			push(out, snap)
		}

		// Initial snapshot so subscribers render before the first change.
		doc, ok, err := s.Get(ctx)
		switch {
		case err != nil:
			logger.Warn("content watch: initial read failed", zap.Error(err))
			emit(Snapshot{Offline: true})
		case !ok:
			logger.Warn("content watch: no content document, using default deck")
			emit(Snapshot{Offline: true})
		default:
			emit(Snapshot{Slides: doc.Slides, Revision: doc.Revision})
		}

		for ctx.Err() == nil {
			if err := s.watchOnce(ctx, emit); err != nil && ctx.Err() == nil {
				logger.Warn("content watch: stream broke, retrying", zap.Error(err))
				emit(Snapshot{Offline: true})
				select {
				case <-time.After(5 * time.Second):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// watchOnce runs a single change stream until it errors or ctx is cancelled.
func (s *Store) watchOnce(ctx context.Context, emit func(Snapshot)) error {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"documentKey._id": DocID}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := s.c.Watch(ctx, pipeline, opts)
	if err != nil {
		return err
	}
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		var ev changeEvent
		if err := stream.Decode(&ev); err != nil {
			return err
		}
		if ev.OperationType == "delete" {
			emit(Snapshot{Slides: models.DefaultDeck(), Offline: true})
			continue
		}
		emit(Snapshot{Slides: ev.FullDocument.Slides, Revision: ev.FullDocument.Revision})
	}
	return stream.Err()
}

// push queues snap, displacing an undelivered older snapshot if present so
// the consumer always sees the newest state.
func push(out chan Snapshot, snap Snapshot) {
	for {
		select {
		case out <- snap:
			return
		default:
			// Channel full: drop the stale snapshot and retry.
			select {
			case <-out:
			default:
			}
		}
	}
}
