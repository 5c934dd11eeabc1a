package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ChangeEvent carries one document change delivered by a collection stream.
// Document is nil for deletes. Consumers must tolerate late or out-of-order
// delivery relative to their own reads.
type ChangeEvent[T any] struct {
	OperationType string
	DocumentID    string
	Document      *T
}

// changeDocument is the wire shape of a change stream event.
type changeDocument[T any] struct {
	OperationType string `bson:"operationType"`
	FullDocument  *T     `bson:"fullDocument"`
	DocumentKey   struct {
		ID string `bson:"_id"`
	} `bson:"documentKey"`
}

// WatchCollection opens a change stream on the collection and forwards
// events until ctx is cancelled. The returned channel is closed when the
// stream ends for any reason.
func WatchCollection[T any](ctx context.Context, collection *mongo.Collection, logger zerolog.Logger) (<-chan ChangeEvent[T], error) {
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := collection.Watch(ctx, mongo.Pipeline{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open change stream on %s: %w", collection.Name(), err)
	}

	logger = logger.With().Str("collection", collection.Name()).Logger()
	events := make(chan ChangeEvent[T])

	go func() {
		defer close(events)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var change changeDocument[T]
			if err := stream.Decode(&change); err != nil {
				logger.Warn().Err(err).Msg("failed to decode change event")
				continue
			}

			event := ChangeEvent[T]{
				OperationType: change.OperationType,
				DocumentID:    change.DocumentKey.ID,
				Document:      change.FullDocument,
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}

		if err := stream.Err(); err != nil && ctx.Err() == nil {
			logger.Warn().Err(err).Msg("change stream closed with error")
		}
	}()

	return events, nil
}
