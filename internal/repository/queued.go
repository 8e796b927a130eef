package repository

import (
	"context"
	"fmt"

	"biolink/internal/model"
)

// QueuedStore hands appends to a message queue and reads from the durable
// store the queue consumer writes into.
type QueuedStore struct {
	publisher Publisher
	store     VisitStore
}

// NewQueuedStore creates a store publishing through publisher and reading from store
func NewQueuedStore(publisher Publisher, store VisitStore) *QueuedStore {
	return &QueuedStore{
		publisher: publisher,
		store:     store,
	}
}

// Init initializes the durable store
func (s *QueuedStore) Init(ctx context.Context) error {
	return s.store.Init(ctx)
}

// Append publishes the visit; the consumer performs the durable write
func (s *QueuedStore) Append(ctx context.Context, visit *model.Visit) error {
	if err := s.publisher.PublishVisit(ctx, visit); err != nil {
		return fmt.Errorf("%w: %w", ErrAppendFailed, err)
	}
	return nil
}

// ListAll reads the durable store
func (s *QueuedStore) ListAll(ctx context.Context) ([]model.Visit, error) {
	return s.store.ListAll(ctx)
}

// Close closes the durable store
func (s *QueuedStore) Close() error {
	return s.store.Close()
}
