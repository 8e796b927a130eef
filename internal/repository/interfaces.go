package repository

import (
	"context"
	"errors"

	"biolink/internal/model"
)

var (
	// ErrStoreUnavailable is returned when the storage medium cannot be opened or initialized
	ErrStoreUnavailable = errors.New("visit store unavailable")
	// ErrAppendFailed is returned when a visit could not be written
	ErrAppendFailed = errors.New("failed to append visit")
	// ErrListFailed is returned when the visit history could not be read
	ErrListFailed = errors.New("failed to list visits")
)

// VisitStore is an append-only store of visits.
// Implementations are safe for concurrent use.
type VisitStore interface {
	// Init prepares the underlying medium. Repeated calls after a success are no-ops.
	Init(ctx context.Context) error
	// Append durably adds one visit.
	Append(ctx context.Context, visit *model.Visit) error
	// ListAll returns every stored visit in insertion order.
	ListAll(ctx context.Context) ([]model.Visit, error)
	Close() error
}

// Publisher hands visits to an asynchronous pipeline
type Publisher interface {
	PublishVisit(ctx context.Context, visit *model.Visit) error
}
