package ports

import (
	"context"

	"github.com/calora/calorie-tracker/internal/core/domain"
)

// EntryNotifier accepts entry events for asynchronous handling. Notify never
// blocks the caller.
type EntryNotifier interface {
	Notify(event domain.EntryEvent)
}

// EventService handles one entry event taken off the dispatch queue.
type EventService interface {
	Process(ctx context.Context, event domain.EntryEvent) error
}

// EventPublisher delivers entry events to an external broker.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.EntryEvent) error
}
