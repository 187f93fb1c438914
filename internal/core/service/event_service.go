package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/calora/calorie-tracker/internal/core/domain"
	"github.com/calora/calorie-tracker/internal/core/ports"
)

type eventService struct {
	publisher ports.EventPublisher
	log       zerolog.Logger
}

// NewEventService returns an EventService that forwards entry events to
// publisher. A nil publisher only logs them.
func NewEventService(publisher ports.EventPublisher, log zerolog.Logger) ports.EventService {
	return &eventService{publisher: publisher, log: log}
}

// Process publishes a single entry event.
func (s *eventService) Process(ctx context.Context, ev domain.EntryEvent) error {
	if ev.Type != domain.EntryLogged && ev.Type != domain.EntryDeleted {
		return fmt.Errorf("process event: unknown event type %q", ev.Type)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, ev); err != nil {
			return fmt.Errorf("process event: publish: %w", err)
		}
	}

	s.log.Debug().
		Str("event_id", ev.ID).
		Str("type", string(ev.Type)).
		Str("entry_id", ev.EntryID).
		Str("user_id", ev.UserID).
		Msg("event processed")
	return nil
}
