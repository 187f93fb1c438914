package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryEventType names a change to a user's food log.
type EntryEventType string

const (
	EntryLogged  EntryEventType = "entry.logged"
	EntryDeleted EntryEventType = "entry.deleted"
)

// EntryEvent is announced after a food entry is created or removed.
type EntryEvent struct {
	ID         string         `json:"id"`
	Type       EntryEventType `json:"type"`
	EntryID    string         `json:"entryId"`
	UserID     string         `json:"userId"`
	Meal       Meal           `json:"meal"`
	Calories   float64        `json:"calories"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// NewEntryEvent builds an event of type t describing e with a fresh id.
func NewEntryEvent(t EntryEventType, e *FoodEntry, at time.Time) EntryEvent {
	return EntryEvent{
		ID:         uuid.NewString(),
		Type:       t,
		EntryID:    e.ID,
		UserID:     e.UserID,
		Meal:       e.Meal,
		Calories:   e.NutrientProfile.Calories,
		OccurredAt: at.UTC(),
	}
}
