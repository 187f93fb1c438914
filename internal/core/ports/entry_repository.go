package ports

import (
	"context"

	"github.com/calora/calorie-tracker/internal/core/domain"
)

// EntryFilter selects the food entries of one user.
type EntryFilter struct {
	UserID string            // required
	Range  *domain.DateRange // optional: createdAt in [From, To)
	Meal   *domain.Meal      // optional
}

// Validate rejects filters the store cannot answer.
func (f EntryFilter) Validate() error {
	verr := &domain.ValidationError{}
	if f.UserID == "" {
		verr.Add("userId", "userId is required")
	}
	if f.Range != nil && !f.Range.From.Before(f.Range.To) {
		verr.Add("date", "date range is empty")
	}
	if f.Meal != nil && !f.Meal.Valid() {
		verr.Add("meal", "meal must be one of: breakfast lunch dinner snack")
	}
	return verr.OrNil()
}

// Pagination bounds a result set. Limit 0 means no limit.
type Pagination struct {
	Limit  int
	Offset int
}

// EntryRepository persists food entries.
type EntryRepository interface {
	// Create stores e and sets its ID and timestamps.
	Create(ctx context.Context, e *domain.FoodEntry) error
	// Find returns matching entries newest first (ties broken by id, descending).
	Find(ctx context.Context, filter EntryFilter, page Pagination) ([]*domain.FoodEntry, error)
	// Delete removes the entry and returns it. When ownerID is non-empty an
	// entry of another user is reported as domain.ErrEntryNotFound.
	Delete(ctx context.Context, id, ownerID string) (*domain.FoodEntry, error)
}
