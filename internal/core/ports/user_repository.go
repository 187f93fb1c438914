package ports

import (
	"context"

	"github.com/calora/calorie-tracker/internal/core/domain"
)

// UserFilter carries the optional filters of the admin user listing.
type UserFilter struct {
	Search    string // case-insensitive partial match on username or email
	Active    *bool
	AdminOnly bool
}

// UserCounts summarises the user collection next to a listing.
type UserCounts struct {
	Total    int64 // all users
	Active   int64 // users with isActive
	Matching int64 // users matching the filter
}

// UserRepository persists user profiles.
type UserRepository interface {
	// Create stores u and sets its ID and timestamps. A duplicate username or
	// email yields a *domain.ConflictError.
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns a page of users newest first together with collection counts.
	List(ctx context.Context, filter UserFilter, page Pagination) ([]*domain.User, UserCounts, error)
	// Update replaces the stored document with u and refreshes UpdatedAt.
	Update(ctx context.Context, u *domain.User) error
	// Deactivate clears isActive and returns the updated user.
	Deactivate(ctx context.Context, id string) (*domain.User, error)
}
