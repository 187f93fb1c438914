package ports

import (
	"context"

	"github.com/calora/calorie-tracker/internal/core/domain"
)

// AuthRepository is the slice of user persistence that login depends on.
// UserRepository satisfies it.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
