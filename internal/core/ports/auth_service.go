package ports

import (
	"context"

	"github.com/calora/calorie-tracker/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
