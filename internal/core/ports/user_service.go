package ports

import (
	"context"

	"github.com/calora/calorie-tracker/internal/core/domain"
)

// RegisterUserInput carries the registration form.
type RegisterUserInput struct {
	Username       string
	Email          string
	Password       string // optional; without it the user cannot log in
	Age            int
	Gender         string
	WeightKg       float64
	HeightCm       float64
	ActivityFactor float64
}

// UserProfile is the detail view of one user.
type UserProfile struct {
	User          *domain.User
	Stats         domain.UserStats
	RecentEntries []*domain.FoodEntry
}

// ListUsersInput carries the query parameters of the admin user listing.
type ListUsersInput struct {
	Caller    Caller
	Search    string
	Active    *bool
	AdminOnly bool
	Limit     int
	Offset    int
}

// ListUsersResult is returned by ListUsers.
type ListUsersResult struct {
	Users       []*domain.User
	TotalUsers  int64
	ActiveUsers int64
	Limit       int
	Offset      int
	HasMore     bool
}

// UserService defines use-case operations for user profiles.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	GetProfile(ctx context.Context, caller Caller, id string) (*UserProfile, error)
	UpdateUser(ctx context.Context, caller Caller, id string, patch domain.UserPatch) (*domain.User, error)
	DeactivateUser(ctx context.Context, caller Caller, id string) (*domain.User, error)
	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	TodayBalance(ctx context.Context, caller Caller, id string) (*domain.CalorieBalance, error)
	Trend(ctx context.Context, caller Caller, id string, days int) ([]domain.DailyTotal, error)
}
