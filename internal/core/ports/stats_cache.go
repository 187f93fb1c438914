package ports

import (
	"context"

	"github.com/calora/calorie-tracker/internal/core/domain"
)

// StatsCache stores computed profile statistics per user and calendar day
// (YYYY-MM-DD). Stats computed on one day are never served on the next.
type StatsCache interface {
	// Get reports whether stats for userID were cached on day.
	Get(ctx context.Context, userID, day string) (*domain.UserStats, bool, error)
	Set(ctx context.Context, userID, day string, stats domain.UserStats) error
	Invalidate(ctx context.Context, userID, day string) error
}
