package service

import (
	"context"

	"github.com/calora/calorie-tracker/internal/core/domain"
)

// noopStatsCache never holds anything; used when no cache is configured.
type noopStatsCache struct{}

func (noopStatsCache) Get(context.Context, string, string) (*domain.UserStats, bool, error) {
	return nil, false, nil
}
func (noopStatsCache) Set(context.Context, string, string, domain.UserStats) error { return nil }
func (noopStatsCache) Invalidate(context.Context, string, string) error { return nil }

type noopNotifier struct{}

func (noopNotifier) Notify(domain.EntryEvent) {}
