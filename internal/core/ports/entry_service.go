package ports

import (
	"context"

	"github.com/calora/calorie-tracker/internal/core/domain"
)

// LogEntryInput is the DTO passed from the transport layer to EntryService.
type LogEntryInput struct {
	Caller   Caller
	FoodText string
	Meal     string // optional, defaults to snack
}

// ListEntriesInput carries the query parameters of the entry listing.
type ListEntriesInput struct {
	Caller Caller
	UserID string // empty = the caller
	Date   string // "today", YYYY-MM-DD, "all" or empty (all)
	Meal   string // a meal name, "all" or empty (all)
	Limit  int
	Offset int
}

// ListEntriesResult is returned by ListEntries. TotalCalories and EntryCount
// cover the returned page.
type ListEntriesResult struct {
	Entries       []*domain.FoodEntry
	TotalCalories float64
	EntryCount    int
	Date          string // resolved YYYY-MM-DD when a single day was requested
}

// AnalysisResult is the estimate for a food description that is not stored.
type AnalysisResult struct {
	Profile    domain.NutrientProfile
	MacroSplit domain.MacroSplit
	Rule       string // empty when the default profile was used
}

// EntryService defines use-case operations for food entries.
type EntryService interface {
	LogEntry(ctx context.Context, input LogEntryInput) (*domain.FoodEntry, error)
	ListEntries(ctx context.Context, input ListEntriesInput) (*ListEntriesResult, error)
	DeleteEntry(ctx context.Context, caller Caller, id string) (*domain.FoodEntry, error)
	Analyze(ctx context.Context, foodText string) (*AnalysisResult, error)
}
