package service

import (
	"errors"
	"testing"
	"time"

	"github.com/calora/calorie-tracker/internal/core/domain"
)

func entryAt(kcal float64, meal domain.Meal, at time.Time) *domain.FoodEntry {
	return &domain.FoodEntry{
		UserID:          "u1",
		FoodText:        "x",
		NutrientProfile: domain.NutrientProfile{Calories: kcal},
		Meal:            meal,
		CreatedAt:       at,
	}
}

func TestTotalsAndGrouping(t *testing.T) {
	meals := []domain.Meal{domain.MealBreakfast, domain.MealLunch, domain.MealDinner, domain.MealSnack, domain.MealLunch}
	var entries []*domain.FoodEntry
	for i, kcal := range []float64{100, 200, 300, 400, 500} {
		entries = append(entries, entryAt(kcal, meals[i], testNow))
	}

	if got := TotalCalories(entries); got != 1500 {
		t.Fatalf("expected 1500, got %v", got)
	}
	if got := EntryCount(entries); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	groups := GroupByMeal(entries)
	if groups[domain.MealLunch] != 2 || groups[domain.MealBreakfast] != 1 || groups[domain.MealDinner] != 1 || groups[domain.MealSnack] != 1 {
		t.Fatalf("unexpected grouping: %v", groups)
	}

	if TotalCalories(nil) != 0 || EntryCount(nil) != 0 || len(GroupByMeal(nil)) != 0 {
		t.Fatal("empty input should aggregate to zero")
	}
}

func TestDailyTotals(t *testing.T) {
	entries := []*domain.FoodEntry{
		entryAt(500, domain.MealLunch, time.Date(2024, 3, 10, 12, 0, 0, 0, testLoc)),
		entryAt(300, domain.MealDinner, time.Date(2024, 3, 8, 19, 0, 0, 0, testLoc)),
		entryAt(200, domain.MealBreakfast, time.Date(2024, 3, 10, 8, 0, 0, 0, testLoc)),
		// 23:30 UTC on the 8th is the 9th in CET
		entryAt(100, domain.MealSnack, time.Date(2024, 3, 8, 23, 30, 0, 0, time.UTC)),
	}

	got := DailyTotals(entries, testLoc)
	want := []domain.DailyTotal{
		{Date: "2024-03-08", Calories: 300, Entries: 1},
		{Date: "2024-03-09", Calories: 100, Entries: 1},
		{Date: "2024-03-10", Calories: 700, Entries: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d days, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestAveragePerDay_ExcludesEmptyDays(t *testing.T) {
	entries := []*domain.FoodEntry{
		entryAt(1000, domain.MealLunch, time.Date(2024, 3, 10, 12, 0, 0, 0, testLoc)),
		entryAt(500, domain.MealDinner, time.Date(2024, 3, 10, 19, 0, 0, 0, testLoc)),
		entryAt(2500, domain.MealLunch, time.Date(2024, 3, 5, 12, 0, 0, 0, testLoc)),
		// outside a 7-day window ending on the 10th
		entryAt(9000, domain.MealLunch, time.Date(2024, 3, 3, 12, 0, 0, 0, testLoc)),
	}

	got := AveragePerDay(entries, 7, testNow, testLoc)
	// (1500 + 2500) / 2 days with data
	if got.Average != 2000 || got.DaysActive != 2 {
		t.Fatalf("expected 2000 over 2 days, got %+v", got)
	}

	all := AveragePerDay(entries, 0, testNow, testLoc)
	if all.DaysActive != 3 {
		t.Fatalf("expected 3 active days without a window, got %+v", all)
	}

	if empty := AveragePerDay(nil, 30, testNow, testLoc); empty != (domain.DailyAverage{}) {
		t.Fatalf("expected zero average, got %+v", empty)
	}
}

func TestWindowRange(t *testing.T) {
	r := WindowRange(7, testNow, testLoc)
	if !r.From.Equal(time.Date(2024, 3, 4, 0, 0, 0, 0, testLoc)) {
		t.Fatalf("unexpected window start %v", r.From)
	}
	if !r.To.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, testLoc)) {
		t.Fatalf("unexpected window end %v", r.To)
	}
}

func TestTrend_FillsEmptyDays(t *testing.T) {
	entries := []*domain.FoodEntry{
		entryAt(400, domain.MealLunch, time.Date(2024, 3, 10, 12, 0, 0, 0, testLoc)),
		entryAt(600, domain.MealLunch, time.Date(2024, 3, 8, 12, 0, 0, 0, testLoc)),
		entryAt(999, domain.MealLunch, time.Date(2024, 3, 1, 12, 0, 0, 0, testLoc)),
	}

	got := Trend(entries, 3, testNow, testLoc)
	want := []domain.DailyTotal{
		{Date: "2024-03-08", Calories: 600, Entries: 1},
		{Date: "2024-03-09"},
		{Date: "2024-03-10", Calories: 400, Entries: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d days, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestBalance(t *testing.T) {
	b, err := Balance(1500, 2230)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Balance != -730 {
		t.Fatalf("expected -730, got %v", b.Balance)
	}
	// 1500 / 2230 = 67.26%
	if b.Percentage != 67.3 {
		t.Fatalf("expected 67.3, got %v", b.Percentage)
	}

	if _, err := Balance(1500, 0); !errors.Is(err, domain.ErrNoBaseline) {
		t.Fatalf("expected ErrNoBaseline, got %v", err)
	}
}

func TestComputeStats(t *testing.T) {
	entries := []*domain.FoodEntry{
		entryAt(333, domain.MealLunch, time.Date(2024, 3, 10, 12, 0, 0, 0, testLoc)),
		entryAt(334, domain.MealLunch, time.Date(2024, 3, 9, 12, 0, 0, 0, testLoc)),
		// older than 30 days: counted in totals, not in the average
		entryAt(5000, domain.MealLunch, time.Date(2024, 1, 1, 12, 0, 0, 0, testLoc)),
	}

	got := ComputeStats(entries, 30, testNow, testLoc)
	want := domain.UserStats{TotalEntries: 3, TotalCalories: 5667, AvgCaloriesPerDay: 334, DaysActive: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
