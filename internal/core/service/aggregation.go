package service

import (
	"math"
	"sort"
	"time"

	"github.com/calora/calorie-tracker/internal/core/domain"
)

const dateLayout = "2006-01-02"

// TotalCalories sums the calories of entries.
func TotalCalories(entries []*domain.FoodEntry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.NutrientProfile.Calories
	}
	return sum
}

// EntryCount returns the number of entries.
func EntryCount(entries []*domain.FoodEntry) int {
	return len(entries)
}

// GroupByMeal counts entries per meal. Meals without entries are absent.
func GroupByMeal(entries []*domain.FoodEntry) map[domain.Meal]int {
	out := make(map[domain.Meal]int)
	for _, e := range entries {
		out[e.Meal]++
	}
	return out
}

// TodayRange is the calendar day containing now in loc.
func TodayRange(now time.Time, loc *time.Location) domain.DateRange {
	return domain.DayRange(now, loc)
}

// WindowRange covers the days calendar days that end with today.
func WindowRange(days int, now time.Time, loc *time.Location) domain.DateRange {
	today := TodayRange(now, loc)
	return domain.DateRange{From: today.From.AddDate(0, 0, -(days - 1)), To: today.To}
}

// DailyTotals sums entries per calendar date in loc, oldest date first.
// Only dates with entries are returned.
func DailyTotals(entries []*domain.FoodEntry, loc *time.Location) []domain.DailyTotal {
	byDate := make(map[string]*domain.DailyTotal)
	for _, e := range entries {
		key := e.CreatedAt.In(loc).Format(dateLayout)
		d, ok := byDate[key]
		if !ok {
			d = &domain.DailyTotal{Date: key}
			byDate[key] = d
		}
		d.Calories += e.NutrientProfile.Calories
		d.Entries++
	}

	out := make([]domain.DailyTotal, 0, len(byDate))
	for _, d := range byDate {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Trend returns one total per day for the last days days, oldest first.
// Days without entries are present with zero calories.
func Trend(entries []*domain.FoodEntry, days int, now time.Time, loc *time.Location) []domain.DailyTotal {
	window := WindowRange(days, now, loc)
	totals := make(map[string]domain.DailyTotal)
	for _, d := range DailyTotals(inRange(entries, window), loc) {
		totals[d.Date] = d
	}

	out := make([]domain.DailyTotal, 0, days)
	for day := window.From; day.Before(window.To); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		if d, ok := totals[key]; ok {
			out = append(out, d)
			continue
		}
		out = append(out, domain.DailyTotal{Date: key})
	}
	return out
}

// AveragePerDay averages the per-date calorie sums of the entries that fall in
// the last windowDays calendar days. Dates without entries do not count
// towards the mean. A non-positive windowDays considers every entry.
func AveragePerDay(entries []*domain.FoodEntry, windowDays int, now time.Time, loc *time.Location) domain.DailyAverage {
	if windowDays > 0 {
		entries = inRange(entries, WindowRange(windowDays, now, loc))
	}
	days := DailyTotals(entries, loc)
	if len(days) == 0 {
		return domain.DailyAverage{}
	}
	var sum float64
	for _, d := range days {
		sum += d.Calories
	}
	return domain.DailyAverage{Average: sum / float64(len(days)), DaysActive: len(days)}
}

// Balance compares consumed calories with the maintenance baseline.
// Percentage is rounded to one decimal.
func Balance(consumed float64, maintenance int) (domain.CalorieBalance, error) {
	if maintenance <= 0 {
		return domain.CalorieBalance{}, domain.ErrNoBaseline
	}
	return domain.CalorieBalance{
		Consumed:    consumed,
		Maintenance: maintenance,
		Balance:     consumed - float64(maintenance),
		Percentage:  math.Round(consumed/float64(maintenance)*1000) / 10,
	}, nil
}

// ComputeStats builds the profile statistics from a user's full history.
func ComputeStats(entries []*domain.FoodEntry, windowDays int, now time.Time, loc *time.Location) domain.UserStats {
	avg := AveragePerDay(entries, windowDays, now, loc)
	return domain.UserStats{
		TotalEntries:      EntryCount(entries),
		TotalCalories:     TotalCalories(entries),
		AvgCaloriesPerDay: int(math.Round(avg.Average)),
		DaysActive:        avg.DaysActive,
	}
}

func inRange(entries []*domain.FoodEntry, r domain.DateRange) []*domain.FoodEntry {
	out := make([]*domain.FoodEntry, 0, len(entries))
	for _, e := range entries {
		if r.Contains(e.CreatedAt) {
			out = append(out, e)
		}
	}
	return out
}
