package domain

import (
	"math"
	"strings"
	"time"
)

// Meal tags an entry with the time of day it was eaten.
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
	MealSnack     Meal = "snack"

	DefaultMeal = MealSnack
)

// Meals lists every meal in display order.
var Meals = []Meal{MealBreakfast, MealLunch, MealDinner, MealSnack}

// ParseMeal accepts a meal name case-insensitively. Empty input yields DefaultMeal.
func ParseMeal(s string) (Meal, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultMeal, nil
	}
	m := Meal(s)
	if !m.Valid() {
		return "", NewValidationError("meal", "meal must be one of: breakfast lunch dinner snack")
	}
	return m, nil
}

// Valid reports whether m is a known meal.
func (m Meal) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// MaxFoodTextLen is the longest accepted food description, in characters.
const MaxFoodTextLen = 500

// NutrientProfile is the estimator's output for one food description.
type NutrientProfile struct {
	Calories    float64  `json:"calories"    validate:"gte=0"`
	Protein     float64  `json:"protein"     validate:"gte=0"`
	Carbs       float64  `json:"carbs"       validate:"gte=0"`
	Fat         float64  `json:"fat"         validate:"gte=0"`
	Sugar       float64  `json:"sugar"       validate:"gte=0"`
	Confidence  float64  `json:"confidence"  validate:"gte=0,lte=1"`
	Ingredients []string `json:"ingredients"`
}

// Validate checks the non-negativity and confidence invariants.
func (p NutrientProfile) Validate() error {
	return ValidateStruct(validate, p)
}

// Clone returns a deep copy of p.
func (p NutrientProfile) Clone() NutrientProfile {
	out := p
	out.Ingredients = append([]string{}, p.Ingredients...)
	return out
}

// MacroSplit is the share of each macro in total macro grams, in whole percent.
type MacroSplit struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// MacroSplit returns the protein/carbs/fat split of p. All shares are zero
// when p has no macros.
func (p NutrientProfile) MacroSplit() MacroSplit {
	total := p.Protein + p.Carbs + p.Fat
	if total == 0 {
		return MacroSplit{}
	}
	pct := func(v float64) int { return int(math.Round(v / total * 100)) }
	return MacroSplit{Protein: pct(p.Protein), Carbs: pct(p.Carbs), Fat: pct(p.Fat)}
}

// FoodEntry is one logged food description with its estimated profile.
// Entries are immutable once stored.
type FoodEntry struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"          validate:"required"`
	FoodText        string          `json:"foodText"        validate:"required,max=500"`
	NutrientProfile NutrientProfile `json:"nutrientProfile"`
	Meal            Meal            `json:"meal"            validate:"oneof=breakfast lunch dinner snack"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Normalize trims the food text and applies the default meal.
func (e *FoodEntry) Normalize() {
	e.FoodText = strings.TrimSpace(e.FoodText)
	if e.Meal == "" {
		e.Meal = DefaultMeal
	}
}

// Validate checks every persisted invariant of e, including its profile.
func (e *FoodEntry) Validate() error {
	err := ValidateStruct(validate, e)
	if err == nil && strings.TrimSpace(e.FoodText) != e.FoodText {
		return NewValidationError("foodText", "foodText must be trimmed")
	}
	return err
}

// DateRange is a half-open [From, To) interval.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t lies inside r.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// DayRange returns the calendar day containing t in loc.
func DayRange(t time.Time, loc *time.Location) DateRange {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return DateRange{From: start, To: start.AddDate(0, 0, 1)}
}
