package domain

import "strings"

// NutrientRule maps a set of keywords to a fixed profile.
type NutrientRule struct {
	Name     string
	Keywords []string
	Profile  NutrientProfile
}

// Matches reports whether lowered (already lower-cased) contains any keyword.
func (r NutrientRule) Matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// nutrientRules is evaluated top to bottom and the first match wins, so
// "pizza pasta" is a pizza.
var nutrientRules = []NutrientRule{
	{
		Name:     "pizza",
		Keywords: []string{"pizza"},
		Profile: NutrientProfile{
			Calories: 650, Protein: 25, Carbs: 80, Fat: 25, Sugar: 5,
			Confidence: 0.85, Ingredients: []string{"dough", "cheese", "sauce"},
		},
	},
	{
		Name:     "pasta",
		Keywords: []string{"pasta", "nudeln"},
		Profile: NutrientProfile{
			Calories: 520, Protein: 18, Carbs: 75, Fat: 15, Sugar: 8,
			Confidence: 0.88, Ingredients: []string{"pasta", "sauce"},
		},
	},
	{
		Name:     "apple",
		Keywords: []string{"apfel", "apple"},
		Profile: NutrientProfile{
			Calories: 80, Protein: 0.5, Carbs: 20, Fat: 0, Sugar: 15,
			Confidence: 0.95, Ingredients: []string{"apple"},
		},
	},
	{
		Name:     "cereal",
		Keywords: []string{"müsli", "cereal"},
		Profile: NutrientProfile{
			Calories: 340, Protein: 12, Carbs: 58, Fat: 8, Sugar: 22,
			Confidence: 0.92, Ingredients: []string{"oats", "milk"},
		},
	},
	{
		Name:     "salad",
		Keywords: []string{"salat", "salad"},
		Profile: NutrientProfile{
			Calories: 150, Protein: 8, Carbs: 12, Fat: 8, Sugar: 6,
			Confidence: 0.78, Ingredients: []string{"lettuce", "vegetables", "dressing"},
		},
	},
}

// DefaultProfile is returned when no rule matches.
var DefaultProfile = NutrientProfile{
	Calories: 100, Protein: 5, Carbs: 15, Fat: 3, Sugar: 5,
	Confidence: 0.85, Ingredients: []string{},
}

// NutrientRules returns a copy of the rule table in evaluation order.
func NutrientRules() []NutrientRule {
	out := make([]NutrientRule, len(nutrientRules))
	for i, r := range nutrientRules {
		out[i] = NutrientRule{
			Name:     r.Name,
			Keywords: append([]string{}, r.Keywords...),
			Profile:  r.Profile.Clone(),
		}
	}
	return out
}

// MatchRule returns the first rule matching foodText.
func MatchRule(foodText string) (NutrientRule, bool) {
	lowered := strings.ToLower(foodText)
	for _, r := range nutrientRules {
		if r.Matches(lowered) {
			r.Profile = r.Profile.Clone()
			return r, true
		}
	}
	return NutrientRule{}, false
}

// Estimate maps a free-text description to a nutrient profile. It never
// fails: unknown or empty text yields DefaultProfile.
func Estimate(foodText string) NutrientProfile {
	if r, ok := MatchRule(foodText); ok {
		return r.Profile
	}
	return DefaultProfile.Clone()
}
