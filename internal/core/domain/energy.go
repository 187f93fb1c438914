package domain

import "math"

// BasalMetabolicRate computes resting energy expenditure in kcal/day with the
// Mifflin-St Jeor equation:
//
//	male:   10·weight + 6.25·height − 5·age + 5
//	female: 10·weight + 6.25·height − 5·age − 161
//
// Range checks belong to User.Validate; only non-finite input and an unknown
// gender are rejected here.
func BasalMetabolicRate(weightKg, heightCm float64, age int, gender Gender) (float64, error) {
	if !finite(weightKg) {
		return 0, NewValidationError("weight", "weight must be a finite number")
	}
	if !finite(heightCm) {
		return 0, NewValidationError("height", "height must be a finite number")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case GenderMale:
		return bmr + 5, nil
	case GenderFemale:
		return bmr - 161, nil
	default:
		return 0, NewValidationError("gender", "gender must be one of: male female")
	}
}

// MaintenanceCalories scales bmr by the activity factor and rounds to the
// nearest kcal. Halves round away from zero (math.Round), which for the
// positive values produced by valid profiles is the same as rounding half up.
func MaintenanceCalories(bmr, activityFactor float64) (int, error) {
	if !finite(bmr) {
		return 0, NewValidationError("bmr", "bmr must be a finite number")
	}
	if !finite(activityFactor) {
		return 0, NewValidationError("activityLevel", "activityLevel must be a finite number")
	}
	return int(math.Round(bmr * activityFactor)), nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
