package domain

import (
	"strings"
	"time"
)

// Gender selects the Mifflin-St Jeor constant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// User is a registered person whose entries are tracked. MaintenanceCalories
// is derived from the biometric fields and must be refreshed with
// RecomputeMaintenance whenever one of them changes.
type User struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"            validate:"required,min=3,max=20"`
	Email               string    `json:"email"               validate:"required,email"`
	PasswordHash        string    `json:"-"`
	Age                 int       `json:"age"                 validate:"gte=13,lte=120"`
	Gender              Gender    `json:"gender"              validate:"oneof=male female"`
	WeightKg            float64   `json:"weight"              validate:"gte=30,lte=300"`
	HeightCm            float64   `json:"height"              validate:"gte=100,lte=250"`
	ActivityFactor      float64   `json:"activityLevel"       validate:"gte=1.2,lte=1.9"`
	MaintenanceCalories int       `json:"maintenanceCalories"`
	IsActive            bool      `json:"isActive"`
	IsAdmin             bool      `json:"isAdmin,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Normalize trims the username and trims and lower-cases the email.
func (u *User) Normalize() {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

// Validate checks every persisted invariant of u.
func (u *User) Validate() error {
	return ValidateStruct(validate, u)
}

// RecomputeMaintenance refreshes MaintenanceCalories from the current
// biometric tuple.
func (u *User) RecomputeMaintenance() error {
	bmr, err := BasalMetabolicRate(u.WeightKg, u.HeightCm, u.Age, u.Gender)
	if err != nil {
		return err
	}
	kcal, err := MaintenanceCalories(bmr, u.ActivityFactor)
	if err != nil {
		return err
	}
	u.MaintenanceCalories = kcal
	return nil
}

// UserPatch is a partial profile update; nil fields are left untouched.
type UserPatch struct {
	Username       *string
	Email          *string
	Age            *int
	Gender         *Gender
	WeightKg       *float64
	HeightCm       *float64
	ActivityFactor *float64
	IsActive       *bool
}

// TouchesBiometrics reports whether applying p can change maintenance calories.
func (p UserPatch) TouchesBiometrics() bool {
	return p.Age != nil || p.Gender != nil || p.WeightKg != nil ||
		p.HeightCm != nil || p.ActivityFactor != nil
}

// Apply copies the non-nil fields of p onto u.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.WeightKg != nil {
		u.WeightKg = *p.WeightKg
	}
	if p.HeightCm != nil {
		u.HeightCm = *p.HeightCm
	}
	if p.ActivityFactor != nil {
		u.ActivityFactor = *p.ActivityFactor
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}

// UserStats summarises a user's logging history for the profile view.
type UserStats struct {
	TotalEntries      int     `json:"totalEntries"`
	TotalCalories     float64 `json:"totalCalories"`
	AvgCaloriesPerDay int     `json:"avgCaloriesPerDay"`
	DaysActive        int     `json:"daysActive"`
}
