package domain

import (
	"errors"
	"testing"
)

func validUser() *User {
	return &User{
		Username:       "anna",
		Email:          "anna@example.com",
		Age:            25,
		Gender:         GenderFemale,
		WeightKg:       60,
		HeightCm:       165,
		ActivityFactor: 1.55,
		IsActive:       true,
	}
}

func TestUser_Validate(t *testing.T) {
	if err := validUser().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name  string
		field string
		edit  func(u *User)
	}{
		{"short username", "username", func(u *User) { u.Username = "ab" }},
		{"long username", "username", func(u *User) { u.Username = "abcdefghijklmnopqrstu" }},
		{"bad email", "email", func(u *User) { u.Email = "not-an-email" }},
		{"too young", "age", func(u *User) { u.Age = 12 }},
		{"too old", "age", func(u *User) { u.Age = 121 }},
		{"gender", "gender", func(u *User) { u.Gender = "other" }},
		{"light", "weight", func(u *User) { u.WeightKg = 29.9 }},
		{"heavy", "weight", func(u *User) { u.WeightKg = 301 }},
		{"short", "height", func(u *User) { u.HeightCm = 99 }},
		{"tall", "height", func(u *User) { u.HeightCm = 251 }},
		{"sedentary", "activityLevel", func(u *User) { u.ActivityFactor = 1.1 }},
		{"hyperactive", "activityLevel", func(u *User) { u.ActivityFactor = 2.0 }},
	}
	for _, tc := range cases {
		u := validUser()
		tc.edit(u)
		err := u.Validate()
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected ValidationError, got %v", tc.name, err)
			continue
		}
		if _, ok := ve.Fields[tc.field]; !ok {
			t.Errorf("%s: expected %s in %v", tc.name, tc.field, ve.Fields)
		}
	}
}

func TestUser_Bounds(t *testing.T) {
	u := validUser()
	u.Age, u.WeightKg, u.HeightCm, u.ActivityFactor = 13, 30, 100, 1.2
	if err := u.Validate(); err != nil {
		t.Fatalf("lower bounds should be accepted: %v", err)
	}
	u.Age, u.WeightKg, u.HeightCm, u.ActivityFactor = 120, 300, 250, 1.9
	if err := u.Validate(); err != nil {
		t.Fatalf("upper bounds should be accepted: %v", err)
	}
}

func TestUser_Normalize(t *testing.T) {
	u := validUser()
	u.Username = "  anna "
	u.Email = " Anna@Example.COM "
	u.Normalize()
	if u.Username != "anna" || u.Email != "anna@example.com" {
		t.Fatalf("unexpected normalization: %q %q", u.Username, u.Email)
	}
}

func TestUser_RecomputeMaintenance(t *testing.T) {
	u := validUser()
	u.Gender, u.WeightKg, u.HeightCm, u.Age, u.ActivityFactor = GenderMale, 75, 180, 30, 1.55
	if err := u.RecomputeMaintenance(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1730 * 1.55 = 2681.5
	if u.MaintenanceCalories != 2682 {
		t.Fatalf("expected 2682, got %d", u.MaintenanceCalories)
	}
}

func TestUserPatch(t *testing.T) {
	name := "anna2"
	if (UserPatch{Username: &name}).TouchesBiometrics() {
		t.Error("username change should not touch biometrics")
	}

	w := 70.0
	p := UserPatch{Username: &name, WeightKg: &w}
	if !p.TouchesBiometrics() {
		t.Error("weight change should touch biometrics")
	}

	u := validUser()
	p.Apply(u)
	if u.Username != "anna2" || u.WeightKg != 70 || u.HeightCm != 165 {
		t.Fatalf("unexpected patched user: %+v", u)
	}
}

func TestValidationError_Message(t *testing.T) {
	ve := &ValidationError{}
	if ve.OrNil() != nil {
		t.Fatal("empty ValidationError should collapse to nil")
	}
	ve.Add("b", "b is bad")
	ve.Add("a", "a is bad")
	ve.Add("a", "ignored")
	if got := ve.Error(); got != "validation failed: a is bad; b is bad" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestConflictError(t *testing.T) {
	err := error(&ConflictError{Field: "email"})
	if !errors.Is(err, ErrConflict) {
		t.Fatal("ConflictError should unwrap to ErrConflict")
	}
	if err.Error() != "email already taken" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(ErrUserNotFound, ErrNotFound) {
		t.Fatal("ErrUserNotFound should wrap ErrNotFound")
	}
}
