package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/calora/calorie-tracker/internal/core/domain"
	"github.com/calora/calorie-tracker/internal/core/ports"
)

func toRegisterInput(r registerUserRequest) ports.RegisterUserInput {
	return ports.RegisterUserInput{
		Username:       r.Username,
		Email:          r.Email,
		Password:       r.Password,
		Age:            r.Age,
		Gender:         r.Gender,
		WeightKg:       r.Weight,
		HeightCm:       r.Height,
		ActivityFactor: r.ActivityLevel,
	}
}

func toUserPatch(r updateUserRequest) domain.UserPatch {
	p := domain.UserPatch{
		Username:       r.Username,
		Email:          r.Email,
		Age:            r.Age,
		WeightKg:       r.Weight,
		HeightCm:       r.Height,
		ActivityFactor: r.ActivityLevel,
		IsActive:       r.IsActive,
	}
	if r.Gender != nil {
		g := domain.Gender(strings.ToLower(strings.TrimSpace(*r.Gender)))
		p.Gender = &g
	}
	return p
}

// entriesOrEmpty keeps list fields rendering as [] rather than null.
func entriesOrEmpty(es []*domain.FoodEntry) []*domain.FoodEntry {
	if es == nil {
		return []*domain.FoodEntry{}
	}
	return es
}

func usersOrEmpty(us []*domain.User) []*domain.User {
	if us == nil {
		return []*domain.User{}
	}
	return us
}

// queryInt parses an optional integer query parameter. Absent means 0.
func queryInt(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, name+" must be an integer")
	}
	return n, nil
}

// queryBool parses an optional boolean query parameter. Absent means nil.
func queryBool(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, name+" must be true or false")
	}
	return &b, nil
}

// ruleLabel names the estimator rule for metric labels.
func ruleLabel(rule string) string {
	if rule == "" {
		return "default"
	}
	return rule
}
